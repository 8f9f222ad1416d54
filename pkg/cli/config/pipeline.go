package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/m-mizutani/cutter/pkg/domain/model"
)

// LoadPipeline reads the repository-level pipeline configuration from a
// TOML file and applies defaults. The version helper and changelog tool
// commands are mandatory; everything else may be omitted.
func LoadPipeline(path string) (*model.Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read pipeline config", goerr.V("path", path))
	}

	var pipeline model.Pipeline
	if err := toml.Unmarshal(data, &pipeline); err != nil {
		return nil, goerr.Wrap(err, "failed to parse pipeline config", goerr.V("path", path))
	}

	pipeline.ApplyDefaults()

	if pipeline.Version.Command == "" {
		return nil, goerr.New("pipeline config: version.command is required", goerr.V("path", path))
	}
	if pipeline.Changelog.Command == "" {
		return nil, goerr.New("pipeline config: changelog.command is required", goerr.V("path", path))
	}

	return &pipeline, nil
}
