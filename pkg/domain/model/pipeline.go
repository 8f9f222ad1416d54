package model

// Pipeline is the repository-level release configuration, loaded from a
// TOML file next to the checkout. It names the external tools the run
// invokes and the assets the release attaches.
type Pipeline struct {
	Version   VersionConfig   `toml:"version"`
	Changelog ChangelogConfig `toml:"changelog"`
	Release   PublishConfig   `toml:"release"`
}

// VersionConfig describes the external version helper. The same command
// is invoked twice; the "next" invocation gets NextEnv=1 in its
// environment.
type VersionConfig struct {
	Command   string   `toml:"command"`
	Args      []string `toml:"args"`
	WorkDir   string   `toml:"workdir"`
	NextEnv   string   `toml:"next_env"`
	TagPrefix string   `toml:"tag_prefix"`
}

// ChangelogConfig describes the external changelog generator. Its stdout
// becomes the raw changelog text.
type ChangelogConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	WorkDir string   `toml:"workdir"`
}

// PublishConfig controls the release object itself.
type PublishConfig struct {
	// Assets lists file glob patterns attached to the release. Patterns
	// that match nothing are skipped.
	Assets []string `toml:"assets"`

	// TitlePrefix is prepended to the tag to form the release name,
	// e.g. "TARDIS " -> "TARDIS v2024.8.4".
	TitlePrefix string `toml:"title_prefix"`

	Draft bool `toml:"draft"`
}

// ApplyDefaults fills in the fields the TOML file may omit.
func (p *Pipeline) ApplyDefaults() {
	if p.Version.NextEnv == "" {
		p.Version.NextEnv = "CUTTER_NEXT_RELEASE"
	}
	if p.Version.TagPrefix == "" {
		p.Version.TagPrefix = "v"
	}
}
