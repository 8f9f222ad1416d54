package types

// Version is the application version. Overridden at build time via
// -ldflags "-X github.com/m-mizutani/cutter/pkg/domain/types.Version=...".
var Version = "dev"

// AppName is used for the CLI name and the health endpoint.
const AppName = "cutter"
