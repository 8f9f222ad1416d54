package model

// Command describes one external tool invocation. The version helper and
// the changelog generator are both consumed through this shape; their
// contract is command line + environment + exit code, nothing more.
type Command struct {
	Path string
	Args []string
	Dir  string            // Working directory; empty means inherit
	Env  map[string]string // Merged over the parent environment
}
