package version

import (
	"fmt"
	"runtime"
)

// Name is the program name reported by the CLI and the MCP server.
const Name = "bemcase"

// These are intended to be set via -ldflags at build time.
var (
	version   = "dev"
	commitSHA = ""
	buildDate = ""
)

// Short is the bare release version, without build metadata.
func Short() string {
	return version
}

func Version() string {
	v := version
	if commitSHA != "" {
		v += "+" + commitSHA
	}
	if buildDate != "" {
		v += " (" + buildDate + ")"
	}
	return v
}

// Detailed is the multi-line form printed by `bemcase version`.
func Detailed() string {
	return fmt.Sprintf("%s %s\n%s/%s %s", Name, Version(), runtime.GOOS, runtime.GOARCH, runtime.Version())
}
