package version

import "fmt"

// Set at build time with -ldflags "-X github.com/pwwang/gentoc/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Template is the cobra --version output.
func Template(binary string) string {
	return fmt.Sprintf("%s %s\n", binary, String())
}
