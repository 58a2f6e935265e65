// Package version holds build metadata injected with -ldflags.
package version

// Set at build time:
//
//	go build -ldflags "-X github.com/opsdesk-inc/opsdesk/internal/shared/version.Current=v1.2.0"
var (
	Current = "dev"
	Commit  = "unknown"
)

// String renders the version for CLI output.
func String() string {
	if Commit == "" || Commit == "unknown" {
		return Current
	}
	return Current + " (" + Commit + ")"
}
