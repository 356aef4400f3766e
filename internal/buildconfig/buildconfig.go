package buildconfig

// Build-time variables injected via ldflags:
//
//	-X github.com/Harshitk-cp/emgine/internal/buildconfig.version=v0.3.0
var (
	version = "dev"
	commit  = "unknown"
)

// Version returns the build version
func Version() string {
	return version
}

// Commit returns the git commit hash
func Commit() string {
	return commit
}

// VersionInfo returns full version information, as reported by /metrics
// and the replay tool's summary header.
func VersionInfo() map[string]string {
	return map[string]string{
		"version": version,
		"commit":  commit,
	}
}
