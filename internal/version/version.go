package version

// Overridden at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func GetVersion() string {
	if Version == "dev" {
		return "dev (development build)"
	}
	return Version
}

func GetFullVersion() string {
	return "Version: " + GetVersion() + "\n" +
		"Git Commit: " + GitCommit + "\n" +
		"Build Date: " + BuildDate
}
