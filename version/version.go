package version

// these values are set via ldflags on release builds
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var FullVersion = composeVersion()

func composeVersion() string {
	return Version + " (" + GitCommit + " " + BuildDate + ")"
}
