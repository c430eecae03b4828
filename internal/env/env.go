package env

// Build-time metadata, overridden via -ldflags at release time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)
