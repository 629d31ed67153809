package config

// this holds the resolved configuration values from CLI
var (
	Host              string // address the game is told to send its telemetry to
	Port              int    // UDP port on which telemetry packets arrive
	LogLevel          string // sets the log level (zap log level values)
	LogFormat         string // text vs json
	QueueCapacity     int    // capacity of the packet queue
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // endpoint for telemetry
)
