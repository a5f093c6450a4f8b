package config

const (
	// DefaultEnvFile is the dotenv file loaded when present.
	DefaultEnvFile = ".env"
	// DefaultConfigFile is the YAML config file loaded when present.
	DefaultConfigFile = "utb.yaml"
	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "warn"
	// DefaultAggregateErrors controls whether multiple simultaneous
	// failures surface as one aggregate error.
	DefaultAggregateErrors = true
	// DefaultFilterTracebacks controls whether engine-internal stack
	// frames are stripped from reported tracebacks.
	DefaultFilterTracebacks = true
)
