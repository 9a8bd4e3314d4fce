package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum enabled log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Encoding selects the output format (json or console).
	Encoding string `mapstructure:"encoding" default:"json"`
}
