package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `mapstructure:"level" default:"warn"`
	// Format is the log encoding (console or json).
	Format string `mapstructure:"format" default:"console"`
}
