package model

// Config holds the application configuration
type Config struct {
	// Executable is the last game executable used for a submission
	Executable string

	// Staged writes both target files through temp files and renames them
	// into place, restoring the first if the second fails
	Staged bool

	// LogLevel is one of debug, info, warn, error
	LogLevel string

	// LogFormat is text or json
	LogFormat string

	// HistoryEnabled records each successful submission in the history store
	HistoryEnabled bool
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Staged:         true,
		LogLevel:       "info",
		LogFormat:      "text",
		HistoryEnabled: true,
	}
}
