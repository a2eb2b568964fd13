package runtimeconfig

import (
	"errors"
	"strings"
)

var (
	ErrContentDirRequired     = errors.New("config: corpus content dir is required")
	ErrSeparatorInvalid       = errors.New("config: record separator must be a single token line")
	ErrLoggingProviderUnknown = errors.New("config: logging provider unknown")
	ErrLoggingLevelInvalid    = errors.New("config: logging level invalid")
	ErrLoggingFormatInvalid   = errors.New("config: logging format invalid")
)

// Config is the root runtime configuration for the corpus module.
type Config struct {
	Corpus  CorpusConfig
	Logging LoggingConfig
}

// CorpusConfig captures filesystem behaviour for corpus ingestion.
type CorpusConfig struct {
	// ContentDir is the directory holding the corpus files.
	ContentDir string
	// Pattern limits discovery to matching files.
	Pattern string
	// Recursive controls sub-directory traversal.
	Recursive bool
	// Separator is the token line splitting concatenated records in a file.
	Separator string
}

// LoggingConfig selects and tunes the logger provider.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the canonical defaults for the corpus runtime.
func DefaultConfig() Config {
	return Config{
		Corpus: CorpusConfig{
			ContentDir: "content",
			Pattern:    "*.md",
			Recursive:  true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
	}
}

// Validate reports the first configuration defect found. Empty optional
// values fall back to defaults at wiring time and are not defects.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Corpus.ContentDir) == "" {
		return ErrContentDirRequired
	}

	if sep := c.Corpus.Separator; sep != "" {
		trimmed := strings.TrimSpace(sep)
		if trimmed == "" || strings.ContainsAny(trimmed, "\r\n") {
			return ErrSeparatorInvalid
		}
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Provider)) {
	case "", "gologger", "noop":
	default:
		return ErrLoggingProviderUnknown
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	return nil
}
