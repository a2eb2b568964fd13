package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestValidateRequiresContentDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Corpus.ContentDir = "   "

	if err := cfg.Validate(); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestValidateRejectsMultiLineSeparator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Corpus.Separator = "<!--a-->\n<!--b-->"

	if err := cfg.Validate(); !errors.Is(err, ErrSeparatorInvalid) {
		t.Fatalf("expected ErrSeparatorInvalid, got %v", err)
	}
}

func TestValidateAcceptsCustomSeparator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Corpus.Separator = "<!--record-->"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected custom separator to validate, got %v", err)
	}
}

func TestValidateLoggingOptions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{
			name:   "unknown provider",
			mutate: func(c *Config) { c.Logging.Provider = "syslog" },
			want:   ErrLoggingProviderUnknown,
		},
		{
			name:   "unknown level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
			want:   ErrLoggingLevelInvalid,
		},
		{
			name:   "unknown format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			want:   ErrLoggingFormatInvalid,
		},
		{
			name:   "noop provider",
			mutate: func(c *Config) { c.Logging.Provider = "noop" },
			want:   nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
