package bootstrap

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-corpus"
	"github.com/goliatone/go-corpus/internal/logging"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// Options captures configuration for corpus CLI bootstraps.
type Options struct {
	ContentDir string
	Pattern    string
	Recursive  bool
	Separator  string
	LogLevel   string
	LogFormat  string
	Quiet      bool
}

// Module wraps the corpus module with the handlers and logger the CLI drives.
type Module struct {
	Module   *corpus.Module
	Handlers *corpus.HandlerSet
	Logger   interfaces.Logger
}

// BuildModule constructs a corpus module configured for lint operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := corpus.DefaultConfig()
	cfg.Corpus.ContentDir = strings.TrimSpace(opts.ContentDir)
	if cfg.Corpus.ContentDir == "" {
		cfg.Corpus.ContentDir = "content"
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Corpus.Pattern = trimmed
	}
	if trimmed := strings.TrimSpace(opts.Separator); trimmed != "" {
		cfg.Corpus.Separator = trimmed
	}
	cfg.Corpus.Recursive = opts.Recursive

	if opts.Quiet {
		cfg.Logging.Provider = "noop"
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogFormat); trimmed != "" {
		cfg.Logging.Format = trimmed
	}

	module, err := corpus.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialise corpus module: %w", err)
	}

	handlers, err := module.RegisterCommands(nil)
	if err != nil {
		return nil, fmt.Errorf("wire corpus commands: %w", err)
	}

	logger := logging.LintLogger(module.LoggerProvider())

	return &Module{
		Module:   module,
		Handlers: handlers,
		Logger:   logger,
	}, nil
}
