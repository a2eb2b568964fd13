package corpuscmd

import (
	"errors"

	"github.com/goliatone/go-corpus/internal/commands"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the corpus command handlers produced by
// RegisterCorpusCommands.
type HandlerSet struct {
	Load     *LoadDirectoryHandler
	Validate *ValidateDirectoryHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	loadHandlerOpts     []commands.HandlerOption[LoadDirectoryCommand]
	validateHandlerOpts []commands.HandlerOption[ValidateDirectoryCommand]
}

// WithLoadHandlerOptions forwards options to the LoadDirectoryHandler
// constructor.
func WithLoadHandlerOptions(opts ...commands.HandlerOption[LoadDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.loadHandlerOpts = append(cfg.loadHandlerOpts, opts...)
	}
}

// WithValidateHandlerOptions forwards options to the
// ValidateDirectoryHandler constructor.
func WithValidateHandlerOptions(opts ...commands.HandlerOption[ValidateDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.validateHandlerOpts = append(cfg.validateHandlerOpts, opts...)
	}
}

// RegisterCorpusCommands builds the corpus command handlers and registers
// them with the provided registry. The returned HandlerSet lets callers wire
// additional integrations (dispatcher, cron) as needed.
func RegisterCorpusCommands(reg CommandRegistry, service Service, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("corpus command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "corpus")

	loadHandler := NewLoadDirectoryHandler(service, logger, cfg.loadHandlerOpts...)
	validateHandler := NewValidateDirectoryHandler(service, logger, cfg.validateHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(loadHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(validateHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Load:     loadHandler,
		Validate: validateHandler,
	}, nil
}
