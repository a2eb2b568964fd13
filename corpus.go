package corpus

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-corpus/article"
	"github.com/goliatone/go-corpus/internal/commands/corpuscmd"
	"github.com/goliatone/go-corpus/internal/logging"
	"github.com/goliatone/go-corpus/internal/logging/gologger"
	"github.com/goliatone/go-corpus/internal/markdown"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// Store exports the article store type for consumers of the corpus package.
type Store = article.Store

// Article exports the content record type.
type Article = article.Article

// ValidationError exports the accumulated invariant violation type.
type ValidationError = article.ValidationError

// ParseError exports the malformed-record error type.
type ParseError = article.ParseError

// NotFoundError exports the failed-lookup error type.
type NotFoundError = article.NotFoundError

// Outline exports the body structure summary.
type Outline = markdown.Outline

// Heading exports one entry of a body outline.
type Heading = markdown.Heading

// CommandRegistry exports the command registration contract.
type CommandRegistry = corpuscmd.CommandRegistry

// HandlerSet exports the registered corpus command handlers.
type HandlerSet = corpuscmd.HandlerSet

// Module is the top level corpus runtime façade: configuration, logging, and
// the loader service behind a read-only article store.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	service  *markdown.Service

	loadOnce sync.Once
	loadErr  error
	store    *article.Store
}

// New constructs a corpus module from the provided configuration. The
// content directory must exist; records are not read until Load.
func New(cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := buildLoggerProvider(cfg.Logging)
	if err != nil {
		return nil, err
	}

	service, err := markdown.NewService(markdown.Config{
		BasePath:  cfg.Corpus.ContentDir,
		Pattern:   cfg.Corpus.Pattern,
		Recursive: cfg.Corpus.Recursive,
		Separator: cfg.Corpus.Separator,
	}, logging.LoaderLogger(provider))
	if err != nil {
		return nil, err
	}

	return &Module{
		cfg:      cfg,
		provider: provider,
		service:  service,
	}, nil
}

// Load reads the whole corpus into an immutable snapshot. Subsequent calls
// return the same snapshot; build a new Module to pick up edited files.
func (m *Module) Load(ctx context.Context) (*article.Store, error) {
	m.loadOnce.Do(func() {
		m.store, m.loadErr = m.service.BuildStore(ctx, ".")
	})
	return m.store, m.loadErr
}

// Articles returns the loaded snapshot, or nil before Load succeeds.
func (m *Module) Articles() *article.Store {
	if m == nil {
		return nil
	}
	return m.store
}

// Serialize renders an article back to its delimited-block text form.
func (m *Module) Serialize(a *article.Article) ([]byte, error) {
	return markdown.Serialize(a)
}

// Inspect summarises the structure of a Markdown body without rendering it.
func (m *Module) Inspect(body []byte) (*Outline, error) {
	return markdown.Inspect(body)
}

// LoggerProvider exposes the configured logger provider for host wiring.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil {
		return nil
	}
	return m.provider
}

// RegisterCommands wires the corpus command handlers against this module's
// loader service.
func (m *Module) RegisterCommands(reg CommandRegistry, opts ...corpuscmd.Option) (*HandlerSet, error) {
	return corpuscmd.RegisterCorpusCommands(reg, m.service, m.provider, opts...)
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "noop":
		return noopProvider{}, nil
	case "", "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, fmt.Errorf("corpus: configure logging: %w", err)
		}
		return provider, nil
	default:
		return nil, ErrLoggingProviderUnknown
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
