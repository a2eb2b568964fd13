package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-corpus/article"
	"github.com/goliatone/go-corpus/internal/logging"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// Config controls how the corpus service discovers and parses files.
type Config struct {
	BasePath  string
	Pattern   string
	Recursive bool
	Separator string
}

// Service exposes the high-level corpus workflows: load individual files,
// load whole directories, and build a read-only store from the result.
type Service struct {
	cfg    Config
	loader *Loader
	logger interfaces.Logger
}

// NewService constructs a corpus service rooted at cfg.BasePath. A nil
// logger falls back to the no-op implementation.
func NewService(cfg Config, logger interfaces.Logger) (*Service, error) {
	filesystem, err := prepareFilesystem(cfg.BasePath)
	if err != nil {
		return nil, err
	}
	return NewServiceWithFS(filesystem, cfg, logger), nil
}

// NewServiceWithFS constructs a corpus service over an arbitrary filesystem.
// Primarily used by tests and embedded corpora.
func NewServiceWithFS(filesystem fs.FS, cfg Config, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}

	loader := NewLoader(filesystem, LoaderConfig{
		BasePath:  cfg.BasePath,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
		Separator: cfg.Separator,
	})

	return &Service{
		cfg:    cfg,
		loader: loader,
		logger: logger,
	}
}

// Load reads and parses a single file relative to the configured base path.
func (s *Service) Load(ctx context.Context, path string) (*FileResult, error) {
	return s.loader.LoadFile(ctx, path)
}

// LoadDirectory reads every corpus file within the supplied directory.
func (s *Service) LoadDirectory(ctx context.Context, dir string) (*LoadResult, error) {
	result, err := s.loader.LoadDirectory(ctx, normalizeDir(dir))
	if err != nil {
		return nil, err
	}

	logging.WithFields(s.logger, map[string]any{
		"files":        result.Files,
		"articles":     len(result.Articles),
		"parse_errors": len(result.ParseErrors),
	}).Debug("corpus.load_directory.completed")

	for _, parseErr := range result.ParseErrors {
		logging.WithRecordContext(s.logger, parseErr.Source.Path, parseErr.Source.Record, "").
			Warn("corpus.load_directory.record_malformed", "error", parseErr)
	}

	return result, nil
}

// BuildStore loads dir and assembles the immutable article store, carrying
// parse failures along so callers can report them without losing access to
// the well-formed records.
func (s *Service) BuildStore(ctx context.Context, dir string) (*article.Store, error) {
	result, err := s.LoadDirectory(ctx, dir)
	if err != nil {
		return nil, err
	}
	return article.NewStore(result.Articles, article.WithParseErrors(result.ParseErrors)), nil
}

func normalizeDir(dir string) string {
	if strings.TrimSpace(dir) == "" {
		return "."
	}
	return dir
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("corpus service: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
