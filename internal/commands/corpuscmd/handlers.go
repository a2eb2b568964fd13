package corpuscmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-corpus/article"
	"github.com/goliatone/go-corpus/internal/commands"
	"github.com/goliatone/go-corpus/internal/logging"
	"github.com/goliatone/go-corpus/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	loadOperation     = "corpus.load_directory"
	validateOperation = "corpus.validate_directory"
)

// ErrCorpusInvalid is returned when a validate run finds at least one defect.
var ErrCorpusInvalid = errors.New("corpus command: collection has defects")

// Service is the corpus surface the command handlers drive.
type Service interface {
	BuildStore(ctx context.Context, dir string) (*article.Store, error)
}

var (
	_ command.Commander[LoadDirectoryCommand]     = (*LoadDirectoryHandler)(nil)
	_ command.Commander[ValidateDirectoryCommand] = (*ValidateDirectoryHandler)(nil)
)

// LoadDirectoryHandler walks a corpus directory and reports record counts.
type LoadDirectoryHandler struct {
	inner *commands.Handler[LoadDirectoryCommand]
}

// NewLoadDirectoryHandler creates a handler bound to the supplied service.
func NewLoadDirectoryHandler(service Service, logger interfaces.Logger, opts ...commands.HandlerOption[LoadDirectoryCommand]) *LoadDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg LoadDirectoryCommand) error {
		store, err := service.BuildStore(ctx, msg.Directory)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"article_count":     store.Len(),
			"parse_error_count": len(store.ParseErrors()),
		}).Info("corpus.command.load_directory.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[LoadDirectoryCommand]{
		commands.WithLogger[LoadDirectoryCommand](baseLogger),
		commands.WithOperation[LoadDirectoryCommand](loadOperation),
		commands.WithMessageFields(func(msg LoadDirectoryCommand) map[string]any {
			return map[string]any{"directory": msg.Directory}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &LoadDirectoryHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *LoadDirectoryHandler) Execute(ctx context.Context, msg LoadDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ValidateDirectoryHandler checks every collection invariant under a
// directory and fails when defects are found, after reporting all of them.
type ValidateDirectoryHandler struct {
	inner *commands.Handler[ValidateDirectoryCommand]
}

// NewValidateDirectoryHandler creates a handler bound to the supplied service.
func NewValidateDirectoryHandler(service Service, logger interfaces.Logger, opts ...commands.HandlerOption[ValidateDirectoryCommand]) *ValidateDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ValidateDirectoryCommand) error {
		store, err := service.BuildStore(ctx, msg.Directory)
		if err != nil {
			return err
		}

		violations := store.Validate()
		parseErrs := store.ParseErrors()

		for _, violation := range violations {
			baseLogger.Warn("corpus.command.validate_directory.violation", "error", violation)
		}
		for _, parseErr := range parseErrs {
			logging.WithRecordContext(baseLogger, parseErr.Source.Path, parseErr.Source.Record, "").
				Warn("corpus.command.validate_directory.record_malformed", "error", parseErr)
		}

		logging.WithFields(baseLogger, map[string]any{
			"article_count":     store.Len(),
			"violation_count":   len(violations),
			"parse_error_count": len(parseErrs),
		}).Info("corpus.command.validate_directory.completed")

		defects := len(violations)
		if msg.FailOnParseErrors {
			defects += len(parseErrs)
		}
		if defects > 0 {
			return fmt.Errorf("%w: %d defect(s) in %s", ErrCorpusInvalid, defects, msg.Directory)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ValidateDirectoryCommand]{
		commands.WithLogger[ValidateDirectoryCommand](baseLogger),
		commands.WithOperation[ValidateDirectoryCommand](validateOperation),
		commands.WithMessageFields(func(msg ValidateDirectoryCommand) map[string]any {
			return map[string]any{
				"directory":            msg.Directory,
				"fail_on_parse_errors": msg.FailOnParseErrors,
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ValidateDirectoryHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *ValidateDirectoryHandler) Execute(ctx context.Context, msg ValidateDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
