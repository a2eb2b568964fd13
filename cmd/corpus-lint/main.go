package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-corpus/cmd/corpus-lint/internal/bootstrap"
	"github.com/goliatone/go-corpus/internal/commands/corpuscmd"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runLint(os.Args[1:]); err != nil {
		if errors.Is(err, corpuscmd.ErrCorpusInvalid) {
			fmt.Fprintf(os.Stderr, "corpus lint: %v\n", err)
			os.Exit(1)
		}
		log.Fatalf("corpus lint: %v", err)
	}
}

func runLint(args []string) error {
	fs := flag.NewFlagSet("corpus-lint", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the corpus content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering corpus files")
	recursive := fs.Bool("recursive", true, "Descend into subdirectories of the content root")
	separator := fs.String("separator", "", "Record separator token (defaults to the built-in token)")
	directory := fs.String("directory", ".", "Directory to lint, relative to the content root")
	failOnParse := fs.Bool("fail-on-parse-errors", true, "Treat malformed records as defects")
	logLevel := fs.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")
	quiet := fs.Bool("quiet", false, "Suppress log output, report only the exit status")

	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
		Recursive:  *recursive,
		Separator:  *separator,
		LogLevel:   *logLevel,
		LogFormat:  *logFormat,
		Quiet:      *quiet,
	}

	module, err := moduleBuilder(opts)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Handlers == nil || module.Handlers.Validate == nil {
		return fmt.Errorf("validate handler not configured")
	}

	ctx := context.Background()

	cmd := corpuscmd.ValidateDirectoryCommand{
		Directory:         *directory,
		FailOnParseErrors: *failOnParse,
	}
	if err := module.Handlers.Validate.Execute(ctx, cmd); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "corpus lint completed without defects")

	return nil
}
