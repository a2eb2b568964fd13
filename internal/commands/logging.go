package commands

import (
	"strings"

	"github.com/goliatone/go-corpus/internal/logging"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// CommandLogger returns the logger namespace reserved for command handlers of
// the given module.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := "corpus.commands"
	if trimmed := strings.TrimSpace(module); trimmed != "" {
		name = name + "." + trimmed
	}
	return logging.ModuleLogger(provider, name)
}
