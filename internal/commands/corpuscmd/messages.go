package corpuscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	loadDirectoryMessageType     = "corpus.load_directory"
	validateDirectoryMessageType = "corpus.validate_directory"
)

// LoadDirectoryCommand triggers a filesystem walk for corpus records under
// the provided Directory and reports what was found.
type LoadDirectoryCommand struct {
	// Directory selects the path (relative to the corpus root) to load.
	Directory string `json:"directory"`
}

// Type implements command.Message.
func (LoadDirectoryCommand) Type() string { return loadDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd LoadDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("corpus.load_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}

// ValidateDirectoryCommand loads corpus records under Directory and checks
// every collection invariant, accumulating all violations in one pass.
type ValidateDirectoryCommand struct {
	// Directory selects the path (relative to the corpus root) to validate.
	Directory string `json:"directory"`
	// FailOnParseErrors treats malformed records as defects rather than
	// reportable noise.
	FailOnParseErrors bool `json:"fail_on_parse_errors,omitempty"`
}

// Type implements command.Message.
func (ValidateDirectoryCommand) Type() string { return validateDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ValidateDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("corpus.validate_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
