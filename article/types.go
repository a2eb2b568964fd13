package article

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Article is one content record: a front-matter metadata block followed by a
// Markdown body. Records are authored once and edited in place; the store
// never mutates them after construction.
type Article struct {
	ID          uuid.UUID
	Title       string
	Description string
	Slug        string
	Date        time.Time
	Image       string
	Categories  []string
	Tags        []string
	// Weight overrides display ordering when non-zero. Lower weights list
	// first; unweighted records fall back to date ordering.
	Weight int
	Body   []byte
	// Custom preserves front-matter keys outside the canonical set so
	// serialization round-trips do not lose author-supplied metadata.
	Custom map[string]any
	Source Ref
}

// Ref locates a record inside the corpus source tree. Files may hold several
// records concatenated behind separator tokens, so the index disambiguates.
type Ref struct {
	// Path is the file path relative to the corpus root.
	Path string
	// Record is the zero-based index of the record within the file.
	Record int
	// Line is the 1-based line the record starts on.
	Line int
}

// String renders the reference as path#record, appending the line when known.
func (r Ref) String() string {
	if r.Path == "" {
		return fmt.Sprintf("#%d", r.Record)
	}
	if r.Line > 0 {
		return fmt.Sprintf("%s#%d (line %d)", r.Path, r.Record, r.Line)
	}
	return fmt.Sprintf("%s#%d", r.Path, r.Record)
}
