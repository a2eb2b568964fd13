package article

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrArticleNotFound = errors.New("article: not found")
	ErrTitleRequired   = errors.New("article: title is required")
	ErrSlugRequired    = errors.New("article: slug is required")
	ErrSlugInvalid     = errors.New("article: slug contains invalid characters")
	ErrDateRequired    = errors.New("article: date is required")
	ErrBodyRequired    = errors.New("article: body must not be empty")
	ErrDuplicateSlug   = errors.New("article: duplicate slug")
	ErrRecordMalformed = errors.New("article: record metadata is malformed")
)

// NotFoundError reports a failed slug lookup. Static reads have no transient
// failure mode, so callers should not retry.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	if e == nil || strings.TrimSpace(e.Slug) == "" {
		return ErrArticleNotFound.Error()
	}
	return fmt.Sprintf("%s: slug=%s", ErrArticleNotFound.Error(), e.Slug)
}

func (e *NotFoundError) Unwrap() error {
	return ErrArticleNotFound
}

// ParseError reports a malformed metadata block for a single record. Parsing
// failures are isolated to the offending record; the rest of the collection
// stays readable.
type ParseError struct {
	Source Ref
	Cause  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ErrRecordMalformed.Error()
	}
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrRecordMalformed.Error(), e.Source)
	}
	return fmt.Sprintf("%s: %s: %v", ErrRecordMalformed.Error(), e.Source, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return ErrRecordMalformed
}

// ValidationError reports an invariant violation on a structurally valid
// record. Violations are collected in aggregate rather than failing fast so
// authors see every problem in one pass. Collection-level defects such as
// duplicate slugs reference every offending record.
type ValidationError struct {
	// Field names the offending attribute; empty for collection-level checks.
	Field   string
	Message string
	// Slugs lists the slug of each record involved. A single entry except
	// for duplicate-slug defects, where all colliding records appear.
	Slugs []string
	// Refs locates each record involved.
	Refs []Ref

	err error
}

func (e ValidationError) Error() string {
	var sb strings.Builder
	if e.err != nil {
		sb.WriteString(e.err.Error())
	} else {
		sb.WriteString("article: validation failed")
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if len(e.Refs) > 0 {
		locs := make([]string, 0, len(e.Refs))
		for _, ref := range e.Refs {
			locs = append(locs, ref.String())
		}
		sb.WriteString(" [")
		sb.WriteString(strings.Join(locs, ", "))
		sb.WriteString("]")
	}
	return sb.String()
}

func (e ValidationError) Unwrap() error {
	return e.err
}

func newValidationError(err error, field, message string, slug string, ref Ref) ValidationError {
	return ValidationError{
		Field:   field,
		Message: message,
		Slugs:   []string{slug},
		Refs:    []Ref{ref},
		err:     err,
	}
}
