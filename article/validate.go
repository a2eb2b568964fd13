package article

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks a single record against the per-item invariants: required
// title and slug, URL-safe slug, parseable non-zero date, non-empty body.
// All violations found are returned rather than stopping at the first.
// Collection-level invariants (slug uniqueness) live on the Store.
func Validate(a *Article) []ValidationError {
	if a == nil {
		return nil
	}

	err := validation.ValidateStruct(a,
		validation.Field(&a.Title, validation.Required.Error("title is required")),
		validation.Field(&a.Slug,
			validation.Required.Error("slug is required"),
			validation.By(checkSlug),
		),
		validation.Field(&a.Date, validation.By(checkDate)),
		validation.Field(&a.Body, validation.Required.Error("body must not be empty")),
	)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validation.Errors)
	if !ok {
		return []ValidationError{newValidationError(nil, "", err.Error(), a.Slug, a.Source)}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, field := range []string{"Title", "Slug", "Date", "Body"} {
		fieldErr, found := fieldErrs[field]
		if !found || fieldErr == nil {
			continue
		}
		out = append(out, newValidationError(
			sentinelFor(field, fieldErr),
			fieldName(field),
			fieldErr.Error(),
			a.Slug,
			a.Source,
		))
	}
	return out
}

func checkSlug(value any) error {
	raw, _ := value.(string)
	if raw == "" {
		// Required already reports the missing value.
		return nil
	}
	if !IsValidSlug(raw) {
		return validation.NewError("corpus.article.slug_invalid", "slug contains invalid characters")
	}
	return nil
}

func checkDate(value any) error {
	date, _ := value.(time.Time)
	if date.IsZero() {
		return validation.NewError("corpus.article.date_required", "date is required")
	}
	return nil
}

func sentinelFor(field string, err error) error {
	switch field {
	case "Title":
		return ErrTitleRequired
	case "Slug":
		if vErr, ok := err.(validation.Error); ok && vErr.Code() == "corpus.article.slug_invalid" {
			return ErrSlugInvalid
		}
		return ErrSlugRequired
	case "Date":
		return ErrDateRequired
	case "Body":
		return ErrBodyRequired
	default:
		return nil
	}
}

func fieldName(field string) string {
	switch field {
	case "Title":
		return "title"
	case "Slug":
		return "slug"
	case "Date":
		return "date"
	case "Body":
		return "body"
	default:
		return field
	}
}
