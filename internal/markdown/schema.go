package markdown

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrMetadataInvalid marks records whose metadata block decodes but violates
// the front-matter contract (missing required key, wrong value shape).
var ErrMetadataInvalid = errors.New("markdown: metadata invalid")

// frontMatterSchema is the structural contract every metadata block must
// satisfy before an article is built from it.
var frontMatterSchema = map[string]any{
	"type":     "object",
	"required": []any{"title", "slug", "date"},
	"properties": map[string]any{
		"title":       map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"slug":        map[string]any{"type": "string", "minLength": 1},
		"date":        map[string]any{"type": "string", "minLength": 1},
		"image":       map[string]any{"type": "string"},
		"categories": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"tags": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"weight": map[string]any{"type": "integer"},
	},
	"additionalProperties": true,
}

// MetadataIssue captures a single schema violation with its location inside
// the metadata block.
type MetadataIssue struct {
	Location string
	Message  string
}

// MetadataError aggregates every schema violation found in one record.
type MetadataError struct {
	Issues []MetadataIssue
	Cause  error
}

func (e *MetadataError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return ErrMetadataInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return fmt.Sprintf("%s: %s", ErrMetadataInvalid.Error(), strings.Join(parts, "; "))
}

func (e *MetadataError) Unwrap() error {
	return ErrMetadataInvalid
}

var compileOnce = sync.OnceValues(func() (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(frontMatterSchema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("frontmatter.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("frontmatter.json")
})

// validateMetadata checks the generic metadata view against the front-matter
// contract. Payloads pass through a JSON round-trip so the validator only
// ever sees JSON-compatible values.
func validateMetadata(raw map[string]any) error {
	compiled, err := compileOnce()
	if err != nil {
		return fmt.Errorf("compile front-matter schema: %w", err)
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return &MetadataError{
			Issues: []MetadataIssue{{Message: err.Error()}},
			Cause:  err,
		}
	}
	var payload any
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return &MetadataError{
			Issues: []MetadataIssue{{Message: err.Error()}},
			Cause:  err,
		}
	}

	if err := compiled.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &MetadataError{
				Issues: collectIssues(validationErr),
				Cause:  err,
			}
		}
		return &MetadataError{
			Issues: []MetadataIssue{{Message: err.Error()}},
			Cause:  err,
		}
	}
	return nil
}

func collectIssues(err *jsonschema.ValidationError) []MetadataIssue {
	if err == nil {
		return nil
	}
	issues := []MetadataIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, MetadataIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
