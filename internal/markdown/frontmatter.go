package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-corpus/article"
	"github.com/goliatone/go-corpus/internal/identity"
)

const frontMatterDelimiter = "---"

// Meta is the canonical front-matter contract for a record. Keys outside the
// canonical set land in Custom and survive serialization round-trips.
type Meta struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description,omitempty"`
	Slug        string         `yaml:"slug"`
	Date        time.Time      `yaml:"date"`
	Image       string         `yaml:"image,omitempty"`
	Categories  []string       `yaml:"categories,omitempty"`
	Tags        []string       `yaml:"tags,omitempty"`
	Weight      int            `yaml:"weight,omitempty"`
	Custom      map[string]any `yaml:",inline"`
}

// ParseFrontMatter extracts metadata and the Markdown body from a record's
// source bytes. The metadata block is mandatory; a record without one is
// malformed.
func ParseFrontMatter(source []byte) (Meta, []byte, error) {
	var meta Meta

	body, err := frontmatter.MustParse(bytes.NewReader(source), &meta)
	if err != nil {
		return Meta{}, nil, fmt.Errorf("parse front matter: %w", err)
	}

	return meta, bytes.TrimLeft(body, "\r\n"), nil
}

// Serialize renders an article back to its delimited-block text form. The
// output parses back into an identical article.
func Serialize(a *article.Article) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("serialize: article is nil")
	}

	meta := Meta{
		Title:       a.Title,
		Description: a.Description,
		Slug:        a.Slug,
		Date:        a.Date,
		Image:       a.Image,
		Categories:  append([]string(nil), a.Categories...),
		Tags:        append([]string(nil), a.Tags...),
		Weight:      a.Weight,
		Custom:      cloneMap(a.Custom),
	}

	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(meta); err != nil {
		return nil, fmt.Errorf("serialize front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("serialize front matter: %w", err)
	}

	buf.WriteString(frontMatterDelimiter + "\n")
	buf.Write(a.Body)

	return buf.Bytes(), nil
}

func buildArticle(ref article.Ref, meta Meta, body []byte) *article.Article {
	return &article.Article{
		ID:          identity.ArticleUUID(meta.Slug),
		Title:       meta.Title,
		Description: meta.Description,
		Slug:        meta.Slug,
		Date:        meta.Date,
		Image:       meta.Image,
		Categories:  append([]string(nil), meta.Categories...),
		Tags:        append([]string(nil), meta.Tags...),
		Weight:      meta.Weight,
		Body:        body,
		Custom:      cloneMap(meta.Custom),
		Source:      ref,
	}
}

// rawMetadata rebuilds the generic key/value view of the metadata block so it
// can be checked against the front-matter schema. Canonical keys are included
// only when present in the source, which lets the schema report missing
// required keys.
func rawMetadata(meta Meta) map[string]any {
	raw := make(map[string]any, len(meta.Custom)+8)
	for key, value := range meta.Custom {
		raw[key] = normalizeYAMLValue(value)
	}

	if meta.Title != "" {
		raw["title"] = meta.Title
	}
	if meta.Description != "" {
		raw["description"] = meta.Description
	}
	if meta.Slug != "" {
		raw["slug"] = meta.Slug
	}
	if !meta.Date.IsZero() {
		raw["date"] = meta.Date.Format(time.RFC3339)
	}
	if meta.Image != "" {
		raw["image"] = meta.Image
	}
	if len(meta.Categories) > 0 {
		raw["categories"] = toAnySlice(meta.Categories)
	}
	if len(meta.Tags) > 0 {
		raw["tags"] = toAnySlice(meta.Tags)
	}
	if meta.Weight != 0 {
		raw["weight"] = meta.Weight
	}

	return raw
}

// normalizeYAMLValue rewrites YAML decoder output into JSON-compatible shapes
// (string-keyed maps) so schema validation can run over it.
func normalizeYAMLValue(value any) any {
	switch typed := value.(type) {
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, val := range typed {
			out[fmt.Sprint(key)] = normalizeYAMLValue(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, val := range typed {
			out[key] = normalizeYAMLValue(val)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, val := range typed {
			out[i] = normalizeYAMLValue(val)
		}
		return out
	default:
		return value
	}
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
