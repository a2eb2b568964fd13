package markdown

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Outline summarises the structure of a Markdown body without rendering it:
// the heading hierarchy plus the language hints on fenced code blocks.
type Outline struct {
	Headings []Heading
	// CodeLanguages lists the distinct fence language hints in order of
	// first appearance. Fences without a hint contribute nothing.
	CodeLanguages []string
}

// Heading is one entry of the body outline.
type Heading struct {
	Level int
	Text  string
}

// Inspect walks the Markdown AST of body and extracts its outline. Only the
// parser side of goldmark is used; nothing is rendered.
func Inspect(body []byte) (*Outline, error) {
	engine := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := engine.Parser().Parse(text.NewReader(body))

	outline := &Outline{}
	seen := map[string]struct{}{}

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch typed := node.(type) {
		case *ast.Heading:
			outline.Headings = append(outline.Headings, Heading{
				Level: typed.Level,
				Text:  string(typed.Text(body)),
			})
		case *ast.FencedCodeBlock:
			lang := typed.Language(body)
			if len(lang) == 0 {
				break
			}
			key := string(lang)
			if _, ok := seen[key]; ok {
				break
			}
			seen[key] = struct{}{}
			outline.CodeLanguages = append(outline.CodeLanguages, key)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("inspect body: %w", err)
	}

	return outline, nil
}
