package markdown

import (
	"bytes"
	"strings"

	"github.com/goliatone/go-corpus/article"
)

// DefaultSeparator is the token line splitting concatenated records within a
// single physical file.
const DefaultSeparator = "<!--article-->"

// Record is one raw segment of a physical file, before parsing.
type Record struct {
	Source []byte
	// Index is the zero-based position among the file's records.
	Index int
	// Line is the 1-based line the record starts on.
	Line int
}

// SplitRecords cuts file data into independent records on separator token
// lines. Whitespace-only segments are dropped; everything else is handed to
// the parser untouched so parse failures point at real content.
func SplitRecords(data []byte, separator string) []Record {
	separator = strings.TrimSpace(separator)
	if separator == "" {
		separator = DefaultSeparator
	}

	var (
		records []Record
		segment bytes.Buffer
		startAt int
		lineNo  int
	)

	flush := func() {
		if segment.Len() > 0 {
			records = append(records, Record{
				Source: append([]byte(nil), segment.Bytes()...),
				Index:  len(records),
				Line:   startAt,
			})
		}
		segment.Reset()
	}

	for _, line := range strings.SplitAfter(string(data), "\n") {
		if line == "" {
			continue
		}
		lineNo++
		if strings.TrimSpace(line) == separator {
			flush()
			continue
		}
		if segment.Len() == 0 {
			if strings.TrimSpace(line) == "" {
				// Drop blank padding between separator and record.
				continue
			}
			// Anchor the record at its first non-blank line.
			startAt = lineNo
		}
		segment.WriteString(line)
	}
	flush()

	return records
}

// ParseRecord decodes one delimited segment into an article. Failures are
// returned as a ParseError locating the offending record; the caller decides
// whether to collect or abort.
func ParseRecord(ref article.Ref, source []byte) (*article.Article, *article.ParseError) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, &article.ParseError{Source: ref, Cause: err}
	}
	if err := validateMetadata(rawMetadata(meta)); err != nil {
		return nil, &article.ParseError{Source: ref, Cause: err}
	}
	return buildArticle(ref, meta, body), nil
}
