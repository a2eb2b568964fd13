package markdown

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-corpus/article"
)

// LoaderConfig configures how corpus files are discovered within a base
// directory.
type LoaderConfig struct {
	// BasePath is the root directory where corpus files live.
	BasePath string
	// Pattern limits discovered files to those matching the supplied glob
	// (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	// Separator is the token line splitting concatenated records inside one
	// physical file (defaults to DefaultSeparator).
	Separator string
}

// Loader turns filesystem paths into parsed articles. Parsing failures are
// isolated per record; only filesystem-level failures abort a load.
type Loader struct {
	fs        fs.FS
	basePath  string
	pattern   string
	recursive bool
	separator string
}

// NewLoader constructs a Loader over the provided filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}
	separator := strings.TrimSpace(cfg.Separator)
	if separator == "" {
		separator = DefaultSeparator
	}

	return &Loader{
		fs:        filesystem,
		basePath:  filepath.Clean(cfg.BasePath),
		pattern:   pattern,
		recursive: cfg.Recursive,
		separator: separator,
	}
}

// FileResult carries everything parsed out of one physical file.
type FileResult struct {
	Path        string
	Articles    []*article.Article
	ParseErrors []*article.ParseError
	// Checksum is a SHA-256 digest of the file content so callers can detect
	// changes without re-reading unchanged files.
	Checksum []byte
}

// LoadResult aggregates a directory load.
type LoadResult struct {
	Articles    []*article.Article
	ParseErrors []*article.ParseError
	Files       int
}

// LoadFile reads one physical file and parses every record in it. Records
// that fail to parse land in ParseErrors; the rest are returned as articles.
func (l *Loader) LoadFile(ctx context.Context, path string) (*FileResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	rel, err := l.makeRelative(path)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("corpus loader read %s: %w", rel, err)
	}

	sum := sha256.Sum256(data)
	result := &FileResult{
		Path:     rel,
		Checksum: sum[:],
	}

	for _, rec := range SplitRecords(data, l.separator) {
		ref := article.Ref{Path: rel, Record: rec.Index, Line: rec.Line}
		parsed, parseErr := ParseRecord(ref, rec.Source)
		if parseErr != nil {
			result.ParseErrors = append(result.ParseErrors, parseErr)
			continue
		}
		result.Articles = append(result.Articles, parsed)
	}

	return result, nil
}

// LoadDirectory discovers corpus files under dir and parses every record.
// One malformed record, or one file full of malformed records, never blocks
// the rest of the collection.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	root, err := l.makeRelative(dir)
	if err != nil {
		return nil, err
	}
	root = filepath.Clean(root)

	var files []*FileResult

	walkErr := fs.WalkDir(l.fs, root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if !l.shouldRecurse(root, path) {
				return fs.SkipDir
			}
			return nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel := filepath.ToSlash(path)
		if !l.matchesPattern(rel) {
			return nil
		}

		result, err := l.LoadFile(ctx, rel)
		if err != nil {
			return err
		}
		files = append(files, result)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	out := &LoadResult{Files: len(files)}
	for _, file := range files {
		out.Articles = append(out.Articles, file.Articles...)
		out.ParseErrors = append(out.ParseErrors, file.ParseErrors...)
	}
	return out, nil
}

func (l *Loader) shouldRecurse(root, current string) bool {
	if l.recursive {
		return true
	}
	// With recursion disabled, only the root directory itself is walked.
	return filepath.Clean(root) == filepath.Clean(current)
}

func (l *Loader) matchesPattern(path string) bool {
	// fs.WalkDir yields slash-separated paths, so normalise the pattern too.
	pattern := filepath.ToSlash(l.pattern)
	if strings.Contains(pattern, "**") {
		pattern = strings.ReplaceAll(pattern, "**/", "")
	}
	target := filepath.Base(path)
	if strings.Contains(pattern, "/") {
		target = path
	}
	match, err := filepath.Match(pattern, target)
	if err != nil {
		return false
	}
	return match
}

func (l *Loader) makeRelative(path string) (string, error) {
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) {
		return clean, nil
	}
	if l.basePath == "" {
		return "", fmt.Errorf("corpus loader: absolute path %s provided without base path", path)
	}
	rel, err := filepath.Rel(l.basePath, clean)
	if err != nil {
		return "", fmt.Errorf("corpus loader: make relative %s: %w", path, err)
	}
	return rel, nil
}
