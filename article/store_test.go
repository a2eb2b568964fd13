package article

import (
	"errors"
	"testing"
	"time"
)

func testArticle(slug, title string, date time.Time) *Article {
	return &Article{
		Title:  title,
		Slug:   slug,
		Date:   date,
		Body:   []byte("# " + title + "\n\nBody copy.\n"),
		Source: Ref{Path: slug + ".md", Record: 0, Line: 1},
	}
}

func testCollection() []*Article {
	return []*Article{
		testArticle("single-action-handlers", "Single Action Handlers in PHP Frameworks", time.Date(2018, 3, 26, 0, 0, 0, 0, time.UTC)),
		testArticle("async-jobs", "Async Jobs Without a Queue Server", time.Date(2018, 5, 12, 0, 0, 0, 0, time.UTC)),
		testArticle("value-objects", "Value Objects in Practice", time.Date(2017, 3, 14, 0, 0, 0, 0, time.UTC)),
	}
}

func TestStoreGetBySlug(t *testing.T) {
	store := NewStore(testCollection())

	got, err := store.GetBySlug("single-action-handlers")
	if err != nil {
		t.Fatalf("expected lookup to succeed, got %v", err)
	}
	if got.Title != "Single Action Handlers in PHP Frameworks" {
		t.Fatalf("unexpected article title %q", got.Title)
	}

	if _, err := store.GetBySlug("  Single-Action-Handlers  "); err != nil {
		t.Fatalf("expected canonicalised lookup to succeed, got %v", err)
	}
}

func TestStoreGetBySlugMiss(t *testing.T) {
	store := NewStore(testCollection())

	_, err := store.GetBySlug("missing-article")
	if err == nil {
		t.Fatal("expected lookup to fail")
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if notFound.Slug != "missing-article" {
		t.Fatalf("unexpected slug in error: %q", notFound.Slug)
	}
	if !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound in chain, got %v", err)
	}
}

func TestStoreListByDateDesc(t *testing.T) {
	store := NewStore(testCollection())

	var slugs []string
	for a := range store.List(WithComparator(ByDateDesc)) {
		slugs = append(slugs, a.Slug)
	}

	want := []string{"async-jobs", "single-action-handlers", "value-objects"}
	if len(slugs) != len(want) {
		t.Fatalf("expected %d articles, got %d", len(want), len(slugs))
	}
	for i, slug := range want {
		if slugs[i] != slug {
			t.Fatalf("position %d: expected %q, got %q", i, slug, slugs[i])
		}
	}
}

func TestStoreListDisplayOrderHonorsWeight(t *testing.T) {
	articles := testCollection()
	articles[2].Weight = 1 // oldest article pinned first

	store := NewStore(articles)

	var slugs []string
	for a := range store.List() {
		slugs = append(slugs, a.Slug)
	}

	want := []string{"value-objects", "async-jobs", "single-action-handlers"}
	for i, slug := range want {
		if slugs[i] != slug {
			t.Fatalf("position %d: expected %q, got %q", i, slug, slugs[i])
		}
	}
}

func TestStoreListIsRestartable(t *testing.T) {
	store := NewStore(testCollection())
	seq := store.List()

	first := 0
	for range seq {
		first++
		if first == 1 {
			break
		}
	}

	second := 0
	for range seq {
		second++
	}

	if second != store.Len() {
		t.Fatalf("expected second pass to see %d articles, got %d", store.Len(), second)
	}
}

func TestStoreValidateCleanCollection(t *testing.T) {
	store := NewStore(testCollection())
	if violations := store.Validate(); len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestStoreValidateAccumulatesAllViolations(t *testing.T) {
	articles := testCollection()
	articles[1].Body = nil // async-jobs loses its body
	articles = append(articles, testArticle("value-objects", "Value Objects Revisited", time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC)))

	store := NewStore(articles)
	violations := store.Validate()

	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(violations), violations)
	}

	if !errors.Is(violations[0], ErrBodyRequired) {
		t.Fatalf("expected body violation first, got %v", violations[0])
	}
	if violations[0].Field != "body" {
		t.Fatalf("unexpected field %q", violations[0].Field)
	}

	dup := violations[1]
	if !errors.Is(dup, ErrDuplicateSlug) {
		t.Fatalf("expected duplicate slug violation, got %v", dup)
	}
	if len(dup.Slugs) != 2 || len(dup.Refs) != 2 {
		t.Fatalf("expected both colliding records referenced, got slugs=%v refs=%v", dup.Slugs, dup.Refs)
	}
}

func TestStoreValidateReportsOneDefectPerDuplicateSlug(t *testing.T) {
	articles := testCollection()
	articles = append(articles,
		testArticle("async-jobs", "Async Jobs, Take Two", time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)),
		testArticle("async-jobs", "Async Jobs, Take Three", time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)),
	)

	store := NewStore(articles)

	dupes := 0
	for _, violation := range store.Validate() {
		if errors.Is(violation, ErrDuplicateSlug) {
			dupes++
			if len(violation.Refs) != 3 {
				t.Fatalf("expected all 3 colliding records in one defect, got %d", len(violation.Refs))
			}
		}
	}
	if dupes != 1 {
		t.Fatalf("expected exactly one duplicate-slug defect, got %d", dupes)
	}
}

func TestStoreDuplicateSlugKeepsFirstRecordReadable(t *testing.T) {
	articles := testCollection()
	articles = append(articles, testArticle("value-objects", "Value Objects Revisited", time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC)))

	store := NewStore(articles)

	got, err := store.GetBySlug("value-objects")
	if err != nil {
		t.Fatalf("expected lookup to succeed, got %v", err)
	}
	if got.Title != "Value Objects in Practice" {
		t.Fatalf("expected first record to win, got %q", got.Title)
	}
	if store.Len() != len(articles) {
		t.Fatalf("expected all records in snapshot, got %d", store.Len())
	}
}

func TestStoreCarriesParseErrors(t *testing.T) {
	parseErr := &ParseError{Source: Ref{Path: "broken.md", Record: 1, Line: 12}}
	store := NewStore(testCollection(), WithParseErrors([]*ParseError{parseErr, nil}))

	errs := store.ParseErrors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 parse error, got %d", len(errs))
	}
	if errs[0].Source.Path != "broken.md" {
		t.Fatalf("unexpected parse error source %q", errs[0].Source.Path)
	}
	if store.Len() != 3 {
		t.Fatalf("parse errors must not shadow well-formed records, got %d", store.Len())
	}
}
