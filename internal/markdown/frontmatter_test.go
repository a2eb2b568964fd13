package markdown

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"github.com/goliatone/go-corpus/article"
)

func TestParseFrontMatterTrimsLeadingBlankLines(t *testing.T) {
	source := "---\ntitle: T\nslug: t\ndate: 2020-01-01\n---\n\n\nBody starts here.\n"

	_, body, err := ParseFrontMatter([]byte(source))
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if !bytes.HasPrefix(body, []byte("Body starts here.")) {
		t.Fatalf("expected leading blank lines removed, got %q", body)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	ref := article.Ref{Path: "posts/round-trip.md", Record: 0, Line: 1}
	original := &article.Article{
		Title:       "Round Trips",
		Description: "Serialization that survives itself.",
		Slug:        "round-trips",
		Date:        time.Date(2019, 8, 14, 0, 0, 0, 0, time.UTC),
		Image:       "covers/round-trips.png",
		Categories:  []string{"engineering"},
		Tags:        []string{"go", "yaml"},
		Weight:      2,
		Body:        []byte("# Round Trips\n\nParse, serialize, parse again.\n"),
		Custom:      map[string]any{"series": "durability"},
		Source:      ref,
	}

	encoded, err := Serialize(original)
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}

	reparsed, parseErr := ParseRecord(ref, encoded)
	if parseErr != nil {
		t.Fatalf("round-trip parse failed: %v", parseErr)
	}

	if reparsed.Title != original.Title ||
		reparsed.Description != original.Description ||
		reparsed.Slug != original.Slug ||
		reparsed.Image != original.Image ||
		reparsed.Weight != original.Weight {
		t.Fatalf("scalar metadata drifted: %+v", reparsed)
	}
	if !reparsed.Date.Equal(original.Date) {
		t.Fatalf("date drifted: %v != %v", reparsed.Date, original.Date)
	}
	if !reflect.DeepEqual(reparsed.Categories, original.Categories) {
		t.Fatalf("categories drifted: %v", reparsed.Categories)
	}
	if !reflect.DeepEqual(reparsed.Tags, original.Tags) {
		t.Fatalf("tags drifted: %v", reparsed.Tags)
	}
	if !bytes.Equal(reparsed.Body, original.Body) {
		t.Fatalf("body drifted: %q != %q", reparsed.Body, original.Body)
	}
	if got, ok := reparsed.Custom["series"]; !ok || got != "durability" {
		t.Fatalf("custom metadata drifted: %v", reparsed.Custom)
	}
}

func TestSerializeNilArticle(t *testing.T) {
	if _, err := Serialize(nil); err == nil {
		t.Fatal("expected error for nil article")
	}
}

func TestRawMetadataOmitsAbsentCanonicalKeys(t *testing.T) {
	raw := rawMetadata(Meta{Title: "Only Title"})

	if _, ok := raw["date"]; ok {
		t.Fatal("zero date must not appear in raw metadata")
	}
	if _, ok := raw["slug"]; ok {
		t.Fatal("empty slug must not appear in raw metadata")
	}
	if raw["title"] != "Only Title" {
		t.Fatalf("unexpected title %v", raw["title"])
	}
}
