package corpus

import (
	"context"
	"errors"
	"testing"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Corpus.ContentDir = "testdata/content"
	cfg.Logging.Provider = "noop"
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Corpus.ContentDir = ""

	if _, err := New(cfg); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestNewRejectsMissingContentDir(t *testing.T) {
	cfg := testConfig()
	cfg.Corpus.ContentDir = "testdata/does-not-exist"

	if _, err := New(cfg); err == nil {
		t.Fatal("expected missing content dir to fail")
	}
}

func TestModuleLoad(t *testing.T) {
	module, err := New(testConfig())
	if err != nil {
		t.Fatalf("expected module to build, got %v", err)
	}
	if module.Articles() != nil {
		t.Fatal("expected no snapshot before Load")
	}

	store, err := module.Load(context.Background())
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if store.Len() != 3 {
		t.Fatalf("expected 3 articles, got %d", store.Len())
	}

	got, err := store.GetBySlug("single-action-handlers")
	if err != nil {
		t.Fatalf("expected lookup to succeed, got %v", err)
	}
	if got.Title != "Single Action Handlers in PHP Frameworks" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if got.Source.Path != "posts/archive.md" {
		t.Fatalf("unexpected source %v", got.Source)
	}

	if violations := store.Validate(); len(violations) != 0 {
		t.Fatalf("expected fixture corpus to be clean, got %v", violations)
	}
}

func TestModuleLoadReturnsSameSnapshot(t *testing.T) {
	module, err := New(testConfig())
	if err != nil {
		t.Fatalf("expected module to build, got %v", err)
	}

	first, err := module.Load(context.Background())
	if err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	second, err := module.Load(context.Background())
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if first != second {
		t.Fatal("expected Load to cache the snapshot")
	}
	if module.Articles() != first {
		t.Fatal("expected Articles to expose the cached snapshot")
	}
}

func TestModuleSerializeAndInspect(t *testing.T) {
	module, err := New(testConfig())
	if err != nil {
		t.Fatalf("expected module to build, got %v", err)
	}
	store, err := module.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	a, err := store.GetBySlug("welcome")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	encoded, err := module.Serialize(a)
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if len(encoded) == 0 {
		t.Fatal("expected serialized output")
	}

	outline, err := module.Inspect(a.Body)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if len(outline.Headings) == 0 || outline.Headings[0].Text != "Welcome to the Corpus" {
		t.Fatalf("unexpected outline %+v", outline)
	}
}

func TestModuleRegisterCommands(t *testing.T) {
	module, err := New(testConfig())
	if err != nil {
		t.Fatalf("expected module to build, got %v", err)
	}

	set, err := module.RegisterCommands(nil)
	if err != nil {
		t.Fatalf("expected registration to succeed, got %v", err)
	}
	if set.Load == nil || set.Validate == nil {
		t.Fatal("expected both command handlers")
	}
}
