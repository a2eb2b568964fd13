package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := UUID("go-corpus:article:async-jobs")
	second := UUID("go-corpus:article:async-jobs")

	if first == uuid.Nil {
		t.Fatal("expected a non-nil uuid")
	}
	if first != second {
		t.Fatalf("expected stable uuid, got %s and %s", first, second)
	}
}

func TestUUIDEmptyKey(t *testing.T) {
	if got := UUID("  "); got != uuid.Nil {
		t.Fatalf("expected nil uuid for blank key, got %s", got)
	}
}

func TestArticleUUIDNormalisesSlugCase(t *testing.T) {
	if ArticleUUID("Async-Jobs") != ArticleUUID("async-jobs") {
		t.Fatal("expected case-insensitive article identity")
	}
	if ArticleUUID("async-jobs") == CollectionUUID("async-jobs") {
		t.Fatal("expected article and collection keys to differ")
	}
}
