package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ArticleUUID derives the stable identifier for an article keyed by slug.
func ArticleUUID(slug string) uuid.UUID {
	return UUID("go-corpus:article:" + strings.ToLower(strings.TrimSpace(slug)))
}

// CollectionUUID derives the stable identifier for a named collection.
func CollectionUUID(name string) uuid.UUID {
	return UUID("go-corpus:collection:" + strings.ToLower(strings.TrimSpace(name)))
}
