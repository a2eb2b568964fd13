package article

import (
	"iter"
	"slices"
	"strings"
)

// Store holds an immutable snapshot of the collection and provides read
// access keyed by slug. All operations are side-effect-free reads, so a
// single Store is safe for concurrent use without coordination.
type Store struct {
	articles  []*Article
	bySlug    map[string]*Article
	slugOrder []string
	parseErrs []*ParseError
}

// StoreOption configures a Store during construction.
type StoreOption func(*Store)

// WithParseErrors records the parse failures encountered while building the
// snapshot. Malformed records never block access to well-formed ones; the
// store keeps them reportable instead.
func WithParseErrors(errs []*ParseError) StoreOption {
	return func(s *Store) {
		for _, err := range errs {
			if err != nil {
				s.parseErrs = append(s.parseErrs, err)
			}
		}
	}
}

// NewStore builds a snapshot over the supplied records. Input order is
// preserved as the snapshot order; duplicate slugs keep the first record
// reachable by lookup and are surfaced by Validate.
func NewStore(articles []*Article, opts ...StoreOption) *Store {
	s := &Store{
		bySlug: make(map[string]*Article, len(articles)),
	}
	for _, a := range articles {
		if a == nil {
			continue
		}
		s.articles = append(s.articles, a)
		key := CanonicalSlug(a.Slug)
		if key == "" {
			continue
		}
		if _, exists := s.bySlug[key]; !exists {
			s.bySlug[key] = a
			s.slugOrder = append(s.slugOrder, key)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Len reports how many records the snapshot holds, including records that
// fail validation (they remain readable by design).
func (s *Store) Len() int {
	return len(s.articles)
}

// GetBySlug returns the record registered under slug. A miss yields a
// NotFoundError; there are no retry semantics for a static read.
func (s *Store) GetBySlug(slug string) (*Article, error) {
	key := CanonicalSlug(slug)
	if key != "" {
		if a, ok := s.bySlug[key]; ok {
			return a, nil
		}
	}
	return nil, &NotFoundError{Slug: strings.TrimSpace(slug)}
}

// ByDateDesc orders records newest first, breaking ties by slug so the
// sequence stays deterministic.
func ByDateDesc(a, b *Article) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	return strings.Compare(a.Slug, b.Slug)
}

// ByDisplayOrder is the conventional listing order: weighted records first in
// ascending weight, then the rest newest first.
func ByDisplayOrder(a, b *Article) int {
	switch {
	case a.Weight != 0 && b.Weight == 0:
		return -1
	case a.Weight == 0 && b.Weight != 0:
		return 1
	case a.Weight != 0 && b.Weight != 0 && a.Weight != b.Weight:
		if a.Weight < b.Weight {
			return -1
		}
		return 1
	}
	return ByDateDesc(a, b)
}

type listOptions struct {
	cmp func(a, b *Article) int
}

// ListOption configures List behavior.
type ListOption func(*listOptions)

// WithComparator overrides the listing order with a caller-supplied
// comparator.
func WithComparator(cmp func(a, b *Article) int) ListOption {
	return func(o *listOptions) {
		if cmp != nil {
			o.cmp = cmp
		}
	}
}

// List returns a lazy, restartable sequence over the snapshot, ordered by
// ByDisplayOrder unless a comparator option overrides it. Each range over the
// returned sequence observes the same immutable snapshot.
func (s *Store) List(opts ...ListOption) iter.Seq[*Article] {
	cfg := listOptions{cmp: ByDisplayOrder}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return func(yield func(*Article) bool) {
		ordered := slices.Clone(s.articles)
		slices.SortStableFunc(ordered, cfg.cmp)
		for _, a := range ordered {
			if !yield(a) {
				return
			}
		}
	}
}

// ParseErrors exposes the malformed records recorded at construction time.
func (s *Store) ParseErrors() []*ParseError {
	return slices.Clone(s.parseErrs)
}

// Validate checks every invariant over the whole snapshot and returns all
// violations found, never stopping at the first. Per-record violations come
// first in snapshot order; duplicate-slug defects follow in first-seen order,
// one ValidationError per colliding slug naming every offending record.
func (s *Store) Validate() []ValidationError {
	var out []ValidationError

	for _, a := range s.articles {
		out = append(out, Validate(a)...)
	}

	groups := make(map[string][]*Article, len(s.articles))
	var order []string
	for _, a := range s.articles {
		key := CanonicalSlug(a.Slug)
		if key == "" {
			continue
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], a)
	}

	for _, key := range order {
		colliding := groups[key]
		if len(colliding) < 2 {
			continue
		}
		dup := ValidationError{
			Field:   "slug",
			Message: "slug must be unique across the collection",
			err:     ErrDuplicateSlug,
		}
		for _, a := range colliding {
			dup.Slugs = append(dup.Slugs, a.Slug)
			dup.Refs = append(dup.Refs, a.Source)
		}
		out = append(out, dup)
	}

	return out
}
