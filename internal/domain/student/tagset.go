package student

import (
	"sort"
	"strings"

	"github.com/edulog-app/edulog/internal/domain/shared"
)

// TagSet is an unordered collection of unique tags. A TagSet is mutable
// until frozen; frozen sets reject every mutation with
// shared.ErrImmutableCollection, so callers holding a view from an entity
// must Copy before modifying.
type TagSet struct {
	tags   map[Tag]struct{}
	frozen bool
}

// NewTagSet creates a mutable TagSet containing the given tags.
// Duplicates collapse.
func NewTagSet(tags ...Tag) *TagSet {
	s := &TagSet{tags: make(map[Tag]struct{}, len(tags))}
	for _, t := range tags {
		s.tags[t] = struct{}{}
	}
	return s
}

// Add inserts a tag into the set. Adding an already present tag is a no-op.
func (s *TagSet) Add(t Tag) error {
	if s.frozen {
		return shared.NewDomainError("student", "TagSet.Add", shared.ErrImmutableCollection, "cannot modify a read-only tag set")
	}
	s.tags[t] = struct{}{}
	return nil
}

// Remove deletes a tag from the set if present.
func (s *TagSet) Remove(t Tag) error {
	if s.frozen {
		return shared.NewDomainError("student", "TagSet.Remove", shared.ErrImmutableCollection, "cannot modify a read-only tag set")
	}
	delete(s.tags, t)
	return nil
}

// Contains reports whether the tag is in the set.
func (s *TagSet) Contains(t Tag) bool {
	_, ok := s.tags[t]
	return ok
}

// Len returns the number of tags in the set.
func (s *TagSet) Len() int {
	return len(s.tags)
}

// Slice returns the tags sorted alphabetically.
func (s *TagSet) Slice() []Tag {
	out := make([]Tag, 0, len(s.tags))
	for t := range s.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Copy returns a mutable copy of the set. The copy shares nothing with the
// original.
func (s *TagSet) Copy() *TagSet {
	c := &TagSet{tags: make(map[Tag]struct{}, len(s.tags))}
	for t := range s.tags {
		c.tags[t] = struct{}{}
	}
	return c
}

// Freeze returns a read-only view over the same tags. The view rejects
// mutation; the receiver is unaffected.
func (s *TagSet) Freeze() *TagSet {
	return &TagSet{tags: s.tags, frozen: true}
}

// Equal reports whether both sets contain exactly the same tags.
func (s *TagSet) Equal(other *TagSet) bool {
	if other == nil || len(s.tags) != len(other.tags) {
		return false
	}
	for t := range s.tags {
		if _, ok := other.tags[t]; !ok {
			return false
		}
	}
	return true
}

// String returns the tags as a bracketed, sorted list, e.g. "[maths][y2024]".
func (s *TagSet) String() string {
	var b strings.Builder
	for _, t := range s.Slice() {
		b.WriteString("[")
		b.WriteString(string(t))
		b.WriteString("]")
	}
	return b.String()
}
