package parser

import (
	"sort"
	"strings"
)

// Prefix marks the start of a field in raw command text, e.g. "n/" in
// "add n/John Doe p/98765432".
type Prefix string

// Prefixes used by the command layer.
const (
	PrefixName        Prefix = "n/"
	PrefixPhone       Prefix = "p/"
	PrefixEmail       Prefix = "e/"
	PrefixAddress     Prefix = "a/"
	PrefixTag         Prefix = "t/"
	PrefixFee         Prefix = "f/"
	PrefixDescription Prefix = "d/"
	PrefixDay         Prefix = "day/"
	PrefixStart       Prefix = "from/"
	PrefixEnd         Prefix = "to/"
)

// ArgumentMap holds the result of tokenizing raw command arguments: the
// preamble before the first prefix, and the values found after each prefix
// in positional order.
type ArgumentMap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the text before the first prefix, trimmed. For index
// commands this is the index itself.
func (m *ArgumentMap) Preamble() string {
	return m.preamble
}

// Value returns the last value entered for the prefix, mirroring the
// convention that a repeated single-valued field is overridden by its last
// occurrence.
func (m *ArgumentMap) Value(p Prefix) (string, bool) {
	vals := m.values[p]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// AllValues returns every value entered for the prefix, in order. Used for
// multi-valued fields such as tags.
func (m *ArgumentMap) AllValues(p Prefix) []string {
	return m.values[p]
}

// Tokenize splits raw argument text into an ArgumentMap using the given
// prefixes. A prefix only counts when preceded by whitespace, so "t/" inside
// an address value does not start a new field.
func Tokenize(args string, prefixes ...Prefix) *ArgumentMap {
	type hit struct {
		pos    int
		prefix Prefix
	}

	// Pad with a leading space so a prefix at position zero is found by the
	// same whitespace-preceded rule as everywhere else.
	padded := " " + args

	var hits []hit
	for _, p := range prefixes {
		search := " " + string(p)
		from := 0
		for {
			idx := strings.Index(padded[from:], search)
			if idx < 0 {
				break
			}
			hits = append(hits, hit{pos: from + idx + 1, prefix: p})
			from += idx + len(search)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	m := &ArgumentMap{values: make(map[Prefix][]string)}

	if len(hits) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m
	}

	m.preamble = strings.TrimSpace(padded[:hits[0].pos])
	for i, h := range hits {
		start := h.pos + len(h.prefix)
		end := len(padded)
		if i+1 < len(hits) {
			end = hits[i+1].pos
		}
		m.values[h.prefix] = append(m.values[h.prefix], strings.TrimSpace(padded[start:end]))
	}
	return m
}
