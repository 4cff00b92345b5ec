// Package fuzzy compiles search queries into immutable patterns and scores
// candidate strings against them.
//
// A Pattern is compiled once by ParsePattern and shared read-only across any
// number of goroutines. Score is a pure function of (candidate, pattern); the
// Slab passed into it is reusable scratch owned by exactly one caller at a
// time, so scoring many candidates on one goroutine allocates next to
// nothing.
//
// Queries follow the familiar filter syntax: space-separated terms are
// AND-ed, a term matches as a fuzzy subsequence by default, 'term demands a
// literal substring, ^term anchors at the start, term$ anchors at the end,
// and !term inverts the term (the candidate must not match it).
package fuzzy

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyQuery is returned by ParsePattern when the query contains no
// usable term.
var ErrEmptyQuery = errors.New("fuzzy: empty query")

// CaseMode controls how candidate and term case are compared.
type CaseMode int

const (
	// CaseSmart folds case for a term unless the term itself contains an
	// uppercase letter.
	CaseSmart CaseMode = iota
	// CaseIgnore always folds case.
	CaseIgnore
	// CaseRespect never folds case.
	CaseRespect
)

// String returns the flag spelling of the mode.
func (m CaseMode) String() string {
	switch m {
	case CaseSmart:
		return "smart"
	case CaseIgnore:
		return "ignore"
	case CaseRespect:
		return "respect"
	default:
		return "unknown"
	}
}

type termKind int

const (
	termFuzzy     termKind = iota // subsequence match
	termSubstring                 // 'term
	termPrefix                    // ^term
	termSuffix                    // term$
	termEqual                     // ^term$
)

type term struct {
	kind       termKind
	text       string
	ignoreCase bool
	normalize  bool
	inverse    bool
}

// Pattern is the immutable compiled form of a query. It is never mutated
// after construction and is safe for concurrent use without locking.
type Pattern struct {
	terms []term
}

// ParsePattern compiles query into a Pattern. normalize folds latin
// diacritics on both term and candidate; fuzzyMatch false downgrades fuzzy
// terms to literal substring terms. A query with no usable term fails with
// ErrEmptyQuery.
func ParsePattern(mode CaseMode, normalize bool, query string, fuzzyMatch bool) (*Pattern, error) {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return nil, ErrEmptyQuery
	}

	p := &Pattern{terms: make([]term, 0, len(tokens))}
	for _, tok := range tokens {
		t := term{kind: termFuzzy, normalize: normalize}
		if !fuzzyMatch {
			t.kind = termSubstring
		}

		if strings.HasPrefix(tok, "!") {
			t.inverse = true
			tok = tok[1:]
		}
		if strings.HasPrefix(tok, "'") {
			t.kind = termSubstring
			tok = tok[1:]
		}
		if strings.HasPrefix(tok, "^") {
			t.kind = termPrefix
			tok = tok[1:]
		}
		if strings.HasSuffix(tok, "$") {
			if t.kind == termPrefix {
				t.kind = termEqual
			} else {
				t.kind = termSuffix
			}
			tok = strings.TrimSuffix(tok, "$")
		}
		if tok == "" {
			// bare operator, nothing to match
			continue
		}

		switch mode {
		case CaseIgnore:
			t.ignoreCase = true
		case CaseSmart:
			t.ignoreCase = strings.IndexFunc(tok, unicode.IsUpper) < 0
		}
		if t.ignoreCase {
			tok = strings.ToLower(tok)
		}
		if normalize {
			tok = normalizeString(tok)
		}
		t.text = tok
		p.terms = append(p.terms, t)
	}

	if len(p.terms) == 0 {
		return nil, ErrEmptyQuery
	}
	return p, nil
}
