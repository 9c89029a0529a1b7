package snql

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// anchorPattern matches the mandatory "get <fields> from <table>" phrase.
// The field list is non-greedy so it stops at the first "from".
var anchorPattern = regexp.MustCompile(`(?is)\bget\s+(.+?)\s+from\s+(\w+)`)

// quotedPattern matches single- or double-quoted literals. Keywords inside
// a literal never start a clause.
var quotedPattern = regexp.MustCompile(`"[^"]*"|'[^']*'`)

// Clause is one optional clause located by the segmenter.
type Clause struct {
	// Keyword is the canonical keyword that opened the clause.
	Keyword Keyword

	// Text is the trimmed clause body: everything after the keyword up to
	// the next clause keyword or end of input.
	Text string

	// Offset is the byte offset of the keyword in the normalized input.
	Offset int
}

// Segments is the raw partition of a query into clause substrings.
type Segments struct {
	// Fields is the raw projection list between "get" and "from".
	Fields string

	// Table is the table named after "from".
	Table string

	// Clauses holds every optional clause in source order.
	Clauses []Clause
}

// Lookup returns the body of the first clause opened by k. Clauses with an
// empty body count as absent.
func (s Segments) Lookup(k Keyword) (string, bool) {
	for _, c := range s.Clauses {
		if c.Keyword == k && c.Text != "" {
			return c.Text, true
		}
	}
	return "", false
}

// JoinClauses returns every join clause in source order.
func (s Segments) JoinClauses() []Clause {
	var joins []Clause
	for _, c := range s.Clauses {
		if c.Keyword.IsJoin() {
			joins = append(joins, c)
		}
	}
	return joins
}

// Segment locates the anchor and partitions the rest of the query into
// clauses.
//
// Returns *SyntaxError if the anchor is missing.
func Segment(query string) (Segments, error) {
	text := normalize(query)

	anchor := anchorPattern.FindStringSubmatchIndex(text)
	if anchor == nil {
		return Segments{}, &SyntaxError{Query: query}
	}

	seg := Segments{
		Fields: strings.TrimSpace(text[anchor[2]:anchor[3]]),
		Table:  text[anchor[4]:anchor[5]],
	}

	rest := anchor[1]
	quoted := quotedPattern.FindAllStringIndex(text[rest:], -1)

	var found [][]int
	for _, loc := range clausePattern.FindAllStringIndex(text[rest:], -1) {
		if insideAny(loc[0], quoted) {
			continue
		}
		found = append(found, []int{loc[0] + rest, loc[1] + rest})
	}

	for i, loc := range found {
		end := len(text)
		if i+1 < len(found) {
			end = found[i+1][0]
		}
		seg.Clauses = append(seg.Clauses, Clause{
			Keyword: canonicalKeyword(text[loc[0]:loc[1]]),
			Text:    strings.TrimSpace(text[loc[1]:end]),
			Offset:  loc[0],
		})
	}

	return seg, nil
}

// normalize trims the input and converts it to Unicode NFC so that visually
// identical queries segment identically.
func normalize(query string) string {
	return norm.NFC.String(strings.TrimSpace(query))
}

// insideAny reports whether pos falls strictly inside one of spans.
func insideAny(pos int, spans [][]int) bool {
	for _, span := range spans {
		if pos > span[0] && pos < span[1] {
			return true
		}
	}
	return false
}
