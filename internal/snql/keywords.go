package snql

import (
	"regexp"
	"strings"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/queryir"
)

// Keyword is a top-level clause keyword in canonical form: lowercase words
// separated by single spaces.
type Keyword string

const (
	KeywordJoin      Keyword = "join"
	KeywordLeftJoin  Keyword = "left join"
	KeywordRightJoin Keyword = "right join"
	KeywordInnerJoin Keyword = "inner join"
	KeywordOuterJoin Keyword = "outer join"
	KeywordWhere     Keyword = "where"
	KeywordGroupBy   Keyword = "group by"
	KeywordHaving    Keyword = "having"
	KeywordOrderBy   Keyword = "order by"
	KeywordLimit     Keyword = "limit"
)

// JoinKeywords lists the join phrases. Multi-word phrases come before the
// bare "join" they contain.
var JoinKeywords = []Keyword{
	KeywordLeftJoin,
	KeywordRightJoin,
	KeywordInnerJoin,
	KeywordOuterJoin,
	KeywordJoin,
}

// TerminalKeywords lists the non-join clause keywords.
var TerminalKeywords = []Keyword{
	KeywordWhere,
	KeywordGroupBy,
	KeywordHaving,
	KeywordOrderBy,
	KeywordLimit,
}

// joinKinds maps each join phrase to the SQL keyword it renders as.
var joinKinds = map[Keyword]queryir.JoinKind{
	KeywordJoin:      queryir.JoinPlain,
	KeywordLeftJoin:  queryir.JoinLeft,
	KeywordRightJoin: queryir.JoinRight,
	KeywordInnerJoin: queryir.JoinInner,
	KeywordOuterJoin: queryir.JoinOuter,
}

// ClauseKeywords returns every keyword that starts a clause. This one list
// is the lookahead set for all clause boundaries: a clause body always ends
// at the next keyword from this set, or at end of input.
func ClauseKeywords() []Keyword {
	all := make([]Keyword, 0, len(JoinKeywords)+len(TerminalKeywords))
	all = append(all, JoinKeywords...)
	all = append(all, TerminalKeywords...)
	return all
}

// IsJoin reports whether k is one of the join phrases.
func (k Keyword) IsJoin() bool {
	_, ok := joinKinds[k]
	return ok
}

// JoinKind returns the SQL join keyword for a join phrase.
func (k Keyword) JoinKind() (queryir.JoinKind, bool) {
	kind, ok := joinKinds[k]
	return kind, ok
}

// pattern returns the regular expression source matching k, allowing any
// run of whitespace between its words.
func (k Keyword) pattern() string {
	words := strings.Fields(string(k))
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(words, `\s+`)
}

// canonicalKeyword folds a matched keyword to its canonical form.
func canonicalKeyword(matched string) Keyword {
	return Keyword(strings.ToLower(strings.Join(strings.Fields(matched), " ")))
}

// clausePattern matches any clause keyword as a whole word. Alternation is
// leftmost-first, so at the position of "left join" the full phrase wins and
// its trailing "join" is consumed rather than counted again.
var clausePattern = compileClausePattern(ClauseKeywords())

func compileClausePattern(keywords []Keyword) *regexp.Regexp {
	alts := make([]string, len(keywords))
	for i, k := range keywords {
		alts[i] = k.pattern()
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)
}
