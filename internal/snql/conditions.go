package snql

import "regexp"

// valueToken is the literal grammar accepted on the right of a comparison:
// a bare integer or a single-word quoted token. Multi-word quoted literals
// and negative numbers are outside the grammar and are left untouched.
const valueToken = `(\d+|"\w+"|'\w+')`

// rewriteRule is one phrase-to-operator substitution.
type rewriteRule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
}

func newRule(name, pattern, replacement string) rewriteRule {
	return rewriteRule{
		name:        name,
		pattern:     regexp.MustCompile(`(?i)` + pattern),
		replacement: replacement,
	}
}

// conditionRules is the WHERE rewrite pipeline. Rules run in slice order
// and each sees the output of the ones before it.
//
// Ordering invariants:
//   - The comparison and between rules run before the connective rules,
//     because their phrases contain "and" / "not" that the connective
//     rewrites would otherwise consume.
//   - "is equal to" precedes "is not equal to" and "is null" precedes
//     "is not null"; neither earlier pattern can match the negated phrase,
//     since each requires its word directly after "is".
//   - The first two rules are shared with HAVING (havingRules).
var conditionRules = []rewriteRule{
	newRule("greater than", `(\w+)\s+is\s+greater\s+than\s+`+valueToken, `${1} > ${2}`),
	newRule("less than", `(\w+)\s+is\s+less\s+than\s+`+valueToken, `${1} < ${2}`),
	newRule("equal to", `(\w+)\s+is\s+equal\s+to\s+`+valueToken, `${1} = ${2}`),
	newRule("not equal to", `(\w+)\s+is\s+not\s+equal\s+to\s+`+valueToken, `${1} != ${2}`),
	newRule("is null", `(\w+)\s+is\s+null`, `${1} IS NULL`),
	newRule("is not null", `(\w+)\s+is\s+not\s+null`, `${1} IS NOT NULL`),
	newRule("like", `(\w+)\s+like\s+"(.+?)"`, `${1} LIKE '${2}'`),
	newRule("between", `(\w+)\s+between\s+`+valueToken+`\s+and\s+`+valueToken, `${1} BETWEEN ${2} AND ${3}`),
	newRule("and", `\s+and\s+`, ` AND `),
	newRule("or", `\s+or\s+`, ` OR `),
	newRule("not", `\s+not\s+`, ` NOT `),
}

// havingRules is the reduced HAVING pipeline: greater than and less than
// only. Aggregate conditions in HAVING are expected in SQL form already,
// e.g. "having COUNT(id) > 1".
var havingRules = conditionRules[:2]

// TranslateCondition rewrites a WHERE condition phrase into SQL.
//
// Example:
//
//	TranslateCondition(`age between 20 and 30 or name like "J%"`)
//	// "age BETWEEN 20 AND 30 OR name LIKE 'J%'"
func TranslateCondition(raw string) string {
	return applyRules(conditionRules, raw)
}

// TranslateHaving rewrites a HAVING condition phrase into SQL using the
// reduced rule set.
func TranslateHaving(raw string) string {
	return applyRules(havingRules, raw)
}

func applyRules(rules []rewriteRule, text string) string {
	for _, rule := range rules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}
