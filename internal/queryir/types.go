package queryir

import "fmt"

// Aggregate names an aggregate function applied to a projected field.
//
// The zero value AggregateNone means the field is projected as written.
type Aggregate string

const (
	AggregateNone  Aggregate = ""
	AggregateCount Aggregate = "COUNT"
	AggregateSum   Aggregate = "SUM"
	AggregateAvg   Aggregate = "AVG"
	AggregateMax   Aggregate = "MAX"
	AggregateMin   Aggregate = "MIN"
)

// Aggregates lists every recognized aggregate function, in the order the
// phrase grammar documents them.
var Aggregates = []Aggregate{
	AggregateCount,
	AggregateSum,
	AggregateAvg,
	AggregateMax,
	AggregateMin,
}

// IsValid reports whether a is AggregateNone or one of Aggregates.
func (a Aggregate) IsValid() bool {
	if a == AggregateNone {
		return true
	}
	for _, known := range Aggregates {
		if a == known {
			return true
		}
	}
	return false
}

// Field is one item of the projection list.
//
// Invariant: when Aggregate != AggregateNone, Name is the bare column
// expression that followed the "<agg> of " phrase.
//
// Example:
//
//	Field{Name: "id", Aggregate: AggregateCount}  // COUNT(id)
//	Field{Name: "users.name"}                     // users.name
type Field struct {
	Name      string
	Aggregate Aggregate
}

// String renders the field as a SQL projection item.
func (f Field) String() string {
	if f.Aggregate == AggregateNone {
		return f.Name
	}
	return fmt.Sprintf("%s(%s)", f.Aggregate, f.Name)
}

// JoinKind is the SQL join keyword emitted for a join clause.
type JoinKind string

const (
	JoinPlain JoinKind = "JOIN"
	JoinLeft  JoinKind = "LEFT JOIN"
	JoinRight JoinKind = "RIGHT JOIN"
	JoinInner JoinKind = "INNER JOIN"
	JoinOuter JoinKind = "OUTER JOIN"
)

// IsValid reports whether k is one of the five recognized join kinds.
func (k JoinKind) IsValid() bool {
	switch k {
	case JoinPlain, JoinLeft, JoinRight, JoinInner, JoinOuter:
		return true
	}
	return false
}

// Join represents one join clause.
//
// Semantics:
//
//	<Kind> <Table> ON <Condition>
//
// Condition is the raw text captured after "on", up to the next clause
// keyword. It is not translated and not validated: an unknown table or
// column surfaces only when the rendered SQL is executed.
type Join struct {
	Kind      JoinKind
	Table     string
	Condition string
}

// String renders the join as a SQL fragment without a leading space.
func (j Join) String() string {
	return fmt.Sprintf("%s %s ON %s", j.Kind, j.Table, j.Condition)
}

// Direction is the sort direction of an ORDER BY clause.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// OrderBy holds the sort fragment and the single direction applied to it.
type OrderBy struct {
	Fields    string
	Direction Direction
}

// Query is the parsed form of one SNQL statement.
//
// Optional clauses use the empty string (or nil for OrderBy) to mean
// "absent". An absent clause renders as nothing, never as an error.
type Query struct {
	Table   string
	Fields  []Field
	Joins   []Join
	Where   string
	GroupBy string
	Having  string
	OrderBy *OrderBy
	Limit   string
}

// HasJoins reports whether the query carries at least one join clause.
func (q *Query) HasJoins() bool {
	return len(q.Joins) > 0
}
