package harness

// TraceEvent records what one step produced.
type TraceEvent struct {
	Step        int        `json:"step"`
	RequestID   string     `json:"request_id"`
	Query       string     `json:"query"`
	SQL         string     `json:"sql,omitempty"`
	SyntaxError bool       `json:"syntax_error,omitempty"`
	Error       string     `json:"error,omitempty"`
	Columns     []string   `json:"columns,omitempty"`
	Rows        [][]string `json:"rows,omitempty"`
	Tables      []string   `json:"tables,omitempty"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if all expect clauses and assertions match.
	Pass bool `json:"pass"`

	// Trace contains one event per step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddStep appends a step event to the trace.
func (r *Result) AddStep(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}
