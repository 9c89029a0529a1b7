package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario is one SNQL conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Dataset is an optional CUE dataset file. Relative paths resolve
	// against the scenario file's directory. Empty uses the embedded sample.
	Dataset string `yaml:"dataset,omitempty"`

	// RequestID is stamped on every step. Defaults to "test-request".
	RequestID string `yaml:"request_id,omitempty"`

	// Steps are the queries to run, in order.
	Steps []Step `yaml:"steps"`

	// Assertions run after every step has executed.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step submits one SNQL query.
type Step struct {
	Query string `yaml:"query"`

	// Expect is optional. If nil, the step only contributes to the trace.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect lists the expected outcome of a step. Only non-empty fields are
// checked.
type Expect struct {
	SQL         string     `yaml:"sql,omitempty"`
	SyntaxError bool       `yaml:"syntax_error,omitempty"`
	Error       string     `yaml:"error,omitempty"`
	Columns     []string   `yaml:"columns,omitempty"`
	Rows        [][]string `yaml:"rows,omitempty"`
	RowCount    *int       `yaml:"row_count,omitempty"`
	Tables      []string   `yaml:"tables,omitempty"`
}

// Assertion validates the trace or the store after all steps.
type Assertion struct {
	// Type is one of sql_contains, row_count, final_state.
	Type string `yaml:"type"`

	// Step is the 1-based step index (sql_contains, row_count).
	Step int `yaml:"step,omitempty"`

	// Text must appear in the step's SQL (sql_contains).
	Text string `yaml:"text,omitempty"`

	// Count is the expected number of rows (row_count).
	Count int `yaml:"count,omitempty"`

	// Table, Where and Expect describe a stored row (final_state).
	Table  string         `yaml:"table,omitempty"`
	Where  map[string]any `yaml:"where,omitempty"`
	Expect map[string]any `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertSQLContains = "sql_contains"
	AssertRowCount    = "row_count"
	AssertFinalState  = "final_state"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	// Resolve the dataset relative to the scenario file BEFORE validation
	if scenario.Dataset != "" && !filepath.IsAbs(scenario.Dataset) {
		scenario.Dataset = filepath.Join(filepath.Dir(path), scenario.Dataset)
	}

	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return scenario, nil
}

// ParseScenario decodes scenario YAML with strict field checking. It does
// not resolve or check the dataset path.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	if s.Dataset != "" {
		if _, err := os.Stat(s.Dataset); os.IsNotExist(err) {
			return fmt.Errorf("dataset file not found: %s", s.Dataset)
		}
	}

	for i, step := range s.Steps {
		if step.Query == "" {
			return fmt.Errorf("steps[%d]: query is required", i)
		}
		if e := step.Expect; e != nil && e.SyntaxError {
			if e.SQL != "" || e.Columns != nil || e.Rows != nil || e.RowCount != nil || e.Tables != nil {
				return fmt.Errorf("steps[%d].expect: syntax_error excludes sql, columns, rows, row_count and tables", i)
			}
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion, len(s.Steps)); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, steps int) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertSQLContains, AssertRowCount:
		if a.Step < 1 || a.Step > steps {
			return fmt.Errorf("assertions[%d]: step must be between 1 and %d for %s", index, steps, a.Type)
		}
		if a.Type == AssertSQLContains && a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for sql_contains", index)
		}
		if a.Type == AssertRowCount && a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for row_count", index)
		}
	case AssertFinalState:
		if a.Table == "" {
			return fmt.Errorf("assertions[%d]: table is required for final_state", index)
		}
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for final_state", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
