package harness

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden(t *testing.T) {
	names := []string{
		"filter_sort_limit",
		"syntax_error",
		"execution_error",
		"top_spenders",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(filepath.Join("testdata", name+".yaml"))
			require.NoError(t, err)

			// Run with golden comparison
			// Regenerate with:
			//   go test ./internal/harness -run TestRunWithGolden -update
			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}

func TestSnapshot_Deterministic(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "top_spenders.yaml"))
	require.NoError(t, err)

	var snapshots [][]byte
	for i := 0; i < 3; i++ {
		result, err := RunFresh(context.Background(), scenario)
		require.NoError(t, err)
		snapshot, err := Snapshot(scenario.Name, result)
		require.NoError(t, err)
		snapshots = append(snapshots, snapshot)
	}

	assert.Equal(t, snapshots[0], snapshots[1])
	assert.Equal(t, snapshots[1], snapshots[2])
}

func TestSnapshot_Format(t *testing.T) {
	result := NewResult()
	result.AddStep(TraceEvent{
		Step:      1,
		RequestID: "r",
		Query:     "get a from b where c is greater than 1",
		SQL:       "SELECT a FROM b WHERE c > 1;",
	})

	snapshot, err := Snapshot("format", result)
	require.NoError(t, err)

	// No HTML escaping of ">" and a trailing newline
	assert.Contains(t, string(snapshot), `"sql": "SELECT a FROM b WHERE c > 1;"`)
	assert.True(t, bytes.HasSuffix(snapshot, []byte("}\n")))
	assert.NotContains(t, string(snapshot), "columns")
}

func TestAssertGolden_PrecomputedResult(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "syntax_error.yaml"))
	require.NoError(t, err)

	result, err := RunFresh(context.Background(), scenario)
	require.NoError(t, err)
	require.NoError(t, AssertGolden(t, "syntax_error", result))
}
