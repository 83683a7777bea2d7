package diag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportAccumulatesDiagnostics(t *testing.T) {
	var c Collector
	c.Report(Diagnostic{Message: "a warning", Severity: Warning})
	c.Report(Diagnostic{Message: "an error", Severity: Error})

	require.Len(t, c.Diagnostics, 2)
	require.True(t, c.HasErrors())
}

func TestHasErrorsFalseWhenOnlyWarnings(t *testing.T) {
	var c Collector
	c.Report(Diagnostic{Message: "a warning", Severity: Warning})
	require.False(t, c.HasErrors())
}

func TestReportTerminalUnwindsRunPass(t *testing.T) {
	var c Collector
	ranAfterTerminal := false

	err := RunPass(func() {
		c.Report(Diagnostic{Message: "fatal", Severity: Terminal})
		ranAfterTerminal = true // must never execute
	})

	require.NoError(t, err, "RunPass should absorb the terminal unwind, not surface it as an error")
	require.False(t, ranAfterTerminal)
	require.Len(t, c.Diagnostics, 1)
	require.True(t, c.HasErrors())
}

func TestRunPassRepanicsOtherPanics(t *testing.T) {
	require.Panics(t, func() {
		_ = RunPass(func() { panic("not a terminal signal") })
	})
}

func TestSuggestNameFindsClosestMatch(t *testing.T) {
	candidates := []string{"length", "total", "count"}
	got := SuggestName("lenth", candidates) // missing the 'g'
	require.Equal(t, "length", got)
}

func TestSuggestNameEmptyWhenNoCloseMatch(t *testing.T) {
	got := SuggestName("zzzzzzzzzz", []string{"a", "b"})
	require.Empty(t, got)
}
