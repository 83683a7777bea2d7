// Package diag defines Brandy's diagnostic model: severities, the
// per-pass collector, and fuzzy-match suggestion enrichment for failed
// name lookups.
package diag

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pkg/errors"
)

// Severity classifies a Diagnostic. Terminal aborts the current
// semantic pass immediately (mirroring original_source's early-return-
// on-terminal-error discipline); Warning and Error both let the pass
// continue so later diagnostics in the same run can still surface.
type Severity int

const (
	Warning Severity = iota
	Error
	Terminal
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported problem, anchored at a token index into
// the translation unit's token slice (not a byte offset, so it survives
// being carried between passes that only ever reference tokens).
type Diagnostic struct {
	TokenIndex int
	Message    string
	Severity   Severity
	// Suggestion holds a close-match candidate name when this
	// diagnostic is a failed lookup and fuzzy search found one (see
	// SuggestName).
	Suggestion string
}

func (d Diagnostic) String() string {
	if d.Suggestion != "" {
		return fmt.Sprintf("%s: %s (did you mean %q?)", d.Severity, d.Message, d.Suggestion)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// terminalSignal is panicked by Collector.Report when it's handed a
// Terminal diagnostic, unwinding to whatever recover sits at the top of
// the current pass (mirroring original_source's early-return-on-
// terminal-error, ported as panic/recover instead of a status-code
// return threaded through every call site).
type terminalSignal struct{ diag Diagnostic }

// Collector accumulates diagnostics across one semantic pass.
type Collector struct {
	Diagnostics []Diagnostic
}

// Report appends d. If d.Severity is Terminal, Report panics with a
// *terminalSignal; RunPass recovers it and folds it back into the
// collected list instead of letting it escape as a Go panic.
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
	if d.Severity == Terminal {
		panic(&terminalSignal{diag: d})
	}
}

func (c *Collector) Errorf(tokenIndex int, sev Severity, format string, args ...interface{}) {
	c.Report(Diagnostic{TokenIndex: tokenIndex, Message: fmt.Sprintf(format, args...), Severity: sev})
}

// HasErrors reports whether any collected diagnostic is Error or
// Terminal severity.
func (c *Collector) HasErrors() bool {
	for _, d := range c.Diagnostics {
		if d.Severity >= Error {
			return true
		}
	}
	return false
}

// RunPass invokes fn, catching a Terminal diagnostic's unwind so a pass
// that reports one simply stops instead of crashing the compiler
// process.
func RunPass(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*terminalSignal); ok {
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

// SuggestName returns the candidate in scope closest to name by
// Levenshtein distance, for attaching to a failed-lookup diagnostic as
// its Suggestion field. Only candidates that contain name's characters
// in order (fuzzy.RankFind's match rule) are considered. Returns "" if
// none match or nothing is within a reasonable edit distance.
func SuggestName(name string, candidates []string) string {
	best := fuzzy.RankFind(name, candidates)
	if len(best) == 0 {
		return ""
	}
	// RankFind returns matches unsorted; take the closest.
	closest := best[0]
	for _, r := range best {
		if r.Distance < closest.Distance {
			closest = r
		}
	}
	if closest.Distance > len(name)/2+2 {
		return "" // too far to be a plausible typo
	}
	return closest.Target
}

// WrapStack wraps err with a captured stack trace via pkg/errors, used
// by the CLI layer's --verbose flag to print a full trace for internal
// (non-diagnostic) failures.
func WrapStack(err error, msg string) error {
	return errors.Wrap(err, msg)
}
