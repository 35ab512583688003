package game

import (
	"fmt"
	"strings"
)

// Reporter aggregates statistics over many evaluations. The headless-report
// tool feeds it one record per randomized scene; the demo feeds it one per
// frame when enabled.
type Reporter struct {
	runs int

	litCount     int
	alignedCount int
	cleanCount   int
	reachedCount int

	// correlationBreaks counts evaluations where polygon lit-ness and path
	// validity disagreed. Zero is the expected value; anything else is a
	// consistency bug between the two halves.
	correlationBreaks int

	terminals     map[PathTerminal]int
	bypassReasons map[BypassReason]int

	litVertsSum   int
	litVertsMin   int
	litVertsMax   int
	completeCount int
}

// NewReporter creates an empty reporter.
func NewReporter() *Reporter {
	return &Reporter{
		terminals:     make(map[PathTerminal]int),
		bypassReasons: make(map[BypassReason]int),
	}
}

// Record folds one evaluation into the aggregate.
func (r *Reporter) Record(res EvalResult) {
	r.runs++
	if res.CursorLit {
		r.litCount++
	}
	if res.Aim.Aligned {
		r.alignedCount++
	}
	if res.Aim.Bypass.Clean() {
		r.cleanCount++
	}
	if res.Aim.CursorReachable {
		r.reachedCount++
	}
	pathValid := res.Aim.Bypass.Clean() && res.Aim.Aligned && res.Aim.CursorReachable
	if pathValid != res.CursorLit {
		r.correlationBreaks++
	}

	r.terminals[res.Aim.ActualPath.Terminal]++
	for _, bp := range res.Aim.Bypass.Bypassed {
		r.bypassReasons[bp.Reason]++
	}

	if res.Visibility.Complete {
		r.completeCount++
		n := len(res.Visibility.Lit.Vertices)
		r.litVertsSum += n
		if r.litVertsMin == 0 || n < r.litVertsMin {
			r.litVertsMin = n
		}
		if n > r.litVertsMax {
			r.litVertsMax = n
		}
	}
}

// Runs returns how many evaluations were recorded.
func (r *Reporter) Runs() int { return r.runs }

// CorrelationBreaks returns how many evaluations broke the lit/valid
// equivalence.
func (r *Reporter) CorrelationBreaks() int { return r.correlationBreaks }

// Summary renders the aggregate as a fixed-width text block.
func (r *Reporter) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "evaluations: %d\n", r.runs)
	if r.runs == 0 {
		return b.String()
	}
	pct := func(n int) float64 { return 100 * float64(n) / float64(r.runs) }
	fmt.Fprintf(&b, "  lit:       %4d (%5.1f%%)\n", r.litCount, pct(r.litCount))
	fmt.Fprintf(&b, "  aligned:   %4d (%5.1f%%)\n", r.alignedCount, pct(r.alignedCount))
	fmt.Fprintf(&b, "  clean:     %4d (%5.1f%%)\n", r.cleanCount, pct(r.cleanCount))
	fmt.Fprintf(&b, "  reached:   %4d (%5.1f%%)\n", r.reachedCount, pct(r.reachedCount))
	fmt.Fprintf(&b, "  correlation breaks: %d\n", r.correlationBreaks)

	b.WriteString("terminal states:\n")
	for _, t := range []PathTerminal{TerminalReached, TerminalBlocked, TerminalMaxBounces, TerminalMaxDistance} {
		if n := r.terminals[t]; n > 0 {
			fmt.Fprintf(&b, "  %-13s %4d\n", t.String(), n)
		}
	}
	if len(r.bypassReasons) > 0 {
		b.WriteString("bypass reasons:\n")
		for _, reason := range []BypassReason{BypassOriginSide, BypassCursorSide, BypassChainBroken} {
			if n := r.bypassReasons[reason]; n > 0 {
				fmt.Fprintf(&b, "  %-13s %4d\n", reason.String(), n)
			}
		}
	}
	if r.completeCount > 0 {
		fmt.Fprintf(&b, "lit polygon vertices: min=%d avg=%.1f max=%d\n",
			r.litVertsMin, float64(r.litVertsSum)/float64(r.completeCount), r.litVertsMax)
	}
	return b.String()
}
