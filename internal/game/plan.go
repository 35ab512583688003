package game

import "fmt"

// EvalInput is the core's whole call contract: a player, a cursor, the
// ordered planned surfaces (repeats allowed for deliberate back-and-forth
// bounces), every surface in the scene, and the screen bounds for
// visibility clipping. Surfaces are immutable snapshots supplied each
// frame; the core never holds onto them.
type EvalInput struct {
	Player  Point
	Cursor  Point
	Planned []Surface
	All     []Surface
	Bounds  Bounds
}

// AimResult is the path half of an evaluation.
type AimResult struct {
	Bypass      BypassResult
	PlannedPath PathResult
	ActualPath  PathResult
	Divergence  Divergence
	// CursorReachable: the physically simulated path arrives at the cursor.
	CursorReachable bool
	// Aligned: the ideal and simulated paths coincide waypoint-for-waypoint.
	Aligned bool
}

// EvalResult bundles both halves of an evaluation. CursorLit is decided by
// the visibility half alone — the cursor lies inside the final lit polygon —
// and the two halves agree: the cursor is lit exactly when the plan needed
// no bypass and the paths are aligned.
type EvalResult struct {
	Aim        AimResult
	Visibility VisibilityResult
	CursorLit  bool
}

// Evaluate runs the full pipeline over one immutable scene snapshot:
// bypass evaluation, image chain, planned path, actual path, divergence,
// and visibility propagation. A single reflection memo spans both pipelines
// so identical (point, surface) reflections are computed once. trace may be
// nil.
//
// Everything here is pure computation over the inputs: no I/O, no shared
// state, bounded by the reflection and travel caps. Independent scenes can
// be evaluated concurrently by independent callers with no synchronization.
func Evaluate(in EvalInput, trace *TraceLog) EvalResult {
	memo := NewReflectMemo()

	bypass := EvaluateBypass(in.Player, in.Cursor, in.Planned, memo)
	for _, b := range bypass.Bypassed {
		trace.Add(b.Index, "bypass", "demoted", fmt.Sprintf("surface %d: %s", b.Surface.ID, b.Reason), float64(b.Surface.ID))
	}

	chain := BuildImageChain(in.Player, in.Cursor, bypass.Active, memo)
	planned := BuildPlannedPath(chain, in.All, memo)

	var actual PathResult
	if launch, ok := chain.LaunchRay(); ok {
		actual = TraceActualPath(launch, in.Cursor, in.All, memo)
	} else {
		// Immediate arrival: no direction can be derived, player and
		// cursor coincide.
		actual = PathResult{
			Waypoints:     []Point{in.Player},
			Hits:          []HitInfo{noHit},
			ReachedCursor: true,
			Terminal:      TerminalReached,
		}
	}
	trace.Add(0, "path", "actual", actual.Terminal.String(), float64(len(actual.Waypoints)))

	div := CompareAligned(planned.Waypoints, actual.Waypoints)
	if !div.Aligned {
		trace.Add(div.Index, "path", "diverged", fmt.Sprintf("after waypoint %d (%.1f,%.1f)", div.Index, div.LastShared.X, div.LastShared.Y), float64(div.Index))
	}

	// The visibility half walks the original plan, not the bypass-reduced
	// one: a demoted surface must surface as an incomplete propagation, so
	// that polygon lit-ness and path validity stay equivalent.
	vis := PropagateVisibility(in.Player, in.Planned, in.All, in.Bounds, memo, trace)

	res := EvalResult{
		Aim: AimResult{
			Bypass:          bypass,
			PlannedPath:     planned,
			ActualPath:      actual,
			Divergence:      div,
			CursorReachable: actual.ReachedCursor,
			Aligned:         div.Aligned,
		},
		Visibility: vis,
	}
	res.CursorLit = vis.Complete && vis.Lit.Contains(in.Cursor)
	return res
}
