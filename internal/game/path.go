package game

// NoSurface is the HitInfo surface ID for waypoints that are not hits
// (the start point, the cursor, extrapolated endpoints).
const NoSurface = -1

// PathTerminal is the state a path ended in.
type PathTerminal int

const (
	// TerminalReached: the path arrived at the cursor.
	TerminalReached PathTerminal = iota
	// TerminalBlocked: a non-reflective surface stopped the path.
	TerminalBlocked
	// TerminalMaxBounces: the shared reflection cap was exhausted.
	TerminalMaxBounces
	// TerminalMaxDistance: an unobstructed leg ran out of travel distance.
	TerminalMaxDistance
)

// String returns a short label for the terminal state.
func (t PathTerminal) String() string {
	switch t {
	case TerminalReached:
		return "reached"
	case TerminalBlocked:
		return "blocked"
	case TerminalMaxBounces:
		return "max-bounces"
	case TerminalMaxDistance:
		return "max-distance"
	}
	return "unknown"
}

// HitInfo describes the waypoint at the same index of a path's waypoint
// list. Waypoints that are not surface hits carry SurfaceID == NoSurface.
type HitInfo struct {
	SurfaceID  int
	SegmentPos float64 // parameter along the struck segment (0 = A, 1 = B)
	OnSegment  bool    // whether SegmentPos fell within [0,1] (with tolerance)
	Reflected  bool    // whether the path reflected at this waypoint
}

// noHit is the HitInfo for non-hit waypoints.
var noHit = HitInfo{SurfaceID: NoSurface}

// PathResult is an ordered waypoint list with per-waypoint hit info, plus a
// continuation past the cursor for rendering. The first waypoint is the
// player; the last is the cursor or wherever the path stopped.
type PathResult struct {
	Waypoints     []Point
	Hits          []HitInfo // parallel to Waypoints
	ReachedCursor bool
	Terminal      PathTerminal
	Projection    []Point // points beyond the cursor, same physics, may be empty
}

// BuildPlannedPath derives the ideal multi-bounce path from the image chain:
// waypoints [player, hit1..hitN, cursor], each hit taken closed-form from the
// chain. Obstruction is ignored; hits falling outside a surface's physical
// extent are recorded as off-segment rather than rejected. With no active
// surfaces the path is the straight player→cursor segment.
//
// The forward projection past the cursor is physically simulated against all
// scene surfaces, not just planned ones: the ideal path's continuation still
// obeys real walls.
func BuildPlannedPath(chain ImageChain, all []Surface, memo *ReflectMemo) PathResult {
	res := PathResult{
		Waypoints:     []Point{chain.Player},
		Hits:          []HitInfo{noHit},
		ReachedCursor: true,
		Terminal:      TerminalReached,
	}

	launch, ok := chain.LaunchRay()
	if !ok {
		// Immediate arrival: player and cursor coincide.
		return res
	}

	onSeg := func(s float64) bool {
		return s >= -onSegmentTolerance && s <= 1+onSegmentTolerance
	}

	for k := 0; k < chain.N(); k++ {
		hit, ok := chain.HitPoint(k)
		if !ok {
			// Broken link; bypass evaluation removes these before the path
			// is built, so this leg only appears for raw unbypassed chains.
			continue
		}
		res.Waypoints = append(res.Waypoints, hit.P)
		res.Hits = append(res.Hits, HitInfo{
			SurfaceID:  chain.Surfaces[k].ID,
			SegmentPos: hit.S,
			OnSegment:  onSeg(hit.S),
			Reflected:  true,
		})
	}

	res.Waypoints = append(res.Waypoints, chain.Cursor)
	res.Hits = append(res.Hits, noHit)

	// Continue the final leg past the cursor. The final leg ray targets the
	// raw cursor (CursorImages[0]), so StartRatio 1 starts exactly there.
	finalLeg := launch
	if chain.N() > 0 {
		if r, ok := chain.LegRay(chain.N()); ok {
			finalLeg = r
		}
	}
	finalLeg.StartRatio = 1
	excludeID := NoSurface
	if n := chain.N(); n > 0 {
		excludeID = chain.Surfaces[n-1].ID
	}
	proj := traceForward(finalLeg, Point{}, false, all, excludeID, memo)
	res.Projection = proj.points
	return res
}
