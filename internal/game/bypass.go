package game

// BypassReason says why a planned surface was demoted from the active chain.
type BypassReason int

const (
	// BypassOriginSide: the player image feeding this surface lies on the
	// surface's non-reflective side, so no ray from it can strike the front.
	BypassOriginSide BypassReason = iota
	// BypassCursorSide: the cursor lies behind the chain's final surface.
	BypassCursorSide
	// BypassChainBroken: the chain's leg ray is degenerate or parallel to
	// the surface, so no reflection point exists at all.
	BypassChainBroken
)

// String returns a short label for the reason.
func (r BypassReason) String() string {
	switch r {
	case BypassOriginSide:
		return "origin-side"
	case BypassCursorSide:
		return "cursor-side"
	case BypassChainBroken:
		return "chain-broken"
	}
	return "unknown"
}

// BypassedSurface records one demoted surface with its original plan index.
type BypassedSurface struct {
	Surface Surface
	Index   int // position in the originally planned list
	Reason  BypassReason
}

// BypassResult partitions the planned surfaces into the active sub-sequence
// (relative order preserved) and the bypassed remainder.
type BypassResult struct {
	Active   []Surface
	Bypassed []BypassedSurface
}

// Clean reports whether no surface was bypassed.
func (b BypassResult) Clean() bool { return len(b.Bypassed) == 0 }

// EvaluateBypass decides which planned surfaces are geometrically reachable.
// It repeatedly builds the image chain for the current active list and demotes
// the first surface whose feeding player image sits on its non-reflective
// side, whose leg is degenerate, or (for the last surface) that has the
// cursor behind it. Demoting a surface changes every downstream image, so
// the chain is rebuilt until no violation remains.
func EvaluateBypass(player, cursor Point, planned []Surface, memo *ReflectMemo) BypassResult {
	active := make([]Surface, len(planned))
	copy(active, planned)
	indices := make([]int, len(planned))
	for i := range indices {
		indices[i] = i
	}

	var bypassed []BypassedSurface
	demote := func(k int, reason BypassReason) {
		bypassed = append(bypassed, BypassedSurface{
			Surface: active[k],
			Index:   indices[k],
			Reason:  reason,
		})
		active = append(active[:k], active[k+1:]...)
		indices = append(indices[:k], indices[k+1:]...)
	}

	for len(active) > 0 {
		chain := BuildImageChain(player, cursor, active, memo)
		violation := -1
		reason := BypassOriginSide
		for k := 0; k < chain.N(); k++ {
			if !active[k].OnReflectiveSide(chain.PlayerImages[k]) {
				violation, reason = k, BypassOriginSide
				break
			}
			if _, ok := chain.HitPoint(k); !ok {
				violation, reason = k, BypassChainBroken
				break
			}
		}
		if violation < 0 && !active[len(active)-1].OnReflectiveSide(cursor) {
			violation, reason = len(active)-1, BypassCursorSide
		}
		if violation < 0 {
			break
		}
		demote(violation, reason)
	}

	// Report bypasses in original plan order.
	for i := 1; i < len(bypassed); i++ {
		for j := i; j > 0 && bypassed[j-1].Index > bypassed[j].Index; j-- {
			bypassed[j-1], bypassed[j] = bypassed[j], bypassed[j-1]
		}
	}
	return BypassResult{Active: active, Bypassed: bypassed}
}
