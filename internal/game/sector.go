package game

// RaySector is an angular region from an origin, bounded by two points
// rather than two angles so that all sector arithmetic stays in +, −, ×, ÷.
// The region sweeps counter-clockwise from the Right boundary to the Left
// boundary. Left == Right is the sentinel for the full 360° region.
//
// StartLine, when set, means every ray in the sector logically begins where
// it crosses that line instead of at the origin — used after a reflection,
// when the origin is a mirror image that may sit off-screen behind the
// reflecting surface.
type RaySector struct {
	Origin    Point
	Left      Point
	Right     Point
	StartLine *Segment
}

// FullSector returns the unbounded 360° sector at origin.
func FullSector(origin Point) RaySector {
	marker := origin.Add(Point{1, 0})
	return RaySector{Origin: origin, Left: marker, Right: marker}
}

// Full reports whether the sector covers the full circle.
func (s RaySector) Full() bool { return s.Left == s.Right }

// Contains reports whether p lies within the sector's angular span
// (boundaries inclusive). The start line does not participate: it shifts
// where rays begin, not which directions belong to the sector.
func (s RaySector) Contains(p Point) bool {
	if s.Full() {
		return true
	}
	v := p.Sub(s.Origin)
	r := s.Right.Sub(s.Origin)
	l := s.Left.Sub(s.Origin)
	if r.Cross(l) >= 0 {
		// Span of at most half a turn.
		return r.Cross(v) >= 0 && v.Cross(l) >= 0
	}
	// Reflex span: inside unless strictly within the excluded wedge.
	return r.Cross(v) >= 0 || v.Cross(l) >= 0
}

// Reflect mirrors the sector through the surface's line. The boundaries are
// swapped — reflection reverses orientation, so the old right boundary
// becomes the new left and vice versa; skipping the swap turns the sector
// inside out. The surface's segment becomes the new start line, since the
// reflected origin may lie off-screen behind it.
func (s RaySector) Reflect(surf Surface, memo *ReflectMemo) RaySector {
	seg := surf.Seg
	return RaySector{
		Origin:    memo.Reflect(s.Origin, surf),
		Left:      memo.Reflect(s.Right, surf),
		Right:     memo.Reflect(s.Left, surf),
		StartLine: &seg,
	}
}

// BoundaryRays returns the right and left boundary rays. Meaningless for a
// full sector; callers check Full first.
func (s RaySector) BoundaryRays() (right, left Ray) {
	return Ray{Source: s.Origin, Target: s.Right},
		Ray{Source: s.Origin, Target: s.Left}
}

// StartRatioFor returns the parameter at which r crosses the sector's start
// line, or 0 when the sector has none. Returns false for rays parallel to
// the start line — such rays never enter the region and are skipped.
func (s RaySector) StartRatioFor(r Ray) (float64, bool) {
	if s.StartLine == nil {
		return 0, true
	}
	hit, ok := IntersectLines(r, *s.StartLine)
	if !ok {
		return 0, false
	}
	return hit.T, true
}
