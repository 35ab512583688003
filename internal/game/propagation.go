package game

import (
	"fmt"
	"math"
)

// VisibilityStep is one depth of the propagation: the origin (the player for
// K=0, the K-th mirror image afterwards), its full visibility polygon, and —
// when another planned surface follows — that polygon cropped to the
// surface's window.
type VisibilityStep struct {
	Origin     Point
	Sector     RaySector
	Valid      Polygon
	Planned    Polygon
	HasPlanned bool
}

// Usable reports whether the step's valid polygon encloses any area.
func (s VisibilityStep) Usable() bool { return len(s.Valid.Vertices) >= 3 }

// VisibilityResult is the full propagation output. Steps holds everything
// computed before a failure, so callers can still render partial
// information. When Complete, Lit is the final valid polygon — the exact
// region of cursor positions reachable under the current plan.
type VisibilityResult struct {
	Steps           []VisibilityStep
	Lit             Polygon
	Complete        bool
	BypassAtSurface int // index of the offending planned surface; -1 when complete
}

// PropagateVisibility runs the angular-sector algorithm: start with the full
// 360° sector at the player and, for each planned surface in turn, compute
// the visibility polygon from the current origin, crop it to the surface's
// window, then reflect both origin and sector through the surface and
// continue. Every scene surface blocks light; only the current planned
// surface transmits, and only through the sub-span of its extent that the
// cropped polygon actually reaches — an obstacle standing between the origin
// and the window narrows (or severs) everything downstream of it.
//
// If at any depth the origin sits on the non-reflective side of the next
// surface, or no usable lit window remains on it, propagation stops and the
// result is marked invalid at that index.
func PropagateVisibility(player Point, planned []Surface, all []Surface, bounds Bounds, memo *ReflectMemo, trace *TraceLog) VisibilityResult {
	res := VisibilityResult{BypassAtSurface: -1}
	sector := FullSector(player)
	excludeID := NoSurface

	for k := 0; ; k++ {
		valid := VisibilityOutline(sector, all, excludeID, bounds)
		step := VisibilityStep{Origin: sector.Origin, Sector: sector, Valid: valid}
		trace.Add(k, "vis", "valid", fmt.Sprintf("%d vertices", len(valid.Vertices)), float64(len(valid.Vertices)))

		if k == len(planned) {
			res.Steps = append(res.Steps, step)
			res.Lit = valid
			res.Complete = true
			return res
		}

		surf := planned[k]
		if !surf.OnReflectiveSide(sector.Origin) {
			res.Steps = append(res.Steps, step)
			res.BypassAtSurface = k
			trace.Add(k, "vis", "bypass", fmt.Sprintf("origin behind surface %d", surf.ID), float64(surf.ID))
			return res
		}

		step.Planned = CropToWindow(valid, sector.Origin, surf)
		step.HasPlanned = true
		res.Steps = append(res.Steps, step)
		trace.AddVerbose(k, "vis", "crop", fmt.Sprintf("%d -> %d vertices", len(valid.Vertices), len(step.Planned.Vertices)), float64(len(step.Planned.Vertices)))

		window, ok := litWindow(sector, surf, step.Planned)
		if !ok {
			res.BypassAtSurface = k
			trace.Add(k, "vis", "collapse", fmt.Sprintf("no usable lit window on surface %d", surf.ID), float64(surf.ID))
			return res
		}
		sector = window.Reflect(surf, memo)
		excludeID = surf.ID
	}
}

// litWindow derives the window sector to reflect into the next depth: not the
// surface's full extent, but the footprint of the cropped polygon on it — the
// sub-span of the surface that light from the current origin actually reaches.
// False when nothing usable remains: the footprint is empty, or the surface is
// lit in separate pieces that a single sector cannot carry.
func litWindow(sector RaySector, surf Surface, planned Polygon) (RaySector, bool) {
	sMin, sMax, ok := windowFootprint(planned, surf)
	if !ok {
		return RaySector{}, false
	}
	// A full-span footprint keeps the segment's own endpoints, so unoccluded
	// windows stay bit-identical to the surface's extent.
	sub := surf
	a, b := surf.Seg.At(sMin), surf.Seg.At(sMax)
	if sMin == 0 {
		a = surf.Seg.A
	}
	if sMax == 1 {
		b = surf.Seg.B
	}
	sub.Seg = Segment{A: a, B: b}
	return cropWindowToSector(sector, sub)
}

// windowFootprint measures the span of surf's segment covered by the cropped
// polygon, as segment parameters. The polygon's boundary must touch the
// surface's line in exactly one contiguous vertex run; zero runs means the
// window is fully occluded, several mean it is lit in disconnected pieces.
func windowFootprint(planned Polygon, surf Surface) (sMin, sMax float64, ok bool) {
	d := surf.Seg.Dir()
	lenSq := d.LenSq()
	n := len(planned.Vertices)
	if lenSq == 0 || n < 3 {
		return 0, 0, false
	}
	segLen := math.Sqrt(lenSq)

	onLine := make([]bool, n)
	count := 0
	for i, v := range planned.Vertices {
		rel := v.P.Sub(surf.Seg.A)
		if math.Abs(d.Cross(rel))/segLen <= footprintTolerance {
			onLine[i] = true
			count++
		}
	}
	// A polygon entirely on the line encloses no area and carries no light.
	if count < 2 || count == n {
		return 0, 0, false
	}

	runs := 0
	for i := 0; i < n; i++ {
		if onLine[i] && !onLine[(i+n-1)%n] {
			runs++
		}
	}
	if runs != 1 {
		return 0, 0, false
	}

	sMin, sMax = math.Inf(1), math.Inf(-1)
	for i, v := range planned.Vertices {
		if !onLine[i] {
			continue
		}
		u := v.P.Sub(surf.Seg.A).Dot(d) / lenSq
		sMin = math.Min(sMin, u)
		sMax = math.Max(sMax, u)
	}
	sMin = math.Max(sMin, 0)
	sMax = math.Min(sMax, 1)
	if sMax-sMin <= onSegmentTolerance {
		return 0, 0, false
	}
	return sMin, sMax, true
}

// cropWindowToSector narrows the current sector to the angular window
// subtended by the surface. Endpoints outside the sector are clamped to
// where the sector's boundary rays cross the surface; if no part of the
// surface lies inside the sector, the window is empty and propagation
// cannot continue.
func cropWindowToSector(sector RaySector, surf Surface) (RaySector, bool) {
	right, left, ok := orderWindowEnds(sector.Origin, surf)
	if !ok {
		return RaySector{}, false
	}
	out := RaySector{Origin: sector.Origin, Right: right, Left: left, StartLine: sector.StartLine}
	if sector.Full() {
		return out, true
	}

	rightRay, leftRay := sector.BoundaryRays()
	if !sector.Contains(right) {
		hit, hok := IntersectLines(rightRay, surf.Seg)
		if !hok || hit.T <= 0 || hit.S < -onSegmentTolerance || hit.S > 1+onSegmentTolerance {
			return RaySector{}, false
		}
		out.Right = hit.P
	}
	if !sector.Contains(left) {
		hit, hok := IntersectLines(leftRay, surf.Seg)
		if !hok || hit.T <= 0 || hit.S < -onSegmentTolerance || hit.S > 1+onSegmentTolerance {
			return RaySector{}, false
		}
		out.Left = hit.P
	}

	// Both ends clamped to the same boundary crossing means the surface
	// only grazes the sector edge: nothing usable remains.
	if out.Right == out.Left {
		return RaySector{}, false
	}
	return out, true
}
