package game

import (
	"math"
	"sort"
)

// VertexKind records where an outline vertex came from. Provenance is for
// debugging and rendering; correctness does not depend on it.
type VertexKind int

const (
	// VertexSurfaceHit: the ray stopped on a scene surface.
	VertexSurfaceHit VertexKind = iota
	// VertexBorderHit: the ray ran out at the screen border.
	VertexBorderHit
	// VertexClosure: a sector-closing vertex (the origin, or a start-line
	// crossing for reflected sectors).
	VertexClosure
)

// PolyVertex is one vertex of a visibility polygon.
type PolyVertex struct {
	P         Point
	Kind      VertexKind
	SurfaceID int // NoSurface unless Kind == VertexSurfaceHit
}

// Polygon is an ordered, deduplicated closed boundary of a lit region.
type Polygon struct {
	Origin   Point
	Vertices []PolyVertex
}

// Points returns the vertex positions in order.
func (p Polygon) Points() []Point {
	out := make([]Point, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.P
	}
	return out
}

// Contains tests point membership with the even-odd ray-casting rule.
func (p Polygon) Contains(pt Point) bool {
	inside := false
	n := len(p.Vertices)
	j := n - 1
	for i := 0; i < n; i++ {
		a := p.Vertices[i].P
		b := p.Vertices[j].P
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Area returns the absolute shoelace area of the polygon.
func (p Polygon) Area() float64 {
	sum := 0.0
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		a := p.Vertices[i].P
		b := p.Vertices[(i+1)%n].P
		sum += a.Cross(b)
	}
	return math.Abs(sum) / 2
}

// outlineVertex is a candidate polygon vertex before sorting and dedup.
type outlineVertex struct {
	v     PolyVertex
	key   float64 // angular sort key
	exact bool    // position snapped to an exact segment endpoint
}

// VisibilityOutline computes the visibility polygon from the sector's origin
// against the given obstacles and screen bounds, restricted to the sector:
// enumerate critical points (obstacle endpoints, screen corners, and the
// sector's own boundary points), cast a direct ray plus two grazing rays at
// each, keep the nearest hit, sort hits by angle, close finite sectors, and
// deduplicate.
//
// excludeID names the surface the sector's start line lies on (the window
// just reflected through); it transmits rather than blocks, so it is not an
// obstacle here. Pass NoSurface when there is none.
func VisibilityOutline(sector RaySector, obstacles []Surface, excludeID int, bounds Bounds) Polygon {
	origin := sector.Origin

	var criticals []Point
	for _, s := range obstacles {
		if s.ID == excludeID {
			continue
		}
		if sector.Contains(s.Seg.A) {
			criticals = append(criticals, s.Seg.A)
		}
		if sector.Contains(s.Seg.B) {
			criticals = append(criticals, s.Seg.B)
		}
	}
	for _, c := range bounds.Corners() {
		if sector.Contains(c) {
			criticals = append(criticals, c)
		}
	}
	if !sector.Full() {
		criticals = append(criticals, sector.Right, sector.Left)
	}

	var verts []outlineVertex
	addHit := func(v outlineVertex, ok bool) {
		if ok {
			verts = append(verts, v)
		}
	}

	for _, cp := range criticals {
		rel := cp.Sub(origin)
		if rel.LenSq() == 0 {
			continue
		}
		base := math.Atan2(rel.Y, rel.X)

		// Direct ray, targeting the critical point exactly.
		direct := Ray{Source: origin, Target: cp}
		addHit(castOutlineRay(sector, direct, base, cp, true, obstacles, excludeID, bounds))

		// Grazing rays just either side, to catch the shadow edge behind
		// a silhouette endpoint.
		dist := rel.Len()
		for _, da := range [2]float64{-grazingOffset, grazingOffset} {
			a := base + da
			target := origin.Add(Point{math.Cos(a) * dist, math.Sin(a) * dist})
			if !sector.Contains(target) {
				continue
			}
			r := Ray{Source: origin, Target: target}
			addHit(castOutlineRay(sector, r, a, Point{}, false, obstacles, excludeID, bounds))
		}
	}

	return assembleOutline(sector, verts)
}

// castOutlineRay finds the nearest stop of one outline ray against all
// obstacles and the screen border. When snap is set, snapTo is the ray's own
// critical-point target and a hit landing on it adopts its exact coordinates
// instead of the computed (noisier) intersection; the flag is explicit so a
// critical point at the coordinate origin snaps like any other. sortKey is
// the ray's angle, carried through for the later angular sort.
func castOutlineRay(sector RaySector, r Ray, sortKey float64, snapTo Point, snap bool, obstacles []Surface, excludeID int, bounds Bounds) (outlineVertex, bool) {
	start, ok := sector.StartRatioFor(r)
	if !ok || start < 0 {
		return outlineVertex{}, false
	}
	r.StartRatio = start

	bestT := 0.0
	best := PolyVertex{SurfaceID: NoSurface}
	found := false

	for _, s := range obstacles {
		if s.ID == excludeID {
			continue
		}
		hit, hok := IntersectRaySegment(r, s.Seg)
		if !hok || hit.S < -onSegmentTolerance || hit.S > 1+onSegmentTolerance {
			continue
		}
		if !found || hit.T < bestT {
			bestT = hit.T
			best = PolyVertex{P: hit.P, Kind: VertexSurfaceHit, SurfaceID: s.ID}
			found = true
		}
	}
	for _, e := range bounds.Edges() {
		hit, hok := IntersectRaySegment(r, e)
		if !hok || hit.S < -onSegmentTolerance || hit.S > 1+onSegmentTolerance {
			continue
		}
		if !found || hit.T < bestT {
			bestT = hit.T
			best = PolyVertex{P: hit.P, Kind: VertexBorderHit, SurfaceID: NoSurface}
			found = true
		}
	}
	if !found {
		return outlineVertex{}, false
	}

	out := outlineVertex{v: best, key: sortKey}
	if snap && best.P.Dist(snapTo) <= dedupPixelTolerance {
		out.v.P = snapTo
		out.exact = true
	}
	return out, true
}

// assembleOutline sorts candidate vertices by angle, appends closure
// vertices for finite sectors, and removes angularly-adjacent duplicates.
func assembleOutline(sector RaySector, verts []outlineVertex) Polygon {
	poly := Polygon{Origin: sector.Origin}
	if len(verts) == 0 {
		return poly
	}

	if sector.Full() {
		sort.SliceStable(verts, func(i, j int) bool { return verts[i].key < verts[j].key })
	} else {
		// Sweep counter-clockwise starting at the right boundary.
		r := sector.Right.Sub(sector.Origin)
		base := math.Atan2(r.Y, r.X)
		rel := func(a float64) float64 {
			d := a - base
			for d < 0 {
				d += 2 * math.Pi
			}
			for d >= 2*math.Pi {
				d -= 2 * math.Pi
			}
			return d
		}
		sort.SliceStable(verts, func(i, j int) bool { return rel(verts[i].key) < rel(verts[j].key) })
	}

	deduped := dedupeOutline(verts, sector.Full())
	for _, v := range deduped {
		poly.Vertices = append(poly.Vertices, v.v)
	}

	if !sector.Full() {
		if sector.StartLine != nil {
			// Close back along the start line: far hits run right→left, so
			// walk in along the left boundary and back out along the right.
			right, left := sector.BoundaryRays()
			if lt, ok := sector.StartRatioFor(left); ok {
				poly.Vertices = append(poly.Vertices, PolyVertex{P: left.At(lt), Kind: VertexClosure, SurfaceID: NoSurface})
			}
			if rt, ok := sector.StartRatioFor(right); ok {
				poly.Vertices = append(poly.Vertices, PolyVertex{P: right.At(rt), Kind: VertexClosure, SurfaceID: NoSurface})
			}
		} else {
			poly.Vertices = append(poly.Vertices, PolyVertex{P: sector.Origin, Kind: VertexClosure, SurfaceID: NoSurface})
		}
	}
	return poly
}

// dedupeOutline drops angularly-adjacent vertices within dedupPixelTolerance
// of each other, preferring exact segment-endpoint coordinates over computed
// intersection coordinates. For full sectors the first and last vertices are
// angular neighbours too.
func dedupeOutline(verts []outlineVertex, wrap bool) []outlineVertex {
	var out []outlineVertex
	for _, v := range verts {
		if len(out) > 0 {
			prev := &out[len(out)-1]
			if prev.v.P.Dist(v.v.P) <= dedupPixelTolerance {
				if v.exact && !prev.exact {
					*prev = v
				}
				continue
			}
		}
		out = append(out, v)
	}
	if wrap && len(out) > 1 {
		first, last := out[0], out[len(out)-1]
		if first.v.P.Dist(last.v.P) <= dedupPixelTolerance {
			if last.exact && !first.exact {
				out[0] = last
			}
			out = out[:len(out)-1]
		}
	}
	return out
}
