package game

// clipHalfPlane keeps the part of a polygon on the counter-clockwise side of
// the directed line a→b (cross((b−a),(p−a)) >= 0), Sutherland–Hodgman style.
// Vertices created at the clip line carry closure provenance.
func clipHalfPlane(verts []PolyVertex, a, b Point) []PolyVertex {
	if len(verts) == 0 {
		return nil
	}
	d := b.Sub(a)
	side := func(p Point) float64 { return d.Cross(p.Sub(a)) }

	var out []PolyVertex
	prev := verts[len(verts)-1]
	prevSide := side(prev.P)
	for _, cur := range verts {
		curSide := side(cur.P)
		if curSide >= 0 {
			if prevSide < 0 {
				out = append(out, crossingVertex(prev.P, cur.P, prevSide, curSide))
			}
			out = append(out, cur)
		} else if prevSide >= 0 {
			out = append(out, crossingVertex(prev.P, cur.P, prevSide, curSide))
		}
		prev, prevSide = cur, curSide
	}
	return out
}

// crossingVertex interpolates the point where edge p→q crosses the clip
// line, given the signed side values at both ends.
func crossingVertex(p, q Point, sp, sq float64) PolyVertex {
	t := sp / (sp - sq)
	return PolyVertex{
		P:         p.Add(q.Sub(p).Scale(t)),
		Kind:      VertexClosure,
		SurfaceID: NoSurface,
	}
}

// orderWindowEnds returns the surface's endpoints ordered as (right, left)
// as seen from origin: sweeping counter-clockwise from right reaches left
// across the window. False when origin is collinear with the surface — the
// window subtends no angle.
func orderWindowEnds(origin Point, surf Surface) (right, left Point, ok bool) {
	a, b := surf.Seg.A, surf.Seg.B
	c := a.Sub(origin).Cross(b.Sub(origin))
	if c > 0 {
		return a, b, true
	}
	if c < 0 {
		return b, a, true
	}
	return Point{}, Point{}, false
}

// CropToWindow intersects a visibility polygon with the triangular window
// formed by the origin and the surface's endpoints: three half-plane clips —
// the right window edge, the surface line itself (keeping the origin's
// side), and the left window edge.
func CropToWindow(valid Polygon, origin Point, surf Surface) Polygon {
	out := Polygon{Origin: origin}
	right, left, ok := orderWindowEnds(origin, surf)
	if !ok {
		return out
	}

	verts := valid.Vertices
	verts = clipHalfPlane(verts, origin, right)
	if surf.Seg.Dir().Cross(origin.Sub(surf.Seg.A)) >= 0 {
		verts = clipHalfPlane(verts, surf.Seg.A, surf.Seg.B)
	} else {
		verts = clipHalfPlane(verts, surf.Seg.B, surf.Seg.A)
	}
	verts = clipHalfPlane(verts, left, origin)

	out.Vertices = verts
	return out
}
