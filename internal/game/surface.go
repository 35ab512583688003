package game

// Surface is an immutable line segment in the scene: either a mirror
// (reflects travel direction) or a wall (blocks). The normal is raw
// (non-unit); only its direction and sign matter. ID is stable across
// frames and is what equality and hit provenance are keyed on.
type Surface struct {
	ID         int
	Seg        Segment
	Normal     Point
	Reflective bool
}

// perpendicular returns the segment direction rotated 90° counter-clockwise.
func perpendicular(d Point) Point { return Point{-d.Y, d.X} }

// NewMirror builds a reflective surface from a to b whose normal points
// toward the side containing facing. If facing sits exactly on the line,
// the counter-clockwise perpendicular is used as-is.
func NewMirror(id int, a, b, facing Point) Surface {
	n := perpendicular(b.Sub(a))
	if facing.Sub(a).Dot(n) < 0 {
		n = n.Scale(-1)
	}
	return Surface{ID: id, Seg: Segment{a, b}, Normal: n, Reflective: true}
}

// NewWall builds a non-reflective (blocking) surface from a to b. The normal
// still records a front side so side predicates stay well-defined.
func NewWall(id int, a, b Point) Surface {
	return Surface{ID: id, Seg: Segment{a, b}, Normal: perpendicular(b.Sub(a)), Reflective: false}
}

// OnReflectiveSide reports whether p lies strictly on the surface's front
// side (the side its normal points into). Points exactly on the line are
// not on the reflective side.
func (s Surface) OnReflectiveSide(p Point) bool {
	return p.Sub(s.Seg.A).Dot(s.Normal) > 0
}

// ReflectPoint mirrors p through the surface's line.
func (s Surface) ReflectPoint(p Point) Point {
	return ReflectPointAcross(p, s.Seg)
}

// ReflectDirection mirrors a travel direction off the surface.
func (s Surface) ReflectDirection(d Point) Point {
	return ReflectDirection(d, s.Normal)
}

// Midpoint returns the midpoint of the surface's segment.
func (s Surface) Midpoint() Point { return s.Seg.Midpoint() }

// SurfacesFromRect converts an axis-aligned rectangle obstacle into four wall
// surfaces, one per exposed edge, with normals pointing outward. IDs are
// allocated from baseID upward; the next free ID is returned.
func SurfacesFromRect(baseID int, minX, minY, maxX, maxY float64) ([]Surface, int) {
	corners := [4]Point{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
	}
	center := Point{(minX + maxX) / 2, (minY + maxY) / 2}
	out := make([]Surface, 0, 4)
	id := baseID
	for i := 0; i < 4; i++ {
		a := corners[i]
		b := corners[(i+1)%4]
		w := NewWall(id, a, b)
		// Point the normal away from the rect's own interior.
		if center.Sub(a).Dot(w.Normal) > 0 {
			w.Normal = w.Normal.Scale(-1)
		}
		out = append(out, w)
		id++
	}
	return out, id
}

// BorderSurfaces builds four wall surfaces along the screen bounds with
// normals pointing inward, so everything on-screen is on their front side.
func BorderSurfaces(baseID int, b Bounds) ([]Surface, int) {
	center := Point{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
	edges := b.Edges()
	out := make([]Surface, 0, 4)
	id := baseID
	for _, e := range edges {
		w := NewWall(id, e.A, e.B)
		if center.Sub(e.A).Dot(w.Normal) < 0 {
			w.Normal = w.Normal.Scale(-1)
		}
		out = append(out, w)
		id++
	}
	return out, id
}

// SurfaceByID returns the surface with the given ID, or false.
func SurfaceByID(surfaces []Surface, id int) (Surface, bool) {
	for _, s := range surfaces {
		if s.ID == id {
			return s, true
		}
	}
	return Surface{}, false
}
