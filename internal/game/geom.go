package game

import "math"

// Point is a 2D point or vector. Value type, copied freely.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the 2D cross product (z component) p×q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Len returns the Euclidean length of p as a vector.
func (p Point) Len() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }

// LenSq returns the squared length of p as a vector.
func (p Point) LenSq() float64 { return p.X*p.X + p.Y*p.Y }

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float64 { return q.Sub(p).Len() }

// Segment is a line segment between two points.
type Segment struct {
	A, B Point
}

// Dir returns the segment's direction vector B - A.
func (s Segment) Dir() Point { return s.B.Sub(s.A) }

// Midpoint returns the segment's midpoint.
func (s Segment) Midpoint() Point {
	return Point{(s.A.X + s.B.X) / 2, (s.A.Y + s.B.Y) / 2}
}

// At returns the point at parameter u along the segment (0 = A, 1 = B).
func (s Segment) At(u float64) Point {
	return s.A.Add(s.Dir().Scale(u))
}

// Ray is a directed line defined by a source and a target point. The target
// fixes the direction and the parameter scale (t=0 at Source, t=1 at Target);
// it is not an endpoint — the ray extends past it.
//
// StartRatio shifts the ray's effective start to Source + StartRatio·(Target−Source).
// It is used when the true source is a mirror image (possibly off-screen) but the
// ray must behave as if it started on the reflecting surface. Intersections at
// t <= StartRatio are rejected.
//
// All ray arithmetic uses only +, −, ×, ÷ so equality and ordering of results
// stay exact and reversible. No trigonometry.
type Ray struct {
	Source     Point
	Target     Point
	StartRatio float64
}

// Dir returns the ray's direction vector Target - Source.
func (r Ray) Dir() Point { return r.Target.Sub(r.Source) }

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Point {
	return r.Source.Add(r.Dir().Scale(t))
}

// RayHit is a solved ray/segment intersection.
type RayHit struct {
	P Point   // intersection point, evaluated on the ray
	T float64 // parameter along the ray (0 = source, 1 = target)
	S float64 // parameter along the segment (0 = A, 1 = B)
}

// IntersectRaySegment solves r against the infinite parameter range of seg.
// Returns false for parallel lines (exact zero cross-product denominator) and
// for intersections at or before the ray's effective start. The caller decides
// whether S must lie within [0,1]; no tolerance is applied here.
func IntersectRaySegment(r Ray, seg Segment) (RayHit, bool) {
	d := r.Dir()
	e := seg.Dir()
	denom := d.Cross(e)
	if denom == 0 {
		return RayHit{}, false
	}
	diff := seg.A.Sub(r.Source)
	t := diff.Cross(e) / denom
	s := diff.Cross(d) / denom
	if t <= r.StartRatio {
		return RayHit{}, false
	}
	return RayHit{P: r.At(t), T: t, S: s}, true
}

// IntersectLines solves the infinite lines through r and seg, ignoring the
// ray's start ratio. Used for start-line crossings and window clamping where
// the intersection may legitimately sit behind the ray's effective start.
func IntersectLines(r Ray, seg Segment) (RayHit, bool) {
	d := r.Dir()
	e := seg.Dir()
	denom := d.Cross(e)
	if denom == 0 {
		return RayHit{}, false
	}
	diff := seg.A.Sub(r.Source)
	t := diff.Cross(e) / denom
	s := diff.Cross(d) / denom
	return RayHit{P: r.At(t), T: t, S: s}, true
}

// ReflectPointAcross mirrors p through the infinite line carrying seg:
// closest-point projection onto the line, then mirror through it.
// Reflecting twice through the same line returns the original point,
// bit-for-bit where the arithmetic allows.
func ReflectPointAcross(p Point, seg Segment) Point {
	d := seg.Dir()
	lenSq := d.LenSq()
	if lenSq == 0 {
		// Zero-length segment cannot define a line; leave the point alone.
		return p
	}
	u := p.Sub(seg.A).Dot(d) / lenSq
	proj := seg.A.Add(d.Scale(u))
	return proj.Scale(2).Sub(p)
}

// ReflectDirection mirrors direction d off a surface with raw (non-unit)
// normal n: d' = d − 2(d·n)/(n·n)·n. Using the raw normal avoids a square
// root; the result has the same length as d.
func ReflectDirection(d, n Point) Point {
	nn := n.LenSq()
	if nn == 0 {
		return d
	}
	return d.Sub(n.Scale(2 * d.Dot(n) / nn))
}

// ReflectRay mirrors a whole ray through the line carrying seg: both the
// source and the target are reflected, the start ratio is preserved. The
// parametrization is unchanged, so a hit at parameter t on the original ray
// corresponds to parameter t on the reflected ray. This is how the tracer
// continues after a bounce: the continued ray's intersection arithmetic is
// then identical to the image-chain's, which keeps aligned paths bit-equal.
func ReflectRay(r Ray, seg Segment) Ray {
	return Ray{
		Source:     ReflectPointAcross(r.Source, seg),
		Target:     ReflectPointAcross(r.Target, seg),
		StartRatio: r.StartRatio,
	}
}

// Bounds is an axis-aligned screen rectangle used for visibility clipping.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether p lies inside or on the rectangle.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Corners returns the four rectangle corners in clockwise order from MinX,MinY.
func (b Bounds) Corners() [4]Point {
	return [4]Point{
		{b.MinX, b.MinY},
		{b.MaxX, b.MinY},
		{b.MaxX, b.MaxY},
		{b.MinX, b.MaxY},
	}
}

// Edges returns the four border segments in the same order as Corners.
func (b Bounds) Edges() [4]Segment {
	c := b.Corners()
	return [4]Segment{
		{c[0], c[1]},
		{c[1], c[2]},
		{c[2], c[3]},
		{c[3], c[0]},
	}
}
