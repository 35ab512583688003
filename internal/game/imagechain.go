package game

// ReflectMemo caches point reflections per (point, surface) pair within a
// single evaluation, so the path and visibility pipelines do not recompute
// identical reflections. It is never shared across evaluations.
type ReflectMemo struct {
	m map[reflectKey]Point
}

type reflectKey struct {
	p         Point
	surfaceID int
}

// NewReflectMemo creates an empty reflection cache.
func NewReflectMemo() *ReflectMemo {
	return &ReflectMemo{m: make(map[reflectKey]Point)}
}

// Reflect mirrors p through the surface's line, consulting the cache first.
// Both directions are cached: reflection is an involution, so p→q implies
// q→p. That makes reflecting an image back through its own surface return
// the pre-image bit-for-bit, which the tracer relies on to stay exactly on
// the image chain's leg rays while the paths are aligned. A nil memo
// degrades to a plain computation.
func (rm *ReflectMemo) Reflect(p Point, s Surface) Point {
	if rm == nil {
		return s.ReflectPoint(p)
	}
	k := reflectKey{p, s.ID}
	if q, ok := rm.m[k]; ok {
		return q
	}
	q := s.ReflectPoint(p)
	rm.m[k] = q
	rm.m[reflectKey{q, s.ID}] = p
	return q
}

// ReflectRay mirrors a whole ray through the surface, source and target
// both via the cache, preserving the parametric start.
func (rm *ReflectMemo) ReflectRay(r Ray, s Surface) Ray {
	return Ray{
		Source:     rm.Reflect(r.Source, s),
		Target:     rm.Reflect(r.Target, s),
		StartRatio: r.StartRatio,
	}
}

// ImageChain holds the forward player images and backward cursor images for
// an ordered surface list. For N surfaces:
//
//	PlayerImages[0] = player, PlayerImages[k] = PlayerImages[k-1] reflected
//	through surface k-1 (forward order);
//	CursorImages[0] = cursor, CursorImages[j] = CursorImages[j-1] reflected
//	through surface N-j (backward order).
//
// The reflection point on surface k is then the intersection of the line
// from PlayerImages[k] to CursorImages[N-k] with surface k's segment: the
// single ray visiting all surfaces in order falls out by construction, with
// no search.
type ImageChain struct {
	Player, Cursor Point
	Surfaces       []Surface
	PlayerImages   []Point
	CursorImages   []Point
}

// BuildImageChain constructs the image chain for the given ordered surfaces.
// The chain is derived data: rebuild it whenever any input changes.
func BuildImageChain(player, cursor Point, surfaces []Surface, memo *ReflectMemo) ImageChain {
	n := len(surfaces)
	c := ImageChain{
		Player:       player,
		Cursor:       cursor,
		Surfaces:     surfaces,
		PlayerImages: make([]Point, n+1),
		CursorImages: make([]Point, n+1),
	}
	c.PlayerImages[0] = player
	for k := 1; k <= n; k++ {
		c.PlayerImages[k] = memo.Reflect(c.PlayerImages[k-1], surfaces[k-1])
	}
	c.CursorImages[0] = cursor
	for j := 1; j <= n; j++ {
		c.CursorImages[j] = memo.Reflect(c.CursorImages[j-1], surfaces[n-j])
	}
	return c
}

// N returns the number of surfaces in the chain.
func (c *ImageChain) N() int { return len(c.Surfaces) }

// LegRay returns the ray carrying leg k of the ideal path: from
// PlayerImages[k] toward CursorImages[N-k]. For k=0 this is the launch ray;
// its target for k=N is the raw cursor itself. The bool is false when the
// two images coincide (degenerate: ray perpendicular to a surface).
func (c *ImageChain) LegRay(k int) (Ray, bool) {
	src := c.PlayerImages[k]
	dst := c.CursorImages[c.N()-k]
	if src == dst {
		return Ray{}, false
	}
	return Ray{Source: src, Target: dst}, true
}

// LaunchRay returns the ray the projectile must leave the player along to
// visit every chain surface in order and arrive at the cursor. Degenerate
// chains fall back first to a ray toward the first surface's midpoint, then
// toward the raw cursor. The bool is false only for the immediate-arrival
// case where no direction can be derived at all (player == cursor and no
// usable surface).
func (c *ImageChain) LaunchRay() (Ray, bool) {
	if r, ok := c.LegRay(0); ok {
		return r, true
	}
	if c.N() > 0 {
		mid := c.Surfaces[0].Midpoint()
		if mid != c.Player {
			return Ray{Source: c.Player, Target: mid}, true
		}
	}
	if c.Cursor != c.Player {
		return Ray{Source: c.Player, Target: c.Cursor}, true
	}
	return Ray{}, false
}

// HitPoint solves the ideal reflection point on surface k: leg ray k
// intersected with surface k's line. Returns the hit (with its segment
// parameter S) and false when the leg is degenerate or parallel to the
// surface — a broken chain link.
func (c *ImageChain) HitPoint(k int) (RayHit, bool) {
	r, ok := c.LegRay(k)
	if !ok {
		return RayHit{}, false
	}
	return IntersectLines(r, c.Surfaces[k].Seg)
}
