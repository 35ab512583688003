package game

import (
	"math"
	"testing"
)

// --- Invariant helpers ---

// nearPolygonEdge reports whether p lies within margin of any polygon edge.
// Randomized sweeps skip such scenes: a point that close to the lit boundary
// sits inside the outline's dedup band, where polygon membership is not a
// meaningful verdict.
func nearPolygonEdge(poly Polygon, p Point, margin float64) bool {
	n := len(poly.Vertices)
	for i := 0; i < n; i++ {
		a := poly.Vertices[i].P
		b := poly.Vertices[(i+1)%n].P
		if distToSegment(p, Segment{a, b}) <= margin {
			return true
		}
	}
	return false
}

// checkVerdictCorrelation verifies the core equivalence: the cursor is lit
// exactly when the plan needed no bypass, the paths align, and the shot
// reaches the cursor.
func checkVerdictCorrelation(t *testing.T, ts *TestScene, res EvalResult, seed int64) {
	t.Helper()
	if res.Visibility.Complete && nearPolygonEdge(res.Visibility.Lit, ts.Cursor, 2.0) {
		t.Logf("seed %d: cursor within the lit boundary band, skipped", seed)
		return
	}
	pathValid := res.Aim.Bypass.Clean() && res.Aim.Aligned && res.Aim.CursorReachable
	if pathValid != res.CursorLit {
		t.Errorf("seed %d: path valid=%v but cursor lit=%v\n%s",
			seed, pathValid, res.CursorLit, BuildDebugReport(ts.Input(), res))
	}
}

// checkSharedLaunch verifies both paths leave the player identically: same
// first waypoint, and collinear first legs.
func checkSharedLaunch(t *testing.T, res EvalResult, seed int64) {
	t.Helper()
	p := res.Aim.PlannedPath.Waypoints
	a := res.Aim.ActualPath.Waypoints
	if len(p) == 0 || len(a) == 0 {
		t.Errorf("seed %d: empty path", seed)
		return
	}
	if p[0] != a[0] {
		t.Errorf("seed %d: paths start apart: %v vs %v", seed, p[0], a[0])
		return
	}
	if len(p) < 2 || len(a) < 2 {
		return
	}
	dp := p[1].Sub(p[0])
	da := a[1].Sub(a[0])
	cross := dp.Cross(da)
	if math.Abs(cross) > 1e-6*dp.Len()*da.Len() {
		t.Errorf("seed %d: first legs not collinear: %v vs %v", seed, dp, da)
	}
	if dp.Dot(da) < 0 {
		t.Errorf("seed %d: first legs point apart: %v vs %v", seed, dp, da)
	}
}

// checkDivergenceConsistent verifies the divergence verdict matches the
// waypoint lists it was computed from.
func checkDivergenceConsistent(t *testing.T, res EvalResult, seed int64) {
	t.Helper()
	p := res.Aim.PlannedPath.Waypoints
	a := res.Aim.ActualPath.Waypoints
	d := res.Aim.Divergence

	if d.Aligned {
		if len(p) != len(a) {
			t.Errorf("seed %d: aligned but lengths differ: %d vs %d", seed, len(p), len(a))
			return
		}
		for i := range p {
			if p[i] != a[i] {
				t.Errorf("seed %d: aligned but waypoint %d differs", seed, i)
				return
			}
		}
		return
	}
	if d.Index < -1 || d.Index >= len(p) || d.Index >= len(a) {
		t.Errorf("seed %d: divergence index %d out of range", seed, d.Index)
		return
	}
	for i := 0; i <= d.Index; i++ {
		if p[i] != a[i] {
			t.Errorf("seed %d: prefix broken at %d before divergence index %d", seed, i, d.Index)
			return
		}
	}
	if d.Index >= 0 && d.LastShared != p[d.Index] {
		t.Errorf("seed %d: last shared waypoint mismatch: %v", seed, d.LastShared)
	}
}

// checkLitPolygonSane verifies the lit polygon stays inside the screen and
// encloses a non-negative, bounded area.
func checkLitPolygonSane(t *testing.T, ts *TestScene, res EvalResult, seed int64) {
	t.Helper()
	if !res.Visibility.Complete {
		return
	}
	b := ts.Bounds
	for _, v := range res.Visibility.Lit.Vertices {
		if v.P.X < b.MinX-1e-6 || v.P.X > b.MaxX+1e-6 ||
			v.P.Y < b.MinY-1e-6 || v.P.Y > b.MaxY+1e-6 {
			t.Errorf("seed %d: lit vertex outside the screen: %v", seed, v.P)
			return
		}
	}
	area := res.Visibility.Lit.Area()
	if area > (b.MaxX-b.MinX)*(b.MaxY-b.MinY)+1e-6 {
		t.Errorf("seed %d: lit area %v exceeds the screen", seed, area)
	}
}

// checkCroppedAreaMonotonic verifies cropping a step's valid polygon to the
// planned window never grows it.
func checkCroppedAreaMonotonic(t *testing.T, res EvalResult, seed int64) {
	t.Helper()
	for k, st := range res.Visibility.Steps {
		if !st.HasPlanned {
			continue
		}
		if st.Planned.Area() > st.Valid.Area()+1e-6 {
			t.Errorf("seed %d: step %d planned area %v exceeds valid area %v",
				seed, k, st.Planned.Area(), st.Valid.Area())
		}
	}
}

// --- Randomized scene builders ---

// straightShotScene has no plan: a player, a cursor and a couple of wall
// rects between them.
func straightShotScene(seed int64) *TestScene {
	ts := NewTestScene(WithScreen(1280, 720), WithSeed(seed), WithBorderWalls())
	rng := ts.Rng
	ts.Player = Point{X: 60 + rng.Float64()*340, Y: 60 + rng.Float64()*600}
	ts.Cursor = Point{X: 700 + rng.Float64()*540, Y: 30 + rng.Float64()*660}
	for i := 0; i < 2; i++ {
		x := 450 + rng.Float64()*250
		y := 80 + rng.Float64()*420
		walls, _ := SurfacesFromRect(100+i*4, x, y, x+50+rng.Float64()*80, y+50+rng.Float64()*140)
		ts.Surfaces = append(ts.Surfaces, walls...)
	}
	return ts
}

// singleMirrorScene plans exactly one mirror; besides the borders the scene
// is empty, so every lit-region edge is exact.
func singleMirrorScene(seed int64) *TestScene {
	ts := NewTestScene(WithScreen(1280, 720), WithSeed(seed), WithBorderWalls())
	rng := ts.Rng
	ts.Player = Point{X: 60 + rng.Float64()*340, Y: 60 + rng.Float64()*600}
	ts.Cursor = Point{X: 20 + rng.Float64()*1240, Y: 20 + rng.Float64()*680}

	cx := 500 + rng.Float64()*400
	cy := 150 + rng.Float64()*420
	dx := 30 + rng.Float64()*70
	dy := (rng.Float64() - 0.5) * 140
	m := NewMirror(200, Point{cx - dx, cy - dy}, Point{cx + dx, cy + dy}, ts.Player)
	ts.Surfaces = append(ts.Surfaces, m)
	ts.Plan = append(ts.Plan, m)
	return ts
}

// --- Invariant sweeps ---

func TestInvariant_StraightShots(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		ts := straightShotScene(seed)
		res := ts.Evaluate()
		checkVerdictCorrelation(t, ts, res, seed)
		checkSharedLaunch(t, res, seed)
		checkDivergenceConsistent(t, res, seed)
		checkLitPolygonSane(t, ts, res, seed)
	}
}

func TestInvariant_SingleMirrorPlans(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		ts := singleMirrorScene(seed)
		res := ts.Evaluate()
		checkVerdictCorrelation(t, ts, res, seed)
		checkSharedLaunch(t, res, seed)
		checkDivergenceConsistent(t, res, seed)
		checkLitPolygonSane(t, ts, res, seed)
		checkCroppedAreaMonotonic(t, res, seed)
	}
}

func TestInvariant_EvaluationIsDeterministic(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		ts := singleMirrorScene(seed)
		a := ts.Evaluate()
		b := ts.Evaluate()

		if len(a.Aim.ActualPath.Waypoints) != len(b.Aim.ActualPath.Waypoints) {
			t.Fatalf("seed %d: waypoint counts differ between runs", seed)
		}
		for i := range a.Aim.ActualPath.Waypoints {
			if a.Aim.ActualPath.Waypoints[i] != b.Aim.ActualPath.Waypoints[i] {
				t.Fatalf("seed %d: waypoint %d differs between runs", seed, i)
			}
		}
		if len(a.Visibility.Lit.Vertices) != len(b.Visibility.Lit.Vertices) {
			t.Fatalf("seed %d: lit vertex counts differ between runs", seed)
		}
		for i := range a.Visibility.Lit.Vertices {
			if a.Visibility.Lit.Vertices[i].P != b.Visibility.Lit.Vertices[i].P {
				t.Fatalf("seed %d: lit vertex %d differs between runs", seed, i)
			}
		}
		if a.CursorLit != b.CursorLit {
			t.Fatalf("seed %d: lit verdict differs between runs", seed)
		}
	}
}

func TestInvariant_AlignedWhileUnobstructed(t *testing.T) {
	// With nothing but borders in the scene, a straight shot at any cursor
	// must always align and light the cursor.
	for seed := int64(1); seed <= 20; seed++ {
		ts := NewTestScene(WithScreen(1280, 720), WithSeed(seed), WithBorderWalls())
		rng := ts.Rng
		ts.Player = Point{X: 40 + rng.Float64()*1200, Y: 40 + rng.Float64()*640}
		ts.Cursor = Point{X: 40 + rng.Float64()*1200, Y: 40 + rng.Float64()*640}
		res := ts.Evaluate()

		if !res.Aim.Aligned || !res.Aim.CursorReachable {
			t.Errorf("seed %d: open-field shot failed: %+v", seed, res.Aim.Divergence)
		}
		if !res.CursorLit {
			t.Errorf("seed %d: open-field cursor dark", seed)
		}
	}
}
