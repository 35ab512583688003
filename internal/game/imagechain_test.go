package game

import "testing"

func TestReflectMemo_Involution(t *testing.T) {
	memo := NewReflectMemo()
	s := NewMirror(1, Point{13.5, -2.25}, Point{41.75, 17.5}, Point{0, 0})
	p := Point{3.7, 91.2}
	q := memo.Reflect(p, s)
	back := memo.Reflect(q, s)
	if back != p {
		t.Fatalf("cached reverse reflection must be exact: %v -> %v -> %v", p, q, back)
	}
}

func TestReflectMemo_NilSafe(t *testing.T) {
	var memo *ReflectMemo
	s := NewMirror(1, Point{50, -50}, Point{50, 50}, Point{0, 0})
	if q := memo.Reflect(Point{0, 0}, s); q != (Point{100, 0}) {
		t.Fatalf("nil memo reflection wrong: %v", q)
	}
}

func TestBuildImageChain_SingleMirror(t *testing.T) {
	memo := NewReflectMemo()
	m := NewMirror(1, Point{50, -50}, Point{50, 50}, Point{0, 0})
	c := BuildImageChain(Point{0, 0}, Point{10, 40}, []Surface{m}, memo)

	if c.PlayerImages[1] != (Point{100, 0}) {
		t.Fatalf("player image wrong: %v", c.PlayerImages[1])
	}
	if c.CursorImages[1] != (Point{90, 40}) {
		t.Fatalf("cursor image wrong: %v", c.CursorImages[1])
	}

	hit, ok := c.HitPoint(0)
	if !ok {
		t.Fatal("expected a reflection point")
	}
	if hit.S < 0 || hit.S > 1 {
		t.Fatalf("reflection point off-segment: s=%v", hit.S)
	}
	// Launch ray aims at the cursor image; crossing x=50 gives y=200/9.
	if hit.P.X != 50 {
		t.Fatalf("expected hit on x=50, got %v", hit.P)
	}
}

func TestImageChain_LegRayTargetsRawCursorOnFinalLeg(t *testing.T) {
	memo := NewReflectMemo()
	m := NewMirror(1, Point{50, -50}, Point{50, 50}, Point{0, 0})
	cursor := Point{10, 40}
	c := BuildImageChain(Point{0, 0}, cursor, []Surface{m}, memo)

	r, ok := c.LegRay(1)
	if !ok {
		t.Fatal("final leg should exist")
	}
	if r.Target != cursor {
		t.Fatalf("final leg must target the raw cursor, got %v", r.Target)
	}
	if r.Source != (Point{100, 0}) {
		t.Fatalf("final leg source should be the full player image, got %v", r.Source)
	}
}

func TestImageChain_DegenerateFallsBackToMidpoint(t *testing.T) {
	// Cursor placed exactly at the player's mirror image: both endpoint
	// images coincide and no leg ray exists.
	memo := NewReflectMemo()
	m := NewMirror(1, Point{50, -50}, Point{50, 50}, Point{0, 0})
	c := BuildImageChain(Point{0, 0}, Point{100, 0}, []Surface{m}, memo)

	if _, ok := c.LegRay(0); ok {
		t.Fatal("coincident images must not yield a leg ray")
	}
	r, ok := c.LaunchRay()
	if !ok {
		t.Fatal("expected the midpoint fallback")
	}
	if r.Target != m.Midpoint() {
		t.Fatalf("fallback should aim at the surface midpoint, got %v", r.Target)
	}
}

func TestImageChain_EmptyPlanIsStraightShot(t *testing.T) {
	memo := NewReflectMemo()
	c := BuildImageChain(Point{0, 0}, Point{100, 0}, nil, memo)
	r, ok := c.LaunchRay()
	if !ok {
		t.Fatal("expected a direct ray")
	}
	if r.Source != (Point{0, 0}) || r.Target != (Point{100, 0}) {
		t.Fatalf("unexpected direct ray: %+v", r)
	}
}

func TestImageChain_ImmediateArrival(t *testing.T) {
	memo := NewReflectMemo()
	c := BuildImageChain(Point{7, 7}, Point{7, 7}, nil, memo)
	if _, ok := c.LaunchRay(); ok {
		t.Fatal("player on cursor with no plan has no launch direction")
	}
}

func TestImageChain_TwoMirrors(t *testing.T) {
	// Two mirrors at right angles: a vertical one and a horizontal one.
	memo := NewReflectMemo()
	m1 := NewMirror(1, Point{100, -80}, Point{100, 80}, Point{0, 0})
	m2 := NewMirror(2, Point{20, 90}, Point{90, 90}, Point{50, 0})
	player := Point{0, 0}
	cursor := Point{40, 20}
	c := BuildImageChain(player, cursor, []Surface{m1, m2}, memo)

	if c.N() != 2 {
		t.Fatalf("expected chain of 2, got %d", c.N())
	}
	// Forward images: reflect through m1, then m2.
	if c.PlayerImages[1] != (Point{200, 0}) {
		t.Fatalf("first player image wrong: %v", c.PlayerImages[1])
	}
	if c.PlayerImages[2] != (Point{200, 180}) {
		t.Fatalf("second player image wrong: %v", c.PlayerImages[2])
	}
	// Backward images: cursor reflects through m2 first.
	if c.CursorImages[1] != (Point{40, 160}) {
		t.Fatalf("first cursor image wrong: %v", c.CursorImages[1])
	}
	if c.CursorImages[2] != (Point{160, 160}) {
		t.Fatalf("second cursor image wrong: %v", c.CursorImages[2])
	}

	// Both hit points must lie on their own surface lines.
	h0, ok := c.HitPoint(0)
	if !ok || h0.P.X != 100 {
		t.Fatalf("hit 0 should sit on x=100: %v ok=%v", h0.P, ok)
	}
	h1, ok := c.HitPoint(1)
	if !ok || h1.P.Y != 90 {
		t.Fatalf("hit 1 should sit on y=90: %v ok=%v", h1.P, ok)
	}
}
