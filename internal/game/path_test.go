package game

import "testing"

func TestBuildPlannedPath_StraightShot(t *testing.T) {
	memo := NewReflectMemo()
	chain := BuildImageChain(Point{100, 360}, Point{1000, 360}, nil, memo)
	res := BuildPlannedPath(chain, nil, memo)

	if len(res.Waypoints) != 2 {
		t.Fatalf("expected [player, cursor], got %v", res.Waypoints)
	}
	if res.Waypoints[0] != (Point{100, 360}) || res.Waypoints[1] != (Point{1000, 360}) {
		t.Fatalf("unexpected waypoints: %v", res.Waypoints)
	}
	if !res.ReachedCursor || res.Terminal != TerminalReached {
		t.Fatalf("straight shot should be marked reached: %+v", res)
	}
}

func TestBuildPlannedPath_SingleMirror(t *testing.T) {
	memo := NewReflectMemo()
	m := NewMirror(1, Point{150, 50}, Point{150, 150}, Point{100, 100})
	chain := BuildImageChain(Point{100, 100}, Point{110, 140}, []Surface{m}, memo)
	res := BuildPlannedPath(chain, []Surface{m}, memo)

	if len(res.Waypoints) != 3 {
		t.Fatalf("expected [player, hit, cursor], got %v", res.Waypoints)
	}
	hit := res.Waypoints[1]
	if hit.X != 150 {
		t.Fatalf("reflection point should sit on the mirror line: %v", hit)
	}
	info := res.Hits[1]
	if info.SurfaceID != 1 || !info.OnSegment || !info.Reflected {
		t.Fatalf("unexpected hit info: %+v", info)
	}
	if res.Hits[0].SurfaceID != NoSurface || res.Hits[2].SurfaceID != NoSurface {
		t.Fatal("endpoints must not be surface hits")
	}
}

func TestBuildPlannedPath_OffSegmentHitIsFlagged(t *testing.T) {
	// The ideal reflection point lands below the mirror's physical extent;
	// the planned path still goes through it, flagged off-segment.
	memo := NewReflectMemo()
	m := NewMirror(1, Point{150, 90}, Point{150, 150}, Point{100, 100})
	chain := BuildImageChain(Point{100, 100}, Point{110, 40}, []Surface{m}, memo)
	res := BuildPlannedPath(chain, []Surface{m}, memo)

	if len(res.Waypoints) != 3 {
		t.Fatalf("expected 3 waypoints, got %v", res.Waypoints)
	}
	info := res.Hits[1]
	if info.OnSegment {
		t.Fatalf("hit should be off-segment: %+v", info)
	}
	if info.SegmentPos >= 0 {
		t.Fatalf("expected a negative segment parameter, got %v", info.SegmentPos)
	}
}

func TestBuildPlannedPath_ImmediateArrival(t *testing.T) {
	memo := NewReflectMemo()
	chain := BuildImageChain(Point{7, 7}, Point{7, 7}, nil, memo)
	res := BuildPlannedPath(chain, nil, memo)
	if len(res.Waypoints) != 1 || !res.ReachedCursor {
		t.Fatalf("player on cursor should be a one-point reached path: %+v", res)
	}
}

func TestBuildPlannedPath_ProjectionObeysWalls(t *testing.T) {
	// The continuation past the cursor must stop at real walls even though
	// the planned path itself ignores obstruction.
	memo := NewReflectMemo()
	wall := NewWall(5, Point{300, -100}, Point{300, 100})
	chain := BuildImageChain(Point{0, 0}, Point{100, 0}, nil, memo)
	res := BuildPlannedPath(chain, []Surface{wall}, memo)

	if len(res.Projection) == 0 {
		t.Fatal("expected a forward projection")
	}
	last := res.Projection[len(res.Projection)-1]
	if last != (Point{300, 0}) {
		t.Fatalf("projection should stop at the wall, got %v", last)
	}
}
