package game

import (
	"math"
	"testing"
)

func squarePolygon(minX, minY, maxX, maxY float64) Polygon {
	return Polygon{Vertices: []PolyVertex{
		{P: Point{minX, minY}, Kind: VertexBorderHit, SurfaceID: NoSurface},
		{P: Point{maxX, minY}, Kind: VertexBorderHit, SurfaceID: NoSurface},
		{P: Point{maxX, maxY}, Kind: VertexBorderHit, SurfaceID: NoSurface},
		{P: Point{minX, maxY}, Kind: VertexBorderHit, SurfaceID: NoSurface},
	}}
}

func TestOrderWindowEnds(t *testing.T) {
	surf := NewMirror(1, Point{50, -50}, Point{50, 50}, Point{0, 0})
	right, left, ok := orderWindowEnds(Point{0, 0}, surf)
	if !ok {
		t.Fatal("expected an ordered window")
	}
	if right != (Point{50, -50}) || left != (Point{50, 50}) {
		t.Fatalf("unexpected order: right=%v left=%v", right, left)
	}

	// Seen from the other side the order flips.
	right, left, ok = orderWindowEnds(Point{100, 0}, surf)
	if !ok || right != (Point{50, 50}) || left != (Point{50, -50}) {
		t.Fatalf("flipped order wrong: right=%v left=%v ok=%v", right, left, ok)
	}
}

func TestOrderWindowEnds_Collinear(t *testing.T) {
	surf := NewWall(1, Point{10, 10}, Point{20, 20})
	if _, _, ok := orderWindowEnds(Point{0, 0}, surf); ok {
		t.Fatal("collinear origin subtends no window")
	}
}

func TestCropToWindow_Triangle(t *testing.T) {
	valid := squarePolygon(0, 0, 100, 100)
	origin := Point{50, 50}
	surf := NewMirror(1, Point{100, 20}, Point{100, 80}, origin)

	got := CropToWindow(valid, origin, surf)
	if len(got.Vertices) < 3 {
		t.Fatalf("expected a triangle, got %d vertices", len(got.Vertices))
	}
	if math.Abs(got.Area()-1500) > 1e-6 {
		t.Fatalf("expected area 1500, got %v", got.Area())
	}
	if !got.Contains(Point{80, 50}) {
		t.Fatal("window interior should survive the crop")
	}
	if got.Contains(Point{60, 10}) || got.Contains(Point{20, 50}) {
		t.Fatal("points outside the window must be cropped away")
	}
}

func TestCropToWindow_CollinearOriginIsEmpty(t *testing.T) {
	valid := squarePolygon(0, 0, 100, 100)
	surf := NewWall(1, Point{50, 20}, Point{50, 80})
	got := CropToWindow(valid, Point{50, 90}, surf)
	if len(got.Vertices) != 0 {
		t.Fatalf("collinear origin should produce an empty crop: %v", got.Vertices)
	}
}

func TestCropToWindow_KeepsOriginSideOfSurface(t *testing.T) {
	// The polygon extends past the surface line; the crop must cut at it.
	valid := squarePolygon(0, 0, 200, 100)
	origin := Point{50, 50}
	surf := NewMirror(1, Point{100, 20}, Point{100, 80}, origin)

	got := CropToWindow(valid, origin, surf)
	for _, v := range got.Vertices {
		if v.P.X > 100+1e-9 {
			t.Fatalf("vertex beyond the surface line survived: %v", v.P)
		}
	}
}

func TestCropWindowToSector_ClampsEndpoints(t *testing.T) {
	s := RaySector{Origin: Point{0, 0}, Right: Point{100, -100}, Left: Point{100, 100}}
	surf := NewMirror(1, Point{50, -200}, Point{50, 200}, Point{0, 0})

	got, ok := cropWindowToSector(s, surf)
	if !ok {
		t.Fatal("expected a clamped window")
	}
	if got.Right != (Point{50, -50}) || got.Left != (Point{50, 50}) {
		t.Fatalf("unexpected clamped window: right=%v left=%v", got.Right, got.Left)
	}
}

func TestCropWindowToSector_SurfaceOutsideSector(t *testing.T) {
	s := RaySector{Origin: Point{0, 0}, Right: Point{100, -100}, Left: Point{100, 100}}
	surf := NewMirror(1, Point{50, 60}, Point{50, 80}, Point{0, 0})
	if _, ok := cropWindowToSector(s, surf); ok {
		t.Fatal("a window fully outside the sector cannot be kept")
	}
}

func TestCropWindowToSector_FullSectorPassesWindowThrough(t *testing.T) {
	s := FullSector(Point{0, 0})
	surf := NewMirror(1, Point{50, -30}, Point{50, 30}, Point{0, 0})
	got, ok := cropWindowToSector(s, surf)
	if !ok {
		t.Fatal("full sector should accept any non-collinear window")
	}
	if got.Right != (Point{50, -30}) || got.Left != (Point{50, 30}) {
		t.Fatalf("window ends should be the surface endpoints: %+v", got)
	}
}
