package game

import "math/rand"

// TestScene is a headless scene harness used exclusively by tests and the
// headless-report tool. It mirrors the demo's scene construction but has no
// Ebiten dependency and supports deterministic seeding and structured
// tracing.
type TestScene struct {
	Bounds   Bounds
	Surfaces []Surface
	Plan     []Surface
	Player   Point
	Cursor   Point
	Trace    *TraceLog
	Rng      *rand.Rand

	nextID int
}

// sceneOptionKind controls the pass in which an option is applied.
type sceneOptionKind int

const (
	sceneOptInfra   sceneOptionKind = iota // bounds, player, cursor, seed, trace — applied first
	sceneOptSurface                        // walls and mirrors — applied once the infra exists
	sceneOptPlan                           // plan entries — applied after surfaces exist
)

// SceneOption is a builder function applied to a TestScene during
// construction.
type SceneOption struct {
	kind sceneOptionKind
	fn   func(*TestScene)
}

// WithScreen sets the screen bounds from (0,0) to (w,h).
func WithScreen(w, h float64) SceneOption {
	return SceneOption{sceneOptInfra, func(ts *TestScene) {
		ts.Bounds = Bounds{MinX: 0, MinY: 0, MaxX: w, MaxY: h}
	}}
}

// WithPlayer places the player.
func WithPlayer(x, y float64) SceneOption {
	return SceneOption{sceneOptInfra, func(ts *TestScene) {
		ts.Player = Point{x, y}
	}}
}

// WithCursor places the cursor.
func WithCursor(x, y float64) SceneOption {
	return SceneOption{sceneOptInfra, func(ts *TestScene) {
		ts.Cursor = Point{x, y}
	}}
}

// WithSeed sets the RNG seed for deterministic randomized scenes.
func WithSeed(seed int64) SceneOption {
	return SceneOption{sceneOptInfra, func(ts *TestScene) {
		ts.Rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithTrace attaches a trace log. verbose enables per-ray entries.
func WithTrace(verbose bool) SceneOption {
	return SceneOption{sceneOptInfra, func(ts *TestScene) {
		ts.Trace = NewTraceLog(verbose)
	}}
}

// WithMirror adds a reflective surface from (ax,ay) to (bx,by) facing the
// player's side.
func WithMirror(ax, ay, bx, by float64) SceneOption {
	return SceneOption{sceneOptSurface, func(ts *TestScene) {
		ts.addMirror(Point{ax, ay}, Point{bx, by})
	}}
}

// WithPlannedMirror adds a mirror like WithMirror and appends it to the plan.
func WithPlannedMirror(ax, ay, bx, by float64) SceneOption {
	return SceneOption{sceneOptSurface, func(ts *TestScene) {
		m := ts.addMirror(Point{ax, ay}, Point{bx, by})
		ts.Plan = append(ts.Plan, m)
	}}
}

// WithWall adds a blocking surface from (ax,ay) to (bx,by).
func WithWall(ax, ay, bx, by float64) SceneOption {
	return SceneOption{sceneOptSurface, func(ts *TestScene) {
		ts.Surfaces = append(ts.Surfaces, NewWall(ts.nextID, Point{ax, ay}, Point{bx, by}))
		ts.nextID++
	}}
}

// WithWallRect adds four blocking surfaces around an axis-aligned rectangle.
func WithWallRect(minX, minY, maxX, maxY float64) SceneOption {
	return SceneOption{sceneOptSurface, func(ts *TestScene) {
		walls, next := SurfacesFromRect(ts.nextID, minX, minY, maxX, maxY)
		ts.Surfaces = append(ts.Surfaces, walls...)
		ts.nextID = next
	}}
}

// WithBorderWalls adds blocking surfaces along the screen bounds.
func WithBorderWalls() SceneOption {
	return SceneOption{sceneOptSurface, func(ts *TestScene) {
		walls, next := BorderSurfaces(ts.nextID, ts.Bounds)
		ts.Surfaces = append(ts.Surfaces, walls...)
		ts.nextID = next
	}}
}

// WithPlanSurface appends the idx-th added surface (in option order) to the
// plan. Repeats are allowed for deliberate back-and-forth bounces.
func WithPlanSurface(idx int) SceneOption {
	return SceneOption{sceneOptPlan, func(ts *TestScene) {
		if idx >= 0 && idx < len(ts.Surfaces) {
			ts.Plan = append(ts.Plan, ts.Surfaces[idx])
		}
	}}
}

func (ts *TestScene) addMirror(a, b Point) Surface {
	m := NewMirror(ts.nextID, a, b, ts.Player)
	ts.nextID++
	ts.Surfaces = append(ts.Surfaces, m)
	return m
}

// NewTestScene builds a scene from options, applied infra-first so surfaces
// can orient themselves toward the player and plans can reference surfaces.
func NewTestScene(opts ...SceneOption) *TestScene {
	ts := &TestScene{
		Bounds: Bounds{MinX: 0, MinY: 0, MaxX: 1280, MaxY: 720},
		Player: Point{100, 360},
		Cursor: Point{1000, 360},
		Rng:    rand.New(rand.NewSource(1)), // #nosec G404 -- test harness
	}
	for _, pass := range []sceneOptionKind{sceneOptInfra, sceneOptSurface, sceneOptPlan} {
		for _, o := range opts {
			if o.kind == pass {
				o.fn(ts)
			}
		}
	}
	return ts
}

// Input assembles the core's call contract from the scene.
func (ts *TestScene) Input() EvalInput {
	return EvalInput{
		Player:  ts.Player,
		Cursor:  ts.Cursor,
		Planned: ts.Plan,
		All:     ts.Surfaces,
		Bounds:  ts.Bounds,
	}
}

// Evaluate runs the full pipeline over the scene's current snapshot.
func (ts *TestScene) Evaluate() EvalResult {
	return Evaluate(ts.Input(), ts.Trace)
}
