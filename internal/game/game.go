package game

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// borderWidth is the pixel gap between the window edge and the arena.
	borderWidth = 16

	// planPickRadius is how close (in pixels) a click must land to a mirror
	// segment to add it to the plan.
	planPickRadius = 12.0

	// shotSpeed is projectile travel in pixels per frame for the fired-shot
	// animation.
	shotSpeed = 14.0
)

// Game is the interactive demo: move the player, aim with the mouse, click
// mirrors into the plan, and watch the planned path, the simulated path and
// the lit region update live. All geometry is recomputed from scratch every
// frame — inputs changed means everything downstream changes.
type Game struct {
	width  int
	height int
	bounds Bounds

	surfaces []Surface
	plan     []Surface

	player Point
	cursor Point

	result EvalResult
	frame  int

	eventLog *EventLog
	reporter *Reporter

	showValidPolys   bool
	showPlannedPolys bool
	showHUD          bool

	prevKeys       map[ebiten.Key]bool
	prevMouseLeft  bool
	prevMouseRight bool

	// Fired-shot animation along the actual path (consumer-side only; it
	// never feeds back into the geometry).
	shotActive   bool
	shotLeg      int
	shotProgress float64
	shotPath     []Point

	// Previous frame's verdicts, for event-log edge detection.
	lastLit     bool
	lastAligned bool
}

// New creates the demo with a fixed scene: border walls, a few obstacle
// rects, and a handful of mirrors to plan off.
func New() *Game {
	arenaW, arenaH := 1280.0, 720.0
	g := &Game{
		width:    borderWidth + int(arenaW) + borderWidth + logPanelWidth,
		height:   borderWidth + int(arenaH) + borderWidth,
		bounds:   Bounds{MinX: 0, MinY: 0, MaxX: arenaW, MaxY: arenaH},
		player:   Point{200, 360},
		cursor:   Point{900, 360},
		eventLog: NewEventLog(),
		reporter: NewReporter(),
		showHUD:  true,
		prevKeys: make(map[ebiten.Key]bool),
	}

	id := 0
	var border []Surface
	border, id = BorderSurfaces(id, g.bounds)
	g.surfaces = append(g.surfaces, border...)

	var walls []Surface
	walls, id = SurfacesFromRect(id, 560, 180, 620, 420)
	g.surfaces = append(g.surfaces, walls...)
	walls, id = SurfacesFromRect(id, 300, 560, 520, 600)
	g.surfaces = append(g.surfaces, walls...)

	addMirror := func(a, b Point) {
		g.surfaces = append(g.surfaces, NewMirror(id, a, b, g.player))
		id++
	}
	addMirror(Point{900, 120}, Point{1100, 160})
	addMirror(Point{1150, 300}, Point{1150, 520})
	addMirror(Point{760, 640}, Point{980, 600})
	addMirror(Point{380, 100}, Point{560, 60})
	addMirror(Point{120, 500}, Point{160, 660})

	g.eventLog.Add(0, "scene ready: %d surfaces", len(g.surfaces))
	return g
}

// keyPressed is an edge-triggered key check.
func (g *Game) keyPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = down
	return down && !was
}

// Update advances input handling and re-evaluates the scene snapshot.
func (g *Game) Update() error {
	g.frame++

	// Player movement.
	const speed = 4.0
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.player.Y -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.player.Y += speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.player.X -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.player.X += speed
	}
	g.player.X = math.Max(g.bounds.MinX+8, math.Min(g.bounds.MaxX-8, g.player.X))
	g.player.Y = math.Max(g.bounds.MinY+8, math.Min(g.bounds.MaxY-8, g.player.Y))

	// Cursor follows the mouse, in arena coordinates.
	mx, my := ebiten.CursorPosition()
	g.cursor = Point{
		X: math.Max(g.bounds.MinX, math.Min(g.bounds.MaxX, float64(mx-borderWidth))),
		Y: math.Max(g.bounds.MinY, math.Min(g.bounds.MaxY, float64(my-borderWidth))),
	}

	// Left click: append the nearest mirror to the plan.
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if left && !g.prevMouseLeft {
		if m, ok := g.mirrorNear(g.cursor); ok {
			g.plan = append(g.plan, m)
			g.eventLog.Add(g.frame, "plan += S%d (%d bounces)", m.ID, len(g.plan))
		}
	}
	g.prevMouseLeft = left

	// Right click: clear the plan.
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if right && !g.prevMouseRight && len(g.plan) > 0 {
		g.plan = g.plan[:0]
		g.eventLog.Add(g.frame, "plan cleared")
	}
	g.prevMouseRight = right

	if g.keyPressed(ebiten.KeyTab) {
		g.showValidPolys = !g.showValidPolys
	}
	if g.keyPressed(ebiten.KeyQ) {
		g.showPlannedPolys = !g.showPlannedPolys
	}
	if g.keyPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	in := EvalInput{
		Player:  g.player,
		Cursor:  g.cursor,
		Planned: g.plan,
		All:     g.surfaces,
		Bounds:  g.bounds,
	}
	g.result = Evaluate(in, nil)
	g.reporter.Record(g.result)

	if g.keyPressed(ebiten.KeyC) {
		if err := CopyDebugReport(in, g.result); err != nil {
			log.Printf("clipboard: %v", err)
			g.eventLog.Add(g.frame, "clipboard copy failed")
		} else {
			g.eventLog.Add(g.frame, "debug report copied")
		}
	}

	// Edge-triggered verdict events.
	if g.result.CursorLit != g.lastLit {
		if g.result.CursorLit {
			g.eventLog.Add(g.frame, "cursor lit")
		} else {
			g.eventLog.Add(g.frame, "cursor dark")
		}
		g.lastLit = g.result.CursorLit
	}
	if g.result.Aim.Aligned != g.lastAligned {
		if !g.result.Aim.Aligned {
			g.eventLog.Add(g.frame, "paths diverge after waypoint %d", g.result.Aim.Divergence.Index)
		}
		g.lastAligned = g.result.Aim.Aligned
	}
	// Fire.
	if g.keyPressed(ebiten.KeySpace) && !g.shotActive {
		g.shotPath = append([]Point(nil), g.result.Aim.ActualPath.Waypoints...)
		if len(g.shotPath) >= 2 {
			g.shotActive = true
			g.shotLeg = 0
			g.shotProgress = 0
		}
	}
	g.advanceShot()

	return nil
}

// advanceShot moves the fired projectile along its captured waypoint list.
func (g *Game) advanceShot() {
	if !g.shotActive {
		return
	}
	remaining := shotSpeed
	for remaining > 0 {
		if g.shotLeg >= len(g.shotPath)-1 {
			g.shotActive = false
			return
		}
		a := g.shotPath[g.shotLeg]
		b := g.shotPath[g.shotLeg+1]
		legLen := a.Dist(b)
		left := legLen * (1 - g.shotProgress)
		if remaining < left {
			g.shotProgress += remaining / legLen
			return
		}
		remaining -= left
		g.shotLeg++
		g.shotProgress = 0
	}
}

// shotPosition returns the projectile's current position.
func (g *Game) shotPosition() Point {
	a := g.shotPath[g.shotLeg]
	b := g.shotPath[g.shotLeg+1]
	return a.Add(b.Sub(a).Scale(g.shotProgress))
}

// mirrorNear returns the reflective surface whose segment passes within
// planPickRadius of p, preferring the closest.
func (g *Game) mirrorNear(p Point) (Surface, bool) {
	best := Surface{}
	bestDist := planPickRadius
	found := false
	for _, s := range g.surfaces {
		if !s.Reflective {
			continue
		}
		d := distToSegment(p, s.Seg)
		if d <= bestDist {
			best, bestDist, found = s, d, true
		}
	}
	return best, found
}

// distToSegment returns the distance from p to the closest point of seg.
func distToSegment(p Point, seg Segment) float64 {
	d := seg.Dir()
	lenSq := d.LenSq()
	if lenSq == 0 {
		return p.Dist(seg.A)
	}
	u := p.Sub(seg.A).Dot(d) / lenSq
	u = math.Max(0, math.Min(1, u))
	return p.Dist(seg.At(u))
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Draw implements ebiten.Game; the heavy lifting is in draw_overlays.go.
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawArena(screen)
	if g.showValidPolys || g.showPlannedPolys {
		g.drawPolygonOverlays(screen)
	} else if g.result.Visibility.Complete {
		g.drawLitRegion(screen)
	}
	g.drawSurfaces(screen)
	g.drawPaths(screen)
	g.drawActors(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}
	g.eventLog.Draw(screen, g.width-logPanelWidth, g.height)
}
