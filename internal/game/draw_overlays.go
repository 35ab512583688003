package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// whiteImage backs the polygon-fill triangles; the 1x1 sub-image avoids
// bleeding at the texture edge.
var whiteImage = ebiten.NewImage(3, 3)
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	whiteImage.Fill(color.White)
}

// stepColors cycle per propagation depth in the overlay view.
var stepColors = []color.RGBA{
	{R: 80, G: 200, B: 255, A: 255},
	{R: 255, G: 160, B: 60, A: 255},
	{R: 180, G: 120, B: 255, A: 255},
	{R: 120, G: 255, B: 140, A: 255},
	{R: 255, G: 110, B: 170, A: 255},
}

// sx, sy map arena coordinates to screen pixels.
func (g *Game) sx(x float64) float32 { return float32(x) + borderWidth }
func (g *Game) sy(y float64) float32 { return float32(y) + borderWidth }

func (g *Game) drawArena(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 18, B: 22, A: 255})
	vector.FillRect(screen, g.sx(g.bounds.MinX), g.sy(g.bounds.MinY),
		float32(g.bounds.MaxX-g.bounds.MinX), float32(g.bounds.MaxY-g.bounds.MinY),
		color.RGBA{R: 26, G: 28, B: 34, A: 255}, false)
}

// fillPolygon fills a polygon with a translucent colour via a vector path.
func (g *Game) fillPolygon(screen *ebiten.Image, pts []Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(g.sx(pts[0].X), g.sy(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(g.sx(p.X), g.sy(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r := float32(clr.R) / 255
	gc := float32(clr.G) / 255
	bl := float32(clr.B) / 255
	a := float32(clr.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = gc
		vs[i].ColorB = bl
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

// strokePolygon outlines a polygon.
func (g *Game) strokePolygon(screen *ebiten.Image, pts []Point, width float32, clr color.RGBA) {
	n := len(pts)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		vector.StrokeLine(screen, g.sx(a.X), g.sy(a.Y), g.sx(b.X), g.sy(b.Y), width, clr, false)
	}
}

func (g *Game) drawLitRegion(screen *ebiten.Image) {
	lit := g.result.Visibility.Lit
	g.fillPolygon(screen, lit.Points(), color.RGBA{R: 255, G: 230, B: 110, A: 36})
	g.strokePolygon(screen, lit.Points(), 1.0, color.RGBA{R: 255, G: 230, B: 110, A: 120})
}

func (g *Game) drawPolygonOverlays(screen *ebiten.Image) {
	for k, st := range g.result.Visibility.Steps {
		clr := stepColors[k%len(stepColors)]
		if g.showValidPolys {
			g.strokePolygon(screen, st.Valid.Points(), 1.0, clr)
		}
		if g.showPlannedPolys && st.HasPlanned {
			fill := clr
			fill.A = 28
			g.fillPolygon(screen, st.Planned.Points(), fill)
			g.strokePolygon(screen, st.Planned.Points(), 1.5, clr)
		}
	}
}

func (g *Game) drawSurfaces(screen *ebiten.Image) {
	planOrder := make(map[int][]int)
	for i, s := range g.plan {
		planOrder[s.ID] = append(planOrder[s.ID], i+1)
	}

	for _, s := range g.surfaces {
		a, b := s.Seg.A, s.Seg.B
		if s.Reflective {
			clr := color.RGBA{R: 90, G: 200, B: 220, A: 255}
			width := float32(2.0)
			if len(planOrder[s.ID]) > 0 {
				clr = color.RGBA{R: 140, G: 255, B: 255, A: 255}
				width = 3.0
			}
			vector.StrokeLine(screen, g.sx(a.X), g.sy(a.Y), g.sx(b.X), g.sy(b.Y), width, clr, false)

			// Normal tick at the midpoint, on the reflective side.
			mid := s.Midpoint()
			n := s.Normal
			nl := n.Len()
			if nl > 0 {
				tip := mid.Add(n.Scale(10 / nl))
				vector.StrokeLine(screen, g.sx(mid.X), g.sy(mid.Y), g.sx(tip.X), g.sy(tip.Y), 1.0, color.RGBA{R: 90, G: 200, B: 220, A: 160}, false)
			}

			if orders := planOrder[s.ID]; len(orders) > 0 {
				label := ""
				for i, o := range orders {
					if i > 0 {
						label += ","
					}
					label += fmt.Sprintf("%d", o)
				}
				ebitenutil.DebugPrintAt(screen, label, int(g.sx(mid.X))+4, int(g.sy(mid.Y))+4)
			}
		} else {
			vector.StrokeLine(screen, g.sx(a.X), g.sy(a.Y), g.sx(b.X), g.sy(b.Y), 2.0, color.RGBA{R: 110, G: 110, B: 120, A: 255}, false)
		}
	}
}

// drawPathLine draws consecutive waypoints as a polyline.
func (g *Game) drawPathLine(screen *ebiten.Image, pts []Point, width float32, clr color.RGBA) {
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		vector.StrokeLine(screen, g.sx(a.X), g.sy(a.Y), g.sx(b.X), g.sy(b.Y), width, clr, false)
	}
}

func (g *Game) drawPaths(screen *ebiten.Image) {
	aim := g.result.Aim

	// Ideal path in green; simulated path in red. When aligned they overlap
	// and the shared prefix reads as a single bright line.
	g.drawPathLine(screen, aim.PlannedPath.Waypoints, 2.0, color.RGBA{R: 90, G: 220, B: 110, A: 200})
	g.drawPathLine(screen, aim.ActualPath.Waypoints, 1.5, color.RGBA{R: 235, G: 90, B: 80, A: 200})

	// Continuations past the cursor, faint.
	if len(aim.PlannedPath.Projection) > 0 {
		proj := append([]Point{g.cursor}, aim.PlannedPath.Projection...)
		g.drawPathLine(screen, proj, 1.0, color.RGBA{R: 90, G: 220, B: 110, A: 70})
	}

	// Off-segment planned hits get a hollow marker.
	for i, h := range aim.PlannedPath.Hits {
		if h.SurfaceID != NoSurface && !h.OnSegment {
			w := aim.PlannedPath.Waypoints[i]
			g.drawDiamond(screen, w, 6, color.RGBA{R: 255, G: 200, B: 60, A: 255})
		}
	}

	// Divergence marker.
	if !aim.Divergence.Aligned && aim.Divergence.Index >= 0 {
		g.drawDiamond(screen, aim.Divergence.LastShared, 8, color.RGBA{R: 255, G: 80, B: 80, A: 255})
	}
}

// drawDiamond draws a small diamond marker.
func (g *Game) drawDiamond(screen *ebiten.Image, p Point, r float32, clr color.RGBA) {
	x, y := g.sx(p.X), g.sy(p.Y)
	vector.StrokeLine(screen, x-r, y, x, y-r, 1.5, clr, false)
	vector.StrokeLine(screen, x, y-r, x+r, y, 1.5, clr, false)
	vector.StrokeLine(screen, x+r, y, x, y+r, 1.5, clr, false)
	vector.StrokeLine(screen, x, y+r, x-r, y, 1.5, clr, false)
}

func (g *Game) drawActors(screen *ebiten.Image) {
	// Player: filled square.
	px, py := g.sx(g.player.X), g.sy(g.player.Y)
	vector.FillRect(screen, px-5, py-5, 10, 10, color.RGBA{R: 240, G: 240, B: 240, A: 255}, false)

	// Cursor: diamond, coloured by lit-ness.
	clr := color.RGBA{R: 120, G: 120, B: 130, A: 255}
	if g.result.CursorLit {
		clr = color.RGBA{R: 255, G: 230, B: 110, A: 255}
	}
	g.drawDiamond(screen, g.cursor, 7, clr)

	// Fired shot.
	if g.shotActive {
		sp := g.shotPosition()
		vector.FillRect(screen, g.sx(sp.X)-3, g.sy(sp.Y)-3, 6, 6, color.RGBA{R: 255, G: 255, B: 255, A: 255}, false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	text.Draw(screen, "RICOCHET SENSE", basicfont.Face7x13, borderWidth+4, 12, color.RGBA{R: 200, G: 220, B: 255, A: 255})

	aim := g.result.Aim
	status := fmt.Sprintf("plan=%d bypassed=%d terminal=%s aligned=%v lit=%v",
		len(g.plan), len(aim.Bypass.Bypassed), aim.ActualPath.Terminal, aim.Aligned, g.result.CursorLit)
	ebitenutil.DebugPrintAt(screen, status, borderWidth+4, 18)

	y := 32
	for _, bp := range aim.Bypass.Bypassed {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("bypassed plan[%d] S%d: %s", bp.Index, bp.Surface.ID, bp.Reason), borderWidth+4, y)
		y += 14
	}

	help := "[click] plan mirror  [rclick] clear  [space] fire  [tab] valid polys  [q] planned polys  [c] copy report  [h] hide"
	ebitenutil.DebugPrintAt(screen, help, borderWidth+4, g.height-borderWidth-16)
}
