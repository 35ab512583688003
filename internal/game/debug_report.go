package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// BuildDebugReport renders one evaluation as a human-inspectable text block:
// the scene snapshot, the plan and its bypasses, both paths, the divergence
// verdict and the visibility summary. The format is stable enough to paste
// into a regression fixture.
func BuildDebugReport(in EvalInput, res EvalResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- RicochetSense debug report ---\n")
	fmt.Fprintf(&b, "player=(%.2f,%.2f) cursor=(%.2f,%.2f) bounds=[%.0f,%.0f..%.0f,%.0f]\n",
		in.Player.X, in.Player.Y, in.Cursor.X, in.Cursor.Y,
		in.Bounds.MinX, in.Bounds.MinY, in.Bounds.MaxX, in.Bounds.MaxY)
	fmt.Fprintf(&b, "surfaces=%d planned=%d\n\n", len(in.All), len(in.Planned))

	b.WriteString("== scene ==\n")
	for _, s := range in.All {
		kind := "wall  "
		if s.Reflective {
			kind = "mirror"
		}
		fmt.Fprintf(&b, "  S%-3d %s (%.1f,%.1f)-(%.1f,%.1f)\n",
			s.ID, kind, s.Seg.A.X, s.Seg.A.Y, s.Seg.B.X, s.Seg.B.Y)
	}

	b.WriteString("\n== plan ==\n")
	if len(in.Planned) == 0 {
		b.WriteString("  (empty: straight shot)\n")
	}
	for i, s := range in.Planned {
		fmt.Fprintf(&b, "  %d: S%d\n", i, s.ID)
	}

	if !res.Aim.Bypass.Clean() {
		b.WriteString("\n== bypassed ==\n")
		for _, bp := range res.Aim.Bypass.Bypassed {
			fmt.Fprintf(&b, "  plan[%d] S%d: %s\n", bp.Index, bp.Surface.ID, bp.Reason)
		}
	}

	writePath := func(title string, p PathResult) {
		fmt.Fprintf(&b, "\n== %s path (%s) ==\n", title, p.Terminal)
		for i, w := range p.Waypoints {
			h := p.Hits[i]
			if h.SurfaceID == NoSurface {
				fmt.Fprintf(&b, "  %2d (%.2f,%.2f)\n", i, w.X, w.Y)
				continue
			}
			seg := "on-segment"
			if !h.OnSegment {
				seg = "OFF-SEGMENT"
			}
			act := "blocked"
			if h.Reflected {
				act = "reflected"
			}
			fmt.Fprintf(&b, "  %2d (%.2f,%.2f) S%d s=%.3f %s %s\n",
				i, w.X, w.Y, h.SurfaceID, h.SegmentPos, seg, act)
		}
		if len(p.Projection) > 0 {
			fmt.Fprintf(&b, "  projection: %d points\n", len(p.Projection))
		}
	}
	writePath("planned", res.Aim.PlannedPath)
	writePath("actual", res.Aim.ActualPath)

	b.WriteString("\n== divergence ==\n")
	if res.Aim.Divergence.Aligned {
		b.WriteString("  aligned\n")
	} else {
		fmt.Fprintf(&b, "  diverged after waypoint %d at (%.2f,%.2f)\n",
			res.Aim.Divergence.Index, res.Aim.Divergence.LastShared.X, res.Aim.Divergence.LastShared.Y)
	}

	b.WriteString("\n== visibility ==\n")
	for k, st := range res.Visibility.Steps {
		planned := ""
		if st.HasPlanned {
			planned = fmt.Sprintf(" planned=%dv", len(st.Planned.Vertices))
		}
		fmt.Fprintf(&b, "  K=%d origin=(%.2f,%.2f) valid=%dv%s\n",
			k, st.Origin.X, st.Origin.Y, len(st.Valid.Vertices), planned)
	}
	if res.Visibility.Complete {
		fmt.Fprintf(&b, "  lit polygon: %d vertices, area %.0f\n",
			len(res.Visibility.Lit.Vertices), res.Visibility.Lit.Area())
	} else {
		fmt.Fprintf(&b, "  INVALID at planned surface %d\n", res.Visibility.BypassAtSurface)
	}

	fmt.Fprintf(&b, "\nverdict: lit=%v aligned=%v reachable=%v\n",
		res.CursorLit, res.Aim.Aligned, res.Aim.CursorReachable)
	return b.String()
}

// CopyDebugReport puts the report on the system clipboard.
func CopyDebugReport(in EvalInput, res EvalResult) error {
	return clipboard.WriteAll(BuildDebugReport(in, res))
}
