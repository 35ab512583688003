package game

// traceOutcome is the internal result of a forward physics run. points and
// hits cover only the waypoints the run generated (not its starting point).
type traceOutcome struct {
	points    []Point
	hits      []HitInfo
	terminal  PathTerminal
	reached   bool
	ray       Ray     // ray carrying the final leg, in world space
	t         float64 // parameter of the final point along ray
	excludeID int     // surface excluded from the next cast
}

// traceForward runs the forward physics loop: cast the ray, stop at the
// cursor if it lies on the current leg, otherwise reflect off reflective
// hits and stop at blocking ones, bounded by maxReflections and
// maxTravelDistance.
//
// Reflection continues the *whole ray* — source and target mirrored through
// the struck surface, parametric start moved to the hit. Beyond the hit
// parameter the reflected ray traces exactly the physical bounce in world
// space, and when the struck surface is the planned one the continued ray is
// bit-identical (via the reflection memo) to the image chain's next leg ray.
// That identity is what lets the divergence detector compare waypoints by
// exact equality.
func traceForward(r Ray, cursor Point, hasCursor bool, surfaces []Surface, excludeID int, memo *ReflectMemo) traceOutcome {
	out := traceOutcome{excludeID: excludeID}
	bounces := 0

	for {
		d := r.Dir()
		if d.LenSq() == 0 {
			out.terminal = TerminalMaxDistance
			out.ray, out.t = r, r.StartRatio
			return out
		}

		// Nearest on-segment intersection across all surfaces but the one
		// just struck.
		bestT := 0.0
		bestS := 0.0
		bestIdx := -1
		for i, s := range surfaces {
			if s.ID == excludeID {
				continue
			}
			hit, ok := IntersectRaySegment(r, s.Seg)
			if !ok {
				continue
			}
			if hit.S < -onSegmentTolerance || hit.S > 1+onSegmentTolerance {
				continue
			}
			if bestIdx < 0 || hit.T < bestT {
				bestT, bestS, bestIdx = hit.T, hit.S, i
			}
		}

		// Cursor-on-leg check: exact collinearity, then nearest-first.
		if hasCursor {
			c := cursor.Sub(r.Source)
			if d.Cross(c) == 0 {
				tc := c.Dot(d) / d.LenSq()
				if tc > r.StartRatio && (bestIdx < 0 || tc <= bestT) {
					out.points = append(out.points, cursor)
					out.hits = append(out.hits, noHit)
					out.terminal = TerminalReached
					out.reached = true
					out.ray, out.t = r, tc
					return out
				}
			}
		}

		if bestIdx < 0 {
			// Nothing ahead: extrapolate to the travel cap and stop.
			end := r.StartRatio + maxTravelDistance/d.Len()
			out.points = append(out.points, r.At(end))
			out.hits = append(out.hits, noHit)
			out.terminal = TerminalMaxDistance
			out.ray, out.t = r, end
			return out
		}

		struck := surfaces[bestIdx]
		out.points = append(out.points, r.At(bestT))
		out.hits = append(out.hits, HitInfo{
			SurfaceID:  struck.ID,
			SegmentPos: bestS,
			OnSegment:  true,
			Reflected:  struck.Reflective,
		})

		if !struck.Reflective {
			out.terminal = TerminalBlocked
			out.ray, out.t = r, bestT
			return out
		}

		bounces++
		if bounces >= maxReflections {
			out.terminal = TerminalMaxBounces
			out.ray, out.t = r, bestT
			return out
		}

		r = memo.ReflectRay(r, struck)
		r.StartRatio = bestT
		excludeID = struck.ID
		out.excludeID = excludeID
	}
}

// TraceActualPath physically simulates the projectile from the launch ray's
// source against every scene surface. The launch ray must be the image
// chain's launch ray so the actual path shares its first waypoint and first
// direction with the planned path. If the cursor is reached, the flight is
// continued past it to give the renderer a forward projection.
func TraceActualPath(launch Ray, cursor Point, surfaces []Surface, memo *ReflectMemo) PathResult {
	res := PathResult{
		Waypoints: []Point{launch.Source},
		Hits:      []HitInfo{noHit},
	}

	out := traceForward(launch, cursor, true, surfaces, NoSurface, memo)
	res.Waypoints = append(res.Waypoints, out.points...)
	res.Hits = append(res.Hits, out.hits...)
	res.ReachedCursor = out.reached
	res.Terminal = out.terminal

	if out.reached {
		cont := out.ray
		cont.StartRatio = out.t
		proj := traceForward(cont, Point{}, false, surfaces, out.excludeID, memo)
		res.Projection = proj.points
	}
	return res
}
