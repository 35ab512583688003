package game

const (
	// maxReflections is the shared bounce cap for the forward tracer and the
	// past-cursor projection. Both describe the same physical process, so
	// they share one limit.
	maxReflections = 10

	// maxTravelDistance is how far an unobstructed leg is extrapolated
	// before the tracer gives up, in pixels.
	maxTravelDistance = 10000.0

	// onSegmentTolerance is the parametric slack applied when deciding
	// whether a hit at segment parameter s counts as on-segment. Applied
	// once, at the decision site; the intersection solves themselves are
	// exact.
	onSegmentTolerance = 1e-9

	// dedupPixelTolerance is the distance under which two adjacent outline
	// vertices are considered the same point. When one of the pair is an
	// exact segment endpoint and the other a computed intersection, the
	// endpoint coordinate wins.
	dedupPixelTolerance = 0.5

	// grazingOffset is the angular nudge, in radians, applied on either
	// side of a critical-point ray to catch shadow edges.
	grazingOffset = 0.0001

	// footprintTolerance is the maximum distance, in pixels, at which a
	// cropped-polygon vertex counts as lying on the window surface when the
	// illuminated sub-span of the window is measured. Clip and outline
	// vertices land on the surface up to rounding, far below this.
	footprintTolerance = 1e-6
)
