package game

// Divergence reports whether the planned and actual paths coincide, and if
// not, where they first differ. Comparison is exact equality, not tolerance:
// both paths come out of the same floating-point pipeline up to the point
// they provably diverge, so any difference is a real one.
type Divergence struct {
	Aligned    bool
	Index      int   // index of the last shared waypoint; -1 when aligned
	LastShared Point // the waypoint at Index
}

// CompareAligned walks both waypoint lists in lock-step. The first index
// whose x or y differ marks divergence, reported as the previous shared
// waypoint. If one list is a strict prefix of the other, divergence is at
// the end of the shorter list. Equal lists are aligned.
func CompareAligned(planned, actual []Point) Divergence {
	n := len(planned)
	if len(actual) < n {
		n = len(actual)
	}
	for i := 0; i < n; i++ {
		if planned[i] != actual[i] {
			d := Divergence{Aligned: false, Index: i - 1}
			if i > 0 {
				d.LastShared = planned[i-1]
			}
			return d
		}
	}
	if len(planned) != len(actual) {
		d := Divergence{Aligned: false, Index: n - 1}
		if n > 0 {
			d.LastShared = planned[n-1]
		}
		return d
	}
	return Divergence{Aligned: true, Index: -1}
}
