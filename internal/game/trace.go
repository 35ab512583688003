package game

import "fmt"

// TraceEntry is one recorded event during an evaluation.
type TraceEntry struct {
	Step     int     // propagation depth or path leg the event belongs to
	Category string  // chain, bypass, path, trace, vis, outline
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[K=02] vis      crop             14 -> 9 vertices
func (e TraceEntry) String() string {
	return fmt.Sprintf("[K=%02d] %-8s %-16s %s", e.Step, e.Category, e.Key, e.Value)
}

// TraceLog is an optional structured sink threaded explicitly through an
// evaluation. There is no global logger: a nil *TraceLog disables tracing
// entirely, and every method is nil-safe so call sites stay unconditional.
type TraceLog struct {
	entries []TraceEntry
	verbose bool
}

// NewTraceLog creates a trace log. If verbose is true, per-ray and per-vertex
// entries are also recorded (useful for detailed debugging).
func NewTraceLog(verbose bool) *TraceLog {
	return &TraceLog{verbose: verbose}
}

// Add records a new entry.
func (tl *TraceLog) Add(step int, category, key, value string, numVal float64) {
	if tl == nil {
		return
	}
	tl.entries = append(tl.entries, TraceEntry{
		Step:     step,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (tl *TraceLog) AddVerbose(step int, category, key, value string, numVal float64) {
	if tl == nil || !tl.verbose {
		return
	}
	tl.Add(step, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (tl *TraceLog) Entries() []TraceEntry {
	if tl == nil {
		return nil
	}
	return tl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (tl *TraceLog) Filter(category, key string) []TraceEntry {
	if tl == nil {
		return nil
	}
	var out []TraceEntry
	for _, e := range tl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}
