package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 300
	logMaxEntries = 48
	logLineHeight = 12
)

// EventEntry is a single line in the on-screen event log.
type EventEntry struct {
	Frame   int
	Message string
}

// EventLog is a ring buffer of plan/bypass/divergence events rendered in the
// demo's side panel. Unlike TraceLog it is bounded and UI-facing.
type EventLog struct {
	entries []EventEntry
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{entries: make([]EventEntry, logMaxEntries)}
}

// Add appends an entry to the log.
func (el *EventLog) Add(frame int, format string, args ...any) {
	el.entries[el.head] = EventEntry{Frame: frame, Message: fmt.Sprintf(format, args...)}
	el.head = (el.head + 1) % logMaxEntries
	if el.count < logMaxEntries {
		el.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []EventEntry {
	result := make([]EventEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + logMaxEntries) % logMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Draw renders the event log panel on the right side of the screen.
func (el *EventLog) Draw(screen *ebiten.Image, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 10, G: 10, B: 14, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 60, B: 80, A: 255}, false)

	y := 6
	for _, e := range el.Recent() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[%05d] %s", e.Frame, e.Message), panelX+6, y)
		y += logLineHeight
		if y > panelH-logLineHeight {
			break
		}
	}
}
