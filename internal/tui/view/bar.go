package view

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/nightshift/internal/clock"
	"github.com/javiermolinar/nightshift/internal/slider"
)

// Rows of the bar block, relative to its first line.
const (
	LabelRow = iota
	KnobRow
	TrackRow
	TickRow
	BarHeight
)

// KnobMark is a knob as it should be drawn.
type KnobMark struct {
	Ratio  float64
	Label  string
	Active bool
}

// Tick is an hour marker under the track.
type Tick struct {
	Ratio float64
	Label string
}

// BarStyles holds the styles used to draw the bar.
type BarStyles struct {
	Track      lipgloss.Style
	Range      lipgloss.Style
	RangeDim   lipgloss.Style
	Knob       lipgloss.Style
	KnobActive lipgloss.Style
	Label      lipgloss.Style
	LabelOn    lipgloss.Style
	Tick       lipgloss.Style
}

// BarState is everything needed to draw the slider bar.
type BarState struct {
	Width    int
	RTL      bool
	Dim      bool
	Segments []slider.Segment
	Knobs    [2]KnobMark
	Ticks    []Tick
	Styles   BarStyles
}

// Column maps a layout ratio onto a cell of a bar width cells wide.
func Column(ratio float64, width int, rtl bool) int {
	if width <= 0 {
		return 0
	}
	col := int(math.Round(ratio * float64(width-1)))
	col = max(0, min(width-1, col))
	if rtl {
		return width - 1 - col
	}
	return col
}

// CellRatio returns the layout ratio at the middle of cell col.
func CellRatio(col, width int, rtl bool) float64 {
	if rtl {
		col = width - 1 - col
	}
	return (float64(col) + 0.5) / float64(width)
}

// InSegments reports whether ratio falls inside any of the segments.
func InSegments(ratio float64, segments []slider.Segment) bool {
	for _, seg := range segments {
		if ratio >= seg.From && ratio < seg.To {
			return true
		}
	}
	return false
}

// CellInRange reports whether cell col of the track is highlighted. An empty
// segment on an edge marks a knob held there, and its cell is lit so the range
// stays attached to the knob.
func CellInRange(col, width int, rtl bool, segments []slider.Segment) bool {
	if InSegments(CellRatio(col, width, rtl), segments) {
		return true
	}
	for _, seg := range segments {
		if seg.From == seg.To && Column(seg.From, width, rtl) == col {
			return true
		}
	}
	return false
}

// HourTicks returns a tick every `every` hours from 18:00 round to the next 18:00.
func HourTicks(every int, use24h bool) []Tick {
	if every <= 0 {
		every = 3
	}
	var ticks []Tick
	for h := 0; h <= 24; h += every {
		t := clock.Evening.Add(h * 60)
		ratio := float64(h) / 24
		ticks = append(ticks, Tick{Ratio: ratio, Label: hourLabel(t, use24h)})
	}
	return ticks
}

func hourLabel(t clock.TimeOfDay, use24h bool) string {
	if use24h {
		return t.String()[:2]
	}
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	suffix := "a"
	if t.Hour() >= 12 {
		suffix = "p"
	}
	return strconv.Itoa(h) + suffix
}

// RenderBar draws the label, knob, track and tick rows.
func RenderBar(state BarState) string {
	if state.Width <= 0 {
		return strings.Repeat("\n", BarHeight-1)
	}
	rows := []string{
		renderLabels(state),
		renderKnobs(state),
		renderTrack(state),
		renderTicks(state),
	}
	return strings.Join(rows, "\n")
}

func renderTrack(state BarState) string {
	rangeStyle := state.Styles.Range
	if state.Dim {
		rangeStyle = state.Styles.RangeDim
	}

	var b strings.Builder
	runStart := 0
	runIn := CellInRange(0, state.Width, state.RTL, state.Segments)
	flush := func(end int) {
		n := end - runStart
		if n <= 0 {
			return
		}
		if runIn {
			b.WriteString(rangeStyle.Render(strings.Repeat("━", n)))
		} else {
			b.WriteString(state.Styles.Track.Render(strings.Repeat("─", n)))
		}
	}
	for col := 1; col < state.Width; col++ {
		in := CellInRange(col, state.Width, state.RTL, state.Segments)
		if in != runIn {
			flush(col)
			runStart = col
			runIn = in
		}
	}
	flush(state.Width)
	return b.String()
}

func renderKnobs(state BarState) string {
	marks := make([]placed, 0, len(state.Knobs))
	for _, k := range state.Knobs {
		style := state.Styles.Knob
		if k.Active {
			style = state.Styles.KnobActive
		}
		marks = append(marks, placed{
			col:   Column(k.Ratio, state.Width, state.RTL),
			text:  "▼",
			style: style,
		})
	}
	return place(marks, state.Width, false)
}

func renderLabels(state BarState) string {
	marks := make([]placed, 0, len(state.Knobs))
	for _, k := range state.Knobs {
		style := state.Styles.Label
		if k.Active {
			style = state.Styles.LabelOn
		}
		col := Column(k.Ratio, state.Width, state.RTL) - lipgloss.Width(k.Label)/2
		marks = append(marks, placed{col: col, text: k.Label, style: style})
	}
	return place(marks, state.Width, true)
}

func renderTicks(state BarState) string {
	marks := make([]placed, 0, len(state.Ticks))
	for _, t := range state.Ticks {
		col := Column(t.Ratio, state.Width, state.RTL) - lipgloss.Width(t.Label)/2
		marks = append(marks, placed{col: col, text: t.Label, style: state.Styles.Tick})
	}
	return place(marks, state.Width, false)
}

type placed struct {
	col   int
	text  string
	style lipgloss.Style
}

// place lays marks out left to right on a row of the given width.
// Colliding marks are pushed right when shift is set and dropped otherwise.
func place(marks []placed, width int, shift bool) string {
	sort.SliceStable(marks, func(i, j int) bool { return marks[i].col < marks[j].col })

	var b strings.Builder
	cursor := 0
	for _, m := range marks {
		w := lipgloss.Width(m.text)
		col := max(0, min(width-w, m.col))
		if col < cursor {
			if !shift {
				continue
			}
			col = cursor
		}
		if col+w > width {
			continue
		}
		b.WriteString(strings.Repeat(" ", col-cursor))
		b.WriteString(m.style.Render(m.text))
		cursor = col + w + 1
		if cursor <= width {
			b.WriteString(" ")
		} else {
			cursor = width
		}
	}
	if cursor < width {
		b.WriteString(strings.Repeat(" ", width-cursor))
	}
	return b.String()
}
