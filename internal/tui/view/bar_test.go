package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/nightshift/internal/clock"
	"github.com/javiermolinar/nightshift/internal/slider"
)

func TestColumn(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		width int
		rtl   bool
		want  int
	}{
		{name: "left edge", ratio: 0, width: 10, want: 0},
		{name: "right edge", ratio: 1, width: 10, want: 9},
		{name: "middle", ratio: 0.5, width: 11, want: 5},
		{name: "rtl left edge", ratio: 0, width: 10, rtl: true, want: 9},
		{name: "rtl right edge", ratio: 1, width: 10, rtl: true, want: 0},
		{name: "clamped", ratio: 1.5, width: 10, want: 9},
		{name: "zero width", ratio: 0.5, width: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Column(tt.ratio, tt.width, tt.rtl); got != tt.want {
				t.Errorf("Column(%v, %d, %v) = %d, want %d", tt.ratio, tt.width, tt.rtl, got, tt.want)
			}
		})
	}
}

func TestCellRatio_Mirrors(t *testing.T) {
	const width = 48
	for col := 0; col < width; col++ {
		ltr := CellRatio(col, width, false)
		rtl := CellRatio(width-1-col, width, true)
		if ltr != rtl {
			t.Fatalf("col %d: ltr %v != mirrored rtl %v", col, ltr, rtl)
		}
	}
}

func TestInSegments(t *testing.T) {
	wrapped := slider.New(clock.MustParse("17:00"), clock.MustParse("19:00")).Segments()
	tests := []struct {
		ratio float64
		want  bool
	}{
		{0, true},
		{0.04, true},
		{0.5, false},
		{0.97, true},
		{0.9, false},
	}
	for _, tt := range tests {
		if got := InSegments(tt.ratio, wrapped); got != tt.want {
			t.Errorf("InSegments(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestHourTicks(t *testing.T) {
	ticks := HourTicks(6, true)
	var labels []string
	for _, tick := range ticks {
		labels = append(labels, tick.Label)
	}
	if got, want := strings.Join(labels, " "), "18 00 06 12 18"; got != want {
		t.Errorf("labels = %q, want %q", got, want)
	}
	if ticks[0].Ratio != 0 || ticks[len(ticks)-1].Ratio != 1 {
		t.Errorf("ticks should span the whole bar, got %v..%v", ticks[0].Ratio, ticks[len(ticks)-1].Ratio)
	}

	ticks = HourTicks(6, false)
	labels = labels[:0]
	for _, tick := range ticks {
		labels = append(labels, tick.Label)
	}
	if got, want := strings.Join(labels, " "), "6p 12a 6a 12p 6p"; got != want {
		t.Errorf("12h labels = %q, want %q", got, want)
	}
}

func TestRenderBar(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	sl := slider.New(clock.Evening, clock.MustParse("06:00"))
	state := BarState{
		Width:    49,
		Segments: sl.Segments(),
		Knobs: [2]KnobMark{
			{Ratio: sl.PeekRatio(slider.Start), Label: "18:00", Active: true},
			{Ratio: sl.PeekRatio(slider.End), Label: "06:00"},
		},
		Ticks: HourTicks(6, true),
	}

	lines := strings.Split(RenderBar(state), "\n")
	if len(lines) != BarHeight {
		t.Fatalf("got %d rows, want %d", len(lines), BarHeight)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != state.Width {
			t.Errorf("row %d width = %d, want %d: %q", i, w, state.Width, line)
		}
	}

	knobs := []rune(lines[KnobRow])
	if knobs[0] != '▼' || knobs[24] != '▼' {
		t.Errorf("knob row = %q, want knobs at 0 and 24", lines[KnobRow])
	}

	track := []rune(lines[TrackRow])
	if track[0] != '━' || track[23] != '━' {
		t.Errorf("first half should be highlighted: %q", lines[TrackRow])
	}
	if track[25] != '─' || track[48] != '─' {
		t.Errorf("second half should be plain: %q", lines[TrackRow])
	}

	if !strings.HasPrefix(lines[LabelRow], "18:00") {
		t.Errorf("label row = %q, want start label on the left", lines[LabelRow])
	}
	if !strings.Contains(lines[LabelRow], "06:00") {
		t.Errorf("label row = %q, want end label", lines[LabelRow])
	}
}

func TestRenderBar_RTLMirrorsTrack(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	sl := slider.New(clock.MustParse("20:00"), clock.MustParse("02:00"))
	base := BarState{Width: 40, Segments: sl.Segments()}

	ltr := []rune(strings.Split(RenderBar(base), "\n")[TrackRow])
	base.RTL = true
	rtl := []rune(strings.Split(RenderBar(base), "\n")[TrackRow])

	for i := range ltr {
		if ltr[i] != rtl[len(rtl)-1-i] {
			t.Fatalf("track is not mirrored at %d: %q vs %q", i, string(ltr), string(rtl))
		}
	}
}

func TestRenderBar_RangeMeetsKnobOnEdge(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	sl := slider.New(clock.MustParse("17:30"), clock.MustParse("06:00"))
	sl.KnobRatio(slider.Start)
	sl.UpdateTime(slider.Start, int(clock.Evening), true)

	const width = 49
	for _, rtl := range []bool{false, true} {
		state := BarState{
			Width:    width,
			RTL:      rtl,
			Segments: sl.Segments(),
			Knobs: [2]KnobMark{
				{Ratio: sl.KnobRatio(slider.Start), Label: "18:00"},
				{Ratio: sl.KnobRatio(slider.End), Label: "06:00"},
			},
		}
		lines := strings.Split(RenderBar(state), "\n")

		knobCol := Column(1, width, rtl)
		if knobs := []rune(lines[KnobRow]); knobs[knobCol] != '▼' {
			t.Fatalf("rtl=%v: knob row = %q, want start knob at %d", rtl, lines[KnobRow], knobCol)
		}
		track := []rune(lines[TrackRow])
		if track[knobCol] != '━' {
			t.Errorf("rtl=%v: track under the edge knob should be lit: %q", rtl, lines[TrackRow])
		}
		if track[Column(0.25, width, rtl)] != '━' {
			t.Errorf("rtl=%v: range after the wrap should be lit: %q", rtl, lines[TrackRow])
		}
		if track[Column(0.75, width, rtl)] != '─' {
			t.Errorf("rtl=%v: outside the range should be plain: %q", rtl, lines[TrackRow])
		}
	}
}

func TestCellInRange(t *testing.T) {
	segments := []slider.Segment{{From: 0.75, To: 1}, {From: 0, To: 0}}
	if !CellInRange(0, 40, false, segments) {
		t.Error("cell under an empty edge segment should be lit")
	}
	if !CellInRange(39, 40, true, segments) {
		t.Error("mirrored edge cell should be lit under rtl")
	}
	if CellInRange(1, 40, false, segments) {
		t.Error("cell next to the edge should not be lit")
	}
	if !CellInRange(35, 40, false, segments) {
		t.Error("cell inside the range should be lit")
	}
}

func TestPlace_ShiftsCollidingLabels(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	marks := []placed{{col: 2, text: "AAAA"}, {col: 3, text: "BB"}}
	got := place(marks, 12, true)
	if got != "  AAAA BB   " {
		t.Errorf("place() = %q", got)
	}

	marks = []placed{{col: 2, text: "AAAA"}, {col: 3, text: "BB"}}
	got = place(marks, 12, false)
	if got != "  AAAA      " {
		t.Errorf("place() without shift = %q", got)
	}
}

func TestRender_EmptyUntilSized(t *testing.T) {
	if got := Render(ViewState{}); got != "Loading..." {
		t.Errorf("Render() = %q, want Loading...", got)
	}
	if got := Render(ViewState{EmptyPlaceholder: "wait"}); got != "wait" {
		t.Errorf("Render() = %q, want placeholder", got)
	}
}

func TestRender_StacksSections(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := Render(ViewState{
		Width:   30,
		Height:  12,
		MarginX: 2,
		Header:  "title",
		Bar:     "a\nb\nc\nd",
		Summary: "summary",
		Status:  "status",
		Help:    "help",
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 12", len(lines))
	}
	if strings.TrimSpace(lines[0]) != "title" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if strings.TrimSpace(lines[2]) != "a" {
		t.Errorf("bar should start on line 2, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[2], "  a") {
		t.Errorf("margin not applied: %q", lines[2])
	}
}
