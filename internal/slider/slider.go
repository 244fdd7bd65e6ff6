// Package slider implements a two-knob time range control on a circular 24-hour timeline.
//
// The bar starts at 18:00 and wraps back to 18:00 of the next day. Knobs keep at
// least MinKnobsDistance minutes apart in either direction around the ring. Pointer
// drags and keyboard steps resolve collisions differently: a dragged knob sticks on
// the side it approached from, while a keyboard step that would collide jumps over
// the other knob.
package slider

import (
	"math"

	"github.com/javiermolinar/nightshift/internal/clock"
)

// MinKnobsDistance is the smallest allowed circular gap between the knobs, in minutes.
const MinKnobsDistance = 60

// Knob identifies one of the two handles.
type Knob int

const (
	Start Knob = iota
	End
)

// Other returns the opposite knob.
func (k Knob) Other() Knob {
	if k == Start {
		return End
	}
	return Start
}

func (k Knob) String() string {
	if k == Start {
		return "start"
	}
	return "end"
}

// DragSession is the state of an in-flight pointer drag.
// Values during the drag are computed from StartValue, never from the previous frame.
type DragSession struct {
	Knob       Knob
	StartValue clock.TimeOfDay
}

// Segment is a highlighted span of the bar, in layout ratios.
type Segment struct {
	From float64
	To   float64
}

// Slider owns the start and end times and the transient interaction state.
// It is not safe for concurrent use; it is meant to live inside a single UI model.
type Slider struct {
	values    [2]clock.TimeOfDay
	prevRatio [2]float64
	active    Knob
	hasActive bool
	drag      *DragSession
}

// New creates a slider. A pair closer than MinKnobsDistance is repaired by
// moving end to the nearest valid side of start, the side it already sits on.
func New(start, end clock.TimeOfDay) *Slider {
	start = clock.Normalize(int(start))
	end = Resolve(start, int(end), true)
	s := &Slider{values: [2]clock.TimeOfDay{start, end}}
	s.prevRatio[Start] = LayoutRatio(start)
	s.prevRatio[End] = LayoutRatio(end)
	// An end knob on 18:00 closes the range, so it starts out on the right edge.
	if s.prevRatio[End] == 0 {
		s.prevRatio[End] = 1
	}
	return s
}

// Start returns the start time.
func (s *Slider) Start() clock.TimeOfDay { return s.values[Start] }

// End returns the end time.
func (s *Slider) End() clock.TimeOfDay { return s.values[End] }

// Value returns the time bound to k.
func (s *Slider) Value(k Knob) clock.TimeOfDay { return s.values[k] }

// Duration returns the length of the range going forward from start to end.
func (s *Slider) Duration() int {
	return clock.Forward(s.values[Start], s.values[End])
}

// Active returns the knob that is focused or being dragged.
func (s *Slider) Active() (Knob, bool) {
	return s.active, s.hasActive
}

// Focus makes k the active knob.
func (s *Slider) Focus(k Knob) {
	s.active = k
	s.hasActive = true
}

// Blur clears the active knob and closes any drag.
func (s *Slider) Blur() {
	s.hasActive = false
	s.drag = nil
}

// Dragging returns the open drag session, if any.
func (s *Slider) Dragging() (*DragSession, bool) {
	return s.drag, s.drag != nil
}

// LayoutRatio maps t onto [0, 1) along the bar, with 18:00 at 0.
func LayoutRatio(t clock.TimeOfDay) float64 {
	return float64(clock.Forward(clock.Evening, t)) / clock.MinutesPerDay
}

// KnobRatio returns the rendered position of k and remembers it.
// A knob sitting exactly on 18:00 is placed on the right edge if it was last
// drawn in the right half, so dragging onto the boundary does not make it jump.
func (s *Slider) KnobRatio(k Knob) float64 {
	r := s.PeekRatio(k)
	s.prevRatio[k] = r
	return r
}

// PeekRatio is KnobRatio without updating the remembered position.
func (s *Slider) PeekRatio(k Knob) float64 {
	r := LayoutRatio(s.values[k])
	if r == 0 && s.prevRatio[k] > 0.5 {
		return 1
	}
	return r
}

// Segments returns the part of the bar covered by the range from start to end.
// Its ends follow the drawn knob positions, so a knob held on an edge by
// PeekRatio keeps the range attached to it. A range crossing the 18:00 edge
// comes back as two segments; one of them is empty when a knob sits on the
// edge the range wraps across.
func (s *Slider) Segments() []Segment {
	from, to := s.PeekRatio(Start), s.PeekRatio(End)
	if from < to {
		return []Segment{{From: from, To: to}}
	}
	return []Segment{{From: from, To: 1}, {From: 0, To: to}}
}

// Resolve returns where a knob proposed at `proposed` may go given the other
// knob at `other`. proposed may be any integer; it is wrapped onto the day.
func Resolve(other clock.TimeOfDay, proposed int, fromGesture bool) clock.TimeOfDay {
	p := clock.Normalize(proposed)

	// p is just before other.
	if clock.Forward(p, other) < MinKnobsDistance {
		if fromGesture {
			return other.Add(-MinKnobsDistance)
		}
		return other.Add(MinKnobsDistance)
	}

	// p is just after other.
	if clock.Forward(other, p) < MinKnobsDistance {
		if fromGesture {
			return other.Add(MinKnobsDistance)
		}
		return other.Add(-MinKnobsDistance)
	}

	return p
}

// UpdateTime moves k towards proposed, resolving collisions with the other knob,
// and returns the value assigned to k.
func (s *Slider) UpdateTime(k Knob, proposed int, fromGesture bool) clock.TimeOfDay {
	v := Resolve(s.values[k.Other()], proposed, fromGesture)
	s.values[k] = v
	return v
}

// BeginDrag opens a drag on k, replacing any drag already in progress.
func (s *Slider) BeginDrag(k Knob) *DragSession {
	s.Focus(k)
	s.drag = &DragSession{Knob: k, StartValue: s.values[k]}
	return s.drag
}

// ContinueDrag moves the dragged knob by the pointer offset since the drag began.
// It reports false, without moving anything, if ds is not the open session or
// the bar has no width.
func (s *Slider) ContinueDrag(ds *DragSession, pixelDelta, barWidth float64, rtl bool) (clock.TimeOfDay, bool) {
	if ds == nil || ds != s.drag {
		return 0, false
	}
	if barWidth <= 0 {
		return s.values[ds.Knob], false
	}
	return s.UpdateTime(ds.Knob, int(ds.StartValue)+DragDelta(pixelDelta, barWidth, rtl), true), true
}

// DragDelta converts a pointer offset into minutes.
func DragDelta(pixelDelta, barWidth float64, rtl bool) int {
	delta := int(math.Floor(clock.MinutesPerDay * pixelDelta / barWidth))
	if rtl {
		return -delta
	}
	return delta
}

// EndDrag closes ds. Ending a stale or nil session is a no-op.
func (s *Slider) EndDrag(ds *DragSession) {
	if ds != nil && ds == s.drag {
		s.drag = nil
	}
}

// StepByKeyboard moves k by delta minutes. A step that would bring the knobs
// too close makes k jump to the far side of the other knob.
func (s *Slider) StepByKeyboard(k Knob, delta int) clock.TimeOfDay {
	s.Focus(k)
	return s.UpdateTime(k, int(s.values[k])+delta, false)
}

// Direction is an arrow-key direction along the bar.
type Direction int

const (
	Left Direction = iota
	Right
)

// KeyDelta converts an arrow direction into signed minutes.
// Under right-to-left layout the bar is mirrored, so left moves time forward.
func KeyDelta(dir Direction, step int, rtl bool) int {
	delta := step
	if dir == Left {
		delta = -step
	}
	if rtl {
		return -delta
	}
	return delta
}
