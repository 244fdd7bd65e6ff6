package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/nightshift/internal/clock"
	"github.com/javiermolinar/nightshift/internal/config"
	"github.com/javiermolinar/nightshift/internal/schedule"
	"github.com/javiermolinar/nightshift/internal/slider"
	"github.com/javiermolinar/nightshift/internal/tui/commands"
	"github.com/javiermolinar/nightshift/internal/tui/view"
)

type fakeRepo struct {
	current *schedule.Schedule
	changes []schedule.Source
}

func (f *fakeRepo) Get(ctx context.Context) (*schedule.Schedule, error) {
	if f.current == nil {
		return nil, schedule.ErrNotFound
	}
	return f.current, nil
}

func (f *fakeRepo) Save(ctx context.Context, s *schedule.Schedule, source schedule.Source) error {
	f.current = s
	f.changes = append(f.changes, source)
	return nil
}

func (f *fakeRepo) History(ctx context.Context, limit int) ([]*schedule.Change, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) Close() error {
	return nil
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newLoadedModel returns a model that has already received its schedule and window size.
func newLoadedModel(t *testing.T, repo *fakeRepo, opts ...ModelOption) Model {
	t.Helper()
	opts = append([]ModelOption{WithNow(func() time.Time { return fixedNow })}, opts...)
	m := *New(repo, config.Default(), opts...)

	msg := m.Init()()
	m = update(t, m, msg)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 20})
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return model
}

func press(t *testing.T, m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(k)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func assertTimes(t *testing.T, m Model, start, end string) {
	t.Helper()
	if got := m.slider.Start(); got != clock.MustParse(start) {
		t.Errorf("start = %s, want %s", got, start)
	}
	if got := m.slider.End(); got != clock.MustParse(end) {
		t.Errorf("end = %s, want %s", got, end)
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew_UsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Schedule.Start = "21:00"
	cfg.Schedule.End = "05:30"
	cfg.Slider.RTL = true
	cfg.Slider.Use24Hour = false

	m := New(nil, cfg)
	assertTimes(t, *m, "21:00", "05:30")
	if !m.rtl || m.use24h {
		t.Errorf("rtl = %v, use24h = %v, want true/false", m.rtl, m.use24h)
	}
	if k, ok := m.slider.Active(); !ok || k != slider.Start {
		t.Errorf("active = %v/%v, want start", k, ok)
	}
	if m.Init() != nil {
		t.Error("Init without repo should not load")
	}
}

func TestLoad_FallbackAndStored(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{})
	assertTimes(t, m, "18:00", "06:00")
	if m.loading {
		t.Error("loading should be cleared")
	}

	stored := &schedule.Schedule{Start: clock.MustParse("23:00"), End: clock.MustParse("07:15")}
	m = newLoadedModel(t, &fakeRepo{current: stored})
	assertTimes(t, m, "23:00", "07:15")
	if m.Dirty() {
		t.Error("freshly loaded model should not be dirty")
	}
}

func TestKeys_StepAndSwitch(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assertTimes(t, m, "18:05", "06:00")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	assertTimes(t, m, "17:05", "06:00")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assertTimes(t, m, "17:05", "05:55")

	if !m.Dirty() {
		t.Error("model should be dirty after edits")
	}
}

func TestKeys_RTLFlipsArrows(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{})

	m, _ = press(t, m, runes("r"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assertTimes(t, m, "17:55", "06:00")
}

func TestKeys_StepJumpsOverOtherKnob(t *testing.T) {
	stored := &schedule.Schedule{Start: clock.MustParse("08:00"), End: clock.MustParse("07:00")}
	m := newLoadedModel(t, &fakeRepo{current: stored})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assertTimes(t, m, "06:00", "07:00")
}

func TestKeys_QuitNeedsConfirmationWhenDirty(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{})

	_, cmd := press(t, m, runes("q"))
	if !isQuit(cmd) {
		t.Fatal("clean model should quit on q")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd = press(t, m, runes("q"))
	if isQuit(cmd) {
		t.Fatal("dirty model should ask before quitting")
	}
	if !strings.Contains(m.statusMsg, "Unsaved") {
		t.Errorf("status = %q, want unsaved warning", m.statusMsg)
	}
	_, cmd = press(t, m, runes("q"))
	if !isQuit(cmd) {
		t.Fatal("second q should quit")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if _, cmd = press(t, m, runes("q")); isQuit(cmd) {
		t.Fatal("another key should disarm the quit confirmation")
	}
}

func TestKeys_CtrlCAlsoConfirmsWhenDirty(t *testing.T) {
	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}
	m := newLoadedModel(t, &fakeRepo{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := press(t, m, ctrlC)
	if isQuit(cmd) {
		t.Fatal("ctrl+c on a dirty model should ask before quitting")
	}
	if !m.quitArmed {
		t.Error("expected quit confirmation to be armed")
	}
	if _, cmd = press(t, m, ctrlC); !isQuit(cmd) {
		t.Fatal("second ctrl+c should quit")
	}

	m, _ = press(t, m, runes(":"))
	m, cmd = press(t, m, ctrlC)
	if isQuit(cmd) || m.prompting {
		t.Error("ctrl+c in the prompt should close it without quitting")
	}
}

func TestKeys_Save(t *testing.T) {
	repo := &fakeRepo{}
	m := newLoadedModel(t, repo)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := press(t, m, runes("s"))
	if cmd == nil {
		t.Fatal("expected save command")
	}
	msg := cmd()
	saved, ok := msg.(commands.ScheduleSavedMsg)
	if !ok {
		t.Fatalf("expected ScheduleSavedMsg, got %T", msg)
	}
	if saved.Schedule.String() != "18:05-06:00" || !saved.Schedule.UpdatedAt.Equal(fixedNow) {
		t.Errorf("saved = %s at %v", saved.Schedule, saved.Schedule.UpdatedAt)
	}
	if len(repo.changes) != 1 || repo.changes[0] != schedule.SourceTUI {
		t.Errorf("changes = %v, want one tui change", repo.changes)
	}

	m = update(t, m, msg)
	if m.Dirty() {
		t.Error("model should be clean after save")
	}

	_, cmd = press(t, m, runes("s"))
	if got, ok := cmd().(commands.StatusMsgCmd); !ok || got.Msg != "Nothing to save" {
		t.Errorf("second save = %#v, want nothing to save", got)
	}
}

func TestKeys_Copy(t *testing.T) {
	var copied string
	m := newLoadedModel(t, &fakeRepo{}, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))

	press(t, m, runes("y"))
	if copied != "18:00-06:00" {
		t.Errorf("copied %q, want 18:00-06:00", copied)
	}

	m = newLoadedModel(t, &fakeRepo{}, WithClipboard(func(string) error { return errors.New("no clipboard") }))
	m, _ = press(t, m, runes("y"))
	if !strings.Contains(m.statusMsg, "Copy failed") {
		t.Errorf("status = %q, want copy failure", m.statusMsg)
	}
}

func TestPrompt_TypedTime(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{})

	m, _ = press(t, m, runes(":"))
	if !m.prompting {
		t.Fatal("expected prompt to open")
	}
	m, _ = press(t, m, runes("22:30"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.prompting {
		t.Error("prompt should close on enter")
	}
	assertTimes(t, m, "22:30", "06:00")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, runes(":"))
	m, _ = press(t, m, runes("+1h"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assertTimes(t, m, "22:30", "07:00")

	m, _ = press(t, m, runes(":"))
	m, _ = press(t, m, runes("nope"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.HasPrefix(m.statusMsg, "Error:") {
		t.Errorf("status = %q, want error", m.statusMsg)
	}
	assertTimes(t, m, "22:30", "07:00")
}

func TestMouse_DragStartKnob(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{})
	y := barTop + view.TrackRow

	// Bar is 96 cells wide, so 8 cells are 120 minutes.
	m = update(t, m, tea.MouseMsg{X: marginX, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if _, ok := m.slider.Dragging(); !ok {
		t.Fatal("expected drag to start on the start knob")
	}
	m = update(t, m, tea.MouseMsg{X: marginX + 4, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assertTimes(t, m, "19:00", "06:00")
	m = update(t, m, tea.MouseMsg{X: marginX + 8, Y: y + 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assertTimes(t, m, "20:00", "06:00")
	m = update(t, m, tea.MouseMsg{X: marginX + 8, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if _, ok := m.slider.Dragging(); ok {
		t.Error("drag should end on release")
	}
	m = update(t, m, tea.MouseMsg{X: marginX + 40, Y: y, Action: tea.MouseActionMotion})
	assertTimes(t, m, "20:00", "06:00")
}

func TestMouse_DragEndKnobSticks(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{})
	y := barTop + view.KnobRow
	endX := marginX + view.Column(m.slider.PeekRatio(slider.End), m.barWidth(), false)

	m = update(t, m, tea.MouseMsg{X: endX, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	ds, ok := m.slider.Dragging()
	if !ok || ds.Knob != slider.End {
		t.Fatalf("expected end drag, got %+v", ds)
	}
	// Just past start: end sticks an hour after it.
	m = update(t, m, tea.MouseMsg{X: endX - 47, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assertTimes(t, m, "18:00", "19:00")
}

func TestMouse_PressAwayFromKnobs(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{})

	m = update(t, m, tea.MouseMsg{X: marginX + 20, Y: barTop + view.TrackRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if _, ok := m.slider.Dragging(); ok {
		t.Error("press away from knobs should not drag")
	}
	m = update(t, m, tea.MouseMsg{X: marginX, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if _, ok := m.slider.Dragging(); ok {
		t.Error("press outside the bar rows should not drag")
	}
}

func TestBlurEndsDrag(t *testing.T) {
	m := newLoadedModel(t, &fakeRepo{})

	m = update(t, m, tea.MouseMsg{X: marginX, Y: barTop + view.TrackRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.BlurMsg{})
	if _, ok := m.slider.Dragging(); ok {
		t.Error("blur should end the drag")
	}
	if k, ok := m.slider.Active(); !ok || k != slider.Start {
		t.Errorf("active = %v/%v, want start kept", k, ok)
	}
}

func TestView(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	m := newLoadedModel(t, &fakeRepo{})
	out := m.View()

	for _, want := range []string{"nightshift", "18:00", "06:00", "12h 00m"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = press(t, m, runes("t"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	out = m.View()
	for _, want := range []string{"6:05 PM", "unsaved"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_BeforeResize(t *testing.T) {
	m := *New(nil, config.Default())
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() = %q, want Loading...", got)
	}
}
