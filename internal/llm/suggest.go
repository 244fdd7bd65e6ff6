package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/javiermolinar/nightshift/internal/clock"
	"github.com/javiermolinar/nightshift/internal/schedule"
	"github.com/javiermolinar/nightshift/internal/slider"
)

// ErrEmptyRequest is returned when Suggest is called without a request.
var ErrEmptyRequest = errors.New("request cannot be empty")

const suggestPrompt = `You configure a recurring night schedule on a 24-hour clock.
The schedule is a window from "start" to "end"; when end is earlier than start
the window wraps past midnight. Start and end must be at least %d minutes apart.

Current schedule: %s to %s

User request: "%s"

Reply with JSON only, in this exact shape:
{"start": "HH:MM", "end": "HH:MM", "reason": "one short sentence"}

Use 24-hour HH:MM times. If the request does not mention one of the times,
keep the current value for it.`

// Suggestion is a schedule proposed by the model.
type Suggestion struct {
	Start  clock.TimeOfDay
	End    clock.TimeOfDay
	Reason string
}

type suggestResponse struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Reason string `json:"reason"`
}

// BuildSuggestMessages builds the chat messages for a suggestion request.
func BuildSuggestMessages(request string, current *schedule.Schedule) []Message {
	return []Message{{
		Role: "user",
		Content: fmt.Sprintf(suggestPrompt,
			slider.MinKnobsDistance, current.Start, current.End, request),
	}}
}

// Suggest asks the model for a schedule matching request.
// The result is only parsed, not clamped; apply it through a slider to enforce the gap.
func Suggest(ctx context.Context, client Client, request string, current *schedule.Schedule) (*Suggestion, error) {
	request = strings.TrimSpace(request)
	if request == "" {
		return nil, ErrEmptyRequest
	}

	var resp suggestResponse
	if err := client.ChatJSON(ctx, BuildSuggestMessages(request, current), &resp); err != nil {
		return nil, fmt.Errorf("asking for suggestion: %w", err)
	}
	return resp.toSuggestion()
}

func (r suggestResponse) toSuggestion() (*Suggestion, error) {
	start, err := clock.Parse(strings.TrimSpace(r.Start))
	if err != nil {
		return nil, fmt.Errorf("suggested start: %w", err)
	}
	end, err := clock.Parse(strings.TrimSpace(r.End))
	if err != nil {
		return nil, fmt.Errorf("suggested end: %w", err)
	}
	return &Suggestion{Start: start, End: end, Reason: strings.TrimSpace(r.Reason)}, nil
}

// Slider builds a slider at the suggestion. A pair closer than the minimum gap
// keeps start and moves end to the nearest valid side of it, so a window that is
// too short grows to the minimum instead of wrapping around the day.
func (s *Suggestion) Slider() *slider.Slider {
	return slider.New(s.Start, s.End)
}
