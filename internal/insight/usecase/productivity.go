package usecase

import (
	"context"
	"fmt"
	"strings"

	"timesheet-assistant/internal/insight"
	"timesheet-assistant/internal/model"
	"timesheet-assistant/pkg/gemini"
)

// Productivity generates a one-line coaching insight over the session's
// draft. A missing or failing narrator degrades to an empty insight so the
// hours summary still comes back.
func (uc *implUseCase) Productivity(ctx context.Context, sc model.Scope) (insight.ProductivityOutput, error) {
	state, ok := uc.sessions.Get(sc.SessionID)
	if !ok {
		return insight.ProductivityOutput{}, insight.ErrNoDraft
	}
	d, err := state.Get()
	if err != nil {
		return insight.ProductivityOutput{}, insight.ErrNoDraft
	}

	out := insight.ProductivityOutput{}
	var dailyLines []string
	for _, name := range model.WeekdayNames {
		entry, ok := d.Days[name]
		if !ok {
			continue
		}
		out.TotalHours += entry.Worked()
		out.MeetingHours += entry.Hours[model.CategoryMeetings]
		dailyLines = append(dailyLines, fmt.Sprintf("%s: %v worked, %v PTO",
			name, entry.Worked(), entry.Hours[model.CategoryPTO]))
	}

	out.Insight = uc.generate(ctx, gemini.BuildProductivityInsightPrompt(out.TotalHours, out.MeetingHours, dailyLines))
	return out, nil
}

// generate runs the narrator and swallows its failures.
func (uc *implUseCase) generate(ctx context.Context, prompt string) string {
	if uc.narrator == nil {
		return ""
	}
	text, err := uc.narrator.GenerateText(ctx, prompt, &gemini.GenerationConfig{
		Temperature:     0.7,
		MaxOutputTokens: 256,
	})
	if err != nil {
		uc.l.Warnf(ctx, "insight: narrative generation failed: %v", err)
		return ""
	}
	return strings.TrimSpace(text)
}
