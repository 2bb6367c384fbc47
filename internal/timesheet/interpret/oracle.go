package interpret

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/pkg/gemini"
	pkgLog "timesheet-assistant/pkg/log"
)

// ErrOracleUnparseable means the oracle's whole response could not be read
// as structured actions. Recoverable: the draft stays unchanged.
var ErrOracleUnparseable = errors.New("oracle response is not parseable")

// Oracle is the natural-language interpretation collaborator. It is a
// fallible, untrusted dependency: implementations return candidate intents
// already validated against the day and category vocabularies.
type Oracle interface {
	Interpret(ctx context.Context, text string) ([]model.EditIntent, error)
}

// GeminiOracle implements Oracle on top of the Gemini API.
type GeminiOracle struct {
	l   pkgLog.Logger
	llm *gemini.Client
}

// NewGeminiOracle creates the Gemini-backed oracle.
func NewGeminiOracle(l pkgLog.Logger, llm *gemini.Client) *GeminiOracle {
	return &GeminiOracle{l: l, llm: llm}
}

// Interpret asks Gemini for the action list and sanitizes its output.
// A single invalid entry (unknown day, bad hours) is dropped with a log
// line; an unreadable response fails with ErrOracleUnparseable.
func (o *GeminiOracle) Interpret(ctx context.Context, text string) ([]model.EditIntent, error) {
	prompt := gemini.BuildEditParsingPrompt(text)

	raw, err := o.llm.GenerateText(ctx, prompt, &gemini.GenerationConfig{
		Temperature:     0.2, // low temperature for deterministic JSON output
		MaxOutputTokens: 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("oracle request failed: %w", err)
	}

	cleaned := sanitizeJSONResponse(raw)

	var envelope gemini.ActionsEnvelope
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		o.l.Errorf(ctx, "oracle: failed to parse response. Raw=%q Cleaned=%q", raw, cleaned)
		return nil, fmt.Errorf("%w: %v", ErrOracleUnparseable, err)
	}

	intents := make([]model.EditIntent, 0, len(envelope.Actions))
	for _, action := range envelope.Actions {
		day, ok := model.CanonicalDay(action.Day)
		if !ok {
			o.l.Warnf(ctx, "oracle: dropping action with unknown day %q", action.Day)
			continue
		}
		if math.IsNaN(action.Hours) || math.IsInf(action.Hours, 0) || action.Hours < 0 {
			o.l.Warnf(ctx, "oracle: dropping action with invalid hours %v", action.Hours)
			continue
		}
		intents = append(intents, model.EditIntent{
			Day:      day,
			Hours:    action.Hours,
			Category: model.NormalizeCategory(action.Activity),
		})
	}
	return intents, nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
