package interpret

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"timesheet-assistant/internal/model"
	pkgLog "timesheet-assistant/pkg/log"
)

// ErrNoEdits means the instruction held nothing actionable. Callers should
// keep the draft unchanged and invite the user to rephrase.
var ErrNoEdits = errors.New("no actionable edit recognized")

// Result is the outcome of one interpretation pass. Ready short-circuits
// editing: the user confirmed the draft and wants it submitted.
type Result struct {
	Ready   bool
	Intents []model.EditIntent
}

// Interpreter turns free-text chat instructions into normalized edit
// intents. Simple single-day instructions are resolved by deterministic
// pattern rules; anything compound or ambiguous is delegated to the
// oracle, whose output is validated against the closed vocabularies.
type Interpreter struct {
	l      pkgLog.Logger
	oracle Oracle
}

// New creates an Interpreter backed by the given oracle.
func New(l pkgLog.Logger, oracle Oracle) *Interpreter {
	return &Interpreter{l: l, oracle: oracle}
}

// Phrases that confirm the draft instead of editing it.
var confirmPhrases = []string{"submit", "looks good", "correct"}

// wordNumbers normalizes spelled-out numbers one through twelve.
var wordNumbers = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

var digitPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Category words that make an instruction too specific for the
// deterministic tier.
var categoryWords = []string{"meeting", "project", "misc"}

// Interpret runs both tiers against the instruction.
func (i *Interpreter) Interpret(ctx context.Context, text string) (Result, error) {
	lower := strings.ToLower(text)

	for _, phrase := range confirmPhrases {
		if strings.Contains(lower, phrase) {
			return Result{Ready: true}, nil
		}
	}

	if intents, ok := i.deterministic(lower); ok {
		i.l.Debugf(ctx, "interpreter: deterministic tier matched %q", text)
		return Result{Intents: intents}, nil
	}

	if i.oracle == nil {
		return Result{}, ErrNoEdits
	}

	intents, err := i.oracle.Interpret(ctx, text)
	if err != nil {
		return Result{}, err
	}
	if len(intents) == 0 {
		return Result{}, ErrNoEdits
	}
	return Result{Intents: intents}, nil
}

// deterministic handles the cheap unambiguous shapes: exactly one weekday
// plus exactly one number ("set tuesday to 5 hours") or the literal "PTO"
// with no number ("mark wednesday as pto"). A day+number match sets Misc
// absolutely — the day is cleared by the applicator, which is the
// lowest-risk reading of "set <day> to N hours". Anything mentioning
// explicit categories or several days falls through to the oracle.
func (i *Interpreter) deterministic(lower string) ([]model.EditIntent, bool) {
	days := mentionedDays(lower)
	if len(days) != 1 {
		return nil, false
	}
	for _, w := range categoryWords {
		if strings.Contains(lower, w) {
			return nil, false
		}
	}

	numbers := extractNumbers(lower)
	hasPTO := strings.Contains(lower, "pto")

	switch {
	case hasPTO && len(numbers) == 0:
		return []model.EditIntent{{Day: days[0], Hours: 8, Category: model.CategoryPTO}}, true
	case !hasPTO && len(numbers) == 1:
		return []model.EditIntent{{Day: days[0], Hours: numbers[0], Category: model.CategoryMisc}}, true
	default:
		return nil, false
	}
}

// mentionedDays returns the canonical names of every weekday appearing in
// the lowercased instruction, in week order.
func mentionedDays(lower string) []string {
	var days []string
	for _, name := range model.WeekdayNames {
		if strings.Contains(lower, strings.ToLower(name)) {
			days = append(days, name)
		}
	}
	return days
}

// extractNumbers collects digit literals and spelled-out number words.
func extractNumbers(lower string) []float64 {
	var numbers []float64
	for _, match := range digitPattern.FindAllString(lower, -1) {
		if v, err := strconv.ParseFloat(match, 64); err == nil {
			numbers = append(numbers, v)
		}
	}
	for _, token := range strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z')
	}) {
		if v, ok := wordNumbers[token]; ok {
			numbers = append(numbers, v)
		}
	}
	return numbers
}
