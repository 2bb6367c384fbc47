package usecase

import (
	"context"
	"time"

	insightRepo "timesheet-assistant/internal/insight/repository"
	"timesheet-assistant/internal/session"
	tsRepo "timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/gemini"
	pkgLog "timesheet-assistant/pkg/log"
)

// TextGenerator produces the narrative one-liners. *gemini.Client
// implements it.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, cfg *gemini.GenerationConfig) (string, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	narrator TextGenerator // nil degrades narratives to empty strings
	team     insightRepo.TeamRepository
	hr       tsRepo.HRRepository
	sessions *session.Store
	now      func() time.Time
}

// New creates a new insight UseCase instance.
func New(
	l pkgLog.Logger,
	narrator TextGenerator,
	team insightRepo.TeamRepository,
	hr tsRepo.HRRepository,
	sessions *session.Store,
) *implUseCase {
	return &implUseCase{
		l:        l,
		narrator: narrator,
		team:     team,
		hr:       hr,
		sessions: sessions,
		now:      time.Now,
	}
}
