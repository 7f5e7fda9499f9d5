package service

import (
	"context"
	"time"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/dto"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/contract"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/guidance"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/insight"

	"github.com/google/uuid"
)

type IGuidanceService interface {
	Daily(ctx context.Context, userId uuid.UUID, now time.Time) (*dto.DailyGuidanceResponse, error)
	PromptBudget(ctx context.Context, userId uuid.UUID, now time.Time) (*dto.PromptBudgetResponse, error)
	InjectPrompt(ctx context.Context, userId uuid.UUID, now time.Time, req *dto.InjectPromptRequest) (*dto.InjectPromptResponse, error)
}

type guidanceService struct {
	counterRepo contract.PromptCounterRepository
}

func NewGuidanceService(counterRepo contract.PromptCounterRepository) IGuidanceService {
	return &guidanceService{
		counterRepo: counterRepo,
	}
}

func (s *guidanceService) Daily(ctx context.Context, userId uuid.UUID, now time.Time) (*dto.DailyGuidanceResponse, error) {
	dateKey := insight.DateKey(now)
	return &dto.DailyGuidanceResponse{
		Date:     dateKey,
		Template: guidance.SelectDaily(dateKey, userId.String()),
	}, nil
}

func (s *guidanceService) PromptBudget(ctx context.Context, userId uuid.UUID, now time.Time) (*dto.PromptBudgetResponse, error) {
	dateKey := insight.DateKey(now)
	used, err := s.counterRepo.Get(ctx, userId.String(), dateKey)
	if err != nil {
		return nil, err
	}

	return &dto.PromptBudgetResponse{
		Date:   dateKey,
		Budget: guidance.NewBudget(used),
	}, nil
}

// InjectPrompt hands out at most the daily ceiling of writing prompts. The
// check and the increment are two round trips, not a transaction; a racing
// duplicate costs one extra nudge and nothing else.
func (s *guidanceService) InjectPrompt(ctx context.Context, userId uuid.UUID, now time.Time, req *dto.InjectPromptRequest) (*dto.InjectPromptResponse, error) {
	dateKey := insight.DateKey(now)
	used, err := s.counterRepo.Get(ctx, userId.String(), dateKey)
	if err != nil {
		return nil, err
	}

	budget := guidance.NewBudget(used)
	if !budget.CanInject() {
		return &dto.InjectPromptResponse{
			Injected: false,
			Budget:   budget,
		}, nil
	}

	prompt := guidance.PickPrompt(dateKey, userId.String(), req.Buffer, guidance.Catalog)
	if prompt == "" {
		return &dto.InjectPromptResponse{
			Injected: false,
			Budget:   budget,
		}, nil
	}

	nextUsed := budget.NextUsed()
	if err := s.counterRepo.Set(ctx, userId.String(), dateKey, nextUsed); err != nil {
		return nil, err
	}

	return &dto.InjectPromptResponse{
		Injected: true,
		Prompt:   prompt,
		Budget:   guidance.NewBudget(nextUsed),
	}, nil
}
