package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/dto"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/specification"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/unitofwork"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/insight"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/llm"

	"github.com/google/uuid"
)

const counselSystemPrompt = `You are a supportive wellbeing companion reviewing someone's diary.
Each line below is one diary record: date, the 1-10 ratings, emotion tags, then the day's text.
Ground your reply in what the diary actually says. Be warm, concrete and brief.
Never diagnose and never give medical advice.`

type ICounselService interface {
	Chat(ctx context.Context, userId uuid.UUID, now time.Time, req *dto.CounselChatRequest) (*dto.CounselChatResponse, error)
}

type counselService struct {
	uowFactory        unitofwork.RepositoryFactory
	llmProvider       llm.LLMProvider
	medicationEnabled bool
}

func NewCounselService(uowFactory unitofwork.RepositoryFactory, llmProvider llm.LLMProvider, medicationEnabled bool) ICounselService {
	return &counselService{
		uowFactory:        uowFactory,
		llmProvider:       llmProvider,
		medicationEnabled: medicationEnabled,
	}
}

// Chat grounds the model on a digest of the requested window instead of raw
// rows: one flattened line per record, oldest first, so the model sees the
// diary the way the owner wrote it.
func (s *counselService) Chat(ctx context.Context, userId uuid.UUID, now time.Time, req *dto.CounselChatRequest) (*dto.CounselChatResponse, error) {
	w := insight.TrailingWindow(now, 7)
	if req.Start != "" && req.End != "" {
		start, err := parseEntryDate(req.Start)
		if err != nil {
			return nil, errors.New("invalid start date")
		}
		end, err := parseEntryDate(req.End)
		if err != nil {
			return nil, errors.New("invalid end date")
		}
		w = insight.CustomWindow(start, end)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	entries, err := uow.DiaryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.DateBetween{Start: w.Start, End: w.End},
		specification.ByEntryDateAsc{},
	)
	if err != nil {
		return nil, err
	}

	records := diaryRecords(entries)
	flags := insight.FeatureFlags{
		// Adherence reaches the model only when the deployment flag and the
		// request both opt in.
		IncludeAdherence: s.medicationEnabled && req.IncludeMedication,
	}
	digest := insight.ComposeDigest(records, w, flags)

	history := []llm.Message{
		{Role: "system", Content: counselSystemPrompt},
	}
	if digest != "" {
		history = append(history, llm.Message{
			Role:    "system",
			Content: "Diary digest:\n" + digest,
		})
	} else {
		history = append(history, llm.Message{
			Role:    "system",
			Content: "The diary has no records in the selected period.",
		})
	}
	history = append(history, llm.Message{Role: "user", Content: req.Message})

	reply, err := s.llmProvider.Chat(ctx, history, llm.WithTemperature(0.6))
	if err != nil {
		return nil, fmt.Errorf("counsel chat failed: %w", err)
	}

	seen := make(map[string]struct{})
	for _, r := range records {
		key := insight.DateKey(r.Date)
		if w.Contains(r.Date) {
			seen[key] = struct{}{}
		}
	}

	return &dto.CounselChatResponse{
		Reply:      reply,
		DigestDays: len(seen),
	}, nil
}
