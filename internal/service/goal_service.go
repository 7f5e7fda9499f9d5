package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/dto"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/entity"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/specification"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/unitofwork"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/events"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/insight"
	pktNats "github.com/kangsm1989-hue/ai-counsel-web/pkg/nats"

	"github.com/google/uuid"
)

type IGoalService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateGoalEntryRequest) (*dto.CreateGoalEntryResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateGoalEntryRequest) (*dto.UpdateGoalEntryResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID) ([]*dto.GoalEntryResponse, error)
	WeeklyReport(ctx context.Context, userId uuid.UUID, now time.Time) (*dto.WindowReportResponse, error)
}

type goalService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewGoalService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IGoalService {
	return &goalService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *goalService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateGoalEntryRequest) (*dto.CreateGoalEntryResponse, error) {
	entryDate, err := parseEntryDate(req.EntryDate)
	if err != nil {
		return nil, errors.New("invalid entry date")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	entry := entity.GoalEntry{
		Id:        uuid.New(),
		UserId:    userId,
		EntryDate: entryDate,
		Title:     req.Title,
		Progress:  insight.ClampRating(req.Progress),
		Note:      req.Note,
		CreatedAt: time.Now(),
	}

	if err := uow.GoalRepository().Create(ctx, &entry); err != nil {
		return nil, err
	}

	s.announceSaved(ctx, userId)

	return &dto.CreateGoalEntryResponse{Id: entry.Id}, nil
}

func (s *goalService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateGoalEntryRequest) (*dto.UpdateGoalEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.GoalRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.New("goal entry not found")
	}

	now := time.Now()
	entry.Title = req.Title
	entry.Progress = insight.ClampRating(req.Progress)
	entry.Note = req.Note
	entry.UpdatedAt = &now

	if err := uow.GoalRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	s.announceSaved(ctx, userId)

	return &dto.UpdateGoalEntryResponse{Id: entry.Id}, nil
}

func (s *goalService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.GoalRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if entry == nil {
		return errors.New("goal entry not found")
	}

	return uow.GoalRepository().Delete(ctx, id)
}

func (s *goalService) List(ctx context.Context, userId uuid.UUID) ([]*dto.GoalEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.GoalRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByEntryDateAsc{},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.GoalEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, goalEntryResponse(e))
	}
	return responses, nil
}

// WeeklyReport runs goal check-ins through the insight engine so progress gets
// the same trailing-7-day read as mood does.
func (s *goalService) WeeklyReport(ctx context.Context, userId uuid.UUID, now time.Time) (*dto.WindowReportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The full history is loaded because the streak can reach past the
	// window; the aggregator only reads the days inside it.
	w := insight.TrailingWindow(now, 7)
	entries, err := uow.GoalRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByEntryDateAsc{},
	)
	if err != nil {
		return nil, err
	}

	records := goalRecords(entries)
	report := insight.Aggregate(records, w)

	return &dto.WindowReportResponse{
		Start:   insight.DateKey(w.Start),
		End:     insight.DateKey(w.End),
		Days:    report.Days,
		Summary: report.Summary,
		Streak:  insight.Streak(records, now),
	}, nil
}

func (s *goalService) announceSaved(ctx context.Context, userId uuid.UUID) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type: events.TypeGoalSaved,
		Data: map[string]interface{}{
			"user_id": userId.String(),
			"time":    time.Now().Format(time.RFC822),
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeGoalSaved, err)
	}
}
