package service

import (
	"context"
	"encoding/json"
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

type IDiaryService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDiaryEntryRequest) (*dto.CreateDiaryEntryResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.DiaryEntryResponse, error)
	ShowByDate(ctx context.Context, userId uuid.UUID, date string) (*dto.DiaryEntryResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateDiaryEntryRequest) (*dto.UpdateDiaryEntryResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID, req *dto.ListDiaryEntriesRequest) ([]*dto.DiaryEntryResponse, error)
}

type diaryService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewDiaryService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IDiaryService {
	return &diaryService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func parseEntryDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func medicationFromPayload(p *dto.MedicationPayload) *entity.MedicationRecord {
	if p == nil {
		return nil
	}
	return &entity.MedicationRecord{
		Status: entity.MedicationStatus(p.Status),
		Reason: p.Reason,
	}
}

func (s *diaryService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDiaryEntryRequest) (*dto.CreateDiaryEntryResponse, error) {
	entryDate, err := parseEntryDate(req.EntryDate)
	if err != nil {
		return nil, errors.New("invalid entry date")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	entry := entity.DiaryEntry{
		Id:        uuid.New(),
		UserId:    userId,
		EntryDate: entryDate,
		// Out-of-range ratings are pulled to the nearest bound instead of
		// rejected so a half-filled form never loses a day's record.
		Mood:         insight.ClampRating(req.Mood),
		Energy:       insight.ClampRating(req.Energy),
		Relationship: insight.ClampRating(req.Relationship),
		Achievement:  insight.ClampRating(req.Achievement),
		Emotions:     req.Emotions,
		Content:      req.Content,
		Medication:   medicationFromPayload(req.Medication),
		CreatedAt:    time.Now(),
	}

	if err := uow.DiaryRepository().Create(ctx, &entry); err != nil {
		return nil, err
	}

	s.announceSaved(ctx, userId, events.TypeDiarySaved)

	return &dto.CreateDiaryEntryResponse{Id: entry.Id}, nil
}

func (s *diaryService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.DiaryEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.DiaryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.New("diary entry not found")
	}

	return diaryEntryResponse(entry), nil
}

func (s *diaryService) ShowByDate(ctx context.Context, userId uuid.UUID, date string) (*dto.DiaryEntryResponse, error) {
	day, err := parseEntryDate(date)
	if err != nil {
		return nil, errors.New("invalid entry date")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.DiaryRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OnDate{Date: day},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.New("diary entry not found")
	}

	return diaryEntryResponse(entry), nil
}

func (s *diaryService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateDiaryEntryRequest) (*dto.UpdateDiaryEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.DiaryRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.New("diary entry not found")
	}

	now := time.Now()
	entry.Mood = insight.ClampRating(req.Mood)
	entry.Energy = insight.ClampRating(req.Energy)
	entry.Relationship = insight.ClampRating(req.Relationship)
	entry.Achievement = insight.ClampRating(req.Achievement)
	entry.Emotions = req.Emotions
	entry.Content = req.Content
	entry.Medication = medicationFromPayload(req.Medication)
	entry.UpdatedAt = &now

	if err := uow.DiaryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	s.announceSaved(ctx, userId, events.TypeDiarySaved)

	return &dto.UpdateDiaryEntryResponse{Id: entry.Id}, nil
}

func (s *diaryService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.DiaryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if entry == nil {
		return errors.New("diary entry not found")
	}

	if err := uow.DiaryRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.announceSaved(ctx, userId, events.TypeDiaryDeleted)

	return nil
}

func (s *diaryService) List(ctx context.Context, userId uuid.UUID, req *dto.ListDiaryEntriesRequest) ([]*dto.DiaryEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId},
		specification.ByEntryDateAsc{},
	}
	if req.Start != "" && req.End != "" {
		start, err := parseEntryDate(req.Start)
		if err != nil {
			return nil, errors.New("invalid start date")
		}
		end, err := parseEntryDate(req.End)
		if err != nil {
			return nil, errors.New("invalid end date")
		}
		w := insight.CustomWindow(start, end)
		specs = append(specs, specification.DateBetween{Start: w.Start, End: w.End})
	}

	entries, err := uow.DiaryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.DiaryEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, diaryEntryResponse(e))
	}
	return responses, nil
}

// announceSaved fans the change out twice: the in-process bus re-warms the
// weekly snapshot, the NATS bus feeds external workers.
func (s *diaryService) announceSaved(ctx context.Context, userId uuid.UUID, eventType string) {
	msgPayload := dto.PublishEntrySavedMessage{UserId: userId.String()}
	if msgJson, err := json.Marshal(msgPayload); err == nil {
		if err := s.publisherService.Publish(ctx, msgJson); err != nil {
			fmt.Printf("[WARN] Failed to publish entry-saved message: %v\n", err)
		}
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: eventType,
			Data: map[string]interface{}{
				"user_id": userId.String(),
				"time":    time.Now().Format(time.RFC822),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
		}
	}
}
