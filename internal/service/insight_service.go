package service

import (
	"context"
	"errors"
	"time"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/dto"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/memory"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/specification"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/unitofwork"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/insight"

	"github.com/google/uuid"
)

type IInsightService interface {
	Weekly(ctx context.Context, userId uuid.UUID, now time.Time) (*dto.WindowReportResponse, error)
	Monthly(ctx context.Context, userId uuid.UUID, year int, month time.Month, now time.Time) (*dto.WindowReportResponse, error)
	Range(ctx context.Context, userId uuid.UUID, start, end string, now time.Time) (*dto.WindowReportResponse, error)
	Calendar(ctx context.Context, userId uuid.UUID, year int, month time.Month, now time.Time) (*dto.CalendarResponse, error)
	Extremes(ctx context.Context, userId uuid.UUID) (*dto.ExtremesResponse, error)

	// WarmWeekly recomputes and caches the weekly report; the entry-saved
	// consumer calls it so the dashboard read stays hot.
	WarmWeekly(ctx context.Context, userId uuid.UUID) error
}

type insightService struct {
	uowFactory   unitofwork.RepositoryFactory
	snapshotRepo *memory.SnapshotRepository
}

func NewInsightService(uowFactory unitofwork.RepositoryFactory, snapshotRepo *memory.SnapshotRepository) IInsightService {
	return &insightService{
		uowFactory:   uowFactory,
		snapshotRepo: snapshotRepo,
	}
}

// loadRecords pulls the owner's full diary history in chronological order.
// Insight math needs the whole set: the streak walks past any window and the
// first-seen-wins duplicate rule depends on a stable read order.
func (s *insightService) loadRecords(ctx context.Context, userId uuid.UUID) ([]insight.Record, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entries, err := uow.DiaryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByEntryDateAsc{},
	)
	if err != nil {
		return nil, err
	}
	return diaryRecords(entries), nil
}

func windowReport(records []insight.Record, w insight.Window, now time.Time) *dto.WindowReportResponse {
	report := insight.Aggregate(records, w)
	return &dto.WindowReportResponse{
		Start:   insight.DateKey(w.Start),
		End:     insight.DateKey(w.End),
		Days:    report.Days,
		Summary: report.Summary,
		Streak:  insight.Streak(records, now),
	}
}

func (s *insightService) Weekly(ctx context.Context, userId uuid.UUID, now time.Time) (*dto.WindowReportResponse, error) {
	anchor := insight.DateKey(now)
	if cached, found := s.snapshotRepo.GetWeekly(userId.String(), anchor); found {
		return cached, nil
	}

	records, err := s.loadRecords(ctx, userId)
	if err != nil {
		return nil, err
	}

	resp := windowReport(records, insight.TrailingWindow(now, 7), now)
	s.snapshotRepo.SaveWeekly(userId.String(), anchor, resp)
	return resp, nil
}

func (s *insightService) Monthly(ctx context.Context, userId uuid.UUID, year int, month time.Month, now time.Time) (*dto.WindowReportResponse, error) {
	records, err := s.loadRecords(ctx, userId)
	if err != nil {
		return nil, err
	}
	return windowReport(records, insight.MonthWindow(year, month), now), nil
}

func (s *insightService) Range(ctx context.Context, userId uuid.UUID, start, end string, now time.Time) (*dto.WindowReportResponse, error) {
	startDate, err := parseEntryDate(start)
	if err != nil {
		return nil, errors.New("invalid start date")
	}
	endDate, err := parseEntryDate(end)
	if err != nil {
		return nil, errors.New("invalid end date")
	}

	records, err := s.loadRecords(ctx, userId)
	if err != nil {
		return nil, err
	}
	return windowReport(records, insight.CustomWindow(startDate, endDate), now), nil
}

func (s *insightService) Calendar(ctx context.Context, userId uuid.UUID, year int, month time.Month, now time.Time) (*dto.CalendarResponse, error) {
	records, err := s.loadRecords(ctx, userId)
	if err != nil {
		return nil, err
	}

	return &dto.CalendarResponse{
		Year:  year,
		Month: int(month),
		Cells: insight.ProjectMonth(year, month, records, now),
	}, nil
}

func (s *insightService) Extremes(ctx context.Context, userId uuid.UUID) (*dto.ExtremesResponse, error) {
	records, err := s.loadRecords(ctx, userId)
	if err != nil {
		return nil, err
	}

	best, worst := insight.Extremes(records)
	return &dto.ExtremesResponse{
		Best:  extremeDay(best),
		Worst: extremeDay(worst),
	}, nil
}

func extremeDay(r *insight.Record) dto.ExtremeDayResponse {
	if r == nil {
		return dto.ExtremeDayResponse{}
	}
	raw := insight.ClampRating(r.Primary)
	return dto.ExtremeDayResponse{
		Found: true,
		Date:  insight.DateKey(r.Date),
		Raw:   raw,
		Score: insight.ScoreFromRating(raw),
	}
}

func (s *insightService) WarmWeekly(ctx context.Context, userId uuid.UUID) error {
	records, err := s.loadRecords(ctx, userId)
	if err != nil {
		return err
	}

	now := time.Now()
	resp := windowReport(records, insight.TrailingWindow(now, 7), now)
	s.snapshotRepo.SaveWeekly(userId.String(), insight.DateKey(now), resp)
	return nil
}
