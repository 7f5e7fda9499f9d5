package service

import (
	"context"
	"testing"
	"time"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/entity"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/contract"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/memory"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/specification"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDiaryRepo struct {
	entries      []*entity.DiaryEntry
	findAllCalls int
}

func (f *fakeDiaryRepo) Create(ctx context.Context, entry *entity.DiaryEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeDiaryRepo) Update(ctx context.Context, entry *entity.DiaryEntry) error { return nil }

func (f *fakeDiaryRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeDiaryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DiaryEntry, error) {
	return nil, nil
}

func (f *fakeDiaryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DiaryEntry, error) {
	f.findAllCalls++
	return f.entries, nil
}

func (f *fakeDiaryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.entries)), nil
}

type fakeUnitOfWork struct {
	diary *fakeDiaryRepo
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }

func (f *fakeUnitOfWork) UserRepository() contract.UserRepository   { return nil }
func (f *fakeUnitOfWork) DiaryRepository() contract.DiaryRepository { return f.diary }
func (f *fakeUnitOfWork) GoalRepository() contract.GoalRepository   { return nil }

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newInsightFixture(entries ...*entity.DiaryEntry) (*fakeDiaryRepo, IInsightService) {
	repo := &fakeDiaryRepo{entries: entries}
	factory := &fakeUowFactory{uow: &fakeUnitOfWork{diary: repo}}
	return repo, NewInsightService(factory, memory.NewSnapshotRepository())
}

func diaryEntryOn(userId uuid.UUID, date time.Time, mood int) *entity.DiaryEntry {
	return &entity.DiaryEntry{
		Id:        uuid.New(),
		UserId:    userId,
		EntryDate: date,
		Mood:      mood,
		Energy:    mood,
		CreatedAt: date,
	}
}

func TestWeeklySnapshotPerAnchorDate(t *testing.T) {
	userId := uuid.New()
	_, svc := newInsightFixture(
		diaryEntryOn(userId, time.Date(2024, 4, 30, 0, 0, 0, 0, time.Local), 6),
		diaryEntryOn(userId, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), 8),
	)
	ctx := context.Background()

	first, err := svc.Weekly(ctx, userId, time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local))
	assert.NoError(t, err)
	assert.Equal(t, "2024-05-01", first.End)

	// A later anchor must get its own window, not the snapshot warmed for May 1.
	second, err := svc.Weekly(ctx, userId, time.Date(2024, 6, 15, 9, 0, 0, 0, time.Local))
	assert.NoError(t, err)
	assert.Equal(t, "2024-06-15", second.End)
	assert.Equal(t, "2024-06-09", second.Start)
}

func TestWeeklySnapshotServesRepeatReads(t *testing.T) {
	userId := uuid.New()
	repo, svc := newInsightFixture(
		diaryEntryOn(userId, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), 7),
	)
	ctx := context.Background()
	anchor := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

	first, err := svc.Weekly(ctx, userId, anchor)
	assert.NoError(t, err)
	// Same day, later in the afternoon: the snapshot answers without a reload.
	second, err := svc.Weekly(ctx, userId, anchor.Add(6*time.Hour))
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.findAllCalls)
}

func TestMonthlyStreakAnchoredAtCaller(t *testing.T) {
	userId := uuid.New()
	_, svc := newInsightFixture(
		diaryEntryOn(userId, time.Date(2024, 4, 30, 0, 0, 0, 0, time.Local), 6),
		diaryEntryOn(userId, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), 8),
	)
	ctx := context.Background()

	report, err := svc.Monthly(ctx, userId, 2024, time.May, time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local))
	assert.NoError(t, err)
	assert.Equal(t, 2, report.Streak)

	// Anchored weeks after the last entry, the same month shows no streak.
	later, err := svc.Monthly(ctx, userId, 2024, time.May, time.Date(2024, 6, 15, 9, 0, 0, 0, time.Local))
	assert.NoError(t, err)
	assert.Equal(t, 0, later.Streak)
}
