package service

import (
	"context"
	"testing"
	"time"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/dto"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/guidance"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeCounterRepo struct {
	counts map[string]int
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{counts: make(map[string]int)}
}

func (f *fakeCounterRepo) Get(ctx context.Context, ownerKey, dateKey string) (int, error) {
	return f.counts[ownerKey+":"+dateKey], nil
}

func (f *fakeCounterRepo) Set(ctx context.Context, ownerKey, dateKey string, used int) error {
	f.counts[ownerKey+":"+dateKey] = used
	return nil
}

func TestInjectPromptRespectsCeiling(t *testing.T) {
	repo := newFakeCounterRepo()
	svc := NewGuidanceService(repo)

	userId := uuid.New()
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)
	ctx := context.Background()

	buffer := ""
	for i := 0; i < guidance.PromptCeiling; i++ {
		res, err := svc.InjectPrompt(ctx, userId, now, &dto.InjectPromptRequest{Buffer: buffer})
		assert.NoError(t, err)
		assert.True(t, res.Injected, "injection %d should succeed", i+1)
		assert.NotEmpty(t, res.Prompt)
		assert.Equal(t, i+1, res.Budget.Used)
		// Simulate the client appending the prompt to the draft.
		buffer += "\n" + res.Prompt
	}

	res, err := svc.InjectPrompt(ctx, userId, now, &dto.InjectPromptRequest{Buffer: buffer})
	assert.NoError(t, err)
	assert.False(t, res.Injected)
	assert.Empty(t, res.Prompt)
	assert.Equal(t, 0, res.Budget.Remaining)
}

func TestInjectPromptSkipsPromptsAlreadyInBuffer(t *testing.T) {
	repo := newFakeCounterRepo()
	svc := NewGuidanceService(repo)

	userId := uuid.New()
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)
	ctx := context.Background()

	first, err := svc.InjectPrompt(ctx, userId, now, &dto.InjectPromptRequest{Buffer: ""})
	assert.NoError(t, err)
	assert.True(t, first.Injected)

	second, err := svc.InjectPrompt(ctx, userId, now, &dto.InjectPromptRequest{Buffer: first.Prompt})
	assert.NoError(t, err)
	assert.True(t, second.Injected)
	assert.NotEqual(t, first.Prompt, second.Prompt)
}

func TestPromptBudgetStartsFresh(t *testing.T) {
	repo := newFakeCounterRepo()
	svc := NewGuidanceService(repo)

	res, err := svc.PromptBudget(context.Background(), uuid.New(), time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Budget.Used)
	assert.Equal(t, guidance.PromptCeiling, res.Budget.Remaining)
}

func TestDailyGuidanceStableWithinDay(t *testing.T) {
	repo := newFakeCounterRepo()
	svc := NewGuidanceService(repo)

	userId := uuid.New()
	morning := time.Date(2024, 5, 10, 8, 0, 0, 0, time.Local)
	evening := time.Date(2024, 5, 10, 22, 0, 0, 0, time.Local)

	a, err := svc.Daily(context.Background(), userId, morning)
	assert.NoError(t, err)
	b, err := svc.Daily(context.Background(), userId, evening)
	assert.NoError(t, err)

	assert.Equal(t, a.Template.ID, b.Template.ID)
	assert.Equal(t, "2024-05-10", a.Date)
}
