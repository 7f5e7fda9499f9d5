package contract

import (
	"context"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/entity"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/specification"

	"github.com/google/uuid"
)

type GoalRepository interface {
	Create(ctx context.Context, entry *entity.GoalEntry) error
	Update(ctx context.Context, entry *entity.GoalEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GoalEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GoalEntry, error)
}
