package contract

import (
	"context"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/entity"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/specification"

	"github.com/google/uuid"
)

type DiaryRepository interface {
	Create(ctx context.Context, entry *entity.DiaryEntry) error
	Update(ctx context.Context, entry *entity.DiaryEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DiaryEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DiaryEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
