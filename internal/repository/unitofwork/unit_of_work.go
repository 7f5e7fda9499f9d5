package unitofwork

import (
	"context"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	DiaryRepository() contract.DiaryRepository
	GoalRepository() contract.GoalRepository
}
