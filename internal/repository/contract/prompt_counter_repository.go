package contract

import "context"

// PromptCounterRepository is the external per-owner-per-day counter behind the
// prompt budget. The engine only reads the count and decides; persistence of
// the incremented value goes through Set with no retry discipline -
// last-write-wins is accepted because a lost increment is harmless.
type PromptCounterRepository interface {
	Get(ctx context.Context, ownerKey, dateKey string) (int, error)
	Set(ctx context.Context, ownerKey, dateKey string, used int) error
}
