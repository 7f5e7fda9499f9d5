package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// counterTTL keeps yesterday's counter readable across midnight while the
// digest for that day is still being composed, then lets it expire.
const counterTTL = 48 * time.Hour

type PromptCounterRepositoryImpl struct {
	rdb *redis.Client
}

func NewPromptCounterRepository(rdb *redis.Client) contract.PromptCounterRepository {
	return &PromptCounterRepositoryImpl{
		rdb: rdb,
	}
}

func counterKey(ownerKey, dateKey string) string {
	return fmt.Sprintf("prompt_quota:%s:%s", ownerKey, dateKey)
}

func (r *PromptCounterRepositoryImpl) Get(ctx context.Context, ownerKey, dateKey string) (int, error) {
	val, err := r.rdb.Get(ctx, counterKey(ownerKey, dateKey)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	used, err := strconv.Atoi(val)
	if err != nil {
		// Corrupt counter: treat as fresh rather than blocking the day.
		return 0, nil
	}
	return used, nil
}

func (r *PromptCounterRepositoryImpl) Set(ctx context.Context, ownerKey, dateKey string, used int) error {
	if used < 0 {
		used = 0
	}
	return r.rdb.Set(ctx, counterKey(ownerKey, dateKey), strconv.Itoa(used), counterTTL).Err()
}
