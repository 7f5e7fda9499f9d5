package memory

import (
	"time"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/dto"

	"github.com/patrickmn/go-cache"
)

// SnapshotRepository holds pre-computed weekly insight reports so the
// dashboard read path does not hit the database on every request. Entries
// expire on their own; saving a diary entry re-warms the owner's snapshot
// through the event consumer.
type SnapshotRepository struct {
	cache *cache.Cache
}

func NewSnapshotRepository() *SnapshotRepository {
	c := cache.New(15*time.Minute, 5*time.Minute)
	return &SnapshotRepository{
		cache: c,
	}
}

// The anchor date is part of the key: a report is only valid for the window
// it was computed against, so a snapshot warmed yesterday (or for another
// anchor) must never answer today's read.
func (r *SnapshotRepository) SaveWeekly(userID, anchorDate string, report *dto.WindowReportResponse) {
	r.cache.Set(weeklyKey(userID, anchorDate), report, cache.DefaultExpiration)
}

func (r *SnapshotRepository) GetWeekly(userID, anchorDate string) (*dto.WindowReportResponse, bool) {
	if x, found := r.cache.Get(weeklyKey(userID, anchorDate)); found {
		return x.(*dto.WindowReportResponse), true
	}
	return nil, false
}

func (r *SnapshotRepository) InvalidateWeekly(userID, anchorDate string) {
	r.cache.Delete(weeklyKey(userID, anchorDate))
}

func weeklyKey(userID, anchorDate string) string {
	return "weekly:" + userID + ":" + anchorDate
}
