package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalEntry is the secondary record type: a dated check-in against a personal
// goal carrying a single 1-10 progress rating. It flows through the same
// insight engine as diary entries, with progress as the primary dimension.
type GoalEntry struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	EntryDate time.Time
	Title     string
	Progress  int
	Note      string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
