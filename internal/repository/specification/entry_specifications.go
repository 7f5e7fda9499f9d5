package specification

import (
	"time"

	"gorm.io/gorm"
)

// OnDate filters dated entries to a single calendar day.
type OnDate struct {
	Date time.Time
}

func (s OnDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entry_date = ?", s.Date.Format("2006-01-02"))
}

// DateBetween filters dated entries to an inclusive range.
type DateBetween struct {
	Start time.Time
	End   time.Time
}

func (s DateBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entry_date BETWEEN ? AND ?",
		s.Start.Format("2006-01-02"), s.End.Format("2006-01-02"))
}

// ByEntryDateAsc orders dated entries chronologically, creation order breaking
// ties so first-seen-wins resolution stays stable across reads.
type ByEntryDateAsc struct{}

func (s ByEntryDateAsc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("entry_date ASC, created_at ASC")
}
