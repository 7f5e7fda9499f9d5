package entity

import (
	"time"

	"github.com/google/uuid"
)

type MedicationStatus string

const (
	MedicationTaken   MedicationStatus = "taken"
	MedicationPartial MedicationStatus = "partial"
	MedicationSkipped MedicationStatus = "skipped"
)

// DiaryEntry is one day's emotional-state record: four 1-10 ratings, a set of
// emotion tags, the narrative text, and an optional medication sub-record.
// One entry per user per date is the intended shape, but duplicates are
// tolerated end to end; the insight engine resolves them first-seen-wins.
type DiaryEntry struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	EntryDate time.Time

	Mood         int
	Energy       int
	Relationship int
	Achievement  int

	Emotions []string
	Content  string

	Medication *MedicationRecord

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

// MedicationRecord is the adherence sub-record carried by an entry when the
// medication feature is enabled for the account.
type MedicationRecord struct {
	Status MedicationStatus
	Reason string
}
