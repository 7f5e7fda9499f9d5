package dto

import (
	"time"

	"github.com/google/uuid"
)

type MedicationPayload struct {
	Status string `json:"status" validate:"required,oneof=taken partial skipped"`
	Reason string `json:"reason"`
}

type CreateDiaryEntryRequest struct {
	EntryDate    string   `json:"entry_date" validate:"required,datetime=2006-01-02"`
	Mood         int      `json:"mood" validate:"required"`
	Energy       int      `json:"energy" validate:"required"`
	Relationship int      `json:"relationship" validate:"required"`
	Achievement  int      `json:"achievement" validate:"required"`
	Emotions     []string `json:"emotions"`
	Content      string   `json:"content"`

	Medication *MedicationPayload `json:"medication"`
}

type CreateDiaryEntryResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateDiaryEntryRequest struct {
	Id           uuid.UUID
	Mood         int      `json:"mood" validate:"required"`
	Energy       int      `json:"energy" validate:"required"`
	Relationship int      `json:"relationship" validate:"required"`
	Achievement  int      `json:"achievement" validate:"required"`
	Emotions     []string `json:"emotions"`
	Content      string   `json:"content"`

	Medication *MedicationPayload `json:"medication"`
}

type UpdateDiaryEntryResponse struct {
	Id uuid.UUID `json:"id"`
}

type DiaryEntryResponse struct {
	Id           uuid.UUID  `json:"id"`
	EntryDate    string     `json:"entry_date"`
	Mood         int        `json:"mood"`
	Energy       int        `json:"energy"`
	Relationship int        `json:"relationship"`
	Achievement  int        `json:"achievement"`
	Composite    int        `json:"composite"`
	Score        int        `json:"score"`
	Emotions     []string   `json:"emotions"`
	Content      string     `json:"content"`

	Medication *MedicationPayload `json:"medication,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ListDiaryEntriesRequest struct {
	Start string `json:"start" validate:"omitempty,datetime=2006-01-02"`
	End   string `json:"end" validate:"omitempty,datetime=2006-01-02"`
}
