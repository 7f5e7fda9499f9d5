package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateGoalEntryRequest struct {
	EntryDate string `json:"entry_date" validate:"required,datetime=2006-01-02"`
	Title     string `json:"title" validate:"required,max=255"`
	Progress  int    `json:"progress" validate:"required"`
	Note      string `json:"note"`
}

type CreateGoalEntryResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateGoalEntryRequest struct {
	Id       uuid.UUID
	Title    string `json:"title" validate:"required,max=255"`
	Progress int    `json:"progress" validate:"required"`
	Note     string `json:"note"`
}

type UpdateGoalEntryResponse struct {
	Id uuid.UUID `json:"id"`
}

type GoalEntryResponse struct {
	Id        uuid.UUID  `json:"id"`
	EntryDate string     `json:"entry_date"`
	Title     string     `json:"title"`
	Progress  int        `json:"progress"`
	Score     int        `json:"score"`
	Note      string     `json:"note"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
