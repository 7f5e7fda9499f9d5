package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalEntry struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_goal_user_date"`
	EntryDate time.Time `gorm:"type:date;not null;index:idx_goal_user_date"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Progress  int       `gorm:"not null"`
	Note      string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (GoalEntry) TableName() string {
	return "goal_entries"
}
