package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DiaryEntry struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_diary_user_date"`
	EntryDate time.Time `gorm:"type:date;not null;index:idx_diary_user_date"`

	Mood         int `gorm:"not null"`
	Energy       int `gorm:"not null"`
	Relationship int `gorm:"not null"`
	Achievement  int `gorm:"not null"`

	// Emotions is the tag set serialized as a JSON array of strings.
	Emotions datatypes.JSON `gorm:"type:jsonb"`
	Content  string         `gorm:"type:text"`

	MedicationStatus *string `gorm:"type:varchar(50)"`
	MedicationReason *string `gorm:"type:text"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (DiaryEntry) TableName() string {
	return "diary_entries"
}
