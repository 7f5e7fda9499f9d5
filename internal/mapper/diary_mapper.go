package mapper

import (
	"encoding/json"
	"time"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/entity"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DiaryMapper struct{}

func NewDiaryMapper() *DiaryMapper {
	return &DiaryMapper{}
}

func (m *DiaryMapper) ToEntity(d *model.DiaryEntry) *entity.DiaryEntry {
	if d == nil {
		return nil
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	var emotions []string
	if len(d.Emotions) > 0 {
		// A corrupt tag column degrades to no tags rather than failing a read.
		_ = json.Unmarshal(d.Emotions, &emotions)
	}

	var medication *entity.MedicationRecord
	if d.MedicationStatus != nil {
		medication = &entity.MedicationRecord{
			Status: entity.MedicationStatus(*d.MedicationStatus),
		}
		if d.MedicationReason != nil {
			medication.Reason = *d.MedicationReason
		}
	}

	return &entity.DiaryEntry{
		Id:           d.Id,
		UserId:       d.UserId,
		EntryDate:    d.EntryDate,
		Mood:         d.Mood,
		Energy:       d.Energy,
		Relationship: d.Relationship,
		Achievement:  d.Achievement,
		Emotions:     emotions,
		Content:      d.Content,
		Medication:   medication,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
		IsDeleted:    d.DeletedAt.Valid,
	}
}

func (m *DiaryMapper) ToModel(d *entity.DiaryEntry) *model.DiaryEntry {
	if d == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	}

	emotions := d.Emotions
	if emotions == nil {
		emotions = []string{}
	}
	emotionsJson, _ := json.Marshal(dedupeTags(emotions))

	var medicationStatus, medicationReason *string
	if d.Medication != nil {
		status := string(d.Medication.Status)
		medicationStatus = &status
		if d.Medication.Reason != "" {
			reason := d.Medication.Reason
			medicationReason = &reason
		}
	}

	out := &model.DiaryEntry{
		Id:               d.Id,
		UserId:           d.UserId,
		EntryDate:        d.EntryDate,
		Mood:             d.Mood,
		Energy:           d.Energy,
		Relationship:     d.Relationship,
		Achievement:      d.Achievement,
		Emotions:         datatypes.JSON(emotionsJson),
		Content:          d.Content,
		MedicationStatus: medicationStatus,
		MedicationReason: medicationReason,
		CreatedAt:        d.CreatedAt,
		DeletedAt:        deletedAt,
	}
	if d.UpdatedAt != nil {
		out.UpdatedAt = *d.UpdatedAt
	}
	return out
}

func (m *DiaryMapper) ToEntities(models []*model.DiaryEntry) []*entity.DiaryEntry {
	entities := make([]*entity.DiaryEntry, 0, len(models))
	for _, d := range models {
		entities = append(entities, m.ToEntity(d))
	}
	return entities
}

// dedupeTags collapses duplicate emotion tags while keeping first-seen order.
func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
