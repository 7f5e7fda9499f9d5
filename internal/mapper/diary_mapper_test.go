package mapper

import (
	"testing"
	"time"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/entity"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestDiaryMapperRoundTrip(t *testing.T) {
	m := NewDiaryMapper()

	now := time.Now()
	in := &entity.DiaryEntry{
		Id:           uuid.New(),
		UserId:       uuid.New(),
		EntryDate:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local),
		Mood:         8,
		Energy:       7,
		Relationship: 6,
		Achievement:  5,
		Emotions:     []string{"joy", "calm"},
		Content:      "good day",
		Medication: &entity.MedicationRecord{
			Status: entity.MedicationTaken,
			Reason: "",
		},
		CreatedAt: now,
	}

	out := m.ToEntity(m.ToModel(in))

	assert.Equal(t, in.Id, out.Id)
	assert.Equal(t, in.Mood, out.Mood)
	assert.Equal(t, []string{"joy", "calm"}, out.Emotions)
	assert.Equal(t, "good day", out.Content)
	assert.NotNil(t, out.Medication)
	assert.Equal(t, entity.MedicationTaken, out.Medication.Status)
	assert.Empty(t, out.Medication.Reason)
	assert.False(t, out.IsDeleted)
}

func TestDiaryMapperDedupesTags(t *testing.T) {
	m := NewDiaryMapper()

	in := &entity.DiaryEntry{
		Id:       uuid.New(),
		Emotions: []string{"joy", "calm", "joy", "tired", "calm"},
	}

	out := m.ToEntity(m.ToModel(in))
	assert.Equal(t, []string{"joy", "calm", "tired"}, out.Emotions)
}

func TestDiaryMapperCorruptEmotionsDegradesToNone(t *testing.T) {
	m := NewDiaryMapper()

	d := &model.DiaryEntry{
		Id:       uuid.New(),
		Emotions: datatypes.JSON([]byte(`{not valid json`)),
	}

	out := m.ToEntity(d)
	assert.Empty(t, out.Emotions)
}

func TestDiaryMapperNilMedication(t *testing.T) {
	m := NewDiaryMapper()

	in := &entity.DiaryEntry{Id: uuid.New(), Mood: 5}
	mod := m.ToModel(in)

	assert.Nil(t, mod.MedicationStatus)
	assert.Nil(t, mod.MedicationReason)
	assert.Nil(t, m.ToEntity(mod).Medication)
}
