package service

import (
	"github.com/kangsm1989-hue/ai-counsel-web/internal/dto"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/entity"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/insight"
)

// diaryRecord converts a persisted entry into the engine's input shape. Mood is
// the primary dimension; the other three ride along for digest rendering.
func diaryRecord(e *entity.DiaryEntry) insight.Record {
	r := insight.Record{
		OwnerKey: e.UserId.String(),
		Date:     e.EntryDate,
		Primary:  e.Mood,
		Dimensions: []insight.Dimension{
			{Name: "mood", Value: e.Mood},
			{Name: "energy", Value: e.Energy},
			{Name: "relationship", Value: e.Relationship},
			{Name: "achievement", Value: e.Achievement},
		},
		Tags:     e.Emotions,
		FreeText: e.Content,
	}
	if e.Medication != nil {
		r.Adherence = &insight.Adherence{
			Status: string(e.Medication.Status),
			Reason: e.Medication.Reason,
		}
	}
	return r
}

func diaryRecords(entries []*entity.DiaryEntry) []insight.Record {
	records := make([]insight.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, diaryRecord(e))
	}
	return records
}

// goalRecord feeds goal check-ins through the same engine with progress as the
// primary rating.
func goalRecord(e *entity.GoalEntry) insight.Record {
	return insight.Record{
		OwnerKey: e.UserId.String(),
		Date:     e.EntryDate,
		Primary:  e.Progress,
		Dimensions: []insight.Dimension{
			{Name: "progress", Value: e.Progress},
		},
		FreeText: e.Note,
	}
}

func goalRecords(entries []*entity.GoalEntry) []insight.Record {
	records := make([]insight.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, goalRecord(e))
	}
	return records
}

func diaryEntryResponse(e *entity.DiaryEntry) *dto.DiaryEntryResponse {
	composite := insight.CompositeRating([]int{e.Mood, e.Energy, e.Relationship, e.Achievement})
	resp := &dto.DiaryEntryResponse{
		Id:           e.Id,
		EntryDate:    insight.DateKey(e.EntryDate),
		Mood:         e.Mood,
		Energy:       e.Energy,
		Relationship: e.Relationship,
		Achievement:  e.Achievement,
		Composite:    composite,
		Score:        insight.ScoreFromRating(e.Mood),
		Emotions:     e.Emotions,
		Content:      e.Content,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.Medication != nil {
		resp.Medication = &dto.MedicationPayload{
			Status: string(e.Medication.Status),
			Reason: e.Medication.Reason,
		}
	}
	return resp
}

func goalEntryResponse(e *entity.GoalEntry) *dto.GoalEntryResponse {
	return &dto.GoalEntryResponse{
		Id:        e.Id,
		EntryDate: insight.DateKey(e.EntryDate),
		Title:     e.Title,
		Progress:  e.Progress,
		Score:     insight.ScoreFromRating(e.Progress),
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
