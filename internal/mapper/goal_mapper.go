package mapper

import (
	"time"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/entity"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/model"

	"gorm.io/gorm"
)

type GoalMapper struct{}

func NewGoalMapper() *GoalMapper {
	return &GoalMapper{}
}

func (m *GoalMapper) ToEntity(g *model.GoalEntry) *entity.GoalEntry {
	if g == nil {
		return nil
	}

	var deletedAt *time.Time
	if g.DeletedAt.Valid {
		t := g.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !g.UpdatedAt.IsZero() {
		t := g.UpdatedAt
		updatedAt = &t
	}

	return &entity.GoalEntry{
		Id:        g.Id,
		UserId:    g.UserId,
		EntryDate: g.EntryDate,
		Title:     g.Title,
		Progress:  g.Progress,
		Note:      g.Note,
		CreatedAt: g.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: g.DeletedAt.Valid,
	}
}

func (m *GoalMapper) ToModel(g *entity.GoalEntry) *model.GoalEntry {
	if g == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if g.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *g.DeletedAt, Valid: true}
	}

	out := &model.GoalEntry{
		Id:        g.Id,
		UserId:    g.UserId,
		EntryDate: g.EntryDate,
		Title:     g.Title,
		Progress:  g.Progress,
		Note:      g.Note,
		CreatedAt: g.CreatedAt,
		DeletedAt: deletedAt,
	}
	if g.UpdatedAt != nil {
		out.UpdatedAt = *g.UpdatedAt
	}
	return out
}

func (m *GoalMapper) ToEntities(models []*model.GoalEntry) []*entity.GoalEntry {
	entities := make([]*entity.GoalEntry, 0, len(models))
	for _, g := range models {
		entities = append(entities, m.ToEntity(g))
	}
	return entities
}
