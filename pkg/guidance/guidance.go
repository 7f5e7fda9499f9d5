package guidance

import (
	"math/rand"
	"strings"

	"github.com/kangsm1989-hue/ai-counsel-web/pkg/insight"
)

// GuestOwnerKey is the seed token substituted for an empty owner key, so guest
// sessions still get a stable daily selection.
const GuestOwnerKey = "guest"

func ownerSeed(ownerKey string) string {
	if ownerKey == "" {
		return GuestOwnerKey
	}
	return ownerKey
}

// SelectDaily picks today's advice/mission pair for an owner. Same (date, owner)
// always yields the same template, across devices and restarts, with no stored
// selection record.
func SelectDaily(dateKey, ownerKey string) Template {
	return SelectDailyFrom(dateKey, ownerKey, Catalog)
}

// SelectDailyFrom is SelectDaily over an explicit catalog, used by tests.
func SelectDailyFrom(dateKey, ownerKey string, catalog []Template) Template {
	return insight.PickDeterministic([]string{dateKey, ownerSeed(ownerKey)}, catalog)
}

// PickPrompt chooses a writing prompt to inject into the user's free-text
// buffer. Prompts the buffer already contains are skipped so the user is not
// handed the same nudge twice; among the remainder the pick is deterministic per
// (date, owner, buffer-progress). Only when every prompt is already present does
// it fall back to a uniform random pick over the full catalog - a content-variety
// heuristic, the one place true randomness is acceptable here.
func PickPrompt(dateKey, ownerKey, buffer string, catalog []Template) string {
	if len(catalog) == 0 {
		return ""
	}

	fresh := make([]string, 0, len(catalog))
	used := 0
	for _, t := range catalog {
		if t.Prompt == "" {
			continue
		}
		if strings.Contains(buffer, t.Prompt) {
			used++
			continue
		}
		fresh = append(fresh, t.Prompt)
	}

	if len(fresh) > 0 {
		// Folding the used count into the seed moves the pick forward as the
		// buffer absorbs earlier prompts within the same day.
		seed := []string{dateKey, ownerSeed(ownerKey), strings.Repeat("*", used)}
		return insight.PickDeterministic(seed, fresh)
	}

	return catalog[rand.Intn(len(catalog))].Prompt
}
