package insight

import "time"

// Record is the unit the engine consumes. It is a read-only snapshot built by the
// caller from persisted entries; the engine never mutates one.
type Record struct {
	OwnerKey string
	Date     time.Time

	// Primary is the representative 1-10 rating feeding scores and heat tiers
	// (mood for diary entries, progress for goal check-ins).
	Primary int

	// Dimensions holds every named rating in display order for digest rendering.
	Dimensions []Dimension

	Tags     []string
	FreeText string

	// Adherence is the optional medication sub-record. It participates in digests
	// only when the feature flag is on.
	Adherence *Adherence
}

type Dimension struct {
	Name  string
	Value int
}

type Adherence struct {
	Status string // "taken" | "partial" | "skipped"
	Reason string
}

// FeatureFlags toggles optional fields in composed output.
type FeatureFlags struct {
	IncludeAdherence bool
}
