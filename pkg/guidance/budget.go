package guidance

// PromptCeiling caps how many times an assistive prompt may be injected into a
// single owner's entry per day.
const PromptCeiling = 3

// Budget is a snapshot of the per-owner-per-day injection counter. The counter
// itself is persisted by an external store; this type only decides eligibility
// and computes the next count to persist. Read-then-write with last-write-wins
// is accepted by the caller - the ceiling is small and a lost increment is
// harmless.
type Budget struct {
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
	Ceiling   int `json:"ceiling"`
}

// NewBudget builds a snapshot from the externally stored count. Negative counts
// read back from a corrupted store are normalized to zero rather than rejected.
func NewBudget(used int) Budget {
	if used < 0 {
		used = 0
	}
	remaining := PromptCeiling - used
	if remaining < 0 {
		remaining = 0
	}
	return Budget{Used: used, Remaining: remaining, Ceiling: PromptCeiling}
}

// CanInject reports whether one more injection is allowed today.
func (b Budget) CanInject() bool {
	return b.Used < b.Ceiling
}

// NextUsed is the count the caller should persist after a successful injection.
func (b Budget) NextUsed() int {
	return b.Used + 1
}
