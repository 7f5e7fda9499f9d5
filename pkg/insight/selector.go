package insight

import "strings"

// seedDelimiter joins seed parts before hashing. Changing it changes every
// selection, so it is fixed forever.
const seedDelimiter = "|"

// StableHash maps text to an unsigned 32-bit integer with a rolling x31+rune
// polynomial. The only contract is stability: the same string yields the same
// value across runs, processes and reimplementations. Not collision-free, not
// cryptographic - never use it for anything security-sensitive.
func StableHash(text string) uint32 {
	var h uint32
	for _, r := range text {
		h = h*31 + uint32(r)
	}
	return h
}

// PickDeterministic selects one candidate reproducibly from the seed parts:
// join with a fixed delimiter, hash, index by hash mod len. For a fixed seed and
// an order-stable candidate list the result is constant forever. Editing the
// catalog length reshuffles all future selections; no stability is promised
// across catalog edits. An empty candidate list yields the zero value.
func PickDeterministic[T any](seedParts []string, candidates []T) T {
	var zero T
	if len(candidates) == 0 {
		return zero
	}
	h := StableHash(strings.Join(seedParts, seedDelimiter))
	return candidates[int(h%uint32(len(candidates)))]
}
