package insight

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diaryRec(date time.Time, mood, energy int, tags []string, text string) Record {
	return Record{
		Date:    date,
		Primary: mood,
		Dimensions: []Dimension{
			{Name: "mood", Value: mood},
			{Name: "energy", Value: energy},
		},
		Tags:     tags,
		FreeText: text,
	}
}

func TestComposeDigestEmpty(t *testing.T) {
	w := TrailingWindow(day(2024, time.May, 7), 7)
	assert.Equal(t, "", ComposeDigest(nil, w, FeatureFlags{}))
	assert.Equal(t, "", ComposeDigest([]Record{}, w, FeatureFlags{}))

	// Records entirely outside the window compose to nothing as well.
	outside := []Record{diaryRec(day(2024, time.April, 1), 5, 5, nil, "old")}
	assert.Equal(t, "", ComposeDigest(outside, w, FeatureFlags{}))
}

func TestComposeDigestLines(t *testing.T) {
	records := []Record{
		diaryRec(day(2024, time.May, 2), 3, 4, nil, "rough day"),
		diaryRec(day(2024, time.May, 1), 8, 7, []string{"joy", "calm"}, "walked by the river"),
	}
	w := TrailingWindow(day(2024, time.May, 7), 7)

	digest := ComposeDigest(records, w, FeatureFlags{})
	lines := strings.Split(digest, "\n")
	require.Len(t, lines, 2)

	// Date ascending regardless of input order.
	assert.Equal(t, "2024-05-01 mood=8 energy=7 tags=joy,calm | walked by the river", lines[0])
	assert.Equal(t, "2024-05-02 mood=3 energy=4 tags=(none) | rough day", lines[1])
}

func TestComposeDigestCollapsesNewlines(t *testing.T) {
	records := []Record{
		diaryRec(day(2024, time.May, 1), 5, 5, nil, "first line\nsecond line\r\nthird"),
	}
	w := TrailingWindow(day(2024, time.May, 7), 7)

	digest := ComposeDigest(records, w, FeatureFlags{})
	assert.NotContains(t, digest, "\n")
	assert.Contains(t, digest, "first line second line third")
}

func TestComposeDigestAdherenceFlag(t *testing.T) {
	r := diaryRec(day(2024, time.May, 1), 5, 5, nil, "ok")
	r.Adherence = &Adherence{Status: "skipped", Reason: "forgot the refill"}
	w := TrailingWindow(day(2024, time.May, 7), 7)

	withoutFlag := ComposeDigest([]Record{r}, w, FeatureFlags{})
	assert.NotContains(t, withoutFlag, "medication")

	withFlag := ComposeDigest([]Record{r}, w, FeatureFlags{IncludeAdherence: true})
	assert.Contains(t, withFlag, "medication=skipped (forgot the refill)")
}

func TestComposeDigestClampsDimensions(t *testing.T) {
	r := Record{
		Date:       day(2024, time.May, 1),
		Primary:    99,
		Dimensions: []Dimension{{Name: "mood", Value: 99}},
	}
	w := TrailingWindow(day(2024, time.May, 7), 7)

	digest := ComposeDigest([]Record{r}, w, FeatureFlags{})
	assert.Contains(t, digest, "mood=10")
}
