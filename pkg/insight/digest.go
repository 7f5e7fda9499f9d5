package insight

import (
	"fmt"
	"sort"
	"strings"
)

// ComposeDigest renders the records falling inside the window as one
// self-contained plain-text block, the sole artifact handed to the external
// counseling model. One line per record, date ascending: date key, every
// dimension as name=value, the tag set (or an explicit "(none)" marker), the
// free text, and - only when the adherence flag is on - the medication status
// and reason. Embedded newlines are collapsed so a single record can never
// masquerade as several. An empty record set yields an empty string.
func ComposeDigest(records []Record, w Window, flags FeatureFlags) string {
	inWindow := make([]Record, 0, len(records))
	for _, r := range records {
		if w.Contains(r.Date) {
			inWindow = append(inWindow, r)
		}
	}
	if len(inWindow) == 0 {
		return ""
	}

	sort.SliceStable(inWindow, func(i, j int) bool {
		return inWindow[i].Date.Before(inWindow[j].Date)
	})

	var b strings.Builder
	for i, r := range inWindow {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(DateKey(r.Date))
		for _, d := range r.Dimensions {
			fmt.Fprintf(&b, " %s=%d", d.Name, ClampRating(d.Value))
		}
		if len(r.Tags) > 0 {
			fmt.Fprintf(&b, " tags=%s", strings.Join(r.Tags, ","))
		} else {
			b.WriteString(" tags=(none)")
		}
		if text := flattenText(r.FreeText); text != "" {
			b.WriteString(" | ")
			b.WriteString(text)
		}
		if flags.IncludeAdherence && r.Adherence != nil {
			fmt.Fprintf(&b, " | medication=%s", r.Adherence.Status)
			if reason := flattenText(r.Adherence.Reason); reason != "" {
				fmt.Fprintf(&b, " (%s)", reason)
			}
		}
	}
	return b.String()
}

// flattenText collapses internal hard returns into single spaces.
func flattenText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
