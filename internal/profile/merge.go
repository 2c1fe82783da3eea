package profile

import "strings"

// stylingPlaceholders are sentences that count as "not yet styled" when
// deciding whether an AI suggestion may overwrite the styling sentence.
var stylingPlaceholders = map[string]bool{
	"":             true,
	"keine angabe": true,
	"noch offen":   true,
}

func stylingBlank(s string) bool {
	return stylingPlaceholders[strings.ToLower(strings.TrimSpace(s))]
}

// MergeSuggestion applies an AI bulk-styling suggestion to an area. An
// existing non-placeholder styling sentence is preserved; list fields are
// set-unioned with the existing lists, existing entries first.
func MergeSuggestion(area ValouArea, s ValouSuggestion) ValouArea {
	out := area
	if stylingBlank(area.StylingSatz) && !stylingBlank(s.StylingSatz) {
		out.StylingSatz = strings.TrimSpace(s.StylingSatz)
	}
	out.Vorlieben = unionStrings(area.Vorlieben, s.Vorlieben)
	out.Abneigungen = unionStrings(area.Abneigungen, s.Abneigungen)
	out.MustHaves = unionStrings(area.MustHaves, s.MustHaves)
	out.NoGos = unionStrings(area.NoGos, s.NoGos)
	return out
}

// unionStrings returns existing ∪ added with duplicates removed. The result
// never aliases the inputs.
func unionStrings(existing, added []string) []string {
	seen := make(map[string]bool, len(existing)+len(added))
	out := make([]string, 0, len(existing)+len(added))
	for _, lst := range [][]string{existing, added} {
		for _, v := range lst {
			v = strings.TrimSpace(v)
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
