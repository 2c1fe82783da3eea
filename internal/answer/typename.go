package answer

import (
	"regexp"
	"strings"
)

// The interest report is asked to name the type in bold, e.g.
// "**Gestaltender Macher-Typ**". Extraction is best effort: a report
// without a recognizable name is still a valid report.
var (
	boldTypeRe    = regexp.MustCompile(`\*\*([^*\n]*?-?Typ)\*\*`)
	headingTypeRe = regexp.MustCompile(`(?m)^#{1,3}\s+(.+?-Typ)\s*$`)
)

// ExtractTypeName pulls the coined type name out of a generated interest
// report. The second return value reports whether a name was found.
func ExtractTypeName(report string) (string, bool) {
	for _, re := range []*regexp.Regexp{boldTypeRe, headingTypeRe} {
		if m := re.FindStringSubmatch(report); m != nil {
			name := strings.TrimSpace(m[1])
			if name != "" && len(name) <= 80 {
				return name, true
			}
		}
	}
	return "", false
}
