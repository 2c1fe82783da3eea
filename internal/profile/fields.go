package profile

import (
	"fmt"
	"strings"
)

// SetField updates one addressable profile field by dotted key. Used by the
// PATCH endpoint and the MCP tool so both surfaces share one key naming.
func (d *Document) SetField(key, value string) error {
	switch key {
	case "personal.beruf":
		d.Personal.Beruf = value
	case "personal.berufserfahrung":
		d.Personal.Berufserfahrung = value
	case "personal.ausbildung":
		d.Personal.Ausbildung = value
	case "personal.hobbys":
		d.Personal.Hobbys = value
	case "personal.lebensmotto":
		d.Personal.Lebensmotto = value
	case "identity.staerken":
		d.Identity.Staerken = value
	case "identity.schwaechen":
		d.Identity.Schwaechen = value
	case "identity.werte":
		d.Identity.Werte = value
	case "identity.interessen":
		d.Identity.Interessen = value
	case "identity.ziele":
		d.Identity.Ziele = value
	case "jobsearch.region":
		d.JobSearch.Preferences.Region = value
	case "jobsearch.employment_type":
		d.JobSearch.Preferences.EmploymentType = value
	case "jobsearch.keywords":
		d.JobSearch.Preferences.Keywords = splitCSV(value)
	default:
		return fmt.Errorf("unknown profile field %q", key)
	}
	return nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
