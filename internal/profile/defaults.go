package profile

// The six fixed Valou life areas, in display order.
const (
	AreaArbeit          = "arbeit"
	AreaPrivatleben     = "privatleben"
	AreaRessourcen      = "ressourcen"
	AreaPersoenlichkeit = "persoenlichkeit"
	AreaStilWirkung     = "stilWirkung"
	AreaGesundheit      = "gesundheit"
)

var valouAreaTitles = []struct {
	ID    string
	Title string
}{
	{AreaArbeit, "Arbeit & Tätigkeit"},
	{AreaPrivatleben, "Privates Leben"},
	{AreaRessourcen, "Ressourcen"},
	{AreaPersoenlichkeit, "Persönlichkeit & Skills"},
	{AreaStilWirkung, "Stil & Wirkung"},
	{AreaGesundheit, "Gesundheit"},
}

// ValouAreaIDs returns the fixed area ids in display order.
func ValouAreaIDs() []string {
	ids := make([]string, len(valouAreaTitles))
	for i, a := range valouAreaTitles {
		ids[i] = a.ID
	}
	return ids
}

// NewDocument creates the all-empty default document a first-time user sees.
func NewDocument() Document {
	areas := make([]ValouArea, 0, len(valouAreaTitles))
	for _, a := range valouAreaTitles {
		areas = append(areas, ValouArea{ID: a.ID, Title: a.Title})
	}
	return Document{Valou: areas}
}

// Area returns the Valou area with the given id, if present.
func (d Document) Area(id string) (ValouArea, bool) {
	for _, a := range d.Valou {
		if a.ID == id {
			return a, true
		}
	}
	return ValouArea{}, false
}
