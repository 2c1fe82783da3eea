package markdown

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	src := `## Deine Stärken

Du arbeitest **analytisch** und gründlich.
Das zeigt sich im Alltag.

- Genauigkeit
* Ausdauer

### Ausblick
Bleib neugierig.`

	got := Parse(src)
	want := []Node{
		{Type: NodeHeading, Level: 2, Text: "Deine Stärken"},
		{Type: NodeParagraph, Text: "Du arbeitest **analytisch** und gründlich. Das zeigt sich im Alltag."},
		{Type: NodeList, Items: []string{"Genauigkeit", "Ausdauer"}},
		{Type: NodeHeading, Level: 3, Text: "Ausblick"},
		{Type: NodeParagraph, Text: "Bleib neugierig."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v\nwant %+v", got, want)
	}
}

func TestParse_Empty(t *testing.T) {
	if got := Parse("  \n\n"); len(got) != 0 {
		t.Errorf("blank source should yield no nodes, got %+v", got)
	}
}
