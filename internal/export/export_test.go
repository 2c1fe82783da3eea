package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestText(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "reports", "riasec.md")
	written, err := Text("## Report\nInhalt.", path)
	if err != nil || !written {
		t.Fatalf("expected a write, got written=%v err=%v", written, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if string(data) != "## Report\nInhalt." {
		t.Errorf("unexpected file content: %q", data)
	}
}

func TestText_SkipsErrorsAndBlank(t *testing.T) {
	dir := t.TempDir()
	for _, content := range []string{"", "   ", "Fehler: timeout", "  Fehler: kein Schlüssel"} {
		path := filepath.Join(dir, "out.md")
		written, err := Text(content, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if written {
			t.Errorf("content %q must not be exported", content)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("file created for %q", content)
		}
	}
}
