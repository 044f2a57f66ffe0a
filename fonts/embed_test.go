package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	for _, name := range Names() {
		data, err := Load(EmbedPrefix+name, "")
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("font %s is empty", name)
		}
	}
}

func TestLoadMissingEmbedded(t *testing.T) {
	_, err := Load("embed:nope", "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadRelativePath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "font.ttf"), []byte("data"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := Load("font.ttf", dir)
	if err != nil || string(data) != "data" {
		t.Fatalf("Load = %q, %v", data, err)
	}
}

func TestFallbackStyles(t *testing.T) {
	regular := Fallback("")
	bold := Fallback("B")
	if len(regular) == 0 || len(bold) == 0 {
		t.Fatalf("fallback fonts must not be empty")
	}
	if &regular[0] == &bold[0] {
		t.Fatalf("bold fallback should differ from regular")
	}
	if &Fallback("IB")[0] != &Fallback("BI")[0] {
		t.Fatalf("style letters should be order independent")
	}
}

func TestUnicodeStyles(t *testing.T) {
	regular, bold := Unicode(""), Unicode("b")
	if len(regular) == 0 || &regular[0] == &bold[0] {
		t.Fatalf("unicode fonts should differ per style")
	}
	if &Unicode("IB")[0] != &Unicode("BI")[0] {
		t.Fatalf("style letters should be order independent")
	}
	data, err := Load(EmbedPrefix+"go-regular", "")
	if err != nil || &data[0] != &regular[0] {
		t.Fatalf("go-regular should be loadable by name: %v", err)
	}
}
