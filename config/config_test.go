package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `{
  "songsDir": "pisni",
  "output": "out/book.pdf",
  "meta": {"title": "Співаник", "author": "Пласт"},
  "sections": [
    ["Патріотичні", ["Ще не вмерла", "Червона калина"], false],
    {"name": "Таборові", "songs": ["Ватра"], "sortByName": true}
  ],
  "indexCategories": ["Таборові"],
  "fontFiles": [{"family": "DejaVu", "src": "fonts/DejaVuSans.ttf"}],
  "layout": {"pageWidth": "148mm", "margin": {"top": 40}, "maxFrets": 5},
  "fonts": {"Chord": {"size": 9, "color": [200, 0, 0]}, "body": {"family": "DejaVu"}},
  "labels": {"indexTitle": "Зміст", "fretFormat": "Лад ${fret}"},
  "chords": [
    {"name": "Hm", "alias": "Bm"},
    {"name": "Xx", "base": 3, "frets": [-1, 0, 1, 1, 1, 0]}
  ]
}`

func TestParseMergesOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig), "/books")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defaults := Default()

	if cfg.SongsDir != "pisni" || cfg.Output != "out/book.pdf" || cfg.Database != defaults.Database {
		t.Fatalf("paths not merged: %+v", cfg)
	}
	if cfg.Meta.Title != "Співаник" || cfg.Meta.Creator != "songbook" {
		t.Fatalf("meta = %+v", cfg.Meta)
	}
	if len(cfg.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(cfg.Sections))
	}
	if s := cfg.Sections[0]; s.Name != "Патріотичні" || len(s.Songs) != 2 || s.SortByName {
		t.Fatalf("tuple section = %+v", s)
	}
	if s := cfg.Sections[1]; s.Name != "Таборові" || !s.SortByName {
		t.Fatalf("object section = %+v", s)
	}

	if math.Abs(cfg.Layout.PageWidth-148*72/25.4) > 1e-9 {
		t.Fatalf("page width = %v", cfg.Layout.PageWidth)
	}
	if cfg.Layout.PageHeight != defaults.Layout.PageHeight {
		t.Fatalf("page height should stay default")
	}
	if cfg.Layout.Margin.Top != 40 || cfg.Layout.Margin.Left != defaults.Layout.Margin.Left {
		t.Fatalf("margin = %+v", cfg.Layout.Margin)
	}
	if cfg.Layout.MaxFrets != 5 {
		t.Fatalf("maxFrets = %d", cfg.Layout.MaxFrets)
	}

	chord := cfg.Layout.Fonts.Chord
	if chord.Size != 9 || chord.Color.R != 200 || chord.Family != defaults.Layout.Fonts.Chord.Family {
		t.Fatalf("chord font = %+v", chord)
	}
	if cfg.Layout.Fonts.Body.Family != "DejaVu" || cfg.Layout.Fonts.Body.Size != defaults.Layout.Fonts.Body.Size {
		t.Fatalf("body font = %+v", cfg.Layout.Fonts.Body)
	}
	if cfg.Layout.Labels.IndexTitle != "Зміст" || cfg.Layout.Labels.ChordsTitle != defaults.Layout.Labels.ChordsTitle {
		t.Fatalf("labels = %+v", cfg.Layout.Labels)
	}

	if len(cfg.Chords) != 2 || cfg.Chords[1].Frets[2] != 1 || cfg.Chords[1].Base != 3 {
		t.Fatalf("chords = %+v", cfg.Chords)
	}
	cat, err := cfg.Catalogue()
	if err != nil {
		t.Fatalf("Catalogue: %v", err)
	}
	if _, err := cat.Lookup("Xx"); err != nil {
		t.Fatalf("custom chord missing: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := cfg.Path(cfg.SongsDir); got != filepath.Join("/books", "pisni") {
		t.Fatalf("Path = %q", got)
	}
	if got := cfg.Path("/abs/out.pdf"); got != "/abs/out.pdf" {
		t.Fatalf("absolute path changed: %q", got)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	cases := []string{
		`{"songDir": "x"}`,
		`{"sections": [{"name": "a", "songz": []}]}`,
		`{"fonts": {"footer": {"size": 3}}}`,
		`{"sections": [["only", []]]}`,
		`{"chords": [{"name": "Q", "frets": [0, 0, 0]}]}`,
		`{"chords": [{"name": "Q", "alias": "C", "frets": [0, 0, 0, 0, 0, 0]}]}`,
	}
	for _, tc := range cases {
		if _, err := Parse([]byte(tc), ""); err == nil {
			t.Fatalf("expected error for %s", tc)
		}
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		json  string
		field string
	}{
		{"backend", `{"backend": "svg"}`, "backend"},
		{"margins", `{"layout": {"margin": {"left": 300, "right": 300}}}`, "layout.margin"},
		{"frets", `{"layout": {"maxFrets": 0}}`, "layout.maxFrets"},
		{"template", `{"labels": {"pageNumberFormat": "${page}/${total}"}}`, "labels.pageNumberFormat"},
		{"font size", `{"fonts": {"title": {"size": 0}}}`, "fonts.title.size"},
		{"duplicate section", `{"sections": [["A", [], false], ["A", [], true]]}`, "sections[1].name"},
		{"alias cycle", `{"chords": [{"name": "P", "alias": "Q"}, {"name": "Q", "alias": "P"}]}`, "chords"},
		{"dangling alias", `{"chords": [{"name": "P", "alias": "Nope"}]}`, "chords"},
		{"wiki url", `{"wikiUrl": "ftp://example.org"}`, "wikiUrl"},
	}
	for _, tc := range cases {
		cfg, err := Parse([]byte(tc.json), "")
		if err != nil {
			t.Fatalf("%s: Parse: %v", tc.name, err)
		}
		err = cfg.Validate()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", tc.name, err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != tc.field {
			t.Fatalf("%s: field = %v", tc.name, err)
		}
	}
}

func TestOfflineSkipsWikiURLCheck(t *testing.T) {
	cfg, err := Parse([]byte(`{"offline": true, "wikiUrl": ""}`), "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadAppliesDotEnv(t *testing.T) {
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "songbook.json")
	if err := os.WriteFile(path, []byte(`{"songsDir": "a", "output": "a.pdf"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	env := "SONGBOOK_SONGS_DIR=from-dotenv\nSONGBOOK_OUTPUT=dotenv.pdf\nSONGBOOK_OFFLINE=true\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvOutput, "process.pdf")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SongsDir != "from-dotenv" {
		t.Fatalf("SongsDir = %q", cfg.SongsDir)
	}
	if cfg.Output != "process.pdf" {
		t.Fatalf("process env should win, Output = %q", cfg.Output)
	}
	if !cfg.Offline {
		t.Fatalf("offline flag from .env ignored")
	}
	if cfg.BaseDir != dir {
		t.Fatalf("BaseDir = %q want %q", cfg.BaseDir, dir)
	}
	if _, ok := os.LookupEnv(EnvSongsDir); ok {
		t.Fatalf(".env values must not leak into the process environment")
	}
}

func TestLoadWithoutDotEnv(t *testing.T) {
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "songbook.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SongsDir != "songs" || cfg.Backend != BackendFPDF {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing config")
	}
}
