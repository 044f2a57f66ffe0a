package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ByLCY/songbook/config"
	"github.com/ByLCY/songbook/store"
)

const bookConfig = `{
  "songsDir": "songs",
  "output": "out/book.pdf",
  "database": "state/songbook.db",
  "offline": true,
  "meta": {"title": "Camp Songs"},
  "sections": [
    ["Evening", ["Zulu Song", "Alpha Song", "Not There"], true]
  ],
  "indexCategories": ["Fire"]
}`

func writeBook(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	songs := filepath.Join(dir, "songs")
	if err := os.MkdirAll(songs, 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"songbook.json":        bookConfig,
		"songs/zulu_song.cho":  "{title: Zulu Song}\n{category: Fire}\n\n[Am]Night is [E]falling\n[C]over the [G]camp\n",
		"songs/alpha_song.cho": "{title: Alpha Song}\n{meta: alt_title First Light}\n\n[D]Morning [Q7]comes\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return filepath.Join(dir, "songbook.json")
}

func testApp(t *testing.T, cfgPath string, g Globals) *app {
	t.Helper()
	cfg, err := config.Parse(mustRead(t, cfgPath), filepath.Dir(cfgPath))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a, err := configure(cfg, &g)
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	return a
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestBuildOffline(t *testing.T) {
	ctx := context.Background()
	cfgPath := writeBook(t)
	a := testApp(t, cfgPath, Globals{})
	db, err := a.openStore()
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer db.Close()

	debugPath := filepath.Join(filepath.Dir(cfgPath), "debug", "layout.json")
	b, err := a.build(ctx, db, debugPath)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	pdf := mustRead(t, b.Output)
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if b.Hash != store.Hash(pdf) {
		t.Fatalf("recorded hash does not match output")
	}
	if b.Songs != 2 || len(b.Skipped) != 1 || b.Skipped[0] != "Not There" {
		t.Fatalf("build = %+v", b)
	}
	if b.Pages < 2 {
		t.Fatalf("expected song pages followed by chords and index, got %d", b.Pages)
	}
	if !strings.Contains(string(mustRead(t, debugPath)), "Alpha Song") {
		t.Fatalf("debug json missing song")
	}

	last, err := db.LastBuild(ctx)
	if err != nil || last.ID != b.ID || last.Backend != config.BackendFPDF {
		t.Fatalf("LastBuild = %+v, %v", last, err)
	}
}

func TestBuildCanvasBackend(t *testing.T) {
	cfgPath := writeBook(t)
	a := testApp(t, cfgPath, Globals{Backend: "canvas"})
	b, err := a.build(context.Background(), nil, "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if b.Backend != config.BackendCanvas || b.ID != "" {
		t.Fatalf("build = %+v", b)
	}
	if !bytes.HasPrefix(mustRead(t, b.Output), []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestConfigureOverrides(t *testing.T) {
	cfg := config.Default()
	if _, err := configure(cfg, &Globals{Backend: "svg"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
	cfg = config.Default()
	a, err := configure(cfg, &Globals{Backend: "canvas", Offline: true})
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	if a.cfg.Backend != config.BackendCanvas || !a.cfg.Offline {
		t.Fatalf("overrides not applied: %+v", a.cfg)
	}
}

func TestCheckChords(t *testing.T) {
	cfgPath := writeBook(t)
	a := testApp(t, cfgPath, Globals{})
	cat, err := a.cfg.Catalogue()
	if err != nil {
		t.Fatal(err)
	}
	missing, err := a.checkChords(context.Background(), nil, cat)
	if err != nil {
		t.Fatalf("checkChords: %v", err)
	}
	if strings.Join(missing, ",") != "Q7" {
		t.Fatalf("missing = %v", missing)
	}
}

func TestCollatorOrdersUkrainian(t *testing.T) {
	a := &app{cfg: config.Default()}
	c := a.collator()
	// і follows и and precedes к, unlike byte order
	if c.CompareString("ірій", "кіт") >= 0 {
		t.Fatalf("і should sort before к")
	}
	if c.CompareString("Ґанок", "Дім") >= 0 {
		t.Fatalf("Ґ should sort before Д")
	}
}

func TestFormatFrets(t *testing.T) {
	if got := formatFrets([6]int{-1, 0, 2, 2, 1, 0}); got != "x 0 2 2 1 0" {
		t.Fatalf("formatFrets = %q", got)
	}
}

func TestDebouncer(t *testing.T) {
	var calls atomic.Int32
	d := newDebouncer(50*time.Millisecond, func() { calls.Add(1) })
	for i := 0; i < 5; i++ {
		d.Trigger()
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(300 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Fatalf("expected one call, got %d", n)
	}

	d.Trigger()
	d.Stop()
	time.Sleep(150 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Fatalf("stopped trigger fired, calls = %d", n)
	}
}

func TestClassify(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	songs := filepath.Join(dir, "songs")
	if err := os.MkdirAll(songs, 0o755); err != nil {
		t.Fatal(err)
	}
	db, err := store.Open(filepath.Join(dir, "songbook.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	sheet := filepath.Join(songs, "a.cho")
	if err := os.WriteFile(sheet, []byte("{title: A}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := seedHashes(ctx, db, songs); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "songbook.json")

	check := func(ev fsnotify.Event, want watchAction) {
		t.Helper()
		got, err := classify(ctx, db, ev, cfgPath, songs)
		if err != nil || got != want {
			t.Fatalf("classify(%v) = %v, %v want %v", ev, got, err, want)
		}
	}
	check(fsnotify.Event{Name: sheet, Op: fsnotify.Write}, actionIgnore)
	if err := os.WriteFile(sheet, []byte("{title: B}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	check(fsnotify.Event{Name: sheet, Op: fsnotify.Write}, actionRebuild)
	check(fsnotify.Event{Name: sheet, Op: fsnotify.Chmod}, actionIgnore)
	check(fsnotify.Event{Name: sheet, Op: fsnotify.Remove}, actionRebuild)
	check(fsnotify.Event{Name: filepath.Join(songs, "notes.txt"), Op: fsnotify.Write}, actionIgnore)
	check(fsnotify.Event{Name: cfgPath, Op: fsnotify.Write}, actionReload)
	check(fsnotify.Event{Name: filepath.Join(dir, "other.json"), Op: fsnotify.Write}, actionIgnore)
}
