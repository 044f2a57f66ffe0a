package dsl_test

import (
	"strings"
	"testing"

	"github.com/ByLCY/songbook/dsl"
)

const sampleSheet = `## Saved from WIKISPIV.com
{title: Ой у лузі червона калина}
{meta: alt_title Червона калина}
{subtitle: Сл. С. Чарнецький}
{category: patriotic}
{category: ignored}
{key: Am}

[Am]Ой у лузі [E]червона калина
	[Am]похилилася

<bold>Приспів:</bold>
А ми [(C)]тую червону калину
`

func TestParseSheet(t *testing.T) {
	song, diags, err := dsl.ParseReader(strings.NewReader(sampleSheet), dsl.ParseOptions{
		Title:      "external title",
		Categories: []string{"patriotic"},
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if song.Title != "Ой у лузі червона калина" {
		t.Fatalf("title from file should win, got %q", song.Title)
	}
	if len(song.AltTitles) != 1 || song.AltTitles[0] != "Червона калина" {
		t.Fatalf("unexpected alt titles %v", song.AltTitles)
	}
	if len(song.Categories) != 1 || song.Categories[0] != "patriotic" {
		t.Fatalf("unexpected categories %v", song.Categories)
	}
	if len(song.Meta) != 3 {
		t.Fatalf("expected title, alt title and subtitle meta, got %d", len(song.Meta))
	}
	if song.Meta[2].Tag != dsl.TagSubtitle {
		t.Fatalf("expected subtitle, got %v", song.Meta[2].Tag)
	}

	var unsupported int
	for _, d := range diags {
		if d.Kind == dsl.UnsupportedDirective {
			unsupported++
		}
	}
	if unsupported != 1 {
		t.Fatalf("expected one unsupported directive, got %v", diags)
	}

	// 首个空行被丢弃
	if len(song.Lyrics) != 5 {
		t.Fatalf("expected 5 lyric lines, got %d", len(song.Lyrics))
	}
	first := song.Lyrics[0]
	if first.Text() != "Ой у лузі червона калина" {
		t.Fatalf("unexpected text %q", first.Text())
	}
	if len(first.Segments) != 2 || first.Segments[0].Chord != "Am" || first.Segments[1].Chord != "E" {
		t.Fatalf("unexpected segments %+v", first.Segments)
	}
	if !song.Lyrics[1].Indented {
		t.Fatalf("tab-prefixed line should be indented")
	}
	if !song.Lyrics[2].IsBlank() {
		t.Fatalf("expected verse separator")
	}
	if !song.Lyrics[3].Bold || song.Lyrics[3].Text() != "Приспів:" {
		t.Fatalf("bold line not unwrapped: %+v", song.Lyrics[3])
	}

	chords := song.Chords()
	if strings.Join(chords, ",") != "Am,E,C" {
		t.Fatalf("unexpected chord set %v", chords)
	}
}

func TestClassifyLine(t *testing.T) {
	cases := []struct {
		raw  string
		kind dsl.LineKind
		tag  dsl.DirectiveTag
		args string
	}{
		{"# comment", dsl.LineComment, dsl.TagUnknown, ""},
		{"{title: Song}", dsl.LineDirective, dsl.TagTitle, "Song"},
		{"{title Song}", dsl.LineDirective, dsl.TagTitle, "Song"},
		{"{meta: alt_title Other}", dsl.LineDirective, dsl.TagAltTitle, "Other"},
		{"{meta: song_number 12}", dsl.LineUnsupported, dsl.TagUnknown, "12"},
		{"{category:camp}", dsl.LineDirective, dsl.TagCategory, "camp"},
		{"[G]plain words", dsl.LineLyric, dsl.TagUnknown, ""},
		{"", dsl.LineLyric, dsl.TagUnknown, ""},
	}
	for _, c := range cases {
		got := dsl.ClassifyLine(c.raw)
		if got.Kind != c.kind || got.Tag != c.tag {
			t.Fatalf("%q: got kind=%v tag=%v", c.raw, got.Kind, got.Tag)
		}
		if c.kind != dsl.LineLyric && c.kind != dsl.LineComment && got.Args != c.args {
			t.Fatalf("%q: args %q, want %q", c.raw, got.Args, c.args)
		}
	}
}

func TestParseLyricPreservesText(t *testing.T) {
	lines := []string{
		"no chords at all",
		"[C]start [G]middle [Am]",
		"lead in [D7]and out",
		"broken [bracket",
		"[F][G]stacked",
	}
	for _, raw := range lines {
		line := dsl.ParseLyric(raw)
		want := strings.TrimSpace(raw)
		for _, seg := range line.Segments {
			if seg.Chord != "" {
				want = strings.Replace(want, "["+seg.Chord+"]", "", 1)
			}
		}
		if line.Text() != want {
			t.Fatalf("%q: text %q, want %q", raw, line.Text(), want)
		}
	}

	plain := dsl.ParseLyric("no chords at all")
	if len(plain.Segments) != 1 || plain.HasChords() {
		t.Fatalf("plain line should be a single segment: %+v", plain.Segments)
	}
	stacked := dsl.ParseLyric("[F][G]stacked")
	if len(stacked.Segments) != 2 || stacked.Segments[0].Text != "" || stacked.Segments[1].Text != "stacked" {
		t.Fatalf("unexpected stacked segments %+v", stacked.Segments)
	}
}

func TestLeadingBlankOnlyDroppedOnce(t *testing.T) {
	song, _ := dsl.ParseSheet([]string{"{title: T}", "", "", "la"}, dsl.ParseOptions{})
	if len(song.Lyrics) != 2 {
		t.Fatalf("expected one blank line to survive, got %d lines", len(song.Lyrics))
	}
}

func TestLookupTagIsTotal(t *testing.T) {
	if dsl.LookupTag("TITLE") != dsl.TagTitle {
		t.Fatalf("lookup should be case-insensitive")
	}
	if dsl.LookupTag("chorus") != dsl.TagUnknown {
		t.Fatalf("unknown names map to TagUnknown")
	}
}
