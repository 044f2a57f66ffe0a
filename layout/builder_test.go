package layout

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/ByLCY/songbook/dsl"
)

// stubMeasurer 是测试用的等宽度量：每个字符宽 size/2，行高等于字号。
type stubMeasurer struct{}

func (stubMeasurer) TextWidth(font FontSpec, s string) float64 {
	return float64(len([]rune(s))) * font.Size * 0.5
}

func (stubMeasurer) LineHeight(font FontSpec) float64 { return font.Size }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(t *testing.T) *engine {
	t.Helper()
	return newEngine(BuildOptions{
		Settings: DefaultSettings(),
		Measurer: stubMeasurer{},
		Logger:   quietLogger(),
	})
}

// makeSong 构造一首歌：每个 "" 元素是一个空行。
func makeSong(title string, lines ...string) *dsl.Song {
	sheet := append([]string{"{title: " + title + "}"}, lines...)
	song, _ := dsl.ParseSheet(sheet, dsl.ParseOptions{})
	return song
}

func repeatLines(text string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = text
	}
	return out
}

func TestBuildRequiresMeasurer(t *testing.T) {
	if _, err := Build(Book{}, BuildOptions{Settings: DefaultSettings()}); err == nil {
		t.Fatalf("expected error without measurer")
	}
}

func TestBuildEndToEnd(t *testing.T) {
	tooLong := makeSong("Too Long", repeatLines("la la la", 60)...)
	book := Book{
		Sections: []Section{
			{
				Name:       "Songs",
				SortByName: true,
				Songs: []*dsl.Song{
					makeSong("Beta", "[Am]one [E]two", "", "[C]three"),
					tooLong,
					makeSong("Alpha", "{meta: alt_title Zulu}", "[G]four", "[Cdim7]five"),
				},
			},
			{
				Name:  "Extra",
				Songs: []*dsl.Song{makeSong("Gamma", "six")},
			},
		},
	}
	res, err := Build(book, BuildOptions{
		Settings: DefaultSettings(),
		Measurer: stubMeasurer{},
		Logger:   quietLogger(),
		Meta:     DocumentMeta{Title: "Songbook"},
	})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(res.Skipped) != 1 || res.Skipped[0] != "Too Long" {
		t.Fatalf("expected the long song to be skipped, got %v", res.Skipped)
	}
	if strings.Join(res.Chords, ",") != "Am,C,Cdim7,E,G" {
		t.Fatalf("unexpected chord set %v", res.Chords)
	}
	if len(res.Index) != 2 {
		t.Fatalf("expected 2 index sections, got %d", len(res.Index))
	}
	first := res.Index[0]
	var titles []string
	for _, e := range first.Entries {
		titles = append(titles, e.Title)
	}
	if strings.Join(titles, "|") != "Alpha|Beta|Zulu (under 'Alpha')" {
		t.Fatalf("unexpected sorted index %v", titles)
	}
	if first.Entries[0].Page != 1 || first.Entries[2].Page != 1 {
		t.Fatalf("alt title entry should point to the song's page: %+v", first.Entries)
	}
	if res.Index[1].Entries[0].Page != 2 {
		t.Fatalf("second section should start on a new page, got %+v", res.Index[1].Entries)
	}

	for _, p := range res.Pages {
		last := p.Texts[len(p.Texts)-1]
		want := "- " + itoa(p.Number) + " -"
		if last.Content != want || last.Align != "center" {
			t.Fatalf("page %d footer = %+v", p.Number, last)
		}
	}

	var links int
	for _, p := range res.Pages {
		for _, l := range p.Links {
			links++
			if l.TargetPage < 1 || l.TargetPage > len(res.Pages) {
				t.Fatalf("link to missing page %d", l.TargetPage)
			}
		}
	}
	if links != 4 {
		t.Fatalf("expected one link per index entry, got %d", links)
	}
}

func TestBuildSectionWithOnlySkippedSongsAddsNoPage(t *testing.T) {
	res, err := Build(Book{
		Sections: []Section{
			{Name: "Long", Songs: []*dsl.Song{makeSong("Too Long", repeatLines("la la la", 60)...)}},
			{Name: "Short", Songs: []*dsl.Song{makeSong("Short", "la")}},
		},
	}, BuildOptions{Settings: DefaultSettings(), Measurer: stubMeasurer{}, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(res.Index[0].Entries) != 0 {
		t.Fatalf("skipped song should not be indexed: %+v", res.Index[0].Entries)
	}
	entry := res.Index[1].Entries[0]
	if entry.Title != "Short" || entry.Page != 1 {
		t.Fatalf("song after an empty section should start on page 1, got %+v", entry)
	}
	if run := res.Pages[0].Texts[0]; run.Content != "Short" || run.Y != DefaultSettings().Margin.Top {
		t.Fatalf("first run on page 1 = %+v", run)
	}
}

func TestBuildCategorySections(t *testing.T) {
	camp := makeSong("Camp", "{category: camp}", "la")
	other := makeSong("Other", "la")
	res, err := Build(Book{
		Sections:        []Section{{Name: "All", Songs: []*dsl.Song{camp, other}}},
		IndexCategories: []string{"camp", "empty"},
	}, BuildOptions{Settings: DefaultSettings(), Measurer: stubMeasurer{}, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(res.Index) != 2 {
		t.Fatalf("expected section plus one category, got %d", len(res.Index))
	}
	cat := res.Index[1]
	if cat.Name != "camp" || len(cat.Entries) != 1 || cat.Entries[0].Title != "Camp" {
		t.Fatalf("unexpected category section %+v", cat)
	}
}

func itoa(n int) string {
	const digits = "0123456789"
	if n < 10 {
		return digits[n : n+1]
	}
	return itoa(n/10) + digits[n%10:n%10+1]
}
