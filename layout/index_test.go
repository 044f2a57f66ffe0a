package layout

import (
	"strings"
	"testing"

	"github.com/ByLCY/songbook/dsl"
)

// reverseCollator 按字节逆序比较，用于确认排序走的是注入的 collator。
type reverseCollator struct{}

func (reverseCollator) CompareString(a, b string) int { return strings.Compare(b, a) }

func TestCollectEntriesWithAltTitles(t *testing.T) {
	e := newTestEngine(t)
	placed := []placedSong{
		{song: makeSong("Main", "{meta: alt_title Second}", "{meta: alt_title Third}", "la"), page: 4},
	}
	entries := e.collectEntries(placed, true)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %+v", entries)
	}
	if entries[1].Title != "Second (under 'Main')" || entries[1].Page != 4 {
		t.Fatalf("unexpected alt entry %+v", entries[1])
	}
	if got := e.collectEntries(placed, false); len(got) != 1 {
		t.Fatalf("unsorted sections list only main titles, got %+v", got)
	}
}

func TestSortEntriesUsesCollator(t *testing.T) {
	entries := []IndexEntry{{Title: "b"}, {Title: "a"}, {Title: "c"}}
	sortEntries(entries, reverseCollator{})
	if entries[0].Title != "c" || entries[2].Title != "a" {
		t.Fatalf("unexpected order %+v", entries)
	}
}

func TestIndexEntryNeverSplitsAcrossPages(t *testing.T) {
	e := newTestEngine(t)
	cfg := e.cfg
	numberW := e.measure.TextWidth(cfg.Fonts.IndexEntry, "1234567")
	textW := cfg.UsableWidth() - numberW

	title := strings.TrimSpace(strings.Repeat("word ", 40))
	lines := wrapText(e.measure, cfg.Fonts.IndexEntry, title, textW)
	if len(lines) < 2 {
		t.Fatalf("fixture title should wrap, got %d lines", len(lines))
	}

	e.page.SetY(cfg.PageHeight - cfg.Margin.Bottom - 20)
	e.renderIndexEntry(IndexEntry{Title: title, Page: 7}, textW, numberW)

	if len(e.page.accs) != 2 {
		t.Fatalf("entry should move to a new page, got %d pages", len(e.page.accs))
	}
	if n := len(e.page.accs[0].texts); n != 0 {
		t.Fatalf("page 1 should hold no part of the entry, got %d runs", n)
	}
	acc := e.page.curr()
	if len(acc.texts) != len(lines)+1 {
		t.Fatalf("expected %d runs, got %d", len(lines)+1, len(acc.texts))
	}
	number := acc.texts[len(acc.texts)-1]
	if number.Content != "7" || number.Align != "right" || number.X != cfg.Margin.Left+textW {
		t.Fatalf("page number run = %+v", number)
	}

	rowH := cfg.Fonts.IndexEntry.Size + cfg.IndexSongPadding
	blockH := float64(len(lines)) * rowH
	if len(acc.links) != 1 {
		t.Fatalf("expected one link, got %d", len(acc.links))
	}
	link := acc.links[0]
	if link.TargetPage != 7 || link.H != blockH || link.Y != cfg.Margin.Top {
		t.Fatalf("link = %+v", link)
	}
	if e.page.Y() != cfg.Margin.Top+blockH {
		t.Fatalf("cursor at %.2f", e.page.Y())
	}
}

func TestRenderIndexContinuesOnHalfEmptyPage(t *testing.T) {
	e := newTestEngine(t)
	e.page.SetY(100)
	e.renderIndex([]IndexSection{{Name: "Songs", Entries: []IndexEntry{{Title: "One", Page: 1}}}})
	if len(e.page.accs) != 1 {
		t.Fatalf("index should continue on the current page")
	}
	if run := e.page.curr().texts[0]; run.Content != "Index" || run.Y != 100+e.cfg.SongMargin {
		t.Fatalf("title run = %+v", run)
	}

	e = newTestEngine(t)
	e.page.SetY(e.cfg.PageHeight/2 + 1)
	e.renderIndex(nil)
	if len(e.page.accs) != 2 {
		t.Fatalf("index should start a new page past the middle")
	}
}

func TestCategorySectionsSkipEmpty(t *testing.T) {
	e := newTestEngine(t)
	song := func(title string, cats ...string) *dsl.Song {
		return &dsl.Song{Title: title, Categories: cats}
	}
	placed := []placedSong{
		{song: song("Zeta", "camp"), page: 1},
		{song: song("Alpha", "camp", "war"), page: 2},
		{song: song("Mid"), page: 3},
	}
	sections := e.categorySections([]string{"camp", "none", "war"}, placed)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %+v", sections)
	}
	if sections[0].Entries[0].Title != "Alpha" || sections[0].Entries[1].Title != "Zeta" {
		t.Fatalf("category entries should be sorted, got %+v", sections[0].Entries)
	}
	if sections[1].Name != "war" || len(sections[1].Entries) != 1 {
		t.Fatalf("unexpected war section %+v", sections[1])
	}
}
