package layout

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/ByLCY/songbook/dsl"
)

func firstRun(t *testing.T, e *engine, page int) TextRun {
	t.Helper()
	acc := e.page.accs[page-1]
	if len(acc.texts) == 0 {
		t.Fatalf("page %d is empty", page)
	}
	return acc.texts[0]
}

func TestPlaceSongStartsNewPageWhenItDoesNotFit(t *testing.T) {
	e := newTestEngine(t)
	e.page.SetY(500)

	page, err := e.placeSong(makeSong("Late", repeatLines("la", 10)...))
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if page != 2 {
		t.Fatalf("song should start on page 2, got %d", page)
	}
	if run := firstRun(t, e, 2); run.Content != "Late" || run.Y != e.cfg.Margin.Top {
		t.Fatalf("title run = %+v", run)
	}
	if len(e.page.accs[0].texts) != 0 {
		t.Fatalf("nothing should be drawn on page 1")
	}
}

func TestPlaceSongCentersIntoSmallGap(t *testing.T) {
	e := newTestEngine(t)
	cfg := e.cfg
	before := 300.0
	e.page.SetY(before)

	song := makeSong("Centered", repeatLines("la", 10)...)
	meta, lyrics := e.measureSong(song)
	height := meta + lyrics.Height
	free := cfg.PageHeight - (before + height) - cfg.Margin.Bottom
	if free > cfg.MinImageHeight || free < 0 {
		t.Fatalf("fixture should leave a small gap, free=%.2f", free)
	}

	if _, err := e.placeSong(song); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	above := firstRun(t, e, 1).Y - before
	below := cfg.PageHeight - cfg.Margin.Bottom - e.page.Y()
	if math.Abs(above-below) > 1e-9 {
		t.Fatalf("gap above %.3f, below %.3f", above, below)
	}
}

func TestPlaceSongKeepsPositionWithRoomBelow(t *testing.T) {
	e := newTestEngine(t)
	e.page.SetY(100)
	if _, err := e.placeSong(makeSong("Short", "la")); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if run := firstRun(t, e, 1); run.Y != 100 {
		t.Fatalf("song moved to %.2f", run.Y)
	}
}

func TestPlaceSongAtTopIsNeverShifted(t *testing.T) {
	e := newTestEngine(t)
	song := makeSong("Tall", repeatLines("la", 40)...)
	if _, err := e.placeSong(song); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if run := firstRun(t, e, 1); run.Y != e.cfg.Margin.Top {
		t.Fatalf("song at top should stay at top, got %.2f", run.Y)
	}
}

func TestPlaceSongTooLong(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.placeSong(makeSong("Epic", repeatLines("la la la", 60)...))
	if !errors.Is(err, ErrSongTooLong) {
		t.Fatalf("expected ErrSongTooLong, got %v", err)
	}
	var tooLong *SongTooLongError
	if !errors.As(err, &tooLong) || tooLong.Title != "Epic" || tooLong.Height <= tooLong.Limit {
		t.Fatalf("unexpected error details %+v", tooLong)
	}
	if len(e.page.accs) != 1 || len(e.page.curr().texts) != 0 {
		t.Fatalf("a rejected song must not draw anything")
	}
}

func TestPlaceSongCarriesTailToNextPage(t *testing.T) {
	var buf bytes.Buffer
	e := newEngine(BuildOptions{
		Settings: DefaultSettings(),
		Measurer: stubMeasurer{},
		Logger:   slog.New(slog.NewTextHandler(&buf, nil)),
	})
	song := makeSong("Long Ballad", repeatLines("la la", 48)...)
	meta, lyrics := e.measureSong(song)
	limit := e.cfg.UsableHeight()
	if lyrics.Height > limit || meta+lyrics.Height <= limit {
		t.Fatalf("fixture: body %.1f must fit and body+title %.1f must not (limit %.1f)",
			lyrics.Height, meta+lyrics.Height, limit)
	}

	e.page.SetY(300)
	page, err := e.placeSong(song)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if page != 2 || e.page.PageNo() != 3 {
		t.Fatalf("song should start on page 2 and end on page 3, got %d..%d", page, e.page.PageNo())
	}
	if run := firstRun(t, e, 2); run.Content != "Long Ballad" || run.Y != e.cfg.Margin.Top {
		t.Fatalf("title run = %+v", run)
	}
	if len(e.page.accs[2].texts) == 0 {
		t.Fatalf("tail of the song missing from page 3")
	}
	if !strings.Contains(buf.String(), "歌曲跨页") {
		t.Fatalf("expected a page-split notice, log:\n%s", buf.String())
	}
}

func TestPlaceSongAtTopDoesNotLeaveBlankPage(t *testing.T) {
	e := newTestEngine(t)
	page, err := e.placeSong(makeSong("Long Ballad", repeatLines("la la", 48)...))
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if page != 1 || len(e.page.accs[0].texts) == 0 {
		t.Fatalf("song should start on the empty first page, got page %d", page)
	}
}

func TestRenderMetaUsesExternalTitle(t *testing.T) {
	e := newTestEngine(t)
	song, _ := dsl.ParseSheet([]string{"{subtitle: words}", "la"}, dsl.ParseOptions{Title: "From Config"})
	e.renderMeta(e.page, song)

	texts := e.page.curr().texts
	if len(texts) != 2 || texts[0].Content != "From Config" || texts[1].Content != "words" {
		t.Fatalf("unexpected meta runs %+v", texts)
	}
	if texts[1].Font != e.cfg.Fonts.Subtitle {
		t.Fatalf("subtitle font = %+v", texts[1].Font)
	}
}

func TestRenderMetaAltTitles(t *testing.T) {
	song := makeSong("Main", "{meta: alt_title Other}", "la")

	e := newTestEngine(t)
	e.renderMeta(e.page, song)
	if n := len(e.page.curr().texts); n != 1 {
		t.Fatalf("alt titles hidden by default, got %d runs", n)
	}

	e = newTestEngine(t)
	e.cfg.ShowAltTitles = true
	e.renderMeta(e.page, song)
	texts := e.page.curr().texts
	if len(texts) != 2 || texts[1].Content != "(Other)" {
		t.Fatalf("unexpected runs %+v", texts)
	}
}
