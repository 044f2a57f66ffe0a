package layout

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ByLCY/songbook/binding"
	"github.com/ByLCY/songbook/chords"
	"github.com/ByLCY/songbook/dsl"
)

// Book 是待排版的歌本。
type Book struct {
	Sections []Section
	// IndexCategories 中的每个分类在索引末尾单独成节。
	IndexCategories []string
}

// Section 是歌本中的一节，节与节之间强制换页。
type Section struct {
	Name       string
	Songs      []*dsl.Song
	SortByName bool
}

type engine struct {
	cfg       Settings
	measure   Measurer
	collator  Collator
	catalogue *chords.Catalogue
	logger    *slog.Logger
	scratch   *scratchSurface
	page      *pageCollector
}

func newEngine(opts BuildOptions) *engine {
	e := &engine{
		cfg:       opts.Settings,
		measure:   opts.Measurer,
		collator:  opts.Collator,
		catalogue: opts.Catalogue,
		logger:    opts.Logger,
	}
	if e.collator == nil {
		e.collator = bytewiseCollator{}
	}
	if e.catalogue == nil {
		e.catalogue = chords.Builtin()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	e.scratch = newScratchSurface(e.measure, e.cfg)
	e.page = newPageCollector(e.measure, e.cfg)
	return e
}

// Build 依次排版各节歌曲，随后是和弦附录与索引，最后为每页加上页码。
// 放不下的歌曲被跳过并记录在 Result.Skipped 中，不会中断整个歌本。
func Build(book Book, opts BuildOptions) (*Result, error) {
	if opts.Measurer == nil {
		return nil, fmt.Errorf("缺少文本度量实现")
	}
	if opts.Settings.PageWidth <= 0 || opts.Settings.PageHeight <= 0 {
		return nil, fmt.Errorf("页面尺寸无效: %gx%g", opts.Settings.PageWidth, opts.Settings.PageHeight)
	}
	e := newEngine(opts)

	var (
		sections []IndexSection
		all      []placedSong
		skipped  []string
	)
	chordSet := map[string]bool{}

	for _, sec := range book.Sections {
		e.logger.Info("排版分节", "section", sec.Name, "songs", len(sec.Songs))
		songs := append([]*dsl.Song(nil), sec.Songs...)
		if sec.SortByName {
			sort.SliceStable(songs, func(i, j int) bool {
				return e.collator.CompareString(songs[i].Title, songs[j].Title) < 0
			})
		}

		var placed []placedSong
		for _, song := range songs {
			if !e.page.atTop() {
				e.page.SetY(e.page.Y() + e.cfg.SongMargin)
			}
			page, err := e.placeSong(song)
			if err != nil {
				if errors.Is(err, ErrSongTooLong) {
					e.logger.Warn("歌曲过长，跳过", "title", song.Title, "error", err)
					skipped = append(skipped, song.Title)
					continue
				}
				return nil, fmt.Errorf("排版歌曲 %s 失败: %w", song.Title, err)
			}
			placed = append(placed, placedSong{song: song, page: page})
			for _, c := range song.Chords() {
				chordSet[c] = true
			}
			if accidentals := accidentalChords(song.Chords()); len(accidentals) > 0 {
				e.logger.Debug("歌曲包含升降号和弦", "title", song.Title, "chords", accidentals)
			}
		}
		if !e.page.atTop() {
			e.page.NewPage()
		}

		entries := e.collectEntries(placed, sec.SortByName)
		if sec.SortByName {
			sortEntries(entries, e.collator)
		}
		sections = append(sections, IndexSection{Name: sec.Name, Entries: entries})
		all = append(all, placed...)
	}
	sections = append(sections, e.categorySections(book.IndexCategories, all)...)

	chordNames := sortedChordSet(chordSet)
	e.renderChordPage(chordNames)
	e.renderIndex(sections)

	pages := e.page.pages()
	e.addPageNumbers(pages)

	return &Result{
		Pages:     pages,
		Resources: ResourceSet{Fonts: opts.Fonts},
		Meta:      opts.Meta,
		Index:     sections,
		Chords:    chordNames,
		Skipped:   skipped,
	}, nil
}

// addPageNumbers 在每页底部居中绘制页码。
func (e *engine) addPageNumbers(pages []Page) {
	cfg := e.cfg
	if cfg.Labels.PageNumberFormat == "" {
		return
	}
	font := cfg.Fonts.Body
	for i := range pages {
		label := binding.Interpolate(cfg.Labels.PageNumberFormat, map[string]any{"page": pages[i].Number})
		pages[i].Texts = append(pages[i].Texts, TextRun{
			Content: label,
			X:       cfg.Margin.Left,
			Y:       cfg.PageHeight - cfg.FooterOffset,
			Width:   cfg.UsableWidth(),
			Height:  10,
			Align:   "center",
			Font:    font,
		})
	}
}

func accidentalChords(names []string) []string {
	var out []string
	for _, name := range names {
		if strings.ContainsAny(name, "#♭b") {
			out = append(out, name)
		}
	}
	return out
}
