package layout

import (
	"sort"
	"strconv"

	"github.com/ByLCY/songbook/binding"
	"github.com/ByLCY/songbook/dsl"
)

// placedSong 记录已排版歌曲及其起始页。
type placedSong struct {
	song *dsl.Song
	page int
}

// collectEntries 为一节生成索引条目：每首歌一条；按名称排序的节再为每个别名加一条。
func (e *engine) collectEntries(placed []placedSong, withAltTitles bool) []IndexEntry {
	var out []IndexEntry
	for _, p := range placed {
		out = append(out, IndexEntry{Title: p.song.Title, Page: p.page})
		if !withAltTitles {
			continue
		}
		for _, alt := range p.song.AltTitles {
			out = append(out, IndexEntry{Title: e.altTitle(alt, p.song.Title), Page: p.page})
		}
	}
	return out
}

func (e *engine) altTitle(alt, title string) string {
	return binding.Interpolate(e.cfg.Labels.AltTitleFormat, map[string]any{"alt": alt, "title": title})
}

// sortEntries 按 collator 稳定排序。
func sortEntries(entries []IndexEntry, c Collator) {
	sort.SliceStable(entries, func(i, j int) bool {
		return c.CompareString(entries[i].Title, entries[j].Title) < 0
	})
}

// categorySections 为每个需要索引的分类生成一节，跳过没有歌曲的分类。
func (e *engine) categorySections(categories []string, placed []placedSong) []IndexSection {
	var out []IndexSection
	for _, cat := range categories {
		var matched []placedSong
		for _, p := range placed {
			for _, c := range p.song.Categories {
				if c == cat {
					matched = append(matched, p)
					break
				}
			}
		}
		if len(matched) == 0 {
			continue
		}
		entries := e.collectEntries(matched, false)
		sortEntries(entries, e.collator)
		out = append(out, IndexSection{Name: cat, Entries: entries})
	}
	return out
}

// renderIndex 绘制索引。当前页上半部分还有空间时接着排，否则另起一页。
func (e *engine) renderIndex(sections []IndexSection) {
	cfg := e.cfg
	pc := e.page
	if !pc.atTop() {
		if pc.Y() < cfg.PageHeight/2 {
			pc.SetY(pc.Y() + cfg.SongMargin)
		} else {
			pc.NewPage()
		}
	}

	e.renderParagraph(pc, cfg.Fonts.Title, cfg.Labels.IndexTitle, cfg.Margin.Left, cfg.UsableWidth(), "")

	numberWidth := pc.TextWidth(cfg.Fonts.IndexEntry, "1234567")
	textWidth := cfg.UsableWidth() - numberWidth
	for _, sec := range sections {
		e.renderIndexSection(sec, textWidth, numberWidth)
	}
}

func (e *engine) renderIndexSection(sec IndexSection, textWidth, numberWidth float64) {
	cfg := e.cfg
	pc := e.page
	if pc.Y()+cfg.Margin.Bottom+cfg.IndexSectionMinSpace > cfg.PageHeight {
		pc.NewPage()
	}

	font := cfg.Fonts.IndexTitle
	gap := pc.LineHeight(font)
	pc.SetY(pc.Y() + gap)
	e.renderParagraph(pc, font, sec.Name, cfg.Margin.Left, cfg.UsableWidth(), "")
	pc.SetY(pc.Y() + gap)

	for _, entry := range sec.Entries {
		e.renderIndexEntry(entry, textWidth, numberWidth)
	}
}

// renderIndexEntry 绘制一条索引：左侧为折行的标题，右侧为右对齐的页码，
// 两格底部画线，标题区域链接到歌曲所在页。条目不会被拆到两页。
func (e *engine) renderIndexEntry(entry IndexEntry, textWidth, numberWidth float64) {
	cfg := e.cfg
	pc := e.page
	font := cfg.Fonts.IndexEntry
	rowH := font.Size + cfg.IndexSongPadding

	lines := wrapText(pc, font, entry.Title, textWidth)
	blockH := float64(len(lines)) * rowH
	if pc.Y()+blockH+cfg.Margin.Bottom > cfg.PageHeight {
		pc.NewPage()
	}

	x, y := cfg.Margin.Left, pc.Y()
	for i, line := range lines {
		pc.DrawText(TextRun{Content: line, X: x, Y: y + float64(i)*rowH, Width: textWidth, Height: rowH, Font: font})
	}
	pc.DrawLine(Line{X1: x, Y1: y + blockH, X2: x + textWidth, Y2: y + blockH})
	pc.DrawLink(Link{X: x, Y: y, W: textWidth, H: blockH, TargetPage: entry.Page})

	pc.DrawText(TextRun{
		Content: strconv.Itoa(entry.Page),
		X:       x + textWidth,
		Y:       y,
		Width:   numberWidth,
		Height:  blockH,
		Align:   "right",
		Font:    font,
	})
	pc.DrawLine(Line{X1: x + textWidth, Y1: y + blockH, X2: x + textWidth + numberWidth, Y2: y + blockH})
	pc.SetY(y + blockH)
}
