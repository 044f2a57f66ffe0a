package layout

import (
	"github.com/ByLCY/songbook/dsl"
)

// renderMeta 绘制标题、副标题等元信息，返回占用高度。
// 文件中没有 {title:} 时使用歌曲的外部标题。
func (e *engine) renderMeta(s Surface, song *dsl.Song) float64 {
	fonts := e.cfg.Fonts
	x, width := e.cfg.Margin.Left, e.cfg.UsableWidth()
	start := s.Y()

	hasTitle := false
	for _, m := range song.Meta {
		if m.Tag == dsl.TagTitle {
			hasTitle = true
			break
		}
	}
	if !hasTitle && song.Title != "" {
		e.renderParagraph(s, fonts.Title, song.Title, x, width, "")
	}

	for _, m := range song.Meta {
		switch m.Tag {
		case dsl.TagTitle:
			e.renderParagraph(s, fonts.Title, m.Value, x, width, "")
		case dsl.TagSubtitle:
			e.renderParagraph(s, fonts.Subtitle, m.Value, x, width, "")
		case dsl.TagAltTitle:
			if e.cfg.ShowAltTitles {
				e.renderParagraph(s, fonts.AltTitle, "("+m.Value+")", x, width, "")
			}
		}
	}
	return s.Y() - start
}

// measureSong 在草稿上试排元信息与正文，二者都从页首开始。
func (e *engine) measureSong(song *dsl.Song) (meta float64, lyrics MeasuredBlock) {
	e.scratch.NewPage()
	meta = e.renderMeta(e.scratch, song)
	e.scratch.NewPage()
	lyrics = e.renderLyrics(e.scratch, song.Lyrics)
	return meta, lyrics
}

// placeSong 决定歌曲在真实页面上的位置并绘制，返回歌曲开始的页码。
// 只有单栏正文本身超过一页时才放弃；标题加正文超过一页的歌从新页开始，
// 尾部由自动换页带到下一页。
func (e *engine) placeSong(song *dsl.Song) (int, error) {
	if body, limit := e.measureColumn(song.Lyrics), e.cfg.UsableHeight(); body.Height > limit {
		return 0, &SongTooLongError{Title: song.Title, Height: body.Height, Limit: limit}
	}
	meta, lyrics := e.measureSong(song)
	height := meta + lyrics.Height

	pc := e.page
	pageHeight, bottom := e.cfg.PageHeight, e.cfg.Margin.Bottom
	if height > pageHeight-(pc.Y()+bottom) && !pc.atTop() {
		pc.NewPage()
	}

	// 页底剩余空间不足以放插图时，把歌曲下移，使上下留白相等
	free := pageHeight - (pc.Y() + height) - bottom
	if free <= e.cfg.MinImageHeight && !pc.atTop() {
		pc.SetY(pageHeight - bottom - free/2 - height)
	}

	page := pc.PageNo()
	e.renderMeta(pc, song)
	e.renderLyrics(pc, song.Lyrics)

	if pc.PageNo() != page {
		e.logger.Info("歌曲跨页", "title", song.Title, "from", page, "to", pc.PageNo())
	}
	return page, nil
}
