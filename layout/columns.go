package layout

import (
	"math"

	"github.com/ByLCY/songbook/dsl"
)

// columnPlan 是一首歌正文的分栏决定。
type columnPlan struct {
	TwoColumns bool
	Split      int
	Left       MeasuredBlock
	Right      MeasuredBlock
	Margin     float64
}

// splitIndex 返回最接近 floor(n/2) 的空行下标，距离相同取较小下标。
func splitIndex(lines []dsl.LyricLine) (int, bool) {
	mid := len(lines) / 2
	best := -1
	for i, line := range lines {
		if !line.IsBlank() {
			continue
		}
		if best < 0 || absInt(i-mid) < absInt(best-mid) {
			best = i
		}
	}
	return best, best >= 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// measureColumn 在独立的草稿上试排单栏，不影响任何其他游标。
func (e *engine) measureColumn(lines []dsl.LyricLine) MeasuredBlock {
	draft := newScratchSurface(e.measure, e.cfg)
	return e.renderColumn(draft, lines, e.cfg.Margin.Left)
}

// planLyrics 判断在游标 y 处能否双栏排版。
// 没有空行或唯一的分割点在第 0 行时退回单栏。
func (e *engine) planLyrics(lines []dsl.LyricLine, y float64) columnPlan {
	idx, ok := splitIndex(lines)
	if !ok || idx == 0 {
		return columnPlan{}
	}
	left := e.measureColumn(lines[:idx])
	right := e.measureColumn(lines[idx+1:])

	spaceLeft := e.cfg.UsableWidth() - (left.Width + right.Width)
	if spaceLeft < e.cfg.MinColumnMargin {
		return columnPlan{}
	}
	if left.Height <= e.cfg.MinSongHeight || right.Height <= e.cfg.MinSongHeight {
		return columnPlan{}
	}
	if y+math.Max(left.Height, right.Height)+e.cfg.Margin.Bottom > e.cfg.PageHeight {
		return columnPlan{}
	}
	return columnPlan{
		TwoColumns: true,
		Split:      idx,
		Left:       left,
		Right:      right,
		Margin:     math.Min(spaceLeft, e.cfg.MaxColumnMargin),
	}
}

// renderLyrics 在 s 上排版正文，自动选择单栏或双栏。
func (e *engine) renderLyrics(s Surface, lines []dsl.LyricLine) MeasuredBlock {
	x := e.cfg.Margin.Left
	plan := e.planLyrics(lines, s.Y())
	if !plan.TwoColumns {
		return e.renderColumn(s, lines, x)
	}

	startY := s.Y()
	left := e.renderColumn(s, lines[:plan.Split], x)
	endY := s.Y()

	s.SetY(startY)
	right := e.renderColumn(s, lines[plan.Split+1:], x+left.Width+plan.Margin)
	maxY := math.Max(endY, s.Y())

	middle := x + left.Width + plan.Margin/2
	s.DrawLine(Line{X1: middle, Y1: startY + e.cfg.SongTitleMargin, X2: middle, Y2: maxY})
	s.SetY(maxY)

	return MeasuredBlock{
		Height: math.Max(left.Height, right.Height),
		Width:  left.Width + right.Width,
	}
}

// renderColumn 单栏排版。带和弦的行先画一行和弦标注，再画歌词；
// 和弦标注不会比上一个标注的右边缘加一个空格更靠左。
func (e *engine) renderColumn(s Surface, lines []dsl.LyricLine, startX float64) MeasuredBlock {
	fonts := e.cfg.Fonts
	startY := s.Y()
	s.SetY(startY + e.cfg.SongTitleMargin)
	maxX := startX

	for _, line := range lines {
		x := startX
		if line.Indented {
			x += e.cfg.Indent
		}
		font := fonts.Body
		if line.Bold {
			font = fonts.Bold
		}

		if line.HasChords() {
			chordFont := fonts.Chord
			rowH := s.LineHeight(chordFont)
			s.AutoBreak(rowH)
			y := s.Y()
			minX, runX := x, x
			space := s.TextWidth(chordFont, " ")
			for _, seg := range line.Segments {
				if seg.Chord != "" {
					w := s.TextWidth(chordFont, seg.Chord)
					runX = math.Max(runX, minX)
					s.DrawText(TextRun{Content: seg.Chord, X: runX, Y: y, Width: w, Height: rowH, Font: chordFont})
					minX = runX + w + space
					maxX = math.Max(maxX, runX+w)
				}
				runX += s.TextWidth(font, seg.Text)
			}
			s.SetY(y + rowH + e.cfg.LineSpacing)
		}

		rowH := s.LineHeight(font)
		s.AutoBreak(rowH)
		text := line.Text()
		w := s.TextWidth(font, text)
		maxX = math.Max(maxX, x+w)
		if text != "" {
			s.DrawText(TextRun{Content: text, X: x, Y: s.Y(), Width: w, Height: rowH, Font: font})
		}
		s.SetY(s.Y() + rowH + e.cfg.LineSpacing)
	}

	return MeasuredBlock{Height: s.Y() - startY, Width: maxX - startX}
}

// renderParagraph 在 [x, x+width] 内折行绘制文本，每行高度为字体行高。
func (e *engine) renderParagraph(s Surface, font FontSpec, text string, x, width float64, align string) float64 {
	start := s.Y()
	h := s.LineHeight(font)
	for _, line := range wrapText(s, font, text, width) {
		s.AutoBreak(h)
		s.DrawText(TextRun{Content: line, X: x, Y: s.Y(), Width: width, Height: h, Align: align, Font: font})
		s.SetY(s.Y() + h)
	}
	return s.Y() - start
}
