package layout

import (
	"sort"

	"github.com/ByLCY/songbook/binding"
	"github.com/ByLCY/songbook/chords"
)

// chordsPerRow 返回一行最多能放下的指法图数量（至少 1）。
func chordsPerRow(usable, width, margin float64) int {
	n := 1
	for float64(n+1)*width+float64(n)*margin <= usable {
		n++
	}
	return n
}

// chordDiagramHeight 是带品位标注的指法图总高度，用作统一的行高。
func (e *engine) chordDiagramHeight() float64 {
	cfg := e.cfg
	return e.measure.LineHeight(cfg.Fonts.Body) + 2*cfg.ChordInfoFontSize + 3 + cfg.ChordHeight()
}

// renderChordPage 绘制和弦附录：标题居中，指法图按行居中排列，满行换行，满页换页。
// 不在目录中或超出品数的和弦记录日志后跳过。
func (e *engine) renderChordPage(names []string) {
	if len(names) == 0 {
		return
	}
	cfg := e.cfg
	pc := e.page
	if !pc.atTop() {
		pc.NewPage()
	}

	e.renderParagraph(pc, cfg.Fonts.Title, cfg.Labels.ChordsTitle, cfg.Margin.Left, cfg.UsableWidth(), "center")

	perRow := chordsPerRow(cfg.UsableWidth(), cfg.ChordWidth, cfg.ChordMarginH)
	rowWidth := float64(perRow)*cfg.ChordWidth + float64(perRow-1)*cfg.ChordMarginH
	startX := cfg.Margin.Left + (cfg.UsableWidth()-rowWidth)/2
	diagramH := e.chordDiagramHeight()

	col := 0
	rowY := pc.Y()
	for _, name := range names {
		chord, err := e.catalogue.Lookup(name)
		if err != nil {
			e.logger.Warn("未知和弦，跳过", "chord", name)
			continue
		}
		if chord.MaxFret() > cfg.MaxFrets {
			e.logger.Warn("和弦超出可绘制品数，跳过", "chord", name, "maxFret", chord.MaxFret())
			continue
		}
		if col == 0 && rowY+diagramH+cfg.Margin.Bottom > cfg.PageHeight {
			pc.NewPage()
			rowY = pc.Y()
		}
		x := startX + float64(col)*(cfg.ChordWidth+cfg.ChordMarginH)
		e.renderChordDiagram(pc, chord, x, rowY)
		col++
		if col == perRow {
			col = 0
			rowY += diagramH + cfg.ChordMarginV
		}
	}
	if col != 0 {
		rowY += diagramH + cfg.ChordMarginV
	}
	pc.SetY(rowY)
}

// renderChordDiagram 绘制单个指法图：名称、可选的起始品位、6 弦 x MaxFrets 品的网格、
// 按弦点位的实心圆与不弹弦上方的 X。空弦不做标记。
func (e *engine) renderChordDiagram(s Surface, c chords.Chord, x, y float64) {
	cfg := e.cfg
	width := cfg.ChordWidth
	body := cfg.Fonts.Body
	info := cfg.Fonts.Chord.WithSize(cfg.ChordInfoFontSize)

	nameH := s.LineHeight(body)
	s.DrawText(TextRun{Content: c.Name, X: x, Y: y, Width: width, Height: nameH, Align: "center", Font: body})
	cy := y + nameH
	if c.Base != 1 {
		label := binding.Interpolate(cfg.Labels.FretFormat, map[string]any{"fret": c.Base - 1})
		s.DrawText(TextRun{Content: label, X: x, Y: cy, Width: width, Height: info.Size, Align: "center", Font: info})
		cy += info.Size
	}

	markerBaseline := cy + info.Size
	boardTop := markerBaseline + 3
	stringGap := width / float64(chords.Strings-1)
	fretGap := (cfg.ChordHeight() - 10) / float64(cfg.MaxFrets)
	stringY := boardTop + (cfg.ChordHeight() - cfg.ChordStringHeight)

	s.DrawLine(Line{X1: x, Y1: boardTop, X2: x + width, Y2: boardTop})
	s.DrawLine(Line{X1: x, Y1: stringY, X2: x + width, Y2: stringY})
	for i := 0; i < chords.Strings; i++ {
		sx := x + stringGap*float64(i)
		s.DrawLine(Line{X1: sx, Y1: boardTop, X2: sx, Y2: boardTop + cfg.ChordHeight()})
	}
	for i := 1; i <= cfg.MaxFrets; i++ {
		fy := stringY + fretGap*float64(i)
		s.DrawLine(Line{X1: x, Y1: fy, X2: x + width, Y2: fy})
	}

	r := cfg.ChordCircleDiameter / 2
	for i, fret := range c.Frets {
		sx := x + stringGap*float64(i)
		switch {
		case fret < 0:
			w := s.TextWidth(info, "X")
			s.DrawText(TextRun{
				Content: "X",
				X:       sx - w/2,
				Y:       markerBaseline - 0.8*info.Size,
				Width:   w,
				Height:  info.Size,
				Align:   "center",
				Font:    info,
			})
		case fret > 0:
			s.DrawCircle(Circle{CX: sx, CY: stringY + fretGap*float64(fret), R: r, Color: cfg.Fonts.Chord.Color})
		}
	}
}

// sortedChordSet 返回去重后按字典序排列的和弦名。
func sortedChordSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
