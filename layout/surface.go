package layout

// Surface 是排版目标。真实页面与试排草稿共用同一套度量与绘制接口，
// 区别在于草稿丢弃绘制结果且从不分页。
type Surface interface {
	Measurer
	Y() float64
	SetY(y float64)
	PageNo() int
	NewPage()
	// AutoBreak 在当前页剩余空间放不下 h 时换页，返回是否换页。
	AutoBreak(h float64) bool
	DrawText(run TextRun)
	DrawLine(l Line)
	DrawCircle(c Circle)
	DrawLink(l Link)
}

type pageAccumulator struct {
	texts   []TextRun
	lines   []Line
	circles []Circle
	links   []Link
}

// pageCollector 是真实页面，独占页面游标 {y, page}。
type pageCollector struct {
	Measurer
	width   float64
	height  float64
	margin  Margin
	accs    []*pageAccumulator
	current int
	y       float64
}

var _ Surface = (*pageCollector)(nil)

func newPageCollector(m Measurer, s Settings) *pageCollector {
	pc := &pageCollector{
		Measurer: m,
		width:    s.PageWidth,
		height:   s.PageHeight,
		margin:   s.Margin,
	}
	pc.NewPage()
	return pc
}

func (pc *pageCollector) NewPage() {
	pc.accs = append(pc.accs, &pageAccumulator{})
	pc.current = len(pc.accs) - 1
	pc.y = pc.contentTop()
}

func (pc *pageCollector) curr() *pageAccumulator {
	return pc.accs[pc.current]
}

func (pc *pageCollector) contentTop() float64 { return pc.margin.Top }

func (pc *pageCollector) contentBottom() float64 { return pc.height - pc.margin.Bottom }

func (pc *pageCollector) Y() float64 { return pc.y }

func (pc *pageCollector) SetY(y float64) { pc.y = y }

// PageNo 从 1 开始计数。
func (pc *pageCollector) PageNo() int { return pc.current + 1 }

// atTop 判断游标是否仍在页首。
func (pc *pageCollector) atTop() bool { return pc.y == pc.contentTop() }

func (pc *pageCollector) AutoBreak(h float64) bool {
	if pc.y+h <= pc.contentBottom() {
		return false
	}
	pc.NewPage()
	return true
}

func (pc *pageCollector) DrawText(run TextRun) { pc.curr().texts = append(pc.curr().texts, run) }

func (pc *pageCollector) DrawLine(l Line) { pc.curr().lines = append(pc.curr().lines, l) }

func (pc *pageCollector) DrawCircle(c Circle) { pc.curr().circles = append(pc.curr().circles, c) }

func (pc *pageCollector) DrawLink(l Link) { pc.curr().links = append(pc.curr().links, l) }

func (pc *pageCollector) pages() []Page {
	out := make([]Page, len(pc.accs))
	for i, acc := range pc.accs {
		out[i] = Page{
			Number:  i + 1,
			Width:   pc.width,
			Height:  pc.height,
			Margin:  pc.margin,
			Texts:   acc.texts,
			Lines:   acc.lines,
			Circles: acc.circles,
			Links:   acc.links,
		}
	}
	return out
}

// scratchSurface 只记录游标，用于试排。
type scratchSurface struct {
	Measurer
	top float64
	y   float64
}

var _ Surface = (*scratchSurface)(nil)

func newScratchSurface(m Measurer, s Settings) *scratchSurface {
	return &scratchSurface{Measurer: m, top: s.Margin.Top, y: s.Margin.Top}
}

func (s *scratchSurface) Y() float64 { return s.y }
func (s *scratchSurface) SetY(y float64) { s.y = y }
func (s *scratchSurface) PageNo() int { return 1 }
func (s *scratchSurface) NewPage() { s.y = s.top }
func (s *scratchSurface) AutoBreak(float64) bool { return false }
func (s *scratchSurface) DrawText(TextRun) {}
func (s *scratchSurface) DrawLine(Line) {}
func (s *scratchSurface) DrawCircle(Circle) {}
func (s *scratchSurface) DrawLink(Link) {}
