package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/songbook/fonts"
	"github.com/ByLCY/songbook/layout"
	"github.com/ByLCY/songbook/renderer"
)

const defaultLineWidth = 0.5 // pt

// Renderer draws layout results via github.com/tdewolff/canvas.
// 布局坐标为 pt，canvas 使用 mm，所有换算都在本包边界完成。
type Renderer struct {
	baseDir string
	fonts   []layout.FontResource

	fontMu   sync.Mutex
	families map[string]*fontFamilyEntry
	missing  map[string]bool
}

var _ renderer.Renderer = (*Renderer)(nil)

type fontFamilyEntry struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
}

// Options configures the canvas renderer.
type Options struct {
	BaseDir string
	Fonts   []layout.FontResource
}

// New creates a canvas-based renderer. Fonts with a relative Src are resolved against BaseDir.
func New(opts Options) *Renderer {
	return &Renderer{
		baseDir:  opts.BaseDir,
		fonts:    opts.Fonts,
		families: map[string]*fontFamilyEntry{},
		missing:  map[string]bool{},
	}
}

// TextWidth 实现 layout.Measurer，返回 pt。
func (r *Renderer) TextWidth(font layout.FontSpec, s string) float64 {
	face, err := r.fontFace(font, s)
	if err != nil {
		return 0
	}
	return toPt(face.TextWidth(s))
}

// LineHeight 实现 layout.Measurer：行高等于字号。
func (r *Renderer) LineHeight(font layout.FontSpec) float64 { return font.Size }

// Render renders the result into a PDF byte slice. 链接区域不输出。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	var buf bytes.Buffer
	first := result.Pages[0]
	writer := pdf.New(&buf, toMm(first.Width), toMm(first.Height), nil)
	applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(toMm(page.Width), toMm(page.Height))
		}
		c := canvas.New(toMm(page.Width), toMm(page.Height))
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

		if err := r.drawPage(ctx, page); err != nil {
			return nil, fmt.Errorf("绘制第 %d 页失败: %w", page.Number, err)
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page) error {
	// 先画线与圆点，文本在最上层
	for _, ln := range page.Lines {
		drawLine(ctx, ln)
	}
	for _, c := range page.Circles {
		drawCircle(ctx, c)
	}
	for _, run := range page.Texts {
		if err := r.drawText(ctx, run); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawText(ctx *canvas.Context, run layout.TextRun) error {
	if run.Content == "" {
		return nil
	}
	face, err := r.fontFace(run.Font, run.Content)
	if err != nil {
		return err
	}

	var (
		textAlign canvas.TextAlign
		anchorX   float64
	)
	switch strings.ToLower(run.Align) {
	case "center":
		textAlign = canvas.Center
		anchorX = run.X + run.Width/2
	case "right", "end":
		textAlign = canvas.Right
		anchorX = run.X + run.Width
	default:
		textAlign = canvas.Left
		anchorX = run.X
	}
	line := canvas.NewTextLine(face, run.Content, textAlign)
	ctx.DrawText(toMm(anchorX), toMm(run.Baseline()), line)
	return nil
}

func drawLine(ctx *canvas.Context, ln layout.Line) {
	w := ln.Width
	if w <= 0 {
		w = defaultLineWidth
	}
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(colorFromLayout(ln.Color))
	ctx.SetStrokeWidth(toMm(w))
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(toMm(ln.X2-ln.X1), toMm(ln.Y2-ln.Y1))
	ctx.DrawPath(toMm(ln.X1), toMm(ln.Y1), p)
}

func drawCircle(ctx *canvas.Context, c layout.Circle) {
	ctx.SetFillColor(colorFromLayout(c.Color))
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(toMm(c.CX), toMm(c.CY), canvas.Circle(toMm(c.R)))
}

func (r *Renderer) fontFace(font layout.FontSpec, text string) (*canvas.FontFace, error) {
	family, style, err := r.ensureFontFamily(font, text)
	if err != nil {
		return nil, err
	}
	return family.Face(font.Size, colorFromLayout(font.Color), style, canvas.FontNormal), nil
}

// ensureFontFamily 加载字体规格对应的字族；资源缺失或无法解析时退回内置字体：
// cp1252 能编码的文本用 Latin Modern，其余用 Go 字体。
func (r *Renderer) ensureFontFamily(font layout.FontSpec, text string) (*canvas.FontFamily, canvas.FontStyle, error) {
	styleKey := renderer.NormalizeStyle(font.Style)
	key := strings.ToLower(font.Family) + "|" + styleKey
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if entry, ok := r.families[key]; ok {
		return entry.family, entry.style, nil
	}

	style := parseFontStyle(styleKey)
	if res, ok := renderer.FindFont(r.fonts, font); ok && !r.missing[key] {
		if data, err := fonts.Load(res.Src, r.baseDir); err == nil {
			family := canvas.NewFontFamily(font.Family)
			if err := family.LoadFont(data, 0, style); err == nil {
				r.families[key] = &fontFamilyEntry{family: family, style: style}
				return family, style, nil
			}
		}
		r.missing[key] = true
	}

	fallback, err := r.fallback(styleKey, !renderer.Latin(text))
	if err != nil {
		return nil, canvas.FontRegular, err
	}
	return fallback.family, fallback.style, nil
}

func (r *Renderer) fallback(styleKey string, unicode bool) (*fontFamilyEntry, error) {
	name, data := "songbook-fallback", fonts.Fallback(styleKey)
	if unicode {
		name, data = "songbook-unicode", fonts.Unicode(styleKey)
	}
	key := "\x00" + name + "|" + styleKey
	if entry, ok := r.families[key]; ok {
		return entry, nil
	}
	style := parseFontStyle(styleKey)
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, style); err != nil {
		return nil, fmt.Errorf("加载内置字体失败: %w", err)
	}
	entry := &fontFamilyEntry{family: family, style: style}
	r.families[key] = entry
	return entry, nil
}

func parseFontStyle(styleKey string) canvas.FontStyle {
	result := canvas.FontRegular
	if strings.Contains(styleKey, "B") {
		result = canvas.FontBold
	}
	if strings.Contains(styleKey, "I") {
		result |= canvas.FontItalic
	}
	return result
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

// toPt 将毫米(mm)转换为点(pt)。
func toPt(mm float64) float64 { return mm * layout.MmToPt }

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * layout.PtToMm }
