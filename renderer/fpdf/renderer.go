package fpdfrenderer

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"codeberg.org/go-pdf/fpdf"

	"github.com/ByLCY/songbook/fonts"
	"github.com/ByLCY/songbook/layout"
	"github.com/ByLCY/songbook/renderer"
)

const defaultLineWidth = 0.5 // pt

// coreFamilies 是 PDF 标准字体，无需字体文件。
var coreFamilies = map[string]bool{
	"helvetica": true,
	"arial":     true,
	"times":     true,
	"courier":   true,
}

// unicodeFamily 是内置 Go 字体注册到文档中的字族名。
const unicodeFamily = "songbook-unicode"

// Renderer 使用 codeberg.org/go-pdf/fpdf 输出 PDF，单位为 pt，原点在左上角。
// 度量与输出使用同一组字体，保证排版宽度与最终文档一致。
type Renderer struct {
	baseDir string
	fonts   []layout.FontResource
	logger  *slog.Logger

	mu      sync.Mutex
	measure *fpdf.Fpdf
	utf8    map[string]bool
	tr      func(string) string

	warnOnce sync.Once
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the fpdf renderer.
type Options struct {
	BaseDir string
	Fonts   []layout.FontResource
	Logger  *slog.Logger
}

// New 创建渲染器。Src 为空的字体资源视为标准字体；其余字体在首次使用前注册，
// 加载失败返回错误。
func New(opts Options) (*Renderer, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r := &Renderer{baseDir: opts.BaseDir, fonts: opts.Fonts, logger: logger}
	doc, utf8, err := r.newDocument(fpdf.SizeType{Wd: 100, Ht: 100})
	if err != nil {
		return nil, err
	}
	doc.AddPage()
	r.measure = doc
	r.utf8 = utf8
	r.tr = doc.UnicodeTranslatorFromDescriptor("")
	return r, nil
}

// newDocument 创建文档并注册全部外部字体，返回已注册的 "family|style" 集合。
func (r *Renderer) newDocument(size fpdf.SizeType) (*fpdf.Fpdf, map[string]bool, error) {
	doc := fpdf.NewCustom(&fpdf.InitType{UnitStr: "pt", Size: size})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)

	registered := map[string]bool{}
	for _, res := range r.fonts {
		if res.Src == "" {
			continue
		}
		data, err := fonts.Load(res.Src, r.baseDir)
		if err != nil {
			return nil, nil, fmt.Errorf("加载字体 %s 失败: %w", res.Family, err)
		}
		style := renderer.NormalizeStyle(res.Style)
		doc.AddUTF8FontFromBytes(res.Family, style, data)
		if err := doc.Error(); err != nil {
			return nil, nil, fmt.Errorf("注册字体 %s 失败: %w", res.Family, err)
		}
		registered[fontKey(res.Family, style)] = true
	}
	return doc, registered, nil
}

func fontKey(family, style string) string {
	return strings.ToLower(family) + "|" + style
}

// selectFont 在 doc 上选择与规格和文本对应的字体，返回文本是否需要转码为 cp1252。
// 标准字体无法编码的文本改用内置 Go 字体，首次使用时注册到 registered 中。
func (r *Renderer) selectFont(doc *fpdf.Fpdf, registered map[string]bool, spec layout.FontSpec, text string) bool {
	style := renderer.NormalizeStyle(spec.Style)
	if registered[fontKey(spec.Family, style)] {
		doc.SetFont(spec.Family, style, spec.Size)
		return false
	}
	if res, ok := renderer.FindFont(r.fonts, spec); ok && res.Src != "" {
		// 只有常规体时用常规体代替
		doc.SetFont(res.Family, renderer.NormalizeStyle(res.Style), spec.Size)
		return false
	}
	if !renderer.Latin(text) {
		r.warnOnce.Do(func() {
			r.logger.Warn("标准字体无法显示文本，改用内置 Go 字体；可在 fontFiles 中配置 UTF-8 字体",
				"family", spec.Family, "text", text)
		})
		key := fontKey(unicodeFamily, style)
		if !registered[key] {
			doc.AddUTF8FontFromBytes(unicodeFamily, style, fonts.Unicode(style))
			registered[key] = true
		}
		doc.SetFont(unicodeFamily, style, spec.Size)
		return false
	}
	family := strings.ToLower(spec.Family)
	if !coreFamilies[family] {
		family = "helvetica"
	}
	doc.SetFont(family, style, spec.Size)
	return true
}

// TextWidth 实现 layout.Measurer。
func (r *Renderer) TextWidth(font layout.FontSpec, s string) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selectFont(r.measure, r.utf8, font, s) {
		s = r.tr(s)
	}
	return r.measure.GetStringWidth(s)
}

// LineHeight 实现 layout.Measurer：行高等于字号。
func (r *Renderer) LineHeight(font layout.FontSpec) float64 { return font.Size }

// Render 输出 PDF。索引中的链接区域在文档内跳转到目标页。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}
	first := result.Pages[0]
	doc, registered, err := r.newDocument(fpdf.SizeType{Wd: first.Width, Ht: first.Height})
	if err != nil {
		return nil, err
	}
	applyMeta(doc, result.Meta)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	links := make([]int, len(result.Pages))
	for i := range links {
		links[i] = doc.AddLink()
	}
	for i, page := range result.Pages {
		doc.AddPageFormat("P", fpdf.SizeType{Wd: page.Width, Ht: page.Height})
		doc.SetLink(links[i], 0, -1)
		r.drawPage(doc, registered, page, links, tr)
		if err := doc.Error(); err != nil {
			return nil, fmt.Errorf("绘制第 %d 页失败: %w", page.Number, err)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(doc *fpdf.Fpdf, meta layout.DocumentMeta) {
	doc.SetTitle(meta.Title, true)
	doc.SetAuthor(meta.Author, true)
	doc.SetSubject(meta.Subject, true)
	doc.SetCreator(meta.Creator, true)
	doc.SetKeywords(strings.Join(meta.Keywords, ", "), true)
}

func (r *Renderer) drawPage(doc *fpdf.Fpdf, registered map[string]bool, page layout.Page, links []int, tr func(string) string) {
	for _, ln := range page.Lines {
		w := ln.Width
		if w <= 0 {
			w = defaultLineWidth
		}
		doc.SetDrawColor(int(ln.Color.R), int(ln.Color.G), int(ln.Color.B))
		doc.SetLineWidth(w)
		doc.Line(ln.X1, ln.Y1, ln.X2, ln.Y2)
	}
	for _, c := range page.Circles {
		doc.SetFillColor(int(c.Color.R), int(c.Color.G), int(c.Color.B))
		doc.Circle(c.CX, c.CY, c.R, "F")
	}
	for _, run := range page.Texts {
		if run.Content == "" {
			continue
		}
		text := run.Content
		if r.selectFont(doc, registered, run.Font, text) {
			text = tr(text)
		}
		x := run.X
		switch strings.ToLower(run.Align) {
		case "center":
			x += (run.Width - doc.GetStringWidth(text)) / 2
		case "right", "end":
			x += run.Width - doc.GetStringWidth(text)
		}
		doc.SetTextColor(int(run.Font.Color.R), int(run.Font.Color.G), int(run.Font.Color.B))
		doc.Text(x, run.Baseline(), text)
	}
	for _, l := range page.Links {
		if l.TargetPage < 1 || l.TargetPage > len(links) {
			continue
		}
		doc.Link(l.X, l.Y, l.W, l.H, links[l.TargetPage-1])
	}
}
