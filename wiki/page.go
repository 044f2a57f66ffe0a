package wiki

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoLyrics 表示页面中没有歌词块（div.spiv）。
var ErrNoLyrics = errors.New("wiki: page has no lyrics block")

// SheetHeader 是下载歌词文件的首行注释。
const SheetHeader = "## Saved from WIKISPIV.com"

// Page 是解析后的歌曲页面。
type Page struct {
	Title     string
	AltTitles []string
	// Credits 来自 div.credit，写成 subtitle。
	Credits []string
	// Lines 已转换为歌词文件的行格式。
	Lines []string
}

// Sheet 生成歌词文件内容：头部注释、标题、别名、署名，空行后接歌词。
func (p *Page) Sheet() string {
	out := []string{SheetHeader, "{title: " + p.Title + "}"}
	for _, alt := range p.AltTitles {
		out = append(out, "{meta: alt_title "+alt+"}")
	}
	for _, credit := range p.Credits {
		out = append(out, "{subtitle: "+credit+"}")
	}
	out = append(out, "\n")
	out = append(out, strings.Join(p.Lines, "\n"))
	return strings.Join(out, "\n")
}

// ParsePage 解析 action=render 返回的 HTML。
func ParsePage(r io.Reader) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	page := &Page{}
	var lyrics *html.Node
	walk(doc, func(n *html.Node) bool {
		if !isElement(n, "div") {
			return true
		}
		switch {
		case hasClass(n, "credit"):
			if text := strings.TrimSpace(textContent(n)); text != "" {
				page.Credits = append(page.Credits, text)
			}
			return false
		case hasClass(n, "spiv") && lyrics == nil:
			lyrics = n
			return false
		}
		return true
	})
	if lyrics == nil {
		return nil, ErrNoLyrics
	}
	page.Lines = convertLyrics(lyrics)
	return page, nil
}

// convertLyrics 把 div.spiv 中的每个 div 转为一行。
func convertLyrics(root *html.Node) []string {
	var lines []string
	walk(root, func(n *html.Node) bool {
		if n == root || !isElement(n, "div") {
			return true
		}
		lines = append(lines, convertLine(n))
		return true
	})
	return lines
}

func convertLine(line *html.Node) string {
	var b strings.Builder
	if hasClass(line, "indented") {
		b.WriteByte('\t')
	}
	walk(line, func(n *html.Node) bool {
		if n == line {
			return true
		}
		// 嵌套的行由 convertLyrics 单独处理
		if isElement(n, "div") {
			return false
		}
		if !isElement(n, "span") {
			return true
		}
		// 只包含其他 span 的容器（如 linediv）本身不输出
		if hasChildElement(n, "span") {
			return true
		}
		writeSpan(&b, n)
		return false
	})
	return b.String()
}

func writeSpan(b *strings.Builder, span *html.Node) {
	text := textContent(span)
	if hasClass(span, "indented") {
		b.WriteByte('\t')
	}
	if chord, ok := attr(span, "data-chord"); ok {
		if chord != "" {
			b.WriteString("[" + chord + "]")
		}
		b.WriteString(text)
		return
	}
	switch {
	case hasClass(span, "bang"):
		b.WriteString("<bold>" + text + "</bold>")
	case hasClass(span, "chord"):
		fields := strings.Fields(text)
		for i, c := range fields {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("[" + c + "]")
		}
	default:
		b.WriteString(text)
	}
}

// walk 以文档顺序遍历节点，fn 返回 false 时不再进入子节点。
func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func hasChildElement(n *html.Node, tag string) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, tag) {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}
