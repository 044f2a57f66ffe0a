package renderer

import (
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/ByLCY/songbook/layout"
)

// Renderer 将布局结果输出为最终文件。所有后端同时是 layout.Measurer，
// 排版与输出必须使用同一套字体度量。
type Renderer interface {
	layout.Measurer
	Render(result *layout.Result) ([]byte, error)
}

// FindFont 在资源列表中查找与字体规格匹配的条目：先精确匹配 family+style，
// 再退回同 family 的常规体。
func FindFont(resources []layout.FontResource, spec layout.FontSpec) (layout.FontResource, bool) {
	style := NormalizeStyle(spec.Style)
	var regular *layout.FontResource
	for i, res := range resources {
		if !strings.EqualFold(res.Family, spec.Family) {
			continue
		}
		if NormalizeStyle(res.Style) == style {
			return res, true
		}
		if res.Style == "" && regular == nil {
			regular = &resources[i]
		}
	}
	if regular != nil {
		return *regular, true
	}
	return layout.FontResource{}, false
}

// NormalizeStyle 把样式统一为 ""、"B"、"I" 或 "BI"。
func NormalizeStyle(style string) string {
	style = strings.ToUpper(style)
	out := ""
	if strings.Contains(style, "B") {
		out += "B"
	}
	if strings.Contains(style, "I") {
		out += "I"
	}
	return out
}

// Latin 判断文本能否用 cp1252 编码，即 PDF 标准字体与 Latin Modern 能否显示。
func Latin(s string) bool {
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}
