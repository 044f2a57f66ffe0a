package layout

import (
	"log/slog"

	"github.com/ByLCY/songbook/chords"
)

// BuildOptions 配置布局阶段所需的依赖。
type BuildOptions struct {
	Settings  Settings
	Measurer  Measurer
	Collator  Collator
	Catalogue *chords.Catalogue
	Fonts     []FontResource
	Meta      DocumentMeta
	Logger    *slog.Logger
}

// Measurer 提供文本度量，由渲染后端实现。宽度与行高单位均为 pt。
type Measurer interface {
	TextWidth(font FontSpec, s string) float64
	LineHeight(font FontSpec) float64
}

// Collator 按语言习惯比较两个标题，返回 -1/0/1。
type Collator interface {
	CompareString(a, b string) int
}

type bytewiseCollator struct{}

func (bytewiseCollator) CompareString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
