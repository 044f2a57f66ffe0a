package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10boldoblique"
	"github.com/go-fonts/latin-modern/lmsans10oblique"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// EmbedPrefix 标记内置字体，例如 "embed:lmsans10-bold"。
const EmbedPrefix = "embed:"

// ErrNotFound 表示内置字体不存在。
var ErrNotFound = errors.New("font not found")

var builtin = map[string][]byte{
	"lmsans10-regular":     lmsans10regular.TTF,
	"lmsans10-bold":        lmsans10bold.TTF,
	"lmsans10-oblique":     lmsans10oblique.TTF,
	"lmsans10-boldoblique": lmsans10boldoblique.TTF,

	"lmroman10-regular":    lmroman10regular.TTF,
	"lmroman10-bold":       lmroman10bold.TTF,
	"lmroman10-italic":     lmroman10italic.TTF,
	"lmroman10-bolditalic": lmroman10bolditalic.TTF,

	// Go 字体是 TrueType，覆盖西里尔字母，fpdf 可以作为 UTF-8 字体注册
	"go-regular":    goregular.TTF,
	"go-bold":       gobold.TTF,
	"go-italic":     goitalic.TTF,
	"go-bolditalic": gobolditalic.TTF,
}

// Names 返回全部内置字体名。
func Names() []string {
	out := make([]string, 0, len(builtin))
	for name := range builtin {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Load 读取字体数据。src 为 "embed:<name>" 时取内置字体，否则按文件路径读取，
// 相对路径基于 baseDir。
func Load(src, baseDir string) ([]byte, error) {
	if name, ok := strings.CutPrefix(src, EmbedPrefix); ok {
		data, ok := builtin[name]
		if !ok {
			return nil, fmt.Errorf("内置字体 %s: %w", name, ErrNotFound)
		}
		return data, nil
	}
	if src == "" {
		return nil, fmt.Errorf("字体路径为空: %w", ErrNotFound)
	}
	path := src
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", path, err)
	}
	return data, nil
}

// Fallback 按样式返回无衬线内置字体，style 使用 "B"、"I"、"BI" 记法。
func Fallback(style string) []byte {
	style = strings.ToUpper(style)
	bold := strings.Contains(style, "B")
	italic := strings.Contains(style, "I")
	switch {
	case bold && italic:
		return lmsans10boldoblique.TTF
	case bold:
		return lmsans10bold.TTF
	case italic:
		return lmsans10oblique.TTF
	default:
		return lmsans10regular.TTF
	}
}

// Unicode 按样式返回 Go 字体，用于 Latin Modern 与 PDF 标准字体都无法显示的文本。
func Unicode(style string) []byte {
	style = strings.ToUpper(style)
	bold := strings.Contains(style, "B")
	italic := strings.Contains(style, "I")
	switch {
	case bold && italic:
		return gobolditalic.TTF
	case bold:
		return gobold.TTF
	case italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}
