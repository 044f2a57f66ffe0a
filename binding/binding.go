// Package binding 实现标签模板中的 ${name} 占位符替换，例如页码格式 "- ${page} -"。
package binding

import (
	"fmt"
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

type part struct {
	literal string
	path    []string // 非空表示占位符
	raw     string
}

// Template 是预先切分好的标签模板。
type Template struct {
	parts []part
}

// Compile 切分模板文本。Compile 不会失败：无法识别的片段按原文保留。
func Compile(text string) Template {
	var t Template
	last := 0
	for _, loc := range exprPattern.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			t.parts = append(t.parts, part{literal: text[last:loc[0]]})
		}
		name := strings.TrimSpace(text[loc[2]:loc[3]])
		raw := text[loc[0]:loc[1]]
		if name == "" {
			t.parts = append(t.parts, part{literal: raw})
		} else {
			t.parts = append(t.parts, part{path: strings.Split(name, "."), raw: raw})
		}
		last = loc[1]
	}
	if last < len(text) {
		t.parts = append(t.parts, part{literal: text[last:]})
	}
	return t
}

// Names 返回模板引用的占位符，按出现顺序，可能重复。
func (t Template) Names() []string {
	var out []string
	for _, p := range t.parts {
		if p.path != nil {
			out = append(out, strings.Join(p.path, "."))
		}
	}
	return out
}

// Execute 用 vars 填充模板；找不到的占位符原样保留。
func (t Template) Execute(vars map[string]any) string {
	var b strings.Builder
	for _, p := range t.parts {
		if p.path == nil {
			b.WriteString(p.literal)
			continue
		}
		if val, ok := lookup(vars, p.path); ok {
			fmt.Fprint(&b, val)
		} else {
			b.WriteString(p.raw)
		}
	}
	return b.String()
}

// Interpolate 是 Compile(text).Execute(vars) 的简写。
func Interpolate(text string, vars map[string]any) string {
	if len(vars) == 0 {
		return text
	}
	return Compile(text).Execute(vars)
}

// Validate 检查模板只引用 allowed 中的占位符。
func Validate(text string, allowed ...string) error {
	known := map[string]bool{}
	for _, name := range allowed {
		known[name] = true
	}
	for _, name := range Compile(text).Names() {
		if !known[name] {
			return fmt.Errorf("模板 %q 引用了未知占位符 ${%s}，可用: %s", text, name, strings.Join(allowed, ", "))
		}
	}
	return nil
}

func lookup(vars map[string]any, path []string) (any, bool) {
	var current any = vars
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
