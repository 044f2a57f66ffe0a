// Package chords 维护吉他和弦指法目录：别名图在加载时一次性解析为扁平表，
// 循环引用视为配置错误。
package chords

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Strings 是标准吉他的弦数。
const Strings = 6

// ErrUnknownChord 表示和弦不在目录中。
var ErrUnknownChord = errors.New("unknown chord")

// ErrAliasCycle 表示别名指针形成了环。
var ErrAliasCycle = errors.New("chord alias cycle")

// Entry 是目录的原始条目：要么携带指法（Alias 为空），要么指向另一个和弦名。
// Frets 中 -1 表示不弹，0 表示空弦，>0 表示品位。
type Entry struct {
	Name  string
	Base  int
	Frets [Strings]int
	Alias string
}

// Chord 是解析后的规范和弦。
type Chord struct {
	Name  string       `json:"name"`
	Base  int          `json:"base"`
	Frets [Strings]int `json:"frets"`
}

// MaxFret 返回指法中最大的品位。
func (c Chord) MaxFret() int {
	max := 0
	for _, f := range c.Frets {
		if f > max {
			max = f
		}
	}
	return max
}

// UnknownChordError 携带找不到的和弦名。
type UnknownChordError struct {
	Name string
}

func (e *UnknownChordError) Error() string {
	return fmt.Sprintf("unknown chord %q", e.Name)
}

func (e *UnknownChordError) Unwrap() error { return ErrUnknownChord }

// CycleError 记录构成环的别名路径。
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("chord alias cycle: %s", strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrAliasCycle }

// Catalogue 是只读的扁平和弦表。
type Catalogue struct {
	chords map[string]Chord
	// canonical 记录别名最终指向的规范名
	canonical map[string]string
}

// New 根据条目构建目录。别名会被传递解析；出现环或悬空别名时返回错误。
func New(entries []Entry) (*Catalogue, error) {
	defs := make(map[string]Entry, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("chord entry without name")
		}
		if _, dup := defs[name]; dup {
			return nil, fmt.Errorf("duplicate chord %q", name)
		}
		e.Name = name
		defs[name] = e
	}

	c := &Catalogue{
		chords:    make(map[string]Chord, len(defs)),
		canonical: make(map[string]string, len(defs)),
	}
	// 0 = 未访问, 1 = 访问中, 2 = 已解析
	state := make(map[string]int, len(defs))
	var resolve func(name string, path []string) (string, error)
	resolve = func(name string, path []string) (string, error) {
		switch state[name] {
		case 2:
			return c.canonical[name], nil
		case 1:
			return "", &CycleError{Path: append(path, name)}
		}
		e, ok := defs[name]
		if !ok {
			return "", &UnknownChordError{Name: name}
		}
		state[name] = 1
		target := name
		if e.Alias != "" {
			t, err := resolve(e.Alias, append(path, name))
			if err != nil {
				return "", err
			}
			target = t
		}
		state[name] = 2
		c.canonical[name] = target
		return target, nil
	}

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		target, err := resolve(name, nil)
		if err != nil {
			if errors.Is(err, ErrUnknownChord) {
				return nil, fmt.Errorf("alias %q: %w", name, err)
			}
			return nil, err
		}
		def := defs[target]
		base := def.Base
		if base <= 0 {
			base = 1
		}
		c.chords[name] = Chord{Name: name, Base: base, Frets: def.Frets}
	}
	return c, nil
}

// Builtin 返回内置和弦目录。内置表在测试中保证无环。
func Builtin() *Catalogue {
	c, err := New(builtin)
	if err != nil {
		panic(fmt.Sprintf("builtin chord table: %v", err))
	}
	return c
}

// BuiltinEntries 返回内置条目的副本，便于与用户自定义条目合并后再调用 New。
func BuiltinEntries() []Entry {
	out := make([]Entry, len(builtin))
	copy(out, builtin)
	return out
}

// Merge 用 extra 覆盖 base 中同名的条目，其余条目追加在末尾。
func Merge(base, extra []Entry) []Entry {
	out := make([]Entry, 0, len(base)+len(extra))
	override := make(map[string]Entry, len(extra))
	for _, e := range extra {
		override[e.Name] = e
	}
	for _, e := range base {
		if o, ok := override[e.Name]; ok {
			out = append(out, o)
			delete(override, e.Name)
			continue
		}
		out = append(out, e)
	}
	for _, e := range extra {
		if _, ok := override[e.Name]; ok {
			out = append(out, e)
			delete(override, e.Name)
		}
	}
	return out
}

// Lookup 返回和弦指法；名称不存在时返回 *UnknownChordError。
func (c *Catalogue) Lookup(name string) (Chord, error) {
	if c == nil {
		return Chord{}, &UnknownChordError{Name: name}
	}
	ch, ok := c.chords[name]
	if !ok {
		return Chord{}, &UnknownChordError{Name: name}
	}
	return ch, nil
}

// Canonical 返回别名最终指向的规范和弦名。
func (c *Catalogue) Canonical(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	target, ok := c.canonical[name]
	return target, ok
}

// Names 返回目录中全部和弦名（含别名），按字典序排列。
func (c *Catalogue) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.chords))
	for name := range c.chords {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len 返回目录大小。
func (c *Catalogue) Len() int {
	if c == nil {
		return 0
	}
	return len(c.chords)
}
