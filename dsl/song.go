package dsl

import "strings"

// DirectiveTag 是受支持的元信息指令集合。新增指令只需在此处增加一个枚举值。
type DirectiveTag int

const (
	TagUnknown DirectiveTag = iota
	TagTitle
	TagSubtitle
	TagAltTitle
	TagCategory
)

var tagNames = map[string]DirectiveTag{
	"title":     TagTitle,
	"subtitle":  TagSubtitle,
	"alt_title": TagAltTitle,
	"category":  TagCategory,
}

// LookupTag 对任意指令名返回对应的枚举值，未知名称返回 TagUnknown。
func LookupTag(name string) DirectiveTag {
	if tag, ok := tagNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return tag
	}
	return TagUnknown
}

func (t DirectiveTag) String() string {
	for name, tag := range tagNames {
		if tag == t {
			return name
		}
	}
	return "unknown"
}

// Segment 是歌词行中的一段：可选的和弦标注加上它所修饰的文字。
type Segment struct {
	Chord string `json:"chord,omitempty"`
	Text  string `json:"text"`
}

// ChordName 返回去掉可选圆括号后的和弦名，例如 "(Am)" -> "Am"。
func (s Segment) ChordName() string {
	name := strings.TrimPrefix(s.Chord, "(")
	return strings.TrimSuffix(name, ")")
}

// LyricLine 是一行歌词。
type LyricLine struct {
	Segments []Segment `json:"segments"`
	Indented bool      `json:"indented,omitempty"`
	Bold     bool      `json:"bold,omitempty"`
}

// Text 拼接各段文字（不含和弦）。
func (l LyricLine) Text() string {
	var b strings.Builder
	for _, seg := range l.Segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// HasChords 判断该行是否带有和弦标注。
func (l LyricLine) HasChords() bool {
	for _, seg := range l.Segments {
		if seg.Chord != "" {
			return true
		}
	}
	return false
}

// IsBlank 判断是否为段落分隔空行。
func (l LyricLine) IsBlank() bool {
	return !l.HasChords() && strings.TrimSpace(l.Text()) == ""
}

// MetaLine 是一条已识别的元信息。
type MetaLine struct {
	Tag   DirectiveTag `json:"tag"`
	Value string       `json:"value"`
}

// Song 是解析后的歌曲，构造后不再修改。
type Song struct {
	Title      string      `json:"title"`
	AltTitles  []string    `json:"altTitles,omitempty"`
	Categories []string    `json:"categories,omitempty"`
	Meta       []MetaLine  `json:"meta"`
	Lyrics     []LyricLine `json:"lyrics"`
	Source     string      `json:"source,omitempty"`
}

// Chords 按首次出现顺序返回歌曲用到的全部和弦名（去重）。
func (s *Song) Chords() []string {
	if s == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, line := range s.Lyrics {
		for _, seg := range line.Segments {
			name := seg.ChordName()
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
