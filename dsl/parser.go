package dsl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// lyricLexer 把一行歌词切成和弦标注与普通文字。
	lyricLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Chord", Pattern: `\[[^\]]*\]`},
		{Name: "Text", Pattern: `[^\[]+`},
		{Name: "Bracket", Pattern: `\[`},
	})

	chordTokenType = mustTokenType("Chord")

	directivePattern = regexp.MustCompile(`^\{(?:meta:)?\s*([A-Za-z_][A-Za-z0-9_]*):?\s*(.*)\}`)
	boldPattern      = regexp.MustCompile(`^<(?:bold|b)>(.*)</(?:bold|b)>$`)
)

// LineKind 区分一行源文本的类别。
type LineKind int

const (
	LineLyric LineKind = iota
	LineComment
	LineDirective
	LineUnsupported
)

// Line 是 ClassifyLine 的结果。
type Line struct {
	Kind LineKind
	Tag  DirectiveTag
	Name string // 指令名（LineDirective/LineUnsupported）
	Args string
	Raw  string
}

// ClassifyLine 对任意一行返回其类别，不会失败。
func ClassifyLine(raw string) Line {
	raw = strings.TrimRight(raw, "\r\n")
	if strings.HasPrefix(raw, "#") {
		return Line{Kind: LineComment, Raw: raw}
	}
	m := directivePattern.FindStringSubmatch(raw)
	if m == nil {
		return Line{Kind: LineLyric, Raw: raw}
	}
	name := strings.ToLower(m[1])
	args := strings.TrimSpace(m[2])
	tag := LookupTag(name)
	if tag == TagUnknown {
		return Line{Kind: LineUnsupported, Name: name, Args: args, Raw: raw}
	}
	return Line{Kind: LineDirective, Tag: tag, Name: name, Args: args, Raw: raw}
}

// DiagnosticKind 标识非致命的解析提示。
type DiagnosticKind int

const (
	UnsupportedDirective DiagnosticKind = iota
	FilteredCategory
)

// Diagnostic 记录被丢弃的行。
type Diagnostic struct {
	Kind    DiagnosticKind
	LineNo  int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.LineNo, d.Message)
}

// ParseOptions 控制单首歌曲的解析。
type ParseOptions struct {
	// Title 为外部提供的标题；若文件中含 {title:} 则以文件为准。
	Title string
	// Categories 为允许进入索引的分类，空表示全部保留。
	Categories []string
	Source     string
	Logger     *slog.Logger
}

// ParseFile 读取并解析一个歌词文件。
func ParseFile(path string, opts ParseOptions) (*Song, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open song %s: %w", path, err)
	}
	defer f.Close()
	if opts.Source == "" {
		opts.Source = path
	}
	return ParseReader(f, opts)
}

// ParseReader 从 reader 读取全部行后解析。
func ParseReader(r io.Reader, opts ParseOptions) (*Song, []Diagnostic, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read song: %w", err)
	}
	song, diags := ParseSheet(lines, opts)
	return song, diags, nil
}

// ParseSheet 将歌词文件的各行解析为 Song。所有问题都以 Diagnostic 形式返回。
func ParseSheet(lines []string, opts ParseOptions) (*Song, []Diagnostic) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	allowed := map[string]bool{}
	for _, c := range opts.Categories {
		allowed[c] = true
	}

	song := &Song{Title: opts.Title, Source: opts.Source}
	var diags []Diagnostic
	for i, raw := range lines {
		line := ClassifyLine(raw)
		switch line.Kind {
		case LineComment:
			continue
		case LineUnsupported:
			d := Diagnostic{Kind: UnsupportedDirective, LineNo: i + 1, Message: "unsupported directive " + line.Name}
			diags = append(diags, d)
			logger.Warn("跳过不支持的指令", "directive", line.Name, "line", i+1, "source", opts.Source)
		case LineDirective:
			switch line.Tag {
			case TagTitle:
				song.Title = line.Args
				song.Meta = append(song.Meta, MetaLine{Tag: TagTitle, Value: line.Args})
			case TagAltTitle:
				song.AltTitles = append(song.AltTitles, line.Args)
				song.Meta = append(song.Meta, MetaLine{Tag: TagAltTitle, Value: line.Args})
			case TagSubtitle:
				song.Meta = append(song.Meta, MetaLine{Tag: TagSubtitle, Value: line.Args})
			case TagCategory:
				if len(allowed) > 0 && !allowed[line.Args] {
					diags = append(diags, Diagnostic{Kind: FilteredCategory, LineNo: i + 1, Message: "category " + line.Args + " not indexed"})
					continue
				}
				song.Categories = append(song.Categories, line.Args)
			}
		default:
			song.Lyrics = append(song.Lyrics, ParseLyric(line.Raw))
		}
	}

	// 文件在元信息之后通常带一个空行
	if len(song.Lyrics) > 0 && song.Lyrics[0].IsBlank() {
		song.Lyrics = song.Lyrics[1:]
	}
	return song, diags
}

// ParseLyric 解析单行歌词：前导 tab 表示缩进，整行 <bold> 包裹表示加粗，[chord] 切分片段。
func ParseLyric(raw string) LyricLine {
	raw = strings.TrimRight(raw, "\r\n")
	out := LyricLine{Indented: strings.HasPrefix(raw, "\t")}
	text := strings.TrimSpace(raw)
	if m := boldPattern.FindStringSubmatch(text); m != nil {
		out.Bold = true
		text = m[1]
	}
	if !strings.Contains(text, "[") {
		out.Segments = []Segment{{Text: text}}
		return out
	}
	segments, err := splitSegments(text)
	if err != nil {
		out.Segments = []Segment{{Text: text}}
		return out
	}
	out.Segments = segments
	return out
}

func splitSegments(text string) ([]Segment, error) {
	lex, err := lyricLexer.LexString("", text)
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}
	var (
		out     []Segment
		current Segment
		started bool
	)
	for _, tok := range tokens {
		if tok.EOF() {
			break
		}
		if tok.Type == chordTokenType {
			if started {
				out = append(out, current)
			}
			current = Segment{Chord: strings.TrimSpace(tok.Value[1 : len(tok.Value)-1])}
			started = true
			continue
		}
		current.Text += tok.Value
		started = true
	}
	if started {
		out = append(out, current)
	}
	if len(out) == 0 {
		out = []Segment{{Text: ""}}
	}
	return out, nil
}

func mustTokenType(name string) lexer.TokenType {
	tt, ok := lyricLexer.Symbols()[name]
	if !ok {
		panic(fmt.Sprintf("token %s not defined", name))
	}
	return tt
}
