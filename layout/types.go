package layout

// 该文件定义布局结果与资源描述，供布局计算、渲染与调试 JSON 共用。
// 所有坐标与尺寸的单位都是 pt，原点在页面左上角。

// Result 保存布局后的页面、索引与和弦信息。
type Result struct {
	Pages     []Page         `json:"pages"`
	Resources ResourceSet    `json:"resources"`
	Meta      DocumentMeta   `json:"meta"`
	Index     []IndexSection `json:"index"`
	Chords    []string       `json:"chords"`
	Skipped   []string       `json:"skipped,omitempty"`
}

// ResourceSet 记录渲染时需要加载的字体。
type ResourceSet struct {
	Fonts []FontResource `json:"fonts"`
}

// FontResource 描述字体文件。Src 为空表示使用渲染后端的内置字体，
// "embed:<name>" 指向 fonts 包中的内嵌字体，其余视为文件路径。
type FontResource struct {
	Family string `json:"family"`
	Style  string `json:"style"`
	Src    string `json:"src"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// FontSpec 是一个字体角色的完整描述。Style 取 ""、"B"、"I" 或 "BI"。
type FontSpec struct {
	Family string  `json:"family"`
	Style  string  `json:"style,omitempty"`
	Size   float64 `json:"size"`
	Color  Color   `json:"color"`
}

// WithStyle 返回替换了样式的副本。
func (f FontSpec) WithStyle(style string) FontSpec {
	f.Style = style
	return f
}

// WithSize 返回替换了字号的副本。
func (f FontSpec) WithSize(size float64) FontSpec {
	f.Size = size
	return f
}

// Margin 页面边距。
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Page 记录页面尺寸与可直接渲染的元素。
type Page struct {
	Number  int       `json:"number"`
	Width   float64   `json:"width"`
	Height  float64   `json:"height"`
	Margin  Margin    `json:"margin"`
	Texts   []TextRun `json:"texts"`
	Lines   []Line    `json:"lines,omitempty"`
	Circles []Circle  `json:"circles,omitempty"`
	Links   []Link    `json:"links,omitempty"`
}

// TextRun 是一段已定位的单行文本。Y 为行框顶部，Height 为行框高度，
// 渲染器按 fpdf 的 cell 约定把基线放在 Y + Height/2 + 0.3*Size。
// Width 大于 0 时 Align 在 [X, X+Width] 内生效。
type TextRun struct {
	Content string   `json:"content"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Width   float64  `json:"width,omitempty"`
	Height  float64  `json:"height"`
	Align   string   `json:"align,omitempty"`
	Font    FontSpec `json:"font"`
}

// Baseline 返回文本基线的 y 坐标。
func (t TextRun) Baseline() float64 {
	return t.Y + t.Height/2 + 0.3*t.Font.Size
}

// Line 表示一条线段。
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color Color   `json:"color"`
	Width float64 `json:"width"` // <=0 时由渲染器给默认值
}

// Circle 表示一个实心圆。
type Circle struct {
	CX    float64 `json:"cx"`
	CY    float64 `json:"cy"`
	R     float64 `json:"r"`
	Color Color   `json:"color"`
}

// Link 是指向文档内某页的可点击区域。
type Link struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	W          float64 `json:"w"`
	H          float64 `json:"h"`
	TargetPage int     `json:"targetPage"`
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}

// MeasuredBlock 是一次试排的结果。
type MeasuredBlock struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// IndexEntry 是索引中的一行。
type IndexEntry struct {
	Title string `json:"title"`
	Page  int    `json:"page"`
}

// IndexSection 是索引中的一节。
type IndexSection struct {
	Name    string       `json:"name"`
	Entries []IndexEntry `json:"entries"`
}
