package layout

// Settings 是布局阶段的全部常量，构造后只读。单位均为 pt。
type Settings struct {
	PageWidth  float64 `json:"pageWidth"`
	PageHeight float64 `json:"pageHeight"`
	Margin     Margin  `json:"margin"`
	Indent     float64 `json:"indent"`

	MinColumnMargin float64 `json:"minColumnMargin"`
	MaxColumnMargin float64 `json:"maxColumnMargin"`
	MinSongHeight   float64 `json:"minSongHeight"`
	MinImageHeight  float64 `json:"minImageHeight"`
	SongMargin      float64 `json:"songMargin"`
	SongTitleMargin float64 `json:"songTitleMargin"`
	LineSpacing     float64 `json:"lineSpacing"`
	ShowAltTitles   bool    `json:"showAltTitles"`

	ChordWidth          float64 `json:"chordWidth"`
	ChordStringHeight   float64 `json:"chordStringHeight"`
	ChordMarginH        float64 `json:"chordMarginH"`
	ChordMarginV        float64 `json:"chordMarginV"`
	ChordCircleDiameter float64 `json:"chordCircleDiameter"`
	ChordInfoFontSize   float64 `json:"chordInfoFontSize"`
	MaxFrets            int     `json:"maxFrets"`

	IndexSongPadding     float64 `json:"indexSongPadding"`
	IndexSectionMinSpace float64 `json:"indexSectionMinSpace"`
	FooterOffset         float64 `json:"footerOffset"`

	Fonts  Fonts  `json:"fonts"`
	Labels Labels `json:"labels"`
}

// Fonts 是字体角色表。
type Fonts struct {
	Title      FontSpec `json:"title"`
	AltTitle   FontSpec `json:"altTitle"`
	Subtitle   FontSpec `json:"subtitle"`
	Body       FontSpec `json:"body"`
	Bold       FontSpec `json:"bold"`
	Chord      FontSpec `json:"chord"`
	IndexTitle FontSpec `json:"indexTitle"`
	IndexEntry FontSpec `json:"indexEntry"`
}

// Labels 是页面上出现的固定文字与模板。模板使用 binding 包的 ${name} 语法。
type Labels struct {
	IndexTitle       string `json:"indexTitle"`
	ChordsTitle      string `json:"chordsTitle"`
	AltTitleFormat   string `json:"altTitleFormat"`
	PageNumberFormat string `json:"pageNumberFormat"`
	FretFormat       string `json:"fretFormat"`
}

// DefaultSettings 返回 5.5in x 8.5in 小册子的默认排版参数。
func DefaultSettings() Settings {
	black := Color{}
	return Settings{
		PageWidth:  Length{Value: 5.5, Unit: UnitIN}.ToPT(),
		PageHeight: Length{Value: 8.5, Unit: UnitIN}.ToPT(),
		Margin:     Margin{Top: 30, Left: 28, Right: 28, Bottom: 28},
		Indent:     20,

		MinColumnMargin: 15,
		MaxColumnMargin: 30,
		MinSongHeight:   70,
		MinImageHeight:  150,
		SongMargin:      20,
		SongTitleMargin: 10,
		LineSpacing:     1,

		ChordWidth:          50,
		ChordStringHeight:   100,
		ChordMarginH:        20,
		ChordMarginV:        20,
		ChordCircleDiameter: 8,
		ChordInfoFontSize:   7,
		MaxFrets:            4,

		IndexSongPadding:     3,
		IndexSectionMinSpace: 50,
		FooterOffset:         20,

		Fonts: Fonts{
			Title:      FontSpec{Family: "Helvetica", Size: 20, Color: black},
			AltTitle:   FontSpec{Family: "Helvetica", Size: 14, Color: black},
			Subtitle:   FontSpec{Family: "Helvetica", Style: "I", Size: 8, Color: black},
			Body:       FontSpec{Family: "Helvetica", Size: 10, Color: black},
			Bold:       FontSpec{Family: "Helvetica", Style: "B", Size: 10, Color: black},
			Chord:      FontSpec{Family: "Helvetica", Style: "B", Size: 8, Color: Color{R: 25, G: 25, B: 25}},
			IndexTitle: FontSpec{Family: "Helvetica", Style: "B", Size: 10, Color: black},
			IndexEntry: FontSpec{Family: "Helvetica", Size: 9, Color: black},
		},
		Labels: Labels{
			IndexTitle:       "Index",
			ChordsTitle:      "Chords",
			AltTitleFormat:   "${alt} (under '${title}')",
			PageNumberFormat: "- ${page} -",
			FretFormat:       "Fret ${fret}",
		},
	}
}

// UsableWidth 是左右边距之间的宽度。
func (s Settings) UsableWidth() float64 {
	return s.PageWidth - s.Margin.Left - s.Margin.Right
}

// UsableHeight 是上下边距之间的高度。
func (s Settings) UsableHeight() float64 {
	return s.PageHeight - s.Margin.Top - s.Margin.Bottom
}

// ChordHeight 是弦线加上琴枕的高度。
func (s Settings) ChordHeight() float64 {
	return s.ChordStringHeight + 3
}
