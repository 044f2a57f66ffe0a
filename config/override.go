package config

import (
	"sort"
	"strings"

	"github.com/ByLCY/songbook/layout"
)

// LayoutOverride 覆盖排版参数。长度字段接受数字（pt）或带单位的字符串，如 "5.5in"。
type LayoutOverride struct {
	PageWidth  *layout.Length  `json:"pageWidth"`
	PageHeight *layout.Length  `json:"pageHeight"`
	Margin     *MarginOverride `json:"margin"`
	Indent     *layout.Length  `json:"indent"`

	MinColumnMargin *layout.Length `json:"minColumnMargin"`
	MaxColumnMargin *layout.Length `json:"maxColumnMargin"`
	MinSongHeight   *layout.Length `json:"minSongHeight"`
	MinImageHeight  *layout.Length `json:"minImageHeight"`
	SongMargin      *layout.Length `json:"songMargin"`
	SongTitleMargin *layout.Length `json:"songTitleMargin"`
	LineSpacing     *layout.Length `json:"lineSpacing"`
	ShowAltTitles   *bool          `json:"showAltTitles"`

	ChordWidth          *layout.Length `json:"chordWidth"`
	ChordStringHeight   *layout.Length `json:"chordStringHeight"`
	ChordMarginH        *layout.Length `json:"chordMarginH"`
	ChordMarginV        *layout.Length `json:"chordMarginV"`
	ChordCircleDiameter *layout.Length `json:"chordCircleDiameter"`
	ChordInfoFontSize   *float64       `json:"chordInfoFontSize"`
	MaxFrets            *int           `json:"maxFrets"`

	IndexSongPadding     *layout.Length `json:"indexSongPadding"`
	IndexSectionMinSpace *layout.Length `json:"indexSectionMinSpace"`
	FooterOffset         *layout.Length `json:"footerOffset"`
}

// MarginOverride 分别覆盖四个边距。
type MarginOverride struct {
	Top    *layout.Length `json:"top"`
	Left   *layout.Length `json:"left"`
	Right  *layout.Length `json:"right"`
	Bottom *layout.Length `json:"bottom"`
}

func setLength(dst *float64, l *layout.Length) {
	if l != nil {
		*dst = l.ToPT()
	}
}

func (o *LayoutOverride) apply(s *layout.Settings) {
	setLength(&s.PageWidth, o.PageWidth)
	setLength(&s.PageHeight, o.PageHeight)
	if m := o.Margin; m != nil {
		setLength(&s.Margin.Top, m.Top)
		setLength(&s.Margin.Left, m.Left)
		setLength(&s.Margin.Right, m.Right)
		setLength(&s.Margin.Bottom, m.Bottom)
	}
	setLength(&s.Indent, o.Indent)
	setLength(&s.MinColumnMargin, o.MinColumnMargin)
	setLength(&s.MaxColumnMargin, o.MaxColumnMargin)
	setLength(&s.MinSongHeight, o.MinSongHeight)
	setLength(&s.MinImageHeight, o.MinImageHeight)
	setLength(&s.SongMargin, o.SongMargin)
	setLength(&s.SongTitleMargin, o.SongTitleMargin)
	setLength(&s.LineSpacing, o.LineSpacing)
	if o.ShowAltTitles != nil {
		s.ShowAltTitles = *o.ShowAltTitles
	}
	setLength(&s.ChordWidth, o.ChordWidth)
	setLength(&s.ChordStringHeight, o.ChordStringHeight)
	setLength(&s.ChordMarginH, o.ChordMarginH)
	setLength(&s.ChordMarginV, o.ChordMarginV)
	setLength(&s.ChordCircleDiameter, o.ChordCircleDiameter)
	if o.ChordInfoFontSize != nil {
		s.ChordInfoFontSize = *o.ChordInfoFontSize
	}
	if o.MaxFrets != nil {
		s.MaxFrets = *o.MaxFrets
	}
	setLength(&s.IndexSongPadding, o.IndexSongPadding)
	setLength(&s.IndexSectionMinSpace, o.IndexSectionMinSpace)
	setLength(&s.FooterOffset, o.FooterOffset)
}

// FontOverride 覆盖一个字体角色的部分属性。
type FontOverride struct {
	Family *string  `json:"family"`
	Style  *string  `json:"style"`
	Size   *float64 `json:"size"`
	Color  *[3]int  `json:"color"`
}

func (o FontOverride) apply(spec *layout.FontSpec) {
	setString(&spec.Family, o.Family)
	setString(&spec.Style, o.Style)
	if o.Size != nil {
		spec.Size = *o.Size
	}
	if o.Color != nil {
		spec.Color = layout.Color{R: o.Color[0], G: o.Color[1], B: o.Color[2]}
	}
}

// fontRole 返回角色名对应的字体规格，角色名大小写不敏感。
func fontRole(f *layout.Fonts, role string) (*layout.FontSpec, error) {
	roles := fontRoles(f)
	if spec, ok := roles[strings.ToLower(role)]; ok {
		return spec, nil
	}
	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return nil, &ValidationError{Field: "fonts." + role, Reason: "unknown font role, expected one of " + strings.Join(names, ", ")}
}

func fontRoles(f *layout.Fonts) map[string]*layout.FontSpec {
	return map[string]*layout.FontSpec{
		"title":      &f.Title,
		"alttitle":   &f.AltTitle,
		"subtitle":   &f.Subtitle,
		"body":       &f.Body,
		"bold":       &f.Bold,
		"chord":      &f.Chord,
		"indextitle": &f.IndexTitle,
		"indexentry": &f.IndexEntry,
	}
}

// LabelsOverride 覆盖页面文字。
type LabelsOverride struct {
	IndexTitle       *string `json:"indexTitle"`
	ChordsTitle      *string `json:"chordsTitle"`
	AltTitleFormat   *string `json:"altTitleFormat"`
	PageNumberFormat *string `json:"pageNumberFormat"`
	FretFormat       *string `json:"fretFormat"`
}

func (o *LabelsOverride) apply(l *layout.Labels) {
	setString(&l.IndexTitle, o.IndexTitle)
	setString(&l.ChordsTitle, o.ChordsTitle)
	setString(&l.AltTitleFormat, o.AltTitleFormat)
	setString(&l.PageNumberFormat, o.PageNumberFormat)
	setString(&l.FretFormat, o.FretFormat)
}
