package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ByLCY/songbook/binding"
	"github.com/ByLCY/songbook/layout"
)

// ErrInvalidConfig 是所有校验错误的哨兵值。
var ErrInvalidConfig = errors.New("invalid config")

// ValidationError 指出出错的字段。
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidConfig }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate 检查配置是否可以用于构建歌本。
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFPDF, BackendCanvas:
	default:
		return invalid("backend", "unknown backend %q", c.Backend)
	}
	if strings.TrimSpace(c.SongsDir) == "" {
		return invalid("songsDir", "must not be empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return invalid("output", "must not be empty")
	}
	if !c.Offline && !strings.HasPrefix(c.WikiURL, "http://") && !strings.HasPrefix(c.WikiURL, "https://") {
		return invalid("wikiUrl", "must be an http(s) URL, got %q", c.WikiURL)
	}
	if err := validateLayout(c.Layout); err != nil {
		return err
	}
	seen := map[string]bool{}
	for i, s := range c.Sections {
		if strings.TrimSpace(s.Name) == "" {
			return invalid(fmt.Sprintf("sections[%d].name", i), "must not be empty")
		}
		if seen[s.Name] {
			return invalid(fmt.Sprintf("sections[%d].name", i), "duplicate section %q", s.Name)
		}
		seen[s.Name] = true
	}
	for i, f := range c.FontFiles {
		if f.Family == "" {
			return invalid(fmt.Sprintf("fontFiles[%d].family", i), "must not be empty")
		}
		if f.Src == "" {
			return invalid(fmt.Sprintf("fontFiles[%d].src", i), "must not be empty")
		}
	}
	if _, err := c.Catalogue(); err != nil {
		return &ValidationError{Field: "chords", Reason: err.Error()}
	}
	return nil
}

func validateLayout(s layout.Settings) error {
	if s.PageWidth <= 0 || s.PageHeight <= 0 {
		return invalid("layout.pageWidth", "page size must be positive")
	}
	if s.UsableWidth() <= 0 {
		return invalid("layout.margin", "left and right margins leave no usable width")
	}
	if s.UsableHeight() <= 0 {
		return invalid("layout.margin", "top and bottom margins leave no usable height")
	}
	if s.MinColumnMargin > s.MaxColumnMargin {
		return invalid("layout.minColumnMargin", "greater than maxColumnMargin")
	}
	if s.MaxFrets < 1 {
		return invalid("layout.maxFrets", "must be at least 1")
	}
	if s.ChordWidth <= 0 || s.ChordStringHeight <= 0 {
		return invalid("layout.chordWidth", "chord diagram size must be positive")
	}
	for name, spec := range fontRoles(&s.Fonts) {
		if spec.Family == "" {
			return invalid("fonts."+name+".family", "must not be empty")
		}
		if spec.Size <= 0 {
			return invalid("fonts."+name+".size", "must be positive")
		}
	}
	labels := []struct {
		field   string
		text    string
		allowed []string
	}{
		{"labels.altTitleFormat", s.Labels.AltTitleFormat, []string{"alt", "title"}},
		{"labels.pageNumberFormat", s.Labels.PageNumberFormat, []string{"page"}},
		{"labels.fretFormat", s.Labels.FretFormat, []string{"fret"}},
	}
	for _, l := range labels {
		if err := binding.Validate(l.text, l.allowed...); err != nil {
			return invalid(l.field, "%v", err)
		}
	}
	return nil
}
