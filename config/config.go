// Package config 读取歌本的 JSON 配置：歌曲分节、字体文件、排版参数覆盖与附加和弦。
// 文件中的值覆盖默认值，环境变量（含同目录 .env）再覆盖文件。
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ByLCY/songbook/chords"
	"github.com/ByLCY/songbook/layout"
)

// Config 是解析并校验后的完整配置。路径均已解析为相对于配置文件目录。
type Config struct {
	SongsDir string
	Output   string
	Database string
	WikiURL  string
	Locale   string
	Backend  string
	// Offline 时不访问 wiki，找不到本地文件的歌曲直接跳过。
	Offline bool

	Meta            layout.DocumentMeta
	Sections        []Section
	IndexCategories []string
	FontFiles       []layout.FontResource
	Layout          layout.Settings
	Chords          []chords.Entry

	// BaseDir 是配置文件所在目录。
	BaseDir string
}

// Section 是一节歌曲。JSON 中既可写成对象，也可写成 [name, songs, sortByName] 三元组。
type Section struct {
	Name       string   `json:"name"`
	Songs      []string `json:"songs"`
	SortByName bool     `json:"sortByName"`
}

// UnmarshalJSON 同时接受对象与三元组写法。
func (s *Section) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var tuple []json.RawMessage
		if err := json.Unmarshal(trimmed, &tuple); err != nil {
			return err
		}
		if len(tuple) != 3 {
			return fmt.Errorf("section tuple needs 3 elements, got %d", len(tuple))
		}
		if err := json.Unmarshal(tuple[0], &s.Name); err != nil {
			return fmt.Errorf("section name: %w", err)
		}
		if err := json.Unmarshal(tuple[1], &s.Songs); err != nil {
			return fmt.Errorf("section songs: %w", err)
		}
		if err := json.Unmarshal(tuple[2], &s.SortByName); err != nil {
			return fmt.Errorf("section sortByName: %w", err)
		}
		return nil
	}
	type plain Section
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	return dec.Decode((*plain)(s))
}

// ChordEntry 是配置中的和弦条目，alias 与 frets 二选一。
type ChordEntry struct {
	Name  string `json:"name"`
	Base  int    `json:"base"`
	Frets []int  `json:"frets"`
	Alias string `json:"alias"`
}

// file 是配置文件的原始结构，指针字段为 nil 表示沿用默认值。
type file struct {
	SongsDir        *string                 `json:"songsDir"`
	Output          *string                 `json:"output"`
	Database        *string                 `json:"database"`
	WikiURL         *string                 `json:"wikiUrl"`
	Locale          *string                 `json:"locale"`
	Backend         *string                 `json:"backend"`
	Offline         *bool                   `json:"offline"`
	Meta            *layout.DocumentMeta    `json:"meta"`
	Sections        []Section               `json:"sections"`
	IndexCategories []string                `json:"indexCategories"`
	FontFiles       []layout.FontResource   `json:"fontFiles"`
	Layout          *LayoutOverride         `json:"layout"`
	Fonts           map[string]FontOverride `json:"fonts"`
	Labels          *LabelsOverride         `json:"labels"`
	Chords          []ChordEntry            `json:"chords"`
}

// Default 返回不含任何歌曲的默认配置。
func Default() *Config {
	return &Config{
		SongsDir: "songs",
		Output:   "songbook.pdf",
		Database: "songbook.db",
		WikiURL:  "https://www.wikispiv.com",
		Locale:   "uk",
		Backend:  BackendFPDF,
		Meta:     layout.DocumentMeta{Creator: "songbook"},
		Layout:   layout.DefaultSettings(),
	}
}

// 渲染后端名称。
const (
	BackendFPDF   = "fpdf"
	BackendCanvas = "canvas"
)

// Load 读取配置文件，依次应用文件覆盖、环境变量覆盖并校验。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置 %s 失败: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("解析配置路径失败: %w", err)
	}
	baseDir := filepath.Dir(abs)

	cfg, err := Parse(data, baseDir)
	if err != nil {
		return nil, fmt.Errorf("解析配置 %s 失败: %w", path, err)
	}
	env, err := loadEnv(baseDir)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(env)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse 解析配置内容并合并到默认值上，不读取环境变量，不做校验。
func Parse(data []byte, baseDir string) (*Config, error) {
	var f file
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.BaseDir = baseDir
	setString(&cfg.SongsDir, f.SongsDir)
	setString(&cfg.Output, f.Output)
	setString(&cfg.Database, f.Database)
	setString(&cfg.WikiURL, f.WikiURL)
	setString(&cfg.Locale, f.Locale)
	setString(&cfg.Backend, f.Backend)
	if f.Offline != nil {
		cfg.Offline = *f.Offline
	}
	if f.Meta != nil {
		cfg.Meta = *f.Meta
		if cfg.Meta.Creator == "" {
			cfg.Meta.Creator = "songbook"
		}
	}
	cfg.Sections = f.Sections
	cfg.IndexCategories = f.IndexCategories
	cfg.FontFiles = f.FontFiles

	if f.Layout != nil {
		f.Layout.apply(&cfg.Layout)
	}
	for role, override := range f.Fonts {
		spec, err := fontRole(&cfg.Layout.Fonts, role)
		if err != nil {
			return nil, err
		}
		override.apply(spec)
	}
	if f.Labels != nil {
		f.Labels.apply(&cfg.Layout.Labels)
	}

	for _, c := range f.Chords {
		entry, err := c.entry()
		if err != nil {
			return nil, err
		}
		cfg.Chords = append(cfg.Chords, entry)
	}
	return cfg, nil
}

func (c ChordEntry) entry() (chords.Entry, error) {
	e := chords.Entry{Name: c.Name, Base: c.Base, Alias: c.Alias}
	if c.Alias != "" {
		if len(c.Frets) > 0 {
			return e, &ValidationError{Field: "chords." + c.Name, Reason: "alias and frets are mutually exclusive"}
		}
		return e, nil
	}
	if len(c.Frets) != chords.Strings {
		return e, &ValidationError{Field: "chords." + c.Name, Reason: fmt.Sprintf("need %d frets, got %d", chords.Strings, len(c.Frets))}
	}
	copy(e.Frets[:], c.Frets)
	return e, nil
}

// Catalogue 构造内置和弦与配置和弦合并后的目录。
func (c *Config) Catalogue() (*chords.Catalogue, error) {
	return chords.New(chords.Merge(chords.BuiltinEntries(), c.Chords))
}

// Path 把相对路径解析到配置目录下。
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
