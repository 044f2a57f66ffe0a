package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ByLCY/songbook/chords"
	"github.com/ByLCY/songbook/config"
	"github.com/ByLCY/songbook/internal/logging"
	"github.com/ByLCY/songbook/layout"
	"github.com/ByLCY/songbook/renderer"
	canvasrenderer "github.com/ByLCY/songbook/renderer/canvas"
	fpdfrenderer "github.com/ByLCY/songbook/renderer/fpdf"
	"github.com/ByLCY/songbook/song"
	"github.com/ByLCY/songbook/store"
	"github.com/ByLCY/songbook/wiki"
)

// app 持有一次命令执行所需的配置与日志。
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

// newApp 初始化日志并加载配置，命令行参数覆盖配置。
func newApp(g *Globals) (*app, error) {
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(g.LogFormat)
	if err != nil {
		return nil, err
	}
	logging.Init(os.Stderr, level, format)

	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	return configure(cfg, g)
}

func configure(cfg *config.Config, g *Globals) (*app, error) {
	if g.Backend != "" {
		cfg.Backend = g.Backend
	}
	if g.Offline {
		cfg.Offline = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logging.Component("songbook")}, nil
}

func (a *app) openStore() (*store.Store, error) {
	return store.Open(a.cfg.Path(a.cfg.Database))
}

func (a *app) resolver(db *store.Store) *song.Resolver {
	opts := song.Options{
		SongsDir:   a.cfg.Path(a.cfg.SongsDir),
		Offline:    a.cfg.Offline,
		Categories: a.cfg.IndexCategories,
		Logger:     logging.Component("song"),
	}
	if db != nil {
		opts.Cache = db
	}
	if !a.cfg.Offline {
		opts.Wiki = wiki.New(a.cfg.WikiURL, wiki.WithLogger(logging.Component("wiki")))
	}
	return song.NewResolver(opts)
}

func (a *app) newRenderer() (renderer.Renderer, error) {
	switch a.cfg.Backend {
	case config.BackendCanvas:
		return canvasrenderer.New(canvasrenderer.Options{BaseDir: a.cfg.BaseDir, Fonts: a.cfg.FontFiles}), nil
	case config.BackendFPDF:
		r, err := fpdfrenderer.New(fpdfrenderer.Options{
			BaseDir: a.cfg.BaseDir,
			Fonts:   a.cfg.FontFiles,
			Logger:  logging.Component("render"),
		})
		if err != nil {
			return nil, fmt.Errorf("初始化 fpdf 渲染器失败: %w", err)
		}
		return r, nil
	}
	return nil, fmt.Errorf("unknown backend %q", a.cfg.Backend)
}

// collator 按配置的语言排序标题。
func (a *app) collator() layout.Collator {
	return collate.New(language.Make(a.cfg.Locale))
}

// loadBook 按配置加载全部分节，返回加载失败的歌名。
func (a *app) loadBook(ctx context.Context, db *store.Store) (layout.Book, []string, error) {
	r := a.resolver(db)
	book := layout.Book{IndexCategories: a.cfg.IndexCategories}
	var failed []string
	for _, sec := range a.cfg.Sections {
		section, miss, err := r.LoadSection(ctx, sec.Name, sec.Songs, sec.SortByName)
		if err != nil {
			return book, failed, err
		}
		failed = append(failed, miss...)
		book.Sections = append(book.Sections, section)
	}
	return book, failed, nil
}

// build 完成一次完整构建：加载歌曲、排版、渲染、写文件并记录构建。
func (a *app) build(ctx context.Context, db *store.Store, debugPath string) (*store.Build, error) {
	started := time.Now()
	cat, err := a.cfg.Catalogue()
	if err != nil {
		return nil, err
	}
	book, failed, err := a.loadBook(ctx, db)
	if err != nil {
		return nil, err
	}
	r, err := a.newRenderer()
	if err != nil {
		return nil, err
	}

	result, err := layout.Build(book, layout.BuildOptions{
		Settings:  a.cfg.Layout,
		Measurer:  r,
		Collator:  a.collator(),
		Catalogue: cat,
		Fonts:     a.cfg.FontFiles,
		Meta:      a.cfg.Meta,
		Logger:    logging.Component("layout"),
	})
	if err != nil {
		return nil, fmt.Errorf("布局计算失败: %w", err)
	}

	if debugPath != "" {
		if err := writeDebug(result, debugPath); err != nil {
			return nil, err
		}
	}

	pdfBytes, err := r.Render(result)
	if err != nil {
		return nil, fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	output := a.cfg.Path(a.cfg.Output)
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(output, pdfBytes, 0o644); err != nil {
		return nil, fmt.Errorf("写入 PDF 文件失败: %w", err)
	}

	songs := 0
	for _, sec := range book.Sections {
		songs += len(sec.Songs)
	}
	b := store.Build{
		StartedAt: started,
		Output:    output,
		Backend:   a.cfg.Backend,
		Pages:     len(result.Pages),
		Songs:     songs - len(result.Skipped),
		Skipped:   append(failed, result.Skipped...),
		Hash:      store.Hash(pdfBytes),
	}
	if db != nil {
		id, err := db.RecordBuild(ctx, b)
		if err != nil {
			a.logger.Warn("record build failed", "error", err)
		}
		b.ID = id
	}
	a.logger.Info("build finished",
		"id", b.ID, "output", output, "pages", b.Pages, "songs", b.Songs,
		"skipped", len(b.Skipped), "elapsed", time.Since(started))
	return &b, nil
}

// checkChords 返回歌本中用到但目录里没有的和弦，已排序。
func (a *app) checkChords(ctx context.Context, db *store.Store, cat *chords.Catalogue) ([]string, error) {
	book, _, err := a.loadBook(ctx, db)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var missing []string
	for _, sec := range book.Sections {
		for _, s := range sec.Songs {
			for _, name := range s.Chords() {
				if seen[name] {
					continue
				}
				seen[name] = true
				if _, err := cat.Lookup(name); err != nil {
					a.logger.Debug("chord without fingering", "chord", name, "song", s.Title)
					missing = append(missing, name)
				}
			}
		}
	}
	sort.Strings(missing)
	return missing, nil
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
