// Package song 把配置中的歌名解析为本地歌词文件。本地没有时到 wiki 查找主标题，
// 仍然没有则下载页面并保存到歌曲目录。
package song

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ByLCY/songbook/dsl"
	"github.com/ByLCY/songbook/layout"
	"github.com/ByLCY/songbook/store"
)

// Ext 是歌词文件扩展名。
const Ext = ".cho"

// ErrNotFound 表示离线模式下本地没有对应文件。
var ErrNotFound = errors.New("song: not found")

// Wiki 是 Resolver 需要的远端能力，由 *wiki.Client 实现。
type Wiki interface {
	Standardize(ctx context.Context, title string) (string, error)
	FetchSheet(ctx context.Context, title string) (string, error)
}

// TitleCache 缓存歌名到主标题的映射，由 *store.Store 实现。
// 未命中时 Title 返回 store.ErrNotFound。
type TitleCache interface {
	Title(ctx context.Context, query string) (string, error)
	SaveTitle(ctx context.Context, query, title string) error
}

// Options 配置 Resolver。Wiki 为 nil 时等同于离线。
type Options struct {
	SongsDir   string
	Wiki       Wiki
	Cache      TitleCache
	Offline    bool
	Categories []string
	Logger     *slog.Logger
}

// Resolver 定位、下载并解析歌曲。
type Resolver struct {
	dir        string
	wiki       Wiki
	cache      TitleCache
	offline    bool
	categories []string
	logger     *slog.Logger
}

// NewResolver 创建 Resolver。
func NewResolver(opts Options) *Resolver {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		dir:        opts.SongsDir,
		wiki:       opts.Wiki,
		cache:      opts.Cache,
		offline:    opts.Offline || opts.Wiki == nil,
		categories: opts.Categories,
		logger:     logger,
	}
}

// SnakeCase 把歌名转换为文件名主体：小写，空格变下划线，只保留字母、数字和下划线，
// 并合并连续的下划线。转换不可逆。
func SnakeCase(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if r == ' ' {
			r = '_'
		}
		if r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
		}
	}
	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	return out
}

// Path 返回歌名对应的本地文件路径。
func (r *Resolver) Path(title string) string {
	return filepath.Join(r.dir, SnakeCase(title)+Ext)
}

func (r *Resolver) exists(title string) bool {
	info, err := os.Stat(r.Path(title))
	return err == nil && !info.IsDir()
}

// Locate 返回歌曲的本地文件路径，必要时从 wiki 下载。
func (r *Resolver) Locate(ctx context.Context, title string) (string, error) {
	if r.exists(title) {
		return r.Path(title), nil
	}
	if r.offline {
		return "", fmt.Errorf("%w: %q (%s)", ErrNotFound, title, r.Path(title))
	}
	main, err := r.standardize(ctx, title)
	if err != nil {
		return "", err
	}
	if r.exists(main) {
		r.logger.Debug("found song under main title", "title", title, "main", main)
		return r.Path(main), nil
	}
	r.logger.Info("song not found locally, downloading", "title", title, "main", main)
	return r.download(ctx, main)
}

// Fetch 下载歌曲并写入歌曲目录。overwrite 为 false 且文件已存在时不重新下载。
func (r *Resolver) Fetch(ctx context.Context, title string, overwrite bool) (string, error) {
	if r.offline {
		return "", fmt.Errorf("%w: cannot fetch %q while offline", ErrNotFound, title)
	}
	main, err := r.standardize(ctx, title)
	if err != nil {
		return "", err
	}
	if !overwrite && r.exists(main) {
		return r.Path(main), nil
	}
	return r.download(ctx, main)
}

func (r *Resolver) standardize(ctx context.Context, title string) (string, error) {
	if r.cache != nil {
		main, err := r.cache.Title(ctx, title)
		if err == nil {
			return main, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			r.logger.Warn("title cache lookup failed", "title", title, "error", err)
		}
	}
	main, err := r.wiki.Standardize(ctx, title)
	if err != nil {
		return "", fmt.Errorf("查找 %q 的主标题失败: %w", title, err)
	}
	if r.cache != nil {
		if err := r.cache.SaveTitle(ctx, title, main); err != nil {
			r.logger.Warn("title cache write failed", "title", title, "error", err)
		}
	}
	return main, nil
}

func (r *Resolver) download(ctx context.Context, title string) (string, error) {
	sheet, err := r.wiki.FetchSheet(ctx, title)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("创建歌曲目录失败: %w", err)
	}
	path := r.Path(title)
	if err := os.WriteFile(path, []byte(sheet), 0o644); err != nil {
		return "", fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	r.logger.Info("saved song", "title", title, "path", path)
	return path, nil
}

// Load 定位并解析一首歌。文件中的 {title:} 优先于传入的歌名。
func (r *Resolver) Load(ctx context.Context, title string) (*dsl.Song, error) {
	path, err := r.Locate(ctx, title)
	if err != nil {
		return nil, err
	}
	s, diags, err := dsl.ParseFile(path, dsl.ParseOptions{
		Title:      title,
		Categories: r.categories,
		Source:     path,
		Logger:     r.logger,
	})
	if err != nil {
		return nil, err
	}
	for _, d := range diags {
		r.logger.Debug("sheet diagnostic", "song", s.Title, "detail", d.String())
	}
	return s, nil
}

// LoadSection 依次加载一节中的歌曲。加载失败的歌曲记录日志后跳过，
// 其标题出现在返回的 failed 中。
func (r *Resolver) LoadSection(ctx context.Context, name string, titles []string, sortByName bool) (section layout.Section, failed []string, err error) {
	section = layout.Section{Name: name, SortByName: sortByName}
	for _, title := range titles {
		if err := ctx.Err(); err != nil {
			return section, failed, err
		}
		s, err := r.Load(ctx, title)
		if err != nil {
			r.logger.Warn("skipping song", "section", name, "title", title, "error", err)
			failed = append(failed, title)
			continue
		}
		section.Songs = append(section.Songs, s)
	}
	return section, failed, nil
}
