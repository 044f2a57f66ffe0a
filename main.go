// Command songbook 把歌词文件排版成带和弦图与索引的 PDF 歌本。
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ByLCY/songbook/chords"
	"github.com/ByLCY/songbook/fonts"
	"github.com/ByLCY/songbook/store"
)

const version = "0.4.0"

// Globals 是所有子命令共享的参数。
type Globals struct {
	Config    string `short:"c" help:"配置文件路径" default:"songbook.json" type:"path"`
	LogLevel  string `name:"log-level" help:"日志级别 (debug|info|warn|error)" default:"info" enum:"debug,info,warn,error"`
	LogFormat string `name:"log-format" help:"日志格式 (text|json)" default:"text" enum:"text,json"`
	Backend   string `help:"覆盖配置中的渲染后端 (fpdf|canvas)"`
	Offline   bool   `help:"不访问 wiki，只使用本地歌词文件"`
}

// CLI 定义命令行。
var CLI struct {
	Globals

	Build   BuildCmd   `cmd:"" default:"withargs" help:"生成 PDF 歌本"`
	Fetch   FetchCmd   `cmd:"" help:"从 wiki 下载歌词文件"`
	Chords  ChordsCmd  `cmd:"" help:"列出、查询或检查和弦"`
	Watch   WatchCmd   `cmd:"" help:"监听歌词与配置变化并自动重建"`
	History HistoryCmd `cmd:"" help:"显示最近的构建记录"`
	Version VersionCmd `cmd:"" help:"显示版本信息"`
}

// BuildCmd 生成一次歌本。
type BuildCmd struct {
	Out   string `short:"o" help:"覆盖输出路径" type:"path"`
	Debug string `help:"布局调试 JSON 输出路径" type:"path"`
}

func (c *BuildCmd) Run(g *Globals, ctx context.Context) error {
	a, err := newApp(g)
	if err != nil {
		return err
	}
	if c.Out != "" {
		a.cfg.Output = c.Out
	}
	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	b, err := a.build(ctx, db, c.Debug)
	if err != nil {
		return err
	}
	fmt.Printf("已生成 PDF：%s（%d 页，%d 首歌）\n", b.Output, b.Pages, b.Songs)
	if len(b.Skipped) > 0 {
		fmt.Printf("跳过：%s\n", strings.Join(b.Skipped, ", "))
	}
	return nil
}

// FetchCmd 下载一首或多首歌。
type FetchCmd struct {
	Titles []string `arg:"" help:"歌名"`
	Force  bool     `short:"f" help:"已存在时也重新下载"`
}

func (c *FetchCmd) Run(g *Globals, ctx context.Context) error {
	a, err := newApp(g)
	if err != nil {
		return err
	}
	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	r := a.resolver(db)
	var failed []string
	for _, title := range c.Titles {
		path, err := r.Fetch(ctx, title, c.Force)
		if err != nil {
			a.logger.Error("fetch failed", "title", title, "error", err)
			failed = append(failed, title)
			continue
		}
		fmt.Printf("%s -> %s\n", title, path)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d 首歌下载失败: %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}

// ChordsCmd 列出和弦目录，查询指定和弦，或检查歌本用到的和弦是否都有指法。
type ChordsCmd struct {
	Names []string `arg:"" optional:"" help:"要查询的和弦名"`
	Check bool     `help:"检查配置中所有歌曲用到的和弦"`
}

func (c *ChordsCmd) Run(g *Globals, ctx context.Context) error {
	a, err := newApp(g)
	if err != nil {
		return err
	}
	cat, err := a.cfg.Catalogue()
	if err != nil {
		return err
	}
	if c.Check {
		db, err := a.openStore()
		if err != nil {
			return err
		}
		defer db.Close()
		missing, err := a.checkChords(ctx, db, cat)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			for _, m := range missing {
				fmt.Println(m)
			}
			return fmt.Errorf("%d 个和弦没有指法", len(missing))
		}
		fmt.Println("所有和弦都有指法")
		return nil
	}

	names := c.Names
	if len(names) == 0 {
		names = cat.Names()
	}
	var unknown []string
	for _, name := range names {
		ch, err := cat.Lookup(name)
		if err != nil {
			if errors.Is(err, chords.ErrUnknownChord) {
				unknown = append(unknown, name)
				continue
			}
			return err
		}
		fmt.Printf("%-8s base %-2d %s\n", ch.Name, ch.Base, formatFrets(ch.Frets))
	}
	if len(unknown) > 0 {
		return fmt.Errorf("未知和弦: %s", strings.Join(unknown, ", "))
	}
	return nil
}

func formatFrets(frets [chords.Strings]int) string {
	parts := make([]string, len(frets))
	for i, f := range frets {
		if f < 0 {
			parts[i] = "x"
		} else {
			parts[i] = fmt.Sprint(f)
		}
	}
	return strings.Join(parts, " ")
}

// WatchCmd 持续监听并重建。
type WatchCmd struct {
	Debounce time.Duration `help:"事件合并等待时间" default:"500ms"`
	Debug    string        `help:"布局调试 JSON 输出路径" type:"path"`
}

func (c *WatchCmd) Run(g *Globals, ctx context.Context) error {
	a, err := newApp(g)
	if err != nil {
		return err
	}
	return a.watch(ctx, g, c.Debounce, c.Debug)
}

// HistoryCmd 显示构建记录。
type HistoryCmd struct {
	Limit int `short:"n" help:"显示条数，0 表示全部" default:"10"`
}

func (c *HistoryCmd) Run(g *Globals, ctx context.Context) error {
	a, err := newApp(g)
	if err != nil {
		return err
	}
	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer db.Close()
	builds, err := db.Builds(ctx, c.Limit)
	if err != nil {
		return err
	}
	for _, b := range builds {
		fmt.Printf("%s  %s  %-6s %3d 页 %3d 首  %s\n",
			b.StartedAt.Local().Format("2006-01-02 15:04:05"), b.ID, b.Backend, b.Pages, b.Songs, b.Output)
	}
	return nil
}

// VersionCmd 显示版本、SQLite 驱动与内嵌字体。
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := store.DriverInfo()
	fmt.Printf("songbook version %s\n", version)
	fmt.Printf("sqlite driver: %s (%s, %s)\n", info.DriverName, info.DriverType, info.Package)
	fmt.Printf("embedded fonts: %s\n", strings.Join(fonts.Names(), ", "))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx := kong.Parse(&CLI,
		kong.Name("songbook"),
		kong.Description("排版带和弦的 PDF 歌本"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := kctx.Run(&CLI.Globals)
	kctx.FatalIfErrorf(err)
}
