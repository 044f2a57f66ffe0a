package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ByLCY/songbook/config"
	"github.com/ByLCY/songbook/song"
	"github.com/ByLCY/songbook/store"
)

// debouncer 合并短时间内的多次触发，静默 delay 之后只执行一次 fn。
type debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func()
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

// Trigger 重置计时器。
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

// Stop 取消尚未执行的触发。
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}

// watchAction 是一次文件事件对应的动作。
type watchAction int

const (
	actionIgnore watchAction = iota
	actionRebuild
	actionReload
)

// classify 判断事件是否需要重建。歌词文件只有内容哈希变化时才算变化。
func classify(ctx context.Context, db *store.Store, ev fsnotify.Event, configPath, songsDir string) (watchAction, error) {
	name := filepath.Clean(ev.Name)
	if name == configPath {
		if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
			return actionReload, nil
		}
		return actionIgnore, nil
	}
	if filepath.Dir(name) != songsDir || filepath.Ext(name) != song.Ext {
		return actionIgnore, nil
	}
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		return actionRebuild, nil
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return actionIgnore, nil
	}
	changed, err := db.SheetChanged(ctx, name)
	if err != nil {
		return actionIgnore, err
	}
	if changed {
		return actionRebuild, nil
	}
	return actionIgnore, nil
}

// seedHashes 记录歌曲目录中所有歌词文件的当前哈希。
func seedHashes(ctx context.Context, db *store.Store, songsDir string) error {
	paths, err := filepath.Glob(filepath.Join(songsDir, "*"+song.Ext))
	if err != nil {
		return err
	}
	for _, p := range paths {
		if _, err := db.SheetChanged(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// watch 先构建一次，然后监听歌曲目录与配置文件，变化时合并事件后重建。
func (a *app) watch(ctx context.Context, g *Globals, debounce time.Duration, debugPath string) error {
	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	configPath, err := filepath.Abs(g.Config)
	if err != nil {
		return err
	}
	songsDir := filepath.Clean(a.cfg.Path(a.cfg.SongsDir))
	if err := os.MkdirAll(songsDir, 0o755); err != nil {
		return fmt.Errorf("创建歌曲目录失败: %w", err)
	}

	var mu sync.Mutex
	rebuild := func(reload bool) {
		mu.Lock()
		defer mu.Unlock()
		if reload {
			cfg, err := config.Load(configPath)
			if err != nil {
				a.logger.Error("reload config failed, keeping previous config", "error", err)
				return
			}
			next, err := configure(cfg, g)
			if err != nil {
				a.logger.Error("reload config failed, keeping previous config", "error", err)
				return
			}
			if next.cfg.Path(next.cfg.SongsDir) != songsDir {
				a.logger.Warn("songs directory changed, restart watch to follow it", "dir", next.cfg.Path(next.cfg.SongsDir))
			}
			a.cfg = next.cfg
			a.logger.Info("config reloaded", "path", configPath)
		}
		if _, err := a.build(ctx, db, debugPath); err != nil {
			a.logger.Error("rebuild failed", "error", err)
		}
		// 构建期间下载的歌词文件不应再触发重建
		if err := seedHashes(ctx, db, songsDir); err != nil {
			a.logger.Warn("hash songs failed", "error", err)
		}
	}

	if err := seedHashes(ctx, db, songsDir); err != nil {
		return err
	}
	rebuild(false)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("创建文件监听器失败: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(songsDir); err != nil {
		return fmt.Errorf("监听 %s 失败: %w", songsDir, err)
	}
	// 编辑器常以重命名方式保存，因此监听配置文件所在目录
	if dir := filepath.Dir(configPath); dir != songsDir {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("监听 %s 失败: %w", dir, err)
		}
	}
	a.logger.Info("watching", "songs", songsDir, "config", configPath, "debounce", debounce)

	var reload atomic.Bool
	deb := newDebouncer(debounce, func() { rebuild(reload.Swap(false)) })
	// 退出前等待进行中的重建结束
	defer func() {
		mu.Lock()
		mu.Unlock()
	}()
	defer deb.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("watch stopped")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			action, err := classify(ctx, db, ev, configPath, songsDir)
			if err != nil {
				a.logger.Debug("ignoring event", "event", ev.String(), "error", err)
				continue
			}
			switch action {
			case actionReload:
				reload.Store(true)
				deb.Trigger()
			case actionRebuild:
				a.logger.Debug("change detected", "event", ev.String())
				deb.Trigger()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watcher error", "error", err)
		}
	}
}
