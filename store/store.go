// Package store 把构建过程中需要跨次运行保留的数据存进 SQLite：
// 歌名到 wiki 主标题的缓存、歌曲文件的内容哈希，以及每次构建的记录。
//
// 默认使用纯 Go 的 modernc.org/sqlite；以 -tags cgo_sqlite 构建时改用 mattn/go-sqlite3。
package store

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

// ErrNotFound 表示记录不存在。
var ErrNotFound = errors.New("store: not found")

const schema = `
CREATE TABLE IF NOT EXISTS titles (
	query      TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS sheets (
	path       TEXT PRIMARY KEY,
	hash       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS builds (
	id          TEXT PRIMARY KEY,
	started_at  TEXT NOT NULL,
	finished_at TEXT NOT NULL,
	output      TEXT NOT NULL,
	backend     TEXT NOT NULL,
	pages       INTEGER NOT NULL,
	songs       INTEGER NOT NULL,
	skipped     TEXT NOT NULL,
	hash        TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS builds_started ON builds(started_at);
`

// Store 封装一个 SQLite 连接。
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open 打开（必要时创建）数据库文件并建表。path 为 ":memory:" 时使用内存库。
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("创建数据库目录失败: %w", err)
			}
		}
	}
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("打开数据库 %s 失败: %w", path, err)
	}
	// 单连接，避免内存库在多个连接间不可见，也避免写锁竞争
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("设置 busy_timeout 失败: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("初始化数据库失败: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close 关闭数据库。
func (s *Store) Close() error {
	return s.db.Close()
}

// Title 返回缓存的主标题。未缓存时返回 ErrNotFound。
func (s *Store) Title(ctx context.Context, query string) (string, error) {
	var title string
	err := s.db.QueryRowContext(ctx, `SELECT title FROM titles WHERE query = ?`, query).Scan(&title)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("查询标题缓存失败: %w", err)
	}
	return title, nil
}

// SaveTitle 记录 query 对应的主标题。
func (s *Store) SaveTitle(ctx context.Context, query, title string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO titles (query, title, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(query) DO UPDATE SET title = excluded.title, updated_at = excluded.updated_at`,
		query, title, s.timestamp())
	if err != nil {
		return fmt.Errorf("写入标题缓存失败: %w", err)
	}
	return nil
}

// SheetHash 返回上次记录的文件哈希。未记录时返回 ErrNotFound。
func (s *Store) SheetHash(ctx context.Context, path string) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx, `SELECT hash FROM sheets WHERE path = ?`, path).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("查询文件哈希失败: %w", err)
	}
	return hash, nil
}

// SaveSheetHash 记录文件哈希。
func (s *Store) SaveSheetHash(ctx context.Context, path, hash string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sheets (path, hash, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET hash = excluded.hash, updated_at = excluded.updated_at`,
		path, hash, s.timestamp())
	if err != nil {
		return fmt.Errorf("写入文件哈希失败: %w", err)
	}
	return nil
}

// SheetChanged 计算文件当前哈希并与记录比较，变化时更新记录。
// 首次见到的文件视为已变化。
func (s *Store) SheetChanged(ctx context.Context, path string) (bool, error) {
	hash, err := HashFile(path)
	if err != nil {
		return false, err
	}
	old, err := s.SheetHash(ctx, path)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return false, err
	}
	if err == nil && old == hash {
		return false, nil
	}
	return true, s.SaveSheetHash(ctx, path, hash)
}

// Build 是一次构建的记录。
type Build struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Output     string
	Backend    string
	Pages      int
	Songs      int
	Skipped    []string
	// Hash 是输出 PDF 的 BLAKE3 摘要。
	Hash string
}

// RecordBuild 保存构建记录并返回其 ID。b.ID 为空时生成新的 UUID。
func (s *Store) RecordBuild(ctx context.Context, b Build) (string, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.FinishedAt.IsZero() {
		b.FinishedAt = s.now()
	}
	skipped := b.Skipped
	if skipped == nil {
		skipped = []string{}
	}
	skippedJSON, err := json.Marshal(skipped)
	if err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO builds (id, started_at, finished_at, output, backend, pages, songs, skipped, hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, formatTime(b.StartedAt), formatTime(b.FinishedAt), b.Output, b.Backend,
		b.Pages, b.Songs, string(skippedJSON), b.Hash)
	if err != nil {
		return "", fmt.Errorf("写入构建记录失败: %w", err)
	}
	return b.ID, nil
}

// Builds 按开始时间倒序返回最近的构建记录。limit <= 0 时返回全部。
func (s *Store) Builds(ctx context.Context, limit int) ([]Build, error) {
	query := `SELECT id, started_at, finished_at, output, backend, pages, songs, skipped, hash
		FROM builds ORDER BY started_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("查询构建记录失败: %w", err)
	}
	defer rows.Close()

	var out []Build
	for rows.Next() {
		var (
			b                 Build
			started, finished string
			skipped           string
		)
		if err := rows.Scan(&b.ID, &started, &finished, &b.Output, &b.Backend, &b.Pages, &b.Songs, &skipped, &b.Hash); err != nil {
			return nil, err
		}
		if b.StartedAt, err = parseTime(started); err != nil {
			return nil, err
		}
		if b.FinishedAt, err = parseTime(finished); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(skipped), &b.Skipped); err != nil {
			return nil, fmt.Errorf("构建记录 %s 的 skipped 字段损坏: %w", b.ID, err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// LastBuild 返回最近一次构建。没有记录时返回 ErrNotFound。
func (s *Store) LastBuild(ctx context.Context) (Build, error) {
	builds, err := s.Builds(ctx, 1)
	if err != nil {
		return Build{}, err
	}
	if len(builds) == 0 {
		return Build{}, ErrNotFound
	}
	return builds[0], nil
}

// Hash 返回数据的 BLAKE3-256 十六进制摘要。
func Hash(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashFile 流式计算文件的 BLAKE3-256 摘要。
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("读取 %s 失败: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (s *Store) timestamp() string {
	return formatTime(s.now())
}

// 固定宽度的 UTC 时间，保证按字符串排序即按时间排序
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(v string) (time.Time, error) {
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("无效的时间 %q: %w", v, err)
	}
	return t, nil
}

// Info 描述当前编译进来的 SQLite 驱动。
type Info struct {
	DriverName string `json:"driver_name"`
	DriverType string `json:"driver_type"`
	Package    string `json:"package"`
}

// DriverInfo 返回驱动信息。
func DriverInfo() Info {
	return Info{DriverName: driverName, DriverType: driverType, Package: driverPackage}
}
