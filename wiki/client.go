// Package wiki 访问 MediaWiki 歌词站点：模糊搜索歌名、跟随重定向找到主标题、
// 收集重定向到该页的别名，并把渲染后的页面转换成歌词文件。
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// DefaultRoot 是默认站点地址。
const DefaultRoot = "https://www.wikispiv.com"

// ErrStatus 表示站点返回了非 2xx 状态码。
var ErrStatus = errors.New("wiki: unexpected status")

// StatusError 携带失败请求的状态码。
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wiki: GET %s: status %d", e.URL, e.Code)
}

func (e *StatusError) Unwrap() error { return ErrStatus }

// Client 是带响应缓存的站点客户端，可并发使用。
type Client struct {
	root   string
	http   *http.Client
	cache  *cache.Cache
	logger *slog.Logger
}

// Option 配置 Client。
type Option func(*Client)

// WithHTTPClient 替换底层 HTTP 客户端。
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger 设置日志。
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithCacheTTL 设置响应缓存时间，0 表示不缓存。
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl <= 0 {
			c.cache = nil
			return
		}
		c.cache = cache.New(ttl, ttl/24+time.Minute)
	}
}

// New 创建客户端。root 为空时使用 DefaultRoot。
func New(root string, opts ...Option) *Client {
	if root == "" {
		root = DefaultRoot
	}
	c := &Client{
		root:   strings.TrimRight(root, "/"),
		http:   &http.Client{Timeout: 30 * time.Second},
		cache:  cache.New(24*time.Hour, time.Hour),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Root 返回站点地址。
func (c *Client) Root() string { return c.root }

func (c *Client) apiURL(params url.Values) string {
	params.Set("format", "json")
	return c.root + "/api.php?" + params.Encode()
}

// get 返回响应体，成功的响应按 URL 缓存。
func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	if c.cache != nil {
		if v, ok := c.cache.Get(u); ok {
			c.logger.Debug("wiki cache hit", "url", u)
			return v.([]byte), nil
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "songbook/1.0")
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wiki: GET %s: %w", u, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wiki: 读取响应失败: %w", err)
	}
	c.logger.Debug("wiki request", "url", u, "status", resp.StatusCode, "elapsed", time.Since(start))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: u, Code: resp.StatusCode}
	}
	if c.cache != nil {
		c.cache.Set(u, body, cache.DefaultExpiration)
	}
	return body, nil
}

type queryResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
		Pages map[string]struct {
			Title string `json:"title"`
		} `json:"pages"`
	} `json:"query"`
}

func (c *Client) query(ctx context.Context, params url.Values) (*queryResponse, error) {
	body, err := c.get(ctx, c.apiURL(params))
	if err != nil {
		return nil, err
	}
	var out queryResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("wiki: 无法解析 API 响应: %w", err)
	}
	return &out, nil
}

// Search 返回与 title 最接近的页面标题，先精确近似匹配，再按标题搜索。
// 没有结果时 ok 为 false。
func (c *Client) Search(ctx context.Context, title string) (match string, ok bool, err error) {
	for _, what := range []string{"nearmatch", "title"} {
		resp, err := c.query(ctx, url.Values{
			"action":   {"query"},
			"list":     {"search"},
			"srsearch": {title},
			"srwhat":   {what},
		})
		if err != nil {
			return "", false, err
		}
		if len(resp.Query.Search) > 0 {
			return resp.Query.Search[0].Title, true, nil
		}
	}
	return "", false, nil
}

// MainTitle 跟随重定向返回页面的主标题。没有重定向时返回页面自身标题。
func (c *Client) MainTitle(ctx context.Context, title string) (string, error) {
	resp, err := c.query(ctx, url.Values{
		"action":    {"query"},
		"titles":    {title},
		"redirects": {""},
	})
	if err != nil {
		return "", err
	}
	pages := resp.Query.Pages
	if len(pages) == 0 {
		return title, nil
	}
	// 单标题查询只返回一页；多页时取页码最小者以保证结果稳定
	keys := make([]string, 0, len(pages))
	for k := range pages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if t := pages[keys[0]].Title; t != "" {
		return t, nil
	}
	return title, nil
}

// Backlinks 返回所有重定向到 title 的页面标题，已排序。
func (c *Client) Backlinks(ctx context.Context, title string) ([]string, error) {
	resp, err := c.query(ctx, url.Values{
		"action":    {"query"},
		"generator": {"redirects"},
		"titles":    {title},
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(resp.Query.Pages))
	for _, p := range resp.Query.Pages {
		out = append(out, p.Title)
	}
	sort.Strings(out)
	return out, nil
}

// Standardize 先搜索最接近的标题，再取其主标题。搜索无结果时沿用原标题。
func (c *Client) Standardize(ctx context.Context, title string) (string, error) {
	match, ok, err := c.Search(ctx, title)
	if err != nil {
		return "", err
	}
	if ok {
		title = match
	}
	return c.MainTitle(ctx, title)
}

// Download 下载渲染后的页面并解析出署名与歌词。
func (c *Client) Download(ctx context.Context, title string) (*Page, error) {
	u := c.root + "/wiki/" + url.PathEscape(title) + "?action=render"
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("无法从 wiki 获取 %q: %w", title, err)
	}
	page, err := ParsePage(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("解析 %q 失败: %w", title, err)
	}
	page.Title = title
	return page, nil
}

// FetchSheet 下载页面并连同别名一起转换为歌词文件内容。
func (c *Client) FetchSheet(ctx context.Context, title string) (string, error) {
	page, err := c.Download(ctx, title)
	if err != nil {
		return "", err
	}
	alts, err := c.Backlinks(ctx, title)
	if err != nil {
		return "", err
	}
	page.AltTitles = alts
	c.logger.Info("downloaded song", "title", title, "alt_titles", len(alts), "lines", len(page.Lines))
	return page.Sheet(), nil
}
