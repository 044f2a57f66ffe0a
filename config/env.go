package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// 可以覆盖配置的环境变量。
const (
	EnvSongsDir = "SONGBOOK_SONGS_DIR"
	EnvWikiURL  = "SONGBOOK_WIKI_URL"
	EnvDatabase = "SONGBOOK_DB"
	EnvOutput   = "SONGBOOK_OUTPUT"
	EnvOffline  = "SONGBOOK_OFFLINE"
)

var envKeys = []string{EnvSongsDir, EnvWikiURL, EnvDatabase, EnvOutput, EnvOffline}

// loadEnv 读取配置目录下的 .env，并以进程环境变量覆盖其中同名项。
// .env 不存在时只返回进程环境变量。进程环境不会被修改。
func loadEnv(dir string) (map[string]string, error) {
	values := map[string]string{}
	path := filepath.Join(dir, ".env")
	fileValues, err := godotenv.Read(path)
	switch {
	case err == nil:
		for k, v := range fileValues {
			values[k] = v
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("读取 %s 失败: %w", path, err)
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}
	return values, nil
}

func (c *Config) applyEnv(env map[string]string) {
	if v := env[EnvSongsDir]; v != "" {
		c.SongsDir = v
	}
	if v := env[EnvWikiURL]; v != "" {
		c.WikiURL = v
	}
	if v := env[EnvDatabase]; v != "" {
		c.Database = v
	}
	if v := env[EnvOutput]; v != "" {
		c.Output = v
	}
	if v := env[EnvOffline]; v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Offline = b
		}
	}
}
