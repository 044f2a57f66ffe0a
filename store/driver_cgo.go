//go:build cgo_sqlite

// 使用 -tags cgo_sqlite 构建时改用 mattn/go-sqlite3，需要 CGO_ENABLED=1。
package store

import (
	_ "github.com/mattn/go-sqlite3"
)

const (
	driverName    = "sqlite3"
	driverType    = "cgo"
	driverPackage = "github.com/mattn/go-sqlite3"
)
