package layout

import (
	"errors"
	"fmt"
)

// ErrSongTooLong 表示歌曲的单栏正文即使从空白页开始也放不下。
var ErrSongTooLong = errors.New("song too long to render")

// SongTooLongError 携带被跳过的歌曲与其测量高度。
type SongTooLongError struct {
	Title  string
	Height float64
	Limit  float64
}

func (e *SongTooLongError) Error() string {
	return fmt.Sprintf("song %q is too long to render: %.1fpt > %.1fpt", e.Title, e.Height, e.Limit)
}

func (e *SongTooLongError) Unwrap() error { return ErrSongTooLong }
