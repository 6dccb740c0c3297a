package log

import (
	"io"
	"log/slog"
	"os"
)

// New 返回写入到 w 的 slog.Logger。
// stdout 是数据通道，日志应始终写 stderr（由调用方传入）。
// PIXBRIDGE_DEBUG=1 时放开到 DEBUG 级别。
func New(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("PIXBRIDGE_DEBUG") == "1" {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
