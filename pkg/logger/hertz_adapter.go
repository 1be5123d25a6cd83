package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// HertzSlogAdapter routes hertz's internal hlog calls into the shared
// slog logger so server internals and application logs share one sink.
// hlog levels without an slog counterpart collapse onto the nearest
// one: Trace onto Debug, Notice onto Info, Fatal onto Error.
type HertzSlogAdapter struct {
	logger *slog.Logger
}

// NewHertzSlogAdapter wraps logger for hlog.SetLogger.
func NewHertzSlogAdapter(logger *slog.Logger) *HertzSlogAdapter {
	return &HertzSlogAdapter{logger: logger}
}

func (a *HertzSlogAdapter) log(ctx context.Context, level slog.Level, msg string) {
	a.logger.Log(ctx, level, msg)
}

func (a *HertzSlogAdapter) Trace(v ...interface{}) {
	a.log(context.Background(), slog.LevelDebug, joinMessage(v...))
}

func (a *HertzSlogAdapter) Debug(v ...interface{}) {
	a.log(context.Background(), slog.LevelDebug, joinMessage(v...))
}

func (a *HertzSlogAdapter) Info(v ...interface{}) {
	a.log(context.Background(), slog.LevelInfo, joinMessage(v...))
}

func (a *HertzSlogAdapter) Notice(v ...interface{}) {
	a.log(context.Background(), slog.LevelInfo, joinMessage(v...))
}

func (a *HertzSlogAdapter) Warn(v ...interface{}) {
	a.log(context.Background(), slog.LevelWarn, joinMessage(v...))
}

func (a *HertzSlogAdapter) Error(v ...interface{}) {
	a.log(context.Background(), slog.LevelError, joinMessage(v...))
}

func (a *HertzSlogAdapter) Fatal(v ...interface{}) {
	a.log(context.Background(), slog.LevelError, joinMessage(v...))
}

func (a *HertzSlogAdapter) Tracef(format string, v ...interface{}) {
	a.log(context.Background(), slog.LevelDebug, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) Debugf(format string, v ...interface{}) {
	a.log(context.Background(), slog.LevelDebug, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) Infof(format string, v ...interface{}) {
	a.log(context.Background(), slog.LevelInfo, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) Noticef(format string, v ...interface{}) {
	a.log(context.Background(), slog.LevelInfo, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) Warnf(format string, v ...interface{}) {
	a.log(context.Background(), slog.LevelWarn, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) Errorf(format string, v ...interface{}) {
	a.log(context.Background(), slog.LevelError, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) Fatalf(format string, v ...interface{}) {
	a.log(context.Background(), slog.LevelError, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	a.log(ctx, slog.LevelDebug, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	a.log(ctx, slog.LevelDebug, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	a.log(ctx, slog.LevelInfo, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	a.log(ctx, slog.LevelInfo, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	a.log(ctx, slog.LevelWarn, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	a.log(ctx, slog.LevelError, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	a.log(ctx, slog.LevelError, fmt.Sprintf(format, v...))
}

// SetLevel satisfies hlog.FullLogger; the slog level is fixed by Setup.
func (a *HertzSlogAdapter) SetLevel(level hlog.Level) {}

// SetOutput satisfies hlog.FullLogger; the slog output is fixed by Setup.
func (a *HertzSlogAdapter) SetOutput(writer io.Writer) {}

// joinMessage renders variadic hlog arguments as one message. A single
// string passes through untouched.
func joinMessage(v ...interface{}) string {
	if len(v) == 0 {
		return ""
	}
	if len(v) == 1 {
		if s, ok := v[0].(string); ok {
			return s
		}
	}
	return fmt.Sprint(v...)
}
