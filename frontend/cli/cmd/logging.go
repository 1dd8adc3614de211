package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/furisto/gistpad/shared"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogLevel = slog.LevelWarn

// logLevelFlag is the --log-level flag. Unset, the level comes from
// GISTPAD_LOG_LEVEL or defaults to warn.
type logLevelFlag struct {
	level slog.Level
	set   bool
}

func (f *logLevelFlag) String() string {
	if !f.set {
		return ""
	}
	return strings.ToLower(f.level.String())
}

func (f *logLevelFlag) Set(v string) error {
	level, err := parseLogLevel(v)
	if err != nil {
		return err
	}
	f.level, f.set = level, true
	return nil
}

func (f *logLevelFlag) Type() string {
	return "level"
}

// Level resolves the effective level.
func (f *logLevelFlag) Level() slog.Level {
	if f.set {
		return f.level
	}
	if level, err := parseLogLevel(os.Getenv("GISTPAD_LOG_LEVEL")); err == nil {
		return level
	}
	return defaultLogLevel
}

func parseLogLevel(v string) (slog.Level, error) {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.New(`must be one of "debug", "info", "warn", or "error"`)
}

// setupLogging installs the default JSON logger. Records go to stderr and to
// a rotated gistpad.json in the log directory.
func setupLogging(ctx context.Context, userInfo shared.UserInfo, stderr io.Writer, flag logLevelFlag) {
	handler := slog.NewJSONHandler(logSink(ctx, userInfo, stderr), &slog.HandlerOptions{
		Level: flag.Level(),
	})
	slog.SetDefault(slog.New(handler))
}

func logSink(ctx context.Context, userInfo shared.UserInfo, stderr io.Writer) io.Writer {
	if disable, ok := ctx.Value(ContextKeyDisableFileLogs).(bool); ok && disable {
		return stderr
	}

	logDir, err := userInfo.GistpadLogDir()
	if err != nil {
		return stderr
	}

	return io.MultiWriter(stderr, &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "gistpad.json"),
		MaxSize:    5,
		MaxAge:     14,
		MaxBackups: 2,
		Compress:   true,
	})
}
