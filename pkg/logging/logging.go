package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"chatbot/pkg/config"
	"chatbot/pkg/version"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace is more verbose than debug; used for per-keystroke events.
const LevelTrace = slog.Level(-8)

const appName = "chatbot"

// Rotation limits for the log file.
const (
	maxLogSizeMB  = 5
	maxLogBackups = 5
	maxLogAgeDays = 14
)

var levels = map[string]slog.Level{
	"trace":   LevelTrace,
	"debug":   slog.LevelDebug,
	"":        slog.LevelInfo,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init points the default slog logger at the rotating log file for cfg.
// Every record carries the app name and build version. The terminal belongs
// to the UI, so when the file cannot be opened records are discarded and the
// error is returned. The Closer is never nil and releases the log file.
func Init(cfg config.Config) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{
		Level:       parseLogLevel(cfg.LogLevel),
		ReplaceAttr: renameTrace,
	}

	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	file, err := openLogFile(LogPath(cfg))
	if err == nil {
		out, closer = file, file
	}

	logger := slog.New(newHandler(cfg.LogFormat, out, opts)).
		With("app", appName, "version", version.Summary())
	slog.SetDefault(logger)
	return logger, closer, err
}

// LogPath returns the file Init writes to: cfg.LogFile when set, otherwise
// ~/.chatbot/logs/chatbot.log.
func LogPath(cfg config.Config) string {
	if p := strings.TrimSpace(cfg.LogFile); p != "" {
		return p
	}
	homeDir, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(homeDir) == "" {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".chatbot", "logs", appName+".log")
}

func openLogFile(path string) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	if lvl, ok := levels[strings.ToLower(strings.TrimSpace(level))]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// renameTrace prints LevelTrace as TRACE instead of slog's DEBUG-4.
func renameTrace(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl <= LevelTrace {
		return slog.String(slog.LevelKey, "TRACE")
	}
	return a
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if strings.EqualFold(strings.TrimSpace(format), "text") {
		return slog.NewTextHandler(out, opts)
	}
	return slog.NewJSONHandler(out, opts)
}
