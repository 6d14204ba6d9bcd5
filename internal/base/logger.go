package base

import (
	"context"
	"fmt"
	"github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/global"
	"github.com/fatih/color"
	"log/slog"
	"os"
	"time"
)

const logFileName = "latest.log"

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
}

type consoleHandler struct {
	level slog.Level
}

func (handler *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

func (handler *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	levelColor, ok := levelColors[record.Level]
	if !ok {
		levelColor = color.New(color.FgWhite)
	}
	_, err := fmt.Fprintf(color.Output, "[%s] [%s]: %s\n",
		record.Time.Format(time.DateTime),
		levelColor.Sprintf("%5s", record.Level.String()),
		record.Message,
	)
	return err
}

func (handler *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return handler }

func (handler *consoleHandler) WithGroup(_ string) slog.Handler { return handler }

type multiHandler struct {
	handlers []slog.Handler
}

func (handler *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range handler.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handler *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range handler.handlers {
		if h.Enabled(ctx, record.Level) {
			if err := h.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handler *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(handler.handlers))
	for i, h := range handler.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers}
}

func (handler *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(handler.handlers))
	for i, h := range handler.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers}
}

type Logger struct {
	slogger *slog.Logger
	logFile *os.File
}

func NewLogger() *Logger {
	return &Logger{}
}

func (logger *Logger) Init(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{&consoleHandler{level: level}}

	if logFile, err := os.OpenFile(logFileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, global.DefaultFilePermissions); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Unable to open log file %s: %v\n", logFileName, err)
	} else {
		logger.logFile = logFile
		handlers = append(handlers, slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))
	}

	logger.slogger = slog.New(&multiHandler{handlers})
	slog.SetDefault(logger.slogger)
}

type loggerShutdownCallback struct {
	logger *Logger
}

func (callback *loggerShutdownCallback) Invoke(_ context.Context) error {
	if callback.logger.logFile != nil {
		return callback.logger.logFile.Close()
	}
	return nil
}

func (logger *Logger) ShutdownCallback() global.Callable {
	return &loggerShutdownCallback{logger}
}

func (logger *Logger) Debug(msg string, v ...interface{}) { logger.slogger.Debug(msg, v...) }

func (logger *Logger) DebugF(msg string, v ...interface{}) {
	logger.slogger.Debug(fmt.Sprintf(msg, v...))
}

func (logger *Logger) Info(msg string, v ...interface{}) { logger.slogger.Info(msg, v...) }

func (logger *Logger) InfoF(msg string, v ...interface{}) {
	logger.slogger.Info(fmt.Sprintf(msg, v...))
}

func (logger *Logger) Warn(msg string, v ...interface{}) { logger.slogger.Warn(msg, v...) }

func (logger *Logger) WarnF(msg string, v ...interface{}) {
	logger.slogger.Warn(fmt.Sprintf(msg, v...))
}

func (logger *Logger) Error(msg string, v ...interface{}) { logger.slogger.Error(msg, v...) }

func (logger *Logger) ErrorF(msg string, v ...interface{}) {
	logger.slogger.Error(fmt.Sprintf(msg, v...))
}

func (logger *Logger) Fatal(msg string, v ...interface{}) {
	logger.slogger.Error(msg, v...)
	os.Exit(1)
}

func (logger *Logger) FatalF(msg string, v ...interface{}) {
	logger.slogger.Error(fmt.Sprintf(msg, v...))
	os.Exit(1)
}
