package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	z *zap.Logger
}

// NewLogger logs JSON lines to stderr so stdout stays free for command output.
func NewLogger(levelStr string) *Logger {
	return NewLoggerWithWriter(levelStr, os.Stderr)
}

func NewLoggerWithWriter(levelStr string, w io.Writer) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.MessageKey = "msg"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), parseLevel(levelStr))
	return &Logger{z: zap.New(core)}
}

func NewNop() *Logger {
	return &Logger{z: zap.NewNop()}
}

func parseLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{z: l.z.With(zap.String("component", component))}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.z.Debug(fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.z.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.z.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.z.Error(fmt.Sprintf(format, args...))
}

func (l *Logger) Debugw(msg string, fields map[string]any) { l.z.Debug(msg, toFields(fields)...) }
func (l *Logger) Infow(msg string, fields map[string]any)  { l.z.Info(msg, toFields(fields)...) }
func (l *Logger) Warnw(msg string, fields map[string]any)  { l.z.Warn(msg, toFields(fields)...) }
func (l *Logger) Errorw(msg string, fields map[string]any) { l.z.Error(msg, toFields(fields)...) }

func (l *Logger) Sync() error {
	return l.z.Sync()
}

func toFields(fields map[string]any) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
