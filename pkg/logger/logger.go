package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Process-wide loggers. Both are no-ops until Init runs.
var (
	Logger = zap.NewNop()
	Sugar  = Logger.Sugar()
)

// LogLevel names a logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Output formats understood by Init.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds configuration for the logger system
type Config struct {
	Level      LogLevel
	Format     string
	OutputPath string
}

// DefaultConfig returns an info-level console logger writing to stdout.
func DefaultConfig() *Config {
	return &Config{
		Level:      LogLevelInfo,
		Format:     FormatConsole,
		OutputPath: "stdout",
	}
}

// Init replaces the global loggers according to cfg. A nil cfg means DefaultConfig.
func Init(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	l, err := New(cfg)
	if err != nil {
		return err
	}

	Logger = l
	Sugar = l.Sugar()
	return nil
}

// New builds a zap logger without touching the globals.
func New(cfg *Config) (*zap.Logger, error) {
	output, err := openOutput(cfg.OutputPath)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), output, parseLogLevel(cfg.Level))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func newEncoder(format string) zapcore.Encoder {
	if format == FormatJSON {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(encoderConfig)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func openOutput(path string) (zapcore.WriteSyncer, error) {
	switch path {
	case "", "stdout":
		return zapcore.AddSync(os.Stdout), nil
	case "stderr":
		return zapcore.AddSync(os.Stderr), nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log output %s: %w", path, err)
	}
	return zapcore.AddSync(file), nil
}

func parseLogLevel(level LogLevel) zapcore.Level {
	switch strings.ToLower(string(level)) {
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

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}

func Debug(msg string, fields ...zap.Field) {
	Logger.WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger.WithOptions(zap.AddCallerSkip(1)).Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.WithOptions(zap.AddCallerSkip(1)).Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger.WithOptions(zap.AddCallerSkip(1)).Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Logger.WithOptions(zap.AddCallerSkip(1)).Fatal(msg, fields...)
}

func Debugf(template string, args ...interface{}) {
	Sugar.WithOptions(zap.AddCallerSkip(1)).Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	Sugar.WithOptions(zap.AddCallerSkip(1)).Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	Sugar.WithOptions(zap.AddCallerSkip(1)).Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	Sugar.WithOptions(zap.AddCallerSkip(1)).Errorf(template, args...)
}

func Fatalf(template string, args ...interface{}) {
	Sugar.WithOptions(zap.AddCallerSkip(1)).Fatalf(template, args...)
}
