package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Builder provides a fluent API for building diagnostic loggers
type Builder struct {
	writer io.Writer
	level  zapcore.Level
	fields []zap.Field
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		writer: os.Stderr,
		level:  zapcore.WarnLevel, // Default level
	}
}

// WithWriter sets the destination. It must never be the record output.
func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level zapcore.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...zap.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// Build creates the zap.Logger
func (b *Builder) Build() *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.CallerKey = ""
	cfg.StacktraceKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(zapcore.AddSync(b.writer)),
		b.level,
	)
	return zap.New(core).Named("colada").With(b.fields...)
}
