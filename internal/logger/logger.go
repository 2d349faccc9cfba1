// Package logger builds the zap loggers used by the CLI and the HTTP server.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Structured field keys shared across packages.
const (
	FieldDomain    = "domain"
	FieldBucket    = "bucket"
	FieldRequestID = "request_id"
)

// New builds a logger writing to stderr, so command output on stdout stays
// machine-readable. json selects the JSON encoder; debug lowers the level.
func New(json bool, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,

			EncodeDuration: zapcore.StringDurationEncoder,
		},
	}
	return cfg.Build()
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// DomainFields describes the scoring context of a log entry. Empty values are
// omitted.
func DomainFields(domain, bucket string) []zap.Field {
	fields := make([]zap.Field, 0, 2)
	if v := strings.TrimSpace(domain); v != "" {
		fields = append(fields, zap.String(FieldDomain, v))
	}
	if v := strings.TrimSpace(bucket); v != "" {
		fields = append(fields, zap.String(FieldBucket, v))
	}
	return fields
}
