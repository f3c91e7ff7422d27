package logging

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a zap-backed logr.Logger configured with the given level string.
// The debug level also enables V(1) output, which carries ignored gestures.
func New(level string) (logr.Logger, error) {
	var (
		cfg      zap.Config
		zapLevel zapcore.Level
	)
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		cfg = zap.NewDevelopmentConfig()
		zapLevel = zapcore.DebugLevel
	case "info", "":
		cfg = zap.NewProductionConfig()
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		cfg = zap.NewProductionConfig()
		zapLevel = zapcore.WarnLevel
	case "error":
		cfg = zap.NewProductionConfig()
		zapLevel = zapcore.ErrorLevel
	default:
		return logr.Logger{}, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", level)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.DisableStacktrace = zapLevel != zapcore.DebugLevel

	zl, err := cfg.Build()
	if err != nil {
		return logr.Logger{}, fmt.Errorf("building logger: %w", err)
	}
	return zapr.NewLogger(zl), nil
}
