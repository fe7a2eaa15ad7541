package logger

import (
	"errors"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a development logger writing to stderr so stdout stays free
// for the report.
func New(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// LogFetchFailure logs a missing resource at debug level and every other
// failure as a warning.
func LogFetchFailure(log *zap.Logger, err error, msg string, fields ...zap.Field) {
	var rerr *models.ReleaseError
	if errors.As(err, &rerr) && rerr.Kind == models.KindNotFound {
		log.Debug(msg, append(fields, zap.String("code", string(rerr.Kind)))...)
		return
	}

	if errors.As(err, &rerr) {
		fields = append(fields, zap.String("code", string(rerr.Kind)))
	}
	log.Warn(msg, append(fields, zap.Error(err))...)
}
