package logger

import (
	"murmur/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper over zap's sugared logger. The zero value discards everything.
type Logger struct {
	sugar *zap.SugaredLogger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.LoggerMode.Development || !cfg.LoggerMode.Prod {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if cfg.LoggerMode.Level != "" {
		level, err := zapcore.ParseLevel(cfg.LoggerMode.Level)
		if err != nil {
			return nil, err
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: l.Sugar()}, nil
}

// FromZap wraps an existing zap logger, mostly for tests using zaptest/observer.
func FromZap(l *zap.Logger) Logger {
	return Logger{sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l Logger) s() *zap.SugaredLogger {
	if l.sugar == nil {
		return zap.NewNop().Sugar()
	}
	return l.sugar
}

// With returns a child logger carrying the given key/value pairs.
func (l Logger) With(keysAndValues ...any) Logger {
	return Logger{sugar: l.s().With(keysAndValues...)}
}

func (l Logger) Debug(msg string, keysAndValues ...any) { l.s().Debugw(msg, keysAndValues...) }
func (l Logger) Info(msg string, keysAndValues ...any)  { l.s().Infow(msg, keysAndValues...) }
func (l Logger) Warn(msg string, keysAndValues ...any)  { l.s().Warnw(msg, keysAndValues...) }
func (l Logger) Error(msg string, keysAndValues ...any) { l.s().Errorw(msg, keysAndValues...) }

func (l Logger) Debugf(format string, args ...any) { l.s().Debugf(format, args...) }
func (l Logger) Infof(format string, args ...any)  { l.s().Infof(format, args...) }
func (l Logger) Warnf(format string, args ...any)  { l.s().Warnf(format, args...) }
func (l Logger) Errorf(format string, args ...any) { l.s().Errorf(format, args...) }

func (l Logger) Sync() error {
	if l.sugar == nil {
		return nil
	}
	return l.sugar.Sync()
}
