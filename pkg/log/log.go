package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the context-aware logging interface used across the service.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
	DPanic(ctx context.Context, args ...any)
	DPanicf(ctx context.Context, format string, args ...any)
	Panic(ctx context.Context, args ...any)
	Panicf(ctx context.Context, format string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, format string, args ...any)
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process-wide logger from config.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.DebugLevel
	}

	var zc zap.Config
	if cfg.Mode == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zc.Encoding == "console" {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}

	return &zapLogger{sugar: l.Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, args ...any)  { z.sugar.Debug(args...) }
func (z *zapLogger) Info(ctx context.Context, args ...any)   { z.sugar.Info(args...) }
func (z *zapLogger) Warn(ctx context.Context, args ...any)   { z.sugar.Warn(args...) }
func (z *zapLogger) Error(ctx context.Context, args ...any)  { z.sugar.Error(args...) }
func (z *zapLogger) DPanic(ctx context.Context, args ...any) { z.sugar.DPanic(args...) }
func (z *zapLogger) Panic(ctx context.Context, args ...any)  { z.sugar.Panic(args...) }
func (z *zapLogger) Fatal(ctx context.Context, args ...any)  { z.sugar.Fatal(args...) }

func (z *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	z.sugar.Debugf(format, args...)
}

func (z *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.sugar.Infof(format, args...)
}

func (z *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.sugar.Warnf(format, args...)
}

func (z *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.sugar.Errorf(format, args...)
}

func (z *zapLogger) DPanicf(ctx context.Context, format string, args ...any) {
	z.sugar.DPanicf(format, args...)
}

func (z *zapLogger) Panicf(ctx context.Context, format string, args ...any) {
	z.sugar.Panicf(format, args...)
}

func (z *zapLogger) Fatalf(ctx context.Context, format string, args ...any) {
	z.sugar.Fatalf(format, args...)
}
