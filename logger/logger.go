package logger

import (
	"fundrr-backend/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	sugar  *zap.SugaredLogger
)

func init() {
	logger, _ = zap.NewDevelopment()
	sugar = logger.Sugar()
}

// Rebuild the logger with the level from the config. Called once the
// application config has been parsed; before that the default
// development logger is used.
func Init(cfg config.LoggerConfig) {
	level := zapcore.DebugLevel
	if len(cfg.Level) > 0 {
		if err := level.Set(cfg.Level); err != nil {
			Warn("unknown logger level %s, using debug", cfg.Level)
			level = zapcore.DebugLevel
		}
	}
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	logger, _ = zapCfg.Build()
	sugar = logger.Sugar()
}

func Warn(msg string, args ...interface{}) {
	sugar.Warnf(msg, args...)
}

func Error(msg string, args ...interface{}) {
	sugar.Errorf(msg, args...)
}

func Info(msg string, args ...interface{}) {
	sugar.Infof(msg, args...)
}

func Debug(msg string, args ...interface{}) {
	sugar.Debugf(msg, args...)
}
