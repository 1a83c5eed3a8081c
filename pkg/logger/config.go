package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//go:generate mockgen -source=config.go -destination=mocks/config_mock.go
type LogConfig struct {
	Config zap.Config
}

type Config interface {
	GetDevelopmentConfig() LogConfig
	GetProductionConfig() LogConfig
}

type config struct {
	level zapcore.Level
}

// NewLoggerConfig builds configs that log at level and above.
func NewLoggerConfig(level zapcore.Level) Config {
	return &config{level: level}
}

func (c *config) GetDevelopmentConfig() LogConfig {
	return LogConfig{Config: zap.Config{
		Level:       zap.NewAtomicLevelAt(c.level),
		Development: true,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "message",
			LevelKey:       "level",
			TimeKey:        "time",
			NameKey:        "logger",
			CallerKey:      "caller",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
			EncodeName:     zapcore.FullNameEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}}
}

func (c *config) GetProductionConfig() LogConfig {
	return LogConfig{Config: zap.Config{
		Level:             zap.NewAtomicLevelAt(c.level),
		Development:       false,
		Encoding:          "json",
		DisableStacktrace: true,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}}
}
