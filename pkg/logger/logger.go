package logger

import (
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

//go:generate mockgen -source=logger.go -destination=mocks/logger_mock.go
type Logger interface {
	SetupZapLogger() (*zap.SugaredLogger, error)
}

type logger struct {
	appEnv string
}

func NewLogger(appEnv string) (Logger, error) {
	if appEnv == "" {
		return nil, errors.New("[logger] invalid app env")
	}

	return &logger{appEnv: appEnv}, nil
}

func (l *logger) SetupZapLogger() (*zap.SugaredLogger, error) {
	switch l.appEnv {
	case EnvProduction:
		logger, err := NewLoggerConfig(zapcore.InfoLevel).GetProductionConfig().Config.Build()
		if err != nil {
			return nil, err
		}
		return logger.Named("dashboard").Sugar(), nil
	case EnvDevelopment:
		logger, err := NewLoggerConfig(zapcore.DebugLevel).GetDevelopmentConfig().Config.Build()
		if err != nil {
			return nil, err
		}
		return logger.Named("dashboard").Sugar(), nil
	}

	return nil, errors.New("[logger] incorrect app env")
}

// Nop returns a logger that drops everything, for tests.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
