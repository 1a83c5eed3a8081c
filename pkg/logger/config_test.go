package logger_test

import (
	"testing"

	"graphsense-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerConfig(t *testing.T) {
	tests := []struct {
		name   string
		level  zapcore.Level
		expect func(*testing.T, logger.Config)
	}{
		{
			name:  "should return debug config",
			level: zapcore.DebugLevel,
			expect: func(t *testing.T, l logger.Config) {
				assert.NotNil(t, l)
				dev := l.GetDevelopmentConfig().Config
				assert.Equal(t, "console", dev.Encoding)
				assert.True(t, dev.Level.Enabled(zapcore.DebugLevel))
			},
		},
		{
			name:  "should return info config",
			level: zapcore.InfoLevel,
			expect: func(t *testing.T, l logger.Config) {
				prod := l.GetProductionConfig().Config
				assert.Equal(t, "json", prod.Encoding)
				assert.False(t, prod.Level.Enabled(zapcore.DebugLevel))
				assert.Equal(t, []string{"stdout"}, prod.OutputPaths)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := logger.NewLoggerConfig(tc.level)
			tc.expect(t, svc)
		})
	}
}
