package logger

import (
	"testing"

	"climed-service/internal/app/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zap.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zap.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zap.InfoLevel, parseLevel("verbose"), "unknown levels should fall back to info")
}

func TestNewZapLogger(t *testing.T) {
	driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "warn"}}
	internalConfig := &config.InternalConfig{App: config.App{Env: "development"}}

	log := NewZapLogger(driverConfig, internalConfig)

	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))
}

func TestNewCLILogger(t *testing.T) {
	driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "debug"}}

	quiet := NewCLILogger(driverConfig, false)
	assert.False(t, quiet.Core().Enabled(zap.InfoLevel))
	assert.True(t, quiet.Core().Enabled(zap.WarnLevel))

	verbose := NewCLILogger(driverConfig, true)
	assert.True(t, verbose.Core().Enabled(zap.DebugLevel))
}
