package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLevel(t *testing.T) {
	assert.True(t, New("debug").Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.False(t, New("info").Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.False(t, New("error").Desugar().Core().Enabled(zapcore.WarnLevel))
	assert.True(t, New("bogus").Desugar().Core().Enabled(zapcore.InfoLevel))
}
