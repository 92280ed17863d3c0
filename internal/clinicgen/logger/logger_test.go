package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger_Levels(t *testing.T) {
	require.NoError(t, InitLogger("debug"))
	assert.True(t, L().Desugar().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, InitLogger("error"))
	assert.False(t, L().Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, L().Desugar().Core().Enabled(zapcore.ErrorLevel))
}

func TestInitLogger_UnknownLevelFallsBack(t *testing.T) {
	require.NoError(t, InitLogger("chatty"))
	assert.True(t, L().Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, L().Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestL_LazyInit(t *testing.T) {
	logger = nil
	require.NotNil(t, L())
	assert.True(t, L().Desugar().Core().Enabled(zapcore.InfoLevel))
}
