package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsole(&buf, zap.InfoLevel)
	l.Debug("hidden")
	l.Info("wrote", zap.String(FieldFile, "com/example/Flags.java"))
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "wrote")
	assert.True(t, strings.Contains(out, `"file": "com/example/Flags.java"`), out)
}

func TestNew(t *testing.T) {
	for _, jsonOutput := range []bool{false, true} {
		l, err := New(true, jsonOutput)
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.DebugLevel))
	}
	l, err := New(false, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
}
