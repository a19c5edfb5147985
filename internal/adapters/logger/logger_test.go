package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crucible/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	l := logger.New()
	concrete, ok := l.(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	concrete.SetOutput(&buf)

	l.Info("bundle generated")
	l.Warn("rollout below full")
	l.Error(errors.New("upload failed"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "bundle generated")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "rollout below full")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "upload failed")
}
