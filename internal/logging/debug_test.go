package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	t.Cleanup(func() { SetOutput(prev) })
	return &buf
}

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"empty", "", false},
		{"set to 1", "1", true},
		{"set to true", "true", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TASKS_DEBUG", tt.value)
			assert.Equal(t, tt.expected, DebugEnabled())
		})
	}
}

func TestDebugf(t *testing.T) {
	buf := captureOutput(t)

	t.Setenv("TASKS_DEBUG", "")
	Debugf("hidden %s", "message")
	assert.Empty(t, buf.String())

	t.Setenv("TASKS_DEBUG", "1")
	Debugf("visible %s", "message")
	assert.Contains(t, buf.String(), "level=DEBUG visible message")
}

func TestDebugln(t *testing.T) {
	buf := captureOutput(t)

	t.Setenv("TASKS_DEBUG", "")
	Debugln("hidden")
	assert.Empty(t, buf.String())

	t.Setenv("TASKS_DEBUG", "1")
	Debugln("visible")
	assert.Contains(t, buf.String(), "level=DEBUG visible")
}

func TestInfofAndErrorf(t *testing.T) {
	buf := captureOutput(t)

	Infof("listening addr=%s", ":8000")
	Errorf("request failed status=%d", 500)

	out := buf.String()
	assert.Contains(t, out, "level=INFO listening addr=:8000")
	assert.Contains(t, out, "level=ERROR request failed status=500")
}

func TestSetVerbose(t *testing.T) {
	buf := captureOutput(t)
	t.Setenv("TASKS_DEBUG", "")
	t.Cleanup(func() { SetVerbose(false) })

	SetVerbose(true)
	assert.True(t, DebugEnabled())
	Debugf("verbose %d", 1)
	assert.Contains(t, buf.String(), "level=DEBUG verbose 1")

	SetVerbose(false)
	assert.False(t, DebugEnabled())
}
