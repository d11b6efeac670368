package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetQuiet(false)
		SetOutput(os.Stderr)
	})
	return buf
}

func TestSetVerbose(t *testing.T) {
	capture(t)

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	buf := capture(t)

	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debug("shown %d", 2)
	assert.Equal(t, "[DEBUG] shown 2\n", buf.String())
}

func TestInfoAndSection(t *testing.T) {
	buf := capture(t)
	SetVerbose(true)

	Section("generate")
	Info("template %s", "BPVOY4")

	assert.Contains(t, buf.String(), "=== generate ===")
	assert.Contains(t, buf.String(), "[INFO] template BPVOY4")
}

func TestWarn_PrintedWithoutVerbose(t *testing.T) {
	buf := capture(t)

	Warn("unknown clause %q", "Ice Class")

	assert.Equal(t, "[WARN] unknown clause \"Ice Class\"\n", buf.String())
}

func TestWarn_SuppressedWhenQuiet(t *testing.T) {
	buf := capture(t)
	SetQuiet(true)

	Warn("dropped")

	assert.Empty(t, buf.String())
}

func TestFor_PrefixesComponent(t *testing.T) {
	buf := capture(t)
	SetVerbose(true)
	log := For("advisor")

	log.Debug("lane %s", "houston to rotterdam")
	log.Warn("ambiguous")

	assert.Contains(t, buf.String(), "[DEBUG] advisor: lane houston to rotterdam")
	assert.Contains(t, buf.String(), "[WARN] advisor: ambiguous")
}
