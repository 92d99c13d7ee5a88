package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToJournalKey(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("CYCLES", toJournalKey("cycles"))
	assert.Equal("EMULATOR_PC", toJournalKey("emulator.pc"))
	assert.Equal("A_1", toJournalKey("a-1"))
}

func TestNew(t *testing.T) {
	if isSystemdService() {
		t.Skip("records go to the journal")
	}

	assert := assert.New(t)

	out := &bytes.Buffer{}
	logger := New(out, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("test", "hello", "world!")

	assert.NotContains(out.String(), "hidden")
	assert.Contains(out.String(), "hello=world!")
}

func TestNew_Extra(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	extra := &bytes.Buffer{}
	logger := New(out, slog.LevelError, slog.NewJSONHandler(extra, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	logger.Debug("step", "pc", 3)

	assert.NotContains(out.String(), "step")
	assert.Contains(extra.String(), `"msg":"step"`)
	assert.Contains(extra.String(), `"pc":3`)
}
