package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(prev)
		SetVerbose(false)
	})
	return buf
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv("WOGGER_DEBUG", "")
	assert.False(t, DebugEnabled(), "empty WOGGER_DEBUG should disable debug output")

	t.Setenv("WOGGER_DEBUG", "1")
	assert.True(t, DebugEnabled())

	t.Setenv("WOGGER_DEBUG", "true")
	assert.True(t, DebugEnabled())
}

func TestSetVerbose(t *testing.T) {
	captureOutput(t)
	t.Setenv("WOGGER_DEBUG", "")

	SetVerbose(true)
	assert.True(t, DebugEnabled(), "verbose should enable debug output without WOGGER_DEBUG")

	SetVerbose(false)
	assert.False(t, DebugEnabled())
}

func TestDebugf(t *testing.T) {
	buf := captureOutput(t)

	t.Setenv("WOGGER_DEBUG", "")
	Debugf("hidden: %s\n", "test")
	assert.Empty(t, buf.String())

	t.Setenv("WOGGER_DEBUG", "1")
	Debugf("skipped line %d: %s\n", 3, "garbage")
	assert.Equal(t, "skipped line 3: garbage\n", buf.String())
}

func TestDebugln(t *testing.T) {
	buf := captureOutput(t)

	t.Setenv("WOGGER_DEBUG", "")
	Debugln("hidden")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debugln("reloaded", 4, "entries")
	assert.Equal(t, "reloaded 4 entries\n", buf.String())
}
