package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_LevelFollowsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(false, &buf)
	l.Debug().Msg("hidden")
	l.Info().Str("variant", "Classic").Msg("round start")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "round start")
	assert.Contains(t, out, "variant=")

	buf.Reset()
	l = New(true, &buf)
	l.Debug().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
