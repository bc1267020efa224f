package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" warning "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
}

func TestGetBeforeInitIsNop(t *testing.T) {
	Reset()
	l := Get()
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetAfterInitWrites(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	Init(Options{Level: "info", Output: &buf})
	Get().Warn().Str("k", "v").Msg("through get")

	assert.Contains(t, buf.String(), `"message":"through get"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestInitWritesJSON(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	l := Init(Options{Level: "info", Output: &buf})
	l.Info().Str("k", "v").Msg("hello")

	assert.Contains(t, buf.String(), `"message":"hello"`)
	assert.Contains(t, buf.String(), `"service":"carwash"`)
}
