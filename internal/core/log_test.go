package core

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestChildLoggerForSource(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := ChildLoggerForSource(zerolog.New(buf), "core/sequence")

	ctx := NewContext(ContextConfig{Logger: logger})
	ctx.Logger().Info().Msg("element not found")

	assert.Contains(t, buf.String(), `"src":"core/sequence"`)
	assert.Contains(t, buf.String(), `"msg":"element not found"`)
}
