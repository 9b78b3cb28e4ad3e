package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer_UnknownModeFallsBackToAuto(t *testing.T) {
	r := NewRenderer(new(bytes.Buffer), new(bytes.Buffer), Mode("banana"))
	assert.Equal(t, ModeAuto, r.mode)
}

func TestEffectiveMode_NonFileWriterIsMarkdown(t *testing.T) {
	r := NewRenderer(new(bytes.Buffer), new(bytes.Buffer), ModeAuto)
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestEffectiveMode_ExplicitModesPassThrough(t *testing.T) {
	for _, mode := range []Mode{ModeText, ModeMarkdown, ModeJSON} {
		r := NewRenderer(new(bytes.Buffer), new(bytes.Buffer), mode)
		assert.Equal(t, mode, r.EffectiveMode())
	}
}

func TestHeader_MarkdownMode(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewRenderer(buf, new(bytes.Buffer), ModeMarkdown)

	r.Header(1, "Documents")
	r.Header(2, "Details")

	assert.Equal(t, "# Documents\n## Details\n", buf.String())
}

func TestJSON_Indented(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewRenderer(buf, new(bytes.Buffer), ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"docs": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["docs"])
	assert.Contains(t, buf.String(), "\n  ")
}

func TestErrorf_GoesToErrWriter(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	r := NewRenderer(out, errOut, ModeMarkdown)

	r.Errorf("boom: %d\n", 7)

	assert.Empty(t, out.String())
	assert.Equal(t, "boom: 7\n", errOut.String())
}
