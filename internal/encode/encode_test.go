package encode

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/daylayout/internal/model"
	"gopkg.in/yaml.v3"
)

var sample = []model.LaidOutEvent{
	{Event: model.Event{ID: "1", Start: 60, End: 120}, Column: 0, Left: 0, Top: 60, Width: 300},
	{Event: model.Event{ID: "2", Start: 90, End: 160}, Column: 1, Left: 300, Top: 90, Width: 300},
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{"json": FormatJSON, "JSON": FormatJSON, "yaml": FormatYAML, "yml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("html")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sample))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, map[string]any{
		"id": "2", "start": float64(90), "end": float64(160), "column": float64(1),
		"left": float64(300), "top": float64(90), "width": float64(300), "height": float64(70),
	}, got[1])
}

func TestWrite_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sample))

	var got []Record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, Records(sample), got)
	assert.Equal(t, 60, got[0].Height)
}

func TestWrite_EmptyLayout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, nil))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, Format("xml"), sample))
}
