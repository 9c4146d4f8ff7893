package datafile_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/hasbyte1/go-utils/internal/datafile"
)

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]datafile.Format{
		"json": datafile.JSON, " YAML ": datafile.YAML, "yml": datafile.YAML,
		"toml": datafile.TOML, "msgpack": datafile.MsgPack, "mpk": datafile.MsgPack,
	} {
		got, err := datafile.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := datafile.ParseFormat("xml")
	assert.ErrorIs(t, err, datafile.ErrUnknownFormat)
}

func TestFormatOf(t *testing.T) {
	f, err := datafile.FormatOf("data/order.YML")
	require.NoError(t, err)
	assert.Equal(t, datafile.YAML, f)

	_, err = datafile.FormatOf("order.txt")
	assert.ErrorIs(t, err, datafile.ErrUnknownFormat)
}

func TestDecode(t *testing.T) {
	cases := []struct {
		format datafile.Format
		data   string
		want   any
	}{
		{datafile.JSON, `{"name": "Ada", "n": 3, "tags": ["a"]}`,
			map[string]any{"name": "Ada", "n": json.Number("3"), "tags": []any{"a"}}},
		{datafile.YAML, "name: Ada\nn: 3\ntags: [a]\n",
			map[string]any{"name": "Ada", "n": 3, "tags": []any{"a"}}},
		{datafile.YAML, "1: one\ntrue: yes\n",
			map[string]any{"1": "one", "true": "yes"}},
		{datafile.TOML, "name = \"Ada\"\nn = 3\ntags = [\"a\"]\n",
			map[string]any{"name": "Ada", "n": int64(3), "tags": []any{"a"}}},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			got, err := datafile.Decode([]byte(tc.data), tc.format)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecode_MsgPack(t *testing.T) {
	raw, err := msgpack.Marshal(map[string]any{"name": "Ada", "items": []string{"A", "B"}})
	require.NoError(t, err)

	got, err := datafile.Decode(raw, datafile.MsgPack)
	require.NoError(t, err)
	m, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", m["name"])
	assert.Equal(t, []any{"A", "B"}, m["items"])
}

func TestDecode_Errors(t *testing.T) {
	for f, data := range map[datafile.Format]string{
		datafile.JSON:    `{"a": `,
		datafile.YAML:    "a: [1, 2",
		datafile.TOML:    "a = ",
		datafile.MsgPack: "\xc1",
	} {
		_, err := datafile.Decode([]byte(data), f)
		assert.Error(t, err, string(f))
	}
	_, err := datafile.Decode([]byte("{}"), "xml")
	assert.ErrorIs(t, err, datafile.ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user:\n  name: Ada\n"), 0o644))

	got, err := datafile.Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"user": map[string]any{"name": "Ada"}}, got)

	// An explicit format wins over the extension.
	jsonPath := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"a": 1}`), 0o644))
	got, err = datafile.Load(jsonPath, datafile.JSON)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": json.Number("1")}, got)

	_, err = datafile.Load(jsonPath, "")
	assert.ErrorIs(t, err, datafile.ErrUnknownFormat)

	_, err = datafile.Load(filepath.Join(dir, "missing.json"), "")
	assert.Error(t, err)
}
