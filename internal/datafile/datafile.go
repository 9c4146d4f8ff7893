// Package datafile decodes template data files into plain Go values:
// map[string]any, []any and scalars. JSON, YAML, TOML and MessagePack are
// supported.
package datafile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format names an encoding.
type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	TOML    Format = "toml"
	MsgPack Format = "msgpack"
)

// ErrUnknownFormat is returned for a format name or file extension that no
// decoder handles.
var ErrUnknownFormat = errors.New("datafile: unknown format")

var extensions = map[string]Format{
	".json":    JSON,
	".yaml":    YAML,
	".yml":     YAML,
	".toml":    TOML,
	".msgpack": MsgPack,
	".mpk":     MsgPack,
}

// ParseFormat maps a user-supplied name to a Format. "yml" and "mpk" are
// accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case JSON, YAML, TOML, MsgPack:
		return f, nil
	case "yml":
		return YAML, nil
	case "mpk":
		return MsgPack, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatOf infers the format from the extension of path.
func FormatOf(path string) (Format, error) {
	if f, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: extension of %q", ErrUnknownFormat, path)
}

// Load reads and decodes the file at path. An empty format is inferred from
// the file extension.
func Load(path string, format Format) (any, error) {
	if format == "" {
		var err error
		if format, err = FormatOf(path); err != nil {
			return nil, err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, format)
}

// Decode decodes data. JSON numbers are kept as json.Number so integers
// survive unchanged; YAML maps with non-string keys are rekeyed with
// fmt.Sprint.
func Decode(data []byte, format Format) (any, error) {
	var out any
	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&out); err != nil {
			return nil, fmt.Errorf("datafile: decode json: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("datafile: decode yaml: %w", err)
		}
		out = normalize(out)
	case TOML:
		table := map[string]any{}
		if _, err := toml.Decode(string(data), &table); err != nil {
			return nil, fmt.Errorf("datafile: decode toml: %w", err)
		}
		out = table
	case MsgPack:
		if err := msgpack.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("datafile: decode msgpack: %w", err)
		}
		out = normalize(out)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	return out, nil
}

// normalize rewrites map[any]any into map[string]any, recursively.
func normalize(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case map[string]any:
		for k, item := range t {
			t[k] = normalize(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = normalize(item)
		}
		return t
	}
	return v
}
