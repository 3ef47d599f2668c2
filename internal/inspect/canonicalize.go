package inspect

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for documents whose extension is not
// .toml, .json, .yaml or .yml.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Change records one value rewritten by Canonicalize.
type Change struct {
	Key string
	Old string
	New string
}

type docFormat struct {
	unmarshal func([]byte, any) error
	marshal   func(any) ([]byte, error)
}

var formats = map[string]docFormat{
	".toml": {toml.Unmarshal, toml.Marshal},
	".json": {unmarshalJSON, marshalJSON},
	".yaml": {yaml.Unmarshal, yaml.Marshal},
	".yml":  {yaml.Unmarshal, yaml.Marshal},
}

// unmarshalJSON keeps numbers as json.Number so integers beyond float64
// precision are written back unchanged.
func unmarshalJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Canonicalize rewrites every valid, non-canonical duration value under the
// given dotted keys into canonical notation and saves the document. Keys
// that are missing or malformed are left alone; run Check to report them.
// The document is re-encoded, so comments and key order are not preserved.
// The file is only written when at least one value changed.
func Canonicalize(path string, keys []string) ([]Change, error) {
	format, ok := formats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	report, err := Check(path, keys)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc map[string]any
	if err := format.unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var changes []Change
	for _, f := range report.Findings {
		if !f.NeedsRewrite() {
			continue
		}
		parent, leaf, ok := lookup(doc, f.Key)
		if !ok {
			continue
		}
		parent[leaf] = f.Canonical
		changes = append(changes, Change{Key: f.Key, Old: f.Text, New: f.Canonical})
	}
	if len(changes) == 0 {
		return nil, nil
	}

	out, err := format.marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return changes, nil
}

// lookup walks a dotted key through nested maps and returns the map that
// holds the final segment. Viper matches keys case-insensitively, so each
// segment falls back to a case-insensitive match.
func lookup(doc map[string]any, key string) (map[string]any, string, bool) {
	parts := strings.Split(key, ".")
	m := doc
	for i, p := range parts {
		name, ok := findKey(m, p)
		if !ok {
			return nil, "", false
		}
		if i == len(parts)-1 {
			return m, name, true
		}
		next, ok := m[name].(map[string]any)
		if !ok {
			return nil, "", false
		}
		m = next
	}
	return nil, "", false
}

func findKey(m map[string]any, want string) (string, bool) {
	if _, ok := m[want]; ok {
		return want, true
	}
	for k := range m {
		if strings.EqualFold(k, want) {
			return k, true
		}
	}
	return "", false
}
