package span

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that serializes as duration notation. Use it
// as a struct field type to read and write values such as "1H30m" in JSON,
// TOML, YAML, CBOR and viper configuration.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns the canonical notation for d. Values that have no
// canonical form fall back to time.Duration formatting.
func (d Duration) String() string {
	s, err := Format(time.Duration(d))
	if err != nil {
		return time.Duration(d).String()
	}
	return s
}

// MarshalText implements encoding.TextMarshaler. go-toml and mapstructure
// use it to write the field.
func (d Duration) MarshalText() ([]byte, error) {
	s, err := Format(time.Duration(d))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	return d.set(string(text))
}

// MarshalJSON encodes d as a JSON string.
func (d Duration) MarshalJSON() ([]byte, error) {
	s, err := Format(time.Duration(d))
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON decodes a JSON string in duration notation. A JSON null
// leaves d unchanged.
func (d *Duration) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a JSON string, got %s", data)
	}
	return d.set(s)
}

// MarshalYAML encodes d as a YAML string scalar.
func (d Duration) MarshalYAML() (any, error) {
	return Format(time.Duration(d))
}

// UnmarshalYAML decodes a YAML scalar in duration notation.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}
	if err := d.set(value.Value); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	return nil
}

// MarshalCBOR encodes d as a CBOR text string.
func (d Duration) MarshalCBOR() ([]byte, error) {
	s, err := Format(time.Duration(d))
	if err != nil {
		return nil, err
	}
	return cborEncMode.Marshal(s)
}

// UnmarshalCBOR decodes a CBOR text string in duration notation.
func (d *Duration) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cborDecMode.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a CBOR text string: %w", err)
	}
	return d.set(s)
}

func (d *Duration) set(s string) error {
	v, err := Parse(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}
