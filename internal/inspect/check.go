// Package inspect validates duration-notation fields inside TOML, JSON and
// YAML documents and rewrites them into canonical form.
package inspect

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/papapumpkin/tempo/internal/span"
)

// ErrNoKeys is returned when Check is called without any keys to validate.
var ErrNoKeys = errors.New("no keys to check")

// ErrNotString is recorded for a key whose value is not a string.
var ErrNotString = errors.New("value is not a string")

// ErrMissingKey is recorded for a key that is absent from the document.
var ErrMissingKey = errors.New("key not found")

// Status classifies the outcome for one key.
type Status int

const (
	StatusOK        Status = iota // parsed successfully
	StatusMissing                 // key absent
	StatusNotString               // present but not a string
	StatusMalformed               // string that is not valid notation
)

// String returns a short lower-case label for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusNotString:
		return "not-string"
	case StatusMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Finding is the result of checking a single key.
type Finding struct {
	Key       string
	Text      string        // raw value as written, when it is a string
	Duration  time.Duration // parsed value when Status is StatusOK
	Canonical string        // canonical rendering when Status is StatusOK
	Status    Status
	Err       error
}

// OK reports whether the key held valid notation.
func (f Finding) OK() bool {
	return f.Status == StatusOK
}

// NeedsRewrite reports whether the value is valid but not in canonical form.
func (f Finding) NeedsRewrite() bool {
	return f.OK() && f.Text != f.Canonical
}

// Report collects the findings for one document.
type Report struct {
	Path     string
	Findings []Finding
}

// Failed returns the number of findings that are not OK.
func (r *Report) Failed() int {
	n := 0
	for _, f := range r.Findings {
		if !f.OK() {
			n++
		}
	}
	return n
}

// Err summarizes the report as an error naming every failing key and its
// text, or nil if all keys are valid.
func (r *Report) Err() error {
	var errs []error
	for _, f := range r.Findings {
		if f.OK() {
			continue
		}
		errs = append(errs, fmt.Errorf("%s: key %s: %w", r.Path, f.Key, f.Err))
	}
	return errors.Join(errs...)
}

// Check reads the document at path (format chosen by extension) and
// validates each dotted key as duration notation.
func Check(path string, keys []string) (*Report, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	report := &Report{Path: path, Findings: make([]Finding, 0, len(keys))}
	for _, key := range keys {
		report.Findings = append(report.Findings, checkKey(v, key))
	}
	return report, nil
}

func checkKey(v *viper.Viper, key string) Finding {
	f := Finding{Key: key}
	if !v.IsSet(key) {
		f.Status = StatusMissing
		f.Err = ErrMissingKey
		return f
	}

	raw := v.Get(key)
	s, ok := raw.(string)
	if !ok {
		f.Status = StatusNotString
		f.Err = fmt.Errorf("%w: %v (%T)", ErrNotString, raw, raw)
		return f
	}
	f.Text = s

	d, err := span.Parse(s)
	if err != nil {
		f.Status = StatusMalformed
		f.Err = fmt.Errorf("invalid duration %q: %w", s, err)
		return f
	}
	canonical, err := span.Format(d)
	if err != nil {
		f.Status = StatusMalformed
		f.Err = fmt.Errorf("invalid duration %q: %w", s, err)
		return f
	}

	f.Duration = d
	f.Canonical = canonical
	f.Status = StatusOK
	return f
}
