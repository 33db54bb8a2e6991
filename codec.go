package siteconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a serialization format for the settings record.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	// ErrUnknownFormat is returned for a format name or extension that is not supported.
	ErrUnknownFormat = errors.New("siteconf: unknown format")
	// ErrUnknownField is returned when decoded data carries a key the record does not have.
	ErrUnknownField = errors.New("siteconf: unknown field")
)

// ParseFormat maps a format name or a file name/extension to a Format.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if ext := filepath.Ext(name); ext != "" {
		name = ext
	}
	switch strings.TrimPrefix(name, ".") {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml; charset=utf-8"
	case FormatTOML:
		return "application/toml; charset=utf-8"
	}
	return "application/json; charset=utf-8"
}

// Marshal encodes s in format f using the record's camelCase keys.
func Marshal(s Settings, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("siteconf: encode json: %w", err)
		}
		return append(b, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("siteconf: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("siteconf: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		b, err := toml.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("siteconf: encode toml: %w", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Unmarshal decodes data in format f. Decoding starts from a zero record, so
// keys absent from data stay zero and unknown keys fail with ErrUnknownField.
func Unmarshal(data []byte, f Format) (Settings, error) {
	var s Settings
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			if strings.HasPrefix(err.Error(), "json: unknown field") {
				return Settings{}, fmt.Errorf("%w: %v", ErrUnknownField, err)
			}
			return Settings{}, fmt.Errorf("siteconf: decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			if strings.Contains(err.Error(), "not found in type") {
				return Settings{}, fmt.Errorf("%w: %v", ErrUnknownField, err)
			}
			return Settings{}, fmt.Errorf("siteconf: decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return Settings{}, fmt.Errorf("%w: %v", ErrUnknownField, err)
			}
			return Settings{}, fmt.Errorf("siteconf: decode toml: %w", err)
		}
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	return s, nil
}
