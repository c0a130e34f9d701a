// SPDX-License-Identifier: MIT
// Package: lvtopo/encoding
//
// codec.go - JSON and YAML codecs over Document, and format selection.

package encoding

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopo/core"
)

// Format names a serialization.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// yamlIndent matches the two-space style of hand-written manifests.
const yamlIndent = 2

// ParseFormat resolves a case-insensitive format name ("yml" is YAML).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

// FormatFromExt picks the format from a file extension. A trailing SnappyExt
// is skipped, so "ring.yaml.sz" is YAML.
func FormatFromExt(path string) (Format, error) {
	base := path
	if IsCompressed(base) {
		base = base[:len(base)-len(SnappyExt)]
	}
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if ext == "" {
		return "", fmt.Errorf("FormatFromExt(%q): %w", path, ErrUnknownFormat)
	}

	return ParseFormat(ext)
}

// Ext returns the canonical file extension for f, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// MarshalJSON encodes g as an indented node-link JSON document.
func MarshalJSON(g *core.Graph) ([]byte, error) {
	doc, err := FromGraph(g)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalJSON decodes a node-link JSON document. Unknown fields are rejected.
func UnmarshalJSON(data []byte) (*core.Graph, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("UnmarshalJSON: %w: %v", ErrDecode, err)
	}

	return doc.ToGraph()
}

// MarshalYAML encodes g as a node-link YAML document.
func MarshalYAML(g *core.Graph) ([]byte, error) {
	doc, err := FromGraph(g)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err = enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("MarshalYAML: %w", err)
	}
	if err = enc.Close(); err != nil {
		return nil, fmt.Errorf("MarshalYAML: %w", err)
	}

	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a node-link YAML document. Unknown fields are rejected.
func UnmarshalYAML(data []byte) (*core.Graph, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("UnmarshalYAML: %w: %v", ErrDecode, err)
	}

	return doc.ToGraph()
}

// Encode writes g to w in format f.
func Encode(w io.Writer, g *core.Graph, f Format) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON:
		data, err = MarshalJSON(g)
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = MarshalYAML(g)
	default:
		return fmt.Errorf("Encode(%q): %w", string(f), ErrUnknownFormat)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}

// Decode reads one document in format f from r.
func Decode(r io.Reader, f Format) (*core.Graph, error) {
	switch f {
	case FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("Decode(%q): %w", string(f), ErrUnknownFormat)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	if f == FormatJSON {
		return UnmarshalJSON(data)
	}

	return UnmarshalYAML(data)
}
