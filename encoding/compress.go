// SPDX-License-Identifier: MIT
// Package: lvtopo/encoding
//
// compress.go - snappy block compression for large fixture documents.
//
// A path ending in ".sz" (e.g. "mesh.json.sz") carries a snappy-compressed
// document; the format is taken from the extension before it.

package encoding

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/golang/snappy"

	"github.com/katalvlaran/lvtopo/core"
)

// SnappyExt marks a snappy-compressed document.
const SnappyExt = ".sz"

// IsCompressed reports whether path names a snappy-compressed document.
func IsCompressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), SnappyExt)
}

// EncodeCompressed writes g in format f as a single snappy block.
func EncodeCompressed(w io.Writer, g *core.Graph, f Format) error {
	var buf bytes.Buffer
	if err := Encode(&buf, g, f); err != nil {
		return err
	}
	if _, err := w.Write(snappy.Encode(nil, buf.Bytes())); err != nil {
		return fmt.Errorf("EncodeCompressed: %w", err)
	}

	return nil
}

// DecodeCompressed reads a snappy block from r and decodes it as format f.
func DecodeCompressed(r io.Reader, f Format) (*core.Graph, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("DecodeCompressed: %w", err)
	}
	data, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("DecodeCompressed: %w: %v", ErrDecode, err)
	}

	return Decode(bytes.NewReader(data), f)
}
