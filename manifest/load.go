// SPDX-License-Identifier: MIT
// Package: lvtopo/manifest
//
// load.go - YAML and HCL front ends producing a Manifest.
//
// Both loaders only decode; call Validate or Build afterwards.
// HCL numbers arrive as cty numbers: whole numbers become int64, fractional
// ones float64, so the builder sees the same dynamic types as from YAML.

package manifest

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopo/builder"
)

// LoadYAML decodes a YAML manifest. Unknown keys are rejected.
func LoadYAML(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &m, nil
		}
		return nil, fmt.Errorf("LoadYAML: %w: %v", ErrParse, err)
	}

	return &m, nil
}

// hclRoot decodes the top level of an HCL manifest.
type hclRoot struct {
	Fixtures []*hclFixture `hcl:"fixture,block"`
}

// hclFixture is one `fixture "name" { ... }` block.
type hclFixture struct {
	Name     string    `hcl:"name,label"`
	Topology string    `hcl:"topology"`
	Args     cty.Value `hcl:"args,optional"`
}

// LoadHCL decodes an HCL manifest from src. filename is used in diagnostics.
func LoadHCL(src []byte, filename string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	var root hclRoot
	if diags = gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	m := &Manifest{Fixtures: make([]Entry, 0, len(root.Fixtures))}
	for _, f := range root.Fixtures {
		args, err := ctyArgs(f.Args)
		if err != nil {
			return nil, fmt.Errorf("LoadHCL(%s): fixture %q: %w", filename, f.Name, err)
		}
		m.Fixtures = append(m.Fixtures, Entry{Name: f.Name, Topology: f.Topology, Args: args})
	}

	return m, nil
}

// diagError wraps HCL diagnostics with ErrParse.
func diagError(filename string, diags hcl.Diagnostics) error {
	return fmt.Errorf("LoadHCL(%s): %w: %s", filename, ErrParse, diags.Error())
}

// ctyArgs converts an HCL list or tuple into dynamic Go values.
func ctyArgs(v cty.Value) ([]interface{}, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("%w: args must be a literal list", ErrParse)
	}
	ty := v.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, fmt.Errorf("%w: args must be a list, got %s", ErrParse, ty.FriendlyName())
	}

	out := make([]interface{}, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		arg, err := ctyArg(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, arg)
	}

	return out, nil
}

// ctyArg converts one HCL value. Values of other types are passed through as
// cty.Value so that builder.Generate reports them as a type mismatch.
func ctyArg(v cty.Value) (interface{}, error) {
	if v.IsNull() {
		return nil, nil
	}
	switch v.Type() {
	case cty.Number:
		bf := v.AsBigFloat()
		if !bf.IsInt() {
			f, _ := bf.Float64()
			return f, nil
		}
		i, acc := bf.Int64()
		if acc != big.Exact {
			return nil, fmt.Errorf("%w: %s does not fit in int64", builder.ErrInvalidArgument, bf.String())
		}
		return i, nil
	case cty.String:
		return v.AsString(), nil
	case cty.Bool:
		return v.True(), nil
	default:
		return v, nil
	}
}

// LoadFile reads a manifest, choosing the decoder by extension:
// .yaml/.yml for YAML, .hcl for HCL.
func LoadFile(path string) (*Manifest, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("LoadFile: %w", err)
		}
		defer f.Close()
		return LoadYAML(f)
	case ".hcl":
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadFile: %w", err)
		}
		return LoadHCL(src, path)
	default:
		return nil, fmt.Errorf("LoadFile(%s): %w", path, ErrUnsupportedFormat)
	}
}
