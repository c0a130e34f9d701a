// SPDX-License-Identifier: MIT
// Package: lvtopo/manifest
//
// manifest.go - manifest model, validation and fixture generation.
//
// Contract:
//   • A Manifest lists named entries; each names a topology and its arguments.
//   • Arguments keep their decoded dynamic type; Build hands them to
//     builder.Generate unchanged, so a string argument fails there with
//     builder.ErrTypeMismatch and a bad size with builder.ErrInvalidArgument.
//   • Validate runs struct-tag checks only (presence, uniqueness, known kind).
//   • Build generates entries in manifest order and stops at the first failure.

package manifest

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/core"
)

// Sentinel errors for manifest loading and validation.
var (
	// ErrParse indicates malformed YAML or HCL.
	ErrParse = errors.New("manifest: parse error")

	// ErrInvalidManifest indicates a well-formed manifest that fails validation.
	ErrInvalidManifest = errors.New("manifest: invalid manifest")

	// ErrUnsupportedFormat indicates a file extension LoadFile cannot handle.
	ErrUnsupportedFormat = errors.New("manifest: unsupported format")
)

// MaxNameLength bounds fixture names; they become output file names.
const MaxNameLength = 128

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	// "topology" accepts any name builder.ParseKind resolves.
	_ = validate.RegisterValidation("topology", func(fl validator.FieldLevel) bool {
		_, err := builder.ParseKind(fl.Field().String())
		return err == nil
	})
	// "fixturename" bounds names by MaxNameLength runes.
	_ = validate.RegisterValidation("fixturename", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) <= MaxNameLength
	})
}

// Manifest is the root of a fixture manifest.
type Manifest struct {
	Fixtures []Entry `yaml:"fixtures" validate:"required,min=1,unique=Name,dive"`
}

// Entry declares one fixture: a unique name, a topology and its arguments.
type Entry struct {
	Name     string        `yaml:"name" validate:"required,fixturename,excludesall=/\\"`
	Topology string        `yaml:"topology" validate:"required,topology"`
	Args     []interface{} `yaml:"args" validate:"required,min=1"`
}

// Fixture is a generated entry.
type Fixture struct {
	Name  string
	Graph *core.Graph
}

// Validate checks m against its struct tags.
// Returns ErrInvalidManifest wrapped with the first offending field.
func Validate(m *Manifest) error {
	if m == nil {
		return fmt.Errorf("Validate: nil manifest: %w", ErrInvalidManifest)
	}
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("Validate: %w: %v", ErrInvalidManifest, formatValidationError(err))
	}

	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Report the first validation error only.
	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must have at least %s element(s)", field, e.Param())
		case "fixturename":
			return fmt.Errorf("%s: must not exceed %d characters", field, MaxNameLength)
		case "unique":
			return fmt.Errorf("%s: %s values must be unique", field, e.Param())
		case "topology":
			return fmt.Errorf("%s: unknown topology %q (known: %v)", field, e.Value(), builder.Kinds())
		case "excludesall":
			return fmt.Errorf("%s: must not contain path separators", field)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}

// Observer is called after each generator call made by Build with the fixture
// name, its kind, the result and the time the generator took.
type Observer func(name string, kind builder.Kind, g *core.Graph, err error, took time.Duration)

// BuildOption configures Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	observe Observer
}

// WithObserver registers fn to be called after every generator call.
func WithObserver(fn Observer) BuildOption {
	return func(o *buildOptions) { o.observe = fn }
}

// Build validates m and generates every entry in order.
//
// Errors: ErrInvalidManifest, or the builder error of the first failing
// entry wrapped with its name.
func Build(m *Manifest, opts ...BuildOption) ([]Fixture, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	var bo buildOptions
	for _, opt := range opts {
		opt(&bo)
	}

	out := make([]Fixture, 0, len(m.Fixtures))
	for _, e := range m.Fixtures {
		kind, err := builder.ParseKind(e.Topology)
		if err != nil {
			return nil, fmt.Errorf("Build: fixture %q: %w", e.Name, err)
		}
		start := time.Now()
		g, err := builder.Generate(kind, e.Args...)
		if bo.observe != nil {
			bo.observe(e.Name, kind, g, err, time.Since(start))
		}
		if err != nil {
			return nil, fmt.Errorf("Build: fixture %q: %w", e.Name, err)
		}
		out = append(out, Fixture{Name: e.Name, Graph: g})
	}

	return out, nil
}
