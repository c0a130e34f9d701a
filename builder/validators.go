// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// validators.go - parameter checks shared by the generators and Generate.
// Each helper returns a builderErrorf-wrapped sentinel on violation.

package builder

import "math"

// validateMin ensures that the named integer parameter 'got' is ≥ 'min'.
// Returns "<Method>: <name>=<got> < min=<min>: builder: invalid argument" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrInvalidArgument, "%s=%d < min=%d", name, got, min)
	}

	return nil
}

// toInt converts a dynamically typed argument to int.
//
// Only Go integer kinds are accepted. Strings, bools, floats and nil are a
// type mismatch. Unsigned values that overflow int are an invalid argument.
//
// Complexity: O(1).
func toInt(method, name string, arg interface{}) (int, error) {
	switch v := arg.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		if v > math.MaxInt || v < math.MinInt {
			return 0, builderErrorf(method, ErrInvalidArgument, "%s=%d overflows int", name, v)
		}
		return int(v), nil
	case uint:
		if v > math.MaxInt {
			return 0, builderErrorf(method, ErrInvalidArgument, "%s=%d overflows int", name, v)
		}
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			return 0, builderErrorf(method, ErrInvalidArgument, "%s=%d overflows int", name, v)
		}
		return int(v), nil
	default:
		return 0, builderErrorf(method, ErrTypeMismatch, "%s has type %T", name, arg)
	}
}
