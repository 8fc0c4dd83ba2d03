// SPDX-License-Identifier: MIT
// Package: linkfail/builder
//
// validators.go — parameter checks shared by generators. Each helper returns
// an error wrapping ErrInvalidParameters when its precondition is violated.

package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
//
// Parameters:
//   - method: generator name constant, e.g. MethodConstant.
//   - name:   parameter name for the message ("n", "k", ...).
//   - got:    actual value supplied by user.
//   - min:    minimal acceptable value.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return invalidf(method, "%s=%d < min=%d", name, got, min)
	}

	return nil
}

// validateMax ensures that 'got' is ≤ 'max'.
func validateMax(method, name string, got, max int) error {
	if got > max {
		return invalidf(method, "%s=%d > max=%d", name, got, max)
	}

	return nil
}

// validateDivides ensures that 'n' is an exact multiple of 'parts'.
// Callers check parts ≥ 1 first.
func validateDivides(method string, n, parts int) error {
	if n%parts != 0 {
		return invalidf(method, "n=%d is not divisible by clusters=%d", n, parts)
	}

	return nil
}
