// SPDX-License-Identifier: MIT
// Package: linkfail/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` with the method name first:
//       "Constant: k=0 < min=1: builder: invalid parameters"
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkfail/topology"
)

// ErrInvalidParameters indicates that generation constraints were violated:
// node count < 1, degree outside [1, n-1], cluster count not dividing the
// node count, unknown policy, or a weight function returning a weight < 1.
// It is the same value as topology.ErrInvalidParameters so callers can test
// either name with errors.Is.
var ErrInvalidParameters = topology.ErrInvalidParameters

// ErrUnknownPolicy indicates a policy name or value outside the closed set
// of generation policies. It always travels together with ErrInvalidParameters.
var ErrUnknownPolicy = fmt.Errorf("builder: unknown policy: %w", ErrInvalidParameters)

// invalidf wraps ErrInvalidParameters with the method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
func invalidf(method, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, ErrInvalidParameters)
}
