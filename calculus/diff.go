// Package calculus approximates derivatives and limits of real functions,
// the limits by interpolating samples taken ever closer to the limit point.
package calculus

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// DiffMode selects the finite-difference stencil.
type DiffMode int

const (
	Central DiffMode = iota
	Forward
	Backward
)

// DefaultStep is the step used by callers that have no better estimate of h.
const DefaultStep = 1e-6

func (m DiffMode) String() string {
	switch m {
	case Central:
		return "central"
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("DiffMode(%d)", int(m))
	}
}

// FDiff approximates f'(x) with step h.
func FDiff[F constraints.Float](f func(F) F, x, h F, mode DiffMode) F {
	switch mode {
	case Forward:
		return (f(x+h) - f(x)) / h
	case Backward:
		return (f(x) - f(x-h)) / h
	default:
		return (f(x+h) - f(x-h)) / (2 * h)
	}
}
