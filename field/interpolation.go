package field

import "errors"

// Point is an interpolation node (X, Y).
type Point[T any] struct {
	X, Y T
}

// Mode selects how numeric degeneracies are reported.
type Mode int

const (
	// Silent lets duplicate nodes and divisions by zero flow through the
	// arithmetic (IEEE fields yield Inf/NaN).
	Silent Mode = iota
	// Strict checks the preconditions and reports violations as errors.
	Strict
)

func (m Mode) String() string {
	switch m {
	case Silent:
		return "silent"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

type Interpolator[T any] struct {
	ring *DensePolyRing[T]
	mode Mode
}

func NewInterpolator[T any](f Field[T], mode Mode) *Interpolator[T] {
	return &Interpolator[T]{ring: NewDensePolyRing(f), mode: mode}
}

func (intr *Interpolator[T]) Mode() Mode {
	return intr.mode
}

var (
	ErrPointsSizeMismatch = errors.New("points size mismatch")
	ErrNonUniqueXs        = errors.New("non-unique x values")
)

/*
ComputePolynomial returns the polynomial of degree <= len(points)-1 through every point,
using the explicit Lagrange sum

	P(x) = \sum_i y_i \prod_{j\ne i} (x - x_j)/(x_i - x_j)

Each basis polynomial is grown one linear factor at a time, so the total cost is O(n^3).
In Silent mode a repeated x divides by zero; Strict mode rejects it with ErrNonUniqueXs.
*/
func (intr *Interpolator[T]) ComputePolynomial(points []Point[T]) (*Polynomial[T], error) {
	f := intr.ring.Field
	if intr.mode == Strict {
		if err := validateDistinct(f, xsOf(points)); err != nil {
			return nil, err
		}
	}

	res := Zero(f)
	linear := Zero(f)
	for i, pi := range points {
		base := Constant(f, f.One())

		for j, pj := range points {
			if i == j {
				continue
			}

			// (x - x_j) / (x_i - x_j)
			linear.inner = []T{f.Neg(pj.X), f.One()}
			intr.ring.MulPoly(base, linear, base)
			intr.ring.QuoScalar(base, f.Sub(pi.X, pj.X), base)
		}

		intr.ring.MulScalar(base, pi.Y, base)
		intr.ring.AddPoly(res, base, res)
	}

	return res, nil
}

// Interpolate computes the same polynomial as ComputePolynomial in O(n^2):
// 1. Create m(x) = \prod_{0\le i \le n} (x - x_i)
// 2. For each i, create q_i(x) = m(x) / (x - x_i) by synthetic division.
// 3. then from each q_i create l_i by multiplying q_i by y_i / q_i(x_i).
// 4. Finally, sum all l_i.
func (intr *Interpolator[T]) Interpolate(xs, ys []T) (*Polynomial[T], error) {
	if len(xs) != len(ys) {
		return nil, ErrPointsSizeMismatch
	}

	f := intr.ring.Field
	if intr.mode == Strict {
		if err := validateDistinct(f, xs); err != nil {
			return nil, err
		}
	}

	if len(xs) == 0 {
		return Zero(f), nil
	}

	m := FromRoots(f, xs)

	sum := intr.ring.zeros(len(xs))
	for i, xi := range xs {
		qi := intr.mDivMi(m, xi)
		s := f.Quo(ys[i], intr.ring.Evaluate(qi, xi))

		for k, c := range qi.inner {
			sum[k] = f.Add(sum[k], f.Mul(c, s))
		}
	}

	return NewPolynomial(f, sum), nil
}

/*
mDivMi divides m by (x - root). This is quicker than the long division method since
we know that the divisor is of degree 1, and that we don't have a remainder.
The quotient is returned unnormalized: it always has len(m)-1 coefficients.
*/
func (intr *Interpolator[T]) mDivMi(m *Polynomial[T], root T) *Polynomial[T] {
	f := intr.ring.Field
	qinner := make([]T, len(m.inner)-1)

	carry := f.Zero()
	for i := len(m.inner) - 1; i > 0; i-- {
		carry = f.Add(m.inner[i], f.Mul(carry, root))
		qinner[i-1] = carry
	}

	return &Polynomial[T]{f: f, inner: qinner}
}

func xsOf[T any](points []Point[T]) []T {
	xs := make([]T, len(points))
	for i, p := range points {
		xs[i] = p.X
	}

	return xs
}

func validateDistinct[T any](f Field[T], xs []T) error {
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if f.Equals(xs[i], xs[j]) {
				return ErrNonUniqueXs
			}
		}
	}

	return nil
}

// ValidatePoints reports ErrNonUniqueXs if two nodes share an x-coordinate.
func ValidatePoints[T any](f Field[T], points []Point[T]) error {
	return validateDistinct(f, xsOf(points))
}
