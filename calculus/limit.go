package calculus

import (
	"errors"
	"math"

	interp "github.com/jonathanmweiss/go-interp"
	"github.com/jonathanmweiss/go-interp/field"
	"golang.org/x/exp/constraints"
)

var (
	ErrInvalidLimitPoint = errors.New("limit point cannot be approached from this side")
	ErrLimitMismatch     = errors.New("one-sided limits disagree")
	ErrInvalidOptions    = errors.New("invalid limit options")
)

// LimitOptions controls the sampling of one-sided limits: Samples points at
// a±Step, a±Step/Shrink, a±Step/Shrink^2, ...
type LimitOptions struct {
	Samples int
	Step    float64
	Shrink  float64
}

var DefaultLimitOptions = LimitOptions{
	Samples: 6,
	Step:    1.0 / 64,
	Shrink:  8,
}

func (o LimitOptions) validate() error {
	if o.Samples < 1 || !(o.Step > 0) || !(o.Shrink > 1) {
		return ErrInvalidOptions
	}

	return nil
}

// LeftLimit approximates lim_{x->a-} f(x). At a = +Inf the problem is turned
// into the right-limit of f(1/t) at 0.
func LeftLimit[F constraints.Float](f func(F) F, a F) (F, error) {
	return LeftLimitWith(f, a, DefaultLimitOptions)
}

// RightLimit approximates lim_{x->a+} f(x). At a = -Inf the problem is turned
// into the left-limit of f(1/t) at 0.
func RightLimit[F constraints.Float](f func(F) F, a F) (F, error) {
	return RightLimitWith(f, a, DefaultLimitOptions)
}

func LeftLimitWith[F constraints.Float](f func(F) F, a F, opts LimitOptions) (F, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}

	if math.IsInf(float64(a), 0) {
		if a < 0 {
			return 0, ErrInvalidLimitPoint
		}

		return oneSided(func(t F) F { return f(1 / t) }, 0, 1, opts), nil
	}

	return oneSided(f, a, -1, opts), nil
}

func RightLimitWith[F constraints.Float](f func(F) F, a F, opts LimitOptions) (F, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}

	if math.IsInf(float64(a), 0) {
		if a > 0 {
			return 0, ErrInvalidLimitPoint
		}

		return oneSided(func(t F) F { return f(1 / t) }, 0, -1, opts), nil
	}

	return oneSided(f, a, 1, opts), nil
}

// oneSided samples f on the dir side of a, interpolates and extrapolates to a.
// A NaN extrapolation falls back to the sample closest to a.
func oneSided[F constraints.Float](f func(F) F, a, dir F, opts LimitOptions) F {
	points := make([]field.Point[F], opts.Samples)

	h := F(opts.Step)
	for i := range points {
		x := a + dir*h
		points[i] = field.Point[F]{X: x, Y: f(x)}
		h /= F(opts.Shrink)
	}

	res := interp.ComputePolynomial(points).Eval(a)
	if math.IsNaN(float64(res)) {
		return points[len(points)-1].Y
	}

	return res
}

// Limit approximates the two-sided limit of f at a finite point. The one-sided
// limits must agree within sqrt(epsilon), relative to their magnitude (or
// absolutely, near zero).
func Limit[F constraints.Float](f func(F) F, a F) (F, error) {
	if math.IsInf(float64(a), 0) {
		return 0, ErrInvalidLimitPoint
	}

	ll, err := LeftLimit(f, a)
	if err != nil {
		return 0, err
	}

	rl, err := RightLimit(f, a)
	if err != nil {
		return 0, err
	}

	tol := F(math.Sqrt(float64(epsilon[F]())))
	scale := F(math.Max(float64(abs(rl+ll)*0.5), 1))

	if abs(rl-ll) <= scale*tol {
		return (rl + ll) * 0.5, nil
	}

	return F(math.NaN()), ErrLimitMismatch
}

// epsilon returns the gap between 1 and the next representable F.
func epsilon[F constraints.Float]() F {
	eps := F(1)
	for one := F(1); one+eps/2 != one; {
		eps /= 2
	}

	return eps
}

func abs[F constraints.Float](x F) F {
	if x < 0 {
		return -x
	}

	return x
}
