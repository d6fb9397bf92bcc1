package field

import (
	"fmt"
	"strconv"
	"strings"
)

type reducer[T any] interface {
	Reduce(a T) T
}

type Polynomial[T any] struct {
	f     Field[T]
	inner []T
}

/*
NewPolynomial copies the coefficients, ordered from lowest to highest degree
(e.g. [1, 2, 3] is 1 + 2x + 3x^2), and drops superfluous leading zeros.

Fields that implement Reduce (such as PrimeField) get their coefficients
reduced here, so every stored coefficient is canonical.

Every method returns a fresh polynomial and never mutates its operands,
so a *Polynomial behaves like a value and can be shared between goroutines.
Binary operations use the receiver's field for both operands.
*/
func NewPolynomial[T any](f Field[T], coeffs []T) *Polynomial[T] {
	inner := make([]T, len(coeffs))
	copy(inner, coeffs)

	if r, ok := f.(reducer[T]); ok {
		for i := range inner {
			inner[i] = r.Reduce(inner[i])
		}
	}

	p := &Polynomial[T]{f: f, inner: inner}
	p.removeLeadingZeroes()

	return p
}

// Zero returns the zero polynomial, represented by an empty coefficient slice.
func Zero[T any](f Field[T]) *Polynomial[T] {
	return &Polynomial[T]{f: f}
}

// Constant returns the polynomial c.
func Constant[T any](f Field[T], c T) *Polynomial[T] {
	return NewPolynomial(f, []T{c})
}

// Monomial returns c*x^deg.
func Monomial[T any](f Field[T], c T, deg int) *Polynomial[T] {
	inner := make([]T, deg+1)
	for i := range inner {
		inner[i] = f.Zero()
	}
	inner[deg] = c

	return NewPolynomial(f, inner)
}

func (p *Polynomial[T]) Field() Field[T] {
	return p.f
}

func (p *Polynomial[T]) IsZero() bool {
	return len(p.inner) == 0
}

// Equals compares coefficient sequences. Both sides are normalized, so
// structural equality is polynomial equality.
func (p *Polynomial[T]) Equals(q *Polynomial[T]) bool {
	if len(p.inner) != len(q.inner) {
		return false
	}

	fld := p.f
	for i := range p.inner {
		if !fld.Equals(p.inner[i], q.inner[i]) {
			return false
		}
	}

	return true
}

// Degree returns the index of the highest non-zero coefficient, and 0 for the zero polynomial.
func (p *Polynomial[T]) Degree() int {
	if len(p.inner) == 0 {
		return 0
	}

	return len(p.inner) - 1
}

func (p *Polynomial[T]) LeadCoeff() T {
	if len(p.inner) == 0 {
		return p.f.Zero()
	}

	return p.inner[len(p.inner)-1]
}

// Coeff returns the coefficient of x^i, zero beyond the degree.
func (p *Polynomial[T]) Coeff(i int) T {
	if i < 0 || i >= len(p.inner) {
		return p.f.Zero()
	}

	return p.inner[i]
}

func (p *Polynomial[T]) removeLeadingZeroes() {
	i := len(p.inner) - 1
	for i >= 0 && p.f.IsZero(p.inner[i]) {
		i--
	}

	p.inner = p.inner[:i+1]
}

func (p *Polynomial[T]) Copy() *Polynomial[T] {
	innercopy := make([]T, len(p.inner))
	copy(innercopy, p.inner)

	return &Polynomial[T]{f: p.f, inner: innercopy}
}

func (p *Polynomial[T]) String() string {
	if len(p.inner) == 0 {
		return "0"
	}

	bldr := strings.Builder{}

	for i := len(p.inner) - 1; i >= 0; i-- {
		if p.f.IsZero(p.inner[i]) {
			continue
		}

		if bldr.Len() > 0 {
			bldr.WriteString(" + ")
		}

		bldr.WriteString(fmt.Sprint(p.inner[i]))

		switch i {
		case 0:
		case 1:
			bldr.WriteString("*x")
		default:
			bldr.WriteString("*x^")
			bldr.WriteString(strconv.Itoa(i))
		}
	}

	return bldr.String()
}

func (p *Polynomial[T]) ToSlice() []T {
	list := make([]T, len(p.inner))
	copy(list, p.inner)

	return list
}

// Eval substitutes x into the indeterminate, accumulating a_i * x^i with a running power of x.
func (p *Polynomial[T]) Eval(x T) T {
	return EvalIn(p, p.f, func(a T) T { return a }, x)
}

// EvalIn evaluates p at a point of another field g, embedding each coefficient
// first. Evaluating a real polynomial at a complex point is the typical use.
func EvalIn[T, V any](p *Polynomial[T], g Field[V], embed func(T) V, x V) V {
	if len(p.inner) == 0 {
		return g.Zero()
	}

	// x^0 is taken as 1 without touching the power accumulation.
	if g.IsZero(x) {
		return embed(p.inner[0])
	}

	xpow := g.One()
	res := g.Zero()
	for _, a := range p.inner {
		res = g.Add(res, g.Mul(embed(a), xpow))
		xpow = g.Mul(xpow, x)
	}

	return res
}

// Derivative returns the formal derivative. Constants map to the zero polynomial.
func (p *Polynomial[T]) Derivative() *Polynomial[T] {
	if len(p.inner) <= 1 {
		return Zero(p.f)
	}

	fld := p.f
	inner := make([]T, len(p.inner)-1)
	for i := range inner {
		inner[i] = fld.Mul(fld.FromInt64(int64(i+1)), p.inner[i+1])
	}

	d := &Polynomial[T]{f: fld, inner: inner}
	// n*a_n can vanish in a field of characteristic n.
	d.removeLeadingZeroes()

	return d
}

func (p *Polynomial[T]) ring() *DensePolyRing[T] {
	return &DensePolyRing[T]{Field: p.f}
}

func (p *Polynomial[T]) Add(q *Polynomial[T]) *Polynomial[T] {
	c := Zero(p.f)
	p.ring().AddPoly(p, q, c)

	return c
}

func (p *Polynomial[T]) Sub(q *Polynomial[T]) *Polynomial[T] {
	c := Zero(p.f)
	p.ring().SubPoly(p, q, c)

	return c
}

func (p *Polynomial[T]) Mul(q *Polynomial[T]) *Polynomial[T] {
	c := Zero(p.f)
	p.ring().MulPoly(p, q, c)

	return c
}

func (p *Polynomial[T]) Neg() *Polynomial[T] {
	c := Zero(p.f)
	p.ring().NegPoly(p, c)

	return c
}

// AddScalar adds s to the constant term.
func (p *Polynomial[T]) AddScalar(s T) *Polynomial[T] {
	c := Zero(p.f)
	p.ring().AddScalar(p, s, c)

	return c
}

// SubScalar subtracts s from the constant term.
func (p *Polynomial[T]) SubScalar(s T) *Polynomial[T] {
	c := Zero(p.f)
	p.ring().AddScalar(p, p.f.Neg(s), c)

	return c
}

func (p *Polynomial[T]) MulScalar(s T) *Polynomial[T] {
	c := Zero(p.f)
	p.ring().MulScalar(p, s, c)

	return c
}

// QuoScalar divides every coefficient by s.
func (p *Polynomial[T]) QuoScalar(s T) *Polynomial[T] {
	c := Zero(p.f)
	p.ring().QuoScalar(p, s, c)

	return c
}

// LongDiv returns q, r such that p = q*v + r with deg r < deg v.
func (p *Polynomial[T]) LongDiv(v *Polynomial[T]) (q, r *Polynomial[T]) {
	return p.ring().LongDiv(p, v)
}

func (p *Polynomial[T]) Quo(v *Polynomial[T]) *Polynomial[T] {
	q, _ := p.LongDiv(v)
	return q
}

func (p *Polynomial[T]) Rem(v *Polynomial[T]) *Polynomial[T] {
	_, r := p.LongDiv(v)
	return r
}
