package field

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jonathanmweiss/go-interp/internal/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(1e-9, 1e-9)

func TestPolyString(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(157)
	a.NoError(err)

	a.Equal("3*x^3 + 2*x + 1", NewPolynomial(f, []uint64{1, 2, 0, 3}).String())
	a.Equal("0", Zero[uint64](f).String())
	a.Equal("1*x^2 + 1", NewPolynomial[float64](Reals[float64]{}, []float64{1, 0, 1}).String())
}

func TestPolyNormalization(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(157)
	a.NoError(err)

	t.Run("trailingZeros", func(t *testing.T) {
		p := NewPolynomial(f, []uint64{1, 2, 0, 0})
		a.Equal(1, p.Degree())
		a.Equal([]uint64{1, 2}, p.ToSlice())
		a.Equal(uint64(2), p.LeadCoeff())
		a.Equal(uint64(0), p.Coeff(7))
	})

	t.Run("allZeros", func(t *testing.T) {
		p := NewPolynomial(f, []uint64{0, 0, 0})
		a.True(p.IsZero())
		a.Equal(0, p.Degree())
		a.Empty(p.ToSlice())
		a.True(p.Equals(Zero[uint64](f)))
	})

	t.Run("inputNotAliased", func(t *testing.T) {
		coeffs := []float64{1, 2, 3}
		p := NewPolynomial[float64](Reals[float64]{}, coeffs)
		coeffs[0] = 42

		a.Equal([]float64{1, 2, 3}, p.ToSlice())
	})

	t.Run("monomial", func(t *testing.T) {
		p := Monomial(f, uint64(5), 3)
		a.Equal([]uint64{0, 0, 0, 5}, p.ToSlice())
		a.True(Monomial(f, uint64(0), 3).IsZero())
	})
}

func TestPolyUnreducedCoefficients(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(157)
	a.NoError(err)

	p := NewPolynomial(f, []uint64{160})
	q := NewPolynomial(f, []uint64{3})

	a.Equal([]uint64{3}, p.ToSlice())
	a.True(p.Equals(q))
	a.True(p.Neg().Equals(q.Neg()))
	a.Equal([]uint64{154}, p.Neg().ToSlice())

	maxed := NewPolynomial(f, []uint64{math.MaxUint64})
	a.Equal([]uint64{13}, maxed.ToSlice())
	a.Equal([]uint64{14}, maxed.Add(NewPolynomial(f, []uint64{1})).ToSlice())
	a.Equal([]uint64{8}, maxed.SubScalar(5).ToSlice())
	a.Equal([]uint64{3}, Zero[uint64](f).AddScalar(160).ToSlice())

	a.True(NewPolynomial(f, []uint64{1, 157, 314}).Equals(Constant(f, uint64(1))))
	a.Equal([]uint64{0, 0, 1}, Monomial(f, uint64(158), 2).ToSlice())
}

func TestPolyAdd(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(157)
	a.NoError(err)

	t.Run("sameSize", func(t *testing.T) {
		slice := []uint64{1, 2, 0, 3}

		p1 := NewPolynomial(f, slice)
		p2 := NewPolynomial(f, slice)

		sum := p1.Add(p2)

		a.Equal([]uint64{2, 4, 0, 6}, sum.ToSlice())
	})

	t.Run("differentSizes", func(t *testing.T) {
		slice := []uint64{1, 2, 0, 3}
		slice2 := []uint64{1, 2, 0}

		p1 := NewPolynomial(f, slice)
		p2 := NewPolynomial(f, slice2)

		sum := p1.Add(p2)
		sum2 := p2.Add(p1)
		a.Equal([]uint64{2, 4, 0, 3}, sum.ToSlice())
		a.Equal([]uint64{2, 4, 0, 3}, sum2.ToSlice())
	})

	t.Run("WrapAroundElems", func(t *testing.T) {
		q := f.Modulus() - 1

		slice := []uint64{q, q, q, q}

		p1 := NewPolynomial(f, slice)
		p2 := NewPolynomial(f, []uint64{1, 1, 1, 1})

		sum := p1.Add(p2)
		a.True(sum.IsZero())
		a.Empty(sum.ToSlice())
	})

	t.Run("cancellingLeadingTerms", func(t *testing.T) {
		p1 := NewPolynomial(f, []uint64{1, 2, 3})
		p2 := NewPolynomial(f, []uint64{1, 0, 154})

		a.Equal([]uint64{2, 2}, p1.Add(p2).ToSlice())
	})
}

func TestPolySub(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(157)
	a.NoError(err)

	t.Run("sameSize", func(t *testing.T) {
		slice := []uint64{1, 2, 0, 3}

		p1 := NewPolynomial(f, slice)
		p2 := NewPolynomial(f, slice)

		diff := p1.Sub(p2)

		a.True(diff.IsZero())
		a.Empty(diff.ToSlice())
	})

	t.Run("differentSizes", func(t *testing.T) {
		slice := []uint64{1, 2, 0, 3}
		slice2 := []uint64{1, 2, 0}

		p1 := NewPolynomial(f, slice)
		p2 := NewPolynomial(f, slice2)

		diff := p1.Sub(p2)
		a.Equal([]uint64{0, 0, 0, 3}, diff.ToSlice())

		diff2 := p2.Sub(p1)
		a.Equal([]uint64{0, 0, 0, 154}, diff2.ToSlice())
		a.True(diff2.Equals(diff.Neg()))
	})
}

func TestPolyMul(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(5)
	a.NoError(err)

	t.Run("sameSize", func(t *testing.T) {
		slice := []uint64{1, 2, 3}

		p1 := NewPolynomial(f, slice)
		p2 := NewPolynomial(f, slice)

		prod := p1.Mul(p2)

		a.Equal([]uint64{1, 4, 0, 2, 4}, prod.ToSlice())
	})

	t.Run("differentSizes", func(t *testing.T) {
		slice := []uint64{1, 2, 0, 3}
		slice2 := []uint64{1, 2, 0}

		p1 := NewPolynomial(f, slice)
		p2 := NewPolynomial(f, slice2)

		prod := p1.Mul(p2)
		prod2 := p2.Mul(p1)
		a.Equal([]uint64{1, 4, 4, 3, 1}, prod.ToSlice())
		a.True(prod.Equals(prod2))
	})

	t.Run("byZero", func(t *testing.T) {
		p := NewPolynomial(f, []uint64{1, 2, 3})

		a.True(p.Mul(Zero[uint64](f)).IsZero())
		a.True(Zero[uint64](f).Mul(p).IsZero())
	})

	t.Run("operandsUntouched", func(t *testing.T) {
		p1 := NewPolynomial(f, []uint64{1, 2, 3})
		p2 := NewPolynomial(f, []uint64{4, 1})

		p1.Mul(p2)
		a.Equal([]uint64{1, 2, 3}, p1.ToSlice())
		a.Equal([]uint64{4, 1}, p2.ToSlice())
	})
}

func TestPolyScalarOps(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(5)
	a.NoError(err)

	p := NewPolynomial(f, []uint64{1, 2, 3})

	a.Equal([]uint64{0, 2, 3}, p.AddScalar(4).ToSlice())
	a.Equal([]uint64{0, 2, 3}, p.SubScalar(1).ToSlice())
	a.Equal([]uint64{2, 4, 1}, p.MulScalar(2).ToSlice())
	a.Equal([]uint64{3, 1, 4}, p.QuoScalar(2).ToSlice())
	a.True(p.MulScalar(0).IsZero())

	a.Equal([]uint64{3}, Zero[uint64](f).AddScalar(3).ToSlice())
	a.True(Constant(f, uint64(2)).AddScalar(3).IsZero())
}

func TestPolyLongDiv(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(5)
	a.NoError(err)

	t.Run("simple", func(t *testing.T) {
		p1 := NewPolynomial(f, []uint64{1, 2, 3})
		p2 := NewPolynomial(f, []uint64{1, 2, 3})

		quotient, remainder := p1.LongDiv(p2)
		a.Equal([]uint64{1}, quotient.ToSlice())
		a.True(remainder.IsZero())

		quotient, remainder = p2.LongDiv(p1)
		a.Equal([]uint64{1}, quotient.ToSlice())
		a.True(remainder.IsZero())
	})

	t.Run("differentSizes", func(t *testing.T) {
		p1 := NewPolynomial(f, []uint64{1, 2, 3})
		p2 := NewPolynomial(f, []uint64{1, 2})

		quotient, remainder := p1.LongDiv(p2)

		a.Equal([]uint64{4, 4}, quotient.ToSlice())
		a.Equal([]uint64{2}, remainder.ToSlice())

		q, r := p2.LongDiv(p1)
		a.True(p2.Equals(r))
		a.True(q.IsZero())

		p1 = NewPolynomial(f, []uint64{1, 2, 0, 0, 3})
		p2 = NewPolynomial(f, []uint64{1, 2})

		quotient, remainder = p1.LongDiv(p2)
		a.Equal([]uint64{3, 1, 3, 4}, quotient.ToSlice())
		a.Equal([]uint64{3}, remainder.ToSlice())
	})

	t.Run("complex", func(t *testing.T) {
		p1 := NewPolynomial(f, []uint64{1, 0, 0, 0, 2, 3})
		p2 := NewPolynomial(f, []uint64{1, 0, 1, 0, 2})

		quotient, remainder := p1.LongDiv(p2)

		a.Equal([]uint64{1, 4}, quotient.ToSlice())
		a.Equal([]uint64{0, 1, 4, 1}, remainder.ToSlice())

		a.True(quotient.Equals(p1.Quo(p2)))
		a.True(remainder.Equals(p1.Rem(p2)))
	})

	t.Run("zeroDividend", func(t *testing.T) {
		q, r := Zero[uint64](f).LongDiv(NewPolynomial(f, []uint64{1, 1}))
		a.True(q.IsZero())
		a.True(r.IsZero())
	})

	t.Run("reals", func(t *testing.T) {
		reals := Reals[float64]{}

		// x^2 - 1 = (x + 1)(x - 1)
		p := NewPolynomial[float64](reals, []float64{-1, 0, 1})
		d := NewPolynomial[float64](reals, []float64{-1, 1})

		q, r := p.LongDiv(d)
		a.Equal([]float64{1, 1}, q.ToSlice())
		a.True(r.IsZero())
	})
}

func TestPolyRingLaws(t *testing.T) {
	prng, err := sampling.NewSeededPRNG(7)
	require.NoError(t, err)

	t.Run("prime", func(t *testing.T) {
		a := assert.New(t)

		f, err := NewPrimeField(largePrime)
		a.NoError(err)

		for i := 0; i < 20; i++ {
			p := randomPolynomialOf(f, prng, 9)
			q := randomPolynomialOf(f, prng, 4)
			s := randomPolynomialOf(f, prng, 6)

			a.True(p.Add(q).Equals(q.Add(p)))
			a.True(p.Add(q).Add(s).Equals(p.Add(q.Add(s))))
			a.True(p.Mul(q).Equals(q.Mul(p)))
			a.True(p.Add(q).Sub(q).Equals(p))
			a.True(p.Mul(q.Add(s)).Equals(p.Mul(q).Add(p.Mul(s))))
			a.True(p.Mul(q).Mul(s).Equals(p.Mul(q.Mul(s))))

			quo, rem := p.LongDiv(q)
			a.True(quo.Mul(q).Add(rem).Equals(p))
			a.True(rem.IsZero() || rem.Degree() < q.Degree())

			for _, x := range prng.Uint64s(3, largePrime) {
				a.Equal(f.Mul(p.Eval(x), q.Eval(x)), p.Mul(q).Eval(x))
				a.Equal(f.Add(p.Eval(x), q.Eval(x)), p.Add(q).Eval(x))
				a.Equal(p.Add(q).Add(s).Eval(x), p.Add(q.Add(s)).Eval(x))
			}
		}
	})

	t.Run("reals", func(t *testing.T) {
		a := assert.New(t)
		reals := Reals[float64]{}

		for i := 0; i < 20; i++ {
			p := NewPolynomial[float64](reals, prng.Float64s(6, -1, 1))
			q := NewPolynomial[float64](reals, prng.Float64s(4, -1, 1))
			s := NewPolynomial[float64](reals, prng.Float64s(3, -1, 1))

			a.Empty(cmp.Diff(p.ToSlice(), p.Add(q).Sub(q).ToSlice(), approx))
			a.Empty(cmp.Diff(p.Add(q).Add(s).ToSlice(), p.Add(q.Add(s)).ToSlice(), approx))
			a.Empty(cmp.Diff(p.Mul(q.Add(s)).ToSlice(), p.Mul(q).Add(p.Mul(s)).ToSlice(), approx))

			quo, rem := p.LongDiv(q)
			a.Empty(cmp.Diff(p.ToSlice(), quo.Mul(q).Add(rem).ToSlice(), cmpopts.EquateApprox(1e-6, 1e-6)))
			a.Less(rem.Degree(), q.Degree())

			for _, x := range prng.Float64s(3, -2, 2) {
				a.InDelta(p.Eval(x)*q.Eval(x), p.Mul(q).Eval(x), 1e-9)
				a.InDelta(p.Add(q).Add(s).Eval(x), p.Add(q.Add(s)).Eval(x), 1e-9)
			}
		}
	})
}

func TestPolyEvaluation(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(5)
	a.NoError(err)

	t.Run("simple", func(t *testing.T) {
		slice := []uint64{1, 2, 3}

		p := NewPolynomial(f, slice)

		// pairs of {x,p(x)}
		test := [][2]uint64{{0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 2}}
		for _, tt := range test {
			a.Equal(tt[1], p.Eval(tt[0]))
		}
	})

	t.Run("zero", func(t *testing.T) {
		slice := []uint64{0, 0, 0}

		p := NewPolynomial(f, slice)

		// pairs of {x,p(x)}
		test := [][2]uint64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
		for _, tt := range test {
			a.Equal(tt[1], p.Eval(tt[0]))
		}
	})

	t.Run("realAtComplex", func(t *testing.T) {
		reals := Reals[float64]{}
		p := NewPolynomial[float64](reals, []float64{1, 0, 1})

		a.InDelta(0, cmplx.Abs(EvalIn[float64, complex128](p, Complex{}, reals.Embed, 1i)), 1e-12)
		a.InDelta(0, cmplx.Abs(EvalIn[float64, complex128](p, Complex{}, reals.Embed, 2)-5), 1e-12)
		a.Equal(complex(1, 0), EvalIn[float64, complex128](p, Complex{}, reals.Embed, 0))
	})
}

func TestPolyDerivative(t *testing.T) {
	a := assert.New(t)
	reals := Reals[float64]{}

	a.True(Zero[float64](reals).Derivative().IsZero())
	a.True(Monomial[float64](reals, 1, 0).Derivative().IsZero())

	for n := 1; n <= 5; n++ {
		want := Monomial[float64](reals, float64(n), n-1)
		a.True(want.Equals(Monomial[float64](reals, 1, n).Derivative()), "d/dx x^%d", n)
	}

	// 3 + 2x + x^3 -> 2 + 3x^2
	p := NewPolynomial[float64](reals, []float64{3, 2, 0, 1})
	a.Equal([]float64{2, 0, 3}, p.Derivative().ToSlice())

	t.Run("characteristic", func(t *testing.T) {
		f, err := NewPrimeField(5)
		a.NoError(err)

		// d/dx x^5 = 5x^4 = 0 over GF(5)
		a.True(Monomial(f, uint64(1), 5).Derivative().IsZero())
	})
}

func TestGCD(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(157)
	a.NoError(err)

	r := NewDensePolyRing[uint64](f)

	p := FromRoots(f, []uint64{1, 2, 3})
	q := FromRoots(f, []uint64{1, 4})

	g := r.GCD(p, q)
	a.Equal(1, g.Degree())
	a.Equal(uint64(0), g.Eval(1))

	g, x, y := r.ExtendedGCD(Zero[uint64](f), q, 0)
	a.True(g.Equals(q))
	a.True(x.IsZero())
	a.True(y.Equals(Constant(f, uint64(1))))
}

// Testing the correctness of the partial Extended Euclidean Algorithm
func FuzzPEEA(f *testing.F) {
	testcases := []uint64{1, 5, 1 << 62, (1 << 63) - 1}
	for _, tc := range testcases {
		f.Add(tc) // Use f.Add to provide a seed corpus
	}

	fld, err := NewPrimeField(largePrime)
	if err != nil {
		f.FailNow()
	}

	r := NewDensePolyRing[uint64](fld)

	f.Fuzz(func(t *testing.T, randomSeed uint64) {
		// Create random polynomials.
		maxDegree := 10
		randomPolynomialDegree := randomSeed % (uint64(maxDegree) - 1)

		a := randomPolynomial(fld, randomSeed, maxDegree)
		b := randomPolynomial(fld, randomSeed, int(randomPolynomialDegree))

		for i := 1; i < maxDegree-1; i++ {
			partialDegree := i

			gcd, x, y := r.ExtendedGCD(a, b, partialDegree)

			ax := a.Mul(x)
			by := b.Mul(y)
			axPlusBy := ax.Add(by)

			if !axPlusBy.Equals(gcd) {
				t.Fatalf("expected %v, got %v", axPlusBy, gcd)
			}
		}
	})
}

func randomPolynomial(f *PrimeField, seed uint64, maxDegree int) *Polynomial[uint64] {
	coefficients := make([]uint64, maxDegree)
	for i := 0; i < maxDegree; i++ {
		coefficients[i] = f.Reduce(seed + uint64(i))
	}

	return NewPolynomial(f, coefficients)
}

// randomPolynomialOf returns a polynomial of exactly the given degree.
func randomPolynomialOf(f *PrimeField, prng *sampling.KeyedPRNG, degree int) *Polynomial[uint64] {
	coeffs := prng.Uint64s(degree+1, f.Modulus())
	if coeffs[degree] == 0 {
		coeffs[degree] = 1
	}

	return NewPolynomial(f, coeffs)
}

func BenchmarkPolyDiv(b *testing.B) {
	f, err := NewPrimeField(largePrime)
	if err != nil {
		b.FailNow()
	}

	p1 := randomPolynomial(f, largePrime/4, 8192)
	p2 := randomPolynomial(f, largePrime/4, 8192/2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p1.LongDiv(p2)
	}
}

func BenchmarkPEEA(b *testing.B) {
	f, err := NewPrimeField(largePrime)
	if err != nil {
		b.FailNow()
	}

	r := NewDensePolyRing[uint64](f)

	polyMaxDegree := 1025
	p1 := randomPolynomial(f, largePrime/4, polyMaxDegree)
	p2 := randomPolynomial(f, largePrime/7, polyMaxDegree-1)

	for i := 0; i <= 9; i++ {
		b.Run(fmt.Sprintf("partialGCD:remainderDeg<2^%d", i), func(b *testing.B) {
			partialDegree := 1 << i
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r.ExtendedGCD(p1, p2, partialDegree)
			}
		})
	}
}

func makeRoots(n int) []uint64 {
	roots := make([]uint64, n)
	for i := 0; i < n; i++ {
		roots[i] = uint64(i*7 + 3)
	}
	return roots
}

func TestLocatorPolynomial(t *testing.T) {
	roots := makeRoots(15)

	f, err := NewPrimeField(largePrime)
	if err != nil {
		t.Fatal(err)
	}

	p := FromRoots(f, roots)

	linear := make([]*Polynomial[uint64], len(roots))
	for i, r := range roots {
		linear[i] = NewPolynomial(f, []uint64{f.Neg(r), 1})
	}

	q := PolyProduct[uint64](f, linear)

	if !p.Equals(q) {
		t.FailNow()
	}

	for _, r := range roots {
		if p.Eval(r) != 0 {
			t.Fatalf("expected root at %d", r)
		}
	}
}

var benchPolySink *Polynomial[uint64] // avoid DCE

func BenchmarkFromRoots(b *testing.B) {
	f, err := NewPrimeField(largePrime)
	if err != nil {
		b.Fatal(err)
	}

	for _, n := range []int{15, 32, 64, 128, 256} {
		roots := makeRoots(n) // prepare inputs outside timed loop

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			var p *Polynomial[uint64]
			for i := 0; i < b.N; i++ {
				p = FromRoots(f, roots)
			}
			b.StopTimer()
			benchPolySink = p
		})
	}
}
