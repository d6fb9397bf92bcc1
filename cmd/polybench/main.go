// Command polybench times the polynomial and interpolation routines on
// reproducible random inputs.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	interp "github.com/jonathanmweiss/go-interp"
	"github.com/jonathanmweiss/go-interp/bench"
	"github.com/jonathanmweiss/go-interp/field"
	"github.com/jonathanmweiss/go-interp/internal/sampling"
)

type params struct {
	degree   int
	nodes    int
	attempts int
	warmup   int
	seed     uint64
	prime    uint64
}

func main() {
	var p params

	flag.IntVar(&p.degree, "degree", 255, "degree of the random polynomials")
	flag.IntVar(&p.nodes, "nodes", 32, "number of interpolation nodes")
	flag.IntVar(&p.attempts, "attempts", 100, "timed attempts per benchmark")
	flag.IntVar(&p.warmup, "warmup", 10, "untimed warm-up calls per benchmark")
	flag.Uint64Var(&p.seed, "seed", 1, "seed of the input generator")
	flag.Uint64Var(&p.prime, "prime", 65537, "prime modulus for the exact field benchmarks")
	flag.Parse()

	if err := run(p); err != nil {
		fmt.Fprintln(os.Stderr, "polybench:", err)
		os.Exit(1)
	}
}

func run(p params) error {
	prng, err := sampling.NewSeededPRNG(p.seed)
	if err != nil {
		return err
	}

	fp, err := field.NewPrimeField(p.prime)
	if err != nil {
		return fmt.Errorf("prime field: %w", err)
	}

	reals := field.Reals[float64]{}
	a := field.NewPolynomial[float64](reals, prng.Float64s(p.degree+1, -1, 1))
	b := field.NewPolynomial[float64](reals, prng.Float64s(p.degree/2+1, -1, 1))

	pa := field.NewPolynomial[uint64](fp, prng.Uint64s(p.degree+1, p.prime))
	pb := field.NewPolynomial[uint64](fp, prng.Uint64s(p.degree+1, p.prime))
	ntt := field.NewNttRing(fp)

	points, err := interp.Chebyshev(math.Sin, -1, 1, p.nodes)
	if err != nil {
		return err
	}

	lagrange := field.NewInterpolator[float64](reals, field.Silent)
	bary := interp.NewBarycentric[float64](reals, points)
	queries := prng.Float64s(64, -0.99, 0.99)

	var nttErr error
	cases := []struct {
		title string
		fn    func()
	}{
		{"mul/schoolbook/float64", func() { a.Mul(b) }},
		{"mul/schoolbook/prime", func() { pa.Mul(pb) }},
		{"mul/ntt/prime", func() {
			if _, err := ntt.MulPoly(pa, pb); err != nil {
				nttErr = err
			}
		}},
		{"longdiv/float64", func() { a.LongDiv(b) }},
		{"derivative/float64", func() { a.Derivative() }},
		{"lagrange/compute", func() { _, _ = lagrange.ComputePolynomial(points) }},
		{"lagrange/master", func() {
			xs, ys := split(points)
			_, _ = lagrange.Interpolate(xs, ys)
		}},
		{"barycentric/evaluate", func() {
			for _, x := range queries {
				_, _ = bary.Evaluate(x)
			}
		}},
	}

	for _, c := range cases {
		rep, err := bench.Execute(c.fn, p.attempts, c.title, bench.WithWarmup(p.warmup))
		if err != nil {
			return err
		}

		if nttErr != nil {
			return fmt.Errorf("%s: %w", c.title, nttErr)
		}

		fmt.Println(rep)
		fmt.Println()
	}

	return nil
}

func split(points []field.Point[float64]) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, pt := range points {
		xs[i], ys[i] = pt.X, pt.Y
	}

	return xs, ys
}
