package field

import (
	"errors"
	"sync"
)

// NttRing multiplies and evaluates polynomials over a PrimeField with the
// number theoretic transform. Twiddle factors are cached per transform length.
type NttRing struct {
	*PrimeField

	mu           sync.RWMutex
	twiddleCache map[int]*twiddleSet
}

func NewNttRing(f *PrimeField) *NttRing {
	return &NttRing{
		PrimeField:   f,
		twiddleCache: make(map[int]*twiddleSet),
	}
}

var ErrDegreeTooLarge = errors.New("polynomial degree must be smaller than the transform length")

type twiddleSet struct {
	// For each stage s (m = 2<<s), fwd[s] (and inv[s]) has length m/2
	// holding w^j where w = psi^(n/m) for forward, and w = psiInv^(n/m) for inverse.
	fwd  [][]uint64
	inv  [][]uint64
	nInv uint64 // inverse of n (for inverse NTT scaling)
}

func (pr *NttRing) getTwiddles(n int) (*twiddleSet, error) {
	pr.mu.RLock()
	if ts, ok := pr.twiddleCache[n]; ok {
		pr.mu.RUnlock()
		return ts, nil
	}
	pr.mu.RUnlock()

	// Build outside lock
	if n <= 1 {
		ts := &twiddleSet{
			fwd:  [][]uint64{},
			inv:  [][]uint64{},
			nInv: 1,
		}

		pr.mu.Lock()
		pr.twiddleCache[n] = ts
		pr.mu.Unlock()

		return ts, nil
	}

	psi, err := pr.GetRootOfUnity(uint64(n))
	if err != nil {
		return nil, err
	}
	psiInv := pr.Inverse(psi)

	var fwd [][]uint64
	var inv [][]uint64

	// stages: m = 2,4,8,...,n  => stage index s = 0..(log2(n)-1)
	for m := 2; m <= n; m = m << 1 {
		half := m >> 1
		wmF := pr.Pow(psi, uint64(n/m))
		wmI := pr.Pow(psiInv, uint64(n/m))

		rowF := make([]uint64, half)
		rowI := make([]uint64, half)

		wF := uint64(1)
		wI := uint64(1)
		for j := 0; j < half; j++ {
			rowF[j] = wF
			rowI[j] = wI
			wF = pr.Mul(wF, wmF)
			wI = pr.Mul(wI, wmI)
		}

		fwd = append(fwd, rowF)
		inv = append(inv, rowI)
	}

	ts := &twiddleSet{
		fwd:  fwd,
		inv:  inv,
		nInv: pr.Inverse(pr.Reduce(uint64(n))),
	}

	pr.mu.Lock()
	defer pr.mu.Unlock()
	// Another goroutine may have won the race; keep the first one.
	if existing, ok := pr.twiddleCache[n]; ok {
		return existing, nil
	}

	pr.twiddleCache[n] = ts

	return ts, nil
}

// Forward replaces the coefficients in vals by the values at w^0, w^1, ..., w^(n-1),
// where w is the n-th root of unity and n = len(vals).
func (pr *NttRing) Forward(vals []uint64) error {
	return pr.transform(vals, false)
}

// Backward inverts Forward.
func (pr *NttRing) Backward(vals []uint64) error {
	return pr.transform(vals, true)
}

func (pr *NttRing) transform(vals []uint64, inverse bool) error {
	n := len(vals)
	if n == 0 {
		return nil
	}

	if !IsPowerOfTwo(uint64(n)) {
		return ErrNotPowerOfTwo
	}

	ts, err := pr.getTwiddles(n)
	if err != nil {
		return err
	}

	stages := ts.fwd
	if inverse {
		stages = ts.inv
	}

	// Bit-reversal permutation (in place; allocation-free)
	bitReverseInPlace(vals)

	for s, m := 0, 2; m <= n; s, m = s+1, m<<1 {
		half := m >> 1
		ws := stages[s]
		for k := 0; k < n; k += m {
			// breadth-first butterflies
			for j := 0; j < half; j++ {
				u := vals[k+j]
				t := pr.Mul(ws[j], vals[k+j+half])
				vals[k+j] = pr.Add(u, t)
				vals[k+j+half] = pr.Sub(u, t)
			}
		}
	}

	if inverse {
		for i := 0; i < n; i++ {
			vals[i] = pr.Mul(vals[i], ts.nInv)
		}
	}

	return nil
}

// MulPoly returns a * b computed by pointwise multiplication in the NTT domain.
func (pr *NttRing) MulPoly(a, b *Polynomial[uint64]) (*Polynomial[uint64], error) {
	if a.IsZero() || b.IsZero() {
		return Zero[uint64](pr.PrimeField), nil
	}

	n := 1
	for n < len(a.inner)+len(b.inner)-1 {
		n <<= 1
	}

	av := make([]uint64, n)
	bv := make([]uint64, n)
	copy(av, a.inner)
	copy(bv, b.inner)

	if err := pr.Forward(av); err != nil {
		return nil, err
	}

	if err := pr.Forward(bv); err != nil {
		return nil, err
	}

	for i := range av {
		av[i] = pr.Mul(av[i], bv[i])
	}

	if err := pr.Backward(av); err != nil {
		return nil, err
	}

	return NewPolynomial[uint64](pr.PrimeField, av), nil
}

// EvaluationPoints returns w^0, ..., w^(n-1) for the n-th root of unity w,
// in the order Forward produces values.
func (pr *NttRing) EvaluationPoints(n int) ([]uint64, error) {
	if n == 1 {
		return []uint64{1}, nil
	}

	w, err := pr.GetRootOfUnity(uint64(n))
	if err != nil {
		return nil, err
	}

	points := make([]uint64, n)
	x := uint64(1)
	for i := range points {
		points[i] = x
		x = pr.Mul(x, w)
	}

	return points, nil
}

// Evaluate returns p evaluated at EvaluationPoints(n).
func (pr *NttRing) Evaluate(p *Polynomial[uint64], n int) ([]uint64, error) {
	if len(p.inner) > n {
		return nil, ErrDegreeTooLarge
	}

	vals := make([]uint64, n)
	copy(vals, p.inner)

	if err := pr.Forward(vals); err != nil {
		return nil, err
	}

	return vals, nil
}

func bitReverseInPlace(xs []uint64) {
	n := len(xs)
	if n <= 1 {
		return
	}

	j := 0
	for i := 1; i < n-1; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j &= ^bit
			bit >>= 1
		}
		j |= bit
		if i < j {
			xs[i], xs[j] = xs[j], xs[i]
		}
	}
}
