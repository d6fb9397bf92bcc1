package field

// DensePolyRing is the arithmetic engine behind Polynomial. Its operations write
// into an output polynomial c, which may alias an operand, and leave c normalized.
type DensePolyRing[T any] struct {
	Field[T]
}

// NewDensePolyRing constructs a ring over the provided coefficient field.
func NewDensePolyRing[T any](f Field[T]) *DensePolyRing[T] { return &DensePolyRing[T]{Field: f} }

func (r *DensePolyRing[T]) GetField() Field[T] { return r.Field }

// ---------- utilities ----------

func (r *DensePolyRing[T]) zeros(n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = r.Zero()
	}

	return out
}

func (r *DensePolyRing[T]) trimTrailingZeros(p *Polynomial[T]) {
	i := len(p.inner) - 1
	for i >= 0 && r.IsZero(p.inner[i]) {
		i--
	}
	p.inner = p.inner[:i+1]
}

// ---------- Poly ops ----------

func (r *DensePolyRing[T]) Evaluate(a *Polynomial[T], x T) T {
	return EvalIn(a, r.Field, func(c T) T { return c }, x)
}

func (r *DensePolyRing[T]) AddPoly(a, b, c *Polynomial[T]) {
	r.combine(a, b, c, r.Add)
}

func (r *DensePolyRing[T]) SubPoly(a, b, c *Polynomial[T]) {
	r.combine(a, b, c, r.Sub)
}

// combine applies op coefficientwise, padding the shorter operand with zeros.
func (r *DensePolyRing[T]) combine(a, b, c *Polynomial[T], op func(x, y T) T) {
	alen := len(a.inner)
	blen := len(b.inner)
	n := max(alen, blen)
	out := make([]T, n)

	for i := 0; i < n; i++ {
		out[i] = op(a.Coeff(i), b.Coeff(i))
	}

	c.f = r.Field
	c.inner = out
	r.trimTrailingZeros(c)
}

func (r *DensePolyRing[T]) NegPoly(a, c *Polynomial[T]) {
	out := make([]T, len(a.inner))
	for i, x := range a.inner {
		out[i] = r.Neg(x)
	}

	c.f = r.Field
	c.inner = out
}

// AddScalar computes c = a + s. Only the constant term changes.
func (r *DensePolyRing[T]) AddScalar(a *Polynomial[T], s T, c *Polynomial[T]) {
	out := r.zeros(max(len(a.inner), 1))
	copy(out, a.inner)
	out[0] = r.Add(out[0], s)

	c.f = r.Field
	c.inner = out
	r.trimTrailingZeros(c)
}

// MulScalar computes c = a * s. Multiplying by zero clears c.
func (r *DensePolyRing[T]) MulScalar(a *Polynomial[T], s T, c *Polynomial[T]) {
	c.f = r.Field
	if r.IsZero(s) {
		c.inner = nil

		return
	}

	out := make([]T, len(a.inner))
	for i := range a.inner {
		out[i] = r.Mul(a.inner[i], s)
	}

	c.inner = out
	r.trimTrailingZeros(c)
}

// QuoScalar computes c = a / s coefficientwise.
func (r *DensePolyRing[T]) QuoScalar(a *Polynomial[T], s T, c *Polynomial[T]) {
	out := make([]T, len(a.inner))
	for i := range a.inner {
		out[i] = r.Quo(a.inner[i], s)
	}

	c.f = r.Field
	c.inner = out
	r.trimTrailingZeros(c)
}

// MulPoly computes c = a * b by schoolbook convolution.
func (r *DensePolyRing[T]) MulPoly(a, b, c *Polynomial[T]) {
	if a.IsZero() || b.IsZero() {
		c.f = r.Field
		c.inner = nil

		return
	}

	deg, degB := len(a.inner)-1, len(b.inner)-1

	// out starts as a copy of a; coefficients of a are consumed from the
	// highest degree down, and every slot above the one being consumed already
	// holds its final partial sum. Safe even if c==a or c==b.
	out := r.zeros(deg + degB + 1)
	copy(out, a.inner)

	for i := 0; i <= deg; i++ {
		base := out[deg-i]
		out[deg-i] = r.Zero()

		if r.IsZero(base) {
			continue
		}

		for j := 0; j <= degB; j++ {
			k := deg - i + degB - j
			out[k] = r.Add(out[k], r.Mul(base, b.inner[degB-j]))
		}
	}

	c.f = r.Field
	c.inner = out
	r.trimTrailingZeros(c)
}

// Following Algorithm 2.5 (Polynomial division with remainder) in
// `Modern Computer Algebra` by Joachim von zur Gathen and Jürgen Gerhard
//
// returns q, rem such that a = q*b + rem.
// b must be normalized and non-zero; dividing by zero follows the field's Quo.
func (r *DensePolyRing[T]) LongDiv(a, b *Polynomial[T]) (q *Polynomial[T], rem *Polynomial[T]) {
	if a.IsZero() || a.Degree() < b.Degree() {
		return Zero(r.Field), a.Copy()
	}

	n, m := a.Degree(), b.Degree()
	lead := b.LeadCoeff()

	remInner := make([]T, n+1)
	copy(remInner, a.inner)
	qInner := r.zeros(n - m + 1)

	for i := n - m; i >= 0; i-- {
		top := m + i
		if r.IsZero(remInner[top]) {
			continue
		}

		coef := r.Quo(remInner[top], lead)
		qInner[i] = coef

		for j := 0; j < m; j++ {
			remInner[i+j] = r.Sub(remInner[i+j], r.Mul(coef, b.Coeff(j)))
		}
		// eliminated exactly, whatever rounding the field does.
		remInner[top] = r.Zero()
	}

	q = &Polynomial[T]{f: r.Field, inner: qInner}
	rem = &Polynomial[T]{f: r.Field, inner: remInner}
	r.trimTrailingZeros(q)
	r.trimTrailingZeros(rem)

	return q, rem
}

// returns gcd, x, y such that a*x + b*y = gcd,
// stopping as soon as gcd.Degree() < stopDegree or the remainder sequence ends.
func (r *DensePolyRing[T]) ExtendedGCD(a, b *Polynomial[T], stopDegree int) (gcd, x, y *Polynomial[T]) {
	// Work on local copies ensuring inputs aren't mutated.
	A := a.Copy()
	B := b.Copy()

	// Invariants:
	//   A = x0*a_orig + y0*b_orig
	//   B = x1*a_orig + y1*b_orig
	x0 := Constant(r.Field, r.One())
	x1 := Zero(r.Field)
	y0 := Zero(r.Field)
	y1 := Constant(r.Field, r.One())

	if A.IsZero() {
		return B, x1, y1
	}

	tmp1 := Zero(r.Field)
	tmp2 := Zero(r.Field)

	for !A.IsZero() && A.Degree() >= stopDegree {
		// If B == 0, can't divide further.
		if B.IsZero() {
			break
		}

		// A = q*B + rrem
		q, rrem := r.LongDiv(A, B)
		A, B = B, rrem

		// following Bézout's identity:
		// x update: (x0, x1) = (x1, x0 - q*x1)
		r.MulPoly(q, x1, tmp1)
		r.SubPoly(x0, tmp1, tmp2)
		x0, x1, tmp2 = x1, tmp2, x0

		// y update: (y0, y1) = (y1, y0 - q*y1)
		r.MulPoly(q, y1, tmp1)
		r.SubPoly(y0, tmp1, tmp2)
		y0, y1, tmp2 = y1, tmp2, y0
	}

	return A, x0, y0
}

// GCD returns a greatest common divisor of a and b (not made monic).
// Only meaningful over exact fields.
func (r *DensePolyRing[T]) GCD(a, b *Polynomial[T]) *Polynomial[T] {
	g, _, _ := r.ExtendedGCD(a, b, 0)
	return g
}

// FromRoots computes \prod (x - r_i).
func FromRoots[T any](f Field[T], roots []T) *Polynomial[T] {
	n := len(roots)

	coeffs := make([]T, n+1)
	for i := range coeffs {
		coeffs[i] = f.Zero()
	}
	coeffs[0] = f.One()

	deg := 0
	for _, root := range roots {
		neg := f.Neg(root)
		for j := deg; j >= 0; j-- {
			// new[j+1] += old[j] * 1
			coeffs[j+1] = f.Add(coeffs[j+1], coeffs[j])
			// new[j]   = old[j] * (-r)
			coeffs[j] = f.Mul(coeffs[j], neg)
		}
		deg++
	}

	return NewPolynomial(f, coeffs)
}

// PolyProduct multiplies a slice of polynomials.
func PolyProduct[T any](f Field[T], polys []*Polynomial[T]) *Polynomial[T] {
	m := Constant(f, f.One())
	for _, mi := range polys {
		m = m.Mul(mi)
	}

	return m
}
