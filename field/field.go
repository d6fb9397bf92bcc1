package field

import (
	"errors"
	"math/big"

	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// Field is the scalar arithmetic every polynomial and interpolator is built on.
// Implementations are stateless or immutable, so a Field may be shared freely.
type Field[T any] interface {
	Zero() T
	One() T
	FromInt64(n int64) T

	Equals(a, b T) bool
	IsZero(a T) bool

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Quo(a, b T) T
	Neg(a T) T
}

var (
	_ Field[float64]    = Reals[float64]{}
	_ Field[float32]    = Reals[float32]{}
	_ Field[complex128] = Complex{}
	_ Field[uint64]     = &PrimeField{}
)

type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64
}

var (
	ErrPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	ErrNotPrime      = errors.New("this package only support prime fields. please use a prime order")
)

const maxBitUsage = 63

/*
NewPrimeField returns the field of residues modulo prime.
The primality test is probabilistic but exact for 64-bit inputs.
*/
func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxBitUsage) {
		return nil, ErrPrimeTooLarge
	}

	b := (&big.Int{}).SetUint64(prime)
	// Probably prime is 100% accurate for 64-bit numbers. Thus, we can use one base check.
	if !b.ProbablyPrime(1) {
		return nil, ErrNotPrime
	}

	g, factors, err := ring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	return &PrimeField{
		prime:     prime,
		generator: g,
		factors:   factors,
	}, nil
}

var (
	ErrNotPowerOfTwo = errors.New("n must be a power of 2")
	ErrNotDivisible  = errors.New("n must divide p-1")
	ErrNTooSmall     = errors.New("n must be >= 2")
)

// Modulus returns the prime.
func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

func (f *PrimeField) GetRootOfUnity(n uint64) (uint64, error) {
	if n == 0 || n == 1 {
		return 0, ErrNTooSmall
	}

	if !IsPowerOfTwo(n) {
		return 0, ErrNotPowerOfTwo
	}

	if (f.prime-1)%n != 0 {
		return 0, ErrNotDivisible
	}

	// since g^(x) == 1 (mod p) iff x=p-1, then w=g^((p-1)/n) is not 1, and the following n powers of w != 1 too.
	return f.Pow(f.generator, (f.prime-1)/n), nil
}

// Elems returns a reduced copy of vals.
func (f *PrimeField) Elems(vals []uint64) []uint64 {
	out := make([]uint64, len(vals))
	for i, v := range vals {
		out[i] = v % f.prime
	}

	return out
}

func IsPowerOfTwo(n uint64) bool {
	// https://graphics.stanford.edu/~seander/bithacks.html#DetermineIfPowerOf2
	return n != 0 && (n&(n-1)) == 0
}

func (f *PrimeField) Generator() uint64 {
	return f.generator
}

func (f *PrimeField) Factors() []uint64 {
	return f.factors
}

func (f *PrimeField) Zero() uint64 { return 0 }
func (f *PrimeField) One() uint64  { return 1 }

// FromInt64 maps n to its residue, negative values included.
func (f *PrimeField) FromInt64(n int64) uint64 {
	if n >= 0 {
		return uint64(n) % f.prime
	}

	return f.Neg(uint64(-n) % f.prime)
}

func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

func (f *PrimeField) IsZero(a uint64) bool {
	return a%f.prime == 0
}

// Add, Sub and Neg accept unreduced operands and return reduced residues.
func (f *PrimeField) Add(a, b uint64) uint64 {
	a, b = a%f.prime, b%f.prime

	tmp := a + b // can't overflow since adding two integers smaller than 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

// Mul returns a * b (mod field prime).
func (f *PrimeField) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return fieldMul(a, b, f.prime)
}

func fieldMul(a, b uint64, mod uint64) uint64 {
	return uint128.From64(a).Mul64(b).Mod64(mod)
}

// Quo returns a * b^-1. Panics when b is zero.
func (f *PrimeField) Quo(a, b uint64) uint64 {
	return f.Mul(a, f.Inverse(b))
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	mod := f.prime

	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 {
			x = fieldMul(x, base, mod)
		}

		base = fieldMul(base, base, mod)
		exp /= 2
	}

	return x % mod
}

func (f *PrimeField) Inverse(e uint64) uint64 {
	// Fermat's little theorem: a^(p-1) = 1 (mod p), so a^(p-2) is the inverse of a.
	if f.IsZero(e) {
		panic("zero has no inverse")
	}

	return f.Pow(e, f.prime-2)
}

func (f *PrimeField) Neg(e uint64) uint64 {
	e %= f.prime
	if e == 0 {
		return 0
	}

	return (f.prime - e)
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	a, b = a%f.prime, b%f.prime
	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}

func (f *PrimeField) Equals(a, b uint64) bool {
	mod := f.prime
	return (a % mod) == (b % mod)
}
