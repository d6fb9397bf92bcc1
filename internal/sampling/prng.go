// Package sampling generates reproducible pseudo-random coefficients and nodes
// for benchmarks and tests.
package sampling

import (
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// KeyedPRNG deterministically expands a key into a stream of bytes using the
// blake2b XOF. The same key always yields the same stream.
// It is safe for concurrent use, but the stream is only reproducible when a
// single goroutine consumes it.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG. A nil key is treated as []byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}

	k := make([]byte, len(key))
	copy(k, key)

	return &KeyedPRNG{key: k, xof: xof}, nil
}

// NewSeededPRNG keys a PRNG with the little-endian bytes of seed.
func NewSeededPRNG(seed uint64) (*KeyedPRNG, error) {
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, seed)

	return NewKeyedPRNG(key)
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the PRNG to the start of its stream.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}

// Uint64 returns the next 8 bytes of the stream as a uint64.
func (prng *KeyedPRNG) Uint64() uint64 {
	b := make([]byte, 8)
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// Float64 returns a value in [min, max).
func (prng *KeyedPRNG) Float64(min, max float64) float64 {
	// 53 random bits give every representable value in [0, 1).
	f := float64(prng.Uint64()>>11) / (1 << 53)
	return min + f*(max-min)
}

// Float64s returns n values in [min, max).
func (prng *KeyedPRNG) Float64s(n int, min, max float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = prng.Float64(min, max)
	}
	return out
}

// Uint64s returns n values reduced modulo mod.
func (prng *KeyedPRNG) Uint64s(n int, mod uint64) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = prng.Uint64() % mod
	}
	return out
}

// DistinctFloat64s returns n pairwise distinct values in [min, max), in
// generation order. Intended for interpolation nodes.
func (prng *KeyedPRNG) DistinctFloat64s(n int, min, max float64) []float64 {
	seen := make(map[float64]struct{}, n)
	out := make([]float64, 0, n)
	for len(out) < n {
		v := prng.Float64(min, max)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
