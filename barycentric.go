package interp

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jonathanmweiss/go-interp/field"
)

var (
	ErrNoPoints      = errors.New("no interpolation points")
	ErrNodeCollision = errors.New("evaluation point coincides with a node")
)

type options struct {
	mode field.Mode
}

type Option func(*options)

// WithMode selects Silent (default) or Strict handling of numeric degeneracies.
func WithMode(m field.Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

/*
Barycentric evaluates the interpolant through a fixed point set with the second barycentric formula

	P(x) = \sum_i (w_i/(x-x_i)) y_i / \sum_i w_i/(x-x_i),   w_i = 1/\prod_{j\ne i}(x_i-x_j).

The weights cost O(n^2) and are computed once, on the first call; every
evaluation after that is O(n). The weight computation is guarded, so one
Barycentric can be shared between goroutines.

In Silent mode, evaluating exactly at a node divides by zero in that node's
term. Over IEEE fields the result is generally NaN, not the node's y; over a
PrimeField, which has no infinity, the division panics, as do duplicate nodes.
Strict mode reports ErrNodeCollision (and ErrNonUniqueXs) instead.
*/
type Barycentric[T any] struct {
	f      field.Field[T]
	mode   field.Mode
	points []field.Point[T]

	mu         sync.Mutex
	ready      bool
	weights    []T
	weightsErr error
}

// NewBarycentric captures a copy of points.
func NewBarycentric[T any](f field.Field[T], points []field.Point[T], opts ...Option) *Barycentric[T] {
	o := options{mode: field.Silent}
	for _, opt := range opts {
		opt(&o)
	}

	cpy := make([]field.Point[T], len(points))
	copy(cpy, points)

	return &Barycentric[T]{
		f:      f,
		mode:   o.mode,
		points: cpy,
	}
}

func (b *Barycentric[T]) Mode() field.Mode {
	return b.mode
}

func (b *Barycentric[T]) Points() []field.Point[T] {
	cpy := make([]field.Point[T], len(b.points))
	copy(cpy, b.points)

	return cpy
}

// Copy returns an independent evaluator over the same points, carrying over
// the weights if they are already computed.
func (b *Barycentric[T]) Copy() *Barycentric[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	return &Barycentric[T]{
		f:          b.f,
		mode:       b.mode,
		points:     b.points,
		ready:      b.ready,
		weights:    b.weights,
		weightsErr: b.weightsErr,
	}
}

// Weights returns a copy of the barycentric weights, computing them if needed.
func (b *Barycentric[T]) Weights() ([]T, error) {
	w, err := b.loadWeights()
	if err != nil {
		return nil, err
	}

	cpy := make([]T, len(w))
	copy(cpy, w)

	return cpy, nil
}

// loadWeights returns the cached weights. The returned slice is never written again.
func (b *Barycentric[T]) loadWeights() ([]T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready {
		b.weights, b.weightsErr = b.computeWeights()
		b.ready = true
	}

	return b.weights, b.weightsErr
}

func (b *Barycentric[T]) computeWeights() ([]T, error) {
	f := b.f
	weights := make([]T, len(b.points))

	for i, pi := range b.points {
		w := f.One()
		for j, pj := range b.points {
			if i == j {
				continue
			}

			diff := f.Sub(pi.X, pj.X)
			if b.mode == field.Strict && f.IsZero(diff) {
				return nil, fmt.Errorf("nodes %d and %d: %w", i, j, field.ErrNonUniqueXs)
			}

			w = f.Quo(w, diff)
		}

		weights[i] = w
	}

	return weights, nil
}

// Evaluate returns the interpolant at x. In Silent mode the error is always nil.
func (b *Barycentric[T]) Evaluate(x T) (T, error) {
	f := b.f

	if b.mode == field.Strict {
		if len(b.points) == 0 {
			return f.Zero(), ErrNoPoints
		}

		for i, p := range b.points {
			if f.Equals(x, p.X) {
				return f.Zero(), fmt.Errorf("node %d: %w", i, ErrNodeCollision)
			}
		}
	}

	weights, err := b.loadWeights()
	if err != nil {
		return f.Zero(), err
	}

	numerator := f.Zero()
	denominator := f.Zero()
	for i, p := range b.points {
		holder := f.Quo(weights[i], f.Sub(x, p.X))
		numerator = f.Add(numerator, f.Mul(holder, p.Y))
		denominator = f.Add(denominator, holder)
	}

	return f.Quo(numerator, denominator), nil
}
