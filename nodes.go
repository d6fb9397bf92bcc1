// Package interp samples functions on an interval and evaluates the
// interpolating polynomial through the samples.
package interp

import (
	"errors"
	"math"
	"sync"

	"github.com/jonathanmweiss/go-interp/field"
	"golang.org/x/exp/constraints"
)

// Sampler produces n interpolation nodes of f on [start, end].
type Sampler[F constraints.Float] interface {
	Sample(f func(F) F, start, end F, n int) ([]field.Point[F], error)
}

var (
	_ Sampler[float64] = EquidistantSampler[float64]{}
	_ Sampler[float64] = &ChebyshevSampler[float64]{}
)

var ErrTooFewNodes = errors.New("attempted to create less than two nodes on an interval")

// EquidistantSampler places nodes at start + k*(end-start)/(n-1), in ascending order.
type EquidistantSampler[F constraints.Float] struct{}

func (EquidistantSampler[F]) Sample(f func(F) F, start, end F, n int) ([]field.Point[F], error) {
	if n < 2 {
		return nil, ErrTooFewNodes
	}

	step := (end - start) / F(n-1)

	points := make([]field.Point[F], n)
	for k := range points {
		x := start + F(k)*step
		points[k] = field.Point[F]{X: x, Y: f(x)}
	}

	return points, nil
}

// Equidistant samples f at n evenly spaced nodes on [start, end].
func Equidistant[F constraints.Float](f func(F) F, start, end F, n int) ([]field.Point[F], error) {
	return EquidistantSampler[F]{}.Sample(f, start, end, n)
}

type nodeCache[F constraints.Float] struct {
	sync.Locker
	sizeToNodes map[int][]F
}

func newNodeCache[F constraints.Float]() *nodeCache[F] {
	return &nodeCache[F]{
		Locker:      &sync.Mutex{},
		sizeToNodes: make(map[int][]F),
	}
}

func (c *nodeCache[F]) loadNodes(n int) []F {
	c.Lock()
	defer c.Unlock()

	return c.sizeToNodes[n]
}

func (c *nodeCache[F]) storeNodes(n int, nodes []F) {
	c.Lock()
	defer c.Unlock()

	if _, ok := c.sizeToNodes[n]; ok {
		return
	}

	c.sizeToNodes[n] = nodes
}

// ChebyshevSampler places nodes at center + half*cos(k*pi/(n-1)), k = 0..n-1,
// so x runs from end down to start. The unit cosines are cached per n, and
// a sampler may be shared between goroutines.
type ChebyshevSampler[F constraints.Float] struct {
	cache *nodeCache[F]
}

func NewChebyshevSampler[F constraints.Float]() *ChebyshevSampler[F] {
	return &ChebyshevSampler[F]{cache: newNodeCache[F]()}
}

// UnitNodes returns cos(k*pi/(n-1)) for k = 0..n-1.
func (s *ChebyshevSampler[F]) UnitNodes(n int) ([]F, error) {
	if n < 2 {
		return nil, ErrTooFewNodes
	}

	nodes := s.cache.loadNodes(n)
	if nodes == nil {
		nodes = make([]F, n)
		for k := range nodes {
			nodes[k] = F(math.Cos(float64(k) / float64(n-1) * math.Pi))
		}

		s.cache.storeNodes(n, nodes)
	}

	out := make([]F, n)
	copy(out, nodes)

	return out, nil
}

func (s *ChebyshevSampler[F]) Sample(f func(F) F, start, end F, n int) ([]field.Point[F], error) {
	unit, err := s.UnitNodes(n)
	if err != nil {
		return nil, err
	}

	center := (start + end) * 0.5
	half := end - center

	points := make([]field.Point[F], n)
	for k, u := range unit {
		x := center + half*u
		points[k] = field.Point[F]{X: x, Y: f(x)}
	}

	return points, nil
}

var (
	chebyshev32 = NewChebyshevSampler[float32]()
	chebyshev64 = NewChebyshevSampler[float64]()
)

// sharedChebyshev returns the package-wide sampler for float32 and float64.
// Other float types get a fresh, uncached sampler.
func sharedChebyshev[F constraints.Float]() *ChebyshevSampler[F] {
	if s, ok := any(chebyshev64).(*ChebyshevSampler[F]); ok {
		return s
	}

	if s, ok := any(chebyshev32).(*ChebyshevSampler[F]); ok {
		return s
	}

	return NewChebyshevSampler[F]()
}

// Chebyshev samples f at n Chebyshev nodes on [start, end]. The unit nodes
// are cached across calls.
func Chebyshev[F constraints.Float](f func(F) F, start, end F, n int) ([]field.Point[F], error) {
	return sharedChebyshev[F]().Sample(f, start, end, n)
}

// ComputePolynomial interpolates float samples in Silent mode.
func ComputePolynomial[F constraints.Float](points []field.Point[F]) *field.Polynomial[F] {
	// Silent mode never fails.
	p, _ := field.NewInterpolator[F](field.Reals[F]{}, field.Silent).ComputePolynomial(points)
	return p
}
