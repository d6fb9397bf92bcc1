package field

import "golang.org/x/exp/constraints"

// Reals is IEEE floating point arithmetic. Division by zero is not trapped:
// it produces infinities and NaNs that flow through every later operation.
type Reals[F constraints.Float] struct{}

func (Reals[F]) Zero() F { return 0 }
func (Reals[F]) One() F  { return 1 }

func (Reals[F]) FromInt64(n int64) F { return F(n) }

func (Reals[F]) Equals(a, b F) bool { return a == b }
func (Reals[F]) IsZero(a F) bool    { return a == 0 }

func (Reals[F]) Add(a, b F) F { return a + b }
func (Reals[F]) Sub(a, b F) F { return a - b }
func (Reals[F]) Mul(a, b F) F { return a * b }
func (Reals[F]) Quo(a, b F) F { return a / b }
func (Reals[F]) Neg(a F) F    { return -a }

// Embed maps a real into the complex plane, for use with EvalIn.
func (Reals[F]) Embed(a F) complex128 { return complex(float64(a), 0) }

// Complex is complex128 arithmetic with the same silent division semantics as Reals.
type Complex struct{}

func (Complex) Zero() complex128 { return 0 }
func (Complex) One() complex128  { return 1 }

func (Complex) FromInt64(n int64) complex128 { return complex(float64(n), 0) }

func (Complex) Equals(a, b complex128) bool { return a == b }
func (Complex) IsZero(a complex128) bool    { return a == 0 }

func (Complex) Add(a, b complex128) complex128 { return a + b }
func (Complex) Sub(a, b complex128) complex128 { return a - b }
func (Complex) Mul(a, b complex128) complex128 { return a * b }
func (Complex) Quo(a, b complex128) complex128 { return a / b }
func (Complex) Neg(a complex128) complex128    { return -a }
