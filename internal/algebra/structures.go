package algebra

// BinaryOp is a pure function combining two values of the carrier set.
// A BinaryOp is itself a Semigroup; the caller guarantees associativity.
type BinaryOp[T any] func(a, b T) T

// Combine applies op.
func (op BinaryOp[T]) Combine(a, b T) T {
	return op(a, b)
}

// Semigroup is a carrier with an associative binary operation.
type Semigroup[T any] interface {
	// Combine must satisfy Combine(Combine(x, y), z) == Combine(x, Combine(y, z))
	// for every value reachable by the caller.
	Combine(a, b T) T
}

// Monoid is a Semigroup with an identity element.
type Monoid[T any] interface {
	Semigroup[T]
	// Identity returns e with Combine(e, x) == Combine(x, e) == x.
	Identity() T
}

// Group is a Monoid in which every element has an inverse.
type Group[T any] interface {
	Monoid[T]
	// Inverse returns y with Combine(x, y) == Combine(y, x) == Identity().
	Inverse(a T) T
}

type monoid[T any] struct {
	op       BinaryOp[T]
	identity T
}

func (m monoid[T]) Combine(a, b T) T { return m.op(a, b) }
func (m monoid[T]) Identity() T      { return m.identity }

type group[T any] struct {
	monoid[T]
	inverse func(T) T
}

func (g group[T]) Inverse(a T) T { return g.inverse(a) }

// NewMonoid bundles an associative operation with its identity element.
func NewMonoid[T any](op BinaryOp[T], identity T) Monoid[T] {
	return monoid[T]{op: op, identity: identity}
}

// NewGroup bundles an associative operation with its identity element and
// inverse function.
func NewGroup[T any](op BinaryOp[T], identity T, inverse func(T) T) Group[T] {
	return group[T]{monoid: monoid[T]{op: op, identity: identity}, inverse: inverse}
}

// Number is the set of built-in numeric kinds the stock structures support.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Add returns a + b.
func Add[N Number](a, b N) N { return a + b }

// Mul returns a * b.
func Mul[N Number](a, b N) N { return a * b }

// Neg returns -a. For unsigned kinds this is the two's complement inverse,
// which is still the additive inverse modulo 2^bits.
func Neg[N Number](a N) N { return -a }

// Additive returns the group (N, +, 0, -).
func Additive[N Number]() Group[N] {
	return NewGroup(BinaryOp[N](Add[N]), 0, Neg[N])
}

// Multiplicative returns the monoid (N, ×, 1).
func Multiplicative[N Number]() Monoid[N] {
	return NewMonoid(BinaryOp[N](Mul[N]), 1)
}

// Instrumented decorates a Semigroup and calls OnCombine after every
// application of the operator. It is used for progress reporting and for
// counting applications in tests.
type Instrumented[T any] struct {
	Semigroup[T]
	OnCombine func()
}

// Combine delegates to the wrapped Semigroup, then fires OnCombine.
func (s Instrumented[T]) Combine(a, b T) T {
	v := s.Semigroup.Combine(a, b)
	if s.OnCombine != nil {
		s.OnCombine()
	}
	return v
}
