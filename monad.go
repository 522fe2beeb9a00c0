// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

// Monad operations for optional values.
//
// Minimal definition: Some (unit) and FlatMap are necessary and sufficient.
// Everything here is derived from the [Match] eliminator, so the functor and
// monad laws follow from Match invoking exactly one handler.

// Map applies a pure function to the payload.
// Some(a) becomes Some(f(a)); None stays None and f is never called.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	return Match(o,
		func(a A) Option[B] { return Some(f(a)) },
		None[B],
	)
}

// FlatMap sequences two optional computations (monadic bind).
// Some(a) becomes f(a); None stays None and f is never called.
func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	return Match(o, f, None[B])
}

// Then sequences two optional values, discarding the first payload.
// Equivalent to FlatMap(o, func(A) Option[B] { return n }) without the
// closure capture.
func Then[A, B any](o Option[A], n Option[B]) Option[B] {
	return Match(o,
		func(A) Option[B] { return n },
		None[B],
	)
}

// Flatten collapses one level of nesting.
// Equivalent to FlatMap with the identity function.
func Flatten[A any](o Option[Option[A]]) Option[A] {
	return FlatMap(o, func(inner Option[A]) Option[A] { return inner })
}

// Apply applies an optional function to an optional argument.
// The result is present iff both are present.
func Apply[A, B any](mf Option[func(A) B], ma Option[A]) Option[B] {
	return FlatMap(mf, func(f func(A) B) Option[B] {
		return Map(ma, f)
	})
}

// Filter keeps the payload only if it satisfies pred.
func Filter[A any](o Option[A], pred func(A) bool) Option[A] {
	return FlatMap(o, func(a A) Option[A] {
		if pred(a) {
			return Some(a)
		}
		return None[A]()
	})
}

// FoldRight folds the Option like a zero-or-one element structure:
// f(a, z) if present, z otherwise. This and [Match]/[Option.Get] are the
// only extraction primitives.
func FoldRight[A, B any](o Option[A], z B, f func(A, B) B) B {
	return Match(o,
		func(a A) B { return f(a, z) },
		func() B { return z },
	)
}
