// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

import "golang.org/x/exp/constraints"

// Equality, ordering and display instances for Option.
//
// Capabilities on the payload type are explicit function arguments, visible
// at every call site. The Ordered-constrained variants supply the natural
// capability for built-in ordered types.

// Equal compares two Options under the supplied payload equality.
// Two absent Options are equal; a present and an absent Option are not;
// two present Options compare by eq on their payloads.
//
// Equal is reflexive, symmetric and transitive whenever eq is.
func Equal[A any](eq func(A, A) bool, x, y Option[A]) bool {
	return Match(x,
		func(a A) bool {
			return Match(y,
				func(b A) bool { return eq(a, b) },
				func() bool { return false },
			)
		},
		func() bool { return y.IsNone() },
	)
}

// Compare orders two Options under the supplied payload ordering, returning
// a negative value, zero, or a positive value as x sorts before, equal to,
// or after y. An absent Option sorts before any present one; two present
// Options compare by cmp on their payloads.
//
// The result is a total order whenever cmp is total. This ordering is the
// basis for [Min] and [Max] combination.
func Compare[A any](cmp func(A, A) int, x, y Option[A]) int {
	return Match(x,
		func(a A) int {
			return Match(y,
				func(b A) int { return cmp(a, b) },
				func() int { return 1 },
			)
		},
		func() int {
			return Match(y,
				func(A) int { return -1 },
				func() int { return 0 },
			)
		},
	)
}

// Show renders the Option under the supplied payload rendering:
// Some(show(a)) if present, None otherwise. Purely diagnostic; never
// consulted by [Equal] or [Compare].
func Show[A any](show func(A) string, o Option[A]) string {
	return Match(o,
		func(a A) string { return "Some(" + show(a) + ")" },
		func() string { return "None" },
	)
}

// CompareOrdered is [Compare] with the natural ordering of A.
func CompareOrdered[A constraints.Ordered](x, y Option[A]) int {
	return Compare(compareNatural[A], x, y)
}

// EqualOrdered is [Equal] with the natural equality of A.
func EqualOrdered[A constraints.Ordered](x, y Option[A]) bool {
	return Equal(func(a, b A) bool { return a == b }, x, y)
}

// compareNatural is the three-way natural ordering on a built-in ordered
// type. Named function rather than a closure so the Ordered convenience
// wrappers share one funcval per instantiation.
func compareNatural[A constraints.Ordered](a, b A) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
