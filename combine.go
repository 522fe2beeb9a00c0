// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

import "golang.org/x/exp/constraints"

// Semigroup and monoid combination over Option.
//
// Combine lifts a combination law on A to Option[A] with None as the
// two-sided identity. The four policy wrappers — First, Last, Min, Max —
// are zero-cost nominal retags of Option[A] whose Combine methods install
// an alternate law over the same representation. All five laws are
// associative whenever their payload law is, so batch reduction order
// never matters.

// Combine combines two Options under the supplied payload combination:
// None is the identity on either side, and two present payloads combine
// under combine. Associative whenever combine is.
func Combine[A any](combine func(A, A) A, x, y Option[A]) Option[A] {
	return Match(x,
		func(a A) Option[A] {
			return Match(y,
				func(b A) Option[A] { return Some(combine(a, b)) },
				func() Option[A] { return x },
			)
		},
		func() Option[A] { return y },
	)
}

// CombineAll folds any number of Options under combine, starting from the
// None identity.
func CombineAll[A any](combine func(A, A) A, xs ...Option[A]) Option[A] {
	acc := None[A]()
	for _, x := range xs {
		acc = Combine(combine, acc, x)
	}
	return acc
}

// First is Option[A] under the first-wins combination law.
// The retag is representation-identical; [First.Unwrap] is free.
type First[A any] Option[A]

// FirstOf retags an Option with the first-wins law.
func FirstOf[A any](o Option[A]) First[A] {
	return First[A](o)
}

// Unwrap returns the underlying Option.
func (x First[A]) Unwrap() Option[A] {
	return Option[A](x)
}

// Combine keeps x if present, else y. Identity is the wrapped None.
func (x First[A]) Combine(y First[A]) First[A] {
	return First[A](Combine(keepLeft[A], Option[A](x), Option[A](y)))
}

// CombineFirsts folds under the first-wins law: the first present value.
func CombineFirsts[A any](xs ...First[A]) First[A] {
	acc := First[A]{}
	for _, x := range xs {
		acc = acc.Combine(x)
	}
	return acc
}

// Last is Option[A] under the last-wins combination law.
type Last[A any] Option[A]

// LastOf retags an Option with the last-wins law.
func LastOf[A any](o Option[A]) Last[A] {
	return Last[A](o)
}

// Unwrap returns the underlying Option.
func (x Last[A]) Unwrap() Option[A] {
	return Option[A](x)
}

// Combine keeps y if present, else x. Identity is the wrapped None.
func (x Last[A]) Combine(y Last[A]) Last[A] {
	return Last[A](Combine(keepRight[A], Option[A](x), Option[A](y)))
}

// CombineLasts folds under the last-wins law: the last present value.
func CombineLasts[A any](xs ...Last[A]) Last[A] {
	acc := Last[A]{}
	for _, x := range xs {
		acc = acc.Combine(x)
	}
	return acc
}

// Min is Option[A] under the minimum-by-ordering combination law.
// The payload ordering is supplied at each combination; the wrapper owns
// nothing beyond the Option it retags.
type Min[A any] Option[A]

// MinOf retags an Option with the minimum-by-ordering law.
func MinOf[A any](o Option[A]) Min[A] {
	return Min[A](o)
}

// Unwrap returns the underlying Option.
func (x Min[A]) Unwrap() Option[A] {
	return Option[A](x)
}

// Combine keeps the lesser payload under cmp. A lone present value wins
// over an absent one: None is the identity, never the minimum.
// Ties keep x.
func (x Min[A]) Combine(cmp func(A, A) int, y Min[A]) Min[A] {
	lesser := func(a, b A) A {
		if cmp(b, a) < 0 {
			return b
		}
		return a
	}
	return Min[A](Combine(lesser, Option[A](x), Option[A](y)))
}

// CombineMins folds under the minimum law: the least present value.
func CombineMins[A any](cmp func(A, A) int, xs ...Min[A]) Min[A] {
	acc := Min[A]{}
	for _, x := range xs {
		acc = acc.Combine(cmp, x)
	}
	return acc
}

// Max is Option[A] under the maximum-by-ordering combination law.
type Max[A any] Option[A]

// MaxOf retags an Option with the maximum-by-ordering law.
func MaxOf[A any](o Option[A]) Max[A] {
	return Max[A](o)
}

// Unwrap returns the underlying Option.
func (x Max[A]) Unwrap() Option[A] {
	return Option[A](x)
}

// Combine keeps the greater payload under cmp. None is the identity.
// Ties keep x.
func (x Max[A]) Combine(cmp func(A, A) int, y Max[A]) Max[A] {
	greater := func(a, b A) A {
		if cmp(b, a) > 0 {
			return b
		}
		return a
	}
	return Max[A](Combine(greater, Option[A](x), Option[A](y)))
}

// CombineMaxes folds under the maximum law: the greatest present value.
func CombineMaxes[A any](cmp func(A, A) int, xs ...Max[A]) Max[A] {
	acc := Max[A]{}
	for _, x := range xs {
		acc = acc.Combine(cmp, x)
	}
	return acc
}

// MinOrdered folds Options over a built-in ordered payload to the least
// present value.
func MinOrdered[A constraints.Ordered](xs ...Option[A]) Option[A] {
	acc := Min[A]{}
	for _, x := range xs {
		acc = acc.Combine(compareNatural[A], MinOf(x))
	}
	return acc.Unwrap()
}

// MaxOrdered folds Options over a built-in ordered payload to the greatest
// present value.
func MaxOrdered[A constraints.Ordered](xs ...Option[A]) Option[A] {
	acc := Max[A]{}
	for _, x := range xs {
		acc = acc.Combine(compareNatural[A], MaxOf(x))
	}
	return acc.Unwrap()
}

// keepLeft and keepRight are the payload laws behind First and Last.
// Named generic functions produce a static funcval per instantiation,
// avoiding a closure allocation on every Combine.
func keepLeft[A any](a, _ A) A  { return a }
func keepRight[A any](_, b A) A { return b }
