// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

// Traversal of an Option through an effect context.
//
// Go has no abstraction over type constructors, so the effect's applicative
// dictionary is passed explicitly. An Option holds at most one element, so
// traversal needs only the effect's pure and map — never its product —
// which makes the explicit dictionary complete, not an approximation.

// Traverse runs f on the payload inside an arbitrary effect context.
//
// FB stands for the effect applied to B, FOB for the effect applied to
// Option[B]. pure lifts a plain Option[B] into the effect; mapEffect maps
// a function over the effect's result. Traversing Some(a) runs f(a) and
// wraps its result in Some inside the effect; traversing None
// short-circuits to pure(None) without invoking f.
func Traverse[A, B, FB, FOB any](
	o Option[A],
	f func(A) FB,
	pure func(Option[B]) FOB,
	mapEffect func(FB, func(B) Option[B]) FOB,
) FOB {
	return Match(o,
		func(a A) FOB { return mapEffect(f(a), Some[B]) },
		func() FOB { return pure(None[B]()) },
	)
}

// TraverseEither traverses with an Either-producing step: a Left from f
// aborts the traversal, otherwise the result is rewrapped in Some.
func TraverseEither[A, L, B any](o Option[A], f func(A) Either[L, B]) Either[L, Option[B]] {
	return Traverse(o, f,
		Right[L, Option[B]],
		func(e Either[L, B], wrap func(B) Option[B]) Either[L, Option[B]] {
			return MapEither(e, wrap)
		},
	)
}

// SequenceEither turns an Option of Either inside out.
// Equivalent to TraverseEither with the identity step.
func SequenceEither[L, A any](o Option[Either[L, A]]) Either[L, Option[A]] {
	return TraverseEither(o, func(e Either[L, A]) Either[L, A] { return e })
}

// TraverseValidation traverses with a Validation-producing step.
func TraverseValidation[A, E, B any](o Option[A], f func(A) Validation[E, B]) Validation[E, Option[B]] {
	return Traverse(o, f,
		Success[E, Option[B]],
		func(v Validation[E, B], wrap func(B) Option[B]) Validation[E, Option[B]] {
			return MapValidation(v, wrap)
		},
	)
}

// SequenceValidation turns an Option of Validation inside out.
func SequenceValidation[E, A any](o Option[Validation[E, A]]) Validation[E, Option[A]] {
	return TraverseValidation(o, func(v Validation[E, A]) Validation[E, A] { return v })
}

// TraverseErr traverses with Go's native fallible step. A nil error from f
// yields (Some(b), nil); a non-nil error propagates with an absent result;
// an absent input yields (None, nil) without invoking f.
func TraverseErr[A, B any](o Option[A], f func(A) (B, error)) (Option[B], error) {
	result := Traverse(o,
		func(a A) Pair[B, error] {
			b, err := f(a)
			return Pair[B, error]{Fst: b, Snd: err}
		},
		func(ob Option[B]) Pair[Option[B], error] {
			return Pair[Option[B], error]{Fst: ob}
		},
		func(p Pair[B, error], wrap func(B) Option[B]) Pair[Option[B], error] {
			if p.Snd != nil {
				return Pair[Option[B], error]{Fst: None[B](), Snd: p.Snd}
			}
			return Pair[Option[B], error]{Fst: wrap(p.Fst), Snd: nil}
		},
	)
	return result.Fst, result.Snd
}
