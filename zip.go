// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

// Pairing and alignment over two Options.
//
// Zip pairs strictly: both present or nothing. Align relaxes that policy
// with per-arm handlers, producing None only when both sides are absent.

// Pair is a two-element tuple.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Zip pairs two Options positionally: Some(Pair(a, b)) iff both are
// present, None otherwise. Never a cross product — at most one result.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{Fst: x, Snd: y}
	})
}

// ZipWith combines two Options under f iff both are present.
func ZipWith[A, B, C any](a Option[A], b Option[B], f func(A, B) C) Option[C] {
	return FlatMap(a, func(x A) Option[C] {
		return Map(b, func(y B) C { return f(x, y) })
	})
}

// Unzip splits an Option of a pair into a pair of Options.
// Some(Pair(a, b)) yields (Some(a), Some(b)); None yields (None, None).
// Unzip(Zip(a, b)) == (a, b) whenever both a and b are present.
func Unzip[A, B any](o Option[Pair[A, B]]) (Option[A], Option[B]) {
	return Map(o, func(p Pair[A, B]) A { return p.Fst }),
		Map(o, func(p Pair[A, B]) B { return p.Snd })
}

// Align combines two Options with a handler per present arm: onBoth when
// both are present, onLeft when only a is, onRight when only b is. Only
// the neither arm produces None. Use Align where Zip's both-or-nothing
// policy is too strict.
func Align[A, B, C any](
	a Option[A],
	b Option[B],
	onBoth func(A, B) C,
	onLeft func(A) C,
	onRight func(B) C,
) Option[C] {
	return Match(a,
		func(x A) Option[C] {
			return Match(b,
				func(y B) Option[C] { return Some(onBoth(x, y)) },
				func() Option[C] { return Some(onLeft(x)) },
			)
		},
		func() Option[C] {
			return Match(b,
				func(y B) Option[C] { return Some(onRight(y)) },
				None[C],
			)
		},
	)
}

// Cozip distributes a sum payload out of the Option:
// Some(Left(a)) becomes Left(Some(a)) and Some(Right(b)) becomes
// Right(Some(b)).
//
// None maps to Left(None). Absence carries no discriminant to prefer one
// arm, so the left bias is a convention, not a law; apply [SwapEither]
// when the other bias is wanted.
func Cozip[A, B any](o Option[Either[A, B]]) Either[Option[A], Option[B]] {
	return Match(o,
		func(e Either[A, B]) Either[Option[A], Option[B]] {
			return MatchEither(e,
				func(a A) Either[Option[A], Option[B]] {
					return Left[Option[A], Option[B]](Some(a))
				},
				func(b B) Either[Option[A], Option[B]] {
					return Right[Option[A]](Some(b))
				},
			)
		},
		func() Either[Option[A], Option[B]] {
			return Left[Option[A], Option[B]](None[A]())
		},
	)
}
