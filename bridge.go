// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

// Bridges between Option and Go's native optional conventions.
//
// Go has two idioms for "maybe a value": the comma-ok pair and the nilable
// pointer. Both bridges are total and one-to-one: FromGet inverts
// [Option.Get], and FromPtr inverts [Option.Ptr] up to pointer identity.

// FromGet lifts a comma-ok pair into an Option.
// FromGet(o.Get()) == o for every Option o.
func FromGet[A any](a A, ok bool) Option[A] {
	if ok {
		return Some(a)
	}
	return None[A]()
}

// FromPtr lifts a nilable pointer into an Option over its pointee.
// The payload is copied; later writes through p do not affect the Option.
func FromPtr[A any](p *A) Option[A] {
	if p != nil {
		return Some(*p)
	}
	return None[A]()
}

// Ptr lowers the Option to a nilable pointer: a pointer to a copy of the
// payload if present, nil otherwise.
func (o Option[A]) Ptr() *A {
	return Match(o,
		func(a A) *A { return &a },
		func() *A { return nil },
	)
}

// FromEither projects the right arm into an Option, dropping the left
// payload. Inverse of [ToRight] up to the dropped default.
func FromEither[L, R any](e Either[L, R]) Option[R] {
	return MatchEither(e,
		func(L) Option[R] { return None[R]() },
		Some[R],
	)
}

// FromValidation projects the success arm into an Option, dropping the
// failure payload. Inverse of [ToSuccess] up to the dropped default.
func FromValidation[E, A any](v Validation[E, A]) Option[A] {
	return MatchValidation(v,
		func(E) Option[A] { return None[A]() },
		Some[A],
	)
}
