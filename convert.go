// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

// Conversions from Option into the two-armed collaborator shapes.
//
// Every default argument is a thunk, forced only when the Option is absent.
// Callers routinely pass expensive fallback computations here; the eager
// branch must never pay for them.

// ToRight converts to a right-biased Either: the payload lands in Right,
// an absent Option yields Left(left()).
func ToRight[A, L any](o Option[A], left func() L) Either[L, A] {
	return Match(o,
		Right[L, A],
		func() Either[L, A] { return Left[L, A](left()) },
	)
}

// ToLeft converts to a left-biased Either: the payload lands in Left,
// an absent Option yields Right(right()).
func ToLeft[A, R any](o Option[A], right func() R) Either[A, R] {
	return Match(o,
		Left[A, R],
		func() Either[A, R] { return Right[A](right()) },
	)
}

// ToSuccess converts to a Validation: the payload lands in Success,
// an absent Option yields Failure(failure()).
func ToSuccess[A, E any](o Option[A], failure func() E) Validation[E, A] {
	return Match(o,
		Success[E, A],
		func() Validation[E, A] { return Failure[E, A](failure()) },
	)
}

// ToFailure converts to a Validation: the payload lands in Failure,
// an absent Option yields Success(success()).
func ToFailure[E, A any](o Option[E], success func() A) Validation[E, A] {
	return Match(o,
		Failure[E, A],
		func() Validation[E, A] { return Success[E, A](success()) },
	)
}
