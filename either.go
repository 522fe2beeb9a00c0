// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

import "fmt"

// Either represents a value holding exactly one of two arms: Left or Right.
// It is the sum-typed collaborator consumed by [ToLeft], [ToRight] and
// [Cozip]. Neither arm is privileged as the error arm; see [Validation] for
// the failure-biased shape.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates an Either holding the left arm.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{isRight: false, left: l}
}

// Right creates an Either holding the right arm.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// IsLeft returns true if the left arm is active.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if the right arm is active.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the left payload and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero L
	return zero, false
}

// GetRight returns the right payload and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero R
	return zero, false
}

// MatchEither eliminates the Either, calling exactly one of the handlers.
func MatchEither[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the right payload.
func MapEither[L, R, B any](e Either[L, R], f func(R) B) Either[L, B] {
	return MatchEither(e, Left[L, B], func(r R) Either[L, B] {
		return Right[L](f(r))
	})
}

// MapLeftEither applies a function to the left payload.
func MapLeftEither[L, M, R any](e Either[L, R], f func(L) M) Either[M, R] {
	return MatchEither(e, func(l L) Either[M, R] {
		return Left[M, R](f(l))
	}, Right[M, R])
}

// FlatMapEither sequences two right-biased computations.
func FlatMapEither[L, R, B any](e Either[L, R], f func(R) Either[L, B]) Either[L, B] {
	return MatchEither(e, Left[L, B], f)
}

// SwapEither exchanges the two arms.
func SwapEither[L, R any](e Either[L, R]) Either[R, L] {
	return MatchEither(e, Right[R, L], Left[R, L])
}

// EqualEither compares two Eithers arm-wise under the supplied payload
// equalities. Values in different arms are never equal.
func EqualEither[L, R any](eqL func(L, L) bool, eqR func(R, R) bool, x, y Either[L, R]) bool {
	if x.isRight != y.isRight {
		return false
	}
	if x.isRight {
		return eqR(x.right, y.right)
	}
	return eqL(x.left, y.left)
}

// String renders the Either for diagnostics: Left(v) or Right(v).
func (e Either[L, R]) String() string {
	return MatchEither(e,
		func(l L) string { return fmt.Sprintf("Left(%v)", l) },
		func(r R) string { return fmt.Sprintf("Right(%v)", r) },
	)
}
