// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

import "fmt"

// Validation represents a failure-biased two-armed result: Failure(E) or
// Success(A). Unlike [Either] it names its arms by intent, and its
// combination accumulates failures instead of short-circuiting.
type Validation[E, A any] struct {
	isSuccess bool
	failure   E
	success   A
}

// Failure creates a failed Validation.
func Failure[E, A any](e E) Validation[E, A] {
	return Validation[E, A]{isSuccess: false, failure: e}
}

// Success creates a successful Validation.
func Success[E, A any](a A) Validation[E, A] {
	return Validation[E, A]{isSuccess: true, success: a}
}

// IsFailure returns true if the failure arm is active.
func (v Validation[E, A]) IsFailure() bool {
	return !v.isSuccess
}

// IsSuccess returns true if the success arm is active.
func (v Validation[E, A]) IsSuccess() bool {
	return v.isSuccess
}

// GetFailure returns the failure payload and true, or zero and false.
func (v Validation[E, A]) GetFailure() (E, bool) {
	if !v.isSuccess {
		return v.failure, true
	}
	var zero E
	return zero, false
}

// GetSuccess returns the success payload and true, or zero and false.
func (v Validation[E, A]) GetSuccess() (A, bool) {
	if v.isSuccess {
		return v.success, true
	}
	var zero A
	return zero, false
}

// MatchValidation eliminates the Validation, calling exactly one handler.
func MatchValidation[E, A, T any](v Validation[E, A], onFailure func(E) T, onSuccess func(A) T) T {
	if v.isSuccess {
		return onSuccess(v.success)
	}
	return onFailure(v.failure)
}

// MapValidation applies a function to the success payload.
func MapValidation[E, A, B any](v Validation[E, A], f func(A) B) Validation[E, B] {
	return MatchValidation(v, Failure[E, B], func(a A) Validation[E, B] {
		return Success[E](f(a))
	})
}

// MapFailure applies a function to the failure payload.
func MapFailure[E, F, A any](v Validation[E, A], f func(E) F) Validation[F, A] {
	return MatchValidation(v, func(e E) Validation[F, A] {
		return Failure[F, A](f(e))
	}, Success[F, A])
}

// CombineValidation combines two Validations, accumulating failures under
// combineE and successes under combineA. A single failure poisons the pair,
// but both failure payloads survive when both arms fail.
func CombineValidation[E, A any](
	combineE func(E, E) E,
	combineA func(A, A) A,
	x, y Validation[E, A],
) Validation[E, A] {
	switch {
	case !x.isSuccess && !y.isSuccess:
		return Failure[E, A](combineE(x.failure, y.failure))
	case !x.isSuccess:
		return x
	case !y.isSuccess:
		return y
	default:
		return Success[E](combineA(x.success, y.success))
	}
}

// String renders the Validation for diagnostics: Failure(v) or Success(v).
func (v Validation[E, A]) String() string {
	return MatchValidation(v,
		func(e E) string { return fmt.Sprintf("Failure(%v)", e) },
		func(a A) string { return fmt.Sprintf("Success(%v)", a) },
	)
}
