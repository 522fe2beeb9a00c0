// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt

import "fmt"

// Option represents a value that is either present (Some) or absent (None).
// Option[A] holds at most one value of type A.
//
// The zero value is None. Option values are immutable: every operation
// returns a new value and never mutates its inputs. An absent Option
// carries no payload and allocates nothing.
//
// The payload type A carries no constraint. Operations that need equality,
// ordering, display or combination on A take that capability as an explicit
// argument.
type Option[A any] struct {
	present bool
	value   A
}

// Some creates a present Option holding a.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// Match eliminates the Option by calling exactly one of the two handlers:
// onSome with the payload if present, onNone otherwise.
//
// Match is the single elimination primitive — every derived operation in
// this package is defined through it. onNone is a thunk and is forced only
// when the Option is actually absent.
func Match[A, B any](o Option[A], onSome func(A) B, onNone func() B) B {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// IsSome returns true if the Option holds a value.
func (o Option[A]) IsSome() bool {
	return Match(o,
		func(A) bool { return true },
		func() bool { return false },
	)
}

// IsNone returns true if the Option is absent.
func (o Option[A]) IsNone() bool {
	return !o.IsSome()
}

// Get returns the payload and true, or zero and false.
// This is the comma-ok projection; there is no panicking accessor.
func (o Option[A]) Get() (A, bool) {
	var zero A
	pair := Match(o,
		func(a A) Pair[A, bool] { return Pair[A, bool]{Fst: a, Snd: true} },
		func() Pair[A, bool] { return Pair[A, bool]{Fst: zero, Snd: false} },
	)
	return pair.Fst, pair.Snd
}

// GetOrElse returns the payload if present, otherwise the result of
// fallback. fallback is forced only on the absent branch.
func (o Option[A]) GetOrElse(fallback func() A) A {
	return Match(o,
		func(a A) A { return a },
		fallback,
	)
}

// OrElse returns o if present, otherwise the result of fallback.
// fallback is forced only on the absent branch — callers rely on this to
// keep expensive or effectful fallback computations out of the eager path.
func OrElse[A any](o Option[A], fallback func() Option[A]) Option[A] {
	return Match(o, Some[A], fallback)
}

// String renders the Option for diagnostics: Some(v) or None.
// Display is not used by equality or ordering; see [Show] for
// capability-supplied rendering.
func (o Option[A]) String() string {
	return Match(o,
		func(a A) string { return fmt.Sprintf("Some(%v)", a) },
		func() string { return "None" },
	)
}
