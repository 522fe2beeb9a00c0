// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package opt provides a two-variant optional-value container and its
// structural algebra in Go.
//
// The core type [Option] represents a value that is either present (Some)
// or absent (None). The container is a closed sum: exactly one variant is
// active, there is no third state, and no panicking accessor exists.
// Everything in the package is a pure function of its inputs — values are
// immutable after construction and safe to share across goroutines without
// coordination.
//
// # Design Philosophy
//
// opt provides:
//   - A single elimination primitive, [Match], through which every derived
//     operation is defined — laws proven for the eliminator propagate
//     uniformly to the whole surface
//   - Explicit capabilities: operations that need equality, ordering,
//     display or combination on the payload take them as arguments,
//     visible at the call site
//   - No allocation for absence: None carries no payload and absent-path
//     operations allocate nothing
//
// # Core Container
//
//   - [Some], [None]: Constructors; the zero value is None
//   - [Match]: The eliminator — exactly one handler runs, the absent
//     handler is a thunk forced only when the container is absent
//   - [Option.IsSome], [Option.IsNone]: Variant predicates
//   - [Option.Get]: Comma-ok projection
//   - [Option.GetOrElse], [OrElse]: Lazy fallbacks
//
// # Structural Operations
//
// Minimal monad operations:
//
//   - [Some]: Lift a pure value (unit)
//   - [FlatMap]: Sequence two optional computations
//
// Derived operations:
//
//   - [Map]: Apply a pure function to the payload
//   - [Then]: Sequence, discarding the first payload
//   - [Flatten]: Collapse one level of nesting
//   - [Apply]: Optional function applied to optional argument
//   - [Filter]: Keep the payload only if a predicate holds
//   - [FoldRight]: Fold as a zero-or-one element structure
//
// # Instances
//
// Equality, ordering and display, each under an explicit payload
// capability:
//
//   - [Equal]: Both absent, or both present with equal payloads
//   - [Compare]: None sorts before any Some; total when the payload
//     ordering is total
//   - [Show]: Some(...) / None rendering
//   - [EqualOrdered], [CompareOrdered]: Natural-capability conveniences
//     for built-in ordered payloads
//
// # Combination
//
// [Combine] lifts a payload semigroup to Option with None as the two-sided
// identity. Four policy wrappers retag the same representation with an
// alternate law; retagging and [First.Unwrap] (etc.) are free:
//
//   - [First]: first present value wins
//   - [Last]: last present value wins
//   - [Min]: least present value under a supplied ordering
//   - [Max]: greatest present value under a supplied ordering
//   - [CombineAll], [CombineFirsts], [CombineLasts], [CombineMins],
//     [CombineMaxes]: batch folds — all laws are associative with the
//     wrapped None as identity, so reduction order never matters
//   - [MinOrdered], [MaxOrdered]: folds over built-in ordered payloads
//
// # Pairing and Alignment
//
//   - [Zip], [ZipWith]: Both-or-nothing pairing into [Pair]
//   - [Unzip]: Split an Option of a pair into a pair of Options
//   - [Align]: Per-arm handlers for both/left-only/right-only; absent
//     only when both sides are absent
//   - [Cozip]: Distribute an [Either] payload out of the Option; None maps
//     to Left(None) by convention
//
// # Traversal
//
// [Traverse] runs an effectful step over the payload inside an arbitrary
// effect context, passed as an explicit (pure, map) dictionary. An absent
// container short-circuits to a pure None without invoking the step.
//
//   - [TraverseEither], [SequenceEither]
//   - [TraverseValidation], [SequenceValidation]
//   - [TraverseErr]: Go's native (value, error) effect
//
// # Collaborator Sum Types
//
// [Either] is the neutral two-armed sum consumed by the conversions and
// [Cozip]; [Validation] is the failure-biased shape with accumulating
// combination:
//
//   - [Left], [Right], [MatchEither], [MapEither], [MapLeftEither],
//     [FlatMapEither], [SwapEither], [EqualEither]
//   - [Failure], [Success], [MatchValidation], [MapValidation],
//     [MapFailure], [CombineValidation]
//
// # Conversions and Bridges
//
// Conversions into the two-armed shapes take their default for the other
// arm as a thunk, forced only on the absent branch:
//
//   - [ToRight], [ToLeft]: Option into Either, either bias
//   - [ToSuccess], [ToFailure]: Option into Validation, either bias
//   - [FromGet], [Option.Get]: Comma-ok bridge
//   - [FromPtr], [Option.Ptr]: Pointer bridge
//   - [FromEither], [FromValidation]: Arm-dropping projections
//
// # Example
//
//	lookup := func(k string) opt.Option[int] {
//		if k == "answer" {
//			return opt.Some(42)
//		}
//		return opt.None[int]()
//	}
//
//	doubled := opt.Map(lookup("answer"), func(x int) int { return x * 2 })
//	result := doubled.GetOrElse(func() int { return -1 })
//	// result == 84
package opt
