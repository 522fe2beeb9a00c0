// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/opt"
)

func TestMapSome(t *testing.T) {
	got := opt.Map(opt.Some(3), func(x int) int { return x * 2 })
	if v, ok := got.Get(); !ok || v != 6 {
		t.Fatalf("got %v, want Some(6)", got)
	}
}

func TestMapNoneSkipsFunction(t *testing.T) {
	calls := 0
	got := opt.Map(opt.None[int](), func(x int) int { calls++; return x })
	if got.IsSome() {
		t.Fatalf("got %v, want None", got)
	}
	if calls != 0 {
		t.Fatalf("f called %d times on absent input, want 0", calls)
	}
}

func TestMapChangesType(t *testing.T) {
	got := opt.Map(opt.Some(42), strconv.Itoa)
	if v, _ := got.Get(); v != "42" {
		t.Fatalf("got %v, want Some(\"42\")", got)
	}
}

func TestFlatMapSome(t *testing.T) {
	got := opt.FlatMap(opt.Some(10), func(x int) opt.Option[int] {
		return opt.Some(x * 2)
	})
	if v, _ := got.Get(); v != 20 {
		t.Fatalf("got %v, want Some(20)", got)
	}
}

func TestFlatMapSomeToNone(t *testing.T) {
	got := opt.FlatMap(opt.Some(10), func(int) opt.Option[int] {
		return opt.None[int]()
	})
	if got.IsSome() {
		t.Fatalf("got %v, want None", got)
	}
}

func TestFlatMapNoneSkipsFunction(t *testing.T) {
	calls := 0
	got := opt.FlatMap(opt.None[int](), func(x int) opt.Option[int] {
		calls++
		return opt.Some(x)
	})
	if got.IsSome() || calls != 0 {
		t.Fatalf("got %v with %d calls, want None with 0 calls", got, calls)
	}
}

func TestThen(t *testing.T) {
	got := opt.Then(opt.Some(1), opt.Some("next"))
	if v, _ := got.Get(); v != "next" {
		t.Fatalf("got %v, want Some(\"next\")", got)
	}
	if opt.Then(opt.None[int](), opt.Some("next")).IsSome() {
		t.Fatal("Then over None produced a present value")
	}
}

func TestFlatten(t *testing.T) {
	if v, _ := opt.Flatten(opt.Some(opt.Some(5))).Get(); v != 5 {
		t.Fatal("Flatten(Some(Some(5))) != Some(5)")
	}
	if opt.Flatten(opt.Some(opt.None[int]())).IsSome() {
		t.Fatal("Flatten(Some(None)) is present")
	}
	if opt.Flatten(opt.None[opt.Option[int]]()).IsSome() {
		t.Fatal("Flatten(None) is present")
	}
}

func TestApply(t *testing.T) {
	double := func(x int) int { return x * 2 }
	got := opt.Apply(opt.Some(double), opt.Some(21))
	if v, _ := got.Get(); v != 42 {
		t.Fatalf("got %v, want Some(42)", got)
	}
	if opt.Apply(opt.None[func(int) int](), opt.Some(21)).IsSome() {
		t.Fatal("Apply with absent function is present")
	}
	if opt.Apply(opt.Some(double), opt.None[int]()).IsSome() {
		t.Fatal("Apply with absent argument is present")
	}
}

func TestFilter(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }
	if v, _ := opt.Filter(opt.Some(4), even).Get(); v != 4 {
		t.Fatal("Filter dropped a satisfying payload")
	}
	if opt.Filter(opt.Some(3), even).IsSome() {
		t.Fatal("Filter kept a failing payload")
	}
	if opt.Filter(opt.None[int](), even).IsSome() {
		t.Fatal("Filter invented a payload")
	}
}

func TestFoldRight(t *testing.T) {
	got := opt.FoldRight(opt.Some(3), 10, func(a, z int) int { return a + z })
	if got != 13 {
		t.Fatalf("got %d, want 13", got)
	}
	got = opt.FoldRight(opt.None[int](), 10, func(a, z int) int { return a + z })
	if got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
}
