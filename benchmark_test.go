// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opt_test

import (
	"testing"

	"code.hybscloud.com/opt"
)

// BenchmarkMapPresent measures the present-path transformation.
func BenchmarkMapPresent(b *testing.B) {
	o := opt.Some(1)
	inc := func(x int) int { return x + 1 }
	for b.Loop() {
		_ = opt.Map(o, inc)
	}
}

// BenchmarkMapAbsent measures the absent short-circuit.
func BenchmarkMapAbsent(b *testing.B) {
	o := opt.None[int]()
	inc := func(x int) int { return x + 1 }
	for b.Loop() {
		_ = opt.Map(o, inc)
	}
}

// BenchmarkFlatMapChain measures a chain of five binds.
func BenchmarkFlatMapChain(b *testing.B) {
	step := func(x int) opt.Option[int] { return opt.Some(x + 1) }
	for b.Loop() {
		o := opt.Some(0)
		for range 5 {
			o = opt.FlatMap(o, step)
		}
		_ = o
	}
}

// BenchmarkCombineFirsts measures batch reduction under the first-wins law.
func BenchmarkCombineFirsts(b *testing.B) {
	xs := []opt.First[int]{
		opt.FirstOf(opt.None[int]()),
		opt.FirstOf(opt.None[int]()),
		opt.FirstOf(opt.Some(3)),
		opt.FirstOf(opt.Some(4)),
	}
	for b.Loop() {
		_ = opt.CombineFirsts(xs...)
	}
}

// BenchmarkCompare measures the ordering instance on mixed variants.
func BenchmarkCompare(b *testing.B) {
	cmp := func(a, c int) int { return a - c }
	x, y := opt.Some(1), opt.None[int]()
	for b.Loop() {
		_ = opt.Compare(cmp, x, y)
		_ = opt.Compare(cmp, y, x)
	}
}
