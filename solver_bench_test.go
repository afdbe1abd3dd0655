// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package infer

import (
	"testing"

	"github.com/tensorlang/infer/types"
)

func BenchmarkBroadcastChain(b *testing.B) {
	ones := &types.TensorType{Shape: types.Shape(10, 1), DType: "float32"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		solver := NewSolver()
		prev := types.Type(&types.TensorType{Shape: types.Shape(10, 20), DType: "float32"})
		for j := 0; j < 32; j++ {
			out := types.NewIncompleteType(types.KindType)
			rel := &types.TypeRelation{
				Name:      "Broadcast",
				Func:      Broadcast,
				Args:      []types.Type{prev, ones, out},
				NumInputs: 2,
				Attrs:     types.EmptyAttrMap,
			}
			if err := solver.AddConstraint(rel); err != nil {
				b.Fatal(err)
			}
			prev = out
		}
		solved, err := solver.Solve()
		if err != nil {
			b.Fatal(err)
		}
		if !solved {
			b.Fatal("expected every relation to resolve")
		}
	}
}

func BenchmarkUnifyDeepTuple(b *testing.B) {
	depth := 64
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		solver := NewSolver()
		leafHole := types.NewIncompleteType(types.KindType)
		leaf := &types.TensorType{Shape: types.Shape(4), DType: "float32"}
		left, right := types.Type(leafHole), types.Type(leaf)
		for j := 0; j < depth; j++ {
			left = &types.TupleType{Fields: []types.Type{left}}
			right = &types.TupleType{Fields: []types.Type{right}}
		}
		if _, err := solver.Unify(left, right); err != nil {
			b.Fatal(err)
		}
	}
}
