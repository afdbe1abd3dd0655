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
	"github.com/tensorlang/infer/types"
)

// Built-in relation functions covering the common operator typing
// rules. Operator-specific relations follow the same contract.

// Identity unifies every output with the first input. Because
// assignment is unification, evidence flows backward through an
// identity relation as well as forward.
func Identity(args []types.Type, numInputs int, attrs types.AttrMap, rep types.Reporter) (bool, error) {
	for _, out := range args[1:] {
		if err := rep.Assign(out, args[0]); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Broadcast computes the broadcast of two tensor inputs into the
// output: shapes are aligned from the trailing dimension, and each
// pair of extents must agree or one of them be 1. Symbolic extents are
// trusted through an advisory equality.
func Broadcast(args []types.Type, numInputs int, attrs types.AttrMap, rep types.Reporter) (bool, error) {
	x, xok := args[0].(*types.TensorType)
	y, yok := args[1].(*types.TensorType)
	if !xok || !yok {
		return false, nil
	}
	if x.DType != y.DType {
		return false, RelationErrorf("dtype %s does not match %s", x.DType, y.DType)
	}
	shape, err := broadcastShape(x.Shape, y.Shape, rep)
	if err != nil {
		return false, err
	}
	if err := rep.Assign(args[2], &types.TensorType{Shape: shape, DType: x.DType}); err != nil {
		return false, err
	}
	return true, nil
}

func broadcastShape(a, b []types.IndexExpr, rep types.Reporter) ([]types.IndexExpr, error) {
	if len(a) < len(b) {
		a, b = b, a
	}
	shape := make([]types.IndexExpr, len(a))
	offset := len(a) - len(b)
	copy(shape, a[:offset])
	for i, db := range b {
		da := a[offset+i]
		ca, aok := types.AsConstInt(da)
		cb, bok := types.AsConstInt(db)
		switch {
		case aok && bok:
			switch {
			case ca == cb:
				shape[offset+i] = da
			case ca == 1:
				shape[offset+i] = db
			case cb == 1:
				shape[offset+i] = da
			default:
				return nil, RelationErrorf("incompatible broadcast dims %d and %d", ca, cb)
			}
		case aok && ca == 1:
			shape[offset+i] = db
		case bok && cb == 1:
			shape[offset+i] = da
		default:
			if !rep.AssertEQ(da, db) {
				return nil, RelationErrorf("incompatible broadcast dims %s and %s",
					types.IndexString(da), types.IndexString(db))
			}
			shape[offset+i] = da
		}
	}
	return shape, nil
}

// Elemwise requires its two tensor inputs to agree in dtype and shape
// and unifies the output with the first input.
func Elemwise(args []types.Type, numInputs int, attrs types.AttrMap, rep types.Reporter) (bool, error) {
	x, xok := args[0].(*types.TensorType)
	y, yok := args[1].(*types.TensorType)
	if !xok || !yok {
		return false, nil
	}
	if x.DType != y.DType {
		return false, RelationErrorf("dtype %s does not match %s", x.DType, y.DType)
	}
	if len(x.Shape) != len(y.Shape) {
		return false, RelationErrorf("rank %d does not match %d", len(x.Shape), len(y.Shape))
	}
	for i := range x.Shape {
		if !rep.AssertEQ(x.Shape[i], y.Shape[i]) {
			return false, RelationErrorf("dim %s does not match %s",
				types.IndexString(x.Shape[i]), types.IndexString(y.Shape[i]))
		}
	}
	if err := rep.Assign(args[2], args[0]); err != nil {
		return false, err
	}
	return true, nil
}

// Reshape reinterprets its tensor input with the shape carried in the
// "newshape" attribute. Element counts are checked only when both
// shapes are constant.
func Reshape(args []types.Type, numInputs int, attrs types.AttrMap, rep types.Reporter) (bool, error) {
	x, ok := args[0].(*types.TensorType)
	if !ok {
		return false, nil
	}
	v, ok := attrs.Get("newshape")
	if !ok {
		return false, RelationErrorf("missing newshape attribute")
	}
	shape := v.([]types.IndexExpr)
	if oldCount, ok := numElements(x.Shape); ok {
		if newCount, ok := numElements(shape); ok && oldCount != newCount {
			return false, RelationErrorf("cannot reshape %d elements into %d", oldCount, newCount)
		}
	}
	if err := rep.Assign(args[1], &types.TensorType{Shape: shape, DType: x.DType}); err != nil {
		return false, err
	}
	return true, nil
}

func numElements(shape []types.IndexExpr) (int64, bool) {
	count := int64(1)
	for _, dim := range shape {
		c, ok := types.AsConstInt(dim)
		if !ok {
			return 0, false
		}
		count *= c
	}
	return count, true
}
