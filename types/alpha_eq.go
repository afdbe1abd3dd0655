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

package types

// AlphaEqual reports whether two types are structurally equal up to
// consistent renaming of bound type variables. Free type variables and
// meta-variables compare by identity.
func AlphaEqual(a, b Type) bool {
	return alphaEqual(a, b, nil)
}

func alphaEqual(a, b Type, env map[*TypeVar]*TypeVar) bool {
	switch a := a.(type) {
	case *IncompleteType:
		return a == b

	case *TypeVar:
		bv, ok := b.(*TypeVar)
		if !ok {
			return false
		}
		if mapped, bound := env[a]; bound {
			return mapped == bv
		}
		return a == bv

	case *GlobalTypeVar:
		bv, ok := b.(*GlobalTypeVar)
		return ok && a.Name == bv.Name && a.Kind == bv.Kind

	case *TupleType:
		bt, ok := b.(*TupleType)
		if !ok || len(a.Fields) != len(bt.Fields) {
			return false
		}
		for i := range a.Fields {
			if !alphaEqual(a.Fields[i], bt.Fields[i], env) {
				return false
			}
		}
		return true

	case *FuncType:
		bt, ok := b.(*FuncType)
		if !ok ||
			len(a.ArgTypes) != len(bt.ArgTypes) ||
			len(a.TypeParams) != len(bt.TypeParams) ||
			len(a.TypeConstraints) != len(bt.TypeConstraints) {
			return false
		}
		if len(a.TypeParams) > 0 {
			inner := make(map[*TypeVar]*TypeVar, len(env)+len(a.TypeParams))
			for k, v := range env {
				inner[k] = v
			}
			for i, p := range a.TypeParams {
				inner[p] = bt.TypeParams[i]
			}
			env = inner
		}
		for i := range a.ArgTypes {
			if !alphaEqual(a.ArgTypes[i], bt.ArgTypes[i], env) {
				return false
			}
		}
		for i := range a.TypeConstraints {
			if !alphaEqual(a.TypeConstraints[i], bt.TypeConstraints[i], env) {
				return false
			}
		}
		return alphaEqual(a.RetType, bt.RetType, env)

	case *TensorType:
		bt, ok := b.(*TensorType)
		if !ok || a.DType != bt.DType || len(a.Shape) != len(bt.Shape) {
			return false
		}
		for i := range a.Shape {
			if !IndexEqual(a.Shape[i], bt.Shape[i]) {
				return false
			}
		}
		return true

	case *RefType:
		bt, ok := b.(*RefType)
		return ok && alphaEqual(a.Value, bt.Value, env)

	case *TypeCall:
		bt, ok := b.(*TypeCall)
		if !ok || len(a.Args) != len(bt.Args) || !alphaEqual(a.Func, bt.Func, env) {
			return false
		}
		for i := range a.Args {
			if !alphaEqual(a.Args[i], bt.Args[i], env) {
				return false
			}
		}
		return true

	case *TypeRelation:
		bt, ok := b.(*TypeRelation)
		if !ok || a.Name != bt.Name || a.NumInputs != bt.NumInputs || len(a.Args) != len(bt.Args) {
			return false
		}
		for i := range a.Args {
			if !alphaEqual(a.Args[i], bt.Args[i], env) {
				return false
			}
		}
		return true
	}
	return false
}
