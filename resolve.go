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
	"github.com/tensorlang/infer/internal/util"
	"github.com/tensorlang/infer/types"
)

// Resolve rewrites t, replacing every meta-variable with the
// best-known type of its equivalence class. Resolving is idempotent:
// resolving a resolved type returns it unchanged up to alpha-equality.
func (s *TypeSolver) Resolve(t types.Type) types.Type {
	if tn, ok := s.tmap[t]; ok {
		t = tn.FindRoot().Resolved
	}
	seen := util.NewIntDedupeMap()
	resolved := s.resolve(t, seen)
	seen.Release()
	return resolved
}

func (s *TypeSolver) resolve(t types.Type, seen util.IntDedupeMap) types.Type {
	switch t := t.(type) {
	case *types.IncompleteType:
		root := s.getTypeNode(t).FindRoot()
		if _, hole := root.Resolved.(*types.IncompleteType); hole {
			return root.Resolved
		}
		// The occurs check keeps resolved types acyclic; the visited
		// set bounds the rewrite anyway.
		if seen[root.Id()] {
			return root.Resolved
		}
		seen[root.Id()] = true
		resolved := s.resolve(root.Resolved, seen)
		delete(seen, root.Id())
		return resolved

	case *types.TupleType:
		fields := make([]types.Type, len(t.Fields))
		for i, field := range t.Fields {
			fields[i] = s.resolve(field, seen)
		}
		return &types.TupleType{Fields: fields}

	case *types.FuncType:
		args := make([]types.Type, len(t.ArgTypes))
		for i, arg := range t.ArgTypes {
			args[i] = s.resolve(arg, seen)
		}
		var constraints []types.TypeConstraint
		if len(t.TypeConstraints) > 0 {
			constraints = make([]types.TypeConstraint, len(t.TypeConstraints))
			for i, c := range t.TypeConstraints {
				constraints[i] = s.resolve(c, seen).(types.TypeConstraint)
			}
		}
		return &types.FuncType{
			ArgTypes:        args,
			RetType:         s.resolve(t.RetType, seen),
			TypeParams:      t.TypeParams,
			TypeConstraints: constraints,
		}

	case *types.RefType:
		return &types.RefType{Value: s.resolve(t.Value, seen)}

	case *types.TypeCall:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.resolve(arg, seen)
		}
		return &types.TypeCall{Func: s.resolve(t.Func, seen), Args: args}

	case *types.TypeRelation:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.resolve(arg, seen)
		}
		return &types.TypeRelation{
			Name:      t.Name,
			Func:      t.Func,
			Args:      args,
			NumInputs: t.NumInputs,
			Attrs:     t.Attrs,
		}
	}
	return t
}
