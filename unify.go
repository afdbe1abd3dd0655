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
	"github.com/tensorlang/infer/internal/typeutil"
	"github.com/tensorlang/infer/types"
)

// Unify merges the equality constraints of dst and src and returns
// their unified type. The outcome does not depend on argument order.
func (s *TypeSolver) Unify(dst, src types.Type) (types.Type, error) {
	u := unifier{solver: s, tvMap: types.NewTypeMap()}
	return u.unify(dst, src)
}

// unifier performs one unification operation. Type variables are
// instantiated consistently through tvMap for the duration of the
// operation.
type unifier struct {
	solver *TypeSolver
	tvMap  types.TypeMap
}

func (u *unifier) unify(dst, src types.Type) (types.Type, error) {
	lhs := u.solver.getTypeNode(u.instantiate(dst)).FindRoot()
	rhs := u.solver.getTypeNode(u.instantiate(src)).FindRoot()
	if lhs == rhs {
		return lhs.Resolved, nil
	}

	_, lhsHole := lhs.Resolved.(*types.IncompleteType)
	_, rhsHole := rhs.Resolved.(*types.IncompleteType)
	switch {
	case lhsHole && rhsHole:
		// The older node survives as root.
		if rhs.Id() < lhs.Id() {
			lhs, rhs = rhs, lhs
		}
		u.solver.mergeFromTo(rhs, lhs)
		return lhs.Resolved, nil

	case lhsHole:
		if u.occurs(lhs, rhs.Resolved) {
			return nil, occursError(lhs.Resolved, rhs.Resolved)
		}
		u.solver.mergeFromTo(lhs, rhs)
		return rhs.Resolved, nil

	case rhsHole:
		if u.occurs(rhs, lhs.Resolved) {
			return nil, occursError(rhs.Resolved, lhs.Resolved)
		}
		u.solver.mergeFromTo(rhs, lhs)
		return lhs.Resolved, nil
	}

	resolved, err := u.visit(lhs.Resolved, rhs.Resolved)
	if err != nil {
		return nil, err
	}
	top := u.solver.getTypeNode(resolved).FindRoot()
	u.solver.mergeFromTo(lhs.FindRoot(), top)
	u.solver.mergeFromTo(rhs.FindRoot(), top)
	return resolved, nil
}

// instantiate replaces a type variable at the top of t with a fresh
// meta-variable of the same kind, reusing the meta-variable for
// repeated occurrences within the operation.
func (u *unifier) instantiate(t types.Type) types.Type {
	tv, ok := t.(*types.TypeVar)
	if !ok {
		return t
	}
	if hole, bound := u.tvMap.Get(tv); bound {
		return hole
	}
	hole := types.NewIncompleteType(tv.Kind)
	u.tvMap = u.tvMap.Set(tv, hole)
	return hole
}

// instantiateFuncType instantiates away every type parameter of ft.
// The result carries an empty parameter list: the polymorphism is
// dissolved into the solver graph.
func (u *unifier) instantiateFuncType(ft *types.FuncType) *types.FuncType {
	for _, param := range ft.TypeParams {
		u.instantiate(param)
	}
	bound := u.bind(ft).(*types.FuncType)
	return &types.FuncType{
		ArgTypes:        bound.ArgTypes,
		RetType:         bound.RetType,
		TypeConstraints: bound.TypeConstraints,
	}
}

// bind substitutes every type variable bound in tvMap throughout t.
func (u *unifier) bind(t types.Type) types.Type {
	switch t := t.(type) {
	case *types.TypeVar:
		if hole, bound := u.tvMap.Get(t); bound {
			return hole
		}
		return t

	case *types.TupleType:
		fields := make([]types.Type, len(t.Fields))
		for i, field := range t.Fields {
			fields[i] = u.bind(field)
		}
		return &types.TupleType{Fields: fields}

	case *types.FuncType:
		args := make([]types.Type, len(t.ArgTypes))
		for i, arg := range t.ArgTypes {
			args[i] = u.bind(arg)
		}
		var constraints []types.TypeConstraint
		if len(t.TypeConstraints) > 0 {
			constraints = make([]types.TypeConstraint, len(t.TypeConstraints))
			for i, c := range t.TypeConstraints {
				constraints[i] = u.bind(c).(types.TypeConstraint)
			}
		}
		return &types.FuncType{
			ArgTypes:        args,
			RetType:         u.bind(t.RetType),
			TypeParams:      t.TypeParams,
			TypeConstraints: constraints,
		}

	case *types.RefType:
		return &types.RefType{Value: u.bind(t.Value)}

	case *types.TypeCall:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = u.bind(arg)
		}
		return &types.TypeCall{Func: u.bind(t.Func), Args: args}

	case *types.TypeRelation:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = u.bind(arg)
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

// visit unifies two types structurally. Pairs without a structural
// rule succeed only when alpha-equal.
func (u *unifier) visit(a, b types.Type) (types.Type, error) {
	switch at := a.(type) {
	case *types.TupleType:
		bt, ok := b.(*types.TupleType)
		if !ok || len(at.Fields) != len(bt.Fields) {
			return nil, mismatchError(a, b)
		}
		fields := make([]types.Type, len(at.Fields))
		for i := range at.Fields {
			field, err := u.unify(at.Fields[i], bt.Fields[i])
			if err != nil {
				return nil, err
			}
			fields[i] = field
		}
		return &types.TupleType{Fields: fields}, nil

	case *types.FuncType:
		bt, ok := b.(*types.FuncType)
		if !ok ||
			len(at.ArgTypes) != len(bt.ArgTypes) ||
			len(at.TypeConstraints) != len(bt.TypeConstraints) {
			return nil, mismatchError(a, b)
		}
		ft1 := u.instantiateFuncType(at)
		ft2 := u.instantiateFuncType(bt)

		retType, err := u.unify(ft1.RetType, ft2.RetType)
		if err != nil {
			return nil, err
		}
		args := make([]types.Type, len(ft1.ArgTypes))
		for i := range ft1.ArgTypes {
			arg, err := u.unify(ft1.ArgTypes[i], ft2.ArgTypes[i])
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		var constraints []types.TypeConstraint
		if len(ft1.TypeConstraints) > 0 {
			constraints = make([]types.TypeConstraint, len(ft1.TypeConstraints))
			for i := range ft1.TypeConstraints {
				unified, err := u.unify(ft1.TypeConstraints[i], ft2.TypeConstraints[i])
				if err != nil {
					return nil, err
				}
				constraint, ok := unified.(types.TypeConstraint)
				if !ok {
					return nil, mismatchError(ft1.TypeConstraints[i], ft2.TypeConstraints[i])
				}
				constraints[i] = constraint
			}
		}
		return &types.FuncType{ArgTypes: args, RetType: retType, TypeConstraints: constraints}, nil

	case *types.RefType:
		bt, ok := b.(*types.RefType)
		if !ok {
			return nil, mismatchError(a, b)
		}
		value, err := u.unify(at.Value, bt.Value)
		if err != nil {
			return nil, err
		}
		return &types.RefType{Value: value}, nil

	case *types.TypeCall:
		bt, ok := b.(*types.TypeCall)
		if !ok || len(at.Args) != len(bt.Args) {
			return nil, mismatchError(a, b)
		}
		head, err := u.unify(at.Func, bt.Func)
		if err != nil {
			return nil, err
		}
		args := make([]types.Type, len(at.Args))
		for i := range at.Args {
			arg, err := u.unify(at.Args[i], bt.Args[i])
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return &types.TypeCall{Func: head, Args: args}, nil
	}

	if !types.AlphaEqual(a, b) {
		return nil, mismatchError(a, b)
	}
	return a, nil
}

// occurs reports whether root is reachable from any meta-variable in
// t. The ?a = ?a tautology is screened before this is called, so the
// check may be conservative.
func (u *unifier) occurs(root *typeutil.TypeNode, t types.Type) bool {
	switch t := t.(type) {
	case *types.IncompleteType:
		return u.solver.getTypeNode(t).FindRoot() == root

	case *types.TupleType:
		for _, field := range t.Fields {
			if u.occurs(root, field) {
				return true
			}
		}

	case *types.FuncType:
		if u.occurs(root, t.RetType) {
			return true
		}
		for _, arg := range t.ArgTypes {
			if u.occurs(root, arg) {
				return true
			}
		}
		for _, constraint := range t.TypeConstraints {
			if u.occurs(root, constraint) {
				return true
			}
		}

	case *types.RefType:
		return u.occurs(root, t.Value)

	case *types.TypeCall:
		if u.occurs(root, t.Func) {
			return true
		}
		for _, arg := range t.Args {
			if u.occurs(root, arg) {
				return true
			}
		}

	case *types.TypeRelation:
		for _, arg := range t.Args {
			if u.occurs(root, arg) {
				return true
			}
		}
	}
	return false
}
