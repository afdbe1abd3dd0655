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

import (
	"sync/atomic"
)

// Kind classifies type expressions. Meta-variables record the kind of
// the type they stand for, so instantiation preserves it.
type Kind int

const (
	// Kind of ordinary types
	KindType Kind = iota
	// Kind of shape variables
	KindShapeVar
	// Kind of base (element) types
	KindBaseType
	// Kind of shapes
	KindShape
	// Kind of type constraints
	KindConstraint
	// Kind of algebraic data type handles
	KindAdtHandle
)

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

func (t *IncompleteType) TypeName() string { return "IncompleteType" }
func (t *TypeVar) TypeName() string        { return "TypeVar" }
func (t *GlobalTypeVar) TypeName() string  { return "GlobalTypeVar" }
func (t *TupleType) TypeName() string      { return "TupleType" }
func (t *FuncType) TypeName() string       { return "FuncType" }
func (t *TensorType) TypeName() string     { return "TensorType" }
func (t *RefType) TypeName() string        { return "RefType" }
func (t *TypeCall) TypeName() string       { return "TypeCall" }
func (t *TypeRelation) TypeName() string   { return "TypeRelation" }

var nextId int32

// IncompleteType is a meta-variable: a placeholder the solver will
// replace with a concrete type.
type IncompleteType struct {
	Kind Kind
	id   int32
}

// Create a new meta-variable of the given kind.
func NewIncompleteType(kind Kind) *IncompleteType {
	return &IncompleteType{Kind: kind, id: atomic.AddInt32(&nextId, 1)}
}

// Id returns the unique identifier of the meta-variable.
func (t *IncompleteType) Id() int { return int(t.id) }

// TypeVar is a universally-quantified type parameter. During
// unification every type variable is instantiated to a fresh
// meta-variable of the same kind.
type TypeVar struct {
	Name string
	Kind Kind
	id   int32
}

// Create a new type variable with the given name and kind.
func NewTypeVar(name string, kind Kind) *TypeVar {
	return &TypeVar{Name: name, Kind: kind, id: atomic.AddInt32(&nextId, 1)}
}

// Id returns the unique identifier of the type variable.
func (t *TypeVar) Id() int { return int(t.id) }

// GlobalTypeVar names an algebraic data type head.
type GlobalTypeVar struct {
	Name string
	Kind Kind
}

// TupleType: `(int32, float32)`
type TupleType struct {
	Fields []Type
}

// FuncType: `fn <a>(a, int32) -> a`
//
// Unifying two function types dissolves their polymorphism: every type
// parameter is instantiated to a meta-variable and the unified type
// carries an empty parameter list.
type FuncType struct {
	ArgTypes        []Type
	RetType         Type
	TypeParams      []*TypeVar
	TypeConstraints []TypeConstraint
}

// TensorType: `Tensor[(10, 20), float32]`
type TensorType struct {
	Shape []IndexExpr
	DType string
}

// Scalar tensor of the given element type.
func ScalarType(dtype string) *TensorType {
	return &TensorType{DType: dtype}
}

// RefType: `ref(int32)`
type RefType struct {
	Value Type
}

// TypeCall applies an algebraic data type head to arguments:
// `list[int32]`
type TypeCall struct {
	Func Type
	Args []Type
}
