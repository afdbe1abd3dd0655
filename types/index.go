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
	"strconv"
)

// IndexExpr is a scalar shape expression: a dimension extent, possibly
// symbolic. The solver folds constant expressions and trusts the rest.
type IndexExpr interface {
	IndexName() string
}

func (e *IntImm) IndexName() string  { return "IntImm" }
func (e *SizeVar) IndexName() string { return "SizeVar" }
func (e *Add) IndexName() string     { return "Add" }
func (e *Sub) IndexName() string     { return "Sub" }
func (e *Mul) IndexName() string     { return "Mul" }

// Constant extent: `10`
type IntImm struct {
	Value int64
}

// Symbolic extent: `n`
type SizeVar struct {
	Name string
}

type Add struct {
	A, B IndexExpr
}

type Sub struct {
	A, B IndexExpr
}

type Mul struct {
	A, B IndexExpr
}

// Shape builds a constant shape from dimension extents.
func Shape(dims ...int64) []IndexExpr {
	shape := make([]IndexExpr, len(dims))
	for i, d := range dims {
		shape[i] = &IntImm{Value: d}
	}
	return shape
}

// AsConstInt folds e and returns its constant value, if it has one.
func AsConstInt(e IndexExpr) (int64, bool) {
	switch e := e.(type) {
	case *IntImm:
		return e.Value, true
	case *Add:
		a, aok := AsConstInt(e.A)
		b, bok := AsConstInt(e.B)
		return a + b, aok && bok
	case *Sub:
		a, aok := AsConstInt(e.A)
		b, bok := AsConstInt(e.B)
		return a - b, aok && bok
	case *Mul:
		a, aok := AsConstInt(e.A)
		b, bok := AsConstInt(e.B)
		return a * b, aok && bok
	}
	return 0, false
}

// IndexEqual reports whether two shape expressions are structurally
// equal. Constant expressions compare by value, symbolic extents by
// name.
func IndexEqual(a, b IndexExpr) bool {
	if ca, ok := AsConstInt(a); ok {
		cb, ok := AsConstInt(b)
		return ok && ca == cb
	}
	switch a := a.(type) {
	case *SizeVar:
		b, ok := b.(*SizeVar)
		return ok && a.Name == b.Name
	case *Add:
		b, ok := b.(*Add)
		return ok && IndexEqual(a.A, b.A) && IndexEqual(a.B, b.B)
	case *Sub:
		b, ok := b.(*Sub)
		return ok && IndexEqual(a.A, b.A) && IndexEqual(a.B, b.B)
	case *Mul:
		b, ok := b.(*Mul)
		return ok && IndexEqual(a.A, b.A) && IndexEqual(a.B, b.B)
	}
	return false
}

// IndexString returns a string representation of a shape expression.
func IndexString(e IndexExpr) string {
	switch e := e.(type) {
	case *IntImm:
		return strconv.FormatInt(e.Value, 10)
	case *SizeVar:
		return e.Name
	case *Add:
		return "(" + IndexString(e.A) + " + " + IndexString(e.B) + ")"
	case *Sub:
		return "(" + IndexString(e.A) + " - " + IndexString(e.B) + ")"
	case *Mul:
		return "(" + IndexString(e.A) + "*" + IndexString(e.B) + ")"
	}
	return "?"
}
