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

// TypeConstraint is a potentially-unresolved constraint between types.
// Constraint kinds beyond TypeRelation may exist in the IR; the solver
// rejects the ones it cannot handle.
type TypeConstraint interface {
	Type
	// Constraint marks the type as a constraint.
	Constraint()
}

func (t *TypeRelation) Constraint() {}

// Reporter channels the conclusions of a relation function back into
// the solver that invoked it.
type Reporter interface {
	// Assign declares that dst and src must be equal.
	Assign(dst, src Type) error
	// Assert checks an advisory predicate on shape expressions. Only a
	// condition that folds to a constant zero fails; symbolic
	// conditions are trusted.
	Assert(cond IndexExpr) bool
	// AssertEQ checks an advisory equality between shape expressions.
	AssertEQ(lhs, rhs IndexExpr) bool
}

// RelationFunc computes a type relation given the current best-known
// argument types. The first numInputs arguments are inputs, the
// remainder outputs. The function reports true once it has fully
// constrained every output, or false to be rescheduled when more
// evidence arrives.
type RelationFunc func(args []Type, numInputs int, attrs AttrMap, rep Reporter) (bool, error)

// TypeRelation is a user-defined relation between types, carrying the
// typing rule of one operator.
type TypeRelation struct {
	Name      string
	Func      RelationFunc
	Args      []Type
	NumInputs int
	Attrs     AttrMap
}
