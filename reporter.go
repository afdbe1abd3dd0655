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

// reporter is the callback handle passed to relation functions,
// scoped to its solver. The solver is not an arithmetic prover: shape
// predicates fail only on constant contradictions and are otherwise
// trusted.
type reporter struct {
	solver *TypeSolver
}

// Assign declares that dst and src must be equal.
func (r *reporter) Assign(dst, src types.Type) error {
	_, err := r.solver.Unify(dst, src)
	return err
}

// Assert fails only when cond folds to a constant zero.
func (r *reporter) Assert(cond types.IndexExpr) bool {
	if c, ok := types.AsConstInt(cond); ok {
		return c != 0
	}
	return true
}

// AssertEQ fails only when lhs - rhs folds to a constant non-zero.
func (r *reporter) AssertEQ(lhs, rhs types.IndexExpr) bool {
	if diff, ok := types.AsConstInt(&types.Sub{A: lhs, B: rhs}); ok {
		return diff == 0
	}
	return true
}
