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
	"github.com/pkg/errors"

	"github.com/tensorlang/infer/types"
)

// Any failure is fatal to the current inference run. The enclosing
// pass associates constraints with source locations and re-raises with
// context; errors.Cause recovers the classification underneath.
var (
	// ErrMismatch reports a structural unification failure: arity,
	// constructor, or alpha-inequality.
	ErrMismatch = errors.New("unable to unify types")
	// ErrOccurs reports a recursive equality constraint.
	ErrOccurs = errors.New("recursive type equality")
	// ErrUnknownConstraint reports a constraint kind the solver cannot
	// handle.
	ErrUnknownConstraint = errors.New("unsupported constraint kind")
	// ErrRelation reports a contradiction found by a relation function.
	ErrRelation = errors.New("type relation contradiction")
	// ErrNoProgress reports that Solve exceeded its iteration ceiling.
	ErrNoProgress = errors.New("solver iteration limit exceeded")
)

func mismatchError(a, b types.Type) error {
	return errors.WithMessagef(ErrMismatch, "%s with %s",
		types.TypeString(a), types.TypeString(b))
}

func occursError(hole, t types.Type) error {
	return errors.WithMessagef(ErrOccurs, "incomplete type %s occurs in %s, cannot unify",
		types.TypeString(hole), types.TypeString(t))
}

// RelationErrorf builds the error a relation function returns to signal
// a domain-specific contradiction.
func RelationErrorf(format string, args ...interface{}) error {
	return errors.WithMessagef(ErrRelation, format, args...)
}
