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
	"github.com/tensorlang/infer/internal/util"
	"github.com/tensorlang/infer/types"
)

// propagate registers rel against t and every child type reachable
// within it, so that refining a nested meta-variable re-enqueues the
// relation.
func (s *TypeSolver) propagate(rel *typeutil.RelationNode, t types.Type) {
	seen := util.NewIntDedupeMap()
	types.Walk(t, func(child types.Type) {
		tn := s.getTypeNode(child)
		if seen[tn.Id()] {
			return
		}
		seen[tn.Id()] = true
		tn.Rels = append(tn.Rels, rel)
	})
	seen.Release()
}
