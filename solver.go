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

	"github.com/tensorlang/infer/internal/typeutil"
	"github.com/tensorlang/infer/types"
)

// DefaultMaxIterations bounds relation invocations per Solve call. The
// partial order on types bounds any well-behaved run far below this; a
// relation that oscillates hits the ceiling instead of spinning.
const DefaultMaxIterations = 1 << 20

// TypeSolver resolves a system of equality constraints and type
// relations over partially-unknown types.
//
// A solver cannot be used concurrently. Nodes allocated by one solver
// live exactly as long as the solver itself.
type TypeSolver struct {
	// MaxIterations limits relation invocations per Solve call;
	// non-positive means unlimited.
	MaxIterations int

	arena    typeutil.Arena
	tmap     map[types.Type]*typeutil.TypeNode
	relNodes []*typeutil.RelationNode
	queue    []*typeutil.RelationNode
	resolved int
	reporter types.Reporter
}

// Create a new type solver.
func NewSolver() *TypeSolver {
	s := &TypeSolver{
		MaxIterations: DefaultMaxIterations,
		tmap:          make(map[types.Type]*typeutil.TypeNode, 32),
	}
	s.reporter = &reporter{solver: s}
	return s
}

// getTypeNode interns t, allocating its union-find node on first
// sight.
func (s *TypeSolver) getTypeNode(t types.Type) *typeutil.TypeNode {
	if tn, ok := s.tmap[t]; ok {
		return tn
	}
	tn := s.arena.NewTypeNode(t)
	s.tmap[t] = tn
	return tn
}

// mergeFromTo makes to the representative of from's class. Relations
// observing from move onto to and are re-enqueued, since their view of
// the merged class may have changed.
func (s *TypeSolver) mergeFromTo(from, to *typeutil.TypeNode) {
	if from == to {
		return
	}
	from.Parent = to
	for _, r := range from.Rels {
		to.Rels = append(to.Rels, r)
		s.addToQueue(r)
	}
	from.Rels = nil
}

func (s *TypeSolver) addToQueue(r *typeutil.RelationNode) {
	if r.InQueue || r.Resolved {
		return
	}
	r.InQueue = true
	s.queue = append(s.queue, r)
}

// AddConstraint registers a constraint with the solver. Only type
// relations are supported.
func (s *TypeSolver) AddConstraint(c types.TypeConstraint) error {
	rel, ok := c.(*types.TypeRelation)
	if !ok {
		return errors.WithMessagef(ErrUnknownConstraint, "%s", c.TypeName())
	}
	rnode := s.arena.NewRelationNode(rel)
	s.relNodes = append(s.relNodes, rnode)
	for _, arg := range rel.Args {
		tnode := s.getTypeNode(arg)
		rnode.TypeList = append(rnode.TypeList, tnode)
		s.propagate(rnode, tnode.Resolved)
	}
	s.addToQueue(rnode)
	return nil
}

// Solve drains the worklist, invoking each queued relation with its
// resolved argument types. It reports whether every relation resolved;
// a false report without an error means some relation never received
// enough evidence.
func (s *TypeSolver) Solve() (bool, error) {
	steps := 0
	for len(s.queue) > 0 {
		steps++
		if s.MaxIterations > 0 && steps > s.MaxIterations {
			return false, errors.WithMessagef(ErrNoProgress, "after %d relation invocations", steps-1)
		}
		rnode := s.queue[0]
		s.queue = s.queue[1:]

		args := make([]types.Type, 0, len(rnode.TypeList))
		for _, tn := range rnode.TypeList {
			args = append(args, s.Resolve(tn.FindRoot().Resolved))
		}
		rel := rnode.Rel
		done, err := rel.Func(args, rel.NumInputs, rel.Attrs, s.reporter)
		// Cleared after the call so assignments made by the relation
		// cannot re-enqueue the relation itself.
		rnode.InQueue = false
		if err != nil {
			return false, errors.WithMessagef(err, "relation %s", rel.Name)
		}
		if done {
			s.resolved++
		}
		rnode.Resolved = done
	}
	return s.resolved == len(s.relNodes), nil
}
