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

package typeutil

import (
	"github.com/tensorlang/infer/types"
)

// TypeNode is a union-find node owning the solver's view of one type.
// Only the root of an equivalence class holds the authoritative
// resolved type.
type TypeNode struct {
	// Resolved is the current best knowledge of this node's type.
	Resolved types.Type
	// Parent links toward the class representative; a root links to
	// itself.
	Parent *TypeNode
	// Rels holds every relation observing this node, to be re-enqueued
	// when the node's type changes. A merge moves the list onto the
	// new root and clears it here; resolved relations are filtered at
	// enqueue time.
	Rels []*RelationNode

	id int32
}

// Id returns the allocation order of the node. Older nodes win ties
// when two unresolved classes merge, keeping runs deterministic.
func (tn *TypeNode) Id() int { return int(tn.id) }

// FindRoot returns the class representative, compressing the path
// behind it.
func (tn *TypeNode) FindRoot() *TypeNode {
	root := tn
	for root.Parent != root {
		root = root.Parent
	}
	for tn.Parent != tn {
		tn.Parent, tn = root, tn.Parent
	}
	return root
}

// RelationNode is one pending or resolved invocation of a relation
// function over interned operands.
type RelationNode struct {
	// Rel is the relation being computed. Immutable.
	Rel *types.TypeRelation
	// TypeList holds one interned node per operand, in operand order.
	TypeList []*TypeNode
	// InQueue is true iff the node is currently in the solver's queue.
	InQueue bool
	// Resolved is set once the relation function reports success and
	// is never reset: a resolved relation has already pinned down its
	// outputs, so later refinements flow through the type graph
	// without re-running it.
	Resolved bool
}
