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

const arenaBlockSize = 64

// Arena block-allocates solver nodes. Addresses are stable for the
// lifetime of the arena and all nodes are released together when the
// arena is dropped.
type Arena struct {
	typeBlock []TypeNode
	relBlock  []RelationNode
	nextId    int32
}

// NewTypeNode allocates a fresh union-find node rooted at itself.
func (a *Arena) NewTypeNode(t types.Type) *TypeNode {
	if len(a.typeBlock) == 0 {
		a.typeBlock = make([]TypeNode, arenaBlockSize)
	}
	tn := &a.typeBlock[0]
	a.typeBlock = a.typeBlock[1:]
	tn.Resolved, tn.Parent, tn.id = t, tn, a.nextId
	a.nextId++
	return tn
}

// NewRelationNode allocates a fresh work item for rel.
func (a *Arena) NewRelationNode(rel *types.TypeRelation) *RelationNode {
	if len(a.relBlock) == 0 {
		a.relBlock = make([]RelationNode, arenaBlockSize)
	}
	rn := &a.relBlock[0]
	a.relBlock = a.relBlock[1:]
	rn.Rel = rel
	if len(rel.Args) > 0 {
		rn.TypeList = make([]*TypeNode, 0, len(rel.Args))
	}
	return rn
}

// Reset drops every allocation at once.
func (a *Arena) Reset() { *a = Arena{} }
