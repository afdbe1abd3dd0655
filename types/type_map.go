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
	"github.com/benbjohnson/immutable"
)

var emptyTypes = immutable.NewSortedMap(nil)

var EmptyTypeMap = TypeMap{emptyTypes}

// TypeMap contains immutable mappings from type variables to types.
// The unifier threads one through each unification operation to
// instantiate type variables consistently.
type TypeMap struct {
	m *immutable.SortedMap
}

func NewTypeMap() TypeMap { return TypeMap{emptyTypes} }

// Get the number of entries in the map.
func (m TypeMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the type bound to a type variable.
func (m TypeMap) Get(tv *TypeVar) (Type, bool) {
	if m.m == nil {
		return nil, false
	}
	t, ok := m.m.Get(tv.Id())
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Bind a type variable without mutating the existing map.
func (m TypeMap) Set(tv *TypeVar, t Type) TypeMap {
	if m.m == nil {
		return TypeMap{emptyTypes.Set(tv.Id(), t)}
	}
	return TypeMap{m.m.Set(tv.Id(), t)}
}
