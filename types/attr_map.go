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

var emptyAttrs = immutable.NewSortedMap(nil)

var EmptyAttrMap = AttrMap{emptyAttrs}

// AttrMap contains immutable mappings from attribute names to opaque
// operator parameters. The solver never interprets the values; they are
// carried for relation functions.
type AttrMap struct {
	m *immutable.SortedMap
}

func NewAttrMap() AttrMap { return AttrMap{emptyAttrs} }

// Create an AttrMap with a single entry.
func SingletonAttrMap(name string, value interface{}) AttrMap {
	return AttrMap{emptyAttrs.Set(name, value)}
}

// Get the number of entries in the map.
func (m AttrMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the value for an attribute name.
func (m AttrMap) Get(name string) (interface{}, bool) {
	if m.m == nil {
		return nil, false
	}
	return m.m.Get(name)
}

// Set an attribute without mutating the existing map.
func (m AttrMap) Set(name string, value interface{}) AttrMap {
	if m.m == nil {
		return AttrMap{emptyAttrs.Set(name, value)}
	}
	return AttrMap{m.m.Set(name, value)}
}

// Iterate over entries in the map, sorted by name.
// If f returns false, iteration will be stopped.
func (m AttrMap) Range(f func(string, interface{}) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v) {
			return
		}
	}
}

// AttrMapBuilder enables in-place updates of a map before finalization.
type AttrMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewAttrMapBuilder() AttrMapBuilder {
	return AttrMapBuilder{immutable.NewSortedMapBuilder(emptyAttrs)}
}

// Set the value for the given attribute name in the builder.
func (b AttrMapBuilder) Set(name string, value interface{}) AttrMapBuilder {
	b.b.Set(name, value)
	return b
}

// Finalize the builder into an immutable map.
func (b AttrMapBuilder) Build() AttrMap {
	if b.b == nil {
		return EmptyAttrMap
	}
	return AttrMap{b.b.Map()}
}
