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
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{metaNames: make(map[int]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.metaNames {
		delete(p.metaNames, k)
	}
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	metaNames map[int]string
	sb        strings.Builder
}

// Meta-variables are named in order of first appearance, so the same
// structure always prints the same way.
func (p *typePrinter) metaName(t *IncompleteType) string {
	if name, ok := p.metaNames[t.Id()]; ok {
		return name
	}
	i := len(p.metaNames)
	name := "?" + string(rune(97+i%26))
	if i >= 26 {
		name += strconv.Itoa(i / 26)
	}
	p.metaNames[t.Id()] = name
	return name
}

// TypeString returns a string representation of a Type.
func TypeString(t Type) string {
	p := newTypePrinter()
	p.typeString(t)
	s := p.sb.String()
	p.Release()
	return s
}

func (p *typePrinter) typeString(t Type) {
	switch t := t.(type) {
	case nil:
		p.sb.WriteString("<nil>")

	case *IncompleteType:
		p.sb.WriteString(p.metaName(t))

	case *TypeVar:
		p.sb.WriteString(t.Name)

	case *GlobalTypeVar:
		p.sb.WriteString(t.Name)

	case *TupleType:
		p.sb.WriteByte('(')
		for i, field := range t.Fields {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.typeString(field)
		}
		p.sb.WriteByte(')')

	case *FuncType:
		p.sb.WriteString("fn ")
		if len(t.TypeParams) > 0 {
			p.sb.WriteByte('<')
			for i, param := range t.TypeParams {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				p.sb.WriteString(param.Name)
			}
			p.sb.WriteByte('>')
		}
		p.sb.WriteByte('(')
		for i, arg := range t.ArgTypes {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.typeString(arg)
		}
		p.sb.WriteString(") -> ")
		p.typeString(t.RetType)

	case *TensorType:
		p.sb.WriteString("Tensor[(")
		for i, dim := range t.Shape {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(IndexString(dim))
		}
		p.sb.WriteString("), ")
		p.sb.WriteString(t.DType)
		p.sb.WriteByte(']')

	case *RefType:
		p.sb.WriteString("ref(")
		p.typeString(t.Value)
		p.sb.WriteByte(')')

	case *TypeCall:
		p.typeString(t.Func)
		p.sb.WriteByte('[')
		for i, arg := range t.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.typeString(arg)
		}
		p.sb.WriteByte(']')

	case *TypeRelation:
		p.sb.WriteString(t.Name)
		p.sb.WriteByte('(')
		for i, arg := range t.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.typeString(arg)
		}
		p.sb.WriteByte(')')

	default:
		p.sb.WriteString(t.TypeName())
	}
}
