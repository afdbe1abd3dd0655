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

// Walk visits t, then every child type reachable through tuple fields
// and function signatures, in preorder. Tensors and other opaque types
// have no children to visit. A new type variant that should expose its
// children to relation propagation adds a case here.
func Walk(t Type, visit func(Type)) {
	visit(t)
	switch t := t.(type) {
	case *TupleType:
		for _, field := range t.Fields {
			Walk(field, visit)
		}
	case *FuncType:
		Walk(t.RetType, visit)
		for _, arg := range t.ArgTypes {
			Walk(arg, visit)
		}
		for _, param := range t.TypeParams {
			Walk(param, visit)
		}
		for _, constraint := range t.TypeConstraints {
			Walk(constraint, visit)
		}
	}
}
