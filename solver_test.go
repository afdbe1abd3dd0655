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
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/tensorlang/infer/types"
)

func makeRel(name string, fn types.RelationFunc, args ...types.Type) *types.TypeRelation {
	return &types.TypeRelation{
		Name:      name,
		Func:      fn,
		Args:      args,
		NumInputs: len(args) - 1,
		Attrs:     types.EmptyAttrMap,
	}
}

// genType posts a relation whose final argument is a fresh
// meta-variable and returns that meta-variable.
func genType(t *testing.T, solver *TypeSolver, name string, fn types.RelationFunc, inputs ...types.Type) types.Type {
	out := types.NewIncompleteType(types.KindType)
	args := append(append([]types.Type{}, inputs...), out)
	if err := solver.AddConstraint(makeRel(name, fn, args...)); err != nil {
		t.Fatal(err)
	}
	return out
}

func mustSolve(t *testing.T, solver *TypeSolver) {
	solved, err := solver.Solve()
	if err != nil {
		t.Fatal(err)
	}
	if !solved {
		t.Fatalf("expected every relation to resolve")
	}
}

func TestBroadcastChain(t *testing.T) {
	solver := NewSolver()
	t0 := tensor("float32", 10, 20)
	t1 := tensor("float32", 10, 1)
	tc := tensor("float32", 10, 1, 1)

	t2 := genType(t, solver, "Broadcast", Broadcast, t0, t1)
	t3 := genType(t, solver, "Identity", Identity, t2)
	t4 := genType(t, solver, "Broadcast", Broadcast, t3, tc)
	mustSolve(t, solver)

	if s := types.TypeString(solver.Resolve(t2)); s != "Tensor[(10, 20), float32]" {
		t.Fatalf("type: %s", s)
	}
	if s := types.TypeString(solver.Resolve(t4)); s != "Tensor[(10, 10, 20), float32]" {
		t.Fatalf("type: %s", s)
	}
}

func TestBackwardSolving(t *testing.T) {
	solver := NewSolver()
	t0 := tensor("float32", 10, 20)
	tc := tensor("float32", 10, 1, 1)
	t1 := types.NewIncompleteType(types.KindType)

	t3 := genType(t, solver, "Broadcast", Broadcast, t0, t1)
	if err := solver.AddConstraint(makeRel("Identity", Identity, t1, tc)); err != nil {
		t.Fatal(err)
	}
	mustSolve(t, solver)

	if s := types.TypeString(solver.Resolve(t3)); s != "Tensor[(10, 10, 20), float32]" {
		t.Fatalf("type: %s", s)
	}
}

func TestRecursiveBackwardSolving(t *testing.T) {
	solver := NewSolver()
	tensor1 := tensor("float32", 10, 20)
	tensor2 := tensor("float32", 10, 1, 1)
	tensor3 := tensor("float32", 10)

	h1 := types.NewIncompleteType(types.KindType)
	h2 := types.NewIncompleteType(types.KindType)
	h3 := types.NewIncompleteType(types.KindType)

	tup1 := &types.TupleType{Fields: []types.Type{
		&types.TupleType{Fields: []types.Type{tensor1, tensor2}}, tensor3}}
	tup2 := &types.TupleType{Fields: []types.Type{
		&types.TupleType{Fields: []types.Type{h1, h2}}, h3}}

	if err := solver.AddConstraint(makeRel("Identity", Identity, tup1, tup2)); err != nil {
		t.Fatal(err)
	}
	mustSolve(t, solver)

	if !types.AlphaEqual(solver.Resolve(tup2), tup1) {
		t.Fatalf("type: %s", types.TypeString(solver.Resolve(tup2)))
	}
}

func TestRelationChain(t *testing.T) {
	solver := NewSolver()
	x := types.NewIncompleteType(types.KindType)
	y := types.NewIncompleteType(types.KindType)
	target := tensor("float32", 3, 4)

	if err := solver.AddConstraint(makeRel("Identity", Identity, x, y)); err != nil {
		t.Fatal(err)
	}
	if err := solver.AddConstraint(makeRel("Identity", Identity, y, target)); err != nil {
		t.Fatal(err)
	}
	mustSolve(t, solver)

	if s := types.TypeString(solver.Resolve(x)); s != "Tensor[(3, 4), float32]" {
		t.Fatalf("type: %s", s)
	}
}

func TestRelationRescheduling(t *testing.T) {
	solver := NewSolver()
	x := types.NewIncompleteType(types.KindType)
	out := types.NewIncompleteType(types.KindType)

	calls := 0
	forward := func(args []types.Type, numInputs int, attrs types.AttrMap, rep types.Reporter) (bool, error) {
		calls++
		if _, hole := args[0].(*types.IncompleteType); hole {
			return false, nil
		}
		return true, rep.Assign(args[1], args[0])
	}

	if err := solver.AddConstraint(makeRel("Forward", forward, x, out)); err != nil {
		t.Fatal(err)
	}
	if solved, err := solver.Solve(); err != nil || solved {
		t.Fatalf("solved: %v, error: %v", solved, err)
	}
	if calls != 1 {
		t.Fatalf("calls: %d", calls)
	}

	// New evidence re-enqueues the relation.
	if _, err := solver.Unify(x, tensor("float32", 7)); err != nil {
		t.Fatal(err)
	}
	mustSolve(t, solver)
	if calls != 2 {
		t.Fatalf("calls: %d", calls)
	}
	if s := types.TypeString(solver.Resolve(out)); s != "Tensor[(7), float32]" {
		t.Fatalf("type: %s", s)
	}
}

func TestNestedRefinementReschedules(t *testing.T) {
	solver := NewSolver()
	nested := types.NewIncompleteType(types.KindType)
	tup := &types.TupleType{Fields: []types.Type{nested, types.ScalarType("int32")}}
	out := types.NewIncompleteType(types.KindType)

	firstField := func(args []types.Type, numInputs int, attrs types.AttrMap, rep types.Reporter) (bool, error) {
		arg, ok := args[0].(*types.TupleType)
		if !ok {
			return false, nil
		}
		if _, hole := arg.Fields[0].(*types.IncompleteType); hole {
			return false, nil
		}
		return true, rep.Assign(args[1], arg.Fields[0])
	}

	if err := solver.AddConstraint(makeRel("FirstField", firstField, tup, out)); err != nil {
		t.Fatal(err)
	}
	if solved, err := solver.Solve(); err != nil || solved {
		t.Fatalf("solved: %v, error: %v", solved, err)
	}

	// Refining a meta-variable nested inside an operand must re-invoke
	// the relation.
	if _, err := solver.Unify(nested, tensor("float32", 2, 2)); err != nil {
		t.Fatal(err)
	}
	mustSolve(t, solver)
	if s := types.TypeString(solver.Resolve(out)); s != "Tensor[(2, 2), float32]" {
		t.Fatalf("type: %s", s)
	}
}

func TestElemwiseSymbolicShapes(t *testing.T) {
	solver := NewSolver()
	n := &types.SizeVar{Name: "n"}
	x := &types.TensorType{Shape: []types.IndexExpr{n, &types.IntImm{Value: 10}}, DType: "float32"}
	y := &types.TensorType{Shape: []types.IndexExpr{n, &types.IntImm{Value: 10}}, DType: "float32"}

	out := genType(t, solver, "Elemwise", Elemwise, x, y)
	mustSolve(t, solver)

	if s := types.TypeString(solver.Resolve(out)); s != "Tensor[(n, 10), float32]" {
		t.Fatalf("type: %s", s)
	}
}

func TestElemwiseShapeContradiction(t *testing.T) {
	solver := NewSolver()
	genType(t, solver, "Elemwise", Elemwise, tensor("float32", 3, 4), tensor("float32", 3, 5))

	_, err := solver.Solve()
	if errors.Cause(err) != ErrRelation {
		t.Fatalf("error: %v", err)
	}
}

func TestBroadcastIncompatibleDims(t *testing.T) {
	solver := NewSolver()
	genType(t, solver, "Broadcast", Broadcast, tensor("float32", 3, 4), tensor("float32", 3, 5))

	_, err := solver.Solve()
	if errors.Cause(err) != ErrRelation {
		t.Fatalf("error: %v", err)
	}
}

func TestBroadcastDTypeMismatch(t *testing.T) {
	solver := NewSolver()
	genType(t, solver, "Broadcast", Broadcast, tensor("float32", 3, 4), tensor("int32", 3, 4))

	_, err := solver.Solve()
	if errors.Cause(err) != ErrRelation {
		t.Fatalf("error: %v", err)
	}
}

func TestReshape(t *testing.T) {
	solver := NewSolver()
	out := types.NewIncompleteType(types.KindType)
	rel := &types.TypeRelation{
		Name:      "Reshape",
		Func:      Reshape,
		Args:      []types.Type{tensor("float32", 2, 6), out},
		NumInputs: 1,
		Attrs:     types.SingletonAttrMap("newshape", types.Shape(3, 4)),
	}
	if err := solver.AddConstraint(rel); err != nil {
		t.Fatal(err)
	}
	mustSolve(t, solver)

	if s := types.TypeString(solver.Resolve(out)); s != "Tensor[(3, 4), float32]" {
		t.Fatalf("type: %s", s)
	}
}

func TestReshapeElementCountMismatch(t *testing.T) {
	solver := NewSolver()
	rel := &types.TypeRelation{
		Name:      "Reshape",
		Func:      Reshape,
		Args:      []types.Type{tensor("float32", 2, 6), types.NewIncompleteType(types.KindType)},
		NumInputs: 1,
		Attrs:     types.SingletonAttrMap("newshape", types.Shape(5, 5)),
	}
	if err := solver.AddConstraint(rel); err != nil {
		t.Fatal(err)
	}
	_, err := solver.Solve()
	if errors.Cause(err) != ErrRelation {
		t.Fatalf("error: %v", err)
	}
}

type bogusConstraint struct{}

func (bogusConstraint) TypeName() string { return "BogusConstraint" }
func (bogusConstraint) Constraint()      {}

func TestUnknownConstraint(t *testing.T) {
	solver := NewSolver()
	err := solver.AddConstraint(bogusConstraint{})
	if errors.Cause(err) != ErrUnknownConstraint {
		t.Fatalf("error: %v", err)
	}
}

func TestIterationCeiling(t *testing.T) {
	solver := NewSolver()
	solver.MaxIterations = 1
	genType(t, solver, "Identity", Identity, tensor("float32", 1))
	genType(t, solver, "Identity", Identity, tensor("float32", 2))

	_, err := solver.Solve()
	if errors.Cause(err) != ErrNoProgress {
		t.Fatalf("error: %v", err)
	}
}

func TestUnresolvedRelationReportsFalse(t *testing.T) {
	solver := NewSolver()
	stuck := func(args []types.Type, numInputs int, attrs types.AttrMap, rep types.Reporter) (bool, error) {
		return false, nil
	}
	genType(t, solver, "Stuck", stuck, types.NewIncompleteType(types.KindType))

	solved, err := solver.Solve()
	if err != nil {
		t.Fatal(err)
	}
	if solved {
		t.Fatalf("expected an unresolved relation")
	}
}

func TestReporterAsserts(t *testing.T) {
	solver := NewSolver()
	n := &types.SizeVar{Name: "n"}

	probe := func(args []types.Type, numInputs int, attrs types.AttrMap, rep types.Reporter) (bool, error) {
		if !rep.Assert(&types.IntImm{Value: 2}) {
			t.Errorf("constant true assertion failed")
		}
		if rep.Assert(&types.IntImm{Value: 0}) {
			t.Errorf("constant false assertion passed")
		}
		if !rep.Assert(n) {
			t.Errorf("symbolic assertion was not trusted")
		}
		if !rep.AssertEQ(&types.IntImm{Value: 3}, &types.IntImm{Value: 3}) {
			t.Errorf("constant equality failed")
		}
		if rep.AssertEQ(&types.IntImm{Value: 3}, &types.IntImm{Value: 4}) {
			t.Errorf("constant inequality passed")
		}
		if !rep.AssertEQ(n, &types.IntImm{Value: 4}) {
			t.Errorf("symbolic equality was not trusted")
		}
		if !rep.AssertEQ(&types.Add{A: n, B: &types.IntImm{Value: 1}}, &types.Add{A: n, B: &types.IntImm{Value: 1}}) {
			t.Errorf("matching symbolic equality was not trusted")
		}
		return true, nil
	}
	genType(t, solver, "Probe", probe, tensor("float32", 1))
	mustSolve(t, solver)
}

func TestRelationErrorNamesRelation(t *testing.T) {
	solver := NewSolver()
	genType(t, solver, "Broadcast", Broadcast, tensor("float32", 3, 4), tensor("float32", 3, 5))

	_, err := solver.Solve()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "relation Broadcast") {
		t.Fatalf("error: %v", err)
	}
}
