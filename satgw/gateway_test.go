package satgw

import (
	"testing"

	"github.com/crillab/gophersat/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlarith/dsolve/cnfizer"
	"github.com/nlarith/dsolve/symbolic"
)

func TestBuildAndSolveSatisfiable(t *testing.T) {
	a := symbolic.VarFormula(symbolic.NewVariable("a", symbolic.Boolean))
	b := symbolic.VarFormula(symbolic.NewVariable("b", symbolic.Boolean))
	f := symbolic.And(symbolic.Or(a, b), symbolic.Not(symbolic.And(a, b)))

	c := cnfizer.New()
	clauses, err := c.Convert(f)
	require.NoError(t, err)

	g := NewGateway()
	pb, err := g.Build(clauses)
	require.NoError(t, err)

	s := solver.New(pb)
	status := s.Solve()
	assert.Equal(t, solver.Sat, status)

	model, err := g.ModelFrom(s.Model())
	require.NoError(t, err)
	assert.True(t, model["a"] || model["b"])
	assert.False(t, model["a"] && model["b"])
}

func TestBuildAndSolveUnsatisfiable(t *testing.T) {
	a := symbolic.VarFormula(symbolic.NewVariable("a", symbolic.Boolean))
	f := symbolic.And(a, symbolic.Not(a))

	c := cnfizer.New()
	clauses, err := c.Convert(f)
	require.NoError(t, err)

	g := NewGateway()
	pb, err := g.Build(clauses)
	require.NoError(t, err)

	s := solver.New(pb)
	assert.Equal(t, solver.Unsat, s.Solve())
}

func TestBuildRejectsQuantifiedClause(t *testing.T) {
	x := symbolic.NewVariable("x", symbolic.Continuous)
	y := symbolic.NewVariable("y", symbolic.Continuous)
	clause := symbolic.Forall(symbolic.NewVariableSet(y), symbolic.Gt(symbolic.TermVariable(x), symbolic.TermVariable(y)))

	g := NewGateway()
	_, err := g.Build([]symbolic.Formula{clause})
	assert.ErrorIs(t, err, ErrQuantifiedClause)
}

func TestSameNameDistinctVariablesGetDistinctLiterals(t *testing.T) {
	a1 := symbolic.VarFormula(symbolic.NewVariable("dup", symbolic.Boolean))
	a2 := symbolic.VarFormula(symbolic.NewVariable("dup", symbolic.Boolean))

	g := NewGateway()
	_, err := g.Build([]symbolic.Formula{symbolic.Or(a1, symbolic.Not(a2))})
	require.NoError(t, err)

	assert.Equal(t, 2, g.NumAtoms(), "two distinct-identity same-name variables must get two distinct solver literals")
}

func TestModelFromDisambiguatesSameNameDistinctVariables(t *testing.T) {
	a1 := symbolic.VarFormula(symbolic.NewVariable("dup", symbolic.Boolean))
	a2 := symbolic.VarFormula(symbolic.NewVariable("dup", symbolic.Boolean))

	g := NewGateway()
	pb, err := g.Build([]symbolic.Formula{symbolic.Or(a1, a2)})
	require.NoError(t, err)

	s := solver.New(pb)
	require.Equal(t, solver.Sat, s.Solve())

	model, err := g.ModelFrom(s.Model())
	require.NoError(t, err)
	assert.Len(t, model, 2, "two distinct-identity same-name variables must produce two distinct model entries, not one overwritten entry")
}

func TestModelMarshalsAsJSON(t *testing.T) {
	m := Model{"a": true, "b": false}
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"a":true`)
}
