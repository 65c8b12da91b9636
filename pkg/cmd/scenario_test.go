package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crillab/gophersat/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlarith/dsolve/cnfizer"
	"github.com/nlarith/dsolve/satgw"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScenarioAndBuildFormulas(t *testing.T) {
	path := writeScenario(t, `
vars: [a, b, c, d]
assertions:
  - or: [a, b]
  - and:
      - or: [c, d]
      - not: a
`)
	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, sc.Vars)

	vars := sc.Declare()
	formulas, err := sc.BuildFormulas(vars)
	require.NoError(t, err)
	require.Len(t, formulas, 2)
}

func TestScenarioRejectsUndeclaredVariable(t *testing.T) {
	path := writeScenario(t, `
vars: [a]
assertions:
  - or: [a, z]
`)
	sc, err := LoadScenario(path)
	require.NoError(t, err)
	_, err = sc.BuildFormulas(sc.Declare())
	assert.Error(t, err)
}

func TestScenarioEndToEndThroughSolver(t *testing.T) {
	path := writeScenario(t, `
vars: [a, b]
assertions:
  - or: [a, b]
  - not: a
`)
	sc, err := LoadScenario(path)
	require.NoError(t, err)
	formulas, err := sc.BuildFormulas(sc.Declare())
	require.NoError(t, err)

	c := cnfizer.New()
	gw := satgw.NewGateway()
	for _, f := range formulas {
		clauses, err := c.Convert(f)
		require.NoError(t, err)
		pb, err := gw.Build(clauses)
		require.NoError(t, err)
		require.NotEqual(t, solver.Unsat, solver.New(pb).Solve())
	}
}
