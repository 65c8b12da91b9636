package satgw

import (
	"fmt"

	"github.com/segmentio/encoding/json"

	"github.com/nlarith/dsolve/symbolic"
)

// Model is a satisfying assignment, keyed by a display label for each
// atomic formula the Gateway indexed (Boolean variable names or
// theory-atom text, disambiguated by identity when two distinct atoms
// would otherwise render identically).
type Model map[string]bool

// ModelFrom builds a Model from a solver.Solver's []bool binding
// (solver.Solver.Model()'s return value), indexed by the same
// 1-based variable numbering the Gateway assigned.
func (g *Gateway) ModelFrom(bindings []bool) (Model, error) {
	labels := g.displayLabels()
	m := make(Model, len(bindings))
	for i, bound := range bindings {
		if i >= len(labels) {
			return nil, fmt.Errorf("satgw: no atom registered for solver variable %d", i+1)
		}
		m[labels[i]] = bound
	}
	return m, nil
}

// displayLabels returns one label per indexed atom, in the same
// 1-based order AtomAt uses. Atoms are labeled by String() except
// where two distinct atoms (distinct Variable identities, in
// particular) happen to render to the same text, in which case their
// labels are disambiguated with symbolic.IdentityKey so the Model
// never silently merges two logically independent atoms under one
// key.
func (g *Gateway) displayLabels() []string {
	counts := make(map[string]int, len(g.atoms))
	for _, a := range g.atoms {
		counts[a.String()]++
	}
	labels := make([]string, len(g.atoms))
	for i, a := range g.atoms {
		text := a.String()
		if counts[text] > 1 {
			text = fmt.Sprintf("%s %s", text, symbolic.IdentityKey(a))
		}
		labels[i] = text
	}
	return labels
}

// MarshalJSON renders the model using segmentio/encoding/json, the
// fast drop-in encoding/json replacement go-corset and
// signadot-tony-format both use for their JSON codecs.
func (m Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]bool(m))
}
