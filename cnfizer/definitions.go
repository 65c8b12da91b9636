package cnfizer

import "github.com/nlarith/dsolve/symbolic"

// definition is one proxy ⇔ body pair recorded while visiting a
// compound subformula.
type definition struct {
	proxy symbolic.Variable
	body  symbolic.Formula
}

// definitionMap is an insertion-ordered association from proxy
// Boolean variables to the compound Formulas they abbreviate. Go's
// map type does not preserve insertion order, and emitting
// definitions in a deterministic order is required to reproduce
// stable output across runs, so this is backed by a plain ordered
// slice instead of a map.
type definitionMap struct {
	defs []definition
}

func (m *definitionMap) clear() {
	m.defs = m.defs[:0]
}

func (m *definitionMap) isEmpty() bool {
	return len(m.defs) == 0
}

// insert records proxy ⇔ body. The caller guarantees proxy is fresh
// within the current Convert call.
func (m *definitionMap) insert(proxy symbolic.Variable, body symbolic.Formula) {
	m.defs = append(m.defs, definition{proxy: proxy, body: body})
}

// entries returns the recorded definitions in insertion order.
func (m *definitionMap) entries() []definition {
	return m.defs
}
