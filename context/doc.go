// Package context is the solver's variable-and-clause bookkeeper: it
// declares the free variables of an asserted formula, forwards the
// assertion to a cnfizer.Cnfizer, and auto-declares every proxy the
// Cnfizer introduces so the downstream SAT engine (package solver,
// via package satgw) sees a fully-declared variable universe.
//
// Whether callers must call DeclareVariable on proxy variables
// themselves is resolved in favor of "no": Context.Assert walks the
// free variables of every clause cnfizer.Convert returns and declares
// any it hasn't seen before, so callers never have to know a proxy
// was introduced.
package context
