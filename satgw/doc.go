// Package satgw adapts the clause list produced by package cnfizer
// into a package solver Problem: the concrete downstream CDCL SAT
// engine that Convert's output is meant to feed.
//
// Theory atoms (symbolic.KindEq...KindLeq) are treated as opaque
// Boolean literals here: the package delegates theory atoms to a
// downstream theory solver. There is no theory solver in this
// package — an atom is simply assigned its own propositional
// variable, the same way bf.go indexes a Boolean variable. Soundly
// discharging a theory atom's real semantics is the job of a theory
// solver sitting on top of this package's Model output.
package satgw
