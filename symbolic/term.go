package symbolic

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// TermKind tags the shape of a Term node.
type TermKind int

// Term kinds. Nonlinear real arithmetic only needs these few shapes;
// the Cnfizer itself never inspects a Term's kind, it only ever
// forwards Terms between theory atoms unchanged.
const (
	TermConst TermKind = iota
	TermVar
	TermAdd
	TermMul
	TermPow
	TermNeg
)

// Term is a real-valued arithmetic expression. The Cnfizer treats
// Terms as opaque payloads of theory atoms; it never decomposes them.
type Term interface {
	Kind() TermKind
	String() string
	// GetFreeVariables returns the Continuous and Boolean variables
	// occurring in the term (theory atoms can in principle compare
	// against an indicator variable, so this is not restricted to
	// Continuous variables).
	GetFreeVariables() VariableSet
}

// Const builds a real-valued constant term.
func Const(v float64) Term { return constTerm(v) }

type constTerm float64

func (c constTerm) Kind() TermKind           { return TermConst }
func (c constTerm) String() string           { return strconv.FormatFloat(float64(c), 'g', -1, 64) }
func (c constTerm) GetFreeVariables() VariableSet { return VariableSet{} }

// TermVariable wraps a Variable (normally Continuous) as a Term.
func TermVariable(v Variable) Term { return varTerm{v} }

type varTerm struct{ v Variable }

func (t varTerm) Kind() TermKind { return TermVar }
func (t varTerm) String() string { return t.v.name }
func (t varTerm) GetFreeVariables() VariableSet {
	return NewVariableSet(t.v)
}

// Add builds the sum of one or more terms.
func Add(terms ...Term) Term { return addTerm(terms) }

type addTerm []Term

func (a addTerm) Kind() TermKind { return TermAdd }
func (a addTerm) String() string { return joinTerms(a, " + ") }
func (a addTerm) GetFreeVariables() VariableSet { return unionFreeVars(a) }

// Mul builds the product of one or more terms.
func Mul(terms ...Term) Term { return mulTerm(terms) }

type mulTerm []Term

func (m mulTerm) Kind() TermKind { return TermMul }
func (m mulTerm) String() string { return joinTerms(m, " * ") }
func (m mulTerm) GetFreeVariables() VariableSet { return unionFreeVars(m) }

// Pow builds base raised to the (integral, non-negative) exponent.
func Pow(base Term, exponent int) Term { return powTerm{base, exponent} }

type powTerm struct {
	base     Term
	exponent int
}

func (p powTerm) Kind() TermKind { return TermPow }
func (p powTerm) String() string { return fmt.Sprintf("%s^%d", p.base.String(), p.exponent) }
func (p powTerm) GetFreeVariables() VariableSet { return p.base.GetFreeVariables() }

// TermNegate builds the arithmetic negation of a term.
func TermNegate(t Term) Term { return negTerm{t} }

type negTerm struct{ operand Term }

func (n negTerm) Kind() TermKind { return TermNeg }
func (n negTerm) String() string { return "-" + n.operand.String() }
func (n negTerm) GetFreeVariables() VariableSet { return n.operand.GetFreeVariables() }

func joinTerms(ts []Term, sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

func unionFreeVars(ts []Term) VariableSet {
	var out VariableSet
	for _, t := range ts {
		out = out.Union(t.GetFreeVariables())
	}
	return out
}

// Eval evaluates t against a model mapping Continuous variable names
// to float64 values, using expr-lang/expr as the arithmetic evaluator:
// exprSyntax(t) is compiled and run against model as the expr
// environment. This is a testing/sampling convenience for exercising
// theory atoms numerically; it is never called by cnfizer itself.
func Eval(t Term, model map[string]float64) (float64, error) {
	env := make(map[string]interface{}, len(model)+1)
	for k, v := range model {
		env[k] = v
	}
	env["pow"] = func(base float64, exp int) float64 { return math.Pow(base, float64(exp)) }
	program, err := expr.Compile(exprSyntax(t), expr.Env(env), expr.AsFloat64())
	if err != nil {
		return 0, fmt.Errorf("symbolic: could not compile term %q: %w", t, err)
	}
	out, err := vmRun(program, env)
	if err != nil {
		return 0, fmt.Errorf("symbolic: could not evaluate term %q: %w", t, err)
	}
	return out, nil
}

func vmRun(program *vm.Program, env map[string]interface{}) (float64, error) {
	out, err := expr.Run(program, env)
	if err != nil {
		return 0, err
	}
	f, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("unexpected result type %T", out)
	}
	return f, nil
}

// exprSyntax renders t using expr-lang/expr's infix syntax, which
// differs from Term.String in how Pow is spelled and in wrapping a
// negation in parentheses.
func exprSyntax(t Term) string {
	switch t := t.(type) {
	case constTerm:
		return t.String()
	case varTerm:
		return t.v.name
	case addTerm:
		return "(" + joinExpr(t, " + ") + ")"
	case mulTerm:
		return "(" + joinExpr(t, " * ") + ")"
	case powTerm:
		return fmt.Sprintf("pow(%s, %d)", exprSyntax(t.base), t.exponent)
	case negTerm:
		return "(-" + exprSyntax(t.operand) + ")"
	default:
		return t.String()
	}
}

func joinExpr(ts []Term, sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = exprSyntax(t)
	}
	return strings.Join(parts, sep)
}
