package cmd

import (
	"fmt"

	"github.com/crillab/gophersat/solver"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	dsctx "github.com/nlarith/dsolve/context"
	"github.com/nlarith/dsolve/satgw"
	"github.com/nlarith/dsolve/symbolic"
)

var demoCmd = &cobra.Command{
	Use:       "demo <name>",
	Short:     "Run a built-in demo scenario through the Cnfizer and SAT engine",
	ValidArgs: []string{"jorge"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		assertions := jorgeAssertions()
		ctx := dsctx.New(log)
		for _, f := range assertions {
			if err := ctx.Assert(f); err != nil {
				return errors.Wrap(err, "demo: cnfizer rejected an assertion")
			}
		}
		log.WithField("clauses", len(ctx.Clauses())).Info("jorge scenario CNFized")

		gw := satgw.NewGateway()
		pb, err := gw.Build(ctx.Clauses())
		if errors.Is(err, satgw.ErrQuantifiedClause) {
			return errors.Wrap(err, "demo: jorge has no quantifiers, this indicates a bug")
		}
		if err != nil {
			return errors.Wrap(err, "demo: could not build SAT problem")
		}
		s := solver.New(pb)
		status := s.Solve()
		fmt.Println(status)
		fmt.Println("(theory atoms were treated as opaque Boolean literals here: a real delta-SAT")
		fmt.Println(" verdict requires the nonlinear-arithmetic theory solver out of scope for this module.)")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// jorgeAssertions builds the "Jorge" 3-step hybrid-system transition
// scenario: two Boolean guards and two continuous state variables per
// step, linked by a polynomial update relation, mixing disjunctions
// of Boolean and continuous conditions across three time steps.
func jorgeAssertions() []symbolic.Formula {
	s0v1 := symbolic.NewVariable("s0.v1", symbolic.Boolean)
	s0v2 := symbolic.NewVariable("s0.v2", symbolic.Boolean)
	s0v3 := symbolic.NewVariable("s0.v3", symbolic.Continuous)
	s0v4 := symbolic.NewVariable("s0.v4", symbolic.Continuous)

	s1v1 := symbolic.NewVariable("s1.v1", symbolic.Boolean)
	s1v2 := symbolic.NewVariable("s1.v2", symbolic.Boolean)
	s1v3 := symbolic.NewVariable("s1.v3", symbolic.Continuous)
	s1v4 := symbolic.NewVariable("s1.v4", symbolic.Continuous)

	s2v1 := symbolic.NewVariable("s2.v1", symbolic.Boolean)
	s2v2 := symbolic.NewVariable("s2.v2", symbolic.Boolean)
	s2v3 := symbolic.NewVariable("s2.v3", symbolic.Continuous)
	s2v4 := symbolic.NewVariable("s2.v4", symbolic.Continuous)

	bv := symbolic.VarFormula
	tv := symbolic.TermVariable
	c := symbolic.Const

	transition := func(a3, a4, b3, b4 symbolic.Variable) symbolic.Formula {
		eq1 := symbolic.Eq(
			symbolic.Add(
				symbolic.Mul(c(98), tv(a3)),
				symbolic.Mul(c(200), tv(a4)),
				symbolic.Mul(c(2), tv(b3)),
				symbolic.Mul(c(-200), symbolic.Pow(tv(a3), 2), tv(a4)),
				symbolic.Mul(c(-70), symbolic.Pow(tv(a3), 2)),
				symbolic.Mul(c(-100), symbolic.Pow(tv(a3), 3)),
			),
			c(-70),
		)
		eq2 := symbolic.Eq(
			symbolic.Add(
				symbolic.Mul(c(146), tv(a3)),
				symbolic.Mul(c(102), tv(a4)),
				symbolic.Mul(c(-2), tv(b4)),
				symbolic.Mul(c(140), tv(a3), tv(a4)),
				symbolic.Mul(c(200), tv(a3), symbolic.Pow(tv(a4), 2)),
				symbolic.Mul(c(100), symbolic.Pow(tv(a3), 2), tv(a4)),
			),
			c(0),
		)
		return symbolic.And(eq1, eq2)
	}

	step := func(av1, av2, av3, av4, bv1, bv2, bv3, bv4 symbolic.Variable) symbolic.Formula {
		a1 := symbolic.Or(bv(av1), bv(av2), transition(av3, av4, bv3, bv4))
		a2 := symbolic.Or(bv(av1), symbolic.Or(symbolic.And(bv(av2), symbolic.Not(bv(bv2))), symbolic.And(symbolic.Not(bv(av2)), bv(bv2))))
		a3 := symbolic.Or(bv(av1), symbolic.And(symbolic.Eq(tv(av3), tv(bv3)), symbolic.Eq(tv(av4), tv(bv4))), symbolic.Not(bv(av2)))
		a4 := symbolic.Or(
			symbolic.And(bv(bv2), symbolic.Eq(tv(av3), tv(bv3)), symbolic.Eq(tv(av4), tv(bv4)), symbolic.Geq(tv(av3), c(1.5)), symbolic.Not(bv(av2))),
			symbolic.And(bv(bv2), symbolic.Eq(tv(av3), tv(bv3)), symbolic.Eq(tv(av4), tv(bv4)), symbolic.Leq(tv(av3), c(-1.5)), symbolic.Not(bv(av2))),
			symbolic.Not(bv(av1)),
		)
		return symbolic.And(a1, a2, a3, a4)
	}

	assert1 := symbolic.And(symbolic.Not(bv(s0v2)), symbolic.Not(symbolic.Leq(c(0.25), symbolic.Add(symbolic.Pow(tv(s0v3), 2), symbolic.Pow(tv(s0v4), 2)))))
	assert2 := step(s0v1, s0v2, s0v3, s0v4, s1v1, s1v2, s1v3, s1v4)
	assert3 := step(s1v1, s1v2, s1v3, s1v4, s2v1, s2v2, s2v3, s2v4)
	assert4 := bv(s2v2)

	return []symbolic.Formula{assert1, assert2, assert3, assert4}
}
