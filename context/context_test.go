package context_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	dsctx "github.com/nlarith/dsolve/context"
	"github.com/nlarith/dsolve/symbolic"
)

var _ = Describe("Context", func() {
	var ctx *dsctx.Context

	BeforeEach(func() {
		ctx = dsctx.New(nil)
	})

	It("declares an asserted formula's free variables", func() {
		a := symbolic.NewVariable("a", symbolic.Boolean)
		Expect(ctx.Assert(symbolic.VarFormula(a))).To(Succeed())
		Expect(ctx.Declared(a)).To(BeTrue())
	})

	It("auto-declares proxy variables introduced by the Cnfizer", func() {
		a := symbolic.NewVariable("a", symbolic.Boolean)
		b := symbolic.NewVariable("b", symbolic.Boolean)
		before := len(ctx.Variables())
		f := symbolic.And(symbolic.Or(symbolic.VarFormula(a), symbolic.VarFormula(b)), symbolic.VarFormula(a))
		Expect(ctx.Assert(f)).To(Succeed())
		Expect(len(ctx.Variables())).To(BeNumerically(">", before+2), "expected at least one proxy beyond a and b to be declared")
	})

	It("accumulates clauses across multiple assertions", func() {
		a := symbolic.NewVariable("a", symbolic.Boolean)
		b := symbolic.NewVariable("b", symbolic.Boolean)
		Expect(ctx.Assert(symbolic.VarFormula(a))).To(Succeed())
		Expect(ctx.Assert(symbolic.VarFormula(b))).To(Succeed())
		Expect(ctx.Clauses()).To(HaveLen(2))
	})

	It("short-circuits an atomic assertion to a single unit clause", func() {
		a := symbolic.NewVariable("a", symbolic.Boolean)
		Expect(ctx.Assert(symbolic.VarFormula(a))).To(Succeed())
		Expect(ctx.Clauses()).To(HaveLen(1))
	})
})
