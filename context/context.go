package context

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nlarith/dsolve/cnfizer"
	"github.com/nlarith/dsolve/symbolic"
)

// Context declares variables, accumulates assertions, and forwards
// each one through a Cnfizer, building up the clause database a
// downstream SAT engine will eventually consume (via package satgw).
type Context struct {
	cnfizer  *cnfizer.Cnfizer
	declared map[uint64]symbolic.Variable
	clauses  []symbolic.Formula
	log      *logrus.Entry
}

// New returns an empty Context. If logger is nil, logrus.StandardLogger
// is used, matching go-corset/pkg/cmd's package-level logger pattern.
func New(logger *logrus.Logger) *Context {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Context{
		cnfizer:  cnfizer.New(),
		declared: make(map[uint64]symbolic.Variable),
		log:      logger.WithField("component", "context"),
	}
}

// DeclareVariable registers v as known to this context. Declaring the
// same variable twice is a no-op.
func (c *Context) DeclareVariable(v symbolic.Variable) {
	if _, ok := c.declared[v.ID()]; ok {
		return
	}
	c.declared[v.ID()] = v
	c.log.WithFields(logrus.Fields{"variable": v.Name(), "kind": v.Kind().String()}).Debug("declared variable")
}

// Declared reports whether v has been declared in this context.
func (c *Context) Declared(v symbolic.Variable) bool {
	_, ok := c.declared[v.ID()]
	return ok
}

// Variables returns every variable declared so far, including
// Cnfizer-introduced proxies.
func (c *Context) Variables() []symbolic.Variable {
	out := make([]symbolic.Variable, 0, len(c.declared))
	for _, v := range c.declared {
		out = append(out, v)
	}
	return out
}

// Clauses returns the accumulated clause database.
func (c *Context) Clauses() []symbolic.Formula {
	return c.clauses
}

// Assert declares f's free variables, CNFizes f, declares every
// proxy variable the Cnfizer introduced, and appends the resulting
// clauses to the clause database.
func (c *Context) Assert(f symbolic.Formula) error {
	for _, v := range f.GetFreeVariables().Slice() {
		c.DeclareVariable(v)
	}
	clauses, err := c.cnfizer.Convert(f)
	if err != nil {
		c.log.WithError(err).Error("cnfizer rejected assertion")
		return errors.Wrap(err, "context: could not CNFize assertion")
	}
	proxies := 0
	for _, clause := range clauses {
		for _, v := range clause.GetFreeVariables().Slice() {
			if !c.Declared(v) {
				proxies++
			}
			c.DeclareVariable(v)
		}
	}
	c.log.WithFields(logrus.Fields{
		"clauses": len(clauses),
		"proxies": proxies,
	}).Debug("asserted formula")
	c.clauses = append(c.clauses, clauses...)
	return nil
}
