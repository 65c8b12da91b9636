package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/nlarith/dsolve/symbolic"
)

// Scenario is the on-disk YAML shape accepted by "dsolve convert" for
// purely-Boolean problems (no theory atoms, no quantifiers): a flat
// list of variable names and a list of assertions built from and/or/
// not nodes over those names.
//
//	vars: [a, b, c, d]
//	assertions:
//	  - or: [a, b]
//	  - and:
//	      - or: [c, d]
//	      - not: a
type Scenario struct {
	Vars       []string      `yaml:"vars"`
	Assertions []interface{} `yaml:"assertions"`
}

// LoadScenario reads and parses a YAML scenario file at path.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read scenario %q: %w", path, err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("could not parse scenario %q: %w", path, err)
	}
	return &sc, nil
}

// Declare builds one fresh Boolean symbolic.Variable per name in
// sc.Vars, returning a lookup table keyed by name.
func (sc *Scenario) Declare() map[string]symbolic.Formula {
	vars := make(map[string]symbolic.Formula, len(sc.Vars))
	for _, name := range sc.Vars {
		vars[name] = symbolic.VarFormula(symbolic.NewVariable(name, symbolic.Boolean))
	}
	return vars
}

// BuildFormulas converts every entry of sc.Assertions into a
// symbolic.Formula using the and/or/not node shapes.
func (sc *Scenario) BuildFormulas(vars map[string]symbolic.Formula) ([]symbolic.Formula, error) {
	out := make([]symbolic.Formula, 0, len(sc.Assertions))
	for i, node := range sc.Assertions {
		f, err := buildNode(node, vars)
		if err != nil {
			return nil, fmt.Errorf("assertions[%d]: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}

func buildNode(node interface{}, vars map[string]symbolic.Formula) (symbolic.Formula, error) {
	switch v := node.(type) {
	case string:
		return resolveLiteral(v, vars)
	case bool:
		if v {
			return symbolic.True, nil
		}
		return symbolic.False, nil
	case map[string]interface{}:
		return buildCompound(v, vars)
	default:
		return nil, fmt.Errorf("unsupported scenario node %#v", node)
	}
}

func resolveLiteral(name string, vars map[string]symbolic.Formula) (symbolic.Formula, error) {
	switch name {
	case "true":
		return symbolic.True, nil
	case "false":
		return symbolic.False, nil
	}
	f, ok := vars[name]
	if !ok {
		return nil, fmt.Errorf("undeclared variable %q (add it to the scenario's vars list)", name)
	}
	return f, nil
}

func buildCompound(node map[string]interface{}, vars map[string]symbolic.Formula) (symbolic.Formula, error) {
	if len(node) != 1 {
		return nil, fmt.Errorf("compound node must have exactly one of and/or/not, got %v", node)
	}
	if operands, ok := node["and"]; ok {
		subs, err := buildOperandList(operands, vars)
		if err != nil {
			return nil, err
		}
		return symbolic.And(subs...), nil
	}
	if operands, ok := node["or"]; ok {
		subs, err := buildOperandList(operands, vars)
		if err != nil {
			return nil, err
		}
		return symbolic.Or(subs...), nil
	}
	if operand, ok := node["not"]; ok {
		sub, err := buildNode(operand, vars)
		if err != nil {
			return nil, err
		}
		return symbolic.Not(sub), nil
	}
	return nil, fmt.Errorf("compound node must have exactly one of and/or/not, got %v", node)
}

func buildOperandList(raw interface{}, vars map[string]symbolic.Formula) ([]symbolic.Formula, error) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("and/or operands must be a list, got %#v", raw)
	}
	out := make([]symbolic.Formula, 0, len(list))
	for _, item := range list {
		f, err := buildNode(item, vars)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
