package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/crillab/gophersat/solver"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	dsctx "github.com/nlarith/dsolve/context"
	"github.com/nlarith/dsolve/satgw"
)

var convertCmd = &cobra.Command{
	Use:   "convert <scenario.yaml>",
	Short: "CNFize a YAML scenario's assertions and solve the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, path string) error {
	sc, err := LoadScenario(path)
	if err != nil {
		return err
	}
	vars := sc.Declare()
	formulas, err := sc.BuildFormulas(vars)
	if err != nil {
		return errors.Wrap(err, "convert: could not build scenario formulas")
	}

	ctx := dsctx.New(log)
	for _, f := range formulas {
		if err := ctx.Assert(f); err != nil {
			return errors.Wrap(err, "convert: cnfizer rejected an assertion")
		}
	}
	log.WithField("clauses", len(ctx.Clauses())).Debug("finished converting scenario")

	gw := satgw.NewGateway()
	pb, err := gw.Build(ctx.Clauses())
	if err != nil {
		return errors.Wrap(err, "convert: could not build SAT problem from clauses")
	}

	s := solver.New(pb)
	status := s.Solve()

	if jsonFormat(cmd) {
		return printJSON(status, gw, s)
	}
	printText(status, gw, s)
	return nil
}

type convertResult struct {
	Status string      `json:"status"`
	Model  satgw.Model `json:"model,omitempty"`
}

func printJSON(status solver.Status, gw *satgw.Gateway, s *solver.Solver) error {
	res := convertResult{Status: status.String()}
	if status == solver.Sat {
		model, err := gw.ModelFrom(s.Model())
		if err != nil {
			return err
		}
		res.Model = model
	}
	enc, err := json.Marshal(res)
	if err != nil {
		return err
	}
	fmt.Println(string(enc))
	return nil
}

func printText(status solver.Status, gw *satgw.Gateway, s *solver.Solver) {
	colorize := isatty.IsTerminal(os.Stdout.Fd())
	sat := color.New(color.FgGreen, color.Bold)
	unsat := color.New(color.FgRed, color.Bold)
	width := tableWidth()

	switch status {
	case solver.Sat:
		if colorize {
			sat.Println("SATISFIABLE")
		} else {
			fmt.Println("SATISFIABLE")
		}
		model, err := gw.ModelFrom(s.Model())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		printModel(model, width)
	default:
		if colorize {
			unsat.Println("UNSATISFIABLE")
		} else {
			fmt.Println("UNSATISFIABLE")
		}
	}
}

func printModel(model satgw.Model, width int) {
	names := make([]string, 0, len(model))
	for name := range model {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		line := fmt.Sprintf("%s = %t", name, model[name])
		if len(line) > width {
			line = line[:width]
		}
		fmt.Println(line)
	}
}

// tableWidth returns the terminal width model output lines are cut to,
// falling back to 80 columns when stdout isn't a terminal (piped
// output, CI logs).
func tableWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
