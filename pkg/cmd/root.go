// Package cmd implements the dsolve command-line tool: a thin wrapper
// around package context/cnfizer/satgw that exercises the Cnfizer
// end-to-end against YAML scenario files or a built-in demo scenario
// ("jorge").
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.StandardLogger()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dsolve",
	Short: "Tseitin-style CNF transformer for nonlinear real arithmetic with Boolean structure",
	Long: `dsolve converts propositional formulas over theory atoms into an
equisatisfiable clause list via definitional (Tseitin) CNF, and can
hand that clause list to a bundled CDCL SAT engine for purely-Boolean
scenarios.`,
}

// Execute runs the root command (subcommands and flags are registered
// by this package's init functions), printing any error to stderr and
// exiting with status 1. It is called by cmd/dsolve/main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("format", "text", "output format: text or json")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}
}

func jsonFormat(cmd *cobra.Command) bool {
	format, _ := cmd.Flags().GetString("format")
	return format == "json"
}
