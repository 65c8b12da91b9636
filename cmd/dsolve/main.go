// Command dsolve is the CLI front end for the dsolve Cnfizer module.
package main

import "github.com/nlarith/dsolve/pkg/cmd"

func main() {
	cmd.Execute()
}
