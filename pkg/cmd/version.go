package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/blang/semver/v4"
	"github.com/spf13/cobra"
)

// Version is the released semantic version of this build, filled via
// -ldflags at release time. It falls back to the module version
// reported by debug.ReadBuildInfo for "go install" builds, matching
// go-corset/pkg/cmd/root.go's fallback.
var Version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dsolve version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("dsolve", resolveVersion())
	},
}

func resolveVersion() string {
	if Version != "" {
		if v, err := semver.Parse(Version); err == nil {
			return v.String()
		}
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(unknown)"
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
