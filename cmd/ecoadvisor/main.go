// Command ecoadvisor is the smart living energy advisor.
package main

import (
	"os"

	"github.com/rshade/ecoadvisor/internal/cli"
	"github.com/rshade/ecoadvisor/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command and returns the process exit code.
func run(args []string) int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	return exitCode(root.Execute())
}

// exitCode maps a command error to an exit code.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
