// Command matrixfmt builds, validates and renders row-major matrices.
//
//	matrixfmt render --rows 2 --cols 3 --data 1,2,3,4,5,6
//	matrixfmt render --file m.yaml --format json
//	matrixfmt validate --rows 3 --cols 3 --data 1,2,3,4
//	matrixfmt mul 2 4
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gmatrix/internal/cli"
)

func main() {
	cfg, err := cli.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCommandError)
	}

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
