package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gmatrix/matrix"
)

// MulResult is the JSON payload of the mul command.
type MulResult struct {
	A      uint32 `json:"a"`
	B      uint32 `json:"b"`
	Result uint32 `json:"result"`
}

// NewMulCommand creates the mul command.
func NewMulCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mul <a> <b>",
		Short: "Multiply two unsigned 32-bit integers (wraps on overflow)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.formatter(cmd)
			a, err := parseUint32(args[0])
			if err != nil {
				return out.Failure(err)
			}
			b, err := parseUint32(args[1])
			if err != nil {
				return out.Failure(err)
			}
			res := MulResult{A: a, B: b, Result: matrix.Mul(a, b)}
			return out.Success(res, fmt.Sprintf("%d\n", res.Result))
		},
	}
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, fmt.Sprintf("argument %q", s), err)
	}
	return uint32(v), nil
}
