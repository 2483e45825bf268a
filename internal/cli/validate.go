package cli

import (
	"github.com/spf13/cobra"
)

// ValidationResult is the JSON payload of a successful validate run.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Rows  uint32 `json:"rows"`
	Cols  uint32 `json:"cols"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	in := &InputOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a matrix description without printing it",
		Long: `Run the construction checks on --rows/--cols/--data or a YAML document.

Prints "ok" for a valid matrix; otherwise exits with code 1 and the MatrixErr reason.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.formatter(cmd)
			res, err := buildInput(rootOpts, in)
			if err != nil {
				return out.Failure(err)
			}
			return out.Success(ValidationResult{Valid: true, Rows: res.Rows, Cols: res.Cols}, "ok\n")
		},
	}
	bindInputFlags(cmd, in)

	return cmd
}
