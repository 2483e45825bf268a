package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// InputOptions describes where a matrix comes from: a YAML file or flags.
type InputOptions struct {
	File string
	Type string
	Rows uint32
	Cols uint32
	Data []string
}

// bindInputFlags registers the shared input flags on cmd.
func bindInputFlags(cmd *cobra.Command, in *InputOptions) {
	cmd.Flags().StringVarP(&in.File, "file", "f", "", "YAML matrix document")
	cmd.Flags().StringVarP(&in.Type, "type", "t", "", "element type (int|float); default from document or MATRIXFMT_TYPE")
	cmd.Flags().Uint32VarP(&in.Rows, "rows", "r", 0, "number of rows")
	cmd.Flags().Uint32VarP(&in.Cols, "cols", "c", 0, "number of columns")
	cmd.Flags().StringSliceVarP(&in.Data, "data", "d", nil, "comma separated elements in row-major order")
	cmd.MarkFlagsMutuallyExclusive("file", "rows")
	cmd.MarkFlagsMutuallyExclusive("file", "cols")
	cmd.MarkFlagsMutuallyExclusive("file", "data")
}

// buildInput loads the document and builds the matrix it describes.
// Type precedence: --type, then the document's "type", then Config.ElementType.
func buildInput(opts *RootOptions, in *InputOptions) (*Result, error) {
	var (
		doc *Document
		err error
	)
	if in.File != "" {
		doc, err = ReadDocument(in.File)
		if err != nil {
			return nil, err
		}
	} else {
		doc = DocumentFromFlags(in.Rows, in.Cols, in.Data)
	}

	typ := opts.Config.ElementType
	switch {
	case in.Type != "":
		typ = in.Type
	case doc.Type != "":
		typ = doc.Type
	}
	if typ == "" {
		typ = TypeInt
	}

	opts.Logger.Debug("building matrix", zap.String("source", sourceName(in)), zap.String("type", typ))

	return doc.Build(typ, observeWith(opts.Logger))
}

func sourceName(in *InputOptions) string {
	if in.File != "" {
		return in.File
	}
	return "flags"
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	in := &InputOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a matrix row by row",
		Long: `Build a matrix from --rows/--cols/--data or a YAML document and print it:

  | 1, 2, 3 |
  | 4, 5, 6 |

Invalid shapes exit with code 1 and report the MatrixErr reason.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.formatter(cmd)
			res, err := buildInput(rootOpts, in)
			if err != nil {
				return out.Failure(err)
			}
			return out.Success(res, res.Text)
		},
	}
	bindInputFlags(cmd, in)

	return cmd
}
