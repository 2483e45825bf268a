package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gmatrix/matrix"
)

// Document is the YAML description of a matrix.
//
//	type: int
//	rows: 2
//	cols: 3
//	data: [1, 2, 3, 4, 5, 6]
//
// Alternatively "matrix: [[1, 2, 3], [4, 5, 6]]" lists rows directly; it wins over
// rows/cols/data when both are present.
type Document struct {
	Type   string    `yaml:"type"`
	Rows   uint32    `yaml:"rows"`
	Cols   uint32    `yaml:"cols"`
	Data   yaml.Node `yaml:"data"`
	Matrix yaml.Node `yaml:"matrix"`
}

// ErrMissingElement is returned for a null or blank element. yaml.v3 skips such
// items while decoding a sequence, which would shorten the data.
var ErrMissingElement = errors.New("null or empty element")

// Result is the outcome of building a Document.
type Result struct {
	Type string      `json:"type"`
	Rows uint32      `json:"rows"`
	Cols uint32      `json:"cols"`
	Data interface{} `json:"data"`
	Text string      `json:"text"`
}

// ReadDocument loads a Document from a YAML file.
func ReadDocument(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "read document", err)
	}
	return ParseDocument(raw)
}

// ParseDocument decodes a Document from YAML bytes.
func ParseDocument(raw []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, WrapExitError(ExitCommandError, "parse document", err)
	}
	return &doc, nil
}

// DocumentFromFlags builds a Document from --rows/--cols/--data values.
// Each data token is trimmed and becomes a YAML scalar, so it is typed the same
// way as file input.
func DocumentFromFlags(rows, cols uint32, data []string) *Document {
	seq := yaml.Node{Kind: yaml.SequenceNode}
	for _, tok := range data {
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: strings.TrimSpace(tok)})
	}
	return &Document{Rows: rows, Cols: cols, Data: seq}
}

// Build constructs the matrix described by doc with element type typ.
// Decoding problems are command errors; MatrixErr reasons are ExitFailure.
func (doc *Document) Build(typ string, opts ...matrix.Option) (*Result, error) {
	if err := checkType(typ); err != nil {
		return nil, WrapExitError(ExitCommandError, "element type", err)
	}
	switch typ {
	case TypeFloat:
		return build[float64](doc, typ, opts)
	default:
		return build[int64](doc, typ, opts)
	}
}

// build decodes doc into []T (or [][]T) and runs the matching constructor.
func build[T matrix.Numeric](doc *Document, typ string, opts []matrix.Option) (*Result, error) {
	var (
		m   *matrix.Matrix[T]
		err error
	)
	if doc.Matrix.Kind != 0 {
		if chkErr := checkRows(&doc.Matrix); chkErr != nil {
			return nil, chkErr
		}
		var rows [][]T
		if decErr := doc.Matrix.Decode(&rows); decErr != nil {
			return nil, WrapExitError(ExitCommandError, "decode matrix", decErr)
		}
		m, err = matrix.FromRows(rows, opts...)
	} else {
		var data []T
		if doc.Data.Kind != 0 {
			if chkErr := checkElements(&doc.Data, "data"); chkErr != nil {
				return nil, chkErr
			}
			if decErr := doc.Data.Decode(&data); decErr != nil {
				return nil, WrapExitError(ExitCommandError, fmt.Sprintf("decode %s data", typ), decErr)
			}
		}
		m, err = matrix.New(doc.Rows, doc.Cols, data, opts...)
	}
	if err != nil {
		return nil, WrapExitError(ExitFailure, "invalid matrix", err)
	}

	return &Result{
		Type: typ,
		Rows: m.Rows(),
		Cols: m.Cols(),
		Data: m.Elements(),
		Text: m.String(),
	}, nil
}

// checkElements rejects null or blank scalars in a sequence node.
// Non-sequence nodes are left to Decode, which reports the type mismatch.
func checkElements(seq *yaml.Node, what string) error {
	if seq.Kind != yaml.SequenceNode {
		return nil
	}
	for i, item := range seq.Content {
		if isMissing(item) {
			return WrapExitError(ExitCommandError, fmt.Sprintf("%s element %d", what, i), ErrMissingElement)
		}
	}
	return nil
}

// checkRows applies checkElements to every row of a "matrix:" node and rejects null rows.
func checkRows(rows *yaml.Node) error {
	if rows.Kind != yaml.SequenceNode {
		return nil
	}
	for i, row := range rows.Content {
		what := fmt.Sprintf("matrix row %d", i)
		if isMissing(row) {
			return WrapExitError(ExitCommandError, what, ErrMissingElement)
		}
		if err := checkElements(row, what); err != nil {
			return err
		}
	}
	return nil
}

func isMissing(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && (n.ShortTag() == "!!null" || strings.TrimSpace(n.Value) == "")
}
