package converters

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidText wraps the validation errors of a failed parse.
	ErrInvalidText = errors.New("converters: invalid graph text")

	// ErrInvalidJSON is returned when a JSON document does not decode into
	// a structurally valid graph.
	ErrInvalidJSON = errors.New("converters: invalid graph json")
)

// ErrorType classifies a ValidationError.
type ErrorType string

// Validation error types.
const (
	FormatError   ErrorType = "format_error"
	VertexInvalid ErrorType = "vertex_invalid"
	WeightInvalid ErrorType = "weight_invalid"
)

// ValidationError describes one problem in graph text. Line is 1-based;
// 0 marks whole-document problems such as exceeded limits.
type ValidationError struct {
	Type       ErrorType `json:"type" yaml:"type"`
	Line       int       `json:"lineNumber" yaml:"lineNumber"`
	Message    string    `json:"message" yaml:"message"`
	Suggestion string    `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Error implements error.
func (e ValidationError) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ParseOptions tunes ParseText.
type ParseOptions struct {
	AllowSelfLoops      bool `json:"allowSelfLoops" yaml:"allowSelfLoops"`
	AllowDuplicateEdges bool `json:"allowDuplicateEdges" yaml:"allowDuplicateEdges"`
	MaxNodes            int  `json:"maxNodes" yaml:"maxNodes"`
	MaxEdges            int  `json:"maxEdges" yaml:"maxEdges"`
}

// DefaultParseOptions returns the editor defaults: no self-loops, repeated
// pairs replace earlier ones, at most 1000 nodes and 1000 edges.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		AllowSelfLoops:      false,
		AllowDuplicateEdges: true,
		MaxNodes:            1000,
		MaxEdges:            1000,
	}
}

// EdgeDef is one parsed edge line.
type EdgeDef struct {
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Weight float64 `json:"weight" yaml:"weight"`
	Line   int     `json:"lineNumber" yaml:"lineNumber"`
}

// ParseResult is the outcome of ParseText. Vertices are sorted.
type ParseResult struct {
	Success  bool              `json:"success" yaml:"success"`
	Vertices []string          `json:"vertices" yaml:"vertices"`
	Edges    []EdgeDef         `json:"edges" yaml:"edges"`
	Errors   []ValidationError `json:"errors" yaml:"errors"`
}

// Err joins the validation errors under ErrInvalidText, or returns nil.
func (r ParseResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Errors)+1)
	errs = append(errs, ErrInvalidText)
	for _, e := range r.Errors {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// FormatOptions tunes FormatText.
type FormatOptions struct {
	SortEdges       bool `json:"sortEdges" yaml:"sortEdges"`
	IncludeComments bool `json:"includeComments" yaml:"includeComments"`
	Precision       int  `json:"precision" yaml:"precision"`
	Readable        bool `json:"readable" yaml:"readable"`
}

// DefaultFormatOptions returns sorted, compact output with two decimals.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{SortEdges: true, Precision: 2}
}
