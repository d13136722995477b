// Package pipeline provides the load → solve → decompose → render pipeline
// for flowtower.
//
// Every entry point of the CLI (solve, render, inspect, watch mode) goes
// through a [Runner], so logging, timings and observability hooks are the
// same regardless of how a network is analyzed.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: read a network description (or the built-in example) and build it
//  2. Solve: compute a maximum flow with Edmonds–Karp
//  3. Decompose: attribute flow to (terminal, store) pairs
//  4. Render: generate diagrams in the requested formats (optional)
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "network.toml",
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Flow.MaxFlow)
//	svg := result.Artifacts["svg"]
//
// Stages can also be run individually with [Runner.Load], [Runner.Solve],
// [Decompose] and [Runner.Render].
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/flowtower/pkg/errors"
	"github.com/matzehuels/flowtower/pkg/flow"
	flowio "github.com/matzehuels/flowtower/pkg/io"
	"github.com/matzehuels/flowtower/pkg/logistics"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultThreshold is the bottleneck highlight threshold used when no
	// configuration overrides it.
	DefaultThreshold = int64(15)

	// DefaultUnboundedLabel labels super-source and super-sink edges.
	DefaultUnboundedLabel = "∞"

	// DefaultDecomposition is the decomposition method.
	DefaultDecomposition = DecompositionHeuristic
)

// Decomposition methods.
const (
	DecompositionHeuristic = "heuristic"
	DecompositionPaths     = "paths"
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatDOT = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatDOT: true,
}

// ValidDecompositions is the set of supported decomposition methods.
var ValidDecompositions = map[string]bool{
	DecompositionHeuristic: true,
	DecompositionPaths:     true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Source is the path of a network description. Empty selects the
	// built-in example network.
	Source string `json:"source,omitempty"`

	// Decomposition is "heuristic" or "paths".
	Decomposition string `json:"decomposition,omitempty"`

	// Render options. No formats means the render stage is skipped.
	Formats        []string `json:"formats,omitempty"`
	Threshold      int64    `json:"threshold,omitempty"` // 0 disables highlighting
	UnboundedLabel string   `json:"unbounded_label,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in exported results.
	RunID string

	// Layout is the built network with its site names and roles.
	Layout *logistics.Layout

	// Flow is the max-flow outcome.
	Flow *flow.Result

	// Method is the decomposition method that produced Rows.
	Method      string
	Rows        []flow.ReportRow
	Ambiguities []flow.Ambiguity // heuristic only
	Paths       []flow.FlowPath  // paths only

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	SolvedAt time.Time
	Stats    Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount     int
	EdgeCount     int
	LoadTime      time.Duration
	SolveTime     time.Duration
	DecomposeTime time.Duration
	RenderTime    time.Duration
}

// Solution converts r into the export representation.
func (r *Result) Solution() flowio.Solution {
	return flowio.Solution{
		RunID:       r.RunID,
		Method:      r.Method,
		Layout:      r.Layout,
		Result:      r.Flow,
		Rows:        r.Rows,
		Ambiguities: r.Ambiguities,
		SolvedAt:    r.SolvedAt,
	}
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDecomposition checks that a decomposition method is valid.
func ValidateDecomposition(method string) error {
	if !ValidDecompositions[method] {
		return apperr.New(apperr.ErrCodeInvalidInput, "invalid decomposition: %q (must be one of: heuristic, paths)", method)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Source != "" {
		if err := apperr.ValidatePath(o.Source); err != nil {
			return err
		}
	}
	if o.Decomposition == "" {
		o.Decomposition = DefaultDecomposition
	}
	if err := ValidateDecomposition(o.Decomposition); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.UnboundedLabel == "" {
		o.UnboundedLabel = DefaultUnboundedLabel
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := apperr.ValidateThreshold(o.Threshold); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// IsExample reports whether the run uses the built-in example network.
func (o *Options) IsExample() bool {
	return o.Source == ""
}
