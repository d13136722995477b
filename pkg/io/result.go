package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/flowtower/pkg/flow"
	"github.com/matzehuels/flowtower/pkg/logistics"
	"github.com/matzehuels/flowtower/pkg/network"
)

// Solution is a solved logistics network ready for export.
type Solution struct {
	RunID       string // Generated when empty
	Method      string // "heuristic" or "paths"
	Layout      *logistics.Layout
	Result      *flow.Result
	Rows        []flow.ReportRow
	Ambiguities []flow.Ambiguity
	SolvedAt    time.Time
}

type resultDocument struct {
	RunID         string         `json:"run_id"`
	Network       string         `json:"network,omitempty"`
	SolvedAt      time.Time      `json:"solved_at"`
	MaxFlow       int64          `json:"max_flow"`
	Augmentations int            `json:"augmentations"`
	Method        string         `json:"decomposition"`
	Edges         []edgeFlow     `json:"edges"`
	Rows          []reportRow    `json:"rows"`
	Ambiguities   []ambiguityRow `json:"ambiguities,omitempty"`
	MinCut        cutDocument    `json:"min_cut"`
}

type edgeFlow struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Flow     int64  `json:"flow"`
	Capacity string `json:"capacity"`
}

type reportRow struct {
	Terminal string `json:"terminal"`
	Store    string `json:"store"`
	Units    int64  `json:"units"`
}

type ambiguityRow struct {
	Warehouse  string `json:"warehouse"`
	Attributed int64  `json:"attributed"`
	Throughput int64  `json:"throughput"`
}

type cutDocument struct {
	SourceSide []string   `json:"source_side"`
	Edges      []edgeFlow `json:"edges"`
	Capacity   int64      `json:"capacity"`
}

// WriteResult encodes a solution as indented JSON and writes it to w.
// Nodes are identified by their labels. Capacities are strings so that
// unbounded edges can be written as "unbounded".
func WriteResult(s Solution, w io.Writer) error {
	if s.Layout == nil || s.Result == nil {
		return fmt.Errorf("encode: incomplete solution")
	}
	if s.RunID == "" {
		s.RunID = uuid.NewString()
	}
	if s.SolvedAt.IsZero() {
		s.SolvedAt = time.Now().UTC()
	}

	l, res := s.Layout, s.Result
	edge := func(e network.Edge) edgeFlow {
		c := "unbounded"
		if !e.Capacity.IsUnbounded() {
			c = e.Capacity.String()
		}
		return edgeFlow{From: l.Label(e.From), To: l.Label(e.To), Flow: res.Flow(e.From, e.To), Capacity: c}
	}

	out := resultDocument{
		RunID:         s.RunID,
		Network:       l.Plan.Name,
		SolvedAt:      s.SolvedAt,
		MaxFlow:       res.MaxFlow,
		Augmentations: res.Augmentations,
		Method:        s.Method,
		Rows:          make([]reportRow, len(s.Rows)),
	}
	for _, e := range l.Network.Edges() {
		out.Edges = append(out.Edges, edge(e))
	}
	for i, r := range s.Rows {
		out.Rows[i] = reportRow{Terminal: l.Label(r.Terminal), Store: l.Label(r.Store), Units: r.Units}
	}
	for _, a := range s.Ambiguities {
		out.Ambiguities = append(out.Ambiguities, ambiguityRow{
			Warehouse: l.Label(a.Warehouse), Attributed: a.Attributed, Throughput: a.Throughput,
		})
	}
	cut := res.MinCut()
	out.MinCut.Capacity = cut.Capacity
	for _, u := range cut.SourceSide {
		out.MinCut.SourceSide = append(out.MinCut.SourceSide, l.Label(u))
	}
	for _, e := range cut.Edges {
		out.MinCut.Edges = append(out.MinCut.Edges, edge(e))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportResult writes a solution to a JSON file at path.
func ExportResult(s Solution, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteResult(s, f)
}
