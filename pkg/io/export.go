package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/flowtower/pkg/logistics"
)

type document struct {
	Name       string   `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty" validate:"omitempty,max=128"`
	Terminals  []string `json:"terminals" toml:"terminals" yaml:"terminals" validate:"required,min=1,unique,dive,sitename"`
	Warehouses []string `json:"warehouses" toml:"warehouses" yaml:"warehouses" validate:"required,min=1,unique,dive,sitename"`
	Stores     []string `json:"stores" toml:"stores" yaml:"stores" validate:"required,min=1,unique,dive,sitename"`
	Routes     []route  `json:"routes" toml:"routes" yaml:"routes" validate:"required,min=1,dive"`
}

type route struct {
	From     string `json:"from" toml:"from" yaml:"from" validate:"required,sitename"`
	To       string `json:"to" toml:"to" yaml:"to" validate:"required,sitename"`
	Capacity int64  `json:"capacity" toml:"capacity" yaml:"capacity" validate:"gt=0"`
}

func toDocument(p logistics.Plan) document {
	doc := document{
		Name:       p.Name,
		Terminals:  p.Terminals,
		Warehouses: p.Warehouses,
		Stores:     p.Stores,
		Routes:     make([]route, len(p.Routes)),
	}
	for i, r := range p.Routes {
		doc.Routes[i] = route{From: r.From, To: r.To, Capacity: r.Capacity}
	}
	return doc
}

// WritePlan encodes a logistics plan in the given format and writes it to w.
// The output can be read back with [ReadPlan].
func WritePlan(p logistics.Plan, w io.Writer, format Format) error {
	doc := toDocument(p)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	default:
		_, err := ParseFormat(string(format))
		return err
	}
	return nil
}

// ExportPlan writes a plan to path, picking the format from its extension.
// This is a convenience wrapper around [WritePlan] for file-based output.
func ExportPlan(p logistics.Plan, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePlan(p, f, format)
}
