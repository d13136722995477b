package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperr "github.com/matzehuels/flowtower/pkg/errors"
	"github.com/matzehuels/flowtower/pkg/logistics"
)

// ReadPlan decodes a network description in the given format from r.
//
// The description names the sites of each layer and the capacitated routes
// between them (shown here as JSON; TOML and YAML use the same keys):
//
//	{
//	  "name": "regional",
//	  "terminals": ["Port"],
//	  "warehouses": ["Hub"],
//	  "stores": ["Store A", "Store B"],
//	  "routes": [
//	    {"from": "Port", "to": "Hub", "capacity": 40},
//	    {"from": "Hub", "to": "Store A", "capacity": 15},
//	    {"from": "Hub", "to": "Store B", "capacity": 30}
//	  ]
//	}
//
// Unknown keys are rejected. ReadPlan returns an INVALID_FORMAT error when
// the input cannot be decoded and an INVALID_INPUT error when a field fails
// validation (missing layers, duplicate or malformed names, non-positive
// capacities). Structural problems such as routes between unknown sites are
// left to [logistics.Build]. ReadPlan does not close r.
func ReadPlan(r io.Reader, format Format) (logistics.Plan, error) {
	var doc document
	if err := decode(r, format, &doc); err != nil {
		return logistics.Plan{}, err
	}
	if err := validateDocument(&doc); err != nil {
		return logistics.Plan{}, err
	}

	p := logistics.Plan{
		Name:       doc.Name,
		Terminals:  doc.Terminals,
		Warehouses: doc.Warehouses,
		Stores:     doc.Stores,
		Routes:     make([]logistics.Route, len(doc.Routes)),
	}
	for i, rt := range doc.Routes {
		p.Routes[i] = logistics.Route{From: rt.From, To: rt.To, Capacity: rt.Capacity}
	}
	return p, nil
}

func decode(r io.Reader, format Format, doc *document) error {
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(doc)
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.NewDecoder(r).Decode(doc)
		if err == nil {
			if keys := md.Undecoded(); len(keys) > 0 {
				err = fmt.Errorf("unknown key %q", keys[0].String())
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(doc)
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
	default:
		_, err = ParseFormat(string(format))
		return err
	}
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "decode %s", format)
	}
	return nil
}

// ImportPlan reads the network description at path. The format is picked
// from the file extension (.json, .toml, .yaml or .yml).
//
// A missing file yields a FILE_NOT_FOUND error; otherwise ImportPlan
// returns the same errors as [ReadPlan], prefixed with the path.
func ImportPlan(path string) (logistics.Plan, error) {
	if err := apperr.ValidatePath(path); err != nil {
		return logistics.Plan{}, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return logistics.Plan{}, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return logistics.Plan{}, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "network file %s", path)
	}
	if err != nil {
		return logistics.Plan{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	p, err := ReadPlan(f, format)
	if err != nil {
		return logistics.Plan{}, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}
