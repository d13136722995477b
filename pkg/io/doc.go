// Package io reads and writes logistics network descriptions and exports
// solved networks.
//
// # Description Files
//
// A description lists the sites of each layer by name and the routes between
// them. The same keys are used in every format; the format is chosen from the
// file extension by [ImportPlan] and [ExportPlan]:
//
//	name = "regional"
//	terminals = ["Port"]
//	warehouses = ["Hub"]
//	stores = ["Store A", "Store B"]
//
//	[[routes]]
//	from = "Port"
//	to = "Hub"
//	capacity = 40
//
//	[[routes]]
//	from = "Hub"
//	to = "Store A"
//	capacity = 15
//
// Supported extensions are .json, .toml, .yaml and .yml. Decoding is strict:
// unknown keys are errors. Decoded documents are validated with struct tags
// before they are turned into a [logistics.Plan]:
//
//   - every layer must have at least one site
//   - site names must be unique within a layer, non-empty and free of
//     control characters
//   - every route needs a from, a to and a positive capacity
//
// # Results
//
// [WriteResult] and [ExportResult] encode a [Solution] as JSON: the run ID,
// max flow, per-edge flow and capacity, the terminal→store report rows, any
// decomposition ambiguities and the min cut. Nodes are written by label, and
// the super-source and super-sink appear as "Source" and "Sink".
package io
