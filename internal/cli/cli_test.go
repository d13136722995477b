package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/matzehuels/flowtower/pkg/errors"
	flowio "github.com/matzehuels/flowtower/pkg/io"
	"github.com/matzehuels/flowtower/pkg/logistics"
)

// execute runs the root command with args and returns what was written to
// the CLI's output. Config is isolated in a temporary XDG directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.Out = &out
	root := c.RootCommand()
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSolveExample(t *testing.T) {
	out, err := execute(t, "solve")
	require.NoError(t, err)

	assert.Contains(t, out, "Max flow: 115 units")
	assert.Contains(t, out, "Actual Flow (units)")
	assert.Contains(t, out, "Terminal 1")
	assert.Contains(t, out, "Store 11")
	assert.NotContains(t, out, "Store 14", "stores without flow get no row")
	assert.Contains(t, out, "2 warehouse(s) split flow ambiguously")
	assert.NotContains(t, out, "Minimum cut")
}

func TestSolvePathsWithEdges(t *testing.T) {
	out, err := execute(t, "solve", "--decomposition", "paths", "--edges")
	require.NoError(t, err)

	assert.Contains(t, out, "(paths)")
	assert.NotContains(t, out, "ambiguously")
	assert.Contains(t, out, "Edges")
	assert.Contains(t, out, "Minimum cut")
	assert.Contains(t, out, "25/25")
}

func TestSolveExports(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "result.json")
	metricsPath := filepath.Join(dir, "flowtower.prom")

	out, err := execute(t, "solve", "--json", jsonPath, "--metrics-file", metricsPath)
	require.NoError(t, err)
	assert.Contains(t, out, jsonPath)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var doc struct {
		RunID   string `json:"run_id"`
		MaxFlow int64  `json:"max_flow"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, int64(115), doc.MaxFlow)
	assert.NotEmpty(t, doc.RunID)

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "flowtower_max_flow_units 115")
	assert.Contains(t, string(prom), `flowtower_loads_total{status="success"} 1`)
}

func TestSolveFlagValidation(t *testing.T) {
	_, err := execute(t, "solve", "--decomposition", "exact")
	require.Error(t, err)
	assert.Equal(t, apperr.ErrCodeInvalidInput, apperr.GetCode(err))

	_, err = execute(t, "solve", "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch requires a network file")

	_, err = execute(t, "solve", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Equal(t, apperr.ErrCodeFileNotFound, apperr.GetCode(err))
}

func TestSolveUsesConfigDecomposition(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("decomposition = \"paths\"\n"), 0o644))

	out, err := execute(t, "--config", cfgPath, "solve")
	require.NoError(t, err)
	assert.Contains(t, out, "(paths)")

	// Flags win over config.
	out, err = execute(t, "--config", cfgPath, "solve", "-d", "heuristic")
	require.NoError(t, err)
	assert.Contains(t, out, "(heuristic)")
}

func TestRenderDOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow.dot")

	out, err := execute(t, "render", "-f", "dot", "-o", path, "--threshold", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Rendered max flow 115")
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	dot := string(data)
	assert.Contains(t, dot, `label="Max flow: 115";`)
	assert.Contains(t, dot, `n5 -> n18 [label="0/5", color=red, penwidth=2];`)
	assert.NotContains(t, dot, `n0 -> n4 [label="15/15", color=red`)
}

func TestRenderRejectsFormat(t *testing.T) {
	_, err := execute(t, "render", "-f", "pdf")
	require.Error(t, err)
	assert.Equal(t, apperr.ErrCodeInvalidFormat, apperr.GetCode(err))
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	require.NoError(t, flowio.ExportPlan(logistics.Example(), good))

	out, err := execute(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "Warehouses")

	bad := filepath.Join(dir, "bad.yaml")
	plan := logistics.Example()
	plan.Routes = append(plan.Routes, logistics.Route{From: "Terminal 1", To: "Store 1", Capacity: 5})
	require.NoError(t, flowio.ExportPlan(plan, bad))

	out, err = execute(t, "validate", bad)
	require.Error(t, err)
	assert.Equal(t, apperr.ErrCodeInvalidNetwork, apperr.GetCode(err))
	assert.Contains(t, out, "is invalid")
}

func TestExampleCommand(t *testing.T) {
	for _, format := range []string{"json", "toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			out, err := execute(t, "example", "-f", format)
			require.NoError(t, err)

			f, err := flowio.ParseFormat(format)
			require.NoError(t, err)
			plan, err := flowio.ReadPlan(strings.NewReader(out), f)
			require.NoError(t, err)
			assert.Equal(t, logistics.Example(), plan)
		})
	}

	_, err := execute(t, "example", "-f", "xml")
	assert.Error(t, err)
}

func TestExampleCommandOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.toml")
	_, err := execute(t, "example", "-o", path)
	require.NoError(t, err)

	plan, err := flowio.ImportPlan(path)
	require.NoError(t, err)
	assert.Len(t, plan.Routes, len(logistics.Example().Routes))
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "flowtower")

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}
