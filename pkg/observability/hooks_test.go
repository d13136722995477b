package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Solver hooks
	s := NoopSolverHooks{}
	s.OnSolveStart(22, 36)
	s.OnAugment([]int{20, 0, 2, 6, 21}, 15, 15)
	s.OnSolveComplete(115, 11, time.Millisecond)

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "network.toml")
	p.OnLoadComplete(ctx, "network.toml", 22, 36, time.Second, nil)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Solver() should return NoopSolverHooks by default")
	}
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}

	// Set custom hooks
	customSolver := &testSolverHooks{}
	SetSolverHooks(customSolver)
	if Solver() != customSolver {
		t.Error("SetSolverHooks should set custom hooks")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	// nil is ignored
	SetSolverHooks(nil)
	if Solver() != customSolver {
		t.Error("SetSolverHooks(nil) should keep the current hooks")
	}

	// Reset restores defaults
	Reset()
	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Reset should restore NoopSolverHooks")
	}
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset should restore NoopPipelineHooks")
	}
}

type testSolverHooks struct {
	NoopSolverHooks
	augments int
}

func (h *testSolverHooks) OnAugment([]int, int64, int64) { h.augments++ }

type testPipelineHooks struct {
	NoopPipelineHooks
}
