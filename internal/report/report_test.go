package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipgate/shipcheck/internal/engine"
)

const banner = "============================================================"

func renderFull(run *engine.Run) string {
	var buf bytes.Buffer
	r := New(&buf)
	r.Header(run.Title)
	for _, s := range run.Stages {
		r.StageStarted(s.Name)
		for _, c := range s.Checks {
			r.CheckEvaluated(c)
		}
	}
	r.Summary(run)
	return buf.String()
}

func TestRender_AllPassing(t *testing.T) {
	run := &engine.Run{
		Title: "Delivery Validation",
		Stages: []engine.StageResult{
			{
				Name: "Stage 1",
				Checks: []engine.CheckResult{
					{Description: "Library module", Path: "src/lib.rs", Result: engine.Pass},
					{Description: "Main module", Path: "src/main.rs", Result: engine.Pass},
				},
				Result: engine.Pass,
			},
		},
		Overall: engine.Pass,
	}

	want := strings.Join([]string{
		banner,
		"Delivery Validation",
		banner,
		"",
		"=== Stage 1 ===",
		"✓ Library module: src/lib.rs",
		"✓ Main module: src/main.rs",
		"",
		banner,
		"Validation Summary",
		banner,
		"Stage 1: ✓ PASS",
		"",
		banner,
		"✓ ALL STAGES VALIDATED SUCCESSFULLY",
		banner,
		"",
	}, "\n")

	assert.Equal(t, want, renderFull(run))
}

func TestRender_FailureAnnotatesMissingArtifacts(t *testing.T) {
	run := &engine.Run{
		Title: "Delivery Validation",
		Stages: []engine.StageResult{
			{
				Name: "Stage 1",
				Checks: []engine.CheckResult{
					{Description: "Library module", Path: "src/lib.rs", Result: engine.Pass},
				},
				Result: engine.Pass,
			},
			{
				Name: "Stage 2",
				Checks: []engine.CheckResult{
					{Description: "Data loader", Path: "src/loader.rs", Result: engine.Fail},
				},
				Result: engine.Fail,
			},
		},
		Overall: engine.Fail,
	}

	out := renderFull(run)

	assert.Contains(t, out, "✗ Data loader: src/loader.rs NOT FOUND")
	assert.Contains(t, out, "Stage 1: ✓ PASS")
	assert.Contains(t, out, "Stage 2: ✗ FAIL")
	assert.Contains(t, out, "✗ VALIDATION FAILED - Some components missing")
	assert.NotContains(t, out, "ALL STAGES VALIDATED SUCCESSFULLY")

	// Both stages' full check lists appear even though stage 2 failed.
	assert.Contains(t, out, "=== Stage 1 ===")
	assert.Contains(t, out, "=== Stage 2 ===")
}

func TestRender_EmptyRun(t *testing.T) {
	run := &engine.Run{Title: "Delivery Validation", Overall: engine.Pass}

	out := renderFull(run)

	// Summary section is present but lists no stages.
	require.Contains(t, out, "Validation Summary")
	assert.NotContains(t, out, "=== ")
	assert.Contains(t, out, "✓ ALL STAGES VALIDATED SUCCESSFULLY")
}

func TestRender_CheckLineCountMatchesChecks(t *testing.T) {
	run := &engine.Run{
		Title: "Delivery Validation",
		Stages: []engine.StageResult{
			{Name: "Stage 1", Checks: []engine.CheckResult{
				{Description: "a", Path: "a", Result: engine.Fail},
				{Description: "b", Path: "b", Result: engine.Fail},
			}, Result: engine.Fail},
			{Name: "Stage 2", Checks: []engine.CheckResult{
				{Description: "c", Path: "c", Result: engine.Pass},
			}, Result: engine.Pass},
		},
		Overall: engine.Fail,
	}

	out := renderFull(run)

	// 2 failing check lines + 1 passing, no early termination.
	assert.Equal(t, 2, strings.Count(out, "NOT FOUND"))
	assert.Equal(t, 1, strings.Count(out, "✓ c: c"))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(&engine.Run{Overall: engine.Pass}))
	assert.Equal(t, 1, ExitCode(&engine.Run{Overall: engine.Fail}))
	assert.Equal(t, 1, ExitCode(&engine.Run{Overall: engine.Unevaluated}))
}
