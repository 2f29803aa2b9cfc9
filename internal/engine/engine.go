// Package engine evaluates a delivery manifest against the filesystem and
// folds per-check outcomes into stage and run results.
package engine

import (
	"path/filepath"

	"github.com/shipgate/shipcheck/internal/manifest"
	"github.com/shipgate/shipcheck/internal/probe"
)

// Result is the three-valued outcome of a check, a stage, or a whole run.
// Evaluation is a strict one-way transition from Unevaluated; a result is
// written exactly once and never revisited.
type Result int

const (
	Unevaluated Result = iota
	Pass
	Fail
)

func (r Result) String() string {
	switch r {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	default:
		return "UNEVALUATED"
	}
}

// Passed reports whether the result is Pass.
func (r Result) Passed() bool { return r == Pass }

// CheckResult is one evaluated artifact assertion.
type CheckResult struct {
	Description string
	// Path is the fully resolved target path the prober was asked about.
	Path   string
	Result Result
}

// StageResult holds the evaluated checks of one stage and the stage verdict.
// A stage passes iff every one of its checks passes; an empty stage passes.
type StageResult struct {
	Name   string
	Checks []CheckResult
	Result Result
}

// Run is one full evaluation of a manifest. A run passes iff every stage
// passes; an empty run passes.
type Run struct {
	Title   string
	Stages  []StageResult
	Overall Result
}

// FailedChecks returns the number of checks that failed anywhere in the run.
func (r *Run) FailedChecks() int {
	n := 0
	for _, s := range r.Stages {
		for _, c := range s.Checks {
			if c.Result == Fail {
				n++
			}
		}
	}
	return n
}

// Observer receives evaluation events as they happen, in declaration order.
// It lets a renderer interleave output with evaluation so progress appears
// check by check.
type Observer interface {
	// StageStarted fires before any check of the named stage is evaluated.
	StageStarted(name string)
	// CheckEvaluated fires once per check, immediately after its result is
	// decided.
	CheckEvaluated(check CheckResult)
}

type noopObserver struct{}

func (noopObserver) StageStarted(string)        {}
func (noopObserver) CheckEvaluated(CheckResult) {}

// Evaluator runs manifests through a prober. Evaluation is strictly
// sequential: every check of every stage, in declaration order, with no
// short-circuiting — the report must show the full status of every artifact,
// not just the first failure.
type Evaluator struct {
	Prober probe.Prober
	// Root is the directory relative check paths resolve against. Empty
	// means the process working directory.
	Root string
	// Observer, if set, receives per-stage and per-check events.
	Observer Observer
}

// Run evaluates every stage of the manifest and returns the completed run.
// The manifest itself is never mutated.
func (e *Evaluator) Run(m *manifest.Manifest) *Run {
	obs := e.Observer
	if obs == nil {
		obs = noopObserver{}
	}

	run := &Run{
		Title:  m.EffectiveTitle(),
		Stages: make([]StageResult, 0, len(m.Stages)),
	}

	overall := Pass
	for _, stage := range m.Stages {
		obs.StageStarted(stage.Name)
		sr := e.evaluateStage(stage, obs)
		if sr.Result == Fail {
			overall = Fail
		}
		run.Stages = append(run.Stages, sr)
	}
	run.Overall = overall
	return run
}

func (e *Evaluator) evaluateStage(stage manifest.Stage, obs Observer) StageResult {
	sr := StageResult{
		Name:   stage.Name,
		Checks: make([]CheckResult, 0, len(stage.Checks)),
	}

	result := Pass
	for _, check := range stage.Checks {
		cr := CheckResult{
			Description: check.Description,
			Path:        e.resolve(stage.TargetPath(check)),
		}
		if e.Prober.Probe(cr.Path) {
			cr.Result = Pass
		} else {
			cr.Result = Fail
			result = Fail
		}
		obs.CheckEvaluated(cr)
		sr.Checks = append(sr.Checks, cr)
	}
	sr.Result = result
	return sr
}

func (e *Evaluator) resolve(path string) string {
	if e.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.Root, path)
}
