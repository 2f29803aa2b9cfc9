// Package report renders validation runs as text. The line structure is a
// compatibility surface: downstream tooling scrapes it, so markers, banners,
// and ordering must not drift.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shipgate/shipcheck/internal/engine"
)

const (
	passMark = "✓"
	failMark = "✗"

	bannerWidth  = 60
	summaryTitle = "Validation Summary"

	successBanner = "✓ ALL STAGES VALIDATED SUCCESSFULLY"
	failureBanner = "✗ VALIDATION FAILED - Some components missing"
)

// Reporter writes the validation report. It implements engine.Observer so
// check lines appear interleaved with evaluation, in declaration order.
type Reporter struct {
	w io.Writer
}

var _ engine.Observer = (*Reporter)(nil)

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) banner() {
	fmt.Fprintln(r.w, strings.Repeat("=", bannerWidth)) //nolint:errcheck
}

// Header prints the opening banner and run title. It must be called before
// evaluation starts.
func (r *Reporter) Header(title string) {
	r.banner()
	fmt.Fprintln(r.w, title) //nolint:errcheck
	r.banner()
}

// StageStarted prints the stage header.
func (r *Reporter) StageStarted(name string) {
	fmt.Fprintf(r.w, "\n=== %s ===\n", name) //nolint:errcheck
}

// CheckEvaluated prints one progress line for an evaluated check.
func (r *Reporter) CheckEvaluated(c engine.CheckResult) {
	if c.Result == engine.Pass {
		fmt.Fprintf(r.w, "%s %s: %s\n", passMark, c.Description, c.Path) //nolint:errcheck
		return
	}
	fmt.Fprintf(r.w, "%s %s: %s NOT FOUND\n", failMark, c.Description, c.Path) //nolint:errcheck
}

// Summary prints the per-stage verdict list and the final banner. It must be
// called after evaluation completes.
func (r *Reporter) Summary(run *engine.Run) {
	fmt.Fprintln(r.w) //nolint:errcheck
	r.banner()
	fmt.Fprintln(r.w, summaryTitle) //nolint:errcheck
	r.banner()

	for _, s := range run.Stages {
		mark := passMark
		if s.Result != engine.Pass {
			mark = failMark
		}
		fmt.Fprintf(r.w, "%s: %s %s\n", s.Name, mark, s.Result) //nolint:errcheck
	}

	fmt.Fprintln(r.w) //nolint:errcheck
	r.banner()
	if run.Overall == engine.Pass {
		fmt.Fprintln(r.w, successBanner) //nolint:errcheck
	} else {
		fmt.Fprintln(r.w, failureBanner) //nolint:errcheck
	}
	r.banner()
}

// ExitCode derives the process exit code from a completed run: 0 when every
// stage passed, 1 otherwise.
func ExitCode(run *engine.Run) int {
	if run.Overall == engine.Pass {
		return 0
	}
	return 1
}
