package regression

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"voyagedb/src/batch"
	"voyagedb/src/output"
	"voyagedb/src/settings"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

// Harness runs a full batch pass into a scratch directory and compares
// every report against the expected outputs.
type Harness struct {
	args   *settings.Arguments
	logger *zap.SugaredLogger
}

func NewHarness(logger *zap.SugaredLogger, args *settings.Arguments) *Harness {
	return &Harness{args: args, logger: logger}
}

// Outcome describes one compared report.
type Outcome struct {
	Command int
	Passed  bool

	// First line where the files differ, 1-based, 0 when Passed.
	Line int
}

// Run executes the batch pipeline and checks each produced report against
// its counterpart in ExpectedDir. It returns one Outcome per expected
// report; a non-nil error means the run itself could not complete.
func (h *Harness) Run() ([]Outcome, error) {
	start := time.Now()
	scratch, err := os.MkdirTemp("", "voyagedb-regression-")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	scoped := *h.args
	scoped.OutputDir = scratch
	if err := batch.NewRunner(h.logger, &scoped).Run(); err != nil {
		return nil, err
	}

	var outcomes []Outcome
	for n := 1; ; n++ {
		expected := output.CommandFile(h.args.ExpectedDir, n)
		if _, err := os.Stat(expected); err != nil {
			break
		}
		outcome, err := h.compare(n, output.CommandFile(scratch, n), expected)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}
	h.report(outcomes, time.Since(start))
	return outcomes, nil
}

// compare digests both files first and only walks them line by line when
// the digests disagree.
func (h *Harness) compare(n int, gotPath, wantPath string) (Outcome, error) {
	gotSum, err := digest(gotPath)
	if err != nil {
		return Outcome{}, err
	}
	wantSum, err := digest(wantPath)
	if err != nil {
		return Outcome{}, err
	}
	if gotSum == wantSum {
		return Outcome{Command: n, Passed: true}, nil
	}
	line, err := firstDiff(gotPath, wantPath)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Command: n, Line: line}, nil
}

func digest(path string) ([blake2b.Size256]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return [blake2b.Size256]byte{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return blake2b.Sum256(data), nil
}

func firstDiff(gotPath, wantPath string) (int, error) {
	got, err := os.Open(gotPath)
	if err != nil {
		return 0, err
	}
	defer got.Close()
	want, err := os.Open(wantPath)
	if err != nil {
		return 0, err
	}
	defer want.Close()

	gotScan := bufio.NewScanner(got)
	wantScan := bufio.NewScanner(want)
	line := 0
	for {
		line++
		gotOK := gotScan.Scan()
		wantOK := wantScan.Scan()
		if !gotOK || !wantOK {
			return line, nil
		}
		if !bytes.Equal(gotScan.Bytes(), wantScan.Bytes()) {
			return line, nil
		}
	}
}

func (h *Harness) report(outcomes []Outcome, elapsed time.Duration) {
	passed := 0
	for _, o := range outcomes {
		if o.Passed {
			passed++
			continue
		}
		h.logger.Warnw("report differs from expected output",
			"command", o.Command,
			"line", o.Line,
			"expected", filepath.Base(output.CommandFile(h.args.ExpectedDir, o.Command)))
	}
	h.logger.Infow("regression run complete",
		"passed", passed, "failed", len(outcomes)-passed, "elapsed", elapsed)
}
