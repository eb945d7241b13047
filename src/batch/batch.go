package batch

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"voyagedb/src/catalogs"
	"voyagedb/src/helpers"
	"voyagedb/src/ingest"
	"voyagedb/src/output"
	"voyagedb/src/queries"
	"voyagedb/src/settings"

	"go.uber.org/zap"
)

// Runner executes one batch run: ingest the dataset, answer the queries
// file command by command, write one report per command.
type Runner struct {
	args   *settings.Arguments
	logger *zap.SugaredLogger
}

func NewRunner(logger *zap.SugaredLogger, args *settings.Arguments) *Runner {
	return &Runner{args: args, logger: logger}
}

// LoadDataset builds a fresh Manager and runs the four ingestion stages
// into it. The output directory must exist before the error sinks open.
func (r *Runner) LoadDataset() (*catalogs.Manager, error) {
	if err := os.MkdirAll(r.args.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	manager := catalogs.NewManager()
	pipeline := ingest.NewPipeline(manager, r.logger, r.args)
	if err := pipeline.RunAll(); err != nil {
		return nil, fmt.Errorf("loading dataset from %s: %w", r.args.DataDir, err)
	}
	return manager, nil
}

// Run loads the dataset and executes the queries file.
func (r *Runner) Run() error {
	start := time.Now()
	runID := helpers.NewRunID()
	r.logger.Infow("batch run starting", "run_id", runID, "datadir", r.args.DataDir)

	manager, err := r.LoadDataset()
	if err != nil {
		return err
	}
	if err := r.ExecuteQueries(manager, runID, start); err != nil {
		return err
	}
	r.logger.Infow("batch run finished", "run_id", runID, "elapsed", time.Since(start))
	return nil
}

// ExecuteQueries runs every command of the queries file against the loaded
// manager. A command that resolves to nothing still produces its (empty)
// report file, so command numbering stays aligned with the input.
func (r *Runner) ExecuteQueries(manager *catalogs.Manager, runID string, started time.Time) error {
	file, err := os.Open(r.args.QueriesFile)
	if err != nil {
		return fmt.Errorf("opening queries file: %w", err)
	}
	defer file.Close()

	var analysis *os.File
	if r.args.Analysis {
		analysis, err = os.Create(filepath.Join(r.args.OutputDir, "analysis.txt"))
		if err != nil {
			return fmt.Errorf("creating analysis file: %w", err)
		}
		defer analysis.Close()
		fmt.Fprintf(analysis, "Run: %s\n\n", runID)
	}

	engine := queries.NewEngine(manager, r.logger)
	scanner := bufio.NewScanner(file)
	n := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n++

		queryStart := time.Now()
		runErr := r.runCommand(engine, line, n)
		if analysis != nil {
			fmt.Fprintf(analysis, "Query: %s\n", line)
			fmt.Fprintf(analysis, "Elapsed time: %.6f seconds\n\n", time.Since(queryStart).Seconds())
		}
		if runErr != nil {
			return runErr
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading queries file: %w", err)
	}

	if analysis != nil {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)
		fmt.Fprintf(analysis, "Total elapsed: %.6f seconds\n", time.Since(started).Seconds())
		fmt.Fprintf(analysis, "Heap in use: %d bytes\n", mem.HeapInuse)
	}
	return nil
}

func (r *Runner) runCommand(engine *queries.Engine, line string, n int) error {
	report, err := os.Create(output.CommandFile(r.args.OutputDir, n))
	if err != nil {
		return fmt.Errorf("creating report for command %d: %w", n, err)
	}
	defer report.Close()

	cmd, err := queries.ParseCommand(line)
	if err != nil {
		r.logger.Warnw("skipping malformed command", "line", line, "error", err)
		return nil
	}
	result, err := engine.Run(cmd.ID, cmd.Args)
	if err != nil {
		if !errors.Is(err, queries.ErrNotFound) {
			r.logger.Warnw("query failed", "line", line, "error", err)
		}
		return nil
	}
	output.Write(report, result, cmd.Labeled || r.args.Labeled)
	return nil
}
