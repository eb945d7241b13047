package ingest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"voyagedb/src/catalogs"
	"voyagedb/src/entities"
	"voyagedb/src/settings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Stage is one step of the ingestion pipeline. Needs declares the stages
// whose catalogs this stage validates foreign keys against; the pipeline
// refuses to run a stage before its needs.
type Stage struct {
	Name   string
	File   string
	Fields int
	Needs  []string
}

// Stages returns the four stages in their canonical order: users before
// flights, flights before passengers, users before reservations.
func Stages() []Stage {
	return []Stage{
		{Name: "users", File: "users.csv", Fields: 12},
		{Name: "flights", File: "flights.csv", Fields: 13},
		{Name: "reservations", File: "reservations.csv", Fields: 14, Needs: []string{"users"}},
		{Name: "passengers", File: "passengers.csv", Fields: 2, Needs: []string{"users", "flights"}},
	}
}

type errorSink struct {
	path     string
	file     *os.File
	rejected int
}

// Pipeline reads the four CSVs into the Manager's catalogs. Rejected lines
// are echoed verbatim into per-entity error CSVs; sinks that stay empty
// (header only) are removed by Finish.
type Pipeline struct {
	manager *catalogs.Manager
	args    *settings.Arguments
	logger  *zap.SugaredLogger
	sinks   map[string]*errorSink
	done    map[string]bool
}

func NewPipeline(manager *catalogs.Manager, logger *zap.SugaredLogger, args *settings.Arguments) *Pipeline {
	return &Pipeline{
		manager: manager,
		args:    args,
		logger:  logger,
		sinks:   make(map[string]*errorSink),
		done:    make(map[string]bool),
	}
}

// SplitFields splits one semicolon-delimited record into its raw fields.
// Empty strings stand for absent fields.
func SplitFields(line string) []string {
	return strings.Split(line, ";")
}

func (p *Pipeline) build(stage Stage, fields []string) bool {
	switch stage.Name {
	case "users":
		return p.buildUser(fields)
	case "flights":
		return p.buildFlight(fields)
	case "reservations":
		return p.buildReservation(fields)
	case "passengers":
		return p.buildPassenger(fields)
	}
	return false
}

// Run executes one stage. A missing input file is fatal for the run;
// malformed records are not.
func (p *Pipeline) Run(stage Stage) error {
	for _, need := range stage.Needs {
		if !p.done[need] {
			return fmt.Errorf("stage %q needs stage %q to run first", stage.Name, need)
		}
	}

	file, err := os.Open(filepath.Join(p.args.DataDir, stage.File))
	if err != nil {
		return fmt.Errorf("opening %s: %w", stage.File, err)
	}
	defer file.Close()

	sink, err := p.openSink(stage.Name)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		return fmt.Errorf("reading header of %s: %w", stage.File, scanner.Err())
	}
	// The header is echoed verbatim into the matching error file.
	fmt.Fprintln(sink.file, strings.TrimSuffix(scanner.Text(), "\r"))

	loaded := 0
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fields := SplitFields(line)
		if len(fields) != stage.Fields || !p.build(stage, fields) {
			sink.rejected++
			fmt.Fprintln(sink.file, line)
			continue
		}
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", stage.File, err)
	}

	p.done[stage.Name] = true
	if p.args.Verbose {
		p.logger.Infof("stage %s: %d records loaded, %d rejected", stage.Name, loaded, sink.rejected)
	}
	return nil
}

// RunAll executes every stage in order and then finalizes the error sinks.
// Stage failures are aggregated; any failure means the dataset did not load.
func (p *Pipeline) RunAll() error {
	var errs error
	for _, stage := range Stages() {
		if err := p.Run(stage); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return multierr.Append(errs, p.Finish())
}

func (p *Pipeline) openSink(name string) (*errorSink, error) {
	if sink, ok := p.sinks[name]; ok {
		return sink, nil
	}
	path := filepath.Join(p.args.OutputDir, name+"_errors.csv")
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating error sink %s: %w", path, err)
	}
	sink := &errorSink{path: path, file: file}
	p.sinks[name] = sink
	return sink, nil
}

// dumpFlight appends an evicted flight's last known state to the flights
// error sink.
func (p *Pipeline) dumpFlight(f *entities.Flight) {
	sink := p.sinks["flights"]
	if sink == nil {
		return
	}
	fmt.Fprintf(sink.file, "%s;%s;%s;%d;%s;%s;%s;%s;%s;%s\n",
		f.ID, f.Airline, f.PlaneModel, f.TotalSeats, f.Origin, f.Destination,
		f.ScheduleDeparture, f.ScheduleArrival, f.RealDeparture, f.RealArrival)
	sink.rejected++
}

// Finish closes every error sink and removes the ones that recorded no
// rejection.
func (p *Pipeline) Finish() error {
	var errs error
	for name, sink := range p.sinks {
		if err := sink.file.Close(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("closing %s sink: %w", name, err))
			continue
		}
		if sink.rejected == 0 {
			if err := os.Remove(sink.path); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("removing empty %s sink: %w", name, err))
			}
		}
	}
	p.sinks = make(map[string]*errorSink)
	return errs
}
