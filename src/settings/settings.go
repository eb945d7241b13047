package settings

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Arguments struct {
	// Directory holding users.csv, flights.csv, reservations.csv and passengers.csv
	DataDir string

	// Path to the queries file (batch and regression modes)
	QueriesFile string

	// Directory where command outputs and error CSVs are written
	OutputDir string

	// Directory with expected command outputs (regression mode)
	ExpectedDir string

	// The mode of operation
	// batch, interactive, regression
	Mode string

	// Labeled output layout ("--- N ---" blocks) for every command,
	// regardless of a per-command F suffix
	Labeled bool

	// Write analysis.txt with per-query timings
	Analysis bool

	// Strongly verbose logging
	Verbose bool

	Debug bool
}

var (
	instance *Arguments
	once     sync.Once
)

// GetSettings returns the process-wide Arguments instance. Defaults come
// from the environment (a .env file is honoured when present) and are
// overridden by the command line flags defined in main.
func GetSettings() *Arguments {
	once.Do(func() {
		_ = godotenv.Load()
		instance = &Arguments{
			DataDir:     getenv("VOYAGEDB_DATADIR", "./dataset"),
			QueriesFile: getenv("VOYAGEDB_QUERIES", ""),
			OutputDir:   getenv("VOYAGEDB_OUTDIR", "Resultados"),
			Mode:        getenv("VOYAGEDB_MODE", "batch"),
		}
	})
	return instance
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
