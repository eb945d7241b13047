package queries

import (
	"errors"
	"fmt"

	"voyagedb/src/catalogs"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrNotFound is the sentinel for queries that resolve to nothing: unknown
// or inactive ids, out-of-range arguments, malformed dates. The caller
// writes an empty report and moves on.
var ErrNotFound = errors.New("not found")

// Engine answers the ten analytical queries against one loaded Manager.
// Queries only read; an Engine must not be used while ingestion is still
// writing to the same Manager.
type Engine struct {
	manager  *catalogs.Manager
	logger   *zap.SugaredLogger
	collator *collate.Collator
}

func NewEngine(manager *catalogs.Manager, logger *zap.SugaredLogger) *Engine {
	return &Engine{
		manager:  manager,
		logger:   logger,
		collator: collate.New(language.AmericanEnglish),
	}
}

// Run dispatches a query id to its implementation. Ids run 1 to 10.
func (e *Engine) Run(id int, args []string) (Result, error) {
	type queryFunc func([]string) (Result, error)
	table := []queryFunc{
		e.querySummary,         // 1
		e.queryUserItems,       // 2
		e.queryHotelRating,     // 3
		e.queryHotelStays,      // 4
		e.queryDepartures,      // 5
		e.queryTopAirports,     // 6
		e.queryDelayMedians,    // 7
		e.queryHotelRevenue,    // 8
		e.queryUsersByPrefix,   // 9
		e.queryGeneralMetrics,  // 10
	}
	if id < 1 || id > len(table) {
		return nil, fmt.Errorf("unknown query id %d", id)
	}
	return table[id-1](args)
}
