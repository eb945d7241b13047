package queries

import (
	"strconv"

	"voyagedb/src/catalogs"
)

// The datasets cover these years; query 10's year rollup scans them and
// its year argument must fall inside.
const (
	firstYear = 2010
	lastYear  = 2023
)

// queryGeneralMetrics (query 10) reads the day-bucket counters at one of
// three granularities: no argument rolls up per year, a year argument
// rolls up that year per month, year plus month emits per day. Rows where
// every metric is zero are dropped.
func (e *Engine) queryGeneralMetrics(args []string) (Result, error) {
	switch len(args) {
	case 0:
		rows := make([]MetricsRow, 0, lastYear-firstYear+1)
		for year := firstYear; year <= lastYear; year++ {
			row := MetricsRow{Bucket: year}
			unique := make(map[string]struct{})
			for month := 1; month <= 12; month++ {
				e.accumulateMonth(&row, unique, year, month)
			}
			row.UniquePassengers = len(unique)
			if row.nonzero() {
				rows = append(rows, row)
			}
		}
		return MetricsTable{Granularity: "year", Rows: rows}, nil

	case 1:
		year, err := strconv.Atoi(args[0])
		if err != nil || year < firstYear || year > lastYear {
			return nil, ErrNotFound
		}
		rows := make([]MetricsRow, 0, 12)
		for month := 1; month <= 12; month++ {
			row := MetricsRow{Bucket: month}
			unique := make(map[string]struct{})
			e.accumulateMonth(&row, unique, year, month)
			row.UniquePassengers = len(unique)
			if row.nonzero() {
				rows = append(rows, row)
			}
		}
		return MetricsTable{Granularity: "month", Rows: rows}, nil

	default:
		year, err := strconv.Atoi(args[0])
		if err != nil || year < firstYear || year > lastYear {
			return nil, ErrNotFound
		}
		month, err := strconv.Atoi(args[1])
		if err != nil || month < 1 || month > 12 {
			return nil, ErrNotFound
		}
		key := catalogs.MonthKey{Year: year, Month: month}
		users := e.manager.Users().Registered(key)
		flights := e.manager.Flights().Scheduled(key)
		reservations := e.manager.Reservations().Begun(key)
		rows := make([]MetricsRow, 0, 31)
		for day := 1; day <= 31; day++ {
			row := MetricsRow{Bucket: day}
			if users != nil {
				row.Users = users[day-1]
			}
			if flights != nil {
				row.Flights = flights[day-1]
			}
			if reservations != nil {
				row.Reservations = reservations[day-1]
			}
			passengers := e.manager.Passengers().Daily(catalogs.DayKey{Year: year, Month: month, Day: day})
			row.Passengers = len(passengers)
			unique := make(map[string]struct{}, len(passengers))
			for _, userID := range passengers {
				unique[userID] = struct{}{}
			}
			row.UniquePassengers = len(unique)
			if row.nonzero() {
				rows = append(rows, row)
			}
		}
		return MetricsTable{Granularity: "day", Rows: rows}, nil
	}
}

// accumulateMonth folds one month's buckets into row and extends the
// unique-passenger set the row's caller is tracking.
func (e *Engine) accumulateMonth(row *MetricsRow, unique map[string]struct{}, year, month int) {
	key := catalogs.MonthKey{Year: year, Month: month}
	if buckets := e.manager.Users().Registered(key); buckets != nil {
		row.Users += buckets.Total()
	}
	if buckets := e.manager.Flights().Scheduled(key); buckets != nil {
		row.Flights += buckets.Total()
	}
	if buckets := e.manager.Reservations().Begun(key); buckets != nil {
		row.Reservations += buckets.Total()
	}
	for day := 1; day <= 31; day++ {
		passengers := e.manager.Passengers().Daily(catalogs.DayKey{Year: year, Month: month, Day: day})
		row.Passengers += len(passengers)
		for _, userID := range passengers {
			unique[userID] = struct{}{}
		}
	}
}
