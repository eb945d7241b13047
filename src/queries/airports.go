package queries

import (
	"sort"
	"strconv"

	"voyagedb/src/entities"
	"voyagedb/src/ingest"
)

// queryDepartures (query 5) lists the flights leaving an airport inside a
// datetime range, inclusive on both ends. Departure date descending, ties
// on id ascending.
func (e *Engine) queryDepartures(args []string) (Result, error) {
	if len(args) < 3 {
		return nil, ErrNotFound
	}
	origin := args[0]
	if !ingest.ValidAirport(origin) {
		return nil, ErrNotFound
	}
	from, err := entities.ParseDateTime(args[1])
	if err != nil {
		return nil, ErrNotFound
	}
	to, err := entities.ParseDateTime(args[2])
	if err != nil {
		return nil, ErrNotFound
	}

	var rows FlightList
	for _, f := range e.manager.Flights().All() {
		dep := f.ScheduleDeparture
		if f.Origin != origin || dep.Compare(from) < 0 || dep.Compare(to) > 0 {
			continue
		}
		rows = append(rows, FlightRow{
			ID:                f.ID,
			ScheduleDeparture: dep,
			Destination:       f.Destination,
			Airline:           f.Airline,
			PlaneModel:        f.PlaneModel,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].ScheduleDeparture.Compare(rows[j].ScheduleDeparture); c != 0 {
			return c > 0
		}
		return rows[i].ID < rows[j].ID
	})
	return rows, nil
}

// queryTopAirports (query 6) ranks airports by passengers moved in one
// year. A flight whose scheduled arrival falls in the year credits its
// passenger count to both its origin and its destination. Count
// descending, ties on name ascending, truncated to N.
func (e *Engine) queryTopAirports(args []string) (Result, error) {
	if len(args) < 2 {
		return nil, ErrNotFound
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, ErrNotFound
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n <= 0 || year < 2010 || year > 2023 {
		return nil, ErrNotFound
	}

	counts := make(map[string]int)
	for _, f := range e.manager.Flights().All() {
		if f.ScheduleArrival.Year != year {
			continue
		}
		counts[f.Origin] += f.Passengers
		counts[f.Destination] += f.Passengers
	}

	ranking := make(AirportPassengers, 0, len(counts))
	for name, passengers := range counts {
		ranking = append(ranking, AirportCount{Name: name, Passengers: passengers})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Passengers != ranking[j].Passengers {
			return ranking[i].Passengers > ranking[j].Passengers
		}
		return ranking[i].Name < ranking[j].Name
	})
	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking, nil
}

// queryDelayMedians (query 7) ranks origin airports by the median of their
// signed departure delays in seconds. Even-length delay lists take the
// truncated mean of the two middle values. Median descending, ties on name
// ascending, truncated to N.
func (e *Engine) queryDelayMedians(args []string) (Result, error) {
	if len(args) < 1 {
		return nil, ErrNotFound
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return nil, ErrNotFound
	}

	delays := make(map[string][]int)
	for _, f := range e.manager.Flights().All() {
		delays[f.Origin] = append(delays[f.Origin], f.Delay())
	}

	ranking := make(AirportDelays, 0, len(delays))
	for name, list := range delays {
		sort.Ints(list)
		mid := len(list) / 2
		median := list[mid]
		if len(list)%2 == 0 {
			median = (list[mid-1] + list[mid]) / 2
		}
		ranking = append(ranking, AirportMedian{Name: name, Median: median})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Median != ranking[j].Median {
			return ranking[i].Median > ranking[j].Median
		}
		return ranking[i].Name < ranking[j].Name
	})
	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking, nil
}
