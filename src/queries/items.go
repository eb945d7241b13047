package queries

import "sort"

// queryUserItems (query 2) lists a user's flights and/or reservations,
// newest first. Flights sort on their scheduled departure, reservations on
// their begin date at midnight. Ties break on id ascending.
func (e *Engine) queryUserItems(args []string) (Result, error) {
	if len(args) < 1 {
		return nil, ErrNotFound
	}
	user := e.manager.Users().Get(args[0])
	if user == nil || user.Inactive() {
		return nil, ErrNotFound
	}

	filter := ""
	if len(args) > 1 {
		filter = args[1]
		if filter != "flights" && filter != "reservations" {
			return nil, ErrNotFound
		}
	}

	var items []Item
	if filter == "" || filter == "flights" {
		for _, flightID := range e.manager.Passengers().FlightsOfUser(args[0]) {
			flight := e.manager.Flights().Get(flightID)
			if flight == nil {
				// Stale reverse-index entry for an evicted flight.
				continue
			}
			items = append(items, Item{
				ID:   flightID,
				Date: flight.ScheduleDeparture,
				Kind: "flight",
			})
		}
	}
	if filter == "" || filter == "reservations" {
		for _, resID := range e.manager.Reservations().OfUser(args[0]) {
			res := e.manager.Reservations().Get(resID)
			items = append(items, Item{
				ID:   resID,
				Date: res.Begin.Midnight(),
				Kind: "reservation",
			})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if c := items[i].Date.Compare(items[j].Date); c != 0 {
			return c > 0
		}
		return items[i].ID < items[j].ID
	})
	return ItemList{Filter: filter, Items: items}, nil
}
