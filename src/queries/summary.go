package queries

// querySummary (query 1) summarizes a user, flight or reservation by id.
// The id shape disambiguates: all digits is tried as a flight, a "Book"
// prefix as a reservation, anything else falls through to the users index.
// A numeric id that misses the flight index still falls through, so the
// precedence is flight > reservation > user.
func (e *Engine) querySummary(args []string) (Result, error) {
	if len(args) < 1 {
		return nil, ErrNotFound
	}
	id := args[0]

	if allDigits(id) {
		if f := e.manager.Flights().Get(id); f != nil {
			return FlightSummary{
				Airline:           f.Airline,
				PlaneModel:        f.PlaneModel,
				Origin:            f.Origin,
				Destination:       f.Destination,
				ScheduleDeparture: f.ScheduleDeparture,
				ScheduleArrival:   f.ScheduleArrival,
				Passengers:        f.Passengers,
				Delay:             f.Delay(),
			}, nil
		}
	}

	if len(id) >= 4 && id[:4] == "Book" {
		if r := e.manager.Reservations().Get(id); r != nil {
			return ReservationSummary{
				HotelID:    r.HotelID,
				HotelName:  r.HotelName,
				HotelStars: r.HotelStars,
				Begin:      r.Begin,
				End:        r.End,
				Breakfast:  r.Breakfast,
				Nights:     r.Nights(),
				TotalPrice: r.Cost,
			}, nil
		}
	}

	user := e.manager.Users().Get(id)
	if user == nil || user.Inactive() {
		return nil, ErrNotFound
	}
	return UserSummary{
		Name:             user.Name,
		Sex:              user.Sex,
		Age:              user.Age,
		CountryCode:      user.CountryCode,
		Passport:         user.Passport,
		FlightCount:      e.manager.Passengers().CountFlightsOfUser(id),
		ReservationCount: e.manager.Reservations().CountOfUser(id),
		TotalSpent:       user.TotalSpent,
	}, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
