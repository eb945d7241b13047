package ingest

import (
	"strconv"
	"strings"

	"voyagedb/src/catalogs"
	"voyagedb/src/entities"
)

// Builders check a record's fields and, on success, construct the entity
// and update the primary index plus every auxiliary index. Validation runs
// entirely before the first insertion.

// users.csv: id;name;email;phone;birth_date;sex;passport;country_code;
// address;account_creation;pay_method;account_status
func (p *Pipeline) buildUser(fields []string) bool {
	for _, i := range []int{0, 1, 3, 4, 5, 6, 8, 9, 10} {
		if fields[i] == "" {
			return false
		}
	}
	if !ValidEmail(fields[2]) || !ValidDate(fields[4]) ||
		!ValidCountryCode(fields[7]) || !ValidDateTime(fields[9]) ||
		!ValidAccountStatus(fields[11]) {
		return false
	}
	birth, _ := entities.ParseDate(fields[4])
	created, _ := entities.ParseDateTime(fields[9])
	if birth.Compare(created.Date) > 0 {
		return false
	}

	user := &entities.User{
		ID:            fields[0],
		Name:          fields[1],
		Age:           entities.AgeAt(birth, entities.SystemDate),
		Sex:           fields[5],
		Passport:      fields[6],
		CountryCode:   fields[7],
		AccountStatus: strings.ToUpper(fields[11]),
	}
	users := p.manager.Users()
	users.Insert(user)
	users.BumpRegistered(created.Date)
	return true
}

// flights.csv: id;airline;plane_model;total_seats;origin;destination;
// schedule_departure_date;schedule_arrival_date;real_departure_date;
// real_arrival_date;pilot;copilot;notes
func (p *Pipeline) buildFlight(fields []string) bool {
	for _, i := range []int{0, 1, 2, 10, 11} {
		if fields[i] == "" {
			return false
		}
	}
	for _, i := range []int{6, 7, 8, 9} {
		if !ValidDateTime(fields[i]) {
			return false
		}
	}
	schedDep, _ := entities.ParseDateTime(fields[6])
	schedArr, _ := entities.ParseDateTime(fields[7])
	realDep, _ := entities.ParseDateTime(fields[8])
	realArr, _ := entities.ParseDateTime(fields[9])
	if schedDep.Compare(schedArr) >= 0 || realDep.Compare(realArr) >= 0 {
		return false
	}
	if !ValidSeats(fields[3]) || !ValidAirport(fields[4]) || !ValidAirport(fields[5]) {
		return false
	}
	seats, _ := strconv.Atoi(fields[3])

	flight := &entities.Flight{
		ID:                fields[0],
		Airline:           fields[1],
		PlaneModel:        fields[2],
		TotalSeats:        seats,
		Origin:            strings.ToUpper(fields[4]),
		Destination:       strings.ToUpper(fields[5]),
		ScheduleDeparture: schedDep,
		ScheduleArrival:   schedArr,
		RealDeparture:     realDep,
		RealArrival:       realArr,
	}
	flights := p.manager.Flights()
	flights.Insert(flight)
	flights.BumpScheduled(schedDep.Date)
	return true
}

// reservations.csv: id;user_id;hotel_id;hotel_name;hotel_stars;city_tax;
// address;begin_date;end_date;price_per_night;includes_breakfast;
// room_details;rating;comment
func (p *Pipeline) buildReservation(fields []string) bool {
	for _, i := range []int{0, 1, 2, 3, 6} {
		if fields[i] == "" {
			return false
		}
	}
	if !ValidHotelStars(fields[4]) || !ValidCityTax(fields[5]) ||
		!ValidDate(fields[7]) || !ValidDate(fields[8]) {
		return false
	}
	begin, _ := entities.ParseDate(fields[7])
	end, _ := entities.ParseDate(fields[8])
	if begin.Compare(end) > 0 {
		return false
	}
	if !ValidPricePerNight(fields[9]) || !ValidBreakfast(fields[10]) ||
		!ValidRating(fields[12]) {
		return false
	}
	users := p.manager.Users()
	if users.Get(fields[1]) == nil {
		return false
	}
	price, _ := strconv.Atoi(fields[9])
	cityTax, _ := strconv.Atoi(fields[5])
	nights := entities.DaysBetween(begin, end)
	cost := float64(price*nights) * (1 + float64(cityTax)/100)

	res := &entities.Reservation{
		ID:            fields[0],
		UserID:        fields[1],
		HotelID:       fields[2],
		HotelName:     fields[3],
		HotelStars:    fields[4],
		Begin:         begin,
		End:           end,
		Breakfast:     ParseBreakfast(fields[10]),
		Rating:        fields[12],
		Cost:          cost,
		PricePerNight: price,
	}
	reservations := p.manager.Reservations()
	reservations.Insert(res)
	reservations.LinkUser(res.ID, res.UserID)
	reservations.LinkHotel(res.ID, res.HotelID)
	reservations.BumpBegun(begin)
	users.AddSpent(res.UserID, cost)
	return true
}

// passengers.csv: flight_id;user_id
func (p *Pipeline) buildPassenger(fields []string) bool {
	flightID, userID := fields[0], fields[1]
	if flightID == "" || userID == "" {
		return false
	}
	flights := p.manager.Flights()
	flight := flights.Get(flightID)
	if flight == nil || p.manager.Users().Get(userID) == nil {
		return false
	}

	// Boarding one more passenger must never push the count past the seat
	// capacity. A violating record evicts the whole flight: its last known
	// state goes to the flights error sink, then the record is rejected.
	if flight.Passengers >= flight.TotalSeats {
		p.dumpFlight(flight)
		flights.Remove(flightID)
		return false
	}

	passengers := p.manager.Passengers()
	passengers.Link(flightID, userID)
	flights.AddPassenger(flightID)
	passengers.AddDaily(catalogs.DayKeyOf(flight.ScheduleDeparture.Date), userID)
	return true
}
