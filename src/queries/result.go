package queries

import "voyagedb/src/entities"

// Result is the tagged union of the query output shapes. One variant per
// shape; the output writers type-switch on it instead of consulting
// parallel per-query tables.
type Result interface {
	isResult()
}

// UserSummary is query 1's answer for a user id.
type UserSummary struct {
	Name             string
	Sex              string
	Age              int
	CountryCode      string
	Passport         string
	FlightCount      int
	ReservationCount int
	TotalSpent       float64
}

// FlightSummary is query 1's answer for a flight id.
type FlightSummary struct {
	Airline           string
	PlaneModel        string
	Origin            string
	Destination       string
	ScheduleDeparture entities.DateTime
	ScheduleArrival   entities.DateTime
	Passengers        int
	Delay             int
}

// ReservationSummary is query 1's answer for a reservation id.
type ReservationSummary struct {
	HotelID    string
	HotelName  string
	HotelStars string
	Begin      entities.Date
	End        entities.Date
	Breakfast  entities.Breakfast
	Nights     int
	TotalPrice float64
}

// Item is one entry of a user's travel history: a flight or a reservation,
// annotated with the date it sorts on.
type Item struct {
	ID   string
	Date entities.DateTime
	Kind string // "flight" or "reservation"
}

// ItemList is query 2's answer. Filter echoes the requested type ("flights"
// or "reservations"), empty when both were listed.
type ItemList struct {
	Filter string
	Items  []Item
}

// Rating is query 3's answer: a hotel's average rating.
type Rating float64

// ReservationRow is one line of query 4's hotel listing.
type ReservationRow struct {
	ID     string
	Begin  entities.Date
	End    entities.Date
	UserID string
	Rating string
	Cost   float64
}

type ReservationList []ReservationRow

// FlightRow is one line of query 5's airport departure listing.
type FlightRow struct {
	ID                string
	ScheduleDeparture entities.DateTime
	Destination       string
	Airline           string
	PlaneModel        string
}

type FlightList []FlightRow

// AirportCount is one line of query 6's passenger ranking.
type AirportCount struct {
	Name       string
	Passengers int
}

type AirportPassengers []AirportCount

// AirportMedian is one line of query 7's delay ranking.
type AirportMedian struct {
	Name   string
	Median int
}

type AirportDelays []AirportMedian

// Revenue is query 8's answer.
type Revenue int

// UserRow is one line of query 9's prefix listing.
type UserRow struct {
	ID   string
	Name string
}

type UserList []UserRow

// MetricsRow is one line of query 10. Bucket is a year, month number or day
// of month depending on the table's granularity.
type MetricsRow struct {
	Bucket           int
	Users            int
	Flights          int
	Passengers       int
	UniquePassengers int
	Reservations     int
}

func (r MetricsRow) nonzero() bool {
	return r.Users != 0 || r.Flights != 0 || r.Passengers != 0 ||
		r.UniquePassengers != 0 || r.Reservations != 0
}

// MetricsTable is query 10's answer. Granularity is "year", "month" or
// "day".
type MetricsTable struct {
	Granularity string
	Rows        []MetricsRow
}

func (UserSummary) isResult()        {}
func (FlightSummary) isResult()      {}
func (ReservationSummary) isResult() {}
func (ItemList) isResult()           {}
func (Rating) isResult()             {}
func (ReservationList) isResult()    {}
func (FlightList) isResult()         {}
func (AirportPassengers) isResult()  {}
func (AirportDelays) isResult()      {}
func (Revenue) isResult()            {}
func (UserList) isResult()           {}
func (MetricsTable) isResult()       {}
