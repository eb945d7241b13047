package entities

// Flight is immutable after construction except for Passengers, which is
// incremented once per valid passenger record. The catalog enforces that
// Passengers never exceeds TotalSeats.
type Flight struct {
	ID                string
	Airline           string
	PlaneModel        string
	TotalSeats        int
	Origin            string
	Destination       string
	ScheduleDeparture DateTime
	ScheduleArrival   DateTime
	RealDeparture     DateTime
	RealArrival       DateTime
	Passengers        int
}

// Delay is the signed departure delay in seconds.
func (f *Flight) Delay() int {
	return DelaySeconds(f.ScheduleDeparture, f.RealDeparture)
}
