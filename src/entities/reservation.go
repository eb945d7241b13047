package entities

// Breakfast is the tri-state includes-breakfast flag. The input encodes it
// as 1/0, t/f or true/false in any case, or leaves the field empty.
type Breakfast int

const (
	BreakfastUnset Breakfast = iota
	BreakfastFalse
	BreakfastTrue
)

// String renders the flag the way reports expect, with the unset state
// reading as False.
func (b Breakfast) String() string {
	if b == BreakfastTrue {
		return "True"
	}
	return "False"
}

// Reservation is immutable after construction. Cost is derived at build
// time as nights x price-per-night x (1 + city-tax/100). Rating is the raw
// field, empty when the guest left none.
type Reservation struct {
	ID            string
	UserID        string
	HotelID       string
	HotelName     string
	HotelStars    string
	Begin         Date
	End           Date
	Breakfast     Breakfast
	Rating        string
	Cost          float64
	PricePerNight int
}

// Nights is the length of the stay in nights.
func (r *Reservation) Nights() int {
	return DaysBetween(r.Begin, r.End)
}
