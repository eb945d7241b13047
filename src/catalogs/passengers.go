package catalogs

// PassengerCatalog records who flew on what: the user->flights and
// flight->users reverse lists, plus the per-day lists of passenger user ids
// that feed the unique/total passenger metrics.
type PassengerCatalog struct {
	flightsOfUser map[string][]string
	usersOfFlight map[string][]string
	daily         map[DayKey][]string
}

func NewPassengerCatalog() *PassengerCatalog {
	return &PassengerCatalog{
		flightsOfUser: make(map[string][]string),
		usersOfFlight: make(map[string][]string),
		daily:         make(map[DayKey][]string),
	}
}

// Link records that the user boarded the flight, updating both reverse
// lists.
func (c *PassengerCatalog) Link(flightID, userID string) {
	c.flightsOfUser[userID] = append(c.flightsOfUser[userID], flightID)
	c.usersOfFlight[flightID] = append(c.usersOfFlight[flightID], userID)
}

// FlightsOfUser returns the ids of the flights the user took, nil when none.
func (c *PassengerCatalog) FlightsOfUser(userID string) []string {
	return c.flightsOfUser[userID]
}

// PassengersOfFlight returns the ids of the users on the flight, nil when
// none.
func (c *PassengerCatalog) PassengersOfFlight(flightID string) []string {
	return c.usersOfFlight[flightID]
}

func (c *PassengerCatalog) CountFlightsOfUser(userID string) int {
	return len(c.flightsOfUser[userID])
}

// AddDaily appends the user to the passenger list of the flight's departure
// day.
func (c *PassengerCatalog) AddDaily(k DayKey, userID string) {
	c.daily[k] = append(c.daily[k], userID)
}

// Daily returns the passenger user ids for one day, nil when none.
func (c *PassengerCatalog) Daily(k DayKey) []string {
	return c.daily[k]
}
