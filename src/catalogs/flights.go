package catalogs

import "voyagedb/src/entities"

// FlightCatalog indexes flights by id and counts scheduled departures per
// calendar day.
type FlightCatalog struct {
	flights   map[string]*entities.Flight
	scheduled map[MonthKey]*DayBuckets
}

func NewFlightCatalog() *FlightCatalog {
	return &FlightCatalog{
		flights:   make(map[string]*entities.Flight),
		scheduled: make(map[MonthKey]*DayBuckets),
	}
}

func (c *FlightCatalog) Insert(f *entities.Flight) {
	c.flights[f.ID] = f
}

// Get returns the flight or nil when the id is unknown.
func (c *FlightCatalog) Get(id string) *entities.Flight {
	return c.flights[id]
}

// AddPassenger counts one boarded passenger on the flight.
func (c *FlightCatalog) AddPassenger(id string) {
	if f := c.flights[id]; f != nil {
		f.Passengers++
	}
}

// Remove evicts a flight from the primary index. Reverse indexes built from
// earlier passenger records may keep stale references to the id; readers
// must treat a nil Get as "skip".
func (c *FlightCatalog) Remove(id string) {
	delete(c.flights, id)
}

func (c *FlightCatalog) BumpScheduled(d entities.Date) {
	k := MonthKeyOf(d)
	buckets := c.scheduled[k]
	if buckets == nil {
		buckets = &DayBuckets{}
		c.scheduled[k] = buckets
	}
	buckets[d.Day-1]++
}

func (c *FlightCatalog) Scheduled(k MonthKey) *DayBuckets {
	return c.scheduled[k]
}

// All exposes the primary index for full scans (departure listings and
// airport rankings).
func (c *FlightCatalog) All() map[string]*entities.Flight {
	return c.flights
}

func (c *FlightCatalog) Len() int {
	return len(c.flights)
}
