package catalogs

import "voyagedb/src/entities"

// ReservationCatalog indexes reservations by id, keeps user and hotel
// reverse lists, and counts stay beginnings per calendar day.
type ReservationCatalog struct {
	reservations map[string]*entities.Reservation
	byUser       map[string][]string
	byHotel      map[string][]string
	begun        map[MonthKey]*DayBuckets
}

func NewReservationCatalog() *ReservationCatalog {
	return &ReservationCatalog{
		reservations: make(map[string]*entities.Reservation),
		byUser:       make(map[string][]string),
		byHotel:      make(map[string][]string),
		begun:        make(map[MonthKey]*DayBuckets),
	}
}

func (c *ReservationCatalog) Insert(r *entities.Reservation) {
	c.reservations[r.ID] = r
}

// Get returns the reservation or nil when the id is unknown.
func (c *ReservationCatalog) Get(id string) *entities.Reservation {
	return c.reservations[id]
}

// LinkUser appends the reservation to the user's reverse list.
func (c *ReservationCatalog) LinkUser(reservationID, userID string) {
	c.byUser[userID] = append(c.byUser[userID], reservationID)
}

// LinkHotel appends the reservation to the hotel's reverse list.
func (c *ReservationCatalog) LinkHotel(reservationID, hotelID string) {
	c.byHotel[hotelID] = append(c.byHotel[hotelID], reservationID)
}

// OfUser returns the ids of the user's reservations, nil when none.
func (c *ReservationCatalog) OfUser(userID string) []string {
	return c.byUser[userID]
}

// OfHotel returns the ids of the hotel's reservations, nil when the hotel
// is unknown.
func (c *ReservationCatalog) OfHotel(hotelID string) []string {
	return c.byHotel[hotelID]
}

func (c *ReservationCatalog) CountOfUser(userID string) int {
	return len(c.byUser[userID])
}

func (c *ReservationCatalog) BumpBegun(d entities.Date) {
	k := MonthKeyOf(d)
	buckets := c.begun[k]
	if buckets == nil {
		buckets = &DayBuckets{}
		c.begun[k] = buckets
	}
	buckets[d.Day-1]++
}

func (c *ReservationCatalog) Begun(k MonthKey) *DayBuckets {
	return c.begun[k]
}

func (c *ReservationCatalog) Len() int {
	return len(c.reservations)
}
