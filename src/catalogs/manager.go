package catalogs

// Manager aggregates the four catalogs behind one handle. It is the unit of
// lifetime for a loaded dataset: queries read through it, ingestion writes
// through it, and dropping it releases every index at once.
type Manager struct {
	users        *UserCatalog
	flights      *FlightCatalog
	reservations *ReservationCatalog
	passengers   *PassengerCatalog
}

func NewManager() *Manager {
	return &Manager{
		users:        NewUserCatalog(),
		flights:      NewFlightCatalog(),
		reservations: NewReservationCatalog(),
		passengers:   NewPassengerCatalog(),
	}
}

func (m *Manager) Users() *UserCatalog {
	return m.users
}

func (m *Manager) Flights() *FlightCatalog {
	return m.flights
}

func (m *Manager) Reservations() *ReservationCatalog {
	return m.reservations
}

func (m *Manager) Passengers() *PassengerCatalog {
	return m.passengers
}
