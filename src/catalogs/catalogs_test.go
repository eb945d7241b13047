package catalogs

import (
	"testing"

	"voyagedb/src/entities"
)

func TestUserCatalog(t *testing.T) {
	c := NewUserCatalog()
	c.Insert(&entities.User{ID: "U1", Name: "Alice"})
	c.Insert(&entities.User{ID: "U2", Name: "Bruno"})

	if got := c.Get("U1"); got == nil || got.Name != "Alice" {
		t.Errorf("Get(U1) = %v", got)
	}
	if got := c.Get("U9"); got != nil {
		t.Errorf("Get(U9) = %v, want nil", got)
	}
	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}

	t.Run("duplicate id replaces", func(t *testing.T) {
		c.Insert(&entities.User{ID: "U1", Name: "Alice Replacement"})
		if got := c.Get("U1").Name; got != "Alice Replacement" {
			t.Errorf("Get(U1).Name = %q after reinsert", got)
		}
		if got := c.Len(); got != 2 {
			t.Errorf("Len() = %d after reinsert, want 2", got)
		}
	})

	t.Run("spent accumulates", func(t *testing.T) {
		c.AddSpent("U2", 100.5)
		c.AddSpent("U2", 49.5)
		c.AddSpent("U9", 10) // unknown id is a no-op
		if got := c.Get("U2").TotalSpent; got != 150 {
			t.Errorf("TotalSpent = %v, want 150", got)
		}
	})

	t.Run("registration buckets", func(t *testing.T) {
		c.BumpRegistered(entities.Date{Year: 2022, Month: 3, Day: 5})
		c.BumpRegistered(entities.Date{Year: 2022, Month: 3, Day: 5})
		c.BumpRegistered(entities.Date{Year: 2022, Month: 3, Day: 31})
		buckets := c.Registered(MonthKey{Year: 2022, Month: 3})
		if buckets == nil {
			t.Fatal("Registered returned nil for a bumped month")
		}
		if buckets[4] != 2 || buckets[30] != 1 {
			t.Errorf("buckets = %v", buckets)
		}
		if got := buckets.Total(); got != 3 {
			t.Errorf("Total() = %d, want 3", got)
		}
		if c.Registered(MonthKey{Year: 2022, Month: 4}) != nil {
			t.Error("Registered returned buckets for an untouched month")
		}
	})
}

func TestFlightCatalogEviction(t *testing.T) {
	c := NewFlightCatalog()
	c.Insert(&entities.Flight{ID: "F1", TotalSeats: 2})

	c.AddPassenger("F1")
	c.AddPassenger("F1")
	if got := c.Get("F1").Passengers; got != 2 {
		t.Errorf("Passengers = %d, want 2", got)
	}

	c.Remove("F1")
	if c.Get("F1") != nil {
		t.Error("Get after Remove should be nil")
	}
	if got := c.Len(); got != 0 {
		t.Errorf("Len() = %d after Remove, want 0", got)
	}
	// Counting against a removed id must not panic or resurrect it.
	c.AddPassenger("F1")
	if c.Get("F1") != nil {
		t.Error("AddPassenger resurrected a removed flight")
	}
}

func TestReservationCatalogReverseLists(t *testing.T) {
	c := NewReservationCatalog()
	c.Insert(&entities.Reservation{ID: "R1", UserID: "U1", HotelID: "H1"})
	c.Insert(&entities.Reservation{ID: "R2", UserID: "U1", HotelID: "H2"})
	c.LinkUser("R1", "U1")
	c.LinkUser("R2", "U1")
	c.LinkHotel("R1", "H1")
	c.LinkHotel("R2", "H2")

	if got := c.OfUser("U1"); len(got) != 2 {
		t.Errorf("OfUser(U1) = %v, want two ids", got)
	}
	if got := c.CountOfUser("U1"); got != 2 {
		t.Errorf("CountOfUser(U1) = %d, want 2", got)
	}
	if got := c.OfHotel("H1"); len(got) != 1 || got[0] != "R1" {
		t.Errorf("OfHotel(H1) = %v, want [R1]", got)
	}
	if c.OfHotel("H9") != nil {
		t.Error("OfHotel for unknown hotel should be nil")
	}
	if c.OfUser("U9") != nil {
		t.Error("OfUser for unknown user should be nil")
	}
}

func TestPassengerCatalog(t *testing.T) {
	c := NewPassengerCatalog()
	c.Link("F1", "U1")
	c.Link("F1", "U2")
	c.Link("F2", "U1")

	if got := c.FlightsOfUser("U1"); len(got) != 2 {
		t.Errorf("FlightsOfUser(U1) = %v, want two ids", got)
	}
	if got := c.CountFlightsOfUser("U2"); got != 1 {
		t.Errorf("CountFlightsOfUser(U2) = %d, want 1", got)
	}
	if got := c.PassengersOfFlight("F1"); len(got) != 2 {
		t.Errorf("PassengersOfFlight(F1) = %v, want two ids", got)
	}

	day := DayKey{Year: 2021, Month: 1, Day: 1}
	c.AddDaily(day, "U1")
	c.AddDaily(day, "U1")
	c.AddDaily(day, "U2")
	if got := c.Daily(day); len(got) != 3 {
		t.Errorf("Daily = %v, want three entries", got)
	}
	if c.Daily(DayKey{Year: 2021, Month: 1, Day: 2}) != nil {
		t.Error("Daily for an untouched day should be nil")
	}
}

func TestKeys(t *testing.T) {
	d := entities.Date{Year: 2023, Month: 1, Day: 31}
	if got := MonthKeyOf(d); got != (MonthKey{Year: 2023, Month: 1}) {
		t.Errorf("MonthKeyOf = %v", got)
	}
	if got := DayKeyOf(d); got != (DayKey{Year: 2023, Month: 1, Day: 31}) {
		t.Errorf("DayKeyOf = %v", got)
	}
	// Structured keys keep adjacent year/month pairs apart.
	if MonthKeyOf(entities.Date{Year: 2023, Month: 1, Day: 1}) == MonthKeyOf(entities.Date{Year: 202, Month: 31, Day: 1}) {
		t.Error("distinct year/month pairs collided")
	}
}
