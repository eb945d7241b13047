package catalogs

import "voyagedb/src/entities"

// UserCatalog indexes users by id and counts registrations per calendar day.
type UserCatalog struct {
	users      map[string]*entities.User
	registered map[MonthKey]*DayBuckets
}

func NewUserCatalog() *UserCatalog {
	return &UserCatalog{
		users:      make(map[string]*entities.User),
		registered: make(map[MonthKey]*DayBuckets),
	}
}

// Insert adds the user under its id. A duplicate id replaces the previous
// record (last write wins).
func (c *UserCatalog) Insert(u *entities.User) {
	c.users[u.ID] = u
}

// Get returns the user or nil when the id is unknown.
func (c *UserCatalog) Get(id string) *entities.User {
	return c.users[id]
}

// AddSpent credits a reservation's cost to the user's running total.
func (c *UserCatalog) AddSpent(id string, cost float64) {
	if u := c.users[id]; u != nil {
		u.TotalSpent += cost
	}
}

// BumpRegistered counts one registration on the given day.
func (c *UserCatalog) BumpRegistered(d entities.Date) {
	k := MonthKeyOf(d)
	buckets := c.registered[k]
	if buckets == nil {
		buckets = &DayBuckets{}
		c.registered[k] = buckets
	}
	buckets[d.Day-1]++
}

// Registered returns the day buckets for one month, or nil when no user
// registered in it.
func (c *UserCatalog) Registered(k MonthKey) *DayBuckets {
	return c.registered[k]
}

// All exposes the primary index for full scans (prefix search).
func (c *UserCatalog) All() map[string]*entities.User {
	return c.users
}

func (c *UserCatalog) Len() int {
	return len(c.users)
}
