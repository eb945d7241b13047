package entities

// Account status values, case-folded at load time.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// User is immutable after construction except for TotalSpent, which
// accumulates the cost of every valid reservation the user makes.
type User struct {
	ID            string
	Name          string
	Age           int
	Sex           string
	Passport      string
	CountryCode   string
	AccountStatus string
	TotalSpent    float64
}

func (u *User) Inactive() bool {
	return u.AccountStatus == StatusInactive
}
