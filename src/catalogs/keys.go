package catalogs

import "voyagedb/src/entities"

// MonthKey addresses one 31-slot day-bucket counter. Structured fields
// instead of a concatenated year+month string, so 2023+1 and 202+31 can
// never collide.
type MonthKey struct {
	Year  int
	Month int
}

// DayKey addresses the per-day passenger lists.
type DayKey struct {
	Year  int
	Month int
	Day   int
}

// DayBuckets counts events per calendar day within one year-month.
type DayBuckets [31]int

func (b *DayBuckets) Total() int {
	sum := 0
	for _, n := range b {
		sum += n
	}
	return sum
}

func MonthKeyOf(d entities.Date) MonthKey {
	return MonthKey{Year: d.Year, Month: d.Month}
}

func DayKeyOf(d entities.Date) DayKey {
	return DayKey{Year: d.Year, Month: d.Month, Day: d.Day}
}
