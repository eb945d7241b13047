package entities

import "fmt"

// Date is a calendar date as it appears in the input files. It is kept as
// plain fields rather than a time.Time because the datasets only promise
// calendar-plausible values (month 1-12, day 1-31) and rows like 2023/02/31
// must still load and sort.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateTime extends Date with a time of day.
type DateTime struct {
	Date
	Hour   int
	Minute int
	Second int
}

// SystemDate is the fixed reference date ages are derived against.
var SystemDate = Date{Year: 2023, Month: 10, Day: 1}

func ParseDate(s string) (Date, error) {
	if len(s) != 10 || s[4] != '/' || s[7] != '/' {
		return Date{}, fmt.Errorf("malformed date %q", s)
	}
	year, ok1 := digits(s[0:4])
	month, ok2 := digits(s[5:7])
	day, ok3 := digits(s[8:10])
	if !ok1 || !ok2 || !ok3 {
		return Date{}, fmt.Errorf("malformed date %q", s)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, fmt.Errorf("date %q out of range", s)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

func ParseDateTime(s string) (DateTime, error) {
	if len(s) != 19 || s[10] != ' ' || s[13] != ':' || s[16] != ':' {
		return DateTime{}, fmt.Errorf("malformed datetime %q", s)
	}
	date, err := ParseDate(s[:10])
	if err != nil {
		return DateTime{}, err
	}
	hour, ok1 := digits(s[11:13])
	minute, ok2 := digits(s[14:16])
	second, ok3 := digits(s[17:19])
	if !ok1 || !ok2 || !ok3 {
		return DateTime{}, fmt.Errorf("malformed datetime %q", s)
	}
	if hour > 23 || minute > 59 || second > 59 {
		return DateTime{}, fmt.Errorf("datetime %q out of range", s)
	}
	return DateTime{Date: date, Hour: hour, Minute: minute, Second: second}, nil
}

func digits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%s %02d:%02d:%02d", dt.Date, dt.Hour, dt.Minute, dt.Second)
}

// Compare returns -1, 0 or 1 as d sorts before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

func (dt DateTime) Compare(o DateTime) int {
	if c := dt.Date.Compare(o.Date); c != 0 {
		return c
	}
	switch {
	case dt.Hour != o.Hour:
		return sign(dt.Hour - o.Hour)
	case dt.Minute != o.Minute:
		return sign(dt.Minute - o.Minute)
	default:
		return sign(dt.Second - o.Second)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// serial maps the date onto a continuous day count so spans can be taken
// across month and year boundaries. Implausible-but-accepted dates such as
// 2023/02/31 land past the month end, which keeps the mapping monotonic.
func (d Date) serial() int {
	y := d.Year
	if d.Month <= 2 {
		y--
	}
	era := y / 400
	yoe := y - era*400
	var doy int
	if d.Month > 2 {
		doy = (153*(d.Month-3)+2)/5 + d.Day - 1
	} else {
		doy = (153*(d.Month+9)+2)/5 + d.Day - 1
	}
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// DaysBetween returns the signed number of days from a to b.
func DaysBetween(a, b Date) int {
	return b.serial() - a.serial()
}

// epochSeconds expresses the instant as seconds on the serial-day scale.
func (dt DateTime) epochSeconds() int64 {
	return int64(dt.serial())*86400 + int64(dt.Hour)*3600 + int64(dt.Minute)*60 + int64(dt.Second)
}

// DelaySeconds returns the signed delay of actual relative to scheduled.
func DelaySeconds(scheduled, actual DateTime) int {
	return int(actual.epochSeconds() - scheduled.epochSeconds())
}

// AgeAt derives a whole-years age for someone born on birth as of ref.
func AgeAt(birth, ref Date) int {
	age := ref.Year - birth.Year
	if birth.Month > ref.Month || (birth.Month == ref.Month && birth.Day > ref.Day) {
		age--
	}
	return age
}

// Midnight lifts a date to the first instant of that day, used when flight
// timestamps and reservation dates are sorted on one axis.
func (d Date) Midnight() DateTime {
	return DateTime{Date: d}
}
