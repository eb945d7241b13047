package queries

import (
	"sort"
	"strconv"

	"voyagedb/src/entities"
)

// queryHotelRating (query 3) averages the numeric ratings of a hotel's
// reservations. Reservations without a rating are skipped; a hotel with no
// rated stays (or no stays at all) averages to zero.
func (e *Engine) queryHotelRating(args []string) (Result, error) {
	if len(args) < 1 {
		return nil, ErrNotFound
	}
	reservations := e.manager.Reservations()

	sum, count := 0.0, 0
	for _, resID := range reservations.OfHotel(args[0]) {
		res := reservations.Get(resID)
		if res.Rating == "" {
			continue
		}
		value, err := strconv.ParseFloat(res.Rating, 64)
		if err != nil {
			continue
		}
		sum += value
		count++
	}
	if count == 0 {
		return Rating(0), nil
	}
	return Rating(sum / float64(count)), nil
}

// queryHotelStays (query 4) lists a hotel's reservations sorted by begin
// date descending, ties on id ascending. An unknown hotel is not found.
func (e *Engine) queryHotelStays(args []string) (Result, error) {
	if len(args) < 1 {
		return nil, ErrNotFound
	}
	reservations := e.manager.Reservations()
	resIDs := reservations.OfHotel(args[0])
	if resIDs == nil {
		return nil, ErrNotFound
	}

	rows := make(ReservationList, 0, len(resIDs))
	for _, resID := range resIDs {
		res := reservations.Get(resID)
		rows = append(rows, ReservationRow{
			ID:     res.ID,
			Begin:  res.Begin,
			End:    res.End,
			UserID: res.UserID,
			Rating: res.Rating,
			Cost:   res.Cost,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].Begin.Compare(rows[j].Begin); c != 0 {
			return c > 0
		}
		return rows[i].ID < rows[j].ID
	})
	return rows, nil
}

// queryHotelRevenue (query 8) sums a hotel's revenue over a date range.
// Only the nights of a stay that fall inside the range count: both stay
// ends are clamped to the range before the night count is taken.
func (e *Engine) queryHotelRevenue(args []string) (Result, error) {
	if len(args) < 3 {
		return nil, ErrNotFound
	}
	from, err := entities.ParseDate(args[1])
	if err != nil {
		return nil, ErrNotFound
	}
	to, err := entities.ParseDate(args[2])
	if err != nil {
		return nil, ErrNotFound
	}

	reservations := e.manager.Reservations()
	total := 0
	for _, resID := range reservations.OfHotel(args[0]) {
		res := reservations.Get(resID)
		if res.End.Compare(from) < 0 || res.Begin.Compare(to) > 0 {
			continue
		}
		begin, end := res.Begin, res.End
		if from.Compare(begin) > 0 {
			begin = from
		}
		if to.Compare(end) < 0 {
			end = to
		}
		total += res.PricePerNight * entities.DaysBetween(begin, end)
	}
	return Revenue(total), nil
}
