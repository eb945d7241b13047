package output

import (
	"fmt"
	"io"
	"path/filepath"

	"voyagedb/src/queries"
)

// Write renders a query result in either the plain positional layout or
// the labeled "--- N ---" block layout.
func Write(w io.Writer, result queries.Result, labeled bool) {
	if labeled {
		writeLabeled(w, result)
		return
	}
	writePlain(w, result)
}

// CommandFile returns the path of the report for the n-th command of a run.
func CommandFile(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("command%d_output.txt", n))
}

func writePlain(w io.Writer, result queries.Result) {
	switch r := result.(type) {
	case queries.UserSummary:
		fmt.Fprintf(w, "%s;%s;%d;%s;%s;%d;%d;%.3f\n",
			r.Name, r.Sex, r.Age, r.CountryCode, r.Passport,
			r.FlightCount, r.ReservationCount, r.TotalSpent)
	case queries.FlightSummary:
		fmt.Fprintf(w, "%s;%s;%s;%s;%s;%s;%d;%d\n",
			r.Airline, r.PlaneModel, r.Origin, r.Destination,
			r.ScheduleDeparture, r.ScheduleArrival, r.Passengers, r.Delay)
	case queries.ReservationSummary:
		fmt.Fprintf(w, "%s;%s;%s;%s;%s;%s;%d;%.3f\n",
			r.HotelID, r.HotelName, r.HotelStars, r.Begin, r.End,
			r.Breakfast, r.Nights, r.TotalPrice)
	case queries.ItemList:
		for _, item := range r.Items {
			if r.Filter == "" {
				fmt.Fprintf(w, "%s;%s;%s\n", item.ID, item.Date.Date, item.Kind)
			} else {
				fmt.Fprintf(w, "%s;%s\n", item.ID, item.Date.Date)
			}
		}
	case queries.Rating:
		fmt.Fprintf(w, "%.3f\n", float64(r))
	case queries.ReservationList:
		for _, row := range r {
			fmt.Fprintf(w, "%s;%s;%s;%s;%s;%.3f\n",
				row.ID, row.Begin, row.End, row.UserID, row.Rating, row.Cost)
		}
	case queries.FlightList:
		for _, row := range r {
			fmt.Fprintf(w, "%s;%s;%s;%s;%s\n",
				row.ID, row.ScheduleDeparture, row.Destination, row.Airline, row.PlaneModel)
		}
	case queries.AirportPassengers:
		for _, row := range r {
			fmt.Fprintf(w, "%s;%d\n", row.Name, row.Passengers)
		}
	case queries.AirportDelays:
		for _, row := range r {
			fmt.Fprintf(w, "%s;%d\n", row.Name, row.Median)
		}
	case queries.Revenue:
		fmt.Fprintf(w, "%d\n", int(r))
	case queries.UserList:
		for _, row := range r {
			fmt.Fprintf(w, "%s;%s\n", row.ID, row.Name)
		}
	case queries.MetricsTable:
		for _, row := range r.Rows {
			fmt.Fprintf(w, "%d;%d;%d;%d;%d;%d\n",
				row.Bucket, row.Users, row.Flights, row.Passengers,
				row.UniquePassengers, row.Reservations)
		}
	}
}

func writeLabeled(w io.Writer, result queries.Result) {
	switch r := result.(type) {
	case queries.UserSummary:
		fmt.Fprint(w, "--- 1 ---\n")
		fmt.Fprintf(w, "name: %s\n", r.Name)
		fmt.Fprintf(w, "sex: %s\n", r.Sex)
		fmt.Fprintf(w, "age: %d\n", r.Age)
		fmt.Fprintf(w, "country_code: %s\n", r.CountryCode)
		fmt.Fprintf(w, "passport: %s\n", r.Passport)
		fmt.Fprintf(w, "number_of_flights: %d\n", r.FlightCount)
		fmt.Fprintf(w, "number_of_reservations: %d\n", r.ReservationCount)
		fmt.Fprintf(w, "total_spent: %.3f\n", r.TotalSpent)
	case queries.FlightSummary:
		fmt.Fprint(w, "--- 1 ---\n")
		fmt.Fprintf(w, "airline: %s\n", r.Airline)
		fmt.Fprintf(w, "plane_model: %s\n", r.PlaneModel)
		fmt.Fprintf(w, "origin: %s\n", r.Origin)
		fmt.Fprintf(w, "destination: %s\n", r.Destination)
		fmt.Fprintf(w, "schedule_departure_date: %s\n", r.ScheduleDeparture)
		fmt.Fprintf(w, "schedule_arrival_date: %s\n", r.ScheduleArrival)
		fmt.Fprintf(w, "passengers: %d\n", r.Passengers)
		fmt.Fprintf(w, "delay: %d\n", r.Delay)
	case queries.ReservationSummary:
		fmt.Fprint(w, "--- 1 ---\n")
		fmt.Fprintf(w, "hotel_id: %s\n", r.HotelID)
		fmt.Fprintf(w, "hotel_name: %s\n", r.HotelName)
		fmt.Fprintf(w, "hotel_stars: %s\n", r.HotelStars)
		fmt.Fprintf(w, "begin_date: %s\n", r.Begin)
		fmt.Fprintf(w, "end_date: %s\n", r.End)
		fmt.Fprintf(w, "includes_breakfast: %s\n", r.Breakfast)
		fmt.Fprintf(w, "nights: %d\n", r.Nights)
		fmt.Fprintf(w, "total_price: %.3f\n", r.TotalPrice)
	case queries.ItemList:
		for i, item := range r.Items {
			fmt.Fprintf(w, "--- %d ---\n", i+1)
			fmt.Fprintf(w, "id: %s\n", item.ID)
			fmt.Fprintf(w, "date: %s\n", item.Date.Date)
			if r.Filter == "" {
				fmt.Fprintf(w, "type: %s\n", item.Kind)
			}
			if i != len(r.Items)-1 {
				fmt.Fprintln(w)
			}
		}
	case queries.Rating:
		fmt.Fprint(w, "--- 1 ---\n")
		fmt.Fprintf(w, "rating: %.3f\n", float64(r))
	case queries.ReservationList:
		for i, row := range r {
			fmt.Fprintf(w, "--- %d ---\n", i+1)
			fmt.Fprintf(w, "id: %s\n", row.ID)
			fmt.Fprintf(w, "begin_date: %s\n", row.Begin)
			fmt.Fprintf(w, "end_date: %s\n", row.End)
			fmt.Fprintf(w, "user_id: %s\n", row.UserID)
			fmt.Fprintf(w, "rating: %s\n", row.Rating)
			fmt.Fprintf(w, "total_price: %.3f\n", row.Cost)
			if i != len(r)-1 {
				fmt.Fprintln(w)
			}
		}
	case queries.FlightList:
		for i, row := range r {
			fmt.Fprintf(w, "--- %d ---\n", i+1)
			fmt.Fprintf(w, "id: %s\n", row.ID)
			fmt.Fprintf(w, "schedule_departure_date: %s\n", row.ScheduleDeparture)
			fmt.Fprintf(w, "destination: %s\n", row.Destination)
			fmt.Fprintf(w, "airline: %s\n", row.Airline)
			fmt.Fprintf(w, "plane_model: %s\n", row.PlaneModel)
			if i != len(r)-1 {
				fmt.Fprintln(w)
			}
		}
	case queries.AirportPassengers:
		for i, row := range r {
			fmt.Fprintf(w, "--- %d ---\n", i+1)
			fmt.Fprintf(w, "name: %s\n", row.Name)
			fmt.Fprintf(w, "passengers: %d\n", row.Passengers)
			if i != len(r)-1 {
				fmt.Fprintln(w)
			}
		}
	case queries.AirportDelays:
		for i, row := range r {
			fmt.Fprintf(w, "--- %d ---\n", i+1)
			fmt.Fprintf(w, "name: %s\n", row.Name)
			fmt.Fprintf(w, "median: %d\n", row.Median)
			if i != len(r)-1 {
				fmt.Fprintln(w)
			}
		}
	case queries.Revenue:
		fmt.Fprint(w, "--- 1 ---\n")
		fmt.Fprintf(w, "revenue: %d\n", int(r))
	case queries.UserList:
		for i, row := range r {
			fmt.Fprintf(w, "--- %d ---\n", i+1)
			fmt.Fprintf(w, "id: %s\n", row.ID)
			fmt.Fprintf(w, "name: %s\n", row.Name)
			if i != len(r)-1 {
				fmt.Fprintln(w)
			}
		}
	case queries.MetricsTable:
		for i, row := range r.Rows {
			fmt.Fprintf(w, "--- %d ---\n", i+1)
			fmt.Fprintf(w, "%s: %d\n", r.Granularity, row.Bucket)
			fmt.Fprintf(w, "users: %d\n", row.Users)
			fmt.Fprintf(w, "flights: %d\n", row.Flights)
			fmt.Fprintf(w, "passengers: %d\n", row.Passengers)
			fmt.Fprintf(w, "unique_passengers: %d\n", row.UniquePassengers)
			fmt.Fprintf(w, "reservations: %d\n", row.Reservations)
			if i != len(r.Rows)-1 {
				fmt.Fprintln(w)
			}
		}
	}
}
