package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voyagedb/src/catalogs"
	"voyagedb/src/settings"

	"go.uber.org/zap"
)

const (
	usersHeader        = "id;name;email;phone_number;birth_date;sex;passport;country_code;address;account_creation;pay_method;account_status"
	flightsHeader      = "id;airline;plane_model;total_seats;origin;destination;schedule_departure_date;schedule_arrival_date;real_departure_date;real_arrival_date;pilot;copilot;notes"
	reservationsHeader = "id;user_id;hotel_id;hotel_name;hotel_stars;city_tax;address;begin_date;end_date;price_per_night;includes_breakfast;room_details;rating;comment"
	passengersHeader   = "flight_id;user_id"
)

func writeDataset(t *testing.T, dir string, files map[string][]string) {
	t.Helper()
	for name, lines := range files {
		content := strings.Join(lines, "\n") + "\n"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func newTestPipeline(t *testing.T, files map[string][]string) (*Pipeline, *catalogs.Manager, *settings.Arguments) {
	t.Helper()
	args := &settings.Arguments{
		DataDir:   t.TempDir(),
		OutputDir: t.TempDir(),
	}
	writeDataset(t, args.DataDir, files)
	manager := catalogs.NewManager()
	return NewPipeline(manager, zap.NewNop().Sugar(), args), manager, args
}

func TestPipelineLoadsAndRejects(t *testing.T) {
	pipeline, manager, args := newTestPipeline(t, map[string][]string{
		"users.csv": {
			usersHeader,
			"U1;Alice Souza;alice@mail.com;910000001;1990/04/02;F;PP100001;PT;Rua Um 1;2020/01/15 10:00:00;credit_card;active",
			"U2;Bruno Dias;bruno-at-mail.com;910000002;1985/07/20;M;PP100002;PT;Rua Dois 2;2019/03/01 09:00:00;paypal;active",
			"U3;Carla Melo;carla@mail.com;910000003;2001/11/30;F;PP100003;BR;Rua Tres 3;2021/06/10 18:30:00;debit_card;inactive",
		},
		"flights.csv": {
			flightsHeader,
			"0000000100;TAP;Boeing 777;1;lis;OPO;2021/01/01 10:00:00;2021/01/01 11:00:00;2021/01/01 10:05:00;2021/01/01 11:04:00;Cap A;Cap B;",
		},
		"reservations.csv": {
			reservationsHeader,
			"Book0000000001;U1;HTL1001;Hotel Mar;4;10;Av Um 1;2021/05/28;2021/06/01;100;t;double room;4;nice stay",
			"Book0000000002;U404;HTL1001;Hotel Mar;4;10;Av Um 1;2021/05/28;2021/06/01;100;t;double room;4;",
		},
		"passengers.csv": {
			passengersHeader,
			"0000000100;U1",
			"0000000100;U3",
		},
	})

	if err := pipeline.RunAll(); err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	if got := manager.Users().Len(); got != 3 {
		t.Errorf("users loaded = %d, want 3", got)
	}
	user := manager.Users().Get("U1")
	if user == nil {
		t.Fatal("user U1 not loaded")
	}
	if user.Age != 33 {
		t.Errorf("U1 age = %d, want 33", user.Age)
	}
	if user.TotalSpent != 440 {
		t.Errorf("U1 total spent = %v, want 440", user.TotalSpent)
	}
	if manager.Users().Get("U2") != nil {
		t.Error("user with malformed email was loaded")
	}

	res := manager.Reservations().Get("Book0000000001")
	if res == nil {
		t.Fatal("reservation not loaded")
	}
	if res.Cost != 440 {
		t.Errorf("reservation cost = %v, want 440", res.Cost)
	}
	if res.Nights() != 4 {
		t.Errorf("reservation nights = %d, want 4", res.Nights())
	}
	if manager.Reservations().Get("Book0000000002") != nil {
		t.Error("reservation with unknown user was loaded")
	}

	// The second passenger record overflows the single seat: the flight is
	// evicted, its state lands in the flights error CSV and the record is
	// rejected.
	if manager.Flights().Get("0000000100") != nil {
		t.Error("overfull flight still present")
	}

	checkSink(t, args.OutputDir, "users_errors.csv", usersHeader, []string{
		"U2;Bruno Dias;bruno-at-mail.com;910000002;1985/07/20;M;PP100002;PT;Rua Dois 2;2019/03/01 09:00:00;paypal;active",
	})
	checkSink(t, args.OutputDir, "reservations_errors.csv", reservationsHeader, []string{
		"Book0000000002;U404;HTL1001;Hotel Mar;4;10;Av Um 1;2021/05/28;2021/06/01;100;t;double room;4;",
	})
	checkSink(t, args.OutputDir, "passengers_errors.csv", passengersHeader, []string{
		"0000000100;U3",
	})
	checkSink(t, args.OutputDir, "flights_errors.csv", flightsHeader, []string{
		"0000000100;TAP;Boeing 777;1;LIS;OPO;2021/01/01 10:00:00;2021/01/01 11:00:00;2021/01/01 10:05:00;2021/01/01 11:04:00",
	})
}

func checkSink(t *testing.T, dir, name, header string, rejected []string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Errorf("reading %s: %v", name, err)
		return
	}
	want := header + "\n" + strings.Join(rejected, "\n") + "\n"
	if string(data) != want {
		t.Errorf("%s content:\n%q\nwant:\n%q", name, string(data), want)
	}
}

func TestPipelineRemovesCleanSinks(t *testing.T) {
	pipeline, _, args := newTestPipeline(t, map[string][]string{
		"users.csv": {
			usersHeader,
			"U1;Alice Souza;alice@mail.com;910000001;1990/04/02;F;PP100001;PT;Rua Um 1;2020/01/15 10:00:00;credit_card;active",
		},
		"flights.csv": {
			flightsHeader,
			"0000000100;TAP;Boeing 777;180;LIS;OPO;2021/01/01 10:00:00;2021/01/01 11:00:00;2021/01/01 10:05:00;2021/01/01 11:04:00;Cap A;Cap B;",
		},
		"reservations.csv": {reservationsHeader},
		"passengers.csv": {
			passengersHeader,
			"0000000100;U1",
		},
	})

	if err := pipeline.RunAll(); err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	entries, err := os.ReadDir(args.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), "_errors.csv") {
			t.Errorf("clean run left error sink %s behind", e.Name())
		}
	}
}

func TestPipelineRejectsWrongFieldCount(t *testing.T) {
	pipeline, manager, _ := newTestPipeline(t, map[string][]string{
		"users.csv": {
			usersHeader,
			"U1;Alice Souza;alice@mail.com;910000001",
		},
		"flights.csv":      {flightsHeader},
		"reservations.csv": {reservationsHeader},
		"passengers.csv":   {passengersHeader},
	})
	if err := pipeline.RunAll(); err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if got := manager.Users().Len(); got != 0 {
		t.Errorf("users loaded = %d, want 0", got)
	}
}

func TestPipelineEnforcesStageOrder(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t, map[string][]string{
		"users.csv":        {usersHeader},
		"flights.csv":      {flightsHeader},
		"reservations.csv": {reservationsHeader},
		"passengers.csv":   {passengersHeader},
	})
	stages := Stages()
	if err := pipeline.Run(stages[3]); err == nil {
		t.Error("passengers stage ran before users and flights")
	}
	if err := pipeline.Run(stages[2]); err == nil {
		t.Error("reservations stage ran before users")
	}
	if err := pipeline.Run(stages[0]); err != nil {
		t.Fatalf("users stage: %v", err)
	}
	if err := pipeline.Run(stages[1]); err != nil {
		t.Fatalf("flights stage: %v", err)
	}
	if err := pipeline.Run(stages[3]); err != nil {
		t.Errorf("passengers stage after its needs: %v", err)
	}
}
