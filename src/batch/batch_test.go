package batch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voyagedb/src/output"
	"voyagedb/src/settings"

	"go.uber.org/zap"
)

func writeTestDataset(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"users.csv": "id;name;email;phone_number;birth_date;sex;passport;country_code;address;account_creation;pay_method;account_status\n" +
			"U1;Alice Souza;alice@mail.com;910000001;1990/04/02;F;PP100001;PT;Rua Um 1;2020/01/15 10:00:00;credit_card;active\n",
		"flights.csv": "id;airline;plane_model;total_seats;origin;destination;schedule_departure_date;schedule_arrival_date;real_departure_date;real_arrival_date;pilot;copilot;notes\n" +
			"0000000100;TAP;Boeing 777;180;LIS;OPO;2021/01/01 10:00:00;2021/01/01 11:00:00;2021/01/01 10:05:00;2021/01/01 11:04:00;Cap A;Cap B;\n",
		"reservations.csv": "id;user_id;hotel_id;hotel_name;hotel_stars;city_tax;address;begin_date;end_date;price_per_night;includes_breakfast;room_details;rating;comment\n" +
			"Book0000000001;U1;HTL1001;Hotel Mar;4;10;Av Um 1;2021/05/28;2021/06/01;100;t;double room;4;nice stay\n",
		"passengers.csv": "flight_id;user_id\n0000000100;U1\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func newTestArgs(t *testing.T, queryLines string) *settings.Arguments {
	t.Helper()
	args := &settings.Arguments{
		DataDir:     t.TempDir(),
		OutputDir:   t.TempDir(),
		QueriesFile: filepath.Join(t.TempDir(), "input.txt"),
	}
	writeTestDataset(t, args.DataDir)
	if err := os.WriteFile(args.QueriesFile, []byte(queryLines), 0644); err != nil {
		t.Fatal(err)
	}
	return args
}

func readReport(t *testing.T, dir string, n int) string {
	t.Helper()
	data, err := os.ReadFile(output.CommandFile(dir, n))
	if err != nil {
		t.Fatalf("report %d: %v", n, err)
	}
	return string(data)
}

func TestRunnerWritesOneReportPerCommand(t *testing.T) {
	args := newTestArgs(t, "1 U1\n3F HTL1001\n1 U404\n")
	if err := NewRunner(zap.NewNop().Sugar(), args).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := readReport(t, args.OutputDir, 1); got != "Alice Souza;F;33;PT;PP100001;1;1;440.000\n" {
		t.Errorf("command 1 = %q", got)
	}
	if got := readReport(t, args.OutputDir, 2); got != "--- 1 ---\nrating: 4.000\n" {
		t.Errorf("command 2 = %q", got)
	}
	// An unknown id still produces its report file, just empty.
	if got := readReport(t, args.OutputDir, 3); got != "" {
		t.Errorf("command 3 = %q, want empty", got)
	}
}

func TestRunnerSkipsBlankLines(t *testing.T) {
	args := newTestArgs(t, "\n1 U1\n\n\n3 HTL1001\n")
	if err := NewRunner(zap.NewNop().Sugar(), args).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := readReport(t, args.OutputDir, 2); got != "4.000\n" {
		t.Errorf("command 2 = %q", got)
	}
	if _, err := os.Stat(output.CommandFile(args.OutputDir, 3)); err == nil {
		t.Error("blank lines were counted as commands")
	}
}

func TestRunnerGlobalLabeledLayout(t *testing.T) {
	args := newTestArgs(t, "3 HTL1001\n")
	args.Labeled = true
	if err := NewRunner(zap.NewNop().Sugar(), args).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := readReport(t, args.OutputDir, 1); got != "--- 1 ---\nrating: 4.000\n" {
		t.Errorf("command 1 = %q", got)
	}
}

func TestRunnerAnalysisReport(t *testing.T) {
	args := newTestArgs(t, "1 U1\n")
	args.Analysis = true
	if err := NewRunner(zap.NewNop().Sugar(), args).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(args.OutputDir, "analysis.txt"))
	if err != nil {
		t.Fatal(err)
	}
	report := string(data)
	for _, want := range []string{"Run: ", "Query: 1 U1", "Elapsed time: ", "Total elapsed: ", "Heap in use: "} {
		if !strings.Contains(report, want) {
			t.Errorf("analysis.txt missing %q:\n%s", want, report)
		}
	}
}

func TestRunnerMissingQueriesFile(t *testing.T) {
	args := newTestArgs(t, "")
	args.QueriesFile = filepath.Join(args.DataDir, "no-such-file.txt")
	if err := NewRunner(zap.NewNop().Sugar(), args).Run(); err == nil {
		t.Error("Run succeeded with a missing queries file")
	}
}
