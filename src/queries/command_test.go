package queries

import (
	"reflect"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Command
		wantErr bool
	}{
		{
			name: "id and plain argument",
			line: "1 U1",
			want: Command{ID: 1, Args: []string{"U1"}},
		},
		{
			name: "labeled suffix",
			line: "10F",
			want: Command{ID: 10, Labeled: true, Args: []string{}},
		},
		{
			name: "labeled with arguments",
			line: "3F HTL1001",
			want: Command{ID: 3, Labeled: true, Args: []string{"HTL1001"}},
		},
		{
			name: "quoted argument keeps its spaces",
			line: `9 "Alice Souza"`,
			want: Command{ID: 9, Args: []string{"Alice Souza"}},
		},
		{
			name: "escaped spaces inside datetimes",
			line: `5 LIS 2021/01/01\ 00:00:00 2022/12/31\ 23:59:59`,
			want: Command{ID: 5, Args: []string{"LIS", "2021/01/01 00:00:00", "2022/12/31 23:59:59"}},
		},
		{
			name: "surrounding whitespace is ignored",
			line: "  2 U1 flights  ",
			want: Command{ID: 2, Args: []string{"U1", "flights"}},
		},
		{name: "id zero", line: "0 U1", wantErr: true},
		{name: "id eleven", line: "11 U1", wantErr: true},
		{name: "not a number", line: "abc U1", wantErr: true},
		{name: "bare suffix", line: "F", wantErr: true},
		{name: "empty line", line: "   ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCommand(%q) = %+v, want error", tt.line, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCommand(%q) unexpected error: %v", tt.line, err)
			}
			if got.ID != tt.want.ID || got.Labeled != tt.want.Labeled || !reflect.DeepEqual(got.Args, tt.want.Args) {
				t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}
