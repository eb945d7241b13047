package helpers

import (
	"path/filepath"
	"testing"
)

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"Alice Souza"`, "Alice Souza"},
		{`'single'`, "single"},
		{`  "padded"  `, "padded"},
		{`unquoted`, "unquoted"},
		{`"mismatched'`, `"mismatched'`},
		{`""`, ""},
		{`"`, `"`},
	}
	for _, tt := range tests {
		if got := StripQuotes(tt.input); got != tt.want {
			t.Errorf("StripQuotes(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == "" || a == b {
		t.Errorf("NewRunID() = %q, %q", a, b)
	}
}

func TestBSONRoundTrip(t *testing.T) {
	type prefs struct {
		Labeled bool   `bson:"labeled"`
		Name    string `bson:"name"`
	}
	path := filepath.Join(t.TempDir(), "settings.bson")

	if FileExists(path) {
		t.Fatal("FileExists before write")
	}
	if err := SaveBSON(path, &prefs{Labeled: true, Name: "alice"}); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Fatal("FileExists after write")
	}

	var got prefs
	if err := LoadBSON(path, &got); err != nil {
		t.Fatal(err)
	}
	if !got.Labeled || got.Name != "alice" {
		t.Errorf("round trip = %+v", got)
	}

	if err := LoadBSON(filepath.Join(t.TempDir(), "missing.bson"), &got); err == nil {
		t.Error("LoadBSON succeeded on a missing file")
	}
}
