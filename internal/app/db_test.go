package app

import (
	"strings"
	"testing"
)

func TestDBNameFromURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "url form", raw: "postgres://user:pw@localhost:5432/basketball?sslmode=disable", want: "basketball"},
		{name: "dsn form", raw: "host=localhost dbname=basketball sslmode=disable", want: "basketball"},
		{name: "quoted dsn", raw: `host=localhost dbname="basketball"`, want: "basketball"},
		{name: "no name", raw: "postgres://localhost:5432/", want: ""},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dbNameFromURL(tt.raw); got != tt.want {
				t.Fatalf("dbNameFromURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatQueryForTrace(t *testing.T) {
	got := formatQueryForTrace("SELECT id_pla,\n\t name\nFROM   player")
	want := "SELECT id_pla, name FROM player"
	if got != want {
		t.Fatalf("formatQueryForTrace = %q, want %q", got, want)
	}

	long := strings.Repeat("x", maxTracedQueryLength+10)
	if got := formatQueryForTrace(long); len(got) != maxTracedQueryLength+3 {
		t.Fatalf("long query not truncated, len = %d", len(got))
	}
}
