package domain

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	valid := map[string]int{"00:00": 0, "08:05": 485, "12:00": 720, "23:59": 1439, " 09:30 ": 570}
	for in, want := range valid {
		c, err := ParseClock(in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", in, err)
		}
		if c.Minutes() != want || c.IsZero() {
			t.Fatalf("%q: want %d minutes, got %d", in, want, c.Minutes())
		}
	}

	for _, in := range []string{"", "8:00", "24:00", "12:60", "12:5", "noon", "08:00:00", "08-00"} {
		if _, err := ParseClock(in); !errors.Is(err, ErrInvalidTime) {
			t.Fatalf("%q: want ErrInvalidTime, got %v", in, err)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2024-02-29" {
		t.Fatalf("round trip: got %s", d)
	}

	for _, in := range []string{"", "2024-2-01", "2023-02-29", "2024-13-01", "2024-01-32", "01/02/2024", "2024-01-01T00:00:00Z"} {
		if _, err := ParseDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("%q: want ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestParseOptionalDate(t *testing.T) {
	d, err := ParseOptionalDate("  ")
	if err != nil || !d.IsZero() {
		t.Fatalf("want zero date, got %v / %v", d, err)
	}
	if _, err := ParseOptionalDate("tomorrow"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("want ErrInvalidDate, got %v", err)
	}
}

func TestClockDisplay(t *testing.T) {
	cases := map[string]string{"00:00": "12:00 AM", "08:05": "8:05 AM", "12:00": "12:00 PM", "23:59": "11:59 PM"}
	for in, want := range cases {
		c, _ := ParseClock(in)
		if got := c.Display(); got != want {
			t.Fatalf("%s: want %s, got %s", in, want, got)
		}
	}
	if got := (Clock{}).Display(); got != "N/A" {
		t.Fatalf("absent clock: got %s", got)
	}
}

func TestNewMedication(t *testing.T) {
	m, err := NewMedication(Input{Name: " Aspirin ", Time: "08:00", StartDate: "2024-01-30", DurationDays: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != "Aspirin" || m.Time.String() != "08:00" || m.StartDate.String() != "2024-01-30" || m.DurationDays != 3 {
		t.Fatalf("unexpected medication: %+v", m)
	}

	tests := []struct {
		name string
		in   Input
		want error
	}{
		{"empty name", Input{Name: "  ", Time: "08:00"}, ErrEmptyName},
		{"missing time", Input{Name: "x"}, ErrInvalidTime},
		{"bad time", Input{Name: "x", Time: "8am"}, ErrInvalidTime},
		{"bad start", Input{Name: "x", Time: "08:00", StartDate: "30.01.2024"}, ErrInvalidDate},
		{"negative duration", Input{Name: "x", Time: "08:00", DurationDays: -1}, ErrNegativeDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMedication(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
			if !IsValidationError(err) {
				t.Fatalf("want validation error, got %v", err)
			}
		})
	}
}

func TestDurationIgnored(t *testing.T) {
	if !(Medication{DurationDays: 5}).DurationIgnored() {
		t.Fatal("want ignored without start date")
	}
	start, _ := ParseDate("2025-01-01")
	if (Medication{StartDate: start, DurationDays: 5}).DurationIgnored() {
		t.Fatal("want anchored with start date")
	}
	if (Medication{}).DurationIgnored() {
		t.Fatal("want not ignored for unbounded duration")
	}
}
