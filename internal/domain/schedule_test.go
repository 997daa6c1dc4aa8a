package domain

import (
	"reflect"
	"testing"
	"time"
)

// helper: build a wall-clock instant in the given tz
func mustLocal(t *testing.T, tz string, y int, m time.Month, d, hh, mm int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(tz)
	if err != nil {
		t.Fatalf("load tz: %v", err)
	}
	return time.Date(y, m, d, hh, mm, 0, 0, loc)
}

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func mustClock(t *testing.T, s string) Clock {
	t.Helper()
	c, err := ParseClock(s)
	if err != nil {
		t.Fatalf("parse clock %q: %v", s, err)
	}
	return c
}

func TestIsActiveOn_NoStartDateIsAlwaysActive(t *testing.T) {
	for _, dur := range []int{0, 1, 30} {
		m := Medication{Name: "x", Time: mustClock(t, "08:00"), DurationDays: dur}
		for _, day := range []string{"1999-12-31", "2024-02-29", "2025-06-01", "2100-01-01"} {
			if !IsActiveOn(m, mustDate(t, day)) {
				t.Fatalf("duration %d: want active on %s without start date", dur, day)
			}
		}
	}
}

func TestIsActiveOn_BoundedWindow(t *testing.T) {
	start := mustDate(t, "2025-05-10")
	for _, n := range []int{1, 2, 7, 31, 365} {
		m := Medication{Name: "x", Time: mustClock(t, "08:00"), StartDate: start, DurationDays: n}
		cases := []struct {
			day  Date
			want bool
		}{
			{start.AddDays(-1), false},
			{start, true},
			{start.AddDays(n - 1), true},
			{start.AddDays(n), false},
		}
		for _, c := range cases {
			if got := IsActiveOn(m, c.day); got != c.want {
				t.Fatalf("n=%d day=%s: want %v, got %v", n, c.day, c.want, got)
			}
		}
	}
}

func TestIsActiveOn_UnboundedDuration(t *testing.T) {
	start := mustDate(t, "2025-05-10")
	m := Medication{Name: "x", Time: mustClock(t, "08:00"), StartDate: start}
	if IsActiveOn(m, start.AddDays(-1)) {
		t.Fatal("want inactive before start")
	}
	for _, n := range []int{0, 1, 100, 10000} {
		if !IsActiveOn(m, start.AddDays(n)) {
			t.Fatalf("want active %d days after start", n)
		}
	}
}

func TestIsActiveOn_AcrossMonthBoundary(t *testing.T) {
	m := Medication{Name: "x", Time: mustClock(t, "08:00"), StartDate: mustDate(t, "2024-01-30"), DurationDays: 3}
	for _, day := range []string{"2024-01-30", "2024-01-31", "2024-02-01"} {
		if !IsActiveOn(m, mustDate(t, day)) {
			t.Fatalf("want active on %s", day)
		}
	}
	if IsActiveOn(m, mustDate(t, "2024-02-02")) {
		t.Fatal("want inactive on 2024-02-02")
	}
	end, ok := EndDate(m)
	if !ok || end.String() != "2024-02-01" {
		t.Fatalf("want end 2024-02-01, got %s (ok=%v)", end, ok)
	}
}

func TestIsActiveOn_AcrossYearAndLeapDay(t *testing.T) {
	m := Medication{Name: "x", Time: mustClock(t, "08:00"), StartDate: mustDate(t, "2023-12-30"), DurationDays: 3}
	if !IsActiveOn(m, mustDate(t, "2024-01-01")) || IsActiveOn(m, mustDate(t, "2024-01-02")) {
		t.Fatal("year boundary window is wrong")
	}
	leap := Medication{Name: "x", Time: mustClock(t, "08:00"), StartDate: mustDate(t, "2024-02-28"), DurationDays: 2}
	if end, _ := EndDate(leap); end.String() != "2024-02-29" {
		t.Fatalf("want leap day end, got %s", end)
	}
}

func TestSelectDue_ExactMinuteOnly(t *testing.T) {
	today := mustDate(t, "2025-05-05")
	m := Medication{ID: "a", Name: "Aspirin", Time: mustClock(t, "08:00"), StartDate: today}

	got := SelectDue([]Medication{m}, today, mustClock(t, "08:00"))
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("want [a], got %v", got)
	}
	if got := SelectDue([]Medication{m}, today, mustClock(t, "08:01")); len(got) != 0 {
		t.Fatalf("want none at 08:01, got %v", got)
	}
	if got := SelectDue([]Medication{m}, today, mustClock(t, "07:59")); len(got) != 0 {
		t.Fatalf("want none at 07:59, got %v", got)
	}
}

func TestSelectDue_Filters(t *testing.T) {
	today := mustDate(t, "2025-05-05")
	at := mustClock(t, "08:00")
	ms := []Medication{
		{ID: "notified-today", Name: "a", Time: at, LastNotified: today},
		{ID: "notified-yesterday", Name: "b", Time: at, LastNotified: today.AddDays(-1)},
		{ID: "not-started", Name: "c", Time: at, StartDate: today.AddDays(1)},
		{ID: "ended", Name: "d", Time: at, StartDate: today.AddDays(-3), DurationDays: 3},
		{ID: "last-day", Name: "e", Time: at, StartDate: today.AddDays(-2), DurationDays: 3},
		{ID: "other-time", Name: "f", Time: mustClock(t, "20:00")},
		{ID: "no-time", Name: "g"},
		{ID: "never-notified", Name: "h", Time: at},
	}

	var ids []string
	for _, m := range SelectDue(ms, today, at) {
		ids = append(ids, m.ID)
	}
	want := []string{"notified-yesterday", "last-day", "never-notified"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("want %v, got %v", want, ids)
	}
}

func TestSelectDue_EmptyInput(t *testing.T) {
	got := SelectDue(nil, mustDate(t, "2025-05-05"), mustClock(t, "08:00"))
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestSelectDue_DoesNotFireAgainAfterAcknowledge(t *testing.T) {
	today := mustDate(t, "2025-05-05")
	at := mustClock(t, "08:00")
	ms := []Medication{{ID: "a", Name: "a", Time: at}}

	first := SelectDue(ms, today, at)
	if len(first) != 1 {
		t.Fatalf("want one due, got %d", len(first))
	}
	ms[0].LastNotified = today
	if again := SelectDue(ms, today, at); len(again) != 0 {
		t.Fatalf("want none after acknowledge, got %v", again)
	}
	if tomorrow := SelectDue(ms, today.AddDays(1), at); len(tomorrow) != 1 {
		t.Fatalf("want due again tomorrow, got %v", tomorrow)
	}
}

func TestIsOverdue_WindowEndedYesterday(t *testing.T) {
	now := mustLocal(t, "Europe/Moscow", 2025, time.May, 5, 9, 0)
	m := Medication{
		Name:         "x",
		Time:         mustClock(t, "08:00"),
		StartDate:    DateOf(now).AddDays(-1),
		DurationDays: 1,
	}
	if IsActiveOn(m, DateOf(now)) {
		t.Fatal("want inactive today")
	}
	if IsOverdue(m, now) {
		t.Fatal("want not overdue when window ended")
	}
}

func TestIsOverdue_UntilAcknowledged(t *testing.T) {
	now := mustLocal(t, "Europe/Moscow", 2025, time.May, 5, 8, 1)
	m := Medication{Name: "x", Time: mustClock(t, "08:00"), StartDate: DateOf(now)}
	if !IsOverdue(m, now) {
		t.Fatal("want overdue at 08:01")
	}
	m.LastNotified = DateOf(now)
	if IsOverdue(m, now) {
		t.Fatal("want not overdue once notified today")
	}
}

func TestIsOverdue_StrictlyAfter(t *testing.T) {
	m := Medication{Name: "x", Time: mustClock(t, "08:00")}
	exact := mustLocal(t, "UTC", 2025, time.May, 5, 8, 0)
	if IsOverdue(m, exact) {
		t.Fatal("want not overdue at the exact scheduled instant")
	}
	if !IsOverdue(m, exact.Add(time.Second)) {
		t.Fatal("want overdue one second later")
	}
	if IsOverdue(m, exact.Add(-time.Minute)) {
		t.Fatal("want not overdue before the scheduled time")
	}
}

func TestIsOverdue_MissingTime(t *testing.T) {
	now := mustLocal(t, "UTC", 2025, time.May, 5, 23, 59)
	if IsOverdue(Medication{Name: "x"}, now) {
		t.Fatal("want false without scheduled time")
	}
}

func TestIsOverdue_UsesLocalDay(t *testing.T) {
	// 2025-05-05 01:30 in Moscow is still 2025-05-04 in UTC.
	now := mustLocal(t, "Europe/Moscow", 2025, time.May, 5, 1, 30)
	m := Medication{Name: "x", Time: mustClock(t, "01:00"), StartDate: mustDate(t, "2025-05-05")}
	if !IsOverdue(m, now) {
		t.Fatal("want overdue on the local day")
	}
	if IsOverdue(m, now.UTC()) {
		t.Fatal("want not overdue on the UTC day before start")
	}
}

func TestEvaluatorsAreDeterministic(t *testing.T) {
	now := mustLocal(t, "UTC", 2025, time.May, 5, 8, 30)
	m := Medication{ID: "a", Name: "x", Time: mustClock(t, "08:00"), StartDate: mustDate(t, "2025-05-01"), DurationDays: 10}
	snapshot := m
	for i := 0; i < 3; i++ {
		if !IsOverdue(m, now) || DoseStateAt(m, now) != DoseOverdue {
			t.Fatalf("iteration %d: unstable result", i)
		}
		if len(SelectDue([]Medication{m}, DateOf(now), ClockOf(now))) != 0 {
			t.Fatalf("iteration %d: unexpected due", i)
		}
	}
	if !reflect.DeepEqual(m, snapshot) {
		t.Fatal("evaluation mutated the record")
	}
}

func TestDoseStateAt(t *testing.T) {
	day := mustDate(t, "2025-05-05")
	base := Medication{Name: "x", Time: mustClock(t, "08:00"), StartDate: day}
	at := func(hh, mm, ss int) time.Time { return time.Date(2025, time.May, 5, hh, mm, ss, 0, time.UTC) }

	tests := []struct {
		name string
		mod  func(m *Medication)
		now  time.Time
		want DoseState
	}{
		{"before", nil, at(7, 59, 0), DosePending},
		{"exact minute", nil, at(8, 0, 0), DoseDue},
		{"inside minute", nil, at(8, 0, 30), DoseDue},
		{"after", nil, at(8, 1, 0), DoseOverdue},
		{"acknowledged", func(m *Medication) { m.LastNotified = day }, at(9, 0, 0), DoseAcknowledged},
		{"not started", func(m *Medication) { m.StartDate = day.AddDays(1) }, at(9, 0, 0), DoseInactive},
		{"no time", func(m *Medication) { m.Time = Clock{} }, at(9, 0, 0), DoseInactive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := base
			if tt.mod != nil {
				tt.mod(&m)
			}
			if got := DoseStateAt(m, tt.now); got != tt.want {
				t.Fatalf("want %s, got %s", tt.want, got)
			}
		})
	}
}

func TestStatusOn(t *testing.T) {
	m := Medication{Name: "x", Time: mustClock(t, "08:00"), StartDate: mustDate(t, "2025-05-10"), DurationDays: 5}
	cases := map[string]Status{
		"2025-05-09": StatusUpcoming,
		"2025-05-10": StatusActive,
		"2025-05-14": StatusActive,
		"2025-05-15": StatusCompleted,
	}
	for day, want := range cases {
		if got := StatusOn(m, mustDate(t, day)); got != want {
			t.Fatalf("%s: want %s, got %s", day, want, got)
		}
	}
	if got := StatusOn(Medication{Name: "x", DurationDays: 3}, mustDate(t, "2030-01-01")); got != StatusActive {
		t.Fatalf("unanchored duration: want active, got %s", got)
	}
}

func TestSortForDisplay(t *testing.T) {
	ms := []Medication{
		{Name: "late", Time: mustClock(t, "20:00"), StartDate: mustDate(t, "2025-05-02")},
		{Name: "b", Time: mustClock(t, "08:00"), StartDate: mustDate(t, "2025-05-01")},
		{Name: "a", Time: mustClock(t, "08:00"), StartDate: mustDate(t, "2025-05-01")},
		{Name: "nostart", Time: mustClock(t, "23:00")},
		{Name: "early", Time: mustClock(t, "06:00"), StartDate: mustDate(t, "2025-05-02")},
	}
	SortForDisplay(ms)

	var names []string
	for _, m := range ms {
		names = append(names, m.Name)
	}
	want := []string{"nostart", "a", "b", "early", "late"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("want %v, got %v", want, names)
	}
}

func TestDurationText(t *testing.T) {
	if got := DurationText(Medication{}); got != "Ongoing" {
		t.Fatalf("got %q", got)
	}
	if got := DurationText(Medication{DurationDays: 1}); got != "For 1 day" {
		t.Fatalf("got %q", got)
	}
	if got := DurationText(Medication{DurationDays: 14}); got != "For 14 days" {
		t.Fatalf("got %q", got)
	}
}
