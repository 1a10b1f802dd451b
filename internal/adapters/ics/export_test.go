package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"personal-calendar/internal/domain/events"

	ical "github.com/arran4/golang-ical"
)

func strPtr(s string) *string { return &s }

func TestExport_TimedAllDayAndRecurrence(t *testing.T) {
	loc := time.UTC
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, loc)
	items := []events.Event{
		{
			ID: "e1", OwnerID: "u1", Title: "Standup",
			StartTime:  time.Date(2024, 6, 5, 9, 0, 0, 0, loc),
			EndTime:    time.Date(2024, 6, 5, 9, 30, 0, 0, loc),
			Color:      string(events.ColorGreen),
			Recurrence: strPtr("RRULE:FREQ=WEEKLY;BYDAY=MO,WE,FR"),
			Notes:      strPtr("sala 3"),
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "e2", OwnerID: "u1", Title: "Feriado", AllDay: true,
			StartTime: time.Date(2024, 6, 7, 0, 0, 0, 0, loc),
			EndTime:   time.Date(2024, 6, 7, 23, 59, 59, int(999*time.Millisecond), loc),
			Color:     string(events.DefaultColor),
			CreatedAt: created, UpdatedAt: created,
		},
	}

	var buf bytes.Buffer
	if err := Export(&buf, "Mi calendario", items, loc, created); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(buf.String(), "PRODID:"+ProductID) {
		t.Fatalf("missing PRODID in output:\n%s", buf.String())
	}

	cal, err := ical.ParseCalendar(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("parse exported calendar: %v", err)
	}
	got := cal.Events()
	if len(got) != 2 {
		t.Fatalf("expected 2 VEVENTs, got %d", len(got))
	}

	timed := got[0]
	if p := timed.GetProperty(ical.ComponentPropertySummary); p == nil || p.Value != "Standup" {
		t.Fatalf("unexpected summary %+v", p)
	}
	if p := timed.GetProperty(ical.ComponentPropertyRrule); p == nil || p.Value != "FREQ=WEEKLY;BYDAY=MO,WE,FR" {
		t.Fatalf("rrule should be emitted verbatim without prefix, got %+v", p)
	}
	if p := timed.GetProperty(ical.ComponentPropertyDescription); p == nil || p.Value != "sala 3" {
		t.Fatalf("unexpected description %+v", p)
	}
	start, err := timed.GetStartAt()
	if err != nil || !start.Equal(items[0].StartTime) {
		t.Fatalf("unexpected start %v (%v)", start, err)
	}

	allDay := got[1]
	dtStart := allDay.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil || dtStart.Value != "20240607" {
		t.Fatalf("expected date-only DTSTART, got %+v", dtStart)
	}
	dtEnd := allDay.GetProperty(ical.ComponentPropertyDtEnd)
	if dtEnd == nil || dtEnd.Value != "20240608" {
		t.Fatalf("expected exclusive next-day DTEND, got %+v", dtEnd)
	}
	if allDay.GetProperty(ical.ComponentPropertyRrule) != nil {
		t.Fatalf("event without recurrence should not carry RRULE")
	}
}

func TestRRuleValue(t *testing.T) {
	if rruleValue(nil) != "" {
		t.Fatalf("nil rule should be empty")
	}
	if got := rruleValue(strPtr(" rrule:FREQ=DAILY ")); got != "FREQ=DAILY" {
		t.Fatalf("unexpected %q", got)
	}
}
