package ics

import (
	"io"
	"strings"
	"time"

	"personal-calendar/internal/calendar/timerange"
	"personal-calendar/internal/domain/events"

	ical "github.com/arran4/golang-ical"
)

const ProductID = "-//personal-calendar//EN"

// Export serializa los eventos como un VCALENDAR. Los de día completo usan
// VALUE=DATE con DTEND exclusivo (día siguiente). La recurrencia se emite tal
// cual como RRULE; nunca se expande.
func Export(w io.Writer, name string, items []events.Event, loc *time.Location, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)
	if strings.TrimSpace(name) != "" {
		cal.SetXWRCalName(name)
	}
	if loc != nil {
		cal.SetXWRTimezone(loc.String())
	}

	for _, e := range items {
		ve := cal.AddEvent(e.ID + "@personal-calendar")
		ve.SetDtStampTime(stamp.UTC())
		ve.SetCreatedTime(e.CreatedAt.UTC())
		ve.SetModifiedAt(e.UpdatedAt.UTC())
		ve.SetSummary(e.Title)

		if e.AllDay {
			day := timerange.Day(e.StartTime, loc)
			ve.SetAllDayStartAt(day.Start)
			ve.SetAllDayEndAt(day.End)
		} else {
			ve.SetStartAt(e.StartTime.UTC())
			ve.SetEndAt(e.EndTime.UTC())
		}

		if e.Notes != nil && *e.Notes != "" {
			ve.SetDescription(*e.Notes)
		}
		if e.Color != "" {
			ve.SetProperty(ical.ComponentProperty("COLOR"), e.Color)
		}
		if rule := rruleValue(e.Recurrence); rule != "" {
			ve.AddProperty(ical.ComponentPropertyRrule, rule)
		}
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}

// rruleValue quita el prefijo "RRULE:" si la regla almacenada lo trae.
func rruleValue(rule *string) string {
	if rule == nil {
		return ""
	}
	s := strings.TrimSpace(*rule)
	if len(s) >= 6 && strings.EqualFold(s[:6], "RRULE:") {
		s = s[6:]
	}
	return s
}
