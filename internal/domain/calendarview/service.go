package calendarview

import (
	"context"
	"io"
	"time"

	"personal-calendar/internal/adapters/ics"
	"personal-calendar/internal/calendar/layout"
	"personal-calendar/internal/calendar/recurrence"
	"personal-calendar/internal/calendar/timerange"
	"personal-calendar/internal/domain/events"
)

// Service arma las vistas de mes, semana, día y timeline a partir de las
// consultas por rango del servicio de eventos.
type Service struct {
	events *events.Service
	loc    *time.Location
	now    func() time.Time
}

func NewService(ev *events.Service) *Service {
	return &Service{
		events: ev,
		loc:    ev.Location(),
		now:    ev.Now,
	}
}

func (s *Service) Location() *time.Location { return s.loc }

func (s *Service) Day(ctx context.Context, ownerID string, ref time.Time) (DayView, error) {
	win := timerange.Day(ref, s.loc)
	items, err := s.events.QueryRange(ctx, ownerID, win)
	if err != nil {
		return DayView{}, err
	}
	return DayView{
		Nav:    s.nav(timerange.GranularityDay, ref),
		Start:  win.Start.UnixMilli(),
		End:    win.Last().UnixMilli(),
		Column: s.column(win.Start, items),
	}, nil
}

func (s *Service) Week(ctx context.Context, ownerID string, ref time.Time) (WeekView, error) {
	win := timerange.Week(ref, s.loc)
	items, err := s.events.QueryRange(ctx, ownerID, win)
	if err != nil {
		return WeekView{}, err
	}

	days := layout.WeekDays(ref, s.loc)
	buckets := layout.BucketByDay(items, startOf, days, s.loc)

	out := WeekView{
		Nav:   s.nav(timerange.GranularityWeek, ref),
		Start: win.Start.UnixMilli(),
		End:   win.Last().UnixMilli(),
		Days:  make([]DayColumn, len(days)),
	}
	for i, day := range days {
		out.Days[i] = s.column(day, buckets[i])
	}
	return out, nil
}

// Month consulta el rango completo de la grilla, así las celdas de relleno
// (mes anterior y siguiente) también muestran sus eventos.
func (s *Service) Month(ctx context.Context, ownerID string, ref time.Time) (MonthView, error) {
	ref = ref.In(s.loc)
	grid := layout.MonthGrid(ref.Year(), ref.Month(), s.loc)

	first := grid[0][0].Date
	last := grid[len(grid)-1][6].Date
	win, err := timerange.New(first, last.AddDate(0, 0, 1))
	if err != nil {
		return MonthView{}, err
	}
	items, err := s.events.QueryRange(ctx, ownerID, win)
	if err != nil {
		return MonthView{}, err
	}

	days := make([]time.Time, 0, len(grid)*7)
	for _, week := range grid {
		for _, d := range week {
			days = append(days, d.Date)
		}
	}
	buckets := layout.BucketByDay(items, startOf, days, s.loc)

	now := s.now()
	month := timerange.Month(ref, s.loc)
	out := MonthView{
		Nav:   s.nav(timerange.GranularityMonth, ref),
		Year:  ref.Year(),
		Month: int(ref.Month()),
		Start: month.Start.UnixMilli(),
		End:   month.Last().UnixMilli(),
		Weeks: make([][]MonthCell, len(grid)),
	}
	for w, week := range grid {
		out.Weeks[w] = make([]MonthCell, len(week))
		for d, gd := range week {
			visible, overflow := layout.Cap(buckets[w*7+d], layout.MonthCellCap)
			out.Weeks[w][d] = MonthCell{
				Date:     gd.Date.Format(timerange.DateLayout),
				InMonth:  gd.InMonth,
				IsToday:  timerange.SameDay(gd.Date, now, s.loc),
				Events:   toViewEvents(visible),
				Overflow: overflow,
			}
		}
	}
	return out, nil
}

// Timeline es el mes como una fila de días; hoy muestra más marcadores.
func (s *Service) Timeline(ctx context.Context, ownerID string, ref time.Time) (TimelineView, error) {
	ref = ref.In(s.loc)
	win := timerange.Month(ref, s.loc)
	items, err := s.events.QueryRange(ctx, ownerID, win)
	if err != nil {
		return TimelineView{}, err
	}

	days := layout.MonthDays(ref.Year(), ref.Month(), s.loc)
	buckets := layout.BucketByDay(items, startOf, days, s.loc)
	now := s.now()

	out := TimelineView{
		Nav:   s.nav(timerange.GranularityMonth, ref),
		Year:  ref.Year(),
		Month: int(ref.Month()),
		Start: win.Start.UnixMilli(),
		End:   win.Last().UnixMilli(),
		Days:  make([]TimelineDay, len(days)),
	}
	for i, day := range days {
		today := timerange.SameDay(day, now, s.loc)
		limit := layout.DayMarkerCap
		if today {
			limit = layout.TodayMarkerCap
		}
		visible, overflow := layout.Cap(buckets[i], limit)
		out.Days[i] = TimelineDay{
			Date:     day.Format(timerange.DateLayout),
			IsToday:  today,
			Markers:  toViewEvents(visible),
			Overflow: overflow,
		}
	}
	return out, nil
}

// Export escribe el período en formato iCalendar.
func (s *Service) Export(ctx context.Context, w io.Writer, ownerID string, g timerange.Granularity, ref time.Time) error {
	items, win, err := s.events.QueryPeriod(ctx, ownerID, g, ref)
	if err != nil {
		return err
	}
	name := "Calendar " + win.Start.Format(timerange.DateLayout)
	return ics.Export(w, name, items, s.loc, s.now())
}

func (s *Service) column(day time.Time, items []events.Event) DayColumn {
	allDay, timed := layout.SplitAllDay(items, func(e events.Event) bool { return e.AllDay })

	col := DayColumn{
		Date:   day.In(s.loc).Format(timerange.DateLayout),
		AllDay: toViewEvents(allDay),
		Timed:  make([]PositionedEvent, 0, len(timed)),
	}
	for _, e := range timed {
		col.Timed = append(col.Timed, PositionedEvent{
			ViewEvent: toViewEvent(e),
			Box:       layout.Position(e.StartTime, e.EndTime, s.loc),
		})
	}
	if pct, ok := layout.CurrentTimePercent(s.now(), day, s.loc); ok {
		col.IsToday = true
		col.NowPercent = &pct
	}
	return col
}

func startOf(e events.Event) time.Time { return e.StartTime }

func toViewEvents(items []events.Event) []ViewEvent {
	out := make([]ViewEvent, 0, len(items))
	for _, e := range items {
		out = append(out, toViewEvent(e))
	}
	return out
}

func toViewEvent(e events.Event) ViewEvent {
	v := ViewEvent{EventResponse: events.NewEventResponse(e)}
	if e.Recurrence != nil && *e.Recurrence != "" {
		b := recurrence.Describe(*e.Recurrence)
		v.Repeat = &b
	}
	return v
}

func (s *Service) nav(g timerange.Granularity, ref time.Time) Nav {
	return Nav{
		Prev: timerange.Shift(g, ref, -1).Format(timerange.DateLayout),
		Next: timerange.Shift(g, ref, 1).Format(timerange.DateLayout),
	}
}
