// Package timerange calcula las ventanas de tiempo (día, semana, mes) usadas
// por las consultas de eventos.
//
// Todas las ventanas son semiabiertas: [Start, End). Un evento pertenece a una
// ventana sólo por su instante de inicio.
package timerange

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidRange       = errors.New("invalid range")
	ErrUnknownGranularity = errors.New("unknown granularity")
	ErrInvalidDate        = errors.New("invalid date")
)

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(strings.ToLower(strings.TrimSpace(s))) {
	case GranularityDay:
		return GranularityDay, nil
	case GranularityWeek:
		return GranularityWeek, nil
	case GranularityMonth, "":
		return GranularityMonth, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownGranularity, s)
	}
}

// Window es un intervalo [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// New valida que end no sea anterior a start.
func New(start, end time.Time) (Window, error) {
	if end.Before(start) {
		return Window{}, fmt.Errorf("%w: end %s before start %s", ErrInvalidRange,
			end.Format(time.RFC3339Nano), start.Format(time.RFC3339Nano))
	}
	return Window{Start: start, End: end}, nil
}

// Inclusive construye la ventana a partir de un par inclusivo [start, end]
// en milisegundos, como lo recibe la API.
func Inclusive(start, end time.Time) (Window, error) {
	if end.Before(start) {
		return Window{}, fmt.Errorf("%w: end %s before start %s", ErrInvalidRange,
			end.Format(time.RFC3339Nano), start.Format(time.RFC3339Nano))
	}
	return Window{Start: start, End: end.Add(time.Millisecond)}, nil
}

// Contains reporta si t cae en [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Last devuelve el último milisegundo incluido en la ventana.
func (w Window) Last() time.Time {
	if !w.End.After(w.Start) {
		return w.Start
	}
	return w.End.Add(-time.Millisecond)
}

func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

func (w Window) String() string {
	return w.Start.Format(time.RFC3339) + "/" + w.End.Format(time.RFC3339)
}

// Midnight devuelve las 00:00 del día calendario de t en loc.
func Midnight(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Day: [00:00, 00:00 del día siguiente).
func Day(ref time.Time, loc *time.Location) Window {
	start := Midnight(ref, loc)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// Week arranca el domingo.
func Week(ref time.Time, loc *time.Location) Window {
	day := Midnight(ref, loc)
	start := day.AddDate(0, 0, -int(day.Weekday()))
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

func Month(ref time.Time, loc *time.Location) Window {
	day := Midnight(ref, loc)
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

func For(g Granularity, ref time.Time, loc *time.Location) (Window, error) {
	switch g {
	case GranularityDay:
		return Day(ref, loc), nil
	case GranularityWeek:
		return Week(ref, loc), nil
	case GranularityMonth:
		return Month(ref, loc), nil
	default:
		return Window{}, fmt.Errorf("%w: %q", ErrUnknownGranularity, g)
	}
}

// Shift mueve ref n periodos (mes, semana o día) hacia adelante o atrás.
func Shift(g Granularity, ref time.Time, n int) time.Time {
	switch g {
	case GranularityMonth:
		// Anclamos al día 1 para que 31/01 + 1 mes no salte a marzo.
		y, m, _ := ref.Date()
		first := time.Date(y, m, 1, ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())
		target := first.AddDate(0, n, 0)
		last := daysIn(target.Year(), target.Month())
		d := ref.Day()
		if d > last {
			d = last
		}
		return target.AddDate(0, 0, d-1)
	case GranularityWeek:
		return ref.AddDate(0, 0, 7*n)
	default:
		return ref.AddDate(0, 0, n)
	}
}

// DaysBetween cuenta días calendario de a hasta b en loc (negativo si b < a).
func DaysBetween(a, b time.Time, loc *time.Location) int {
	a = Midnight(a, loc)
	b = Midnight(b, loc)
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// SameDay compara fechas calendario en loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return Midnight(a, loc).Equal(Midnight(b, loc))
}

// Filter devuelve los elementos cuyo inicio cae dentro de w.
func Filter[T any](items []T, startOf func(T) time.Time, w Window) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if w.Contains(startOf(it)) {
			out = append(out, it)
		}
	}
	return out
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateLayout es el formato de fecha de los query params (?date=).
const DateLayout = "2006-01-02"

// ParseDate interpreta s (YYYY-MM-DD) como medianoche en loc. Vacío devuelve
// la medianoche de fallback.
func ParseDate(s string, loc *time.Location, fallback time.Time) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return Midnight(fallback, loc), nil
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q must be YYYY-MM-DD", ErrInvalidDate, s)
	}
	return t, nil
}
