// Package layout ubica eventos dentro de una columna de 24 horas y los
// reparte por celdas de día para las vistas de mes, semana y timeline.
//
// Las funciones son puras: la hora actual y la zona horaria llegan como
// parámetros.
package layout

import (
	"time"

	"personal-calendar/internal/calendar/timerange"
)

const (
	MinutesPerDay = 24 * 60

	// MinHeightPercent mantiene clickeables los eventos de duración cero o negativa.
	MinHeightPercent = 2.0

	MonthCellCap   = 3
	DayMarkerCap   = 6
	TodayMarkerCap = 8
)

// Box es la posición vertical de un evento en la columna del día, en porcentaje.
type Box struct {
	TopPercent    float64 `json:"topPercent"`
	HeightPercent float64 `json:"heightPercent"`
}

// MinuteOfDay devuelve hora*60+minuto de t en loc (se ignoran segundos).
func MinuteOfDay(t time.Time, loc *time.Location) int {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Hour()*60 + t.Minute()
}

func Position(start, end time.Time, loc *time.Location) Box {
	startMin := MinuteOfDay(start, loc)
	endMin := MinuteOfDay(end, loc)

	height := float64(endMin-startMin) / MinutesPerDay * 100
	if height < MinHeightPercent {
		height = MinHeightPercent
	}
	return Box{
		TopPercent:    float64(startMin) / MinutesPerDay * 100,
		HeightPercent: height,
	}
}

// CurrentTimePercent devuelve la posición de la línea "ahora" sólo si day es hoy.
func CurrentTimePercent(now, day time.Time, loc *time.Location) (float64, bool) {
	if !timerange.SameDay(now, day, loc) {
		return 0, false
	}
	return float64(MinuteOfDay(now, loc)) / MinutesPerDay * 100, true
}

// Cap recorta items a limit y reporta cuántos quedaron afuera.
func Cap[T any](items []T, limit int) ([]T, int) {
	if limit < 0 {
		limit = 0
	}
	if len(items) <= limit {
		return items, 0
	}
	return items[:limit], len(items) - limit
}

// BucketByDay reparte items por día según su inicio. El resultado está
// alineado por índice con days; un item que empieza fuera de todos los días
// no aparece.
func BucketByDay[T any](items []T, startOf func(T) time.Time, days []time.Time, loc *time.Location) [][]T {
	out := make([][]T, len(days))
	windows := make([]timerange.Window, len(days))
	for i, d := range days {
		windows[i] = timerange.Day(d, loc)
	}
	for _, it := range items {
		s := startOf(it)
		for i, w := range windows {
			if w.Contains(s) {
				out[i] = append(out[i], it)
				break
			}
		}
	}
	return out
}

// SplitAllDay separa eventos de día completo de los que tienen horario,
// preservando el orden.
func SplitAllDay[T any](items []T, isAllDay func(T) bool) (allDay, timed []T) {
	for _, it := range items {
		if isAllDay(it) {
			allDay = append(allDay, it)
		} else {
			timed = append(timed, it)
		}
	}
	return allDay, timed
}

// GridDay es una celda de la grilla mensual.
type GridDay struct {
	Date    time.Time
	InMonth bool
}

// MonthGrid arma semanas de domingo a sábado que cubren el mes, rellenando
// con días del mes anterior y del siguiente.
func MonthGrid(year int, month time.Month, loc *time.Location) [][]GridDay {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	next := first.AddDate(0, 1, 0)

	var weeks [][]GridDay
	for day := start; day.Before(next); {
		week := make([]GridDay, 7)
		for i := range week {
			week[i] = GridDay{Date: day, InMonth: day.Month() == month && day.Year() == year}
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// MonthDays devuelve la medianoche de cada día del mes (timeline).
func MonthDays(year int, month time.Month, loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	n := first.AddDate(0, 1, -1).Day()
	out := make([]time.Time, n)
	for i := range out {
		out[i] = first.AddDate(0, 0, i)
	}
	return out
}

// WeekDays devuelve los 7 días (domingo a sábado) de la semana de ref.
func WeekDays(ref time.Time, loc *time.Location) []time.Time {
	start := timerange.Week(ref, loc).Start
	out := make([]time.Time, 7)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}
