package calendarview

import (
	"personal-calendar/internal/calendar/layout"
	"personal-calendar/internal/calendar/recurrence"
	"personal-calendar/internal/domain/events"
)

// ViewEvent es un evento listo para pintar, con el badge de recurrencia si tiene.
type ViewEvent struct {
	events.EventResponse
	Repeat *recurrence.Badge `json:"repeat,omitempty"`
}

// PositionedEvent es un evento con horario ubicado en la columna de 24 horas.
type PositionedEvent struct {
	ViewEvent
	layout.Box
}

// DayColumn es una columna de día (vistas de semana y día).
type DayColumn struct {
	Date       string            `json:"date"` // YYYY-MM-DD
	IsToday    bool              `json:"isToday"`
	AllDay     []ViewEvent       `json:"allDay"`
	Timed      []PositionedEvent `json:"timed"`
	NowPercent *float64          `json:"nowPercent,omitempty"` // sólo hoy
}

// Nav son las fechas de referencia del período anterior y siguiente.
type Nav struct {
	Prev string `json:"prev"`
	Next string `json:"next"`
}

type DayView struct {
	Nav    Nav       `json:"nav"`
	Start  int64     `json:"start"`
	End    int64     `json:"end"`
	Column DayColumn `json:"column"`
}

type WeekView struct {
	Nav   Nav         `json:"nav"`
	Start int64       `json:"start"`
	End   int64       `json:"end"`
	Days  []DayColumn `json:"days"`
}

// MonthCell es una celda de la grilla mensual.
type MonthCell struct {
	Date     string      `json:"date"`
	InMonth  bool        `json:"inMonth"`
	IsToday  bool        `json:"isToday"`
	Events   []ViewEvent `json:"events"`
	Overflow int         `json:"overflow"` // "+N more"
}

type MonthView struct {
	Nav   Nav           `json:"nav"`
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Start int64         `json:"start"`
	End   int64         `json:"end"`
	Weeks [][]MonthCell `json:"weeks"`
}

// TimelineDay es un círculo del timeline mensual.
type TimelineDay struct {
	Date     string      `json:"date"`
	IsToday  bool        `json:"isToday"`
	Markers  []ViewEvent `json:"markers"`
	Overflow int         `json:"overflow"`
}

type TimelineView struct {
	Nav   Nav           `json:"nav"`
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Start int64         `json:"start"`
	End   int64         `json:"end"`
	Days  []TimelineDay `json:"days"`
}
