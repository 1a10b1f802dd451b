package events

import "time"

// Event es un evento del calendario personal. Sólo su dueño puede verlo o
// modificarlo.
type Event struct {
	ID      string
	OwnerID string

	Title string

	StartTime time.Time
	EndTime   time.Time
	AllDay    bool

	Color string

	// nil = sin recurrencia. La regla se guarda tal cual y no se expande.
	Recurrence *string
	// nil = sin notas ("" es un valor distinto).
	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
