package events

import (
	"context"

	"personal-calendar/internal/calendar/timerange"
)

// Repository persiste eventos. ListByOwner devuelve los eventos cuyo inicio
// cae en w, sin orden garantizado. GetByID, Update y Delete devuelven
// ErrNotFound si el id no existe.
type Repository interface {
	Create(ctx context.Context, e Event) error
	GetByID(ctx context.Context, id string) (Event, error)
	Update(ctx context.Context, e Event) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string, w timerange.Window) ([]Event, error)
}

// Publisher recibe un aviso cada vez que cambian los eventos de un dueño.
type Publisher interface {
	Notify(ownerID string)
}
