// Package drag traduce gestos de arrastre y redimensión sobre la columna del
// día en nuevos horarios de un evento.
//
// Cada gesto vive en un contexto propio dentro del Controller; iniciar un gesto
// nuevo descarta el anterior sin escribir nada.
package drag

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"personal-calendar/internal/calendar/timerange"
)

const (
	SnapInterval  = 15 // minutos
	minutesPerDay = 24 * 60
)

var (
	ErrNoGesture = errors.New("no active gesture")
	ErrWrongMode = errors.New("operation not valid for gesture mode")
)

type Mode int

const (
	ModeMove Mode = iota
	ModeResizeStart
	ModeResizeEnd
)

func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeResizeStart:
		return "resize_start"
	case ModeResizeEnd:
		return "resize_end"
	default:
		return "unknown"
	}
}

type State int

const (
	StateIdle State = iota
	StateDragging
	StateCommitting
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateCommitting:
		return "committing"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Rect es el rectángulo de la columna del día en coordenadas del puntero.
type Rect struct {
	Top    float64
	Height float64
}

// Target es el evento que se está arrastrando.
type Target struct {
	ID    string
	Start time.Time
	End   time.Time
}

// Update es una escritura pendiente; un campo nil no se modifica.
type Update struct {
	EventID string
	Start   *time.Time
	End     *time.Time
}

// Writer persiste los cambios de horario producidos por un gesto.
type Writer interface {
	WriteTimes(ctx context.Context, u Update) error
}

// WriterFunc adapta una función a Writer.
type WriterFunc func(ctx context.Context, u Update) error

func (f WriterFunc) WriteTimes(ctx context.Context, u Update) error { return f(ctx, u) }

type gesture struct {
	mode     Mode
	original Target
	current  Target
	originY  float64
	pending  Coalescer
}

type Controller struct {
	mu     sync.Mutex
	loc    *time.Location
	writer Writer

	state State
	g     *gesture
}

func NewController(w Writer, loc *time.Location) *Controller {
	if loc == nil {
		loc = time.Local
	}
	return &Controller{writer: w, loc: loc}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current devuelve los horarios optimistas del gesto activo.
func (c *Controller) Current() (Target, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.g == nil {
		return Target{}, false
	}
	return c.g.current, true
}

// Begin captura los horarios originales y el origen del puntero.
func (c *Controller) Begin(t Target, mode Mode, originY float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.g = &gesture{
		mode:     mode,
		original: t,
		current:  t,
		originY:  originY,
	}
	c.state = StateDragging
}

// Cancel descarta el gesto y cualquier escritura pendiente.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
}

func (c *Controller) cancelLocked() {
	if c.g != nil {
		c.g.pending.Reset()
	}
	c.g = nil
	c.state = StateCancelled
}

// SnapMinute convierte la posición vertical del puntero en minuto del día
// redondeado a SnapInterval. Devuelve false si rect es nil o si el valor
// cae fuera de [0, 1440).
func SnapMinute(pointerY float64, rect *Rect) (int, bool) {
	if rect == nil || rect.Height <= 0 {
		return 0, false
	}
	minutes := (pointerY - rect.Top) / rect.Height * minutesPerDay
	// redondeo "half up", igual para negativos
	snapped := int(math.Floor(minutes/SnapInterval+0.5)) * SnapInterval
	if snapped < 0 || snapped >= minutesPerDay {
		return 0, false
	}
	return snapped, true
}

// atMinute lleva orig al minuto del día indicado conservando su fecha,
// segundos y milisegundos. La aritmética es de reloj local.
func atMinute(orig time.Time, minute int, loc *time.Location) time.Time {
	o := orig.In(loc)
	diff := minute - (o.Hour()*60 + o.Minute())
	return time.Date(o.Year(), o.Month(), o.Day(), o.Hour(), o.Minute()+diff, o.Second(), o.Nanosecond(), loc)
}

// Drop confirma un gesto de movimiento. targetDay es el día de la columna
// donde se soltó el evento. Si rect es nil el gesto se aborta sin error y sin
// escribir; lo mismo si el minuto cae fuera del día.
func (c *Controller) Drop(ctx context.Context, pointerY float64, rect *Rect, targetDay time.Time) (Target, bool, error) {
	c.mu.Lock()
	if c.g == nil || c.state != StateDragging {
		c.mu.Unlock()
		return Target{}, false, ErrNoGesture
	}
	if c.g.mode != ModeMove {
		c.mu.Unlock()
		return Target{}, false, ErrWrongMode
	}

	snapped, ok := SnapMinute(pointerY, rect)
	if !ok {
		orig := c.g.original
		c.cancelLocked()
		c.mu.Unlock()
		return orig, false, nil
	}

	orig := c.g.original
	duration := orig.End.Sub(orig.Start)
	start := atMinute(orig.Start, snapped, c.loc)
	end := start.Add(duration)

	if !targetDay.IsZero() && !timerange.SameDay(orig.Start, targetDay, c.loc) {
		days := timerange.DaysBetween(orig.Start, targetDay, c.loc)
		start = start.AddDate(0, 0, days)
		end = end.AddDate(0, 0, days)
	}

	moved := Target{ID: orig.ID, Start: start, End: end}
	c.g.current = moved
	c.state = StateCommitting
	c.mu.Unlock()

	err := c.writer.WriteTimes(ctx, Update{EventID: moved.ID, Start: &moved.Start, End: &moved.End})

	c.mu.Lock()
	c.g = nil
	c.state = StateIdle
	c.mu.Unlock()

	if err != nil {
		return orig, false, err
	}
	return moved, true, nil
}

// Move procesa un movimiento durante una redimensión. Un movimiento válido
// queda pendiente en el coalescer; uno que rompería start < end se ignora.
// Si rect es nil el gesto se aborta.
func (c *Controller) Move(pointerY float64, rect *Rect) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.g == nil || c.state != StateDragging {
		return false, ErrNoGesture
	}
	if c.g.mode == ModeMove {
		return false, ErrWrongMode
	}
	if rect == nil {
		c.cancelLocked()
		return false, nil
	}

	snapped, ok := SnapMinute(pointerY, rect)
	if !ok {
		return false, nil
	}

	g := c.g
	switch g.mode {
	case ModeResizeStart:
		t := atMinute(g.original.Start, snapped, c.loc)
		if !t.Before(g.current.End) {
			return false, nil
		}
		g.current.Start = t
		g.pending.Put(Update{EventID: g.original.ID, Start: &t})
	case ModeResizeEnd:
		t := atMinute(g.original.End, snapped, c.loc)
		if !t.After(g.current.Start) {
			return false, nil
		}
		g.current.End = t
		g.pending.Put(Update{EventID: g.original.ID, End: &t})
	}
	return true, nil
}

// Frame escribe a lo sumo un cambio pendiente. Se llama una vez por cuadro.
func (c *Controller) Frame(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if c.g == nil {
		c.mu.Unlock()
		return false, nil
	}
	u, ok := c.g.pending.Take()
	c.mu.Unlock()

	if !ok {
		return false, nil
	}
	return true, c.writer.WriteTimes(ctx, u)
}

// Release termina una redimensión escribiendo lo que quede pendiente.
func (c *Controller) Release(ctx context.Context) (Target, error) {
	c.mu.Lock()
	if c.g == nil || c.state != StateDragging {
		c.mu.Unlock()
		return Target{}, ErrNoGesture
	}
	if c.g.mode == ModeMove {
		c.mu.Unlock()
		return Target{}, ErrWrongMode
	}
	c.state = StateCommitting
	final := c.g.current
	u, ok := c.g.pending.Take()
	c.mu.Unlock()

	var err error
	if ok {
		err = c.writer.WriteTimes(ctx, u)
	}

	c.mu.Lock()
	c.g = nil
	c.state = StateIdle
	c.mu.Unlock()

	return final, err
}
