// Package momentum implementa el scroll cinético del timeline de días y de la
// rueda del selector de hora: seguimiento de velocidad durante el arrastre,
// decaimiento por fricción al soltar y ajuste al ítem más cercano.
package momentum

import (
	"context"
	"math"
	"sync"
	"time"
)

const (
	Friction         = 0.95
	ReleaseThreshold = 0.5
	FrameMillis      = 16.0

	WheelMultiplier = 4.0
	// TimelineDragMultiplier es ajustable; no se deriva de nada.
	TimelineDragMultiplier = 6.0
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTracking
	PhaseCoasting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTracking:
		return "tracking"
	case PhaseCoasting:
		return "coasting"
	default:
		return "unknown"
	}
}

// Config describe el eje scrolleable.
type Config struct {
	// DragMultiplier escala el delta del puntero (1 si es cero).
	DragMultiplier float64
	// ItemSize > 0 habilita el ajuste al ítem más cercano al detenerse.
	ItemSize float64
	// Items > 0 limita el offset a las posiciones que centran el primer y el
	// último ítem.
	Items    int
	Viewport float64
}

type gesture struct {
	startPos    float64
	startOffset float64
	lastPos     float64
	lastAt      time.Time
}

// Scroller mantiene offset y velocidad de un eje. Es seguro para uso
// concurrente; el gesto activo es exclusivo del Scroller.
type Scroller struct {
	mu  sync.Mutex
	cfg Config

	offset   float64
	velocity float64
	phase    Phase
	g        gesture
}

func NewScroller(cfg Config) *Scroller {
	if cfg.DragMultiplier == 0 {
		cfg.DragMultiplier = 1
	}
	return &Scroller{cfg: cfg}
}

func (s *Scroller) Offset() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

func (s *Scroller) Velocity() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.velocity
}

func (s *Scroller) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// SetOffset posiciona el eje directamente y corta cualquier inercia.
func (s *Scroller) SetOffset(off float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.velocity = 0
	s.phase = PhaseIdle
	s.offset = s.clamp(off)
}

// Begin inicia un arrastre; cancela la animación en curso.
func (s *Scroller) Begin(pos float64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.velocity = 0
	s.phase = PhaseTracking
	s.g = gesture{startPos: pos, startOffset: s.offset, lastPos: pos, lastAt: at}
}

// Move actualiza el offset y estima la velocidad en unidades por cuadro
// (Δpos/Δt * 16 * multiplicador).
func (s *Scroller) Move(pos float64, at time.Time) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseTracking {
		return s.offset
	}

	m := s.cfg.DragMultiplier
	s.offset = s.clamp(s.g.startOffset - (pos-s.g.startPos)*m)

	dt := float64(at.Sub(s.g.lastAt)) / float64(time.Millisecond)
	if dt > 0 {
		s.velocity = (pos - s.g.lastPos) / dt * FrameMillis * m
	}
	s.g.lastPos = pos
	s.g.lastAt = at
	return s.offset
}

// Release termina el arrastre. Devuelve true si arranca la inercia.
func (s *Scroller) Release() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseTracking {
		return false
	}
	return s.startCoastLocked()
}

// Fling arranca la inercia con una velocidad dada.
func (s *Scroller) Fling(v float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.velocity = v
	return s.startCoastLocked()
}

func (s *Scroller) startCoastLocked() bool {
	if math.Abs(s.velocity) > ReleaseThreshold {
		s.phase = PhaseCoasting
		return true
	}
	s.velocity = 0
	s.phase = PhaseIdle
	s.snapLocked()
	return false
}

// Step avanza un cuadro de inercia. Cuando la velocidad baja del umbral se
// detiene y se ajusta al ítem más cercano.
func (s *Scroller) Step() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseCoasting {
		return s.offset, false
	}

	s.offset = s.clamp(s.offset - s.velocity)
	s.velocity *= Friction

	if math.Abs(s.velocity) < ReleaseThreshold {
		s.velocity = 0
		s.phase = PhaseIdle
		s.snapLocked()
		return s.offset, false
	}
	return s.offset, true
}

// Wheel redirige la rueda vertical al eje con multiplicador 4 cuando domina
// deltaY. Cancela la inercia.
func (s *Scroller) Wheel(dx, dy float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.velocity = 0
	s.phase = PhaseIdle
	if math.Abs(dy) > math.Abs(dx) {
		s.offset = s.clamp(s.offset + dy*WheelMultiplier)
	} else {
		s.offset = s.clamp(s.offset + dx)
	}
	return s.offset
}

func (s *Scroller) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.velocity = 0
	s.phase = PhaseIdle
}

// Snap ajusta el offset al ítem más cercano al centro y devuelve su índice.
func (s *Scroller) Snap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapLocked()
}

// Index devuelve el ítem centrado sin mover el offset.
func (s *Scroller) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexAt(s.offset)
}

func (s *Scroller) snapLocked() int {
	if s.cfg.ItemSize <= 0 {
		return 0
	}
	idx := s.indexAt(s.offset)
	s.offset = s.clamp(s.offsetFor(idx))
	return idx
}

func (s *Scroller) centre() float64 {
	if s.cfg.Viewport <= 0 {
		return 0
	}
	return s.cfg.Viewport/2 - s.cfg.ItemSize/2
}

func (s *Scroller) indexAt(off float64) int {
	if s.cfg.ItemSize <= 0 {
		return 0
	}
	idx := int(math.Floor((off+s.centre())/s.cfg.ItemSize + 0.5))
	if idx < 0 {
		idx = 0
	}
	if s.cfg.Items > 0 && idx > s.cfg.Items-1 {
		idx = s.cfg.Items - 1
	}
	return idx
}

func (s *Scroller) offsetFor(idx int) float64 {
	return float64(idx)*s.cfg.ItemSize - s.centre()
}

func (s *Scroller) clamp(off float64) float64 {
	if s.cfg.Items <= 0 || s.cfg.ItemSize <= 0 {
		return off
	}
	return math.Max(s.offsetFor(0), math.Min(off, s.offsetFor(s.cfg.Items-1)))
}

// Run avanza la inercia una vez por cada tick de frames hasta que se detiene,
// se cierra el canal o se cancela ctx.
func Run(ctx context.Context, s *Scroller, frames <-chan time.Time, onFrame func(offset float64)) error {
	for {
		select {
		case <-ctx.Done():
			s.Cancel()
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			off, running := s.Step()
			if onFrame != nil {
				onFrame(off)
			}
			if !running {
				return nil
			}
		}
	}
}
