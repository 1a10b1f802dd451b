package live

import (
	"context"
	"errors"
	"strings"
	"sync"

	"personal-calendar/internal/calendar/timerange"
	"personal-calendar/internal/domain/events"
	"personal-calendar/internal/platform/logger"
)

var ErrUnauthenticated = errors.New("not authenticated")

// QueryFunc resuelve los eventos de un dueño en una ventana.
type QueryFunc func(ctx context.Context, ownerID string, w timerange.Window) ([]events.Event, error)

// Snapshot es el resultado completo de una consulta en un momento dado.
type Snapshot struct {
	Seq    uint64
	Window timerange.Window
	Events []events.Event
}

// Hub mantiene las suscripciones activas por dueño y re-ejecuta sus consultas
// cuando llega un aviso de cambio.
type Hub struct {
	query QueryFunc
	log   logger.Logger

	mu   sync.Mutex
	subs map[string]map[*Subscription]struct{}
}

func NewHub(query QueryFunc, log logger.Logger) *Hub {
	return &Hub{
		query: query,
		log:   log,
		subs:  make(map[string]map[*Subscription]struct{}),
	}
}

// Subscription entrega snapshots por C. El canal tiene capacidad 1: un
// snapshot nuevo reemplaza al que no se alcanzó a leer.
type Subscription struct {
	C <-chan Snapshot

	hub     *Hub
	ownerID string
	window  timerange.Window
	ctx     context.Context
	cancel  context.CancelFunc

	ch chan Snapshot

	mu        sync.Mutex
	issued    uint64 // última consulta lanzada
	delivered uint64 // seq del último snapshot publicado
	closed    bool
}

// Subscribe registra la suscripción y lanza la consulta inicial. Se cierra
// al cancelar ctx o con Close.
func (h *Hub) Subscribe(ctx context.Context, ownerID string, w timerange.Window) (*Subscription, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	if w.IsZero() || !w.Start.Before(w.End) {
		return nil, timerange.ErrInvalidRange
	}

	sctx, cancel := context.WithCancel(ctx)
	ch := make(chan Snapshot, 1)
	s := &Subscription{
		C:       ch,
		hub:     h,
		ownerID: ownerID,
		window:  w,
		ctx:     sctx,
		cancel:  cancel,
		ch:      ch,
	}

	h.mu.Lock()
	set, ok := h.subs[ownerID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[ownerID] = set
	}
	set[s] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-sctx.Done()
		s.Close()
	}()

	s.refresh()
	return s, nil
}

// Notify re-ejecuta las consultas de todas las suscripciones del dueño.
func (h *Hub) Notify(ownerID string) {
	h.mu.Lock()
	set := h.subs[ownerID]
	targets := make([]*Subscription, 0, len(set))
	for s := range set {
		targets = append(targets, s)
	}
	h.mu.Unlock()

	for _, s := range targets {
		s.refresh()
	}
}

// Subscribers devuelve cuántas suscripciones tiene el dueño.
func (h *Hub) Subscribers(ownerID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[ownerID])
}

func (h *Hub) remove(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.subs[s.ownerID]
	delete(set, s)
	if len(set) == 0 {
		delete(h.subs, s.ownerID)
	}
}

func (s *Subscription) Window() timerange.Window { return s.window }

// Done se cierra cuando la suscripción termina.
func (s *Subscription) Done() <-chan struct{} { return s.ctx.Done() }

// Close libera la suscripción. Es idempotente.
func (s *Subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.hub.remove(s)
}

// refresh lanza una consulta con un número de secuencia nuevo. El resultado
// se descarta si llegó otro más reciente.
func (s *Subscription) refresh() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	go func() {
		items, err := s.hub.query(s.ctx, s.ownerID, s.window)
		if err != nil {
			if s.ctx.Err() == nil {
				s.hub.log.Error("live query failed", map[string]any{
					"owner_id": s.ownerID,
					"seq":      seq,
					"error":    err.Error(),
				})
			}
			return
		}
		s.deliver(Snapshot{Seq: seq, Window: s.window, Events: items})
	}()
}

func (s *Subscription) deliver(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || snap.Seq <= s.delivered {
		return
	}
	s.delivered = snap.Seq

	// Descarta el snapshot pendiente; gana el último.
	select {
	case <-s.ch:
	default:
	}
	s.ch <- snap
}
