package events

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"personal-calendar/internal/calendar/timerange"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	pub  Publisher
	loc  *time.Location
	now  func() time.Time
}

// NewService usa loc para los días calendario (normalización de eventos de
// día completo y ventanas por granularidad).
func NewService(repo Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

// SetPublisher registra quién recibe avisos de cambios. Puede ser nil.
func (s *Service) SetPublisher(p Publisher) {
	s.pub = p
}

func (s *Service) Location() *time.Location { return s.loc }

func (s *Service) Now() time.Time { return s.now() }

type CreateInput struct {
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	AllDay     bool
	Color      string
	Recurrence *string
	Notes      *string
}

// Patch: nil / Present=false = no tocar.
type Patch struct {
	Title      *string
	StartTime  *time.Time
	EndTime    *time.Time
	AllDay     *bool
	Color      *string
	Recurrence Nullable[string]
	Notes      Nullable[string]
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Event, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Event{}, ErrUnauthenticated
	}

	now := s.now()
	e := Event{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Title:      strings.TrimSpace(in.Title),
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		AllDay:     in.AllDay,
		Color:      strings.TrimSpace(in.Color),
		Recurrence: in.Recurrence,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if e.Color == "" {
		e.Color = string(DefaultColor)
	}

	s.normalize(&e)
	if err := validate(e); err != nil {
		return Event{}, err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}
	s.publish(ownerID)
	return e, nil
}

// Get devuelve el evento si pertenece a ownerID.
func (s *Service) Get(ctx context.Context, ownerID, id string) (Event, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Event{}, ErrUnauthenticated
	}
	return s.owned(ctx, ownerID, id)
}

// Update aplica un cambio parcial. Ante cualquier error el evento guardado
// queda igual.
func (s *Service) Update(ctx context.Context, ownerID, id string, p Patch) (Event, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Event{}, ErrUnauthenticated
	}

	e, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return Event{}, err
	}

	if p.Title != nil {
		e.Title = strings.TrimSpace(*p.Title)
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.AllDay != nil {
		e.AllDay = *p.AllDay
	}
	if p.Color != nil {
		e.Color = strings.TrimSpace(*p.Color)
		if e.Color == "" {
			e.Color = string(DefaultColor)
		}
	}
	if p.Recurrence.Present {
		e.Recurrence = p.Recurrence.Value
	}
	if p.Notes.Present {
		e.Notes = p.Notes.Value
	}

	s.normalize(&e)
	if err := validate(e); err != nil {
		return Event{}, err
	}

	e.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, e); err != nil {
		return Event{}, err
	}
	s.publish(ownerID)
	return e, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return ErrUnauthenticated
	}

	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ownerID)
	return nil
}

// QueryRange devuelve los eventos de ownerID que empiezan dentro de w,
// ordenados por inicio. El orden es sólo para salida estable.
func (s *Service) QueryRange(ctx context.Context, ownerID string, w timerange.Window) ([]Event, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	if w.End.Before(w.Start) {
		return nil, fmt.Errorf("%w: %s", timerange.ErrInvalidRange, w)
	}

	items, err := s.repo.ListByOwner(ctx, ownerID, w)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].StartTime.Equal(items[j].StartTime) {
			return items[i].ID < items[j].ID
		}
		return items[i].StartTime.Before(items[j].StartTime)
	})
	return items, nil
}

// QueryPeriod resuelve la ventana (día, semana o mes) que contiene ref.
func (s *Service) QueryPeriod(ctx context.Context, ownerID string, g timerange.Granularity, ref time.Time) ([]Event, timerange.Window, error) {
	w, err := timerange.For(g, ref, s.loc)
	if err != nil {
		return nil, timerange.Window{}, err
	}
	items, err := s.QueryRange(ctx, ownerID, w)
	return items, w, err
}

// owned verifica primero existencia y después dueño.
func (s *Service) owned(ctx context.Context, ownerID, id string) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrNotFound
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Event{}, ErrNotFound
		}
		return Event{}, err
	}
	if e.OwnerID != ownerID {
		return Event{}, ErrUnauthorized
	}
	return e, nil
}

// normalize lleva los eventos de día completo a [00:00, 23:59:59.999] del día
// de inicio.
func (s *Service) normalize(e *Event) {
	if !e.AllDay {
		return
	}
	day := timerange.Day(e.StartTime, s.loc)
	e.StartTime = day.Start
	e.EndTime = day.Last()
}

func validate(e Event) error {
	if e.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if e.StartTime.IsZero() || e.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if e.EndTime.Before(e.StartTime) {
		return fmt.Errorf("%w: end before start", ErrInvalidInput)
	}
	return nil
}

func (s *Service) publish(ownerID string) {
	if s.pub != nil {
		s.pub.Notify(ownerID)
	}
}
