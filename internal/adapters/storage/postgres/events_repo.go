package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"personal-calendar/internal/calendar/timerange"
	"personal-calendar/internal/domain/events"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

const eventColumns = `
	id, owner_id,
	title,
	start_time, end_time, all_day,
	color, recurrence, notes,
	created_at, updated_at
`

func (r *EventsRepo) Create(ctx context.Context, e events.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calendar_events (`+eventColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		e.ID,
		e.OwnerID,
		e.Title,
		e.StartTime,
		e.EndTime,
		e.AllDay,
		e.Color,
		toNullString(e.Recurrence),
		toNullString(e.Notes),
		e.CreatedAt,
		e.UpdatedAt,
	)
	return err
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.Event{}, events.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+eventColumns+`
		FROM calendar_events
		WHERE id = $1
	`, id)

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return events.Event{}, events.ErrNotFound
		}
		return events.Event{}, err
	}
	return e, nil
}

func (r *EventsRepo) Update(ctx context.Context, e events.Event) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE calendar_events
		SET
			title = $2,
			start_time = $3,
			end_time = $4,
			all_day = $5,
			color = $6,
			recurrence = $7,
			notes = $8,
			updated_at = $9
		WHERE id = $1
	`,
		e.ID,
		e.Title,
		e.StartTime,
		e.EndTime,
		e.AllDay,
		e.Color,
		toNullString(e.Recurrence),
		toNullString(e.Notes),
		e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return events.ErrNotFound
	}
	return nil
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return events.ErrNotFound
	}
	return nil
}

// ListByOwner usa el índice (owner_id, start_time). Ventana semiabierta.
func (r *EventsRepo) ListByOwner(ctx context.Context, ownerID string, w timerange.Window) ([]events.Event, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM calendar_events
		WHERE owner_id = $1
		  AND start_time >= $2
		  AND start_time < $3
	`, ownerID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (events.Event, error) {
	var e events.Event
	var recurrence, notes sql.NullString
	if err := s.Scan(
		&e.ID,
		&e.OwnerID,
		&e.Title,
		&e.StartTime,
		&e.EndTime,
		&e.AllDay,
		&e.Color,
		&recurrence,
		&notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return events.Event{}, err
	}
	e.Recurrence = fromNullString(recurrence)
	e.Notes = fromNullString(notes)
	return e, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
