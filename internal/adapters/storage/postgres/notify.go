package postgres

import (
	"context"
	"errors"
	"time"

	"personal-calendar/internal/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NotifyChannel es el canal que dispara el trigger de calendar_events.
const NotifyChannel = "calendar_events"

// Listener reenvía las notificaciones de Postgres (payload = owner_id) a
// onNotify. Sirve para avisar a suscriptores de cambios hechos por otras
// instancias.
type Listener struct {
	pool     *pgxpool.Pool
	onNotify func(ownerID string)
	log      logger.Logger

	retryDelay time.Duration
}

func NewListener(pool *pgxpool.Pool, onNotify func(ownerID string), log logger.Logger) *Listener {
	return &Listener{
		pool:       pool,
		onNotify:   onNotify,
		log:        log,
		retryDelay: 2 * time.Second,
	}
}

// Run escucha hasta que ctx se cancela. Ante errores de conexión reintenta.
func (l *Listener) Run(ctx context.Context) error {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		l.log.Warn("postgres listener disconnected", map[string]any{
			"channel": NotifyChannel,
			"error":   err.Error(),
		})

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.retryDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+NotifyChannel); err != nil {
		return err
	}
	l.log.Info("postgres listener started", map[string]any{"channel": NotifyChannel})

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		if n == nil || n.Payload == "" {
			continue
		}
		l.onNotify(n.Payload)
	}
}

// OpenPool abre el pool nativo de pgx usado por el listener.
func OpenPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Join(errors.New("postgres: ping pool"), err)
	}
	return pool, nil
}
