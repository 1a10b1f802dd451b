package live

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"personal-calendar/internal/domain/events"
	"personal-calendar/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// KeepAlive es el intervalo de comentarios ": ping" en el stream.
var KeepAlive = 25 * time.Second

func RegisterRoutes(r chi.Router, hub *Hub, svc *events.Service) {
	r.Get("/events/stream", streamHandler(hub, svc))
}

// snapshotMessage es el payload de cada mensaje "snapshot" del stream.
type snapshotMessage struct {
	Seq    uint64                 `json:"seq"`
	Start  int64                  `json:"start"`
	End    int64                  `json:"end"` // inclusivo (último milisegundo)
	Events []events.EventResponse `json:"events"`
}

// streamHandler godoc
// @Summary Suscribirse a un rango de eventos (SSE)
// @Description Abre un stream Server-Sent Events. Envía un snapshot completo del rango al conectar y otro cada vez que cambian los eventos del usuario. Si llegan varios cambios seguidos solo se envía el más reciente. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags live
// @Produce text/event-stream
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param view query string false "day, week o month (por defecto month)"
// @Param date query string false "Fecha de referencia YYYY-MM-DD (por defecto hoy)"
// @Param start query int false "Inicio del rango en ms (inclusivo)"
// @Param end query int false "Fin del rango en ms (inclusivo)"
// @Success 200 {object} snapshotMessage "un mensaje por snapshot"
// @Failure 400 {string} string "rango inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /events/stream [get]
func streamHandler(hub *Hub, svc *events.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		win, err := events.WindowFromRequest(r, svc)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		sub, err := hub.Subscribe(r.Context(), claims.UserID, win)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer sub.Close()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		ticker := time.NewTicker(KeepAlive)
		defer ticker.Stop()

		for {
			select {
			case <-sub.Done():
				return
			case <-ticker.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				flusher.Flush()
			case snap := <-sub.C:
				if err := writeSnapshot(w, snap); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

func writeSnapshot(w http.ResponseWriter, snap Snapshot) error {
	out := make([]events.EventResponse, 0, len(snap.Events))
	for _, e := range snap.Events {
		out = append(out, events.NewEventResponse(e))
	}
	b, err := json.Marshal(snapshotMessage{
		Seq:    snap.Seq,
		Start:  snap.Window.Start.UnixMilli(),
		End:    snap.Window.Last().UnixMilli(),
		Events: out,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "id: %d\nevent: snapshot\ndata: %s\n\n", snap.Seq, b)
	return err
}
