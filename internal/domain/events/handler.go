package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"personal-calendar/internal/calendar/drag"
	"personal-calendar/internal/calendar/timerange"
	"personal-calendar/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registra las rutas con paths planos para que /events/stream
// (paquete live) conviva con /events/{eventID}.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/events", listEventsHandler(svc))
	r.Post("/events", createEventHandler(svc))

	r.Get("/events/{eventID}", getEventHandler(svc))
	r.Patch("/events/{eventID}", updateEventHandler(svc))
	r.Delete("/events/{eventID}", deleteEventHandler(svc))

	// Drag & drop sobre la grilla del día
	r.Post("/events/{eventID}/drop", dropEventHandler(svc))
	r.Post("/events/{eventID}/resize", resizeEventHandler(svc))
}

// createEventRequest es el cuerpo para crear un evento. Los tiempos van en
// milisegundos desde epoch.
type createEventRequest struct {
	Title      string  `json:"title"`
	StartTime  *int64  `json:"startTime"`
	EndTime    *int64  `json:"endTime"`
	AllDay     bool    `json:"allDay"`
	Color      string  `json:"color"`
	Recurrence *string `json:"recurrence"` // ej: FREQ=WEEKLY;BYDAY=MO,WE,FR
	Notes      *string `json:"notes"`
}

// updateEventRequest: campo ausente = no tocar. recurrence/notes aceptan null
// para limpiar.
type updateEventRequest struct {
	Title      *string          `json:"title"`
	StartTime  *int64           `json:"startTime"`
	EndTime    *int64           `json:"endTime"`
	AllDay     *bool            `json:"allDay"`
	Color      *string          `json:"color"`
	Recurrence Nullable[string] `json:"recurrence" swaggertype:"string"`
	Notes      Nullable[string] `json:"notes" swaggertype:"string"`
}

// rectRequest es el rectángulo de la columna del día en el cliente.
type rectRequest struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// dropEventRequest describe dónde se soltó un evento arrastrado.
type dropEventRequest struct {
	PointerY   float64      `json:"pointerY"`
	Rect       *rectRequest `json:"rect"`       // null = columna no disponible
	TargetDate string       `json:"targetDate"` // YYYY-MM-DD, opcional
}

// resizeEventRequest lleva las posiciones del puntero de una redimensión.
type resizeEventRequest struct {
	Edge  string       `json:"edge" enums:"start,end"`
	Rect  *rectRequest `json:"rect"`
	Moves []float64    `json:"moves"`
}

// EventResponse representa un evento devuelto por la API.
type EventResponse struct {
	ID         string  `json:"id"`
	OwnerID    string  `json:"ownerId"`
	Title      string  `json:"title"`
	StartTime  int64   `json:"startTime"`
	EndTime    int64   `json:"endTime"`
	AllDay     bool    `json:"allDay"`
	Color      string  `json:"color"`
	Recurrence *string `json:"recurrence"`
	Notes      *string `json:"notes"`
	CreatedAt  int64   `json:"createdAt"`
	UpdatedAt  int64   `json:"updatedAt"`
}

// rangeResponse es el resultado de una consulta por rango.
type rangeResponse struct {
	Start  int64           `json:"start"`
	End    int64           `json:"end"` // inclusivo (último milisegundo)
	Events []EventResponse `json:"events"`
}

// gestureResponse es el resultado de un drop o resize.
type gestureResponse struct {
	Applied bool          `json:"applied"`
	Event   EventResponse `json:"event"`
}

// listEventsHandler godoc
// @Summary Listar eventos por rango
// @Description Devuelve los eventos del usuario cuyo inicio cae en el rango. Con `start`/`end` (ms, inclusivos) usa ese rango; si no, calcula el día, la semana (domingo a sábado) o el mes que contiene `date`. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags events
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param view query string false "day, week o month (por defecto month)"
// @Param date query string false "Fecha de referencia YYYY-MM-DD (por defecto hoy)"
// @Param start query int false "Inicio del rango en ms (inclusivo)"
// @Param end query int false "Fin del rango en ms (inclusivo)"
// @Success 200 {object} rangeResponse
// @Failure 400 {string} string "rango inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /events [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		win, err := WindowFromRequest(r, svc)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.QueryRange(r.Context(), claims.UserID, win)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]EventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, NewEventResponse(e))
		}
		writeJSON(w, http.StatusOK, rangeResponse{
			Start:  win.Start.UnixMilli(),
			End:    win.Last().UnixMilli(),
			Events: out,
		})
	}
}

// createEventHandler godoc
// @Summary Crear evento
// @Description Crea un evento del usuario autenticado. Los eventos de día completo se normalizan a 00:00–23:59:59.999 del día de inicio. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags events
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createEventRequest true "Datos del evento; tiempos en ms"
// @Success 201 {object} EventResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 429 {string} string "too many requests"
// @Router /events [post]
func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createEventRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.StartTime == nil || req.EndTime == nil {
			http.Error(w, "startTime and endTime are required", http.StatusBadRequest)
			return
		}

		e, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Title:      req.Title,
			StartTime:  time.UnixMilli(*req.StartTime),
			EndTime:    time.UnixMilli(*req.EndTime),
			AllDay:     req.AllDay,
			Color:      req.Color,
			Recurrence: req.Recurrence,
			Notes:      req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, NewEventResponse(e))
	}
}

// getEventHandler godoc
// @Summary Obtener evento
// @Tags events
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento"
// @Success 200 {object} EventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [get]
func getEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		e, err := svc.Get(r.Context(), claims.UserID, chi.URLParam(r, "eventID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, NewEventResponse(e))
	}
}

// updateEventHandler godoc
// @Summary Actualizar evento (parcial)
// @Description Aplica sólo los campos enviados. `recurrence` y `notes` aceptan null para limpiar. Sólo el dueño puede modificar. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags events
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento"
// @Param payload body updateEventRequest true "Campos a modificar"
// @Success 200 {object} EventResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Failure 429 {string} string "too many requests"
// @Router /events/{eventID} [patch]
func updateEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateEventRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p := Patch{
			Title:      req.Title,
			AllDay:     req.AllDay,
			Color:      req.Color,
			Recurrence: req.Recurrence,
			Notes:      req.Notes,
		}
		if req.StartTime != nil {
			t := time.UnixMilli(*req.StartTime)
			p.StartTime = &t
		}
		if req.EndTime != nil {
			t := time.UnixMilli(*req.EndTime)
			p.EndTime = &t
		}

		updated, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "eventID"), p)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, NewEventResponse(updated))
	}
}

// deleteEventHandler godoc
// @Summary Eliminar evento
// @Tags events
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Failure 429 {string} string "too many requests"
// @Router /events/{eventID} [delete]
func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "eventID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// dropEventHandler godoc
// @Summary Soltar evento arrastrado
// @Description Mueve el evento al minuto (redondeado a 15) que corresponde a `pointerY` dentro de `rect`, conservando la duración. Si `targetDate` es otro día se trasladan días completos. Un minuto fuera del día o `rect` null no modifican nada (`applied=false`).
// @Tags events
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento"
// @Param payload body dropEventRequest true "Posición del puntero"
// @Success 200 {object} gestureResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID}/drop [post]
func dropEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req dropEventRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.Get(r.Context(), claims.UserID, chi.URLParam(r, "eventID"))
		if err != nil {
			writeError(w, err)
			return
		}

		target := e.StartTime
		if strings.TrimSpace(req.TargetDate) != "" {
			target, err = timerange.ParseDate(req.TargetDate, svc.Location(), e.StartTime)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		ctl := drag.NewController(dragWriter{svc: svc, ownerID: claims.UserID}, svc.Location())
		ctl.Begin(drag.Target{ID: e.ID, Start: e.StartTime, End: e.EndTime}, drag.ModeMove, req.PointerY)

		_, applied, err := ctl.Drop(r.Context(), req.PointerY, req.Rect.toDrag(), target)
		if err != nil {
			writeError(w, err)
			return
		}

		respondGesture(r.Context(), w, svc, claims.UserID, e, applied)
	}
}

// resizeEventHandler godoc
// @Summary Redimensionar evento
// @Description Aplica en orden las posiciones `moves` sobre el borde indicado. Un movimiento que dejaría inicio >= fin se ignora. Las escrituras se agrupan: se persiste sólo el último valor aceptado.
// @Tags events
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param eventID path string true "ID del evento"
// @Param payload body resizeEventRequest true "Borde y posiciones del puntero"
// @Success 200 {object} gestureResponse
// @Failure 400 {string} string "invalid json / edge inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID}/resize [post]
func resizeEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req resizeEventRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var mode drag.Mode
		switch strings.ToLower(strings.TrimSpace(req.Edge)) {
		case "start":
			mode = drag.ModeResizeStart
		case "end":
			mode = drag.ModeResizeEnd
		default:
			http.Error(w, "edge must be start or end", http.StatusBadRequest)
			return
		}

		e, err := svc.Get(r.Context(), claims.UserID, chi.URLParam(r, "eventID"))
		if err != nil {
			writeError(w, err)
			return
		}

		ctl := drag.NewController(dragWriter{svc: svc, ownerID: claims.UserID}, svc.Location())
		ctl.Begin(drag.Target{ID: e.ID, Start: e.StartTime, End: e.EndTime}, mode, 0)

		rect := req.Rect.toDrag()
		accepted := 0
		for _, y := range req.Moves {
			ok, err := ctl.Move(y, rect)
			if err != nil {
				// gesto abortado (rect nulo)
				break
			}
			if ok {
				accepted++
			}
		}
		if ctl.State() == drag.StateCancelled {
			respondGesture(r.Context(), w, svc, claims.UserID, e, false)
			return
		}

		if _, err := ctl.Release(r.Context()); err != nil {
			writeError(w, err)
			return
		}

		respondGesture(r.Context(), w, svc, claims.UserID, e, accepted > 0)
	}
}

// dragWriter persiste los cambios de un gesto a través del servicio, con
// los mismos chequeos de dueño.
type dragWriter struct {
	svc     *Service
	ownerID string
}

func (d dragWriter) WriteTimes(ctx context.Context, u drag.Update) error {
	_, err := d.svc.Update(ctx, d.ownerID, u.EventID, Patch{StartTime: u.Start, EndTime: u.End})
	return err
}

// decodeJSON lee el cuerpo rechazando campos desconocidos.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (r *rectRequest) toDrag() *drag.Rect {
	if r == nil {
		return nil
	}
	return &drag.Rect{Top: r.Top, Height: r.Height}
}

func respondGesture(ctx context.Context, w http.ResponseWriter, svc *Service, ownerID string, orig Event, applied bool) {
	e := orig
	if applied {
		fresh, err := svc.Get(ctx, ownerID, orig.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		e = fresh
	}
	writeJSON(w, http.StatusOK, gestureResponse{Applied: applied, Event: NewEventResponse(e)})
}

// WindowFromRequest arma la ventana a partir de start/end (ms, inclusivos) o
// de view/date.
func WindowFromRequest(r *http.Request, svc *Service) (timerange.Window, error) {
	q := r.URL.Query()

	if s, e := strings.TrimSpace(q.Get("start")), strings.TrimSpace(q.Get("end")); s != "" || e != "" {
		startMs, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return timerange.Window{}, errors.New("start must be milliseconds")
		}
		endMs, err := strconv.ParseInt(e, 10, 64)
		if err != nil {
			return timerange.Window{}, errors.New("end must be milliseconds")
		}
		return timerange.Inclusive(time.UnixMilli(startMs), time.UnixMilli(endMs))
	}

	g, err := timerange.ParseGranularity(q.Get("view"))
	if err != nil {
		return timerange.Window{}, err
	}
	ref, err := timerange.ParseDate(q.Get("date"), svc.Location(), svc.Now())
	if err != nil {
		return timerange.Window{}, err
	}
	return timerange.For(g, ref, svc.Location())
}

// NewEventResponse convierte un evento a su forma JSON (tiempos en ms).
func NewEventResponse(e Event) EventResponse {
	return EventResponse{
		ID:         e.ID,
		OwnerID:    e.OwnerID,
		Title:      e.Title,
		StartTime:  e.StartTime.UnixMilli(),
		EndTime:    e.EndTime.UnixMilli(),
		AllDay:     e.AllDay,
		Color:      e.Color,
		Recurrence: e.Recurrence,
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt.UnixMilli(),
		UpdatedAt:  e.UpdatedAt.UnixMilli(),
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, timerange.ErrInvalidRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
