package calendarview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"personal-calendar/internal/calendar/momentum"
	"personal-calendar/internal/calendar/timerange"
	"personal-calendar/internal/domain/events"
	"personal-calendar/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/calendar", func(cr chi.Router) {
		cr.Get("/month", monthHandler(svc))
		cr.Get("/week", weekHandler(svc))
		cr.Get("/day", dayHandler(svc))
		cr.Get("/timeline", timelineHandler(svc))

		// Exportación iCalendar del período
		cr.Get("/export.ics", exportHandler(svc))

		cr.Get("/time-slots", timeSlotsHandler())
	})
}

// timeSlot es una opción del selector de hora.
type timeSlot struct {
	Value string `json:"value"` // HH:MM
	Label string `json:"label"` // 12h
}

// timeSlotsHandler godoc
// @Summary Opciones del selector de hora
// @Description Slots de 30 minutos del día con su etiqueta en formato 12h. No requiere autenticación.
// @Tags calendar
// @Produce json
// @Success 200 {array} timeSlot
// @Router /calendar/time-slots [get]
func timeSlotsHandler() http.HandlerFunc {
	slots := momentum.TimeSlots()
	out := make([]timeSlot, 0, len(slots))
	for _, s := range slots {
		label, err := momentum.FormatSlot(s)
		if err != nil {
			continue
		}
		out = append(out, timeSlot{Value: s, Label: label})
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, out)
	}
}

// monthHandler godoc
// @Summary Vista mensual
// @Description Grilla del mes que contiene `date`, en semanas de domingo a sábado con días de relleno del mes anterior y siguiente. Cada celda muestra hasta 3 eventos y la cantidad restante. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags calendar
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param date query string false "Fecha de referencia YYYY-MM-DD (por defecto hoy)"
// @Success 200 {object} MonthView
// @Failure 400 {string} string "fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Router /calendar/month [get]
func monthHandler(svc *Service) http.HandlerFunc {
	return viewHandler(svc, func(ctx context.Context, ownerID string, ref time.Time) (any, error) {
		return svc.Month(ctx, ownerID, ref)
	})
}

// weekHandler godoc
// @Summary Vista semanal
// @Description Siete columnas de domingo a sábado con eventos de día completo aparte y eventos con horario ubicados en porcentaje de la columna de 24 horas. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags calendar
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param date query string false "Fecha de referencia YYYY-MM-DD (por defecto hoy)"
// @Success 200 {object} WeekView
// @Failure 400 {string} string "fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Router /calendar/week [get]
func weekHandler(svc *Service) http.HandlerFunc {
	return viewHandler(svc, func(ctx context.Context, ownerID string, ref time.Time) (any, error) {
		return svc.Week(ctx, ownerID, ref)
	})
}

// dayHandler godoc
// @Summary Vista diaria
// @Description Columna del día con la línea de hora actual cuando el día es hoy. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags calendar
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param date query string false "Fecha YYYY-MM-DD (por defecto hoy)"
// @Success 200 {object} DayView
// @Failure 400 {string} string "fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Router /calendar/day [get]
func dayHandler(svc *Service) http.HandlerFunc {
	return viewHandler(svc, func(ctx context.Context, ownerID string, ref time.Time) (any, error) {
		return svc.Day(ctx, ownerID, ref)
	})
}

// timelineHandler godoc
// @Summary Timeline mensual
// @Description Un círculo por día del mes con hasta 6 marcadores (8 para hoy) y la cantidad restante. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags calendar
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param date query string false "Fecha de referencia YYYY-MM-DD (por defecto hoy)"
// @Success 200 {object} TimelineView
// @Failure 400 {string} string "fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Router /calendar/timeline [get]
func timelineHandler(svc *Service) http.HandlerFunc {
	return viewHandler(svc, func(ctx context.Context, ownerID string, ref time.Time) (any, error) {
		return svc.Timeline(ctx, ownerID, ref)
	})
}

// exportHandler godoc
// @Summary Exportar iCalendar
// @Description Descarga los eventos del día, semana o mes que contiene `date` como archivo .ics. Las reglas de recurrencia se exportan tal cual. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags calendar
// @Produce text/calendar
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param view query string false "day, week o month (por defecto month)"
// @Param date query string false "Fecha de referencia YYYY-MM-DD (por defecto hoy)"
// @Success 200 {string} string "VCALENDAR"
// @Failure 400 {string} string "vista o fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Router /calendar/export.ics [get]
func exportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		g, err := timerange.ParseGranularity(r.URL.Query().Get("view"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ref, err := svc.refDate(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Se arma en memoria para poder responder error antes de escribir headers.
		var buf bytes.Buffer
		if err := svc.Export(r.Context(), &buf, claims.UserID, g, ref); err != nil {
			writeError(w, err)
			return
		}

		filename := fmt.Sprintf("calendar-%s-%s.ics", g, ref.Format(timerange.DateLayout))
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

type viewFunc func(ctx context.Context, ownerID string, ref time.Time) (any, error)

func viewHandler(svc *Service, build viewFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ref, err := svc.refDate(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		out, err := build(r.Context(), claims.UserID, ref)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func (s *Service) refDate(r *http.Request) (time.Time, error) {
	return timerange.ParseDate(r.URL.Query().Get("date"), s.loc, s.now())
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, events.ErrUnauthenticated):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, timerange.ErrInvalidRange), errors.Is(err, timerange.ErrInvalidDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
