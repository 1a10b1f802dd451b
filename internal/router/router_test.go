package router_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"personal-calendar/internal/adapters/auth/jwtauth"
	"personal-calendar/internal/router"
)

func ms(day, hour, min int) int64 {
	return time.Date(2024, 6, day, hour, min, 0, 0, time.UTC).UnixMilli()
}

type eventBody struct {
	ID        string `json:"id"`
	OwnerID   string `json:"ownerId"`
	Title     string `json:"title"`
	StartTime int64  `json:"startTime"`
	EndTime   int64  `json:"endTime"`
	AllDay    bool   `json:"allDay"`
	Color     string `json:"color"`
}

func newServer(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()
	t.Setenv("DB_DSN", "")
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	ts := httptest.NewServer(router.NewRouter(opts))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_EventLifecycleAndGestures(t *testing.T) {
	ts := newServer(t, router.Options{})

	ownerID := "owner-1"
	otherID := "other-1"

	// 1) Health
	{
		st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
		if st != http.StatusOK || string(body) != "ok" {
			t.Fatalf("health: %d %s", st, body)
		}
	}

	// 1b) OpenAPI servido con los esquemas de los handlers
	{
		st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
		if st != http.StatusOK {
			t.Fatalf("swagger doc: %d", st)
		}
		var doc struct {
			Paths       map[string]map[string]json.RawMessage `json:"paths"`
			Definitions map[string]json.RawMessage            `json:"definitions"`
		}
		if err := json.Unmarshal(body, &doc); err != nil {
			t.Fatalf("swagger doc is not json: %v", err)
		}
		for path, method := range map[string]string{
			"/events":                  "post",
			"/events/{eventID}":        "patch",
			"/events/{eventID}/resize": "post",
			"/events/stream":           "get",
			"/calendar/month":          "get",
			"/calendar/time-slots":     "get",
		} {
			if _, ok := doc.Paths[path][method]; !ok {
				t.Fatalf("swagger doc missing %s %s", method, path)
			}
		}
		for _, def := range []string{"events.createEventRequest", "events.gestureResponse", "calendarview.MonthView", "live.snapshotMessage"} {
			if _, ok := doc.Definitions[def]; !ok {
				t.Fatalf("swagger doc missing definition %s", def)
			}
		}
	}

	// 2) Sin usuario => 401
	{
		st, _ := doReq(t, ts.URL, "POST", "/events", "", map[string]any{"title": "x"})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without user, got %d", st)
		}
	}

	// 3) Crear evento 09:00-10:00 del 5 de junio
	ev := createEvent(t, ts.URL, ownerID, map[string]any{
		"title":     "Dentista",
		"startTime": ms(5, 9, 0),
		"endTime":   ms(5, 10, 0),
	})
	if ev.Color != "#3b82f6" {
		t.Fatalf("expected default color, got %s", ev.Color)
	}

	// 4) Reglas de negocio => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/events", ownerID, map[string]any{
			"title":     "al revés",
			"startTime": ms(5, 10, 0),
			"endTime":   ms(5, 9, 0),
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for end before start, got %d", st)
		}

		st, body := doReq(t, ts.URL, "POST", "/events", ownerID, map[string]any{"title": "sin horario"})
		if st != http.StatusBadRequest || !strings.Contains(string(body), "startTime and endTime are required") {
			t.Fatalf("expected 400 without times, got %d %s", st, body)
		}
		st, _ = doReq(t, ts.URL, "POST", "/events", ownerID, map[string]any{
			"title":     "solo inicio",
			"startTime": ms(5, 9, 0),
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without endTime, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/events", ownerID, map[string]any{
			"title":     "campo extra",
			"startTime": ms(5, 9, 0),
			"endTime":   ms(5, 10, 0),
			"location":  "consultorio",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown field on create, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "PATCH", "/events/"+ev.ID, ownerID, map[string]any{"location": "x"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown field on patch, got %d", st)
		}

		// Ninguno de los rechazos quedó guardado
		_, body = doReq(t, ts.URL, "GET", "/events?view=month&date=1970-01-01", ownerID, nil)
		if strings.Contains(string(body), `"title"`) {
			t.Fatalf("rejected create must not be stored: %s", body)
		}
	}

	// 5) Listar el día: dueño lo ve, otro usuario no
	{
		st, body := doReq(t, ts.URL, "GET", "/events?view=day&date=2024-06-05", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("list day: %d %s", st, body)
		}
		var resp struct {
			Start  int64       `json:"start"`
			End    int64       `json:"end"`
			Events []eventBody `json:"events"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Events) != 1 || resp.Events[0].ID != ev.ID {
			t.Fatalf("unexpected day listing %s", body)
		}
		if resp.Start != ms(5, 0, 0) || resp.End != ms(6, 0, 0)-1 {
			t.Fatalf("unexpected day bounds %d..%d", resp.Start, resp.End)
		}

		_, body = doReq(t, ts.URL, "GET", "/events?view=day&date=2024-06-05", otherID, nil)
		if strings.Contains(string(body), ev.ID) {
			t.Fatalf("other user must not see the event")
		}

		st, _ = doReq(t, ts.URL, "GET", "/events?start=100&end=50", ownerID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for inverted range, got %d", st)
		}
	}

	// 6) Otro usuario no puede editar
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/events/"+ev.ID, otherID, map[string]any{"title": "hack"})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 patch by other, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "PATCH", "/events/missing", ownerID, map[string]any{"title": "x"})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 patch missing, got %d", st)
		}
	}

	// 7) Drop a las 10:00 del viernes 7: conserva la duración
	{
		st, body := doReq(t, ts.URL, "POST", "/events/"+ev.ID+"/drop", ownerID, map[string]any{
			"pointerY":   600,
			"rect":       map[string]any{"top": 0, "height": 1440},
			"targetDate": "2024-06-07",
		})
		if st != http.StatusOK {
			t.Fatalf("drop: %d %s", st, body)
		}
		var resp struct {
			Applied bool      `json:"applied"`
			Event   eventBody `json:"event"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.Applied || resp.Event.StartTime != ms(7, 10, 0) || resp.Event.EndTime != ms(7, 11, 0) {
			t.Fatalf("unexpected drop result %s", body)
		}
	}

	// 8) Drop sin columna => no se aplica
	{
		st, body := doReq(t, ts.URL, "POST", "/events/"+ev.ID+"/drop", ownerID, map[string]any{
			"pointerY": 300,
			"rect":     nil,
		})
		var resp struct {
			Applied bool      `json:"applied"`
			Event   eventBody `json:"event"`
		}
		_ = json.Unmarshal(body, &resp)
		if st != http.StatusOK || resp.Applied || resp.Event.StartTime != ms(7, 10, 0) {
			t.Fatalf("drop without rect must not apply: %d %s", st, body)
		}
	}

	// 9) Resize del final: gana el último movimiento aceptado
	{
		st, body := doReq(t, ts.URL, "POST", "/events/"+ev.ID+"/resize", ownerID, map[string]any{
			"edge":  "end",
			"rect":  map[string]any{"top": 0, "height": 1440},
			"moves": []float64{720, 500, 700},
		})
		if st != http.StatusOK {
			t.Fatalf("resize: %d %s", st, body)
		}
		var resp struct {
			Applied bool      `json:"applied"`
			Event   eventBody `json:"event"`
		}
		_ = json.Unmarshal(body, &resp)
		// 500 => 08:15 queda antes del inicio y se ignora; 700 => 11:40 => 11:45
		if !resp.Applied || resp.Event.EndTime != ms(7, 11, 45) || resp.Event.StartTime != ms(7, 10, 0) {
			t.Fatalf("unexpected resize result %s", body)
		}

		st, _ = doReq(t, ts.URL, "POST", "/events/"+ev.ID+"/resize", ownerID, map[string]any{"edge": "middle"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad edge, got %d", st)
		}
	}

	// 10) Vistas y exportación
	{
		st, body := doReq(t, ts.URL, "GET", "/calendar/month?date=2024-06-01", ownerID, nil)
		if st != http.StatusOK || !strings.Contains(string(body), ev.ID) {
			t.Fatalf("month view: %d %s", st, body)
		}
		st, body = doReq(t, ts.URL, "GET", "/calendar/time-slots", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"label":"9:30 AM"`) {
			t.Fatalf("time slots: %d %s", st, body)
		}

		st, _ = doReq(t, ts.URL, "GET", "/calendar/week?date=bad", ownerID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad date, got %d", st)
		}

		req, _ := http.NewRequest("GET", ts.URL+"/calendar/export.ics?view=week&date=2024-06-07", nil)
		req.Header.Set("X-Debug-User-ID", ownerID)
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("export: %v", err)
		}
		ics, _ := io.ReadAll(res.Body)
		res.Body.Close()
		if !strings.HasPrefix(res.Header.Get("Content-Type"), "text/calendar") || !strings.Contains(string(ics), "SUMMARY:Dentista") {
			t.Fatalf("unexpected export %s %s", res.Header.Get("Content-Type"), ics)
		}
	}

	// 11) Borrar
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/events/"+ev.ID, otherID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 delete by other, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/events/"+ev.ID, ownerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/events/"+ev.ID, ownerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_StreamSendsSnapshots(t *testing.T) {
	ts := newServer(t, router.Options{})
	ownerID := "owner-1"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, "GET", ts.URL+"/events/stream?view=day&date=2024-06-05", nil)
	req.Header.Set("X-Debug-User-ID", ownerID)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK || !strings.HasPrefix(res.Header.Get("Content-Type"), "text/event-stream") {
		t.Fatalf("unexpected stream response %d %s", res.StatusCode, res.Header.Get("Content-Type"))
	}

	rd := bufio.NewReader(res.Body)

	first := nextSnapshot(t, rd)
	if len(first.Events) != 0 {
		t.Fatalf("expected empty initial snapshot, got %d events", len(first.Events))
	}

	ev := createEvent(t, ts.URL, ownerID, map[string]any{
		"title":     "Live",
		"startTime": ms(5, 14, 0),
		"endTime":   ms(5, 15, 0),
	})

	second := nextSnapshot(t, rd)
	if second.Seq <= first.Seq || len(second.Events) != 1 || second.Events[0].ID != ev.ID {
		t.Fatalf("unexpected snapshot after create %+v", second)
	}
}

func TestHTTP_RateLimitAndJWT(t *testing.T) {
	v, err := jwtauth.NewVerifier("s3cret")
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	ts := newServer(t, router.Options{AuthVerifier: v, RateLimitPerMin: 10})

	token, _ := v.Issue("u1", "u1@example.com", time.Hour)
	payload := map[string]any{"title": "x", "startTime": ms(5, 9, 0), "endTime": ms(5, 10, 0)}

	// Con verifier el header de debug no alcanza.
	if st, _ := doReq(t, ts.URL, "POST", "/events", "u1", payload); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with debug header in verifier mode, got %d", st)
	}

	if st, body := doBearer(t, ts.URL, "POST", "/events", token, payload); st != http.StatusCreated {
		t.Fatalf("expected 201 with bearer, got %d %s", st, body)
	}
	if st, _ := doBearer(t, ts.URL, "POST", "/events", token, payload); st != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on burst, got %d", st)
	}
	if st, _ := doBearer(t, ts.URL, "GET", "/events?view=month&date=2024-06-01", token, nil); st != http.StatusOK {
		t.Fatalf("reads must not be rate limited, got %d", st)
	}
}

// -------------------------
// Helpers
// -------------------------

type snapshot struct {
	Seq    uint64      `json:"seq"`
	Events []eventBody `json:"events"`
}

func nextSnapshot(t *testing.T, rd *bufio.Reader) snapshot {
	t.Helper()
	for {
		line, err := rd.ReadString('\n')
		if err != nil {
			t.Fatalf("read stream: %v", err)
		}
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var s snapshot
		if err := json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(line), "data: ")), &s); err != nil {
			t.Fatalf("decode snapshot: %v", err)
		}
		return s
	}
}

func createEvent(t *testing.T, baseURL, userID string, payload map[string]any) eventBody {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/events", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create event, got %d body=%s", st, string(body))
	}

	var resp eventBody
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create event: missing id body=%s", string(body))
	}
	return resp
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()
	headers := map[string]string{}
	if debugUserID != "" {
		headers["X-Debug-User-ID"] = debugUserID
	}
	return send(t, baseURL, method, path, headers, body)
}

func doBearer(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()
	return send(t, baseURL, method, path, map[string]string{"Authorization": "Bearer " + token}, body)
}

func send(t *testing.T, baseURL, method, path string, headers map[string]string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
