package drag

import (
	"context"
	"sync"
	"testing"
	"time"
)

type recordingWriter struct {
	mu     sync.Mutex
	writes []Update
}

func (w *recordingWriter) WriteTimes(_ context.Context, u Update) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes = append(w.writes, u)
	return nil
}

func (w *recordingWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.writes)
}

// minuteRect hace que pointerY == minuto del día.
var minuteRect = &Rect{Top: 0, Height: 1440}

func at(day time.Time, minute int) time.Time {
	return day.Add(time.Duration(minute) * time.Minute)
}

func TestSnapMinute(t *testing.T) {
	cases := []struct {
		y    float64
		want int
		ok   bool
	}{
		{137, 135, true},
		{142.4, 135, true},
		{142.5, 150, true},
		{0, 0, true},
		{-7.4, 0, true},
		{-7.6, 0, false},
		{1432.4, 1425, true},
		{1432.5, 0, false}, // redondea a 1440
	}
	for _, c := range cases {
		got, ok := SnapMinute(c.y, minuteRect)
		if ok != c.ok || (ok && got != c.want) {
			t.Fatalf("SnapMinute(%v) = %d,%v want %d,%v", c.y, got, ok, c.want, c.ok)
		}
	}

	if _, ok := SnapMinute(100, nil); ok {
		t.Fatalf("expected nil rect to be rejected")
	}
}

func TestDrop_SnapsAndPreservesDuration(t *testing.T) {
	loc := time.UTC
	day := time.Date(2024, 6, 5, 0, 0, 0, 0, loc)
	w := &recordingWriter{}
	c := NewController(w, loc)

	c.Begin(Target{ID: "e1", Start: at(day, 130), End: at(day, 190)}, ModeMove, 130)
	got, applied, err := c.Drop(context.Background(), 137, minuteRect, day)
	if err != nil || !applied {
		t.Fatalf("drop: applied=%v err=%v", applied, err)
	}

	if !got.Start.Equal(at(day, 135)) || !got.End.Equal(at(day, 195)) {
		t.Fatalf("unexpected result %s - %s", got.Start, got.End)
	}
	if w.count() != 1 {
		t.Fatalf("expected exactly one write, got %d", w.count())
	}
	if c.State() != StateIdle {
		t.Fatalf("expected idle after commit, got %s", c.State())
	}
}

func TestDrop_CarriesWholeDays(t *testing.T) {
	loc := time.UTC
	d1 := time.Date(2024, 6, 5, 0, 0, 0, 0, loc)
	d2 := time.Date(2024, 6, 7, 0, 0, 0, 0, loc)
	w := &recordingWriter{}
	c := NewController(w, loc)

	c.Begin(Target{ID: "e1", Start: at(d1, 600), End: at(d1, 660)}, ModeMove, 600)
	got, applied, err := c.Drop(context.Background(), 840, minuteRect, d2)
	if err != nil || !applied {
		t.Fatalf("drop: applied=%v err=%v", applied, err)
	}
	if !got.Start.Equal(at(d2, 840)) || !got.End.Equal(at(d2, 900)) {
		t.Fatalf("unexpected result %s - %s", got.Start, got.End)
	}

	u := w.writes[0]
	if u.Start == nil || u.End == nil || !u.Start.Equal(got.Start) || !u.End.Equal(got.End) {
		t.Fatalf("unexpected write %+v", u)
	}
}

func TestDrop_OutOfRangeLeavesTimesUnchanged(t *testing.T) {
	loc := time.UTC
	day := time.Date(2024, 6, 5, 0, 0, 0, 0, loc)
	w := &recordingWriter{}
	c := NewController(w, loc)

	orig := Target{ID: "e1", Start: at(day, 60), End: at(day, 120)}
	c.Begin(orig, ModeMove, 60)
	got, applied, err := c.Drop(context.Background(), 1500, minuteRect, day)
	if err != nil || applied {
		t.Fatalf("expected silent rejection, applied=%v err=%v", applied, err)
	}
	if !got.Start.Equal(orig.Start) || w.count() != 0 {
		t.Fatalf("expected no change and no write")
	}
}

func TestDrop_NilRectAbortsSilently(t *testing.T) {
	loc := time.UTC
	day := time.Date(2024, 6, 5, 0, 0, 0, 0, loc)
	w := &recordingWriter{}
	c := NewController(w, loc)

	c.Begin(Target{ID: "e1", Start: at(day, 60), End: at(day, 120)}, ModeMove, 60)
	_, applied, err := c.Drop(context.Background(), 300, nil, day)
	if err != nil || applied {
		t.Fatalf("expected abort without error, applied=%v err=%v", applied, err)
	}
	if w.count() != 0 || c.State() != StateCancelled {
		t.Fatalf("expected cancelled without writes, state=%s writes=%d", c.State(), w.count())
	}
}

func TestResizeStart_RejectsPastEnd(t *testing.T) {
	loc := time.UTC
	day := time.Date(2024, 6, 5, 0, 0, 0, 0, loc)
	w := &recordingWriter{}
	c := NewController(w, loc)

	c.Begin(Target{ID: "e1", Start: at(day, 600), End: at(day, 660)}, ModeResizeStart, 600)
	ok, err := c.Move(675, minuteRect) // 11:15
	if err != nil || ok {
		t.Fatalf("expected rejected move, ok=%v err=%v", ok, err)
	}

	final, err := c.Release(context.Background())
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	if !final.Start.Equal(at(day, 600)) {
		t.Fatalf("expected start unchanged, got %s", final.Start)
	}
	if w.count() != 0 {
		t.Fatalf("expected no writes, got %d", w.count())
	}
}

func TestResizeEnd_CoalescesPerFrame(t *testing.T) {
	loc := time.UTC
	day := time.Date(2024, 6, 5, 0, 0, 0, 0, loc)
	w := &recordingWriter{}
	c := NewController(w, loc)
	ctx := context.Background()

	c.Begin(Target{ID: "e1", Start: at(day, 600), End: at(day, 660)}, ModeResizeEnd, 660)

	for _, y := range []float64{680, 700, 720} {
		if ok, err := c.Move(y, minuteRect); err != nil || !ok {
			t.Fatalf("move %v: ok=%v err=%v", y, ok, err)
		}
	}
	if wrote, err := c.Frame(ctx); err != nil || !wrote {
		t.Fatalf("frame: wrote=%v err=%v", wrote, err)
	}
	if w.count() != 1 || !w.writes[0].End.Equal(at(day, 720)) || w.writes[0].Start != nil {
		t.Fatalf("expected single end write at 12:00, got %+v", w.writes)
	}

	if wrote, _ := c.Frame(ctx); wrote {
		t.Fatalf("expected empty frame")
	}

	// no puede quedar antes del inicio
	if ok, _ := c.Move(590, minuteRect); ok {
		t.Fatalf("expected end before start to be rejected")
	}
	if ok, _ := c.Move(750, minuteRect); !ok {
		t.Fatalf("expected move to 12:30 accepted")
	}

	final, err := c.Release(ctx)
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	if w.count() != 2 || !final.End.Equal(at(day, 750)) {
		t.Fatalf("expected flush on release, writes=%d end=%s", w.count(), final.End)
	}
}

func TestBegin_CancelsPreviousGesture(t *testing.T) {
	loc := time.UTC
	day := time.Date(2024, 6, 5, 0, 0, 0, 0, loc)
	w := &recordingWriter{}
	c := NewController(w, loc)

	c.Begin(Target{ID: "e1", Start: at(day, 600), End: at(day, 660)}, ModeResizeEnd, 660)
	if ok, _ := c.Move(700, minuteRect); !ok {
		t.Fatalf("expected accepted move")
	}

	c.Begin(Target{ID: "e2", Start: at(day, 60), End: at(day, 120)}, ModeResizeEnd, 120)
	if wrote, _ := c.Frame(context.Background()); wrote {
		t.Fatalf("expected pending write of previous gesture to be discarded")
	}
	if cur, _ := c.Current(); cur.ID != "e2" {
		t.Fatalf("expected e2 active, got %s", cur.ID)
	}
}

func TestCancel_DiscardsPending(t *testing.T) {
	loc := time.UTC
	day := time.Date(2024, 6, 5, 0, 0, 0, 0, loc)
	w := &recordingWriter{}
	c := NewController(w, loc)

	c.Begin(Target{ID: "e1", Start: at(day, 600), End: at(day, 660)}, ModeResizeEnd, 660)
	_, _ = c.Move(700, minuteRect)
	c.Cancel()

	if _, err := c.Release(context.Background()); err != ErrNoGesture {
		t.Fatalf("expected ErrNoGesture after cancel, got %v", err)
	}
	if w.count() != 0 {
		t.Fatalf("expected no writes after cancel")
	}
}

func TestCoalescer_LastValueWins(t *testing.T) {
	var c Coalescer
	for i := 0; i < 3; i++ {
		c.Put(Update{EventID: string(rune('a' + i))})
	}
	u, ok := c.Take()
	if !ok || u.EventID != "c" {
		t.Fatalf("expected last value, got %+v", u)
	}
	if c.Dropped() != 2 {
		t.Fatalf("expected 2 dropped, got %d", c.Dropped())
	}
	if _, ok := c.Take(); ok {
		t.Fatalf("expected empty after take")
	}
}
