package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal-calendar/internal/calendar/timerange"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID    map[string]Event
	updates int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Event{}}
}

func (r *testRepo) Create(ctx context.Context, e Event) error {
	if e.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[e.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return Event{}, ErrNotFound
	}
	return e, nil
}

func (r *testRepo) Update(ctx context.Context, e Event) error {
	if _, ok := r.byID[e.ID]; !ok {
		return ErrNotFound
	}
	r.updates++
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string, w timerange.Window) ([]Event, error) {
	out := make([]Event, 0)
	for _, e := range r.byID {
		if e.OwnerID == ownerID && w.Contains(e.StartTime) {
			out = append(out, e)
		}
	}
	return out, nil
}

type countingPublisher struct {
	byOwner map[string]int
}

func (p *countingPublisher) Notify(ownerID string) {
	if p.byOwner == nil {
		p.byOwner = map[string]int{}
	}
	p.byOwner[ownerID]++
}

// -------------------------
// Helpers
// -------------------------

var fixedNow = time.Date(2024, 6, 5, 8, 0, 0, 0, time.UTC)

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, time.UTC)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func mustCreate(t *testing.T, svc *Service, ownerID string, in CreateInput) Event {
	t.Helper()
	e, err := svc.Create(context.Background(), ownerID, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return e
}

func timed(title string, start time.Time, d time.Duration) CreateInput {
	return CreateInput{Title: title, StartTime: start, EndTime: start.Add(d)}
}

func strp(s string) *string { return &s }

// -------------------------
// Tests
// -------------------------

func TestCreate_DefaultsAndValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	start := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)

	e := mustCreate(t, svc, "u1", CreateInput{Title: "  Standup  ", StartTime: start, EndTime: start.Add(15 * time.Minute)})
	if e.ID == "" || e.OwnerID != "u1" {
		t.Fatalf("expected id and owner, got %+v", e)
	}
	if e.Title != "Standup" || e.Color != string(DefaultColor) {
		t.Fatalf("unexpected defaults %+v", e)
	}
	if e.Recurrence != nil || e.Notes != nil {
		t.Fatalf("expected absent recurrence/notes")
	}
	if !e.CreatedAt.Equal(fixedNow) {
		t.Fatalf("expected injected clock, got %s", e.CreatedAt)
	}

	if _, err := svc.Create(ctx, "", timed("x", start, time.Hour)); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.Create(ctx, "u1", timed("   ", start, time.Hour)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty title, got %v", err)
	}
	if _, err := svc.Create(ctx, "u1", timed("x", start, -time.Minute)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for end before start, got %v", err)
	}

	// duración cero es válida
	if _, err := svc.Create(ctx, "u1", timed("x", start, 0)); err != nil {
		t.Fatalf("expected zero-length event to be accepted, got %v", err)
	}
}

func TestCreate_AllDayNormalized(t *testing.T) {
	svc, _ := newTestService()
	start := time.Date(2024, 6, 5, 14, 30, 0, 0, time.UTC)

	e := mustCreate(t, svc, "u1", CreateInput{Title: "Holiday", StartTime: start, EndTime: start, AllDay: true})

	if !e.StartTime.Equal(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected all-day start %s", e.StartTime)
	}
	if !e.EndTime.Equal(time.Date(2024, 6, 5, 23, 59, 59, int(999*time.Millisecond), time.UTC)) {
		t.Fatalf("unexpected all-day end %s", e.EndTime)
	}
}

func TestCreate_EmptyNotesDistinctFromAbsent(t *testing.T) {
	svc, _ := newTestService()
	start := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)

	in := timed("x", start, time.Hour)
	in.Notes = strp("")
	e := mustCreate(t, svc, "u1", in)
	if e.Notes == nil || *e.Notes != "" {
		t.Fatalf("expected empty notes to be kept, got %v", e.Notes)
	}
}

func TestUpdate_Unauthorized_LeavesEventUnchanged(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	start := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)

	e := mustCreate(t, svc, "owner", timed("Mine", start, time.Hour))

	title := "Hijacked"
	_, err := svc.Update(ctx, "intruder", e.ID, Patch{Title: &title})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	stored := repo.byID[e.ID]
	if stored.Title != "Mine" || repo.updates != 0 {
		t.Fatalf("expected stored event unchanged, got %+v (updates=%d)", stored, repo.updates)
	}
}

func TestUpdate_NotFoundCheckedBeforeOwnership(t *testing.T) {
	svc, _ := newTestService()
	title := "x"
	if _, err := svc.Update(context.Background(), "anyone", "missing", Patch{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "", "missing", Patch{}); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	start := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)

	in := timed("Gym", start, time.Hour)
	in.Recurrence = strp("FREQ=WEEKLY;BYDAY=MO,WE,FR")
	in.Notes = strp("bring towel")
	e := mustCreate(t, svc, "u1", in)

	later := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return later }

	newEnd := start.Add(2 * time.Hour)
	updated, err := svc.Update(ctx, "u1", e.ID, Patch{
		EndTime:    &newEnd,
		Recurrence: Null[string](),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Gym" || !updated.StartTime.Equal(start) || !updated.EndTime.Equal(newEnd) {
		t.Fatalf("unexpected update result %+v", updated)
	}
	if updated.Recurrence != nil {
		t.Fatalf("expected recurrence cleared")
	}
	if updated.Notes == nil || *updated.Notes != "bring towel" {
		t.Fatalf("expected notes untouched")
	}
	if !updated.UpdatedAt.Equal(later) || !updated.CreatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected timestamps %s / %s", updated.CreatedAt, updated.UpdatedAt)
	}
	if !repo.byID[e.ID].EndTime.Equal(newEnd) {
		t.Fatalf("expected repo to hold new end")
	}
}

func TestUpdate_InvalidLeavesEventUnchanged(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	start := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)
	e := mustCreate(t, svc, "u1", timed("x", start, time.Hour))

	before := start.Add(-time.Hour)
	if _, err := svc.Update(ctx, "u1", e.ID, Patch{EndTime: &before}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.updates != 0 || !repo.byID[e.ID].EndTime.Equal(start.Add(time.Hour)) {
		t.Fatalf("expected stored event unchanged")
	}
}

func TestUpdate_SwitchToAllDayNormalizes(t *testing.T) {
	svc, _ := newTestService()
	start := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)
	e := mustCreate(t, svc, "u1", timed("x", start, time.Hour))

	yes := true
	updated, err := svc.Update(context.Background(), "u1", e.ID, Patch{AllDay: &yes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.StartTime.Hour() != 0 || updated.EndTime.Hour() != 23 || updated.EndTime.Nanosecond() != int(999*time.Millisecond) {
		t.Fatalf("expected normalized all-day bounds, got %s - %s", updated.StartTime, updated.EndTime)
	}
}

func TestDelete_Checks(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	start := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)
	e := mustCreate(t, svc, "owner", timed("x", start, time.Hour))

	if err := svc.Delete(ctx, "intruder", e.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, ok := repo.byID[e.ID]; !ok {
		t.Fatalf("expected event to survive unauthorized delete")
	}
	if err := svc.Delete(ctx, "owner", e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, "owner", e.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestQueryRange_OwnerScopedAndSorted(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	loc := time.UTC

	mustCreate(t, svc, "u1", timed("late", time.Date(2024, 2, 29, 23, 59, 59, int(999*time.Millisecond), loc), 0))
	mustCreate(t, svc, "u1", timed("early", time.Date(2024, 2, 1, 0, 0, 0, 0, loc), time.Hour))
	mustCreate(t, svc, "u1", timed("march", time.Date(2024, 3, 1, 0, 0, 0, 0, loc), time.Hour))
	mustCreate(t, svc, "u1", timed("jan", time.Date(2024, 1, 31, 23, 0, 0, 0, loc), 2*time.Hour))
	mustCreate(t, svc, "u2", timed("other", time.Date(2024, 2, 10, 9, 0, 0, 0, loc), time.Hour))

	items, w, err := svc.QueryPeriod(ctx, "u1", timerange.GranularityMonth, time.Date(2024, 2, 14, 0, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if !w.Start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected window %s", w)
	}
	if len(items) != 2 || items[0].Title != "early" || items[1].Title != "late" {
		t.Fatalf("unexpected items %+v", items)
	}

	if _, err := svc.QueryRange(ctx, "", w); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	bad := timerange.Window{Start: w.End, End: w.Start}
	if _, err := svc.QueryRange(ctx, "u1", bad); !errors.Is(err, timerange.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestMutations_NotifyPublisher(t *testing.T) {
	svc, _ := newTestService()
	pub := &countingPublisher{}
	svc.SetPublisher(pub)
	ctx := context.Background()
	start := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)

	e := mustCreate(t, svc, "u1", timed("x", start, time.Hour))
	title := "y"
	if _, err := svc.Update(ctx, "u1", e.ID, Patch{Title: &title}); err != nil {
		t.Fatalf("update: %v", err)
	}
	// fallida: no notifica
	_, _ = svc.Update(ctx, "u2", e.ID, Patch{Title: &title})
	if err := svc.Delete(ctx, "u1", e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if pub.byOwner["u1"] != 3 || pub.byOwner["u2"] != 0 {
		t.Fatalf("unexpected notifications %v", pub.byOwner)
	}
}
