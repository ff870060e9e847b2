package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
	"github.com/moodtune-labs/moodtune/internal/core/ports"
)

func newAnalysis(userID, text string) domain.NewAnalysis {
	return domain.NewAnalysis{
		UserID:    userID,
		InputText: text,
		InputType: domain.InputTypeText,
		Classification: domain.ClassificationResult{
			Emotion:    domain.EmotionHappy,
			Confidence: 0.85,
			Intensity:  domain.IntensityHigh,
		},
		Tracks: []domain.TrackRecommendation{{TrackID: "t1", TrackName: "Song", Artist: "Artist"}},
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	created, err := store.Create(ctx, newAnalysis("user-1", "so happy"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.CreatedAt.IsZero() || created.CreatedAt.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp, got %v", created.CreatedAt)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.InputText != "so happy" || got.Emotion != domain.EmotionHappy {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.Tracks) != 1 || got.Tracks[0].TrackID != "t1" {
		t.Fatalf("tracks mismatch: %+v", got.Tracks)
	}
}

func TestStore_GetByIDNotFound(t *testing.T) {
	store := NewStore()
	_, err := store.GetByID(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	store := NewStore()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := base
	store.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	ctx := context.Background()

	a, _ := store.Create(ctx, newAnalysis("", "first"))
	b, _ := store.Create(ctx, newAnalysis("", "second"))
	c, _ := store.Create(ctx, newAnalysis("", "third"))

	got, err := store.List(ctx, ports.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, want := range []string{c.ID, b.ID, a.ID} {
		if got[i].ID != want {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestStore_ListSameInstantKeepsReverseInsertionOrder(t *testing.T) {
	store := NewStore()
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	ctx := context.Background()

	a, _ := store.Create(ctx, newAnalysis("", "first"))
	b, _ := store.Create(ctx, newAnalysis("", "second"))

	got, err := store.List(ctx, ports.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got[0].ID != b.ID || got[1].ID != a.ID {
		t.Fatalf("expected [%s %s], got [%s %s]", b.ID, a.ID, got[0].ID, got[1].ID)
	}
}

func TestStore_ListFiltersByUser(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	store.Create(ctx, newAnalysis("alice", "one"))
	store.Create(ctx, newAnalysis("bob", "two"))
	store.Create(ctx, newAnalysis("alice", "three"))

	got, err := store.List(ctx, ports.ListFilter{UserID: "alice"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records for alice, got %d", len(got))
	}
	for _, record := range got {
		if record.UserID != "alice" {
			t.Fatalf("leaked record for %s", record.UserID)
		}
	}
}

func TestStore_ConcurrentCreates(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record, err := store.Create(ctx, newAnalysis("", "concurrent"))
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			ids <- record.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d distinct records, got %d", n, len(seen))
	}
}

func TestStore_ReturnedTracksDoNotAliasStorage(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	created, _ := store.Create(ctx, newAnalysis("", "alias check"))
	created.Tracks[0].TrackName = "mutated"

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Tracks[0].TrackName != "Song" {
		t.Fatal("stored track was mutated through a returned slice")
	}
}
