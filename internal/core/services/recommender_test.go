package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/moodtune-labs/moodtune/internal/core/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Mocks ---

type searchCall struct {
	query  string
	market string
	limit  int
}

type mockCatalog struct {
	// tracksByQuery serves canned results per query; queries not listed
	// return the default tracks slice.
	tracksByQuery map[string][]domain.TrackRecommendation
	tracks        []domain.TrackRecommendation
	err           error

	calls []searchCall
}

func (m *mockCatalog) SearchTracks(ctx context.Context, query, market string, limit int) ([]domain.TrackRecommendation, error) {
	m.calls = append(m.calls, searchCall{query: query, market: market, limit: limit})
	if m.err != nil {
		return nil, m.err
	}
	if tracks, ok := m.tracksByQuery[query]; ok {
		return tracks, nil
	}
	return m.tracks, nil
}

func track(id string) domain.TrackRecommendation {
	return domain.TrackRecommendation{
		TrackID:     id,
		TrackName:   "Track " + id,
		Artist:      "Artist " + id,
		ExternalURL: "https://open.spotify.com/track/" + id,
	}
}

func TestRecommender_DedupAndCap(t *testing.T) {
	// Every query returns the same overlapping batch; the merge must dedup
	// by track id and stop at five.
	catalog := &mockCatalog{
		tracks: []domain.TrackRecommendation{
			track("a"), track("b"), track("c"), track("a"), track("d"), track("e"), track("f"),
		},
	}
	r := NewRecommender(catalog, testLogger())

	got := r.Recommend(context.Background(), domain.EmotionHappy, "")

	if len(got) != 5 {
		t.Fatalf("expected 5 tracks, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, tr := range got {
		if seen[tr.TrackID] {
			t.Fatalf("duplicate track id %s in result", tr.TrackID)
		}
		seen[tr.TrackID] = true
	}
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		if got[i].TrackID != id {
			t.Fatalf("position %d: got %s, want %s", i, got[i].TrackID, id)
		}
	}
}

func TestRecommender_CatalogErrorUsesStaticCatalog(t *testing.T) {
	catalog := &mockCatalog{err: errors.New("search failed")}
	r := NewRecommender(catalog, testLogger())

	got := r.Recommend(context.Background(), domain.EmotionSad, "")

	want := FallbackTracks(domain.EmotionSad)
	if len(got) != len(want) {
		t.Fatalf("expected %d fallback tracks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("track %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRecommender_EmptyMergeUsesStaticCatalog(t *testing.T) {
	catalog := &mockCatalog{}
	r := NewRecommender(catalog, testLogger())

	got := r.Recommend(context.Background(), domain.EmotionAngry, "")

	if len(got) != 2 || got[0].TrackName != "In the End" {
		t.Fatalf("expected angry fallback list, got %+v", got)
	}
}

func TestRecommender_NilCatalogUsesStaticCatalog(t *testing.T) {
	r := NewRecommender(nil, testLogger())

	got := r.Recommend(context.Background(), domain.EmotionCalm, "")

	if len(got) != 2 || got[0].TrackName != "River" {
		t.Fatalf("expected calm fallback list, got %+v", got)
	}
}

func TestRecommender_QueryPlan(t *testing.T) {
	tests := []struct {
		name        string
		language    string
		wantQueries []string
		wantMarket  string
	}{
		{
			name:     "no language hint runs the three fixed queries",
			language: "",
			wantQueries: []string{
				"happy upbeat feel good",
				"joyful celebration dance",
				"positive energy motivation",
			},
			wantMarket: "US",
		},
		{
			name:     "german hint adds locale queries and switches market",
			language: "de",
			wantQueries: []string{
				"happy upbeat feel good",
				"joyful celebration dance",
				"positive energy motivation",
				"german fröhlich musik",
				"deutsche fröhlich songs",
				"german pop fröhlich",
			},
			wantMarket: "DE",
		},
		{
			name:     "persian hint targets the iranian market",
			language: "fa",
			wantQueries: []string{
				"happy upbeat feel good",
				"joyful celebration dance",
				"positive energy motivation",
				"persian شاد traditional",
				"iranian شاد classical",
				"farsi pop شاد",
			},
			wantMarket: "IR",
		},
		{
			name:     "english hint adds anglophone locale queries",
			language: "en",
			wantQueries: []string{
				"happy upbeat feel good",
				"joyful celebration dance",
				"positive energy motivation",
				"english happy popular",
				"american happy hits",
				"british happy indie",
			},
			wantMarket: "US",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			catalog := &mockCatalog{tracks: []domain.TrackRecommendation{track("x")}}
			r := NewRecommender(catalog, testLogger())

			r.Recommend(context.Background(), domain.EmotionHappy, tc.language)

			if len(catalog.calls) != len(tc.wantQueries) {
				t.Fatalf("expected %d searches, got %d", len(tc.wantQueries), len(catalog.calls))
			}
			for i, call := range catalog.calls {
				if call.query != tc.wantQueries[i] {
					t.Errorf("query %d: got %q, want %q", i, call.query, tc.wantQueries[i])
				}
				if call.market != tc.wantMarket {
					t.Errorf("query %d: market got %q, want %q", i, call.market, tc.wantMarket)
				}
				if call.limit != perQueryLimit {
					t.Errorf("query %d: limit got %d, want %d", i, call.limit, perQueryLimit)
				}
			}
		})
	}
}

func TestRecommender_StopsOnceEnoughUniqueTracks(t *testing.T) {
	// The first two queries already yield ten unique tracks, so the rest of
	// the plan is skipped.
	byQuery := map[string][]domain.TrackRecommendation{}
	queries := searchQueries(domain.EmotionExcited, "en")
	for i, q := range queries[:2] {
		var batch []domain.TrackRecommendation
		for j := 0; j < 5; j++ {
			batch = append(batch, track(fmt.Sprintf("q%d-%d", i, j)))
		}
		byQuery[q] = batch
	}
	catalog := &mockCatalog{tracksByQuery: byQuery}
	r := NewRecommender(catalog, testLogger())

	got := r.Recommend(context.Background(), domain.EmotionExcited, "en")

	if len(got) != 5 {
		t.Fatalf("expected 5 tracks, got %d", len(got))
	}
	if len(catalog.calls) != 2 {
		t.Fatalf("expected 2 searches before hitting the accumulation cap, got %d", len(catalog.calls))
	}
}
