package catalog

import (
	"reflect"
	"testing"
	"time"
)

func testGames(ids ...string) []Game {
	games := make([]Game, 0, len(ids))
	for _, id := range ids {
		games = append(games, Game{ID: id, Title: "Game " + id})
	}
	return games
}

func pickIDs(games []Game) []string {
	ids := make([]string, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	return ids
}

func TestDailyPicksDeterministic(t *testing.T) {
	games := testGames("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")

	first := DailyPicks(games, "2024-01-01")
	second := DailyPicks(games, "2024-01-01")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same catalog and date key produced different picks:\n%v\n%v",
			pickIDs(first), pickIDs(second))
	}
}

func TestDailyPicksShuffleOrder(t *testing.T) {
	// Seed for "2024-01-01" is 484 (byte sum). Walking i from 3 down to 1
	// with j = (484 + i*31) % (i+1) swaps (3,1) then (2,0): [a b c d]
	// becomes [c d a b].
	games := testGames("a", "b", "c", "d")

	got := pickIDs(DailyPicks(games, "2024-01-01"))
	want := []string{"c", "d", "a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DailyPicks order = %v, want %v", got, want)
	}
}

func TestDailyPicksDoesNotMutateInput(t *testing.T) {
	games := testGames("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	original := make([]Game, len(games))
	copy(original, games)

	DailyPicks(games, "2024-06-15")

	if !reflect.DeepEqual(games, original) {
		t.Errorf("input catalog was mutated: %v", pickIDs(games))
	}
}

func TestDailyPicksShortCatalog(t *testing.T) {
	games := testGames("a", "b", "c")

	picks := DailyPicks(games, "2024-01-01")
	if len(picks) != 3 {
		t.Fatalf("len(picks) = %d, want 3", len(picks))
	}

	// Same games, just permuted.
	seen := make(map[string]bool)
	for _, g := range picks {
		seen[g.ID] = true
	}
	for _, g := range games {
		if !seen[g.ID] {
			t.Errorf("game %q missing from picks", g.ID)
		}
	}
}

func TestDailyPicksTruncatesToEight(t *testing.T) {
	games := testGames("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l")

	picks := DailyPicks(games, "2024-01-01")
	if len(picks) != 8 {
		t.Errorf("len(picks) = %d, want 8", len(picks))
	}
}

func TestDailyPicksEmptyCatalog(t *testing.T) {
	picks := DailyPicks(nil, "2024-01-01")
	if len(picks) != 0 {
		t.Errorf("len(picks) = %d, want 0", len(picks))
	}
}

func TestDateKey(t *testing.T) {
	ts := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("UTC+2", 2*3600))
	if got := DateKey(ts); got != "2024-03-09" {
		t.Errorf("DateKey = %q, want %q", got, "2024-03-09")
	}
}
