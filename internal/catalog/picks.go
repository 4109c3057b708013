package catalog

import "time"

// dailyPickCount is how many featured games the storefront shows per day.
const dailyPickCount = 8

// DateKey formats a time as the YYYY-MM-DD key that scopes the daily picks.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyPicks selects up to eight featured games for the given date key. The
// selection is a seeded shuffle, so every request on the same day sees the
// same picks in the same order, with no stored state. The input slice is
// never modified.
func DailyPicks(games []Game, dateKey string) []Game {
	picks := make([]Game, len(games))
	copy(picks, games)

	seed := 0
	for _, b := range []byte(dateKey) {
		seed += int(b)
	}

	for i := len(picks) - 1; i > 0; i-- {
		j := (seed + i*31) % (i + 1)
		picks[i], picks[j] = picks[j], picks[i]
	}

	if len(picks) > dailyPickCount {
		picks = picks[:dailyPickCount]
	}
	return picks
}
