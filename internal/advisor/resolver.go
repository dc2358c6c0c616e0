package advisor

import (
	"strings"

	"matchadvisor/internal/pkg/models"
)

// minResolveScore is the acceptance threshold: at least one strong or two
// weak signals.
const minResolveScore = 2

// ResolveFixture picks the single best-matching fixture for a free-form
// query, or reports no match. Heuristic substring scoring; ties keep the
// earliest-seen fixture.
func ResolveFixture(query string, fixtures []models.Fixture) (models.Fixture, bool) {
	tokens := SearchTokens(query)
	if len(tokens) == 0 || len(fixtures) == 0 {
		return models.Fixture{}, false
	}

	var best models.Fixture
	bestScore := 0
	for _, f := range fixtures {
		score := scoreFixture(tokens, f)
		if score > bestScore {
			best = f
			bestScore = score
		}
	}
	if bestScore < minResolveScore {
		return models.Fixture{}, false
	}
	return best, true
}

// scoreFixture computes the relevance of one fixture for the query tokens.
// Per token: +2 for a substring hit on the full home name, +2 on the full
// away name, +1 for a hit inside any single word of the home name, +1 for
// the away equivalent. Home and away contributions are independent, so an
// ambiguous token can score on both sides.
func scoreFixture(tokens []string, f models.Fixture) int {
	home := strings.ToLower(f.HomeTeam.Name)
	away := strings.ToLower(f.AwayTeam.Name)
	homeWords := strings.Fields(home)
	awayWords := strings.Fields(away)

	score := 0
	for _, token := range tokens {
		if strings.Contains(home, token) {
			score += 2
		}
		if strings.Contains(away, token) {
			score += 2
		}
		if anyWordContains(homeWords, token) {
			score++
		}
		if anyWordContains(awayWords, token) {
			score++
		}
	}
	return score
}

func anyWordContains(words []string, token string) bool {
	for _, w := range words {
		if strings.Contains(w, token) {
			return true
		}
	}
	return false
}
