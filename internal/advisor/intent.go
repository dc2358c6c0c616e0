package advisor

import (
	"regexp"
	"strings"

	"matchadvisor/internal/pkg/models"
)

// Intent pattern groups, checked in order: recommend > matches > analysis.
// Unanchored search over the lowercased text; first group with any hit wins,
// anything unmatched falls back to team_search.

var recommendPatterns = compilePatterns(
	`посовет`,
	`рекоменд`,
	`что поставить`,
	`на (что|кого) ставить`,
	`стоит ли (по)?ставить`,
	`дай совет`,
	`recommend`,
	`suggest`,
	`what should i bet`,
	`best bets?`,
	`betting tips?`,
)

var matchesPatterns = compilePatterns(
	`какие матчи`,
	`список матчей`,
	`все матчи`,
	`матчи (на )?(сегодня|завтра|неделе)`,
	`ближайшие матчи`,
	`расписание`,
	`(list|show|upcoming|what) matches`,
	`fixtures`,
	`match list`,
	`schedule`,
)

var analysisPatterns = compilePatterns(
	`кто (выиграет|победит)`,
	`проанализируй`,
	`анализ`,
	`прогноз`,
	`шансы`,
	`who (will )?wins?`,
	`analy[sz]e`,
	`analysis`,
	`predict`,
	`chances`,
)

func compilePatterns(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		patterns = append(patterns, regexp.MustCompile(e))
	}
	return patterns
}

// ClassifyIntent assigns exactly one intent to a raw utterance. Total and
// deterministic: no state, always returns a value.
func ClassifyIntent(text string) models.Intent {
	lower := strings.ToLower(text)

	groups := []struct {
		patterns []*regexp.Regexp
		intent   models.Intent
	}{
		{recommendPatterns, models.IntentRecommend},
		{matchesPatterns, models.IntentListMatches},
		{analysisPatterns, models.IntentAnalysis},
	}
	for _, g := range groups {
		for _, p := range g.patterns {
			if p.MatchString(lower) {
				return g.intent
			}
		}
	}
	return models.IntentTeamSearch
}
