package advisor

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"matchadvisor/internal/oddsapi"
	"matchadvisor/internal/pkg/metrics"
	"matchadvisor/internal/pkg/models"
)

// OddsSource is the odds-provider contract the locator depends on.
type OddsSource interface {
	ListEvents(ctx context.Context, sportKey string) ([]oddsapi.Event, error)
}

// leaguePartitions is the fixed search order across the odds provider's
// sport/league feeds.
var leaguePartitions = []string{
	"soccer_epl",
	"soccer_spain_la_liga",
	"soccer_germany_bundesliga",
	"soccer_italy_serie_a",
	"soccer_france_ligue_one",
	"soccer_uefa_champs_league",
}

const defaultTotalsLine = 2.5

// Locator finds the odds-provider event matching a resolved fixture.
type Locator struct {
	provider OddsSource
}

func NewLocator(provider OddsSource) *Locator {
	return &Locator{provider: provider}
}

// Locate scans the league partitions in order and returns prices for the
// first event whose names match either team, or nil when every partition is
// exhausted. A partition fetch failure is logged and the scan continues.
func (l *Locator) Locate(ctx context.Context, homeTeam, awayTeam string) *models.OddsQuote {
	for _, partition := range leaguePartitions {
		events, err := l.provider.ListEvents(ctx, partition)
		if err != nil {
			metrics.ProviderErrorsTotal.WithLabelValues("odds_api").Inc()
			slog.Warn("Odds partition fetch failed, trying next", "partition", partition, "error", err)
			continue
		}
		for _, ev := range events {
			if teamMatches(homeTeam, ev.HomeTeam) || teamMatches(awayTeam, ev.AwayTeam) {
				return extractQuote(ev)
			}
		}
	}
	return nil
}

// teamMatches reports whether any of the first two whitespace tokens of the
// caller's team name occurs inside the provider's name. Deliberately lax:
// one partial hit on one side is enough for the caller to accept the event.
func teamMatches(callerName, providerName string) bool {
	provider := strings.ToLower(providerName)
	tokens := strings.Fields(strings.ToLower(callerName))
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}
	for _, t := range tokens {
		if strings.Contains(provider, t) {
			return true
		}
	}
	return false
}

// extractQuote pulls prices from the first-listed bookmaker only.
func extractQuote(ev oddsapi.Event) *models.OddsQuote {
	if len(ev.Bookmakers) == 0 {
		return nil
	}
	bk := ev.Bookmakers[0]

	quote := &models.OddsQuote{
		Bookmaker: bk.Title,
		H2H:       make(map[string]float64),
		Totals:    make(map[string]float64),
	}
	for _, market := range bk.Markets {
		switch market.Key {
		case "h2h":
			for _, o := range market.Outcomes {
				switch o.Name {
				case ev.HomeTeam:
					quote.H2H[models.OutcomeHomeWin] = o.Price
				case ev.AwayTeam:
					quote.H2H[models.OutcomeAwayWin] = o.Price
				case "Draw":
					quote.H2H[models.OutcomeDraw] = o.Price
				}
			}
		case "totals":
			for _, o := range market.Outcomes {
				line := defaultTotalsLine
				if o.Point != nil {
					line = *o.Point
				}
				key := strings.ToLower(o.Name) + "_" + strconv.FormatFloat(line, 'f', -1, 64)
				quote.Totals[key] = o.Price
			}
		}
	}
	if len(quote.H2H) == 0 && len(quote.Totals) == 0 {
		return nil
	}
	return quote
}
