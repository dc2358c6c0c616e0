package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"matchadvisor/internal/pkg/metrics"
	"matchadvisor/internal/pkg/models"
)

const (
	fixtureWindowDays = 7
	listingCap        = 30
)

// Advisor is the per-message pipeline: classify the utterance, resolve a
// fixture when one is asked about, gather context and answer. Stateless
// across messages; every call builds its data fresh.
type Advisor struct {
	fixtures   FixtureSource
	aggregator *Aggregator
	locator    *Locator
	analyzer   *Analyzer
}

func New(fixtures FixtureSource, odds OddsSource, gen Generator) *Advisor {
	return &Advisor{
		fixtures:   fixtures,
		aggregator: NewAggregator(fixtures),
		locator:    NewLocator(odds),
		analyzer:   NewAnalyzer(gen),
	}
}

// HandleMessage turns one raw user message into display-ready plain text.
// Never returns an error: every failure mode degrades to a valid reply.
func (a *Advisor) HandleMessage(ctx context.Context, text string) string {
	logger := slog.With("request_id", uuid.NewString())

	intent := ClassifyIntent(text)
	metrics.MessagesTotal.WithLabelValues(string(intent)).Inc()
	logger.Info("Handling message", "intent", intent)

	switch intent {
	case models.IntentListMatches:
		return a.listMatches(ctx, logger)
	case models.IntentRecommend:
		return a.recommend(ctx, logger)
	default: // analysis, team_search
		return a.analyzeQuery(ctx, logger, text)
	}
}

// upcomingFixtures fetches the rolling 7-day window. Provider failure is
// logged and mapped to an empty list; callers present a degraded reply.
func (a *Advisor) upcomingFixtures(ctx context.Context, logger *slog.Logger) []models.Fixture {
	now := time.Now().UTC()
	fixtures, err := a.fixtures.FixturesWindow(ctx, now, now.AddDate(0, 0, fixtureWindowDays), "")
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("football_data").Inc()
		logger.Warn("Fixture window fetch failed, continuing with empty list", "error", err)
		return nil
	}
	return fixtures
}

func (a *Advisor) listMatches(ctx context.Context, logger *slog.Logger) string {
	fixtures := a.upcomingFixtures(ctx, logger)
	if len(fixtures) == 0 {
		return "No upcoming matches found for the next 7 days."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Upcoming matches (next %d days):\n\n", fixtureWindowDays)
	for i, f := range fixtures {
		if i >= listingCap {
			fmt.Fprintf(&b, "... and %d more\n", len(fixtures)-listingCap)
			break
		}
		fmt.Fprintf(&b, "%s | %s | %s\n", f.KickoffUTC.Format("02.01 15:04"), f.Competition, f.Name())
	}
	return b.String()
}

func (a *Advisor) recommend(ctx context.Context, logger *slog.Logger) string {
	fixtures := a.upcomingFixtures(ctx, logger)
	if len(fixtures) == 0 {
		return "No upcoming matches to recommend right now. Try again later."
	}
	return a.analyzer.RecommendBets(ctx, fixtures)
}

func (a *Advisor) analyzeQuery(ctx context.Context, logger *slog.Logger, text string) string {
	fixtures := a.upcomingFixtures(ctx, logger)

	fixture, ok := ResolveFixture(text, fixtures)
	if !ok {
		metrics.ResolutionsTotal.WithLabelValues("no_match").Inc()
		logger.Info("No fixture matched the query")
		return "I couldn't find that match in the next 7 days. " +
			"Try team names like \"Arsenal Chelsea\" (or in Russian: \"арсенал челси\"), or ask for the match list."
	}
	metrics.ResolutionsTotal.WithLabelValues("matched").Inc()
	logger.Info("Resolved fixture", "fixture_id", fixture.ID, "name", fixture.Name())

	// Context gathering and the odds search are independent; run them in
	// parallel, each degrading on its own.
	var (
		wg   sync.WaitGroup
		actx models.AnalysisContext
		odds *models.OddsQuote
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		actx = a.aggregator.Gather(ctx, fixture)
	}()
	go func() {
		defer wg.Done()
		odds = a.locator.Locate(ctx, fixture.HomeTeam.Name, fixture.AwayTeam.Name)
	}()
	wg.Wait()
	actx.Odds = odds

	return a.analyzer.AnalyzeMatch(ctx, actx)
}
