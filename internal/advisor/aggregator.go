package advisor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"matchadvisor/internal/pkg/metrics"
	"matchadvisor/internal/pkg/models"
)

const (
	headToHeadLimit = 10
	formLimit       = 5
)

// FixtureSource is the fixture-data provider contract the advisor depends on.
type FixtureSource interface {
	FixturesWindow(ctx context.Context, dateFrom, dateTo time.Time, competition string) ([]models.Fixture, error)
	HeadToHead(ctx context.Context, fixtureID int64, limit int) (*models.HeadToHead, error)
	RecentFixtures(ctx context.Context, teamID int64, limit int) ([]models.Fixture, error)
}

// Aggregator gathers supplementary context for a resolved fixture.
type Aggregator struct {
	provider FixtureSource
}

func NewAggregator(provider FixtureSource) *Aggregator {
	return &Aggregator{provider: provider}
}

// Gather fetches head-to-head history and both teams' recent form. The three
// sub-fetches run concurrently and are independently fault-tolerant: a failed
// fetch yields an absent piece of context, never an error.
func (a *Aggregator) Gather(ctx context.Context, fixture models.Fixture) models.AnalysisContext {
	actx := models.AnalysisContext{Fixture: fixture}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		h2h, err := a.provider.HeadToHead(ctx, fixture.ID, headToHeadLimit)
		if err != nil {
			metrics.ProviderErrorsTotal.WithLabelValues("football_data").Inc()
			slog.Warn("Head-to-head fetch failed, continuing without it", "fixture_id", fixture.ID, "error", err)
			return
		}
		actx.HeadToHead = h2h
	}()

	go func() {
		defer wg.Done()
		actx.HomeForm = a.teamForm(ctx, fixture.HomeTeam)
	}()

	go func() {
		defer wg.Done()
		actx.AwayForm = a.teamForm(ctx, fixture.AwayTeam)
	}()

	wg.Wait()
	return actx
}

func (a *Aggregator) teamForm(ctx context.Context, team models.Team) *models.FormRecord {
	recent, err := a.provider.RecentFixtures(ctx, team.ID, formLimit)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("football_data").Inc()
		slog.Warn("Recent fixtures fetch failed, continuing without form", "team_id", team.ID, "error", err)
		return nil
	}
	return RecentForm(team, recent)
}

// RecentForm derives a team's win/draw/loss sequence from its recent
// fixtures (provider order, newest first). Fixtures without a final score
// are skipped; the sequence is capped at 5. Returns nil when no usable
// fixture exists.
func RecentForm(team models.Team, recent []models.Fixture) *models.FormRecord {
	record := &models.FormRecord{TeamName: team.Name}
	for _, f := range recent {
		if len(record.Symbols) >= formLimit {
			break
		}
		if f.FullTime == nil {
			continue
		}

		var own, opp int
		switch team.ID {
		case f.HomeTeam.ID:
			own, opp = f.FullTime.Home, f.FullTime.Away
		case f.AwayTeam.ID:
			own, opp = f.FullTime.Away, f.FullTime.Home
		default:
			continue
		}

		switch {
		case own > opp:
			record.Symbols = append(record.Symbols, models.FormWin)
		case own == opp:
			record.Symbols = append(record.Symbols, models.FormDraw)
		default:
			record.Symbols = append(record.Symbols, models.FormLoss)
		}
	}
	if len(record.Symbols) == 0 {
		return nil
	}
	return record
}
