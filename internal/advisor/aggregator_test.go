package advisor

import (
	"context"
	"fmt"
	"testing"
	"time"

	"matchadvisor/internal/pkg/models"
)

// stubFixtureSource is a canned FixtureSource for aggregator tests.
type stubFixtureSource struct {
	window    []models.Fixture
	h2h       *models.HeadToHead
	recent    map[int64][]models.Fixture
	windowErr error
	h2hErr    error
	recentErr error
}

func (s *stubFixtureSource) FixturesWindow(_ context.Context, _, _ time.Time, _ string) ([]models.Fixture, error) {
	return s.window, s.windowErr
}

func (s *stubFixtureSource) HeadToHead(_ context.Context, _ int64, _ int) (*models.HeadToHead, error) {
	return s.h2h, s.h2hErr
}

func (s *stubFixtureSource) RecentFixtures(_ context.Context, teamID int64, _ int) ([]models.Fixture, error) {
	return s.recent[teamID], s.recentErr
}

func finished(homeID, awayID int64, home, away int) models.Fixture {
	return models.Fixture{
		HomeTeam: models.Team{ID: homeID, Name: fmt.Sprintf("Team %d", homeID)},
		AwayTeam: models.Team{ID: awayID, Name: fmt.Sprintf("Team %d", awayID)},
		FullTime: &models.Score{Home: home, Away: away},
	}
}

func TestRecentForm(t *testing.T) {
	team := models.Team{ID: 7, Name: "Arsenal FC"}
	// Newest first: won 3, drew 1, lost 1.
	recent := []models.Fixture{
		finished(7, 2, 2, 0),
		finished(3, 7, 0, 1),
		finished(7, 4, 3, 1),
		finished(7, 5, 1, 1),
		finished(6, 7, 2, 0),
	}

	rec := RecentForm(team, recent)
	if rec == nil {
		t.Fatal("RecentForm() = nil, want a record")
	}
	if got, want := rec.String(), "W W W D L"; got != want {
		t.Errorf("RecentForm() = %q, want %q", got, want)
	}
}

func TestRecentForm_EdgeCases(t *testing.T) {
	team := models.Team{ID: 7, Name: "Arsenal FC"}

	if rec := RecentForm(team, nil); rec != nil {
		t.Errorf("RecentForm(no fixtures) = %v, want nil", rec)
	}

	// Unfinished fixtures are skipped entirely.
	unfinished := models.Fixture{
		HomeTeam: models.Team{ID: 7},
		AwayTeam: models.Team{ID: 9},
	}
	if rec := RecentForm(team, []models.Fixture{unfinished}); rec != nil {
		t.Errorf("RecentForm(only unfinished) = %v, want nil", rec)
	}

	// Fixtures of another team are skipped.
	if rec := RecentForm(team, []models.Fixture{finished(1, 2, 1, 0)}); rec != nil {
		t.Errorf("RecentForm(wrong team) = %v, want nil", rec)
	}

	// Cap at 5 even when more finished fixtures come back.
	many := make([]models.Fixture, 0, 8)
	for i := 0; i < 8; i++ {
		many = append(many, finished(7, int64(20+i), 1, 0))
	}
	rec := RecentForm(team, many)
	if rec == nil || len(rec.Symbols) != 5 {
		t.Errorf("RecentForm(8 fixtures) length = %v, want 5", rec)
	}
}

func TestAggregator_Gather(t *testing.T) {
	f := fixture(1, "Arsenal FC", "Chelsea FC")
	src := &stubFixtureSource{
		h2h: &models.HeadToHead{Matches: 10, HomeWins: 4, Draws: 3, AwayWins: 3},
		recent: map[int64][]models.Fixture{
			f.HomeTeam.ID: {finished(f.HomeTeam.ID, 99, 2, 1)},
			f.AwayTeam.ID: {finished(98, f.AwayTeam.ID, 0, 0)},
		},
	}

	actx := NewAggregator(src).Gather(context.Background(), f)

	if actx.HeadToHead == nil || actx.HeadToHead.Matches != 10 {
		t.Errorf("Gather() head-to-head = %v, want 10 matches", actx.HeadToHead)
	}
	if actx.HomeForm == nil || actx.HomeForm.String() != "W" {
		t.Errorf("Gather() home form = %v, want W", actx.HomeForm)
	}
	if actx.AwayForm == nil || actx.AwayForm.String() != "D" {
		t.Errorf("Gather() away form = %v, want D", actx.AwayForm)
	}
}

func TestAggregator_Gather_ToleratesFailures(t *testing.T) {
	f := fixture(1, "Arsenal FC", "Chelsea FC")
	src := &stubFixtureSource{
		h2hErr:    fmt.Errorf("boom"),
		recentErr: fmt.Errorf("boom"),
	}

	actx := NewAggregator(src).Gather(context.Background(), f)

	if actx.HeadToHead != nil || actx.HomeForm != nil || actx.AwayForm != nil {
		t.Errorf("Gather() with failing provider = %+v, want all context absent", actx)
	}
	if actx.Fixture.ID != f.ID {
		t.Errorf("Gather() fixture = %d, want %d", actx.Fixture.ID, f.ID)
	}
}
