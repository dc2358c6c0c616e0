package advisor

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"matchadvisor/internal/pkg/models"
)

func newTestAdvisor(src *stubFixtureSource, odds *stubOddsSource, gen *stubGenerator) *Advisor {
	return New(src, odds, gen)
}

func TestAdvisor_ListMatches(t *testing.T) {
	src := &stubFixtureSource{window: []models.Fixture{
		fixture(1, "Arsenal FC", "Chelsea FC"),
		fixture(2, "Liverpool FC", "Everton FC"),
	}}
	adv := newTestAdvisor(src, &stubOddsSource{}, &stubGenerator{})

	got := adv.HandleMessage(context.Background(), "какие матчи на этой неделе")
	for _, want := range []string{"Arsenal FC - Chelsea FC", "Liverpool FC - Everton FC"} {
		if !strings.Contains(got, want) {
			t.Errorf("HandleMessage(list) = %q, want it to contain %q", got, want)
		}
	}
}

func TestAdvisor_ListMatches_EmptyWindow(t *testing.T) {
	adv := newTestAdvisor(&stubFixtureSource{}, &stubOddsSource{}, &stubGenerator{})

	got := adv.HandleMessage(context.Background(), "list matches")
	if !strings.Contains(got, "No upcoming matches") {
		t.Errorf("HandleMessage(list, empty) = %q, want a no-matches line", got)
	}
}

func TestAdvisor_ProviderOutageDegrades(t *testing.T) {
	src := &stubFixtureSource{windowErr: fmt.Errorf("503 from provider")}
	adv := newTestAdvisor(src, &stubOddsSource{}, &stubGenerator{})

	// A provider outage must never surface as an error, only as a degraded
	// but valid reply.
	got := adv.HandleMessage(context.Background(), "list matches")
	if !strings.Contains(got, "No upcoming matches") {
		t.Errorf("HandleMessage(list, outage) = %q, want the degraded listing", got)
	}
}

func TestAdvisor_AnalysisFlow(t *testing.T) {
	src := &stubFixtureSource{window: []models.Fixture{
		fixture(1, "Arsenal FC", "Chelsea FC"),
	}}
	gen := &stubGenerator{configured: true}
	adv := newTestAdvisor(src, &stubOddsSource{}, gen)

	adv.HandleMessage(context.Background(), "кто победит арсенал челси")
	if !strings.Contains(gen.lastPrompt, "Arsenal FC") || !strings.Contains(gen.lastPrompt, "Chelsea FC") {
		t.Errorf("analysis prompt missing resolved teams:\n%s", gen.lastPrompt)
	}
	// Odds sources empty -> the prompt must say so instead of omitting odds.
	if !strings.Contains(gen.lastPrompt, "odds unavailable") {
		t.Errorf("analysis prompt missing the odds-unavailable marker:\n%s", gen.lastPrompt)
	}
}

func TestAdvisor_UnresolvedQueryAsksToClarify(t *testing.T) {
	src := &stubFixtureSource{window: unrelatedFixtures(3)}
	adv := newTestAdvisor(src, &stubOddsSource{}, &stubGenerator{configured: true})

	got := adv.HandleMessage(context.Background(), "кто победит реал барселона")
	if !strings.Contains(got, "couldn't find") {
		t.Errorf("HandleMessage(unresolved) = %q, want a clarification reply", got)
	}
}

func TestAdvisor_TeamSearchFallbackAnalyzes(t *testing.T) {
	src := &stubFixtureSource{window: []models.Fixture{
		fixture(1, "Arsenal FC", "Chelsea FC"),
	}}
	gen := &stubGenerator{configured: true}
	adv := newTestAdvisor(src, &stubOddsSource{}, gen)

	// Bare team names match no intent pattern and fall back to team_search,
	// which routes through the same resolve-and-analyze flow.
	got := adv.HandleMessage(context.Background(), "арсенал челси")
	if !strings.Contains(gen.lastPrompt, "Arsenal FC") {
		t.Errorf("team_search prompt missing resolved team:\n%s", gen.lastPrompt)
	}
	if got == "" {
		t.Error("HandleMessage(team_search) returned an empty reply")
	}
}
