package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"matchadvisor/internal/pkg/metrics"
	"matchadvisor/internal/pkg/models"
)

// Generator is the text-generation service contract. It may be unconfigured;
// the analyzer then answers with a fixed degraded message instead of calling.
type Generator interface {
	Configured() bool
	Generate(ctx context.Context, prompt string, maxOutputTokens int) (string, error)
}

const (
	analysisMaxTokens      = 1024
	recommendMaxTokens     = 768
	recommendCandidateCap  = 8
	notAvailable           = "not available"
	serviceUnavailableText = "⚠️ AI analysis is currently unavailable (analysis service is not configured or not responding). Odds and fixtures still work — try /matches."
)

// Analyzer turns an aggregated context into a prompt and asks the
// text-generation service for a verdict.
type Analyzer struct {
	gen Generator
}

func NewAnalyzer(gen Generator) *Analyzer {
	return &Analyzer{gen: gen}
}

// AnalyzeMatch produces the match analysis text, degrading to a fixed
// service-unavailable message on any generation failure. Never fails.
func (a *Analyzer) AnalyzeMatch(ctx context.Context, actx models.AnalysisContext) string {
	return a.generate(ctx, BuildAnalysisPrompt(actx), analysisMaxTokens)
}

// RecommendBets produces a short ranked recommendation over a small
// candidate list, with the same degradation discipline.
func (a *Analyzer) RecommendBets(ctx context.Context, fixtures []models.Fixture) string {
	return a.generate(ctx, BuildRecommendationPrompt(fixtures), recommendMaxTokens)
}

func (a *Analyzer) generate(ctx context.Context, prompt string, maxTokens int) string {
	if !a.gen.Configured() {
		metrics.GenerationsTotal.WithLabelValues("unconfigured").Inc()
		return serviceUnavailableText
	}
	text, err := a.gen.Generate(ctx, prompt, maxTokens)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues("error").Inc()
		metrics.ProviderErrorsTotal.WithLabelValues("gemini").Inc()
		slog.Warn("Text generation failed, answering with degraded message", "error", err)
		return serviceUnavailableText
	}
	metrics.GenerationsTotal.WithLabelValues("ok").Inc()
	return text
}

// BuildAnalysisPrompt assembles the structured analysis request. Every
// context piece besides the fixture is optional: absent odds get an explicit
// unavailable marker, the head-to-head block appears only when there is
// history, the form block when either side has form.
func BuildAnalysisPrompt(actx models.AnalysisContext) string {
	f := actx.Fixture

	var b strings.Builder
	b.WriteString("You are a football betting analyst. Analyze the upcoming match.\n\n")
	fmt.Fprintf(&b, "Competition: %s\n", f.Competition)
	fmt.Fprintf(&b, "Kickoff: %s\n", f.KickoffUTC.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "Home: %s\nAway: %s\n", f.HomeTeam.Name, f.AwayTeam.Name)

	b.WriteString("\nBookmaker odds:\n")
	b.WriteString(formatOdds(actx.Odds))

	if actx.HeadToHead != nil && actx.HeadToHead.Matches > 0 {
		h := actx.HeadToHead
		fmt.Fprintf(&b, "\nHead-to-head (last %d meetings): %s %d wins, %d draws, %s %d wins\n",
			h.Matches, f.HomeTeam.Name, h.HomeWins, h.Draws, f.AwayTeam.Name, h.AwayWins)
	}

	if actx.HomeForm != nil || actx.AwayForm != nil {
		b.WriteString("\nRecent form (most recent first):\n")
		fmt.Fprintf(&b, "%s: %s\n", f.HomeTeam.Name, formatForm(actx.HomeForm))
		fmt.Fprintf(&b, "%s: %s\n", f.AwayTeam.Name, formatForm(actx.AwayForm))
	}

	b.WriteString(`
Respond with exactly this structure:
1. Probabilities: home win / draw / away win, in percent.
2. Prediction: the most likely outcome with a confidence qualifier (low/medium/high).
3. Totals: over or under 2.5 goals.
4. Rationale: 2-3 short sentences.
5. Risk: one sentence on what could invalidate the prediction.
Keep it short and in plain text, no markdown tables.`)

	return b.String()
}

// BuildRecommendationPrompt assembles the shorter multi-match request:
// rank and justify 2-3 picks from a small candidate list.
func BuildRecommendationPrompt(fixtures []models.Fixture) string {
	if len(fixtures) > recommendCandidateCap {
		fixtures = fixtures[:recommendCandidateCap]
	}

	var b strings.Builder
	b.WriteString("You are a football betting analyst. From the upcoming matches below, pick the 2-3 most promising bets.\n\n")
	for i, f := range fixtures {
		fmt.Fprintf(&b, "%d. %s (%s, %s)\n", i+1, f.Name(), f.Competition, f.KickoffUTC.Format("2006-01-02 15:04 UTC"))
	}
	b.WriteString(`
For each pick give: the match, the suggested outcome, and a one-sentence
justification. Rank by confidence. Finish with a one-line risk reminder.
Plain text only.`)

	return b.String()
}

// formatOdds renders the quote block, or an explicit unavailable marker so
// the model never guesses at missing prices.
func formatOdds(q *models.OddsQuote) string {
	if q == nil || (len(q.H2H) == 0 && len(q.Totals) == 0) {
		return "odds unavailable\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "source: %s\n", q.Bookmaker)
	for _, label := range []string{models.OutcomeHomeWin, models.OutcomeDraw, models.OutcomeAwayWin} {
		if price, ok := q.H2H[label]; ok {
			fmt.Fprintf(&b, "%s: %.2f\n", label, price)
		}
	}
	// Totals keys are dynamic (over_2.5, under_3 ...); sort for stable output.
	keys := make([]string, 0, len(q.Totals))
	for k := range q.Totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %.2f\n", k, q.Totals[k])
	}
	return b.String()
}

func formatForm(rec *models.FormRecord) string {
	if rec == nil || len(rec.Symbols) == 0 {
		return notAvailable
	}
	return rec.String()
}
