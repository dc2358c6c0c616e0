package models

import (
	"strings"
	"time"
)

// Intent classifies the purpose of a user message.
type Intent string

const (
	IntentRecommend   Intent = "recommend"
	IntentListMatches Intent = "list_matches"
	IntentAnalysis    Intent = "analysis"
	IntentTeamSearch  Intent = "team_search"
)

// Team is one side of a fixture as reported by the fixture provider.
type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Score is a final full-time score.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Fixture represents one scheduled or finished match from the fixture provider.
// It is an immutable snapshot, alive for a single request-response cycle.
type Fixture struct {
	ID          int64     `json:"id"`
	Competition string    `json:"competition"`
	KickoffUTC  time.Time `json:"kickoff_utc"`
	HomeTeam    Team      `json:"home_team"`
	AwayTeam    Team      `json:"away_team"`
	FullTime    *Score    `json:"full_time,omitempty"` // nil until the match finished
}

// Name returns the display name "Home - Away".
func (f Fixture) Name() string {
	return f.HomeTeam.Name + " - " + f.AwayTeam.Name
}

// FormSymbol is one outcome in a team's recent-form sequence.
type FormSymbol string

const (
	FormWin  FormSymbol = "W"
	FormDraw FormSymbol = "D"
	FormLoss FormSymbol = "L"
)

// FormRecord is a team's win/draw/loss sequence over its most recent
// finished fixtures, most recent first, capped at 5.
type FormRecord struct {
	TeamName string       `json:"team_name"`
	Symbols  []FormSymbol `json:"symbols"`
}

// String renders the sequence as "W W D L W".
func (r FormRecord) String() string {
	parts := make([]string, len(r.Symbols))
	for i, s := range r.Symbols {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}

// HeadToHead aggregates past meetings between the two teams of a fixture.
type HeadToHead struct {
	Matches  int `json:"matches"`
	HomeWins int `json:"home_wins"`
	Draws    int `json:"draws"`
	AwayWins int `json:"away_wins"`
}

// Outcome labels used as OddsQuote keys.
const (
	OutcomeHomeWin = "home_win"
	OutcomeDraw    = "draw"
	OutcomeAwayWin = "away_win"
)

// OddsQuote maps outcome labels to decimal prices for one located event,
// taken from a single bookmaker. Totals keys look like "over_2.5".
type OddsQuote struct {
	Bookmaker string             `json:"bookmaker"`
	H2H       map[string]float64 `json:"h2h"`
	Totals    map[string]float64 `json:"totals"`
}

// AnalysisContext is everything gathered for one analysis request.
// Only the Fixture is guaranteed; every other field may be nil and the
// consumer must degrade to generic wording when it is.
type AnalysisContext struct {
	Fixture    Fixture
	Odds       *OddsQuote
	HeadToHead *HeadToHead
	HomeForm   *FormRecord
	AwayForm   *FormRecord
}
