package advisor

import (
	"testing"

	"matchadvisor/internal/pkg/models"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		text string
		want models.Intent
	}{
		{"посоветуй на что поставить", models.IntentRecommend},
		{"recommend me a bet", models.IntentRecommend},
		{"best bets today?", models.IntentRecommend},
		{"какие матчи сегодня", models.IntentListMatches},
		{"show matches please", models.IntentListMatches},
		{"upcoming fixtures", models.IntentListMatches},
		{"кто победит арсенал челси", models.IntentAnalysis},
		{"who will win arsenal vs chelsea", models.IntentAnalysis},
		{"analyze liverpool everton", models.IntentAnalysis},
		{"прогноз на матч", models.IntentAnalysis},
		// Nothing matches -> fallback.
		{"арсенал челси", models.IntentTeamSearch},
		{"hello", models.IntentTeamSearch},
		{"", models.IntentTeamSearch},
	}
	for _, tt := range tests {
		got := ClassifyIntent(tt.text)
		if got != tt.want {
			t.Errorf("ClassifyIntent(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestClassifyIntent_FirstGroupWins(t *testing.T) {
	// Contains recommend, matches and analysis phrases at once; the
	// recommend group is checked first and must win.
	text := "посоветуй кто выиграет и какие матчи есть"
	if got := ClassifyIntent(text); got != models.IntentRecommend {
		t.Errorf("ClassifyIntent(%q) = %q, want %q", text, got, models.IntentRecommend)
	}

	// Matches beats analysis.
	text = "какие матчи и кто победит"
	if got := ClassifyIntent(text); got != models.IntentListMatches {
		t.Errorf("ClassifyIntent(%q) = %q, want %q", text, got, models.IntentListMatches)
	}
}
