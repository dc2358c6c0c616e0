package footballdata

import (
	"time"

	"matchadvisor/internal/pkg/models"
)

// Wire types for the football-data.org v4 API. Only the fields the advisor
// consumes are declared; everything else in the payload is ignored.

type matchesResponse struct {
	Matches []wireMatch `json:"matches"`
}

type wireMatch struct {
	ID          int64     `json:"id"`
	UTCDate     time.Time `json:"utcDate"`
	Status      string    `json:"status"`
	Competition struct {
		Name string `json:"name"`
		Code string `json:"code"`
	} `json:"competition"`
	HomeTeam wireTeam  `json:"homeTeam"`
	AwayTeam wireTeam  `json:"awayTeam"`
	Score    wireScore `json:"score"`
}

type wireTeam struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type wireScore struct {
	FullTime struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"fullTime"`
}

type head2headResponse struct {
	Aggregates struct {
		NumberOfMatches int         `json:"numberOfMatches"`
		HomeTeam        wireH2HSide `json:"homeTeam"`
		AwayTeam        wireH2HSide `json:"awayTeam"`
	} `json:"aggregates"`
}

type wireH2HSide struct {
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
}

func (r matchesResponse) fixtures() []models.Fixture {
	fixtures := make([]models.Fixture, 0, len(r.Matches))
	for _, m := range r.Matches {
		f := models.Fixture{
			ID:          m.ID,
			Competition: m.Competition.Name,
			KickoffUTC:  m.UTCDate.UTC(),
			HomeTeam:    models.Team{ID: m.HomeTeam.ID, Name: m.HomeTeam.Name},
			AwayTeam:    models.Team{ID: m.AwayTeam.ID, Name: m.AwayTeam.Name},
		}
		if m.Score.FullTime.Home != nil && m.Score.FullTime.Away != nil {
			f.FullTime = &models.Score{
				Home: *m.Score.FullTime.Home,
				Away: *m.Score.FullTime.Away,
			}
		}
		fixtures = append(fixtures, f)
	}
	return fixtures
}
