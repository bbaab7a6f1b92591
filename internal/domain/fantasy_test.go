package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePlayer() PlayerInfo {
	image := "https://example.com/player.png"
	credits := 9.5
	points := 88.0
	return PlayerInfo{
		PlayerID:       "p1",
		PlayerName:     "MS Dhoni",
		PlayerImageURL: &image,
		IsCaptain:      true,
		Credits:        &credits,
		PointsEarned:   &points,
		Position:       PositionWicketKeeper,
		TeamID:         "t1",
	}
}

func TestProjectSelectsRequestedFields(t *testing.T) {
	got := samplePlayer().Project([]string{"player_id", "credits", "is_captain"})
	assert.Equal(t, map[string]any{"player_id": "p1", "credits": 9.5, "is_captain": true}, got)
}

func TestProjectSkipsNilOptionalFields(t *testing.T) {
	p := samplePlayer()
	p.PointsEarned = nil
	got := p.Project([]string{"points_earned", "position"})
	assert.Equal(t, map[string]any{"position": PositionWicketKeeper}, got)
}

func TestSummaryStripsOptionalFields(t *testing.T) {
	image := "https://example.com/csk.png"
	team := FantasyTeam{
		Teams:   []TeamInfo{{TeamID: "t1", Name: "Chennai Super Kings", NumberOfPlayers: 5, TeamImageURL: &image}},
		Players: []PlayerInfo{samplePlayer()},
	}

	summary := team.Summary()

	assert.Nil(t, summary.Teams[0].TeamImageURL)
	assert.Nil(t, summary.Players[0].PlayerImageURL)
	assert.Nil(t, summary.Players[0].Credits)
	assert.Nil(t, summary.Players[0].PointsEarned)
	assert.Equal(t, "p1", summary.Players[0].PlayerID)
	assert.NotNil(t, team.Players[0].Credits, "input team must be untouched")
}

func TestIsPlayerField(t *testing.T) {
	assert.True(t, IsPlayerField("team_id"))
	assert.False(t, IsPlayerField("teamId"))
}
