package domain

import "slices"

// Player positions.
const (
	PositionWicketKeeper = "wk"
	PositionBatter       = "bat"
	PositionBowler       = "bowl"
	PositionAllRounder   = "allrounder"
)

type TeamInfo struct {
	TeamID          string  `json:"team_id"`
	Name            string  `json:"name"`
	NumberOfPlayers int     `json:"number_of_players"`
	TeamImageURL    *string `json:"team_image_url,omitempty"`
}

type PlayerInfo struct {
	PlayerID       string   `json:"player_id"`
	PlayerName     string   `json:"player_name"`
	PlayerImageURL *string  `json:"player_image_url,omitempty"`
	IsCaptain      bool     `json:"is_captain"`
	IsViceCaptain  bool     `json:"is_vice_captain"`
	Credits        *float64 `json:"credits,omitempty"`
	PointsEarned   *float64 `json:"points_earned,omitempty"`
	Position       string   `json:"position"`
	TeamID         string   `json:"team_id"`
}

// FantasyTeam is a user's pick of players drawn from the teams of one match.
type FantasyTeam struct {
	Teams   []TeamInfo   `json:"teams"`
	Players []PlayerInfo `json:"players"`
}

// PlayerUpdate is one entry of a fantasy team player update.
type PlayerUpdate struct {
	PlayerID       string  `json:"player_id"`
	PlayerName     string  `json:"player_name"`
	PlayerImageURL *string `json:"player_image_url,omitempty"`
	IsCaptain      bool    `json:"is_captain"`
	IsViceCaptain  bool    `json:"is_vice_captain"`
	Position       string  `json:"position"`
	TeamID         string  `json:"team_id"`
}

// Summary returns a copy of t without optional presentation fields.
func (t FantasyTeam) Summary() FantasyTeam {
	out := FantasyTeam{
		Teams:   make([]TeamInfo, 0, len(t.Teams)),
		Players: make([]PlayerInfo, 0, len(t.Players)),
	}
	for _, team := range t.Teams {
		team.TeamImageURL = nil
		out.Teams = append(out.Teams, team)
	}
	for _, p := range t.Players {
		p.PlayerImageURL = nil
		p.Credits = nil
		p.PointsEarned = nil
		out.Players = append(out.Players, p)
	}
	return out
}

// PlayerFields lists the JSON names of PlayerInfo, in declaration order.
var PlayerFields = []string{
	"player_id",
	"player_name",
	"player_image_url",
	"is_captain",
	"is_vice_captain",
	"credits",
	"points_earned",
	"position",
	"team_id",
}

// IsPlayerField reports whether name is a PlayerInfo JSON field.
func IsPlayerField(name string) bool {
	return slices.Contains(PlayerFields, name)
}

// Project returns the requested fields of p keyed by JSON name. Nil optional
// fields are left out.
func (p PlayerInfo) Project(fields []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		switch f {
		case "player_id":
			out[f] = p.PlayerID
		case "player_name":
			out[f] = p.PlayerName
		case "player_image_url":
			if p.PlayerImageURL != nil {
				out[f] = *p.PlayerImageURL
			}
		case "is_captain":
			out[f] = p.IsCaptain
		case "is_vice_captain":
			out[f] = p.IsViceCaptain
		case "credits":
			if p.Credits != nil {
				out[f] = *p.Credits
			}
		case "points_earned":
			if p.PointsEarned != nil {
				out[f] = *p.PointsEarned
			}
		case "position":
			out[f] = p.Position
		case "team_id":
			out[f] = p.TeamID
		}
	}
	return out
}
