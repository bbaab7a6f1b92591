package contracts

import "github.com/viralforge/fantasymanager/internal/domain"

// ErrorEnvelope is the body of every error response.
type ErrorEnvelope struct {
	StatusCode  int    `json:"status_code"`
	Code        string `json:"code"`
	Error       string `json:"error"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

type FantasyTeamListResponse struct {
	FantasyTeams []domain.FantasyTeam `json:"fantasy_teams"`
}

// ProjectedFantasyTeam is a fantasy team whose players were reduced to the
// fields named in the "fields" query parameter.
type ProjectedFantasyTeam struct {
	Teams   []domain.TeamInfo `json:"teams"`
	Players []map[string]any  `json:"players"`
}

type FantasyTeamFilteredFieldsResponse struct {
	FantasyTeams []ProjectedFantasyTeam `json:"fantasy_teams"`
	Count        int                    `json:"count"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
