package ports

import "github.com/viralforge/fantasymanager/internal/domain"

// FantasyTeamGenerator synthesizes fantasy team data for a match. It never
// fails and must be safe for concurrent use.
type FantasyTeamGenerator interface {
	Generate(matchID string) domain.FantasyTeam
}
