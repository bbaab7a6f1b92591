package application

import (
	"github.com/viralforge/fantasymanager/internal/contracts"
	"github.com/viralforge/fantasymanager/internal/domain"
	"github.com/viralforge/fantasymanager/internal/ports"
)

const (
	DefaultListLimit = 2
	MinListLimit     = 1
	MaxListLimit     = 10
)

type Config struct {
	ServiceName      string
	DefaultListLimit int
}

// TeamRef identifies one fantasy team of a user for a match.
type TeamRef struct {
	UserID        string
	MatchID       string
	FantasyTeamID string
}

// ListOptions holds already-bound query values. Limit and Offset are
// range-checked by the transport binder; a zero Limit selects the default.
type ListOptions struct {
	Fields string
	Limit  int
	Offset int
}

type ListResult struct {
	Teams []domain.FantasyTeam
	// Fields is empty when no projection was requested.
	Fields []string
}

// Projected reduces every player to the requested fields.
func (r ListResult) Projected() []contracts.ProjectedFantasyTeam {
	out := make([]contracts.ProjectedFantasyTeam, 0, len(r.Teams))
	for _, team := range r.Teams {
		players := make([]map[string]any, 0, len(team.Players))
		for _, p := range team.Players {
			players = append(players, p.Project(r.Fields))
		}
		out = append(out, contracts.ProjectedFantasyTeam{Teams: team.Teams, Players: players})
	}
	return out
}

type Service struct {
	cfg       Config
	generator ports.FantasyTeamGenerator
}

type Dependencies struct {
	Config    Config
	Generator ports.FantasyTeamGenerator
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.ServiceName == "" {
		cfg.ServiceName = "Fantasy-Team-Service"
	}
	if cfg.DefaultListLimit < MinListLimit || cfg.DefaultListLimit > MaxListLimit {
		cfg.DefaultListLimit = DefaultListLimit
	}
	return &Service{cfg: cfg, generator: deps.Generator}
}
