package application

import (
	"context"

	"github.com/viralforge/fantasymanager/internal/domain"
)

const (
	msgPlayersUpdated = "Players updated successfully"
	msgTeamDeleted    = "Fantasy team deleted successfully"
)

func (s *Service) ListMatchFantasyTeams(ctx context.Context, matchID string, opts ListOptions) (ListResult, error) {
	matchID, err := ValidateMatchID(matchID)
	if err != nil {
		return ListResult{}, err
	}
	return s.listTeams(ctx, matchID, opts)
}

func (s *Service) ListUserFantasyTeams(ctx context.Context, userID, matchID string, opts ListOptions) (ListResult, error) {
	_, matchID, err := ValidateUserMatch(userID, matchID)
	if err != nil {
		return ListResult{}, err
	}
	return s.listTeams(ctx, matchID, opts)
}

func (s *Service) GetFantasyTeam(_ context.Context, ref TeamRef, detail bool) (domain.FantasyTeam, error) {
	ref, err := ValidateTeamRef(ref)
	if err != nil {
		return domain.FantasyTeam{}, err
	}
	team := s.generator.Generate(ref.MatchID)
	if !detail {
		return team.Summary(), nil
	}
	return team, nil
}

func (s *Service) UpdateFantasyTeamPlayers(_ context.Context, ref TeamRef, players []domain.PlayerUpdate) (string, error) {
	if _, err := ValidateTeamRef(ref); err != nil {
		return "", err
	}
	if err := ValidatePlayerUpdates(players); err != nil {
		return "", err
	}
	return msgPlayersUpdated, nil
}

func (s *Service) DeleteFantasyTeam(_ context.Context, ref TeamRef) (string, error) {
	if _, err := ValidateTeamRef(ref); err != nil {
		return "", err
	}
	return msgTeamDeleted, nil
}

func (s *Service) listTeams(_ context.Context, matchID string, opts ListOptions) (ListResult, error) {
	fields, err := ParseFields(opts.Fields)
	if err != nil {
		return ListResult{}, err
	}
	limit := opts.Limit
	if limit == 0 {
		limit = s.cfg.DefaultListLimit
	}
	teams := make([]domain.FantasyTeam, 0, limit)
	for i := 0; i < limit; i++ {
		teams = append(teams, s.generator.Generate(matchID))
	}
	return ListResult{Teams: teams, Fields: fields}, nil
}
