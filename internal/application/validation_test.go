package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viralforge/fantasymanager/internal/domain"
)

func requireValidationError(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
	return vErr
}

func TestValidateMatchID(t *testing.T) {
	id, err := ValidateMatchID(" m1 ")
	require.NoError(t, err)
	assert.Equal(t, "m1", id)

	for _, raw := range []string{"", "   "} {
		_, err := ValidateMatchID(raw)
		vErr := requireValidationError(t, err)
		assert.Equal(t, "matchId is required", vErr.Message())
		assert.Equal(t, "Required path parameters: matchId", vErr.Description())
		assert.Equal(t, ParamMatchID, vErr.Field)
	}
}

func TestValidateUserMatch(t *testing.T) {
	userID, matchID, err := ValidateUserMatch("u1", "m1")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "m1", matchID)

	_, _, err = ValidateUserMatch("", "")
	vErr := requireValidationError(t, err)
	assert.Equal(t, "userId and matchId are required", vErr.Message())
	assert.Equal(t, "Required path parameters: userId, matchId", vErr.Description())
	assert.Equal(t, ParamUserID, vErr.Field)
}

func TestValidateTeamRef(t *testing.T) {
	tests := []struct {
		name    string
		ref     TeamRef
		message string
		field   string
	}{
		{"missing team", TeamRef{UserID: "u1", MatchID: "m1"}, "fantasyTeamId is required", ParamFantasyTeamID},
		{"missing user and team", TeamRef{MatchID: "m1"}, "userId and fantasyTeamId are required", ParamUserID},
		{"all missing", TeamRef{}, "userId, matchId and fantasyTeamId are required", ParamUserID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateTeamRef(tt.ref)
			vErr := requireValidationError(t, err)
			assert.Equal(t, tt.message, vErr.Message())
			assert.Equal(t, "Required path parameters: userId, matchId, fantasyTeamId", vErr.Description())
			assert.Equal(t, tt.field, vErr.Field)
		})
	}

	ref, err := ValidateTeamRef(TeamRef{UserID: " u1", MatchID: "m1 ", FantasyTeamID: "ft1"})
	require.NoError(t, err)
	assert.Equal(t, TeamRef{UserID: "u1", MatchID: "m1", FantasyTeamID: "ft1"}, ref)
}

func TestParseFields(t *testing.T) {
	fields, err := ParseFields("player_id, position,,player_id")
	require.NoError(t, err)
	assert.Equal(t, []string{"player_id", "position"}, fields)

	fields, err = ParseFields(" , ")
	require.NoError(t, err)
	assert.Empty(t, fields)

	_, err = ParseFields("player_id,salary")
	vErr := requireValidationError(t, err)
	assert.Equal(t, ParamFields, vErr.Field)
	assert.Contains(t, vErr.Message(), "salary")
}

func validPlayer(id string) domain.PlayerUpdate {
	return domain.PlayerUpdate{PlayerID: id, PlayerName: "Rohit Sharma", Position: domain.PositionBatter, TeamID: "t2"}
}

func TestValidatePlayerUpdates(t *testing.T) {
	captain := validPlayer("p1")
	captain.IsCaptain = true
	vice := validPlayer("p2")
	vice.IsViceCaptain = true
	require.NoError(t, ValidatePlayerUpdates([]domain.PlayerUpdate{captain, vice, validPlayer("p3")}))

	missingPosition := validPlayer("p4")
	missingPosition.Position = " "
	both := validPlayer("p5")
	both.IsCaptain, both.IsViceCaptain = true, true
	secondVice := validPlayer("p6")
	secondVice.IsViceCaptain = true

	tests := []struct {
		name    string
		players []domain.PlayerUpdate
		field   string
	}{
		{"empty", nil, ParamPlayers},
		{"missing field", []domain.PlayerUpdate{validPlayer("p1"), missingPosition}, "players[1].position"},
		{"captain and vice", []domain.PlayerUpdate{both}, "players[0]"},
		{"two captains", []domain.PlayerUpdate{captain, captain}, "players[1].is_captain"},
		{"two vice captains", []domain.PlayerUpdate{vice, secondVice}, "players[1].is_vice_captain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vErr := requireValidationError(t, ValidatePlayerUpdates(tt.players))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestValidateListWindow(t *testing.T) {
	require.NoError(t, ValidateLimit(MinListLimit))
	require.NoError(t, ValidateLimit(MaxListLimit))
	require.NoError(t, ValidateOffset(0))

	vErr := requireValidationError(t, ValidateLimit(MaxListLimit+1))
	assert.Equal(t, "limit must be between 1 and 10", vErr.Message())
	assert.Equal(t, ParamLimit, vErr.Field)

	vErr = requireValidationError(t, ValidateOffset(-1))
	assert.Equal(t, "offset must be greater than or equal to 0", vErr.Message())

	vErr = requireValidationError(t, NotAnInteger(ParamLimit, 2.5))
	assert.Equal(t, "limit must be an integer", vErr.Message())
}
