package grpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/viralforge/fantasymanager/internal/adapters/mock"
	"github.com/viralforge/fantasymanager/internal/application"
	"github.com/viralforge/fantasymanager/internal/domain"
)

func newServer() *FantasyTeamInternalServer {
	svc := application.NewService(application.Dependencies{Generator: mock.NewSeededGenerator(3, 5)})
	return NewFantasyTeamInternalServer(svc)
}

func mustStruct(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return s
}

func TestGetFantasyTeam(t *testing.T) {
	resp, err := newServer().GetFantasyTeam(context.Background(), mustStruct(t, map[string]any{
		"user_id": "u1", "match_id": "m1", "fantasy_team_id": "ft1",
	}))
	require.NoError(t, err)
	assert.Len(t, resp.GetFields()["teams"].GetListValue().GetValues(), 2)
	players := resp.GetFields()["players"].GetListValue().GetValues()
	require.NotEmpty(t, players)
	assert.Contains(t, players[0].GetStructValue().GetFields(), "credits")
}

func TestGetFantasyTeamSummary(t *testing.T) {
	resp, err := newServer().GetFantasyTeam(context.Background(), mustStruct(t, map[string]any{
		"user_id": "u1", "match_id": "m1", "fantasy_team_id": "ft1", "detail": false,
	}))
	require.NoError(t, err)
	player := resp.GetFields()["players"].GetListValue().GetValues()[0].GetStructValue()
	assert.NotContains(t, player.GetFields(), "credits")
}

func TestGetFantasyTeamMissingIDs(t *testing.T) {
	_, err := newServer().GetFantasyTeam(context.Background(), mustStruct(t, map[string]any{"user_id": "u1"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, "matchId and fantasyTeamId are required", status.Convert(err).Message())
}

func TestListMatchFantasyTeams(t *testing.T) {
	resp, err := newServer().ListMatchFantasyTeams(context.Background(), mustStruct(t, map[string]any{
		"match_id": "m1", "limit": 3,
	}))
	require.NoError(t, err)
	assert.Len(t, resp.GetFields()["fantasy_teams"].GetListValue().GetValues(), 3)

	resp, err = newServer().ListMatchFantasyTeams(context.Background(), mustStruct(t, map[string]any{
		"match_id": "m1", "limit": nil,
	}))
	require.NoError(t, err)
	assert.Len(t, resp.GetFields()["fantasy_teams"].GetListValue().GetValues(), application.DefaultListLimit)
}

func TestListMatchFantasyTeamsRejectsBadWindow(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]any
		message string
	}{
		{"limit too high", map[string]any{"limit": 11}, "limit must be between 1 and 10"},
		{"limit zero", map[string]any{"limit": 0}, "limit must be between 1 and 10"},
		{"fractional limit", map[string]any{"limit": 2.7}, "limit must be an integer"},
		{"string limit", map[string]any{"limit": "3"}, "limit must be an integer"},
		{"negative offset", map[string]any{"offset": -1}, "offset must be greater than or equal to 0"},
		{"fractional offset", map[string]any{"offset": 0.5}, "offset must be an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields["match_id"] = "m1"
			_, err := newServer().ListMatchFantasyTeams(context.Background(), mustStruct(t, tt.fields))
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Equal(t, tt.message, status.Convert(err).Message())
		})
	}
}

func TestStatusFromError(t *testing.T) {
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	tests := []struct {
		err  error
		code codes.Code
	}{
		{domain.NewValidationError("bad", ""), codes.InvalidArgument},
		{domain.NewNotFoundError("gone", ""), codes.NotFound},
		{domain.NewConflictError("dup", ""), codes.AlreadyExists},
		{domain.NewAuthenticationError("", ""), codes.Unauthenticated},
		{domain.NewAuthorizationError("", ""), codes.PermissionDenied},
		{errors.New("db exploded"), codes.Internal},
	}
	for _, tt := range tests {
		err := statusFromError(context.Background(), "Test", tt.err)
		assert.Equal(t, tt.code, status.Code(err), tt.err.Error())
	}

	err := statusFromError(context.Background(), "Test", errors.New("db exploded"))
	assert.Equal(t, "An unexpected error occurred", status.Convert(err).Message())
}

func TestStatusFromErrorTypedNil(t *testing.T) {
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	var typedNil *domain.ValidationError
	for _, err := range []error{typedNil, fmt.Errorf("wrapped: %w", typedNil)} {
		require.NotPanics(t, func() {
			got := statusFromError(context.Background(), "Test", err)
			assert.Equal(t, codes.Internal, status.Code(got))
		})
	}
}
