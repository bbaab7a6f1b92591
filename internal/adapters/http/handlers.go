package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/viralforge/fantasymanager/internal/application"
	"github.com/viralforge/fantasymanager/internal/contracts"
	"github.com/viralforge/fantasymanager/internal/domain"
)

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, contracts.StatusResponse{Status: "ok"})
}

func (h *Handler) readyz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, contracts.StatusResponse{Status: "ready"})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	err := domain.NewNotFoundError("Route not found", "No endpoint matches "+r.Method+" "+r.URL.Path).WithResource("route", r.URL.Path)
	writeMappedError(w, r, "route_lookup", err)
}

func (h *Handler) listMatchFantasyTeams(w http.ResponseWriter, r *http.Request) {
	opts, err := bindListOptions(r)
	if err != nil {
		writeMappedError(w, r, "list_match_fantasy_teams", err)
		return
	}
	res, err := h.service.ListMatchFantasyTeams(r.Context(), chi.URLParam(r, application.ParamMatchID), opts)
	if err != nil {
		writeMappedError(w, r, "list_match_fantasy_teams", err)
		return
	}
	writeFantasyTeamList(w, res)
}

func (h *Handler) listUserFantasyTeams(w http.ResponseWriter, r *http.Request) {
	opts, err := bindListOptions(r)
	if err != nil {
		writeMappedError(w, r, "list_user_fantasy_teams", err)
		return
	}
	res, err := h.service.ListUserFantasyTeams(r.Context(),
		chi.URLParam(r, application.ParamUserID),
		chi.URLParam(r, application.ParamMatchID),
		opts,
	)
	if err != nil {
		writeMappedError(w, r, "list_user_fantasy_teams", err)
		return
	}
	writeFantasyTeamList(w, res)
}

func (h *Handler) getFantasyTeam(w http.ResponseWriter, r *http.Request) {
	detail, err := queryBool(r, "detail", true)
	if err != nil {
		writeMappedError(w, r, "get_fantasy_team", err)
		return
	}
	team, err := h.service.GetFantasyTeam(r.Context(), teamRefFromRequest(r), detail)
	if err != nil {
		writeMappedError(w, r, "get_fantasy_team", err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

func (h *Handler) updateFantasyTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ref := teamRefFromRequest(r)
	if _, err := application.ValidateTeamRef(ref); err != nil {
		writeMappedError(w, r, "update_fantasy_team_players", err)
		return
	}
	players, err := decodePlayerUpdates(r)
	if err != nil {
		writeMappedError(w, r, "update_fantasy_team_players", err)
		return
	}
	msg, err := h.service.UpdateFantasyTeamPlayers(r.Context(), ref, players)
	if err != nil {
		writeMappedError(w, r, "update_fantasy_team_players", err)
		return
	}
	writeMessage(w, http.StatusOK, msg)
}

func (h *Handler) deleteFantasyTeam(w http.ResponseWriter, r *http.Request) {
	msg, err := h.service.DeleteFantasyTeam(r.Context(), teamRefFromRequest(r))
	if err != nil {
		writeMappedError(w, r, "delete_fantasy_team", err)
		return
	}
	writeMessage(w, http.StatusOK, msg)
}

func teamRefFromRequest(r *http.Request) application.TeamRef {
	return application.TeamRef{
		UserID:        chi.URLParam(r, application.ParamUserID),
		MatchID:       chi.URLParam(r, application.ParamMatchID),
		FantasyTeamID: chi.URLParam(r, application.ParamFantasyTeamID),
	}
}

func writeFantasyTeamList(w http.ResponseWriter, res application.ListResult) {
	if len(res.Fields) > 0 {
		projected := res.Projected()
		writeJSON(w, http.StatusOK, contracts.FantasyTeamFilteredFieldsResponse{FantasyTeams: projected, Count: len(projected)})
		return
	}
	writeJSON(w, http.StatusOK, contracts.FantasyTeamListResponse{FantasyTeams: res.Teams})
}
