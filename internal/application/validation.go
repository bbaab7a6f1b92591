package application

import (
	"fmt"
	"strings"

	"github.com/viralforge/fantasymanager/internal/domain"
)

const (
	ParamUserID        = "userId"
	ParamMatchID       = "matchId"
	ParamFantasyTeamID = "fantasyTeamId"
	ParamFields        = "fields"
	ParamPlayers       = "players"
	ParamLimit         = "limit"
	ParamOffset        = "offset"
)

type param struct{ name, value string }

// requireParams returns a ValidationError naming every empty parameter.
func requireParams(params ...param) error {
	names := make([]string, 0, len(params))
	missing := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.name)
		if strings.TrimSpace(p.value) == "" {
			missing = append(missing, p.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return domain.NewValidationError(
		missingMessage(missing),
		"Required path parameters: "+strings.Join(names, ", "),
	).WithField(missing[0])
}

func missingMessage(missing []string) string {
	switch n := len(missing); n {
	case 1:
		return missing[0] + " is required"
	case 2:
		return missing[0] + " and " + missing[1] + " are required"
	default:
		return strings.Join(missing[:n-1], ", ") + " and " + missing[n-1] + " are required"
	}
}

// ValidateMatchID checks the match-scoped route contract.
func ValidateMatchID(matchID string) (string, error) {
	if err := requireParams(param{ParamMatchID, matchID}); err != nil {
		return "", err
	}
	return strings.TrimSpace(matchID), nil
}

// ValidateUserMatch checks the user-and-match route contract.
func ValidateUserMatch(userID, matchID string) (string, string, error) {
	if err := requireParams(param{ParamUserID, userID}, param{ParamMatchID, matchID}); err != nil {
		return "", "", err
	}
	return strings.TrimSpace(userID), strings.TrimSpace(matchID), nil
}

// ValidateTeamRef checks the single-team route contract and returns the
// trimmed reference.
func ValidateTeamRef(ref TeamRef) (TeamRef, error) {
	if err := requireParams(
		param{ParamUserID, ref.UserID},
		param{ParamMatchID, ref.MatchID},
		param{ParamFantasyTeamID, ref.FantasyTeamID},
	); err != nil {
		return TeamRef{}, err
	}
	return TeamRef{
		UserID:        strings.TrimSpace(ref.UserID),
		MatchID:       strings.TrimSpace(ref.MatchID),
		FantasyTeamID: strings.TrimSpace(ref.FantasyTeamID),
	}, nil
}

// ValidateLimit checks an explicitly supplied page size.
func ValidateLimit(limit int) error {
	if limit < MinListLimit || limit > MaxListLimit {
		return domain.NewValidationError(
			fmt.Sprintf("%s must be between %d and %d", ParamLimit, MinListLimit, MaxListLimit),
			fmt.Sprintf("Value %d is out of range for %s", limit, ParamLimit),
		).WithField(ParamLimit)
	}
	return nil
}

func ValidateOffset(offset int) error {
	if offset < 0 {
		return domain.NewValidationError(
			ParamOffset+" must be greater than or equal to 0",
			fmt.Sprintf("Value %d is out of range for %s", offset, ParamOffset),
		).WithField(ParamOffset)
	}
	return nil
}

// NotAnInteger reports a list parameter whose raw value is not a whole number.
func NotAnInteger(name string, raw any) error {
	return domain.NewValidationError(
		name+" must be an integer",
		fmt.Sprintf("Invalid value %v for %s", raw, name),
	).WithField(name)
}

// ParseFields splits a comma-separated player field list. Blank entries are
// dropped and duplicates collapse to their first occurrence.
func ParseFields(raw string) ([]string, error) {
	var fields []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if !domain.IsPlayerField(name) {
			return nil, domain.NewValidationError(
				fmt.Sprintf("unknown player field %q", name),
				"Allowed fields: "+strings.Join(domain.PlayerFields, ", "),
			).WithField(ParamFields)
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		fields = append(fields, name)
	}
	return fields, nil
}

// ValidatePlayerUpdates checks a player update payload: at least one player,
// required fields present, a single captain and a single vice captain.
func ValidatePlayerUpdates(players []domain.PlayerUpdate) error {
	if len(players) == 0 {
		return domain.NewValidationError("players must not be empty", "Provide at least one player to update").WithField(ParamPlayers)
	}
	captain, viceCaptain := -1, -1
	for i, p := range players {
		for _, f := range []param{
			{"player_id", p.PlayerID},
			{"player_name", p.PlayerName},
			{"position", p.Position},
			{"team_id", p.TeamID},
		} {
			if strings.TrimSpace(f.value) == "" {
				field := fmt.Sprintf("%s[%d].%s", ParamPlayers, i, f.name)
				return domain.NewValidationError(field+" is required", "Each player requires player_id, player_name, position and team_id").WithField(field)
			}
		}
		if p.IsCaptain && p.IsViceCaptain {
			field := fmt.Sprintf("%s[%d]", ParamPlayers, i)
			return domain.NewValidationError("a player cannot be both captain and vice captain", "Choose different players for captain and vice captain").WithField(field)
		}
		if p.IsCaptain {
			if captain >= 0 {
				return domain.NewValidationError("only one captain is allowed", fmt.Sprintf("Players at index %d and %d are both captain", captain, i)).WithField(fmt.Sprintf("%s[%d].is_captain", ParamPlayers, i))
			}
			captain = i
		}
		if p.IsViceCaptain {
			if viceCaptain >= 0 {
				return domain.NewValidationError("only one vice captain is allowed", fmt.Sprintf("Players at index %d and %d are both vice captain", viceCaptain, i)).WithField(fmt.Sprintf("%s[%d].is_vice_captain", ParamPlayers, i))
			}
			viceCaptain = i
		}
	}
	return nil
}
