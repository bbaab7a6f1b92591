package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/viralforge/fantasymanager/internal/application"
	"github.com/viralforge/fantasymanager/internal/domain"
)

// queryInt reads an optional integer query value. ok is false when the
// parameter is absent or blank.
func queryInt(r *http.Request, name string) (n int, ok bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, false, nil
	}
	n, err = strconv.Atoi(raw)
	if err != nil {
		return 0, false, application.NotAnInteger(name, strconv.Quote(raw))
	}
	return n, true, nil
}

func queryBool(r *http.Request, name string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, domain.NewValidationError(name+" must be a boolean", fmt.Sprintf("Invalid value %q for query parameter %s", raw, name)).WithField(name)
	}
}

func bindListOptions(r *http.Request) (application.ListOptions, error) {
	opts := application.ListOptions{Fields: r.URL.Query().Get(application.ParamFields)}

	limit, ok, err := queryInt(r, application.ParamLimit)
	if err != nil {
		return application.ListOptions{}, err
	}
	if ok {
		if err := application.ValidateLimit(limit); err != nil {
			return application.ListOptions{}, err
		}
		opts.Limit = limit
	}

	offset, ok, err := queryInt(r, application.ParamOffset)
	if err != nil {
		return application.ListOptions{}, err
	}
	if ok {
		if err := application.ValidateOffset(offset); err != nil {
			return application.ListOptions{}, err
		}
		opts.Offset = offset
	}
	return opts, nil
}

// decodePlayerUpdates accepts exactly one JSON array and nothing after it.
func decodePlayerUpdates(r *http.Request) ([]domain.PlayerUpdate, error) {
	invalid := domain.NewValidationError("invalid request body", "Request body must be a JSON array of players").WithField(application.ParamPlayers)

	dec := json.NewDecoder(r.Body)
	var players []domain.PlayerUpdate
	if err := dec.Decode(&players); err != nil {
		return nil, invalid
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, invalid
	}
	return players, nil
}
