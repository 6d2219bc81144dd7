package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"wargame/internal/campaign"
)

const maxBody = 1 << 20

var errBadRequest = errors.New("malformed request body")

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ok answers a successful command. key/value pairs are merged into the
// body next to "ok".
func ok(w http.ResponseWriter, kv ...any) {
	body := map[string]any{"ok": true}
	for i := 0; i+1 < len(kv); i += 2 {
		body[kv[i].(string)] = kv[i+1]
	}
	writeJSON(w, http.StatusOK, body)
}

// fail answers a failed command with its reason code.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	reason := campaign.ReasonOf(err)
	if errors.Is(err, errBadRequest) {
		reason = "bad_request"
	}
	status := statusOf(reason)
	if status >= 500 {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "reason", reason, "err", err)
	}
	writeJSON(w, status, map[string]any{"ok": false, "reason": reason, "error": err.Error()})
}

func statusOf(reason string) int {
	switch reason {
	case campaign.ReasonUnknownUnit, campaign.ReasonUnknownBattalion, campaign.ReasonUnknownBattle:
		return http.StatusNotFound
	case campaign.ReasonDuplicateUnit, campaign.ReasonDuplicateBattalion, campaign.ReasonDuplicateBattle,
		campaign.ReasonReservedName, campaign.ReasonUnitParticipating, campaign.ReasonAlreadyAdded:
		return http.StatusConflict
	case campaign.ReasonIO, campaign.ReasonInternal:
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
