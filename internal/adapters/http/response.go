package http

import (
	"encoding/json"
	"net/http"

	"github.com/viralforge/fantasymanager/internal/contracts"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, contracts.MessageResponse{Message: message})
}

// writeMappedError translates err and writes the resulting envelope.
func writeMappedError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	statusCode, envelope := Translate(r.Context(), requestInfo(r, operation), err)
	markTranslated(w)
	writeJSON(w, statusCode, envelope)
}
