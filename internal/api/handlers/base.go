package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse carries a single error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse carries every validation failure at once.
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

// RespondWithError sends a JSON error response with the given status code.
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{Error: message})
}

// RespondWithErrors sends the aggregated validation failure list.
func RespondWithErrors(w http.ResponseWriter, code int, errs []string) {
	RespondWithJSON(w, code, ValidationResponse{Errors: errs})
}

// RespondWithJSON sends a JSON response with the given status code and payload.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("marshaling JSON response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal server error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
