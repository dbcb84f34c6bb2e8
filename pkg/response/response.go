package response

import (
	"encoding/json"
	"net/http"
)

type successEnvelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SuccessResponse writes data wrapped in the success envelope
func SuccessResponse(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, successEnvelope{Status: "success", Data: data})
}

// ErrorResponse writes message wrapped in the error envelope
func ErrorResponse(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorEnvelope{Status: "error", Message: message})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
