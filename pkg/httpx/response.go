package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON response shape shared by every endpoint. Failures carry
// Success=false plus a human-readable message; successes may carry data and a
// freshly issued session token.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// WriteJSON writes a JSON response with the given status code. It sets the
// Content-Type and no-store caching headers; auth responses carry tokens and
// must never be cached.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes a success envelope with optional data.
func WriteSuccess(w http.ResponseWriter, code int, data any) {
	WriteJSON(w, code, Envelope{Success: true, Data: data})
}

// WriteToken writes a success envelope carrying a session token and data.
func WriteToken(w http.ResponseWriter, code int, token string, data any) {
	WriteJSON(w, code, Envelope{Success: true, Token: token, Data: data})
}

// WriteMessage writes a success envelope with only a message.
func WriteMessage(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, Envelope{Success: true, Message: message})
}

// WriteError writes a failure envelope.
func WriteError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, Envelope{Success: false, Message: message})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
