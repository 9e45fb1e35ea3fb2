package handlers

import (
	"encoding/json"
	"net/http"
)

// response is the JSON envelope shared by every endpoint.
type response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details []string    `json:"details,omitempty"`
	ID      string      `json:"id,omitempty"`
}

func respond(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondOK(w http.ResponseWriter, status int, message string, data interface{}) {
	respond(w, status, response{Success: true, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, status int, message, code string) {
	respond(w, status, response{Success: false, Message: message, Error: code})
}
