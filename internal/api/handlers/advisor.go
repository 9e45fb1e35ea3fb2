package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/buyitapp/buyit-server/internal/advisor"
	"github.com/buyitapp/buyit-server/internal/api/middleware"
	"github.com/buyitapp/buyit-server/internal/service"
)

type AdvisorHandler struct {
	advisorService *advisor.Service
	authService    *service.AuthService
}

func NewAdvisorHandler(advisorService *advisor.Service, authService *service.AuthService) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService, authService: authService}
}

type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	Message string `json:"message"`
}

// Chat proxies a chat-widget message to the completion API. The endpoint is
// public; a session cookie, when present, only personalizes the greeting.
func (h *AdvisorHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}
	if req.SessionID == "" || req.Message == "" {
		respondError(w, http.StatusBadRequest, "Missing data", "MISSING_FIELDS")
		return
	}

	firstName := ""
	if cookie, err := r.Cookie(middleware.CookieName); err == nil {
		if claims := h.authService.VerifyToken(cookie.Value); claims != nil {
			firstName = claims.FirstName
		}
	}

	reply, err := h.advisorService.Advise(r.Context(), req.SessionID, req.Message, firstName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to get response", "INTERNAL_ERROR")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChatResponse{Message: reply})
}
