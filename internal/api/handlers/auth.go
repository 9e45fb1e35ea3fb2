package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/buyitapp/buyit-server/internal/api/middleware"
	"github.com/buyitapp/buyit-server/internal/auth"
	"github.com/buyitapp/buyit-server/internal/config"
	"github.com/buyitapp/buyit-server/internal/domain"
	"github.com/buyitapp/buyit-server/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type SignupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetRequest struct {
	Email string `json:"email"`
}

type ResetCompleteRequest struct {
	CreatePassword  string `json:"create_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type IdentityResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func identityOf(user *domain.User) IdentityResponse {
	return IdentityResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.JWTDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "First name, last name, email and password are required", "MISSING_FIELDS")
		return
	}
	if !auth.IsValidEmail(req.Email) {
		respondError(w, http.StatusBadRequest, "Invalid email format", "INVALID_EMAIL")
		return
	}
	if ok, violations := auth.CheckPasswordStrength(req.Password); !ok {
		respond(w, http.StatusBadRequest, response{
			Success: false,
			Message: "Password does not meet the requirements",
			Error:   "WEAK_PASSWORD",
			Details: violations,
		})
		return
	}

	result, err := h.authService.Signup(r.Context(), service.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			respondError(w, http.StatusConflict, "An account with this email already exists", "EMAIL_EXISTS")
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		return
	}

	h.setSessionCookie(w, result.Token)
	respondOK(w, http.StatusCreated, "User created with success", identityOf(result.User))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required", "MISSING_FIELDS")
		return
	}
	if !auth.IsValidEmail(req.Email) {
		respondError(w, http.StatusBadRequest, "Invalid email format", "INVALID_EMAIL")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// Unknown email and wrong password are indistinguishable on purpose.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password", "INVALID_CREDENTIALS")
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		return
	}

	h.setSessionCookie(w, result.Token)
	respondOK(w, http.StatusOK, "Login successful", identityOf(result.User))
}

// Logout clears the session cookie. It succeeds whether or not a session
// existed; there is no server-side state to revoke.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	respondOK(w, http.StatusOK, "Logged out successfully", nil)
}

// Verify lets clients answer "am I logged in" without resubmitting
// credentials.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.CookieName)
	if err != nil || cookie.Value == "" {
		respondError(w, http.StatusUnauthorized, "No token found", "UNAUTHORIZED")
		return
	}

	claims := h.authService.VerifyToken(cookie.Value)
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Invalid or expired token", "UNAUTHORIZED")
		return
	}

	respondOK(w, http.StatusOK, "Token is valid", map[string]string{
		"userId":     claims.UserID,
		"first_name": claims.FirstName,
		"last_name":  claims.LastName,
		"email":      claims.Email,
	})
}

func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		respondError(w, http.StatusBadRequest, "Email is required", "MISSING_FIELDS")
		return
	}

	err := h.authService.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "Sorry user does not exist", "EMAIL_NOT_FOUND")
			return
		}
		respondError(w, http.StatusInternalServerError, "An error occurred while processing your request", "SERVER_ERROR")
		return
	}

	respondOK(w, http.StatusOK, "Password reset link has been sent to your email", nil)
}

func (h *AuthHandler) CompletePasswordReset(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req ResetCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	if ok, violations := auth.CheckPasswordStrength(req.CreatePassword); !ok {
		respond(w, http.StatusBadRequest, response{
			Success: false,
			Message: "Password does not meet the requirements",
			Error:   "WEAK_PASSWORD",
			Details: violations,
		})
		return
	}

	err := h.authService.CompletePasswordReset(r.Context(), token, req.CreatePassword, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidResetToken):
			respondError(w, http.StatusBadRequest, "Your link has expired or is invalid", "INVALID_TOKEN")
		case errors.Is(err, domain.ErrPasswordMismatch):
			respondError(w, http.StatusBadRequest, "Passwords do not match", "PASSWORD_MISMATCH")
		default:
			respondError(w, http.StatusInternalServerError, "An error occurred while processing your request", "SERVER_ERROR")
		}
		return
	}

	respondOK(w, http.StatusOK, "Password updated successfully", nil)
}

type RecentUsersResponse struct {
	Count int            `json:"count"`
	Users []*domain.User `json:"users"`
}

func (h *AuthHandler) RecentUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.RecentUsers(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, response{
			Success: false,
			Message: "Failed to fetch recent users",
			Data:    RecentUsersResponse{Count: 0, Users: []*domain.User{}},
		})
		return
	}

	respondOK(w, http.StatusOK, "", RecentUsersResponse{Count: len(users), Users: users})
}

func (h *AuthHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "User ID is required", "MISSING_FIELDS")
		return
	}

	user, err := h.authService.DeleteUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found", "NOT_FOUND")
			return
		}
		respondError(w, http.StatusInternalServerError, "Error deleting user", "INTERNAL_ERROR")
		return
	}

	respondOK(w, http.StatusOK, "User deleted successfully", user.Email)
}

// SeedAdmin bootstraps the first admin account. Guarded by a deployment
// secret rather than a session, so it works on an empty database.
func (h *AuthHandler) SeedAdmin(w http.ResponseWriter, r *http.Request) {
	if h.cfg.SeedSecret == "" || r.Header.Get("Authorization") != "Bearer "+h.cfg.SeedSecret {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED")
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "First name, last name, email and password are required", "MISSING_FIELDS")
		return
	}

	user, err := h.authService.SeedAdmin(r.Context(), service.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			respondError(w, http.StatusConflict, "Admin user already exists", "EMAIL_EXISTS")
			return
		}
		respondError(w, http.StatusInternalServerError, "Error seeding admin user", "INTERNAL_ERROR")
		return
	}

	respondOK(w, http.StatusCreated, "Admin user created successfully", identityOf(user))
}
