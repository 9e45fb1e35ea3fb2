package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/buyitapp/buyit-server/internal/api/middleware"
	"github.com/buyitapp/buyit-server/internal/auth"
	"github.com/buyitapp/buyit-server/internal/config"
	"github.com/buyitapp/buyit-server/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func clearedCookie(resp *http.Response) bool {
	for _, c := range resp.Cookies() {
		if c.Name == middleware.CookieName && c.Value == "" && c.MaxAge < 1 {
			return true
		}
	}
	return false
}

func TestSession_ProtectedPrefixes(t *testing.T) {
	cfg := &config.Config{JWTSecret: "session-test-secret", JWTDuration: time.Hour}
	authService := service.NewAuthService(nil, nil, cfg)

	identity := auth.Identity{
		ID:        uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}

	var seen *auth.Claims
	r := chi.NewRouter()
	r.Use(middleware.Session(authService))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("public"))
	})
	r.Get("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		seen = claims
		w.Write([]byte("dashboard"))
	})

	server := httptest.NewServer(r)
	defer server.Close()
	client := noRedirectClient()

	t.Run("unprotected path passes through untouched", func(t *testing.T) {
		resp, err := client.Get(server.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Cookies())
	})

	t.Run("no cookie redirects to root and clears cookie", func(t *testing.T) {
		resp, err := client.Get(server.URL + "/dashboard")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
		assert.True(t, clearedCookie(resp))
	})

	t.Run("expired token treated as no token", func(t *testing.T) {
		expired, err := auth.GenerateToken(cfg.JWTSecret, -time.Minute, identity)
		require.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, server.URL+"/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: expired})
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.True(t, clearedCookie(resp))
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		forged, err := auth.GenerateToken("other-secret", time.Hour, identity)
		require.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, server.URL+"/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: forged})
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	})

	t.Run("valid token proceeds with identity in context", func(t *testing.T) {
		token, err := auth.GenerateToken(cfg.JWTSecret, time.Hour, identity)
		require.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, server.URL+"/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, seen)
		assert.Equal(t, identity.ID.String(), seen.UserID)
		assert.Equal(t, identity.Email, seen.Email)
		assert.Equal(t, identity.FirstName, seen.FirstName)
	})
}
