package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/buyitapp/buyit-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details []string        `json:"details"`
	ID      string          `json:"id"`
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

func signup(t *testing.T, ts *testutil.TestServer, email string) *http.Cookie {
	t.Helper()
	resp := postJSON(t, ts.APIURL("/auth/signup"), map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      email,
		"password":   "Abcdef1!",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	return cookie
}

func TestAuthHandler_Signup(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful signup",
			request: map[string]string{
				"first_name": "Ada",
				"last_name":  "Lovelace",
				"email":      "Ada@Example.com",
				"password":   "Abcdef1!",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var env envelope
				testutil.DecodeJSON(t, resp, &env)
				assert.True(t, env.Success)
				assert.Contains(t, string(env.Data), `"ada@example.com"`)
				assert.NotContains(t, string(env.Data), "Abcdef1!")

				cookie := sessionCookie(resp)
				require.NotNil(t, cookie)
				assert.NotEmpty(t, cookie.Value)
				assert.True(t, cookie.HttpOnly)
				assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
				assert.Equal(t, 3600, cookie.MaxAge)

				// Stored hash is never the submitted plaintext.
				user, err := ts.Repos.User.GetByEmail(context.Background(), "ada@example.com")
				require.NoError(t, err)
				assert.NotEqual(t, "Abcdef1!", user.PasswordHash)
			},
		},
		{
			name: "duplicate email is a conflict",
			request: map[string]string{
				"first_name": "Ada",
				"last_name":  "Lovelace",
				"email":      "ada@example.com",
				"password":   "Abcdef1!",
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "missing fields",
			request: map[string]string{
				"first_name": "Ada",
				"email":      "someone@example.com",
				"password":   "Abcdef1!",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "malformed email",
			request: map[string]string{
				"first_name": "Ada",
				"last_name":  "Lovelace",
				"email":      "not-an-email",
				"password":   "Abcdef1!",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "weak password lists every violation",
			request: map[string]string{
				"first_name": "Ada",
				"last_name":  "Lovelace",
				"email":      "weak@example.com",
				"password":   "short",
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var env envelope
				testutil.DecodeJSON(t, resp, &env)
				assert.Equal(t, "WEAK_PASSWORD", env.Error)
				assert.Len(t, env.Details, 4) // has lowercase, misses the rest
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.APIURL("/auth/signup"), tt.request)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)
	signup(t, ts, "login@example.com")

	t.Run("successful login", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "login@example.com",
			"password": "Abcdef1!",
		})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		cookie := sessionCookie(resp)
		require.NotNil(t, cookie)
		assert.NotEmpty(t, cookie.Value)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "login@example.com",
			"password": "Wrong1!pass",
		})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		var env envelope
		testutil.DecodeJSON(t, resp, &env)
		assert.Equal(t, "Invalid email or password", env.Message)
		assert.Nil(t, sessionCookie(resp))
	})

	t.Run("unknown email gets the same message", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "nobody@example.com",
			"password": "Abcdef1!",
		})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		var env envelope
		testutil.DecodeJSON(t, resp, &env)
		assert.Equal(t, "Invalid email or password", env.Message)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	ts := testutil.NewTestServer(t)

	// No session required; logout is idempotent.
	resp, err := http.Post(ts.APIURL("/auth/logout"), "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 1)
}

func TestAuthHandler_Verify(t *testing.T) {
	ts := testutil.NewTestServer(t)
	cookie := signup(t, ts, "verify@example.com")

	t.Run("valid cookie", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, ts.APIURL("/auth/verify"), nil)
		req.AddCookie(cookie)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var env envelope
		testutil.DecodeJSON(t, resp, &env)
		assert.Contains(t, string(env.Data), "verify@example.com")
	})

	t.Run("no cookie", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/auth/verify"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage cookie", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, ts.APIURL("/auth/verify"), nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "garbage"})
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthHandler_PasswordResetFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)
	signup(t, ts, "reset@example.com")

	t.Run("unknown email", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/password-reset"), map[string]string{
			"email": "nobody@example.com",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	resp := postJSON(t, ts.APIURL("/auth/password-reset"), map[string]string{
		"email": "reset@example.com",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	sent := ts.Mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "reset@example.com", sent[0].To)

	user, err := ts.Repos.User.GetByEmail(context.Background(), "reset@example.com")
	require.NoError(t, err)
	require.NotNil(t, user.PasswordResetToken)
	token := *user.PasswordResetToken
	assert.True(t, strings.Contains(sent[0].Body, token))

	t.Run("mismatched confirmation", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/password-reset/"+token), map[string]string{
			"create_password":  "NewPass1!",
			"confirm_password": "Other1!pw",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("weak replacement password", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/password-reset/"+token), map[string]string{
			"create_password":  "weak",
			"confirm_password": "weak",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid token", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/password-reset/not-a-token"), map[string]string{
			"create_password":  "NewPass1!",
			"confirm_password": "NewPass1!",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("successful reset replaces the password", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/password-reset/"+token), map[string]string{
			"create_password":  "NewPass1!",
			"confirm_password": "NewPass1!",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		login := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "reset@example.com",
			"password": "NewPass1!",
		})
		defer login.Body.Close()
		assert.Equal(t, http.StatusOK, login.StatusCode)

		oldLogin := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "reset@example.com",
			"password": "Abcdef1!",
		})
		defer oldLogin.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, oldLogin.StatusCode)
	})
}

func TestAuthHandler_RecentUsers(t *testing.T) {
	ts := testutil.NewTestServer(t)
	signup(t, ts, "recent1@example.com")
	signup(t, ts, "recent2@example.com")

	resp, err := http.Get(ts.APIURL("/auth/recent-users"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var env envelope
	testutil.DecodeJSON(t, resp, &env)

	var data struct {
		Count int               `json:"count"`
		Users []json.RawMessage `json:"users"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 2, data.Count)
	assert.Len(t, data.Users, 2)
}

func TestAuthHandler_SeedAdmin(t *testing.T) {
	ts := testutil.NewTestServer(t)

	body := map[string]string{
		"first_name": "Sean",
		"last_name":  "Imayi",
		"email":      "admin@buyitapp.com",
		"password":   "Admin22224!",
	}

	t.Run("rejects wrong secret", func(t *testing.T) {
		payload, _ := json.Marshal(body)
		req, _ := http.NewRequest(http.MethodPost, ts.APIURL("/admin/seed"), bytes.NewReader(payload))
		req.Header.Set("Authorization", "Bearer wrong")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("creates once then conflicts", func(t *testing.T) {
		payload, _ := json.Marshal(body)
		req, _ := http.NewRequest(http.MethodPost, ts.APIURL("/admin/seed"), bytes.NewReader(payload))
		req.Header.Set("Authorization", "Bearer "+ts.Config.SeedSecret)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		payload2, _ := json.Marshal(body)
		req2, _ := http.NewRequest(http.MethodPost, ts.APIURL("/admin/seed"), bytes.NewReader(payload2))
		req2.Header.Set("Authorization", "Bearer "+ts.Config.SeedSecret)
		resp2, err := http.DefaultClient.Do(req2)
		require.NoError(t, err)
		defer resp2.Body.Close()
		assert.Equal(t, http.StatusConflict, resp2.StatusCode)
	})
}

func TestAuthHandler_DeleteUser(t *testing.T) {
	ts := testutil.NewTestServer(t)
	signup(t, ts, "todelete@example.com")

	user, err := ts.Repos.User.GetByEmail(context.Background(), "todelete@example.com")
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodDelete, ts.APIURL("/users/"+user.ID.String()), nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The response identifies the deleted account, like the lead deletes do.
	var env envelope
	testutil.DecodeJSON(t, resp, &env)
	assert.Equal(t, `"todelete@example.com"`, string(env.Data))

	// Gone means gone.
	req2, _ := http.NewRequest(http.MethodDelete, ts.APIURL("/users/"+user.ID.String()), nil)
	resp2, err := http.DefaultClient.Do(req2)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}
