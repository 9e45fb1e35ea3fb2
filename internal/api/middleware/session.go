package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/buyitapp/buyit-server/internal/auth"
	"github.com/buyitapp/buyit-server/internal/service"
)

type contextKey string

const claimsKey contextKey = "sessionClaims"

// CookieName is the session cookie issued by the auth handlers.
const CookieName = "token"

// protectedPrefixes are the path prefixes gated by the session cookie.
var protectedPrefixes = []string{"/admin", "/dashboard", "/profile"}

func isProtected(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Session guards the protected path prefixes. Requests without a valid
// session cookie are redirected to the public root with any stale cookie
// cleared; a present-but-invalid token is treated the same as no token.
// Valid requests proceed with the decoded claims in the request context.
func Session(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isProtected(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			claims := claimsFromCookie(r, authService)
			if claims == nil {
				ClearSessionCookie(w)
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireAuth is the API flavor of the session guard: 401 instead of a
// redirect. Used for authenticated JSON endpoints.
func RequireAuth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := claimsFromCookie(r, authService)
			if claims == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"success":false,"message":"Unauthorized","error":"UNAUTHORIZED"}`))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func claimsFromCookie(r *http.Request, authService *service.AuthService) *auth.Claims {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	return authService.VerifyToken(cookie.Value)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims returns the decoded session claims injected by the guard.
func GetClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
