package auth

import (
	"context"
	"log/slog"
	"net/http"

	"recipebox/internal/infrastructure/session"
)

// CookieName is the cookie the opaque session token travels in.
const CookieName = "session_token"

type userIDKey struct{}

// WithUserID returns a context carrying the signed-in user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext extracts the signed-in user id set by SessionMiddleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}

// SessionMiddleware resolves the session cookie to a user id. Requests
// without a valid session get 401 with an empty body.
func SessionMiddleware(sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil {
				slog.Warn("rejected request with invalid session", "path", r.URL.Path)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
