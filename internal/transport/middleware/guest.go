package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/AFTLlimited25/Platrr-Business/pkg/ctxutil"
)

// GuestSessionHeader carries the guest session id in both directions.
const GuestSessionHeader = "X-Guest-Session"

// GuestSession gives every unauthenticated request a guest session. An
// incoming session id is reused when it parses; otherwise a fresh one is
// issued. The effective id is echoed back so the client can keep it.
// Authenticated requests are left untouched.
func GuestSession() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			id, err := uuid.Parse(r.Header.Get(GuestSessionHeader))
			if err != nil || id == uuid.Nil {
				id = uuid.New()
			}
			w.Header().Set(GuestSessionHeader, id.String())
			next.ServeHTTP(w, r.WithContext(ctxutil.WithGuestSession(r.Context(), id)))
		})
	}
}
