package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/pkg/ctxutil"
)

// ActorHeader names the user on whose behalf the gateway forwards a request.
// Authentication happens upstream; the id is only attached to the revision
// trail.
const ActorHeader = "X-Actor-Id"

// Actor returns middleware that stores a well-formed X-Actor-Id in the
// context. Malformed values are rejected with 400.
func Actor() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(ActorHeader)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil || id == uuid.Nil {
				writeError(w, r, http.StatusBadRequest, "invalid "+ActorHeader+" header")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithActorID(r.Context(), id)))
		})
	}
}
