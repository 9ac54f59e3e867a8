package http

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-upload-keeper/internal/logger"
	"github.com/MKhiriev/go-upload-keeper/internal/utils"
)

const internalKeyHeader = "X-Internal-Key"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the parsed token in the
// request context under [utils.TokenCtxKey] before delegating to the next
// handler.
//
// Requests without a valid token are rejected with 401 and an ACCESS_DENIED
// body; the next handler is not called.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Debug().Str("subject", token.Subject).Msg("caller authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithToken(ctx, token)))
	})
}

// requirePermission rejects callers whose token does not grant permission.
// It must run after auth.
func (h *Handler) requirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := utils.GetTokenFromContext(r.Context())
			if !ok {
				h.writeError(w, r, ErrEmptyAuthorizationHeader)
				return
			}

			if !token.HasPermission(permission) {
				h.writeError(w, r, fmt.Errorf("%w: %s", ErrMissingPermission, permission))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// internalOnly admits requests whose X-Internal-Key header equals the
// configured internal key. Without a configured key every request is
// rejected.
func (h *Handler) internalOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.internalKey == "" {
			h.writeError(w, r, ErrInternalAccessDisabled)
			return
		}

		key := r.Header.Get(internalKeyHeader)
		if key == "" {
			h.writeError(w, r, ErrEmptyInternalKey)
			return
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(h.internalKey)) != 1 {
			h.writeError(w, r, ErrWrongInternalKey)
			return
		}

		next.ServeHTTP(w, r)
	})
}
