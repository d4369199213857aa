package middleware

import (
	"net/http"
	"strings"

	"github.com/shilpokotha/shilpokotha-backend/api/responses"
	pkgauth "github.com/shilpokotha/shilpokotha-backend/pkg/auth"
	"github.com/shilpokotha/shilpokotha-backend/pkg/config"
	pkgerrors "github.com/shilpokotha/shilpokotha-backend/pkg/errors"
	"github.com/shilpokotha/shilpokotha-backend/pkg/logger"
)

// RequireAuth rejects requests without a valid Bearer token and seeds
// the context with the authenticated user's ID.
func RequireAuth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			claims, err := pkgauth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeNotLoggedIn, err, "invalid access token"))
				return
			}

			userID := claims.UserID.String()
			ctx := WithUserID(r.Context(), userID)
			ctx = logg.WithUserID(ctx, userID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", pkgerrors.New(pkgerrors.CodeNotLoggedIn, "missing authorization header")
	}
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return "", pkgerrors.New(pkgerrors.CodeNotLoggedIn, "authorization header must be a bearer token")
	}
	token := strings.TrimSpace(header[7:])
	if token == "" {
		return "", pkgerrors.New(pkgerrors.CodeNotLoggedIn, "empty bearer token")
	}
	return token, nil
}
