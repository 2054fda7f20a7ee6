package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/solarquote/solarquote/pkg/log"
)

// tokenVerifier is a function that validates a Google ID Token.
type tokenVerifier func(ctx context.Context, rawIDToken string) (*oidc.IDToken, error)

func (s *Server) initVerifier() {
	provider, err := oidc.NewProvider(context.Background(), "https://accounts.google.com")
	if err != nil {
		log.Ctx(context.Background()).Error("failed to initialize Google OIDC provider", slog.Any("error", err))
		os.Exit(1)
	}
	s.verifier = provider.Verifier(&oidc.Config{ClientID: s.oidcAudience}).Verify
}

// authMiddleware validates the Authorization bearer token when an OIDC
// audience is configured. Without one the API is open, which is the local
// development mode.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = log.With(ctx, log.Ctx(ctx).With(slog.String("reqPath", r.URL.Path)))

		if s.bypassAuth {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeJSONError(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		idToken, err := s.verifier(ctx, token)
		if err != nil {
			log.Ctx(ctx).WarnContext(ctx, "token validation failed", slog.Any("error", err))
			writeJSONError(w, "invalid token", http.StatusUnauthorized)
			return
		}

		var claims struct {
			Email string `json:"email"`
		}
		if err := idToken.Claims(&claims); err != nil {
			log.Ctx(ctx).WarnContext(ctx, "failed to parse token claims", slog.Any("error", err))
			writeJSONError(w, "invalid token", http.StatusUnauthorized)
			return
		}

		if len(s.allowedEmails) > 0 && !s.isAllowedEmail(claims.Email) {
			log.Ctx(ctx).WarnContext(ctx, "email not allowed", slog.String("email", claims.Email))
			writeJSONError(w, "forbidden", http.StatusForbidden)
			return
		}

		ctx = log.With(ctx, log.Ctx(ctx).With(slog.String("email", claims.Email)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) isAllowedEmail(email string) bool {
	for _, allowed := range s.allowedEmails {
		if email == allowed {
			return true
		}
	}
	return false
}
