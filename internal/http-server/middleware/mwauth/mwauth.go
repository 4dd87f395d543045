package mwauth

import (
	"log/slog"
	"net/http"
	"strings"

	"eventPortal/internal/lib/api/response"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenChecker
type TokenChecker interface {
	Valid(token string) bool
}

// New gates routes behind a bearer token issued by the auth service.
func New(log *slog.Logger, checker TokenChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" || !checker.Valid(token) {
				log.Info("unauthorized request", slog.String("path", r.URL.Path))

				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))

				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimPrefix(header, prefix)
}
