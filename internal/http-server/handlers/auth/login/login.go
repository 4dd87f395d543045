package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventPortal/internal/auth"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

// LoginRequest carries either a credential pair or an identity provider
// name; provider wins when both are present.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Provider string `json:"provider"`
}

type LoginResponse struct {
	response.Response
	Token string `json:"token,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authenticator
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	LoginSSO(ctx context.Context, provider string) (string, error)
}

func New(log *slog.Logger, authenticator Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log = log.With(slog.String("op", op))

		var req LoginRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		var token string
		if req.Provider != "" {
			token, err = authenticator.LoginSSO(r.Context(), req.Provider)
		} else {
			token, err = authenticator.Login(r.Context(), req.Email, req.Password)
		}

		if err != nil {
			switch {
			case errors.Is(err, auth.ErrEmptyCredentials):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("email and password are required"))
			case errors.Is(err, auth.ErrUnknownProvider):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown identity provider"))
			default:
				log.Error("failed to authenticate", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to authenticate"))
			}

			return
		}

		log.Info("user authenticated")

		render.JSON(w, r, LoginResponse{
			Response: response.OK(),
			Token:    token,
		})
	}
}
