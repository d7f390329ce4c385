package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dropDatabas3/postjohn/internal/app"
	httpx "github.com/dropDatabas3/postjohn/internal/http"
	"github.com/dropDatabas3/postjohn/internal/observability/logger"
	"github.com/dropDatabas3/postjohn/internal/store/core"
	"github.com/dropDatabas3/postjohn/internal/validation"
)

type AuthLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewAuthLoginHandler maneja POST /login.
// Contrato: 200 {token} | 401 {"error":"Invalid credentials"} | 400 {error}.
// Email desconocido y password incorrecto responden EXACTAMENTE lo mismo:
// no filtramos cuál de los dos falló.
func NewAuthLoginHandler(c *app.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		log := logger.From(r.Context()).With(logger.Component("auth.login"))

		var req AuthLoginRequest
		if !httpx.ReadJSON(w, r, &req) {
			return
		}
		req.Email = strings.TrimSpace(strings.ToLower(req.Email))

		if err := validation.ValidateCredentials(req.Email, req.Password); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		u, err := c.Store.FindUserByEmail(r.Context(), req.Email)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			log.Error("login: find user failed", logger.Err(err))
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		if !c.Hasher.Verify(req.Password, u.PasswordHash) {
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, _, err := c.Issuer.Issue(u.Email)
		if err != nil {
			log.Error("login: token issue failed", logger.Err(err))
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		httpx.WriteJSON(w, http.StatusOK, AuthTokenResponse{Token: token})
	}
}
