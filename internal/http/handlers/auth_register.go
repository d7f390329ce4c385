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

type AuthRegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthTokenResponse es la respuesta de /register y /login.
type AuthTokenResponse struct {
	Token string `json:"token"`
}

// NewAuthRegisterHandler maneja POST /register.
// Contrato: 201 {token} | 400 {error}. Los errores de storage también
// responden 400 con el mensaje (comportamiento heredado: este endpoint no
// distingue fallas de cliente y de servidor).
func NewAuthRegisterHandler(c *app.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		log := logger.From(r.Context()).With(logger.Component("auth.register"))

		var req AuthRegisterRequest
		if !httpx.ReadJSON(w, r, &req) {
			return
		}
		req.Email = strings.TrimSpace(strings.ToLower(req.Email))

		// Validación de forma antes de tocar storage
		if err := validation.ValidateCredentials(req.Email, req.Password); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx := r.Context()

		// Pre-check best effort; la garantía real es el unique index
		_, err := c.Store.FindUserByEmail(ctx, req.Email)
		if err == nil {
			httpx.WriteError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		if !errors.Is(err, core.ErrNotFound) {
			log.Error("register: find user failed", logger.Err(err))
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		hash, err := c.Hasher.Hash(req.Password)
		if err != nil {
			log.Error("register: hash failed", logger.Err(err))
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		u, err := c.Store.CreateUser(ctx, req.Email, hash)
		if err != nil {
			if core.IsDuplicateEmail(err) {
				// Carrera: otro registro ganó entre el pre-check y el insert
				httpx.WriteError(w, http.StatusBadRequest, "Email already exists")
				return
			}
			log.Error("register: create user failed", logger.Err(err))
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		token, _, err := c.Issuer.Issue(u.Email)
		if err != nil {
			log.Error("register: token issue failed", logger.Err(err))
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		log.Info("user registered", logger.UserID(u.ID.String()))
		httpx.WriteJSON(w, http.StatusCreated, AuthTokenResponse{Token: token})
	}
}
