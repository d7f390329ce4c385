package handlers

import (
	"net/http"

	"github.com/dropDatabas3/postjohn/internal/app"
	httpx "github.com/dropDatabas3/postjohn/internal/http"
	"github.com/dropDatabas3/postjohn/internal/observability/logger"
)

// NewReadyzHandler maneja GET /readyz: ping a la DB + self-check del issuer
// (firmar y verificar un token efímero en memoria).
func NewReadyzHandler(c *app.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.Store.Ping(r.Context()); err != nil {
			logger.From(r.Context()).Error("readyz: db unavailable", logger.Err(err))
			httpx.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}

		token, _, err := c.Issuer.Issue("selfcheck@postjohn.local")
		if err != nil {
			httpx.WriteError(w, http.StatusServiceUnavailable, "token selfcheck failed")
			return
		}
		if _, ok := c.Issuer.Verify(token); !ok {
			httpx.WriteError(w, http.StatusServiceUnavailable, "token selfcheck failed")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
