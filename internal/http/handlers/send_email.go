package handlers

import (
	"net/http"

	"github.com/dropDatabas3/postjohn/internal/app"
	httpx "github.com/dropDatabas3/postjohn/internal/http"
	"github.com/dropDatabas3/postjohn/internal/observability/logger"
)

type SendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type SendEmailResponse struct {
	Message string `json:"message"`
}

// internalServerError es el único mensaje de error de esta ruta: cualquier
// falla (storage o relay) responde 500 con este body, sin detalle.
const internalServerError = "Internal Server Error"

// NewSendEmailHandler maneja POST /send-bulk-email.
// Semántica log-before-send: el EmailRecord se persiste ANTES del despacho y
// queda aunque el relay falle (audit log, no cola; sin rollback ni retry).
// El destinatario no se valida acá: el validador de credenciales no aplica a
// esta ruta.
func NewSendEmailHandler(c *app.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		log := logger.From(r.Context()).With(logger.Component("email.send"))

		var req SendEmailRequest
		if !httpx.ReadJSON(w, r, &req) {
			return
		}

		ctx := r.Context()

		// Campos faltantes no se chequean acá: violan el NOT NULL del
		// esquema y caen en el contrato 500 como cualquier falla de storage.
		rec, err := c.Store.AppendEmailRecord(ctx, req.To, req.Subject, req.Body)
		if err != nil {
			log.Error("append email record failed", logger.Err(err), logger.Recipient(req.To))
			httpx.WriteError(w, http.StatusInternalServerError, internalServerError)
			return
		}

		if err := c.Sender.Send(req.To, req.Subject, req.Body); err != nil {
			httpx.RecordEmailDispatch("failed")
			log.Error("dispatch failed", logger.Err(err),
				logger.Recipient(req.To), logger.String("record_id", rec.ID.String()))
			httpx.WriteError(w, http.StatusInternalServerError, internalServerError)
			return
		}

		httpx.RecordEmailDispatch("sent")
		log.Info("email dispatched",
			logger.Recipient(req.To), logger.String("record_id", rec.ID.String()))
		httpx.WriteJSON(w, http.StatusOK, SendEmailResponse{Message: "Email sent successfully"})
	}
}
