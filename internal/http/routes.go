package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/dropDatabas3/postjohn/internal/http/middlewares"
	jwtx "github.com/dropDatabas3/postjohn/internal/jwt"
)

// RouterDeps agrupa los handlers y opciones para armar el router.
type RouterDeps struct {
	Register stdhttp.Handler // POST /register
	Login    stdhttp.Handler // POST /login
	Send     stdhttp.Handler // POST /send-bulk-email
	Readyz   stdhttp.Handler // GET  /readyz
	Metrics  stdhttp.Handler // GET  /metrics (opcional)

	CORSAllowedOrigins []string

	// RequireBearer protege /send-bulk-email con token Bearer.
	// Default off: se preserva el comportamiento original (rutas abiertas).
	RequireBearer bool
	Issuer        *jwtx.Issuer
}

// NewRouter arma el router chi con la cadena de middlewares estándar:
// recover -> request-id -> cors -> metrics -> logging.
func NewRouter(deps RouterDeps) stdhttp.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("ok"))
	})
	if deps.Readyz != nil {
		r.Method(stdhttp.MethodGet, "/readyz", deps.Readyz)
	}
	if deps.Metrics != nil {
		r.Method(stdhttp.MethodGet, "/metrics", deps.Metrics)
	}

	r.Method(stdhttp.MethodPost, "/register", deps.Register)
	r.Method(stdhttp.MethodPost, "/login", deps.Login)

	send := deps.Send
	if deps.RequireBearer && deps.Issuer != nil {
		send = mw.RequireBearer(deps.Issuer)(send)
	}
	r.Method(stdhttp.MethodPost, "/send-bulk-email", send)

	// Preflight CORS para las rutas POST
	r.Options("/*", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusNoContent)
	})

	return mw.Chain(r,
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithCORS(deps.CORSAllowedOrigins),
		func(next stdhttp.Handler) stdhttp.Handler { return WithMetrics(next) },
		mw.WithLogging(),
	)
}
