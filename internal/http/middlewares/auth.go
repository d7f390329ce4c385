package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	jwtx "github.com/dropDatabas3/postjohn/internal/jwt"
)

type emailKey struct{}

// GetCallerEmail extrae el email del token validado ("" si la ruta no estaba
// protegida).
func GetCallerEmail(ctx context.Context) string {
	if v, ok := ctx.Value(emailKey{}).(string); ok {
		return v
	}
	return ""
}

// RequireBearer exige un token Bearer válido en Authorization.
// OJO: ninguna ruta lo usa por defecto (el servicio original no autenticaba
// nada); se activa con auth.require_bearer sobre /send-bulk-email.
func RequireBearer(issuer *jwtx.Issuer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			token := ""
			if len(raw) > 7 && strings.EqualFold(raw[:7], "Bearer ") {
				token = strings.TrimSpace(raw[7:])
			}

			claims, ok := issuer.Verify(token)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer realm="postjohn"`)
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
				return
			}

			ctx := context.WithValue(r.Context(), emailKey{}, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
