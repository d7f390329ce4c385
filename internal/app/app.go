// Package app define el contenedor de dependencias que se arma una sola vez
// en main y se inyecta a los handlers. Nada lee env ad hoc después del boot.
package app

import (
	"github.com/dropDatabas3/postjohn/internal/email"
	"github.com/dropDatabas3/postjohn/internal/jwt"
	"github.com/dropDatabas3/postjohn/internal/security/password"
	"github.com/dropDatabas3/postjohn/internal/store/core"
)

type Container struct {
	Store  core.Repository
	Issuer *jwt.Issuer
	Hasher *password.Hasher
	Sender email.Sender
}
