package core

import "context"

// Repository es el contrato de persistencia del servicio.
// Dos colecciones independientes: usuarios y audit log de emails.
type Repository interface {
	// FindUserByEmail retorna ErrNotFound si el email no existe.
	FindUserByEmail(ctx context.Context, email string) (*User, error)

	// CreateUser inserta un usuario nuevo. La unicidad del email la
	// garantiza el unique index del storage, no el caller: ante una
	// carrera retorna ErrDuplicateEmail.
	CreateUser(ctx context.Context, email, passwordHash string) (*User, error)

	// AppendEmailRecord agrega una entrada al audit log de envíos.
	AppendEmailRecord(ctx context.Context, to, subject, body string) (*EmailRecord, error)

	// Ping verifica conectividad (usado por /readyz).
	Ping(ctx context.Context) error
}
