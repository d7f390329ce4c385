package core

import (
	"time"

	"github.com/google/uuid"
)

// User es un registro de la tabla app_user. El email es la identidad
// (unique index); nunca guardamos el password en claro.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// EmailRecord es una entrada del audit log de envíos (tabla email_log).
// Se escribe ANTES de intentar el despacho y nunca se actualiza ni borra:
// es un log, no una cola.
type EmailRecord struct {
	ID        uuid.UUID
	To        string
	Subject   string
	Body      string
	CreatedAt time.Time
}
