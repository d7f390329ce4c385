package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost es el cost factor por defecto del servicio.
const DefaultCost = 10

// Hasher encapsula el hasheo bcrypt con un cost fijo.
// bcrypt genera la salt por registro y la embebe en el hash.
type Hasher struct {
	Cost int
}

// NewHasher crea un Hasher. Cost fuera del rango válido cae a DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{Cost: cost}
}

// Hash devuelve el hash bcrypt del plaintext. Nunca loguear el plaintext.
func (h *Hasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", fmt.Errorf("empty password")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(b), nil
}

// Verify compara plaintext contra un hash almacenado.
// La comparación en tiempo constante la garantiza bcrypt.
func (h *Hasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
