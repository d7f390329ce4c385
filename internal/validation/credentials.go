// Package validation contiene las reglas de forma para credenciales.
// Son funciones puras: ningún acceso a storage, ningún side effect.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Forma local@dominio.tld: parte local sin espacios, dominio sin espacios
// con al menos un punto. No intentamos RFC 5322 completo.
var emailRE = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// PasswordPolicy define los requisitos mínimos de un password.
type PasswordPolicy struct {
	MinLength    int
	RequireUpper bool
	RequireLower bool
	RequireDigit bool
}

// DefaultPasswordPolicy es la política del servicio: >=8 chars, al menos
// una minúscula, una mayúscula y un dígito.
var DefaultPasswordPolicy = PasswordPolicy{
	MinLength:    8,
	RequireUpper: true,
	RequireLower: true,
	RequireDigit: true,
}

// ValidationError describe la primera regla violada.
// Field es "email" o "password"; Reasons son slugs estables para el cliente.
type ValidationError struct {
	Field   string
	Reasons []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, strings.Join(e.Reasons, ", "))
}

// ValidEmail chequea la forma del email.
func ValidEmail(email string) bool {
	return emailRE.MatchString(email)
}

// Validate evalúa un password contra la política y devuelve los motivos de
// rechazo (vacío si pasa).
func (p PasswordPolicy) Validate(s string) (ok bool, reasons []string) {
	if len([]rune(s)) < p.MinLength {
		reasons = append(reasons, "too_short")
	}
	var hasU, hasL, hasD bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasU = true
		case unicode.IsLower(r):
			hasL = true
		case unicode.IsDigit(r):
			hasD = true
		}
	}
	if p.RequireLower && !hasL {
		reasons = append(reasons, "missing_lower")
	}
	if p.RequireUpper && !hasU {
		reasons = append(reasons, "missing_upper")
	}
	if p.RequireDigit && !hasD {
		reasons = append(reasons, "missing_digit")
	}
	return len(reasons) == 0, reasons
}

// ValidateCredentials valida email y password juntos, cortando en la primera
// regla violada (email primero). Retorna *ValidationError o nil.
func ValidateCredentials(email, password string) error {
	if !ValidEmail(email) {
		return &ValidationError{Field: "email", Reasons: []string{"malformed"}}
	}
	if ok, reasons := DefaultPasswordPolicy.Validate(password); !ok {
		return &ValidationError{Field: "password", Reasons: reasons}
	}
	return nil
}
