// Package jwt emite y verifica los bearer tokens del servicio.
// Firma HS256 con un secret compartido; el payload lleva el email del
// usuario como identidad. No hay revocación: validez = firma + expiry.
package jwt

import (
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTTL es el TTL por defecto de los tokens (1 hora).
const DefaultAccessTTL = time.Hour

// Claims es el payload decodificado de un token válido.
type Claims struct {
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Issuer firma y verifica tokens con el secret compartido.
type Issuer struct {
	Iss       string
	Secret    []byte
	AccessTTL time.Duration

	// now es inyectable para tests de expiry.
	now func() time.Time
}

// NewIssuer crea un Issuer con TTL default de 1h.
func NewIssuer(iss, secret string) *Issuer {
	return &Issuer{
		Iss:       iss,
		Secret:    []byte(secret),
		AccessTTL: DefaultAccessTTL,
		now:       time.Now,
	}
}

func (i *Issuer) clock() time.Time {
	if i.now != nil {
		return i.now().UTC()
	}
	return time.Now().UTC()
}

// Issue emite un token firmado cuyo payload contiene el email del usuario.
// Devuelve el token y su instante de expiración (now + AccessTTL).
func (i *Issuer) Issue(email string) (string, time.Time, error) {
	now := i.clock()
	ttl := i.AccessTTL
	if ttl <= 0 {
		ttl = DefaultAccessTTL
	}
	exp := now.Add(ttl)

	claims := jwtv5.MapClaims{
		"iss":   i.Iss,
		"email": email,
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   exp.Unix(),
	}
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	tk.Header["typ"] = "JWT"

	signed, err := tk.SignedString(i.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify decodifica y valida un token. Retorna (claims, true) si la firma es
// válida y no expiró; (nil, false) ante cualquier falla (firma inválida,
// expirado, malformado, alg inesperado). Nunca propaga el error: el caller
// solo necesita saber si el token sirve o no.
func (i *Issuer) Verify(token string) (*Claims, bool) {
	parsed, err := jwtv5.Parse(token, func(t *jwtv5.Token) (any, error) {
		return i.Secret, nil
	},
		jwtv5.WithValidMethods([]string{jwtv5.SigningMethodHS256.Alg()}),
		jwtv5.WithTimeFunc(i.clock),
	)
	if err != nil || !parsed.Valid {
		return nil, false
	}

	mc, ok := parsed.Claims.(jwtv5.MapClaims)
	if !ok {
		return nil, false
	}
	email, _ := mc["email"].(string)
	if email == "" {
		return nil, false
	}

	out := &Claims{Email: email}
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, true
}
