package auth

import "errors"

// ErrInvalidToken lo devuelven los verificadores cuando el token no sirve
// (firma, expiración o usuario faltante).
var ErrInvalidToken = errors.New("invalid token")

// Claims representa la identidad extraída del token. UserID es el dueño de
// los eventos.
type Claims struct {
	UserID string
	Email  string
}
