package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims que emite el backend en el token de acceso (sub = email del usuario).
type Claims struct {
	jwt.RegisteredClaims
}

// Generate genera un token firmado HS256 para subject. Lo usan fixtures y tests;
// el backend real es quien emite las credenciales en producción.
func Generate(secret, subject string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Inspect decodifica los claims SIN verificar la firma. Este servicio no conoce el secreto
// del backend; solo lee metadatos (exp) para evitar llamadas inútiles. La validación
// real siempre la hace el backend.
func Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, fmt.Errorf("jwt: token ilegible: %w", err)
	}
	return claims, nil
}

// Expired informa si el token es un JWT legible cuyo exp ya pasó respecto a now.
// Tokens opacos o sin exp devuelven false: la decisión queda para el backend.
func Expired(tokenString string, now time.Time) bool {
	claims, err := Inspect(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
