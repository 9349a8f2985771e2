package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Metadata es el bloque de metadatos de sesión que viaja dentro del token.
// Equivale al app_metadata que el frontend lee sin consultar la DB: tenant,
// rol, códigos de permiso y roles hijos accesibles vía la jerarquía.
type Metadata struct {
	TenantID        string   `json:"tenant_id"`
	RoleID          string   `json:"role_id"`
	Permissions     []string `json:"permissions"`
	AccessibleRoles []string `json:"accessible_roles"`
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// SessionID identifica la sesión en el registro (revocación vía eventos).
type Claims struct {
	jwt.RegisteredClaims
	UserID    string   `json:"user_id"`
	Email     string   `json:"email"`
	SessionID string   `json:"session_id"`
	Meta      Metadata `json:"app_metadata"`
}

// Generate genera un token JWT firmado con el usuario, la sesión y el bloque de metadatos.
func Generate(secret, userID, email, sessionID string, meta Metadata, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    userID,
		Email:     email,
		SessionID: sessionID,
		Meta:      meta,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims completos.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
