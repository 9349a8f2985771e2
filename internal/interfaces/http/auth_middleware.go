package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/session"
	"github.com/tu-usuario/crm-pro/pkg/jwt"
)

// Locals key para los claims completos en Fiber.
const LocalClaims = "claims"

// AuthMiddleware valida el Bearer Token JWT, verifica que la sesión no esté
// revocada contra el snapshot en memoria y deja los claims en c.Locals.
// Una sesión ausente o revocada responde 401 sin tocar ningún repositorio.
func AuthMiddleware(jwtSecret string, store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if store.Revoked(claims.SessionID) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_REVOKED", Message: "la sesión fue cerrada"})
		}
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// RequirePermission autoriza por código de permiso leído de los claims, sin
// consultar la DB. Debe usarse DESPUÉS de AuthMiddleware.
func RequirePermission(code string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: "sesión no encontrada"})
		}
		for _, p := range claims.Meta.Permissions {
			if p == code {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permiso insuficiente: " + code})
	}
}

// GetClaims devuelve los claims del contexto (después del middleware de auth).
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	v := c.Locals(LocalClaims)
	if v == nil {
		return nil
	}
	claims, _ := v.(*jwt.Claims)
	return claims
}

// GetUserID devuelve el UserID del contexto.
func GetUserID(c *fiber.Ctx) string {
	if claims := GetClaims(c); claims != nil {
		return claims.UserID
	}
	return ""
}

// GetTenantID devuelve el tenant del contexto. Todo acceso a datos parte de
// este valor, nunca de un tenant enviado por el cliente.
func GetTenantID(c *fiber.Ctx) string {
	if claims := GetClaims(c); claims != nil {
		return claims.Meta.TenantID
	}
	return ""
}

// GetSessionID devuelve el identificador de sesión del contexto.
func GetSessionID(c *fiber.Ctx) string {
	if claims := GetClaims(c); claims != nil {
		return claims.SessionID
	}
	return ""
}

// sessionMetadata convierte el bloque de claims al DTO de sesión.
func sessionMetadata(claims *jwt.Claims) dto.SessionMetadata {
	return dto.SessionMetadata{
		TenantID:        claims.Meta.TenantID,
		RoleID:          claims.Meta.RoleID,
		Permissions:     claims.Meta.Permissions,
		AccessibleRoles: claims.Meta.AccessibleRoles,
	}
}

// respondDomainError mapea los errores de dominio a códigos HTTP. Un recurso
// de otro tenant responde 404, no 403: la existencia no se filtra.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidLink):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionRevoked):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
