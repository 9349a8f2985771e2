package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/tu-usuario/crm-pro/internal/application/auth"
	apphttp "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	"github.com/tu-usuario/crm-pro/internal/session"
	pkgjwt "github.com/tu-usuario/crm-pro/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testTenantID  = "00000000-0000-0000-0000-000000000002"
	testSessionID = "00000000-0000-0000-0000-000000000003"
	testIssuer    = "crm-pro-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con una ruta protegida
// cuyo handler incrementa fetches: permite verificar que un guard que corta
// en 401/403 nunca dispara la consulta de datos.
func buildTestApp(store *session.Store, fetches *atomic.Int64, permission string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret, store)}
	if permission != "" {
		handlers = append(handlers, apphttp.RequirePermission(permission))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		fetches.Add(1)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":     true,
			"tenant": apphttp.GetTenantID(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

// tokenWithPermissions genera un JWT con los permisos indicados.
func tokenWithPermissions(t *testing.T, perms ...string) string {
	t.Helper()
	meta := pkgjwt.Metadata{
		TenantID:    testTenantID,
		RoleID:      "role-1",
		Permissions: perms,
	}
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "ana@acme.test", testSessionID, meta, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinToken_401YCeroConsultas(t *testing.T) {
	var fetches atomic.Int64
	app := buildTestApp(session.NewStore(), &fetches, "")

	resp := doRequest(t, app, "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int64(0), fetches.Load(), "sin sesión no debe dispararse ninguna consulta de datos")
}

func TestAuthMiddleware_TokenMalFormado_Retorna401(t *testing.T) {
	var fetches atomic.Int64
	app := buildTestApp(session.NewStore(), &fetches, "")

	resp := doRequest(t, app, "Bearer no-es-un-jwt")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int64(0), fetches.Load())
}

func TestAuthMiddleware_TokenValido_DejaPasarYCargaTenant(t *testing.T) {
	var fetches atomic.Int64
	app := buildTestApp(session.NewStore(), &fetches, "")

	resp := doRequest(t, app, tokenWithPermissions(t))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), fetches.Load())
}

func TestAuthMiddleware_SesionRevocada_Retorna401(t *testing.T) {
	var fetches atomic.Int64
	store := session.NewStore()
	store.MarkRevoked(testSessionID)
	app := buildTestApp(store, &fetches, "")

	resp := doRequest(t, app, tokenWithPermissions(t))

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int64(0), fetches.Load(), "una sesión revocada no debe llegar al handler")
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard de permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_ConPermiso_DejaPasar(t *testing.T) {
	var fetches atomic.Int64
	app := buildTestApp(session.NewStore(), &fetches, "deal:read")

	resp := doRequest(t, app, tokenWithPermissions(t, "deal:read", "deal:write"))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequirePermission_SinPermiso_Retorna403(t *testing.T) {
	var fetches atomic.Int64
	app := buildTestApp(session.NewStore(), &fetches, "deal:write")

	resp := doRequest(t, app, tokenWithPermissions(t, "deal:read"))

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, int64(0), fetches.Load())
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

type noopSessions struct{}

func (noopSessions) Save(_ context.Context, _ string, _ session.Data, _ time.Duration) error {
	return nil
}

func (noopSessions) Revoke(_ context.Context, _ string) error { return nil }

// El logout debe revocar en el snapshot de este proceso sin esperar la vuelta
// del evento por el bus: la siguiente petición con el mismo token ya es 401.
func TestLogout_RevocaLaSesionEnElProcesoDeInmediato(t *testing.T) {
	store := session.NewStore()
	authUC := appauth.NewAuthUseCase(nil, nil, nil, noopSessions{}, appauth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	authHandler := apphttp.NewAuthHandler(authUC, store)

	var fetches atomic.Int64
	app := fiber.New()
	app.Post("/logout", apphttp.AuthMiddleware(testJWTSecret, store), authHandler.Logout)
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret, store), func(c *fiber.Ctx) error {
		fetches.Add(1)
		return c.SendStatus(fiber.StatusOK)
	})

	token := tokenWithPermissions(t)

	logoutReq := httptest.NewRequest(http.MethodPost, "/logout", nil)
	logoutReq.Header.Set("Authorization", token)
	logoutResp, err := app.Test(logoutReq, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, logoutResp.StatusCode)

	resp := doRequest(t, app, token)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.True(t, store.Revoked(testSessionID))
	assert.Equal(t, int64(0), fetches.Load(), "un token de sesión cerrada no debe llegar al handler")
}
