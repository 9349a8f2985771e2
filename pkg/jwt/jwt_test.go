package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/crm-pro/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testEmail  = "ana@acme.test"
	testSessID = "00000000-0000-0000-0000-0000000000aa"
	testIssuer = "crm-pro-test"
)

func testMeta() pkgjwt.Metadata {
	return pkgjwt.Metadata{
		TenantID:        "00000000-0000-0000-0000-000000000002",
		RoleID:          "00000000-0000-0000-0000-000000000003",
		Permissions:     []string{"deal:read", "deal:write"},
		AccessibleRoles: []string{"00000000-0000-0000-0000-000000000004"},
	}
}

func TestJWT_GenerateAndParse_ConMetadata(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, testSessID, testMeta(), testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, testSessID, claims.SessionID)
	assert.Equal(t, testMeta().TenantID, claims.Meta.TenantID)
	assert.Equal(t, []string{"deal:read", "deal:write"}, claims.Meta.Permissions)
	assert.Len(t, claims.Meta.AccessibleRoles, 1)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, testSessID, testMeta(), testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, testSessID, testMeta(), testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testEmail, testSessID, testMeta(), testIssuer, 60)
	assert.Error(t, err)
}
