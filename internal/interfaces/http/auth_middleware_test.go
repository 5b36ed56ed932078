package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/refnet-api/internal/application/session"
	apphttp "github.com/jhoicas/refnet-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/refnet-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "finanzas@refnet.test"
	testIssuer    = "refnet-test"
)

// guardedApp expone GET /guarded detrás de AuthMiddleware + RequireRole(roles...).
// El handler devuelve la sesión que vería un caso de uso.
func guardedApp(roles ...session.Role) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(roles...),
		func(c *fiber.Ctx) error {
			s := apphttp.GetSession(c)
			return c.JSON(fiber.Map{"user_id": s.UserID, "email": s.Email, "role": string(s.Role)})
		},
	)
	return app
}

func bearer(t *testing.T, role string, expMinutes int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, role, testIssuer, expMinutes)
	require.NoError(t, err)
	return "Bearer " + tok
}

func get(t *testing.T, app *fiber.App, authorization string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware + RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRutaProtegida_MatrizDeAcceso(t *testing.T) {
	cases := []struct {
		name     string
		allowed  []session.Role
		header   func(t *testing.T) string
		wantCode int
		wantBody string
	}{
		{
			name:     "finanzas entra a ruta de finanzas",
			allowed:  []session.Role{session.RoleFinanceManager},
			header:   func(t *testing.T) string { return bearer(t, "finance_manager", 60) },
			wantCode: http.StatusOK,
		},
		{
			name:     "proveedor entra a ruta multi-rol",
			allowed:  []session.Role{session.RoleFinanceManager, session.RoleSupplier},
			header:   func(t *testing.T) string { return bearer(t, "supplier", 60) },
			wantCode: http.StatusOK,
		},
		{
			name:     "conductor no puede aprobar reposiciones",
			allowed:  []session.Role{session.RoleFinanceManager},
			header:   func(t *testing.T) string { return bearer(t, "driver", 60) },
			wantCode: http.StatusForbidden,
			wantBody: "FORBIDDEN",
		},
		{
			name:     "técnico bloqueado en ruta de conductor",
			allowed:  []session.Role{session.RoleDriver},
			header:   func(t *testing.T) string { return bearer(t, "technician", 60) },
			wantCode: http.StatusForbidden,
			wantBody: "FORBIDDEN",
		},
		{
			name:     "token sin rol",
			allowed:  []session.Role{session.RoleFinanceManager},
			header:   func(t *testing.T) string { return bearer(t, "", 60) },
			wantCode: http.StatusUnauthorized,
			wantBody: "MISSING_ROLE",
		},
		{
			name:     "sin header",
			allowed:  []session.Role{session.RoleFinanceManager},
			header:   func(*testing.T) string { return "" },
			wantCode: http.StatusUnauthorized,
			wantBody: "MISSING_TOKEN",
		},
		{
			name:     "esquema distinto de Bearer",
			allowed:  []session.Role{session.RoleFinanceManager},
			header:   func(*testing.T) string { return "Basic dXNlcjpwYXNz" },
			wantCode: http.StatusUnauthorized,
			wantBody: "INVALID_TOKEN",
		},
		{
			name:     "token malformado",
			allowed:  []session.Role{session.RoleFinanceManager},
			header:   func(*testing.T) string { return "Bearer token.invalido.aqui" },
			wantCode: http.StatusUnauthorized,
			wantBody: "INVALID_TOKEN",
		},
		{
			name:     "token expirado",
			allowed:  []session.Role{session.RoleFinanceManager},
			header:   func(t *testing.T) string { return bearer(t, "finance_manager", -5) },
			wantCode: http.StatusUnauthorized,
			wantBody: "INVALID_TOKEN",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := get(t, guardedApp(tc.allowed...), tc.header(t))
			assert.Equal(t, tc.wantCode, code, body)
			if tc.wantBody != "" {
				assert.Contains(t, body, tc.wantBody)
			}
		})
	}
}

func TestGetSession_ArmaSesionDesdeClaims(t *testing.T) {
	code, body := get(t, guardedApp(session.RoleFinanceManager), bearer(t, "finance_manager", 60))
	require.Equal(t, http.StatusOK, code)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, testUserID, got["user_id"])
	assert.Equal(t, testEmail, got["email"])
	assert.Equal(t, "finance_manager", got["role"])
}
