package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Abhishek-ak7/overseas-site-sub002/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWTConfig(t *testing.T) {
	t.Helper()
	previous := config.AppConfig
	config.AppConfig = &config.Config{JWTKey: "test-secret", JWTExpiryHours: 24}
	t.Cleanup(func() { config.AppConfig = previous })
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("userId").(uint)
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{"user_id": userID})
	})
	return app
}

func TestJWTMiddlewareRoundTrip(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateJWT(7, "Asha Verma", "USER", "asha@example.com")
	require.NoError(t, err)

	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	setupJWTConfig(t)

	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsGarbageToken(t *testing.T) {
	setupJWTConfig(t)

	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func newOptionalApp() *fiber.App {
	app := fiber.New()
	app.Get("/open", OptionalJWT, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("userId").(uint)
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{"user_id": userID})
	})
	return app
}

func TestOptionalJWTAttachesIdentity(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateJWT(42, "Asha Verma", "USER", "asha@example.com")
	require.NoError(t, err)

	app := newOptionalApp()

	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(42), data["user_id"])
}

func TestOptionalJWTContinuesAnonymously(t *testing.T) {
	setupJWTConfig(t)

	app := newOptionalApp()

	// No header at all
	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A broken token degrades to guest rather than failing the request
	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["user_id"])
}

func newAdminApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin", JWTMiddleware, AdminOnly, func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})
	return app
}

func TestAdminOnlyUsesRoleClaim(t *testing.T) {
	setupJWTConfig(t)

	app := newAdminApp()

	adminToken, err := GenerateJWT(1, "Site Admin", "ADMIN", "admin@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	userToken, err := GenerateJWT(2, "Asha Verma", "USER", "asha@example.com")
	require.NoError(t, err)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)

	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
