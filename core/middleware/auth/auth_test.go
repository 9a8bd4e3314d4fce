package auth_test

import (
	"net/http/httptest"
	"testing"

	"genie-graph/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: key}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestNew(t *testing.T) {
	t.Run("Valid key", func(t *testing.T) {
		app := setupApp("secret")

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(auth.Header, "secret")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Wrong key", func(t *testing.T) {
		app := setupApp("secret")

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(auth.Header, "nope")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Missing key", func(t *testing.T) {
		app := setupApp("secret")

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Auth disabled", func(t *testing.T) {
		app := setupApp("")

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}
