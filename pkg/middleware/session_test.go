package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"carmarket/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestApp(t *testing.T, m *auth.JWTManager) *fiber.App {
	app := fiber.New()
	app.Use(Metrics())
	app.Get("/whoami", SessionMiddleware(m, zaptest.NewLogger(t)), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalSessionID).(string))
	})
	return app
}

func TestSessionMiddleware(t *testing.T) {
	m := auth.NewJWTManager("secret", time.Hour)
	token, err := m.GenerateToken("abc")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", fiber.StatusUnauthorized, ""},
		{"invalid token", "Bearer nope", fiber.StatusUnauthorized, ""},
		{"bearer token", "Bearer " + token, fiber.StatusOK, "abc"},
		{"bare token", token, fiber.StatusOK, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, m)
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}
