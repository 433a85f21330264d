package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
)

type stubChecker struct {
	active bool
	err    error
	asked  string
}

func (s *stubChecker) IsActive(_ context.Context, name string) (bool, error) {
	s.asked = name
	return s.active, s.err
}

func moduleStatus(t *testing.T, checker *stubChecker) int {
	t.Helper()
	app := fiber.New()
	app.Get("/sales", apphttp.RequireModule("sales", checker), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sales", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRequireModule(t *testing.T) {
	tests := []struct {
		name    string
		checker *stubChecker
		want    int
	}{
		{"activo", &stubChecker{active: true}, http.StatusOK},
		{"inactivo", &stubChecker{active: false}, http.StatusForbidden},
		{"fallo de DB", &stubChecker{err: errors.New("db down")}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, moduleStatus(t, tt.checker))
			assert.Equal(t, "sales", tt.checker.asked)
		})
	}
}
