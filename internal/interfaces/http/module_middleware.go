package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// moduleChecker es el contrato mínimo que necesita el middleware para verificar módulos.
// Lo implementa *usecase.ModuleUseCase.
type moduleChecker interface {
	IsActive(ctx context.Context, name string) (bool, error)
}

// RequireModule corta las rutas de una sección del back-office cuando su módulo está inactivo.
//
// Comportamiento:
//   - 403 Forbidden → módulo marcado como inactivo.
//   - 503 Service Unavailable → fallo al consultar la DB.
func RequireModule(moduleName string, checker moduleChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		active, err := checker.IsActive(c.UserContext(), moduleName)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "MODULE_CHECK_FAILED",
				Message: "no se pudo verificar el módulo, intente más tarde",
			})
		}
		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MODULE_DISABLED",
				Message: "el módulo '" + moduleName + "' no está activo",
			})
		}
		return c.Next()
	}
}
