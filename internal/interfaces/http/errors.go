package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/partner-portal/internal/application/dto"
	"github.com/jhoicas/partner-portal/internal/application/usecase"
	"github.com/jhoicas/partner-portal/internal/domain"
	"github.com/jhoicas/partner-portal/internal/domain/access"
)

// writeError traduce un error clasificado a su respuesta HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var denied *usecase.DeniedError
	if errors.As(err, &denied) {
		body := dto.UpgradeErrorResponse{
			Code:       "UPGRADE_REQUIRED",
			Message:    "la acción requiere un plan superior",
			Capability: string(denied.Capability),
		}
		switch denied.Requirement.Policy {
		case access.PolicyPlan:
			body.RequiredTier = denied.Requirement.Tier.String()
		case access.PolicyAdmin:
			body.Code = "FORBIDDEN"
			body.Message = "la acción está reservada al administrador"
		}
		return c.Status(fiber.StatusForbidden).JSON(body)
	}

	switch domain.KindOf(err) {
	case domain.KindUnauthenticated:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión ausente, inválida o expirada"})
	case domain.KindForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado por plan o rol"})
	case domain.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "TRANSIENT", Message: "el backend no respondió, intente más tarde"})
	}
}

// errorHandler ErrorHandler global de Fiber: errores de Fiber conservan su código,
// el resto se clasifica.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "INVALID_INPUT"
		if fe.Code == fiber.StatusNotFound {
			code = "NOT_FOUND"
		} else if fe.Code >= fiber.StatusInternalServerError {
			code = "INTERNAL"
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return writeError(c, err)
}
