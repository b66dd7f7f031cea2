package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/core/services"
	"github.com/taskboard/backend/internal/infrastructure/logger"
	"github.com/taskboard/backend/internal/transport/http/dto"
)

type ShiftHandler struct {
	service ports.ShiftService
	logger  *logger.Logger
}

func NewShiftHandler(service ports.ShiftService, logger *logger.Logger) *ShiftHandler {
	return &ShiftHandler{service: service, logger: logger}
}

func (h *ShiftHandler) OpenShift(c *fiber.Ctx) error {
	var req dto.OpenShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	shift, err := h.service.OpenShift(c.Context(), req.EmployeeCodes)
	if err != nil {
		if err == services.ErrShiftNoEmployees || err == services.ErrEmployeeNotFound || err == services.ErrEmployeeInactive {
			h.logger.Warnw("shift_open_rejected", "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		h.logger.Errorw("shift_open_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	h.logger.Infow("shift_open_success", "id", shift.ID)
	return c.Status(fiber.StatusCreated).JSON(dto.ShiftToResponse(shift))
}

func (h *ShiftHandler) GetActiveShift(c *fiber.Ctx) error {
	shift, err := h.service.ActiveShift(c.Context())
	if err != nil {
		if err == services.ErrShiftNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "no active shift",
			})
		}
		h.logger.Errorw("shift_active_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(dto.ShiftToResponse(shift))
}

func (h *ShiftHandler) EndShift(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid shift id",
		})
	}

	returned, err := h.service.CloseShift(c.Context(), uint(id))
	if err != nil {
		if err == services.ErrShiftNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "shift not found",
			})
		}
		if err == services.ErrShiftAlreadyClosed {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		h.logger.Errorw("shift_end_failed", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	h.logger.Infow("shift_end_success", "id", id, "tasks_returned", returned)
	return c.JSON(fiber.Map{
		"detail": fmt.Sprintf("shift closed, %d tasks returned to the pool", returned),
	})
}
