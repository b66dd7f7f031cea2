package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/core/services"
	"github.com/taskboard/backend/internal/infrastructure/logger"
	"github.com/taskboard/backend/internal/transport/http/dto"
)

type EmployeeHandler struct {
	service ports.EmployeeService
	logger  *logger.Logger
}

func NewEmployeeHandler(service ports.EmployeeService, logger *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{service: service, logger: logger}
}

func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	employee, err := h.service.CreateEmployee(c.Context(), ports.CreateEmployeeInput{
		EmployeeCode: req.EmployeeCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		if err == services.ErrEmployeeInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		h.logger.Errorw("employee_create_failed", "code", req.EmployeeCode, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	h.logger.Infow("employee_create_success", "code", employee.EmployeeCode)
	return c.Status(fiber.StatusCreated).JSON(dto.EmployeeToResponse(employee))
}

func (h *EmployeeHandler) GetEmployees(c *fiber.Ctx) error {
	employees, err := h.service.ListActiveEmployees(c.Context())
	if err != nil {
		h.logger.Errorw("employees_list_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}
	return c.JSON(dto.EmployeesToResponse(employees))
}
