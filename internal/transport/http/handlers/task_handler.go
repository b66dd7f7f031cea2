package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/core/services"
	"github.com/taskboard/backend/internal/domain"
	"github.com/taskboard/backend/internal/infrastructure/logger"
	"github.com/taskboard/backend/internal/transport/http/dto"
)

type TaskHandler struct {
	service ports.TaskService
	logger  *logger.Logger
}

func NewTaskHandler(service ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{service: service, logger: logger}
}

// GetTasks serves the snapshot the dashboard loads on startup. Without a
// status filter it returns in-progress tasks, matching what the board shows.
func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	status := c.Query("status", domain.StatusInProgress)

	tasks, err := h.service.ListByStatus(c.Context(), status)
	if err != nil {
		h.logger.Errorw("tasks_list_failed", "status", status, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	h.logger.Infow("tasks_list_success", "status", status, "count", len(tasks))
	return c.JSON(dto.TasksToResponse(tasks))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	id := c.Params("id")

	task, err := h.service.GetTask(c.Context(), id)
	if err != nil {
		if err == services.ErrTaskNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "task not found",
			})
		}
		h.logger.Errorw("task_get_failed", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("task_create_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	if errs := req.Validate(); len(errs) > 0 {
		h.logger.Warnw("task_create_validation_failed", "details", errs)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Details: errs,
		})
	}

	input := ports.CreateTaskInput{
		Description:          req.Description,
		Name:                 req.Name,
		Difficulty:           req.Difficulty,
		Urgent:               req.Urgent,
		ShiftID:              req.ShiftID,
		AssignedEmployeeCode: req.AssignedEmployeeCode,
	}

	task, err := h.service.CreateTask(c.Context(), input)
	if err != nil {
		if err == services.ErrEmployeeNotFound || err == services.ErrEmployeeInactive || err == services.ErrTaskInvalidInput {
			h.logger.Warnw("task_create_bad_request", "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		h.logger.Errorw("task_create_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	h.logger.Infow("task_create_success", "id", task.ID, "status", task.Status)
	return c.Status(fiber.StatusCreated).JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) AssignTask(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.AssignTaskRequest
	if err := c.BodyParser(&req); err != nil || req.EmployeeCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "employee_code is required",
		})
	}

	task, err := h.service.AssignTask(c.Context(), id, req.EmployeeCode)
	if err != nil {
		return h.assignError(c, id, err)
	}

	h.logger.Infow("task_assign_success", "id", id, "employee_code", req.EmployeeCode)
	return c.JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) AutoAssignTask(c *fiber.Ctx) error {
	id := c.Params("id")

	task, err := h.service.AutoAssignTask(c.Context(), id)
	if err != nil {
		return h.assignError(c, id, err)
	}

	h.logger.Infow("task_auto_assign_success", "id", id)
	return c.JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) CompleteTask(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.service.CompleteTask(c.Context(), id); err != nil {
		if err == services.ErrTaskNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "task not found",
			})
		}
		if err == services.ErrTaskNotCompletable {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		h.logger.Errorw("task_complete_failed", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	h.logger.Infow("task_complete_success", "id", id)
	return c.JSON(fiber.Map{"detail": "task completed"})
}

func (h *TaskHandler) assignError(c *fiber.Ctx, id string, err error) error {
	switch err {
	case services.ErrTaskNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "task not found",
		})
	case services.ErrTaskNotAssignable, services.ErrEmployeeNotFound,
		services.ErrEmployeeInactive, services.ErrNoEligibleEmployee:
		h.logger.Warnw("task_assign_rejected", "id", id, "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	default:
		h.logger.Errorw("task_assign_failed", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}
}
