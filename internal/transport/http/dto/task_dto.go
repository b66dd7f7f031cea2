package dto

import (
	"strings"
	"time"

	"github.com/taskboard/backend/internal/domain"
)

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type CreateTaskRequest struct {
	Description          string `json:"description"`
	Name                 string `json:"name"`
	Difficulty           int    `json:"difficulty"`
	Urgent               bool   `json:"urgent"`
	ShiftID              *uint  `json:"shift_id"`
	AssignedEmployeeCode string `json:"assigned_employee_code"`
}

func (r *CreateTaskRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Description) == "" && strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "description or name is required")
	}
	if r.Difficulty < 0 {
		errs = append(errs, "difficulty must not be negative")
	}
	return errs
}

type AssignTaskRequest struct {
	EmployeeCode string `json:"employee_code"`
}

type OpenShiftRequest struct {
	EmployeeCodes []string `json:"employee_codes"`
}

type CreateEmployeeRequest struct {
	EmployeeCode string `json:"employee_code"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

type EmployeeResponse struct {
	EmployeeCode string `json:"employee_code"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsActive     bool   `json:"is_active"`
}

func EmployeeToResponse(employee *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeCode: employee.EmployeeCode,
		FirstName:    employee.FirstName,
		LastName:     employee.LastName,
		IsActive:     employee.IsActive,
	}
}

func EmployeesToResponse(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, EmployeeToResponse(&employees[i]))
	}
	return out
}

type AssigneeResponse struct {
	EmployeeCode string `json:"employee_code"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

type TaskResponse struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Name        string            `json:"name,omitempty"`
	Status      string            `json:"status"`
	Difficulty  int               `json:"difficulty"`
	Urgent      bool              `json:"urgent"`
	AssignedTo  *AssigneeResponse `json:"assigned_to,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

func TaskToResponse(task *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		Description: task.Description,
		Name:        task.Name,
		Status:      task.Status,
		Difficulty:  task.Difficulty,
		Urgent:      task.Urgent,
		CreatedAt:   task.CreatedAt,
	}
	if task.AssignedTo != nil {
		resp.AssignedTo = &AssigneeResponse{
			EmployeeCode: task.AssignedTo.EmployeeCode,
			FirstName:    task.AssignedTo.FirstName,
			LastName:     task.AssignedTo.LastName,
		}
	}
	return resp
}

func TasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, TaskToResponse(&tasks[i]))
	}
	return out
}

type ShiftResponse struct {
	ID       uint      `json:"id"`
	Date     time.Time `json:"date"`
	IsActive bool      `json:"is_active"`
}

func ShiftToResponse(shift *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ID:       shift.ID,
		Date:     shift.Date,
		IsActive: shift.IsActive,
	}
}
