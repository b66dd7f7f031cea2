package services

import "errors"

// Task errors
var (
	ErrTaskNotFound        = errors.New("task: not found")
	ErrTaskInvalidInput    = errors.New("task: invalid input")
	ErrTaskNotAssignable   = errors.New("task: only pending tasks can be assigned")
	ErrTaskNotCompletable  = errors.New("task: only assigned in-progress tasks can be completed")
	ErrNoEligibleEmployee  = errors.New("task: no eligible employee available")
)

// Employee errors
var (
	ErrEmployeeNotFound     = errors.New("employee: not found")
	ErrEmployeeInactive     = errors.New("employee: not active")
	ErrEmployeeInvalidInput = errors.New("employee: employee_code is required")
)

// Shift errors
var (
	ErrShiftNotFound      = errors.New("shift: not found")
	ErrShiftAlreadyClosed = errors.New("shift: already closed")
	ErrShiftNoEmployees   = errors.New("shift: at least one employee required")
)
