package domain

import "time"

// Task statuses. The dashboard only ever shows in_progress tasks; the rest
// exist for the service-side lifecycle.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type Employee struct {
	ID           uint   `json:"-" gorm:"primarykey"`
	EmployeeCode string `json:"employee_code" gorm:"size:20;uniqueIndex"`
	FirstName    string `json:"first_name" gorm:"size:50"`
	LastName     string `json:"last_name" gorm:"size:50"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}

type Shift struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	Date      time.Time  `json:"date"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	Employees []Employee `json:"-" gorm:"many2many:shift_employees"`
}

type Task struct {
	ID           string    `json:"id" gorm:"primarykey;size:36"`
	Description  string    `json:"description"`
	Name         string    `json:"name,omitempty"`
	Status       string    `json:"status" gorm:"size:20;index;default:pending"`
	Difficulty   int       `json:"difficulty" gorm:"default:1"`
	Urgent       bool      `json:"urgent" gorm:"default:false"`
	ShiftID      *uint     `json:"shift_id,omitempty"`
	AssignedToID *uint     `json:"-"`
	AssignedTo   *Employee `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (t *Task) InProgress() bool {
	return t.Status == StatusInProgress
}
