package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/taskboard/backend/internal/core/ports"
	"github.com/taskboard/backend/internal/core/services"
	"github.com/taskboard/backend/internal/feed"
	"github.com/taskboard/backend/internal/infrastructure/db"
	"github.com/taskboard/backend/internal/infrastructure/logger"
	"github.com/taskboard/backend/internal/transport/http/handlers"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, database *gorm.DB, log *logger.Logger, hub *feed.Hub, publisher ports.EventPublisher) {
	taskRepo := db.NewTaskRepository(database, log)
	employeeRepo := db.NewEmployeeRepository(database, log)
	shiftRepo := db.NewShiftRepository(database, log)

	taskService := services.NewTaskService(services.TaskServiceConfig{
		TaskRepo:     taskRepo,
		EmployeeRepo: employeeRepo,
		ShiftRepo:    shiftRepo,
		Publisher:    publisher,
		Logger:       log,
	})
	shiftService := services.NewShiftService(services.ShiftServiceConfig{
		ShiftRepo:    shiftRepo,
		TaskRepo:     taskRepo,
		EmployeeRepo: employeeRepo,
		Publisher:    publisher,
		Logger:       log,
	})

	employeeService := services.NewEmployeeService(employeeRepo, log)

	taskHandler := handlers.NewTaskHandler(taskService, log)
	shiftHandler := handlers.NewShiftHandler(shiftService, log)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, log)
	feedHandler := handlers.NewFeedHandler(hub, log)

	api := app.Group("/api")

	tasks := api.Group("/tasks")
	tasks.Get("/", taskHandler.GetTasks)
	tasks.Post("/", taskHandler.CreateTask)
	tasks.Get("/:id", taskHandler.GetTask)
	tasks.Post("/:id/assign", taskHandler.AssignTask)
	tasks.Post("/:id/assign_auto", taskHandler.AutoAssignTask)
	tasks.Post("/:id/complete", taskHandler.CompleteTask)

	shifts := api.Group("/shifts")
	shifts.Post("/", shiftHandler.OpenShift)
	shifts.Get("/active", shiftHandler.GetActiveShift)
	shifts.Post("/:id/end", shiftHandler.EndShift)

	employees := api.Group("/employees")
	employees.Get("/", employeeHandler.GetEmployees)
	employees.Post("/", employeeHandler.CreateEmployee)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/tasks/", websocket.New(feedHandler.Handle))
}
