package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rh-admin-api/internal/application/auth"
	"github.com/jhoicas/rh-admin-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	EmployeeUC *usecase.EmployeeUseCase
	ReportUC   *usecase.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Users (administradores)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Employees
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	// /report antes de /:id para que el parámetro no lo capture.
	employees.Get("/report", reportHandler.EmployeeRoster)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
}
