package routers

import (
	"dentora-service/internal/app/delivery/http/middlewares"
	"dentora-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.TenantRateLimit)
	router.Use(middlewares.RequireAdmin)

	router.Post("/", userController.CreateUser)
	router.Get("/", userController.FindUsersByTenant)
	router.Get("/{user_id}", userController.GetUserByID)
	router.Put("/{user_id}", userController.UpdateUser)
	router.Delete("/{user_id}", userController.DeleteUser)
}
