package routers

import (
	"dentora-service/internal/app/delivery/http/middlewares"
	"dentora-service/internal/app/services/core/dentists"

	"github.com/go-chi/chi/v5"
)

func attachDentistRoutes(router chi.Router, middlewares *middlewares.Middlewares, dentistController *dentists.DentistController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.TenantRateLimit)

	router.Get("/", dentistController.FindDentistsByTenant)
	router.Get("/{dentist_id}", dentistController.GetDentistByID)

	router.With(middlewares.RequireAdmin).Post("/", dentistController.CreateDentist)
	router.With(middlewares.RequireAdmin).Put("/{dentist_id}", dentistController.UpdateDentist)
	router.With(middlewares.RequireAdmin).Delete("/{dentist_id}", dentistController.DeleteDentist)
}
