package routers

import (
	"dentora-service/internal/app/delivery/http/middlewares"
	"dentora-service/internal/app/services/core/tenants"
	"dentora-service/internal/app/services/core/usage"

	"github.com/go-chi/chi/v5"
)

func attachTenantRoutes(router chi.Router, middlewares *middlewares.Middlewares, tenantController *tenants.TenantController, usageController *usage.UsageController) {
	// Registration is the only unauthenticated tenant operation.
	router.Post("/", tenantController.RegisterTenant)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.TenantRateLimit)

		r.Get("/me", tenantController.GetTenant)
		r.Get("/me/usage", usageController.GetTenantUsage)

		r.With(middlewares.RequireAdmin).Put("/me", tenantController.UpdateTenant)
		r.With(middlewares.RequireAdmin).Post("/me/recount", tenantController.RecountTenant)
	})
}
