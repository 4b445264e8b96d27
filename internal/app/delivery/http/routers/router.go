package routers

import (
	"fmt"
	"time"

	"dentora-service/internal/app/config"
	"dentora-service/internal/app/delivery/http/middlewares"
	"dentora-service/internal/app/services/core/appointments"
	"dentora-service/internal/app/services/core/auth"
	"dentora-service/internal/app/services/core/dentists"
	"dentora-service/internal/app/services/core/patients"
	"dentora-service/internal/app/services/core/tenants"
	"dentora-service/internal/app/services/core/usage"
	"dentora-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	tenantController *tenants.TenantController,
	usageController *usage.UsageController,
	userController *users.UserController,
	dentistController *dentists.DentistController,
	patientController *patients.PatientController,
	appointmentController *appointments.AppointmentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Coarse per-IP limit in front of everything, including login.
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/tenants", func(r chi.Router) {
				attachTenantRoutes(r, middlewares, tenantController, usageController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/dentists", func(r chi.Router) {
				attachDentistRoutes(r, middlewares, dentistController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})
		})
	})
}
