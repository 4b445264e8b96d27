package routers

import (
	"dentora-service/internal/app/delivery/http/middlewares"
	"dentora-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.TenantRateLimit)

	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/", appointmentController.FindAppointmentsByTenant)
	router.Get("/{appointment_id}", appointmentController.GetAppointmentByID)
	router.Put("/{appointment_id}", appointmentController.UpdateAppointment)
	router.Post("/{appointment_id}/cancel", appointmentController.CancelAppointment)
}
