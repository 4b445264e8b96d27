package routers

import (
	"dentora-service/internal/app/delivery/http/middlewares"
	"dentora-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.TenantRateLimit)

	router.Post("/", patientController.CreatePatient)
	router.Get("/", patientController.FindPatientsByTenant)
	router.Get("/{patient_id}", patientController.GetPatientByID)
	router.Put("/{patient_id}", patientController.UpdatePatient)
	router.Post("/{patient_id}/transfer", patientController.TransferPatient)
	router.Delete("/{patient_id}", patientController.DeletePatient)

	router.Post("/{patient_id}/documents", patientController.UploadPatientDocument)
	router.Get("/{patient_id}/documents", patientController.GetPatientDocumentURL)
}
