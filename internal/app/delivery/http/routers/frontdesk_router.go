package routers

import (
	"climed-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachFrontDeskRoutes(router chi.Router, frontDeskController *controllers.FrontDeskController) {
	router.Get("/specialties", frontDeskController.ListSpecialties)
	router.Get("/doctors", frontDeskController.ListDoctors)
	router.Get("/schedules", frontDeskController.ListSchedules)
	router.Get("/agenda", frontDeskController.ViewAgenda)
	router.Get("/payment-methods", frontDeskController.ListPaymentMethods)

	router.Route("/patients", func(r chi.Router) {
		r.Get("/", frontDeskController.ListPatients)
		r.Post("/", frontDeskController.RegisterPatient)
	})

	router.Get("/arrivals", frontDeskController.ListArrivals)

	router.Route("/appointments", func(r chi.Router) {
		r.Post("/", frontDeskController.ScheduleAppointment)
		r.Post("/{appointment_id}/arrival", frontDeskController.RegisterArrival)
		r.Post("/{appointment_id}/consultation", frontDeskController.RegisterConsultationDetails)
	})
}
