package controllers

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"climed-service/internal/app/contracts"
	"climed-service/internal/app/models"
	"climed-service/internal/pkg/constvars"
	"climed-service/internal/pkg/dto/requests"
	"climed-service/internal/pkg/exceptions"
	"climed-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type FrontDeskController struct {
	Log              *zap.Logger
	FrontDeskUsecase contracts.FrontDeskUsecase
	AppEnv           string
	RequestTimeout   time.Duration
}

func NewFrontDeskController(logger *zap.Logger, frontDeskUsecase contracts.FrontDeskUsecase, appEnv string, requestTimeout time.Duration) *FrontDeskController {
	return &FrontDeskController{
		Log:              logger,
		FrontDeskUsecase: frontDeskUsecase,
		AppEnv:           appEnv,
		RequestTimeout:   requestTimeout,
	}
}

func (ctrl *FrontDeskController) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	specialties, err := ctrl.FrontDeskUsecase.ListSpecialties(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err, ctrl.AppEnv)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSpecialtiesSuccessMessage, specialties)
}

func (ctrl *FrontDeskController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	doctors, err := ctrl.FrontDeskUsecase.ListDoctors(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err, ctrl.AppEnv)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, doctors)
}

func (ctrl *FrontDeskController) ListSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	query := r.URL.Query()
	specialty := query.Get(constvars.QueryParamSpecialty)
	doctorID := models.ParseID(strings.TrimSpace(query.Get(constvars.QueryParamCRM)))

	slots, err := ctrl.FrontDeskUsecase.ListSchedules(ctx, specialty, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err, ctrl.AppEnv)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSchedulesSuccessMessage, slots)
}

func (ctrl *FrontDeskController) ListPatients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	patients, err := ctrl.FrontDeskUsecase.ListPatients(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err, ctrl.AppEnv)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, patients)
}

func (ctrl *FrontDeskController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterPatientRequest)
	if !ctrl.decodeBody(w, r, request) {
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	if err := ctrl.FrontDeskUsecase.RegisterPatient(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err, ctrl.AppEnv)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterPatientSuccessMessage, nil)
}

func (ctrl *FrontDeskController) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ScheduleAppointmentRequest)
	if !ctrl.decodeBody(w, r, request) {
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	if err := ctrl.FrontDeskUsecase.ScheduleAppointment(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err, ctrl.AppEnv)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ScheduleAppointmentSuccessMessage, nil)
}

func (ctrl *FrontDeskController) ListArrivals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	specialty := r.URL.Query().Get(constvars.QueryParamSpecialty)

	arrivals, err := ctrl.FrontDeskUsecase.ListArrivals(ctx, specialty)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err, ctrl.AppEnv)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetArrivalsSuccessMessage, arrivals)
}

func (ctrl *FrontDeskController) RegisterArrival(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := ctrl.appointmentID(w, r)
	if !ok {
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	if err := ctrl.FrontDeskUsecase.RegisterArrival(ctx, appointmentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err, ctrl.AppEnv)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegisterArrivalSuccessMessage, nil)
}

func (ctrl *FrontDeskController) ViewAgenda(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	query := r.URL.Query()
	specialty := query.Get(constvars.QueryParamSpecialty)
	doctorID := models.ParseID(strings.TrimSpace(query.Get(constvars.QueryParamCRM)))

	agenda, err := ctrl.FrontDeskUsecase.ViewAgenda(ctx, specialty, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err, ctrl.AppEnv)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAgendaSuccessMessage, agenda)
}

func (ctrl *FrontDeskController) RegisterConsultationDetails(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := ctrl.appointmentID(w, r)
	if !ok {
		return
	}

	request := new(requests.ConsultationDetailsRequest)
	if !ctrl.decodeBody(w, r, request) {
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	if err := ctrl.FrontDeskUsecase.RegisterConsultationDetails(ctx, appointmentID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err, ctrl.AppEnv)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegisterDetailsSuccessMessage, nil)
}

func (ctrl *FrontDeskController) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentMethodsSuccessMessage, ctrl.FrontDeskUsecase.ListPaymentMethods())
}

func (ctrl *FrontDeskController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if ctrl.RequestTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), ctrl.RequestTimeout)
}

func (ctrl *FrontDeskController) decodeBody(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err), ctrl.AppEnv)
		return false
	}
	return true
}

func (ctrl *FrontDeskController) appointmentID(w http.ResponseWriter, r *http.Request) (models.ID, bool) {
	raw := chi.URLParam(r, constvars.URLParamAppointmentID)
	unescaped, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(unescaped) == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidIdentifier(err, raw), ctrl.AppEnv)
		return models.ID{}, false
	}
	return models.ParseID(unescaped), true
}
