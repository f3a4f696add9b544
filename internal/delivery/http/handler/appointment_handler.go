package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/esbreenn/clinica-turnos/internal/delivery/dto"
	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
	"github.com/esbreenn/clinica-turnos/internal/usecase"
	"github.com/esbreenn/clinica-turnos/pkg/response"
	"github.com/esbreenn/clinica-turnos/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// List handles listing appointments
// @Summary List appointments
// @Description List appointments joined with patient, professional, service and branch names
// @Tags Turnos
// @Security BearerAuth
// @Produce json
// @Param profesional_id query int false "Filter by professional"
// @Param estado query string false "Filter by status"
// @Param desde query string false "Start datetime (YYYY-MM-DD or YYYY-MM-DD HH:MM:SS)"
// @Param hasta query string false "End datetime (YYYY-MM-DD or YYYY-MM-DD HH:MM:SS)"
// @Param dni query int false "Filter by patient DNI"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /turnos [get]
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAppointmentFilter(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	appointments, err := h.appointmentUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// Create handles booking an appointment
// @Summary Create appointment
// @Description Book an appointment with its payment in a single transaction
// @Tags Turnos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /turnos [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrScheduleConflict:
			response.Conflict(w, "Conflicto de agenda")
		case usecase.ErrInvalidDateTime:
			response.Error(w, http.StatusBadRequest, "Invalid fecha_hora_inicio, use YYYY-MM-DD HH:MM:SS", nil)
		case usecase.ErrInvalidAppointment:
			response.Error(w, http.StatusBadRequest, "Invalid appointment data", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// Reschedule handles moving an appointment
// @Summary Reschedule appointment
// @Description Move an appointment to a new slot, professional, service or branch
// @Tags Turnos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body dto.RescheduleAppointmentRequest true "Reschedule Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /turnos/{id} [put]
func (h *AppointmentHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.RescheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Reschedule(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrScheduleConflict:
			response.Conflict(w, "Conflicto de agenda")
		case usecase.ErrInvalidDateTime:
			response.Error(w, http.StatusBadRequest, "Invalid fecha_hora_inicio, use YYYY-MM-DD HH:MM:SS", nil)
		case usecase.ErrInvalidAppointment:
			response.Error(w, http.StatusBadRequest, "Invalid appointment data", nil)
		default:
			response.InternalServerError(w, "Failed to reschedule appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment rescheduled successfully", appointment)
}

// SetStatus handles updating an appointment status
// @Summary Update appointment status
// @Description Set the status of an appointment
// @Tags Turnos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body dto.UpdateAppointmentStatusRequest true "Status Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /turnos/{id}/estado [patch]
func (h *AppointmentHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.appointmentUsecase.SetStatus(r.Context(), id, req.Estado); err != nil {
		switch err {
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid estado value", nil)
		case usecase.ErrScheduleConflict:
			response.Conflict(w, "Conflicto de agenda")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", nil)
}

// Delete handles removing an appointment
// @Summary Delete appointment
// @Description Delete an appointment by ID
// @Tags Turnos
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /turnos/{id} [delete]
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

// filterDateLayouts are accepted for the desde/hasta query params.
var filterDateLayouts = []string{"2006-01-02 15:04:05", "2006-01-02"}

func parseAppointmentFilter(r *http.Request) (*entity.AppointmentFilter, error) {
	query := r.URL.Query()
	filter := &entity.AppointmentFilter{}

	if raw := query.Get("profesional_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errInvalidFilterParam("profesional_id")
		}
		filter.ProfesionalID = id
	}

	if raw := query.Get("estado"); raw != "" {
		estado := entity.AppointmentStatus(raw)
		if !estado.IsValid() {
			return nil, errInvalidFilterParam("estado")
		}
		filter.Estado = estado
	}

	if raw := query.Get("desde"); raw != "" {
		t, err := parseFilterDate(raw)
		if err != nil {
			return nil, errInvalidFilterParam("desde")
		}
		filter.Desde = &t
	}

	if raw := query.Get("hasta"); raw != "" {
		t, err := parseFilterDate(raw)
		if err != nil {
			return nil, errInvalidFilterParam("hasta")
		}
		filter.Hasta = &t
	}

	if raw := query.Get("dni"); raw != "" {
		dni, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errInvalidFilterParam("dni")
		}
		filter.PacienteDNI = dni
	}

	filter.Limit, _ = strconv.Atoi(query.Get("limit"))
	filter.Offset, _ = strconv.Atoi(query.Get("offset"))

	return filter, nil
}

func parseFilterDate(raw string) (time.Time, error) {
	var t time.Time
	var err error
	for _, layout := range filterDateLayouts {
		if t, err = time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return t, err
}

func errInvalidFilterParam(name string) error {
	return fmt.Errorf("invalid query parameter: %s", name)
}
