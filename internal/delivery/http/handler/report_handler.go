package handler

import (
	"net/http"

	"github.com/esbreenn/clinica-turnos/internal/usecase"
	"github.com/esbreenn/clinica-turnos/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

// AppointmentsPerPatient handles the per-patient appointment count report
// @Summary Appointments per patient
// @Tags Reportes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reportes/turnos-por-paciente [get]
func (h *ReportHandler) AppointmentsPerPatient(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportUsecase.AppointmentsPerPatient(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", rows)
}

// InactivePatients handles the inactive-patients report
// @Summary Patients without recent appointments
// @Tags Reportes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reportes/pacientes-inactivos [get]
func (h *ReportHandler) InactivePatients(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportUsecase.InactivePatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", rows)
}

// AppointmentsPerProfessional handles the per-professional load report
// @Summary Appointments per professional
// @Tags Reportes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reportes/turnos-por-profesional [get]
func (h *ReportHandler) AppointmentsPerProfessional(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportUsecase.AppointmentsPerProfessional(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", rows)
}
