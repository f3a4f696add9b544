package handler

import (
	"net/http"

	"github.com/esbreenn/clinica-turnos/internal/usecase"
	"github.com/esbreenn/clinica-turnos/pkg/response"
)

type ReferenceHandler struct {
	referenceUsecase usecase.ReferenceUsecase
}

func NewReferenceHandler(referenceUsecase usecase.ReferenceUsecase) *ReferenceHandler {
	return &ReferenceHandler{
		referenceUsecase: referenceUsecase,
	}
}

// Professionals handles listing professionals
// @Summary List professionals
// @Tags Referencia
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /turnos/profesionales [get]
func (h *ReferenceHandler) Professionals(w http.ResponseWriter, r *http.Request) {
	professionals, err := h.referenceUsecase.Professionals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
}

// Services handles listing active services
// @Summary List services
// @Tags Referencia
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /turnos/servicios [get]
func (h *ReferenceHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.referenceUsecase.Services(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

// Branches handles listing active branches
// @Summary List branches
// @Tags Referencia
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /turnos/sucursales [get]
func (h *ReferenceHandler) Branches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.referenceUsecase.Branches(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list branches")
		return
	}

	response.Success(w, http.StatusOK, "Branches retrieved successfully", branches)
}
