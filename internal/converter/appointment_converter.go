package converter

import (
	"github.com/esbreenn/clinica-turnos/internal/delivery/dto"
	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(turno *entity.Appointment) *dto.AppointmentResponse {
	if turno == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              turno.ID,
		PacienteID:      turno.PacienteID,
		ProfesionalID:   turno.ProfesionalID,
		ServicioID:      turno.ServicioID,
		SucursalID:      turno.SucursalID,
		FechaHoraInicio: turno.FechaHoraInicio.Format(dateTimeLayout),
		FechaHoraFin:    turno.FechaHoraFin.Format(dateTimeLayout),
		Estado:          string(turno.Estado),
		Monto:           turno.Monto,
		Metodo:          turno.Metodo,
		CreadoEn:        turno.CreadoEn.Format(dateTimeLayout),
	}
}

// AppointmentDetailsToResponses converts listing rows to DTOs
func AppointmentDetailsToResponses(rows []entity.AppointmentDetail) []dto.AppointmentDetailResponse {
	responses := make([]dto.AppointmentDetailResponse, len(rows))
	for i, row := range rows {
		responses[i] = dto.AppointmentDetailResponse{
			ID:              row.ID,
			Paciente:        row.Paciente,
			Profesional:     row.Profesional,
			Servicio:        row.Servicio,
			Sucursal:        row.Sucursal,
			FechaHoraInicio: row.FechaHoraInicio.Format(dateTimeLayout),
			FechaHoraFin:    row.FechaHoraFin.Format(dateTimeLayout),
			Estado:          string(row.Estado),
		}
	}
	return responses
}
