package converter

import (
	"time"

	"github.com/esbreenn/clinica-turnos/internal/delivery/dto"
	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	var fechaNac *string
	if patient.FechaNac != nil {
		s := patient.FechaNac.Format(dateLayout)
		fechaNac = &s
	}

	return &dto.PatientResponse{
		ID:         patient.ID,
		DNI:        patient.DNI,
		Nombre:     patient.Nombre,
		Apellido:   patient.Apellido,
		FechaNac:   fechaNac,
		ObraSocial: patient.ObraSocial,
		Telefono:   patient.Telefono,
		Email:      patient.Email,
		CreadoEn:   patient.CreadoEn.Format(dateTimeLayout),
	}
}

// PatientsToResponses converts a slice of Patient entities to PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// PatientFromRequest maps a PatientRequest DTO onto a Patient entity.
// The fecha_nac string must already be validated as YYYY-MM-DD.
func PatientFromRequest(req *dto.PatientRequest) *entity.Patient {
	patient := &entity.Patient{
		DNI:        req.DNI,
		Nombre:     req.Nombre,
		Apellido:   req.Apellido,
		ObraSocial: req.ObraSocial,
		Telefono:   req.Telefono,
		Email:      req.Email,
	}
	if req.FechaNac != nil {
		if t, err := time.Parse(dateLayout, *req.FechaNac); err == nil {
			patient.FechaNac = &t
		}
	}
	return patient
}
