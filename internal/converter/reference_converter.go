package converter

import (
	"github.com/esbreenn/clinica-turnos/internal/delivery/dto"
	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
)

func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i, p := range professionals {
		responses[i] = dto.ProfessionalResponse{
			ID:           p.ID,
			Nombre:       p.Nombre,
			Especialidad: p.Especialidad,
		}
	}
	return responses
}

func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i, s := range services {
		responses[i] = dto.ServiceResponse{
			ID:          s.ID,
			Nombre:      s.Nombre,
			DuracionMin: s.DuracionMin,
			Precio:      s.Precio,
		}
	}
	return responses
}

func BranchesToResponses(branches []entity.Branch) []dto.BranchResponse {
	responses := make([]dto.BranchResponse, len(branches))
	for i, b := range branches {
		responses[i] = dto.BranchResponse{
			ID:        b.ID,
			Nombre:    b.Nombre,
			Direccion: b.Direccion,
		}
	}
	return responses
}
