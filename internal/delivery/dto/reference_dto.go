package dto

import "github.com/shopspring/decimal"

// Response DTOs for the read-only reference tables.

type ProfessionalResponse struct {
	ID           int64  `json:"id"`
	Nombre       string `json:"nombre"`
	Especialidad string `json:"especialidad"`
}

type ServiceResponse struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	DuracionMin int             `json:"duracion_min"`
	Precio      decimal.Decimal `json:"precio"`
}

type BranchResponse struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Direccion *string `json:"direccion,omitempty"`
}
