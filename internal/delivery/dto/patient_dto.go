package dto

// Request DTOs

// PatientRequest is used for both create and full-replace update.
type PatientRequest struct {
	DNI        int64   `json:"dni" validate:"required,min=1"`
	Nombre     string  `json:"nombre" validate:"required,min=1,max=120"`
	Apellido   string  `json:"apellido" validate:"required,min=1,max=120"`
	FechaNac   *string `json:"fecha_nac" validate:"omitempty,datetime=2006-01-02"` // Format: YYYY-MM-DD
	ObraSocial *string `json:"obra_social" validate:"omitempty,max=120"`
	Telefono   *string `json:"telefono" validate:"omitempty,max=40"`
	Email      *string `json:"email" validate:"omitempty,email"`
}

// Response DTOs

type PatientResponse struct {
	ID         int64   `json:"id"`
	DNI        int64   `json:"dni"`
	Nombre     string  `json:"nombre"`
	Apellido   string  `json:"apellido"`
	FechaNac   *string `json:"fecha_nac,omitempty"`
	ObraSocial *string `json:"obra_social,omitempty"`
	Telefono   *string `json:"telefono,omitempty"`
	Email      *string `json:"email,omitempty"`
	CreadoEn   string  `json:"creado_en"`
}

type PatientListResponse struct {
	Pacientes []PatientResponse `json:"pacientes"`
	Total     int               `json:"total"`
}
