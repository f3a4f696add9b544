package entity

// PatientAppointmentCount is a reporting row: turnos accumulated per patient.
type PatientAppointmentCount struct {
	Paciente    string `json:"paciente"`
	Apellido    string `json:"apellido"`
	TotalTurnos int64  `json:"total_turnos"`
}

// InactivePatient is a reporting row: a patient with no recent turnos.
type InactivePatient struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// ProfessionalLoad is a reporting row: turnos accumulated per professional.
type ProfessionalLoad struct {
	Profesional  string `json:"profesional"`
	Especialidad string `json:"especialidad"`
	TotalTurnos  int64  `json:"total_turnos"`
}
