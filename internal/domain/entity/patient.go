package entity

import "time"

// Patient represents a clinic patient record (table pacientes).
// DNI is the national identity number and is unique across all patients.
type Patient struct {
	ID         int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DNI        int64      `gorm:"column:dni;uniqueIndex:pacientes_dni_key;not null" json:"dni"`
	Nombre     string     `gorm:"column:nombre;type:varchar(120);not null" json:"nombre"`
	Apellido   string     `gorm:"column:apellido;type:varchar(120);not null" json:"apellido"`
	FechaNac   *time.Time `gorm:"column:fecha_nac;type:date" json:"fecha_nac,omitempty"`
	ObraSocial *string    `gorm:"column:obra_social;type:varchar(120)" json:"obra_social,omitempty"`
	Telefono   *string    `gorm:"column:telefono;type:varchar(40)" json:"telefono,omitempty"`
	Email      *string    `gorm:"column:email;type:varchar(255)" json:"email,omitempty"`
	CreadoEn   time.Time  `gorm:"column:creado_en;autoCreateTime" json:"creado_en"`
}

func (Patient) TableName() string {
	return "pacientes"
}
