package entity

// Professional is reference data (table profesionales). Professionals are
// managed outside this service; turnos hold non-owning references to them.
type Professional struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nombre       string `gorm:"column:nombre;type:varchar(120);not null" json:"nombre"`
	Especialidad string `gorm:"column:especialidad;type:varchar(120);not null" json:"especialidad"`
}

func (Professional) TableName() string {
	return "profesionales"
}
