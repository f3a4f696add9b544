package entity

// Branch is a clinic location (table sucursales).
type Branch struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nombre    string  `gorm:"column:nombre;type:varchar(120);not null" json:"nombre"`
	Direccion *string `gorm:"column:direccion;type:varchar(255)" json:"direccion,omitempty"`
	Activo    bool    `gorm:"column:activo;not null;default:true" json:"activo"`
}

func (Branch) TableName() string {
	return "sucursales"
}
