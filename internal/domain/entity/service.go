package entity

import "github.com/shopspring/decimal"

// Service is the clinic's service catalog (table servicios). DuracionMin is
// what the stored procedures use to derive fecha_hora_fin.
type Service struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nombre      string          `gorm:"column:nombre;type:varchar(120);not null" json:"nombre"`
	DuracionMin int             `gorm:"column:duracion_min;not null" json:"duracion_min"`
	Precio      decimal.Decimal `gorm:"column:precio;type:decimal(10,2);not null;default:0" json:"precio"`
	Activo      bool            `gorm:"column:activo;not null;default:true" json:"activo"`
}

func (Service) TableName() string {
	return "servicios"
}
