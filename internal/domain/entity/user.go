package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff account (table usuarios): receptionists and administrators.
// Patients never log in; they are plain records in pacientes.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Role      string    `gorm:"type:varchar(30);not null;index" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "usuarios"
}

// Staff roles
const (
	RoleAdmin     = "admin"
	RoleRecepcion = "recepcion"
)
