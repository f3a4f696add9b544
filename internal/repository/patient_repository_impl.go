package repository

import (
	"context"

	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
	domainRepo "github.com/esbreenn/clinica-turnos/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

const patientColumns = `id, dni, nombre, apellido, fecha_nac, obra_social, telefono, email, creado_en`

func (r *patientRepository) FindAll(ctx context.Context, db *gorm.DB, q string, limit, offset int) ([]entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM pacientes`
	args := []interface{}{}
	if q != "" {
		query += ` WHERE nombre ILIKE ? OR apellido ILIKE ? OR dni::text LIKE ?`
		pattern := "%" + q + "%"
		args = append(args, pattern, pattern, pattern)
	}
	query += ` ORDER BY creado_en DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var patients []entity.Patient
	err := db.WithContext(ctx).Raw(query, args...).Scan(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	res := db.WithContext(ctx).
		Raw(`SELECT `+patientColumns+` FROM pacientes WHERE id = ?`, id).
		Scan(&patient)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &patient, nil
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Raw(`
		INSERT INTO pacientes (dni, nombre, apellido, fecha_nac, obra_social, telefono, email)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id, creado_en
	`, patient.DNI, patient.Nombre, patient.Apellido, patient.FechaNac,
		patient.ObraSocial, patient.Telefono, patient.Email).
		Scan(patient).Error
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) (int64, error) {
	res := db.WithContext(ctx).Exec(`
		UPDATE pacientes
		SET dni = ?, nombre = ?, apellido = ?, fecha_nac = ?, obra_social = ?, telefono = ?, email = ?
		WHERE id = ?
	`, patient.DNI, patient.Nombre, patient.Apellido, patient.FechaNac,
		patient.ObraSocial, patient.Telefono, patient.Email, patient.ID)
	return res.RowsAffected, res.Error
}

func (r *patientRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	res := db.WithContext(ctx).Exec(`DELETE FROM pacientes WHERE id = ?`, id)
	return res.RowsAffected, res.Error
}
