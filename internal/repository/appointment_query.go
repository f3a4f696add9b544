package repository

import (
	"strings"

	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
)

// buildAppointmentListQuery assembles the turno listing query from the filter.
// Predicates are conjunctive and always bound through placeholders; filter
// values come from untrusted input and must never be interpolated.
func buildAppointmentListQuery(f *entity.AppointmentFilter) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`SELECT t.id,
       CONCAT(p.nombre, ' ', p.apellido) AS paciente,
       pr.nombre AS profesional,
       s.nombre  AS servicio,
       su.nombre AS sucursal,
       t.fecha_hora_inicio,
       t.fecha_hora_fin,
       t.estado
FROM turnos t
JOIN pacientes p      ON p.id = t.paciente_id
JOIN profesionales pr ON pr.id = t.profesional_id
JOIN servicios s      ON s.id = t.servicio_id
JOIN sucursales su    ON su.id = t.sucursal_id`)

	var conds []string
	var args []interface{}
	if f.ProfesionalID > 0 {
		conds = append(conds, "t.profesional_id = ?")
		args = append(args, f.ProfesionalID)
	}
	if f.Estado != "" {
		conds = append(conds, "t.estado = ?")
		args = append(args, f.Estado)
	}
	if f.Desde != nil {
		conds = append(conds, "t.fecha_hora_inicio >= ?")
		args = append(args, *f.Desde)
	}
	if f.Hasta != nil {
		conds = append(conds, "t.fecha_hora_inicio <= ?")
		args = append(args, *f.Hasta)
	}
	if f.PacienteDNI > 0 {
		conds = append(conds, "p.dni = ?")
		args = append(args, f.PacienteDNI)
	}
	if len(conds) > 0 {
		sb.WriteString("\nWHERE " + strings.Join(conds, " AND "))
	}

	sb.WriteString("\nORDER BY t.fecha_hora_inicio DESC LIMIT ? OFFSET ?")
	args = append(args, f.Limit, f.Offset)

	return sb.String(), args
}
