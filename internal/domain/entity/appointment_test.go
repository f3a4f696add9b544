package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusIsValid(t *testing.T) {
	tests := []struct {
		name   string
		status AppointmentStatus
		want   bool
	}{
		{"reservado", StatusReservado, true},
		{"confirmado", StatusConfirmado, true},
		{"atendido", StatusAtendido, true},
		{"cancelado", StatusCancelado, true},
		{"ausente", StatusAusente, true},
		{"empty", AppointmentStatus(""), false},
		{"unknown", AppointmentStatus("pendiente"), false},
		{"uppercase is not normalized", AppointmentStatus("RESERVADO"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestAppointmentFilterNormalize(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"zero limit gets default", 0, 0, DefaultPageSize, 0},
		{"negative limit gets default", -5, 0, DefaultPageSize, 0},
		{"limit above cap is clamped", 1000, 0, MaxPageSize, 0},
		{"limit at cap is kept", MaxPageSize, 0, MaxPageSize, 0},
		{"negative offset resets", 10, -3, 10, 0},
		{"valid values untouched", 25, 50, 25, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &AppointmentFilter{Limit: tt.limit, Offset: tt.offset}
			f.Normalize()
			assert.Equal(t, tt.wantLimit, f.Limit)
			assert.Equal(t, tt.wantOffset, f.Offset)
		})
	}
}
