package nlp

import (
	"testing"
	"time"

	"clinic-report-service/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComposeSummary(t *testing.T) {
	sept, _ := entity.NewDateRange(day(2025, time.September, 1), day(2025, time.September, 5))
	pending := entity.StatusPending
	cancelled := entity.StatusCancelled
	name := "Juan Pérez"
	hundred := decimal.NewFromInt(100)
	big := decimal.RequireFromString("1500.5")

	tests := []struct {
		name     string
		category entity.ReportCategory
		dates    entity.DateRange
		filters  entity.FilterSet
		want     string
	}{
		{
			name:     "category only",
			category: entity.ReportCategoryPatients,
			want:     "Reporte de pacientes",
		},
		{
			name:     "with dates",
			category: entity.ReportCategoryAppointments,
			dates:    sept,
			want:     "Reporte de citas desde el 01/09/2025 hasta el 05/09/2025",
		},
		{
			name:     "single day",
			category: entity.ReportCategoryPayments,
			dates:    entity.SingleDay(day(2025, time.March, 7)),
			want:     "Reporte de ingresos desde el 07/03/2025 hasta el 07/03/2025",
		},
		{
			name:     "all filters",
			category: entity.ReportCategoryInvoices,
			dates:    sept,
			filters:  entity.FilterSet{Status: &pending, PatientName: &name, MinAmount: &hundred, MaxAmount: &big},
			want: "Reporte de facturas desde el 01/09/2025 hasta el 05/09/2025, con estado Pendiente, " +
				`del paciente "Juan Pérez", con monto mayor o igual a 100,00, con monto menor o igual a 1.500,50`,
		},
		{
			name:     "status label follows category",
			category: entity.ReportCategoryTreatments,
			filters:  entity.FilterSet{Status: &cancelled},
			want:     "Reporte de tratamientos, con estado Cancelado",
		},
		{
			name:     "unknown",
			category: entity.ReportCategoryUnknown,
			want:     "No se pudo determinar el tipo de reporte; se devolverá un resultado vacío",
		},
		{
			name:     "unknown keeps resolved dates",
			category: entity.ReportCategoryUnknown,
			dates:    sept,
			want:     "No se pudo determinar el tipo de reporte; se devolverá un resultado vacío desde el 01/09/2025 hasta el 05/09/2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComposeSummary(tt.category, tt.dates, tt.filters))
		})
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Cancelada", StatusLabel(entity.ReportCategoryAppointments, entity.StatusCancelled))
	assert.Equal(t, "Anulada", StatusLabel(entity.ReportCategoryInvoices, entity.StatusCancelled))
	assert.Equal(t, "Cancelado", StatusLabel(entity.ReportCategoryTreatments, entity.StatusCancelled))
	assert.Equal(t, "En progreso", StatusLabel(entity.ReportCategoryTreatments, entity.StatusInProgress))
	assert.Equal(t, "PENDING", StatusLabel(entity.ReportCategoryPayments, entity.StatusPending))
}

func TestFormatAmount(t *testing.T) {
	tests := map[string]string{
		"0":         "0,00",
		"0.5":       "0,50",
		"100":       "100,00",
		"999.999":   "1.000,00",
		"1000":      "1.000,00",
		"1234567.5": "1.234.567,50",
		"-1500":     "-1.500,00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatAmount(decimal.RequireFromString(in)), in)
	}
}
