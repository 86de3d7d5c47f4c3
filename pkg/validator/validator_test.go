package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Texto string `json:"texto" validate:"required,max=10"`
	Fecha string `json:"fecha_referencia,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Tipo  string `json:"tipo_reporte,omitempty" validate:"omitempty,oneof=citas facturas"`
	Limit int    `json:"limit" validate:"gte=1,lte=100"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Fecha: "13/11/2025", Tipo: "recetas", Limit: 500})
	require.Error(t, err)

	fields := v.FormatValidationErrors(err)
	assert.Equal(t, map[string]string{
		"texto":            "texto is required",
		"fecha_referencia": "fecha_referencia must match the format 2006-01-02",
		"tipo_reporte":     "tipo_reporte must be one of: citas facturas",
		"limit":            "limit must be less than or equal to 100",
	}, fields)
}

func TestValidate_OK(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&sample{Texto: "citas", Fecha: "2025-11-13", Tipo: "citas", Limit: 10}))
	assert.Empty(t, v.FormatValidationErrors(assert.AnError))
}
