package nlp

import (
	"testing"
	"time"

	"clinic-report-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func requireRange(t *testing.T, rng entity.DateRange, start, end time.Time) {
	t.Helper()
	require.NotNil(t, rng.Start, "start")
	require.NotNil(t, rng.End, "end")
	assert.Equal(t, start, *rng.Start)
	assert.Equal(t, end, *rng.End)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation and case", "¡Dame las CITAS del 1 al 5 de Septiembre!", "dame las citas del 1 al 5 de septiembre"},
		{"accents", "los últimos 7 días", "los ultimos 7 dias"},
		{"enye", "Año pasado, señor", "ano pasado senor"},
		{"numeral separators survive", "facturas mayores a 1.500,50 bs.", "facturas mayores a 1.500,50 bs"},
		{"whitespace collapse", "  citas \t de\n hoy  ", "citas de hoy"},
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
		{"only punctuation", "¿?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNewText_KeepsOriginal(t *testing.T) {
	raw := "  Citas de \"María\" HOY "
	text := NewText(raw)

	assert.Equal(t, raw, text.Original)
	assert.Equal(t, "citas de maria hoy", text.Normalized)
	assert.Equal(t, []string{"citas", "de", "maria", "hoy"}, text.Tokens)
}

func TestPhraseIndex(t *testing.T) {
	tokens := []string{"facturas", "de", "la", "semana", "pasada"}

	assert.Equal(t, 3, phraseIndex(tokens, "semana", "pasada"))
	assert.Equal(t, 0, phraseIndex(tokens, "facturas"))
	assert.Equal(t, -1, phraseIndex(tokens, "pasada", "semana"))
	assert.Equal(t, -1, phraseIndex(tokens))
	assert.Equal(t, -1, phraseIndex(nil, "hoy"))
}
