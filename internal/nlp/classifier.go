package nlp

import "clinic-report-service/internal/domain/entity"

var categoryKeywords = map[entity.ReportCategory][]string{
	entity.ReportCategoryAppointments: {"cita", "citas", "agenda", "consulta", "consultas"},
	entity.ReportCategoryInvoices:     {"factura", "facturas", "facturacion", "cobro", "cobros"},
	entity.ReportCategoryTreatments:   {"tratamiento", "tratamientos", "plan", "planes", "procedimiento", "procedimientos"},
	entity.ReportCategoryPatients:     {"paciente", "pacientes"},
	entity.ReportCategoryPayments:     {"ingreso", "ingresos", "pago", "pagos"},
}

type categoryScore struct {
	category entity.ReportCategory
	distinct int
	first    int
}

// Classify picks the category with the most distinct trigger words. A tie on
// the best score goes to the leftmost first match; if that still ties the
// result is UNKNOWN.
func Classify(text Text) entity.ReportCategory {
	var best []categoryScore
	for _, c := range entity.Categories() {
		score := scoreCategory(text.Tokens, categoryKeywords[c])
		score.category = c
		if score.distinct == 0 {
			continue
		}
		switch {
		case len(best) == 0 || score.distinct > best[0].distinct:
			best = []categoryScore{score}
		case score.distinct == best[0].distinct:
			best = append(best, score)
		}
	}

	if len(best) == 0 {
		return entity.ReportCategoryUnknown
	}
	if len(best) == 1 {
		return best[0].category
	}

	winner := best[0]
	tied := false
	for _, s := range best[1:] {
		switch {
		case s.first < winner.first:
			winner, tied = s, false
		case s.first == winner.first:
			tied = true
		}
	}
	if tied {
		return entity.ReportCategoryUnknown
	}
	return winner.category
}

func scoreCategory(tokens []string, keywords []string) categoryScore {
	score := categoryScore{first: -1}
	for _, kw := range keywords {
		idx := phraseIndex(tokens, kw)
		if idx < 0 {
			continue
		}
		score.distinct++
		if score.first < 0 || idx < score.first {
			score.first = idx
		}
	}
	return score
}
