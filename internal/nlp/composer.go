package nlp

import (
	"fmt"
	"strings"

	"clinic-report-service/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const summaryDateLayout = "02/01/2006"

var statusLabels = map[entity.ReportCategory]map[entity.StatusCode]string{
	entity.ReportCategoryAppointments: {
		entity.StatusPending:   "Pendiente",
		entity.StatusConfirmed: "Confirmada",
		entity.StatusCompleted: "Atendida",
		entity.StatusCancelled: "Cancelada",
	},
	entity.ReportCategoryInvoices: {
		entity.StatusPending:   "Pendiente",
		entity.StatusPaid:      "Pagada",
		entity.StatusCancelled: "Anulada",
	},
	entity.ReportCategoryTreatments: {
		entity.StatusProposed:   "Propuesto",
		entity.StatusInProgress: "En progreso",
		entity.StatusCompleted:  "Completado",
		entity.StatusCancelled:  "Cancelado",
	},
}

// StatusLabel returns the Spanish label of code within category.
func StatusLabel(category entity.ReportCategory, code entity.StatusCode) string {
	if label, ok := statusLabels[category][code]; ok {
		return label
	}
	return string(code)
}

// ComposeSummary restates the resolved query as one Spanish sentence.
func ComposeSummary(category entity.ReportCategory, dates entity.DateRange, filters entity.FilterSet) string {
	var b strings.Builder

	if category.IsKnown() {
		b.WriteString("Reporte de ")
		b.WriteString(category.DisplayName())
	} else {
		b.WriteString("No se pudo determinar el tipo de reporte; se devolverá un resultado vacío")
	}

	switch {
	case dates.Start != nil && dates.End != nil:
		fmt.Fprintf(&b, " desde el %s hasta el %s", dates.Start.Format(summaryDateLayout), dates.End.Format(summaryDateLayout))
	case dates.Start != nil:
		fmt.Fprintf(&b, " desde el %s", dates.Start.Format(summaryDateLayout))
	case dates.End != nil:
		fmt.Fprintf(&b, " hasta el %s", dates.End.Format(summaryDateLayout))
	}

	if filters.Status != nil {
		fmt.Fprintf(&b, ", con estado %s", StatusLabel(category, *filters.Status))
	}
	if filters.PatientName != nil {
		fmt.Fprintf(&b, ", del paciente %q", *filters.PatientName)
	}
	if filters.MinAmount != nil {
		fmt.Fprintf(&b, ", con monto mayor o igual a %s", FormatAmount(*filters.MinAmount))
	}
	if filters.MaxAmount != nil {
		fmt.Fprintf(&b, ", con monto menor o igual a %s", FormatAmount(*filters.MaxAmount))
	}

	return b.String()
}

// FormatAmount renders d with two decimals, "." for thousands and "," for
// the decimal part, e.g. 1.500,00.
func FormatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + strings.Join(groups, ".") + "," + frac
}
