package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportCategory is the record type a voice query is routed to
type ReportCategory string

const (
	ReportCategoryAppointments ReportCategory = "APPOINTMENTS"
	ReportCategoryInvoices     ReportCategory = "INVOICES"
	ReportCategoryTreatments   ReportCategory = "TREATMENTS"
	ReportCategoryPatients     ReportCategory = "PATIENTS"
	ReportCategoryPayments     ReportCategory = "PAYMENTS"
	ReportCategoryUnknown      ReportCategory = "UNKNOWN"
)

var reportCategoryNames = map[ReportCategory]string{
	ReportCategoryAppointments: "citas",
	ReportCategoryInvoices:     "facturas",
	ReportCategoryTreatments:   "tratamientos",
	ReportCategoryPatients:     "pacientes",
	ReportCategoryPayments:     "ingresos",
}

// Categories returns the routable categories in their fixed evaluation order.
func Categories() []ReportCategory {
	return []ReportCategory{
		ReportCategoryAppointments,
		ReportCategoryInvoices,
		ReportCategoryTreatments,
		ReportCategoryPatients,
		ReportCategoryPayments,
	}
}

// ParseReportCategory accepts either the enum value or the Spanish display name.
func ParseReportCategory(s string) (ReportCategory, bool) {
	for _, c := range Categories() {
		if string(c) == s || reportCategoryNames[c] == s {
			return c, true
		}
	}
	return ReportCategoryUnknown, false
}

// DisplayName returns the Spanish label used in summaries and API payloads
func (c ReportCategory) DisplayName() string {
	if name, ok := reportCategoryNames[c]; ok {
		return name
	}
	return "desconocido"
}

func (c ReportCategory) IsKnown() bool {
	_, ok := reportCategoryNames[c]
	return ok
}

// StatusCode is the category-independent status a filter resolves to
type StatusCode string

const (
	StatusPending    StatusCode = "PENDING"
	StatusConfirmed  StatusCode = "CONFIRMED"
	StatusCompleted  StatusCode = "COMPLETED"
	StatusCancelled  StatusCode = "CANCELLED"
	StatusPaid       StatusCode = "PAID"
	StatusProposed   StatusCode = "PROPOSED"
	StatusInProgress StatusCode = "IN_PROGRESS"
)

// DateRange is a pair of calendar days. Both bounds are midnight UTC.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// DateOf drops the time of day of t, keeping the calendar date in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewDateRange builds a range from two days. A reversed pair is rejected.
func NewDateRange(start, end time.Time) (DateRange, bool) {
	s, e := DateOf(start), DateOf(end)
	if e.Before(s) {
		return DateRange{}, false
	}
	return DateRange{Start: &s, End: &e}, true
}

// SingleDay returns the range [day, day].
func SingleDay(day time.Time) DateRange {
	r, _ := NewDateRange(day, day)
	return r
}

func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Days returns the number of calendar days covered, or 0 when open-ended.
func (r DateRange) Days() int {
	if r.Start == nil || r.End == nil {
		return 0
	}
	return int(r.End.Sub(*r.Start).Hours()/24) + 1
}

// FilterSet holds the constraints found in the text. A nil field means no constraint.
type FilterSet struct {
	Status      *StatusCode      `json:"status,omitempty"`
	PatientName *string          `json:"patient_name,omitempty"`
	MinAmount   *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount   *decimal.Decimal `json:"max_amount,omitempty"`
}

func (f FilterSet) IsEmpty() bool {
	return f.Status == nil && f.PatientName == nil && f.MinAmount == nil && f.MaxAmount == nil
}

// QueryInterpretation is what the interpreter understood from one sentence
type QueryInterpretation struct {
	OriginalText string
	Category     ReportCategory
	DateRange    DateRange
	Filters      FilterSet
	Summary      string
}
