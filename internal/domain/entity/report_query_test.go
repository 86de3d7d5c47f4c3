package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseReportCategory(t *testing.T) {
	tests := []struct {
		in   string
		want ReportCategory
		ok   bool
	}{
		{"citas", ReportCategoryAppointments, true},
		{"INVOICES", ReportCategoryInvoices, true},
		{"ingresos", ReportCategoryPayments, true},
		{"tratamientos", ReportCategoryTreatments, true},
		{"PATIENTS", ReportCategoryPatients, true},
		{"UNKNOWN", ReportCategoryUnknown, false},
		{"recetas", ReportCategoryUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseReportCategory(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}

	assert.Equal(t, "desconocido", ReportCategoryUnknown.DisplayName())
	assert.False(t, ReportCategoryUnknown.IsKnown())
}

func TestDateRange(t *testing.T) {
	assert.True(t, DateRange{}.IsZero())
	assert.Equal(t, 0, DateRange{}.Days())

	r, ok := NewDateRange(day(2025, 11, 1), day(2025, 11, 30))
	require.True(t, ok)
	assert.Equal(t, 30, r.Days())

	_, ok = NewDateRange(day(2025, 11, 30), day(2025, 11, 1))
	assert.False(t, ok)

	afternoon := time.Date(2025, 11, 13, 22, 45, 0, 0, time.FixedZone("BOT", -4*60*60))
	single := SingleDay(afternoon)
	assert.Equal(t, day(2025, 11, 13), *single.Start)
	assert.Equal(t, 1, single.Days())

	start := day(2025, 1, 1)
	assert.Equal(t, 0, DateRange{Start: &start}.Days())
}

func TestNewReportFilter(t *testing.T) {
	loc := time.FixedZone("BOT", -4*60*60)
	status := StatusPaid
	name := "ana"
	amount := decimal.NewFromInt(100)
	r := SingleDay(day(2025, 11, 13))

	f := NewReportFilter(&QueryInterpretation{
		Category:  ReportCategoryInvoices,
		DateRange: r,
		Filters:   FilterSet{Status: &status, PatientName: &name, MaxAmount: &amount},
	}, loc, 50)

	require.NotNil(t, f.StartAt)
	require.NotNil(t, f.EndAt)
	assert.Equal(t, time.Date(2025, 11, 13, 4, 0, 0, 0, time.UTC), f.StartAt.UTC())
	assert.Equal(t, time.Date(2025, 11, 14, 3, 59, 59, 999999999, time.UTC), f.EndAt.UTC())
	assert.Equal(t, "ana", f.PatientName)
	assert.Equal(t, &status, f.Status)
	assert.Nil(t, f.MinAmount)
	assert.Equal(t, 50, f.Limit)

	open := NewReportFilter(&QueryInterpretation{Category: ReportCategoryPatients}, nil, 10)
	assert.Nil(t, open.StartAt)
	assert.Nil(t, open.EndAt)
	assert.Empty(t, open.PatientName)
}

func TestInvoiceBalance(t *testing.T) {
	inv := &Invoice{Total: decimal.NewFromInt(500), PaidAmount: decimal.NewFromInt(120), Status: InvoiceStatusPending}
	assert.Equal(t, "380", inv.Balance().String())

	inv.PaidAmount = decimal.NewFromInt(600)
	assert.True(t, inv.Balance().IsZero())

	inv.PaidAmount = decimal.Zero
	inv.Status = InvoiceStatusCancelled
	assert.True(t, inv.Balance().IsZero())
	assert.True(t, inv.IsCancelled())
}

func TestUserActiveAndRoleNames(t *testing.T) {
	inactive := false
	assert.True(t, (&User{}).Active())
	assert.False(t, (&User{IsActive: &inactive}).Active())

	assert.Equal(t, RoleAdmin, RoleNameByID(RoleIDAdmin))
	assert.Equal(t, RolePatient, RoleNameByID(RoleIDPatient))
	assert.Empty(t, RoleNameByID(42))
}
