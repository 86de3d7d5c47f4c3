package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinic-report-service/internal/converter"
	"clinic-report-service/internal/delivery/dto"
	"clinic-report-service/internal/domain/entity"
	"clinic-report-service/internal/domain/repository"
	"clinic-report-service/internal/nlp"
	"clinic-report-service/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const unknownReportMessage = "No se pudo determinar el tipo de reporte. Intente mencionar citas, facturas, tratamientos, pacientes o ingresos."

var (
	ErrEmptyQuery           = errors.New("query text is empty")
	ErrInvalidReferenceDate = errors.New("invalid reference date, use YYYY-MM-DD")
	ErrInvalidReportType    = errors.New("invalid report type")
)

type VoiceReportUsecase interface {
	Query(ctx context.Context, userID *uuid.UUID, req *dto.VoiceQueryRequest) (*dto.VoiceReportResponse, error)
	Interpret(ctx context.Context, userID *uuid.UUID, req *dto.VoiceQueryRequest) (*dto.InterpretationResponse, error)
	InvalidateCache(ctx context.Context, userID *uuid.UUID, tipo string) (int, error)
}

type voiceReportUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	interpreter  *nlp.Interpreter
	reportRepo   repository.ReportRepository
	cache        service.ReportCache
	auditService service.AuditService
	loc          *time.Location
	limit        int
	now          func() time.Time
}

// NewVoiceReportUsecase wires the interpreter to storage. now supplies the
// reference date when the request carries none; nil means time.Now.
func NewVoiceReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	interpreter *nlp.Interpreter,
	reportRepo repository.ReportRepository,
	cache service.ReportCache,
	auditService service.AuditService,
	loc *time.Location,
	limit int,
	now func() time.Time,
) VoiceReportUsecase {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &voiceReportUsecase{
		db:           db,
		log:          log,
		interpreter:  interpreter,
		reportRepo:   reportRepo,
		cache:        cache,
		auditService: auditService,
		loc:          loc,
		limit:        limit,
		now:          now,
	}
}

func (u *voiceReportUsecase) Query(ctx context.Context, userID *uuid.UUID, req *dto.VoiceQueryRequest) (*dto.VoiceReportResponse, error) {
	q, err := u.interpret(req)
	if err != nil {
		return nil, err
	}
	interpretation := converter.InterpretationToResponse(q)
	u.log.Infof("Voice query interpreted: %s", q.Summary)

	if !q.Category.IsKnown() {
		res := &dto.VoiceReportResponse{
			Interpretacion: interpretation,
			Datos:          []interface{}{},
			Resumen:        summaryOf(q, 0),
			Mensaje:        unknownReportMessage,
		}
		u.recordQuery(ctx, userID, q, 0, false)
		return res, nil
	}

	key := service.ReportCacheKey(q, u.limit)
	if cached, ok := u.cache.Get(ctx, key); ok {
		cached.Interpretacion = interpretation
		u.recordQuery(ctx, userID, q, cached.Resumen.Total, true)
		return cached, nil
	}

	filter := entity.NewReportFilter(q, u.loc, u.limit)
	datos, resumen, err := u.fetch(u.db.WithContext(ctx), q, filter)
	if err != nil {
		u.log.Warnf("Failed to fetch %s report: %+v", q.Category.DisplayName(), err)
		return nil, err
	}

	res := &dto.VoiceReportResponse{
		Interpretacion: interpretation,
		Datos:          datos,
		Resumen:        resumen,
	}

	u.cache.Set(ctx, key, res)
	u.recordQuery(ctx, userID, q, resumen.Total, false)

	return res, nil
}

func (u *voiceReportUsecase) Interpret(ctx context.Context, userID *uuid.UUID, req *dto.VoiceQueryRequest) (*dto.InterpretationResponse, error) {
	q, err := u.interpret(req)
	if err != nil {
		return nil, err
	}

	res := converter.InterpretationToResponse(q)

	metadata := entity.JSON{
		"texto":          q.OriginalText,
		"tipo_reporte":   q.Category.DisplayName(),
		"interpretacion": q.Summary,
	}
	if err := u.auditService.Record(ctx, nil, userID, entity.AuditActionVoiceInterpret, metadata); err != nil {
		u.log.Warnf("Failed to record voice interpretation: %+v", err)
	}

	return &res, nil
}

// InvalidateCache drops cached reports of tipo, or of every category when
// tipo is empty.
func (u *voiceReportUsecase) InvalidateCache(ctx context.Context, userID *uuid.UUID, tipo string) (int, error) {
	category := entity.ReportCategoryUnknown
	if tipo != "" {
		parsed, ok := entity.ParseReportCategory(tipo)
		if !ok {
			return 0, ErrInvalidReportType
		}
		category = parsed
	}

	deleted, err := u.cache.Invalidate(ctx, category)
	if err != nil {
		u.log.Warnf("Failed to invalidate report cache: %+v", err)
		return deleted, err
	}

	metadata := entity.JSON{
		"tipo_reporte": category.DisplayName(),
		"eliminados":   deleted,
	}
	if err := u.auditService.Record(ctx, nil, userID, entity.AuditActionCacheFlush, metadata); err != nil {
		u.log.Warnf("Failed to record cache flush: %+v", err)
	}

	return deleted, nil
}

func (u *voiceReportUsecase) interpret(req *dto.VoiceQueryRequest) (*entity.QueryInterpretation, error) {
	text := strings.TrimSpace(req.Texto)
	if text == "" {
		return nil, ErrEmptyQuery
	}

	ref, err := u.referenceDate(req.FechaReferencia)
	if err != nil {
		return nil, err
	}

	if req.TipoReporte != "" {
		category, ok := entity.ParseReportCategory(req.TipoReporte)
		if !ok {
			return nil, ErrInvalidReportType
		}
		return u.interpreter.InterpretAs(text, ref, category), nil
	}

	return u.interpreter.Interpret(text, ref), nil
}

func (u *voiceReportUsecase) referenceDate(s string) (time.Time, error) {
	if s == "" {
		return u.now().In(u.loc), nil
	}

	ref, err := time.ParseInLocation("2006-01-02", s, u.loc)
	if err != nil {
		return time.Time{}, ErrInvalidReferenceDate
	}
	return ref, nil
}

func (u *voiceReportUsecase) fetch(db *gorm.DB, q *entity.QueryInterpretation, filter *entity.ReportFilter) (interface{}, dto.ReportSummary, error) {
	switch q.Category {
	case entity.ReportCategoryAppointments:
		appointments, err := u.reportRepo.FindAppointments(db, filter)
		if err != nil {
			return nil, dto.ReportSummary{}, err
		}
		return converter.AppointmentsToRows(appointments, u.loc), summaryOf(q, len(appointments)), nil

	case entity.ReportCategoryInvoices:
		invoices, err := u.reportRepo.FindInvoices(db, filter)
		if err != nil {
			return nil, dto.ReportSummary{}, err
		}
		resumen := summaryOf(q, len(invoices))
		addInvoiceTotals(&resumen, invoices)
		return converter.InvoicesToRows(invoices, u.loc), resumen, nil

	case entity.ReportCategoryTreatments:
		plans, err := u.reportRepo.FindTreatmentPlans(db, filter)
		if err != nil {
			return nil, dto.ReportSummary{}, err
		}
		return converter.TreatmentPlansToRows(plans, u.loc), summaryOf(q, len(plans)), nil

	case entity.ReportCategoryPatients:
		patients, err := u.reportRepo.FindPatients(db, filter)
		if err != nil {
			return nil, dto.ReportSummary{}, err
		}
		return converter.PatientsToRows(patients, u.loc), summaryOf(q, len(patients)), nil

	case entity.ReportCategoryPayments:
		payments, err := u.reportRepo.FindPayments(db, filter)
		if err != nil {
			return nil, dto.ReportSummary{}, err
		}
		resumen := summaryOf(q, len(payments))
		addPaymentTotals(&resumen, payments)
		return converter.PaymentsToRows(payments, u.loc), resumen, nil
	}

	return []interface{}{}, summaryOf(q, 0), nil
}

func (u *voiceReportUsecase) recordQuery(ctx context.Context, userID *uuid.UUID, q *entity.QueryInterpretation, total int, cached bool) {
	metadata := entity.JSON{
		"texto":           q.OriginalText,
		"tipo_reporte":    q.Category.DisplayName(),
		"interpretacion":  q.Summary,
		"total_registros": total,
		"cache":           cached,
	}
	if q.DateRange.Start != nil {
		metadata["fecha_inicio"] = q.DateRange.Start.Format("2006-01-02")
	}
	if q.DateRange.End != nil {
		metadata["fecha_fin"] = q.DateRange.End.Format("2006-01-02")
	}

	if err := u.auditService.Record(ctx, nil, userID, entity.AuditActionVoiceQuery, metadata); err != nil {
		u.log.Warnf("Failed to record voice query: %+v", err)
	}
}

func summaryOf(q *entity.QueryInterpretation, total int) dto.ReportSummary {
	resumen := dto.ReportSummary{
		Total: total,
		Tipo:  q.Category.DisplayName(),
	}
	if q.DateRange.Start != nil && q.DateRange.End != nil {
		resumen.Periodo = q.DateRange.Start.Format("02/01/2006") + " - " + q.DateRange.End.Format("02/01/2006")
	}
	return resumen
}

// addInvoiceTotals sums billed and collected amounts; the outstanding
// balance is their difference.
func addInvoiceTotals(resumen *dto.ReportSummary, invoices []entity.Invoice) {
	if len(invoices) == 0 {
		return
	}

	billed, collected := decimal.Zero, decimal.Zero
	for _, invoice := range invoices {
		billed = billed.Add(invoice.Total)
		collected = collected.Add(invoice.PaidAmount)
	}

	resumen.TotalFacturado = converter.Money(billed)
	resumen.TotalCobrado = converter.Money(collected)
	resumen.SaldoPendiente = converter.Money(billed.Sub(collected))
}

func addPaymentTotals(resumen *dto.ReportSummary, payments []entity.Payment) {
	if len(payments) == 0 {
		return
	}

	total := decimal.Zero
	for _, payment := range payments {
		total = total.Add(payment.Amount)
	}

	resumen.TotalIngresos = converter.Money(total)
	resumen.Promedio = converter.Money(total.Div(decimal.NewFromInt(int64(len(payments)))))
}
