package handler

import (
	"encoding/json"
	"net/http"

	"clinic-report-service/internal/delivery/dto"
	"clinic-report-service/internal/delivery/http/middleware"
	"clinic-report-service/internal/usecase"
	"clinic-report-service/pkg/response"
	"clinic-report-service/pkg/validator"

	"github.com/google/uuid"
)

type VoiceReportHandler struct {
	voiceReportUsecase usecase.VoiceReportUsecase
	validator          *validator.CustomValidator
}

func NewVoiceReportHandler(voiceReportUsecase usecase.VoiceReportUsecase, validator *validator.CustomValidator) *VoiceReportHandler {
	return &VoiceReportHandler{
		voiceReportUsecase: voiceReportUsecase,
		validator:          validator,
	}
}

// VoiceQuery handles a transcribed voice query and returns the report rows
// @Summary Run a voice report query
// @Description Interpret a Spanish sentence and return the matching report
// @Tags Reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.VoiceQueryRequest true "Voice Query Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /reports/voice-query [post]
func (h *VoiceReportHandler) VoiceQuery(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	report, err := h.voiceReportUsecase.Query(r.Context(), currentUserID(r), req)
	if err != nil {
		h.writeError(w, err, "Failed to generate report")
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}

// VoiceInterpret handles a transcribed voice query without fetching data
// @Summary Interpret a voice query
// @Description Show how a Spanish sentence is understood
// @Tags Reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.VoiceQueryRequest true "Voice Query Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reports/voice-interpret [post]
func (h *VoiceReportHandler) VoiceInterpret(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	interpretation, err := h.voiceReportUsecase.Interpret(r.Context(), currentUserID(r), req)
	if err != nil {
		h.writeError(w, err, "Failed to interpret query")
		return
	}

	response.Success(w, http.StatusOK, "Query interpreted successfully", interpretation)
}

// InvalidateCache handles dropping cached reports
// @Summary Flush cached voice reports
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param tipo query string false "Report type"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/report-cache [delete]
func (h *VoiceReportHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.voiceReportUsecase.InvalidateCache(r.Context(), currentUserID(r), r.URL.Query().Get("tipo"))
	if err != nil {
		h.writeError(w, err, "Failed to flush report cache")
		return
	}

	response.Success(w, http.StatusOK, "Report cache flushed successfully", map[string]int{"eliminados": deleted})
}

func (h *VoiceReportHandler) decode(w http.ResponseWriter, r *http.Request) (*dto.VoiceQueryRequest, bool) {
	var req dto.VoiceQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return nil, false
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}

	return &req, true
}

func (h *VoiceReportHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrEmptyQuery, usecase.ErrInvalidReferenceDate, usecase.ErrInvalidReportType:
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

// currentUserID returns the authenticated user, or nil on routes without auth
func currentUserID(r *http.Request) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return nil
	}
	return &userID
}
