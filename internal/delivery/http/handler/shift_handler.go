package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"turnos-api/internal/delivery/dto"
	"turnos-api/internal/domain/entity"
	"turnos-api/internal/usecase"
	"turnos-api/pkg/response"
	"turnos-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ShiftHandler struct {
	shiftUsecase usecase.ShiftUsecase
	validator    *validator.CustomValidator
}

func NewShiftHandler(shiftUsecase usecase.ShiftUsecase, validator *validator.CustomValidator) *ShiftHandler {
	return &ShiftHandler{
		shiftUsecase: shiftUsecase,
		validator:    validator,
	}
}

// Create handles shift creation
// @Summary Create a new shift
// @Description Validates every business rule and reports all violations at once
// @Tags Turnos
// @Accept json
// @Produce json
// @Param request body dto.CreateShiftRequest true "Create Shift Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /turnos [post]
func (h *ShiftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, "", h.validator.FormatValidationErrors(err))
		return
	}

	shift, err := h.shiftUsecase.Create(r.Context(), &req)
	if err != nil {
		if verr, ok := usecase.IsValidationError(err); ok {
			response.ValidationError(w, verr.Message, verr.Messages())
			return
		}
		response.InternalServerError(w, "Failed to create shift")
		return
	}

	location := fmt.Sprintf("/api/v1/turnos/%d", shift.ID)
	response.Created(w, location, "Shift created successfully", shift)
}

// List handles listing shifts
// @Summary List shifts
// @Description Filtered, ordered by date and start time descending, paginated
// @Tags Turnos
// @Produce json
// @Param analyst_id query int false "Analyst ID"
// @Param project_id query int false "Project ID"
// @Param status query string false "Status"
// @Param date_from query string false "First date, YYYY-MM-DD"
// @Param date_to query string false "Last date, YYYY-MM-DD"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /turnos [get]
func (h *ShiftHandler) List(w http.ResponseWriter, r *http.Request) {
	query, errs := parseShiftFilterQuery(r)
	if len(errs) > 0 {
		response.ValidationError(w, "Invalid query parameters", errs)
		return
	}

	result, err := h.shiftUsecase.List(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to get shifts")
		return
	}

	response.SuccessWithPagination(w, http.StatusOK, "Shifts retrieved successfully", result.Shifts, result.Pagination)
}

// Get handles getting a shift by ID
// @Summary Get shift by ID
// @Tags Turnos
// @Produce json
// @Param id path int true "Shift ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /turnos/{id} [get]
func (h *ShiftHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		response.Error(w, http.StatusBadRequest, "Invalid shift ID", nil)
		return
	}

	shift, err := h.shiftUsecase.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrShiftNotFound):
			response.NotFound(w, "Shift not found")
		default:
			response.InternalServerError(w, "Failed to get shift")
		}
		return
	}

	response.Success(w, http.StatusOK, "Shift retrieved successfully", shift)
}

// Export handles the spreadsheet export
// @Summary Export shifts
// @Description Every shift matching the list filters, unpaged, as XLSX
// @Tags Turnos
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 400 {object} response.Response
// @Router /turnos/export [get]
func (h *ShiftHandler) Export(w http.ResponseWriter, r *http.Request) {
	query, errs := parseShiftFilterQuery(r)
	if len(errs) > 0 {
		response.ValidationError(w, "Invalid query parameters", errs)
		return
	}

	// Buffered so a failure can still be answered with the JSON envelope.
	var buf bytes.Buffer
	if err := h.shiftUsecase.Export(r.Context(), query, &buf); err != nil {
		response.InternalServerError(w, "Failed to export shifts")
		return
	}

	filename := fmt.Sprintf("turnos-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		// Headers are already sent; the client went away mid-download.
		logrus.WithError(err).Debug("Failed to write shift export")
	}
}

// parseShiftFilterQuery reads the list filters from the query string. Absent
// parameters stay nil; malformed ones are reported, all of them.
func parseShiftFilterQuery(r *http.Request) (*dto.ShiftFilterQuery, []string) {
	q := r.URL.Query()
	query := &dto.ShiftFilterQuery{}
	var errs []string

	parseID := func(name string) *int {
		raw := q.Get(name)
		if raw == "" {
			return nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			errs = append(errs, name+" must be a positive integer")
			return nil
		}
		return &v
	}
	parseDate := func(name string) *time.Time {
		raw := q.Get(name)
		if raw == "" {
			return nil
		}
		v, err := entity.ParseDate(raw)
		if err != nil {
			errs = append(errs, name+" must be a date in YYYY-MM-DD format")
			return nil
		}
		return &v
	}
	parseInt := func(name string) int {
		raw := q.Get(name)
		if raw == "" {
			return 0
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, name+" must be an integer")
			return 0
		}
		return v
	}

	query.AnalystID = parseID("analyst_id")
	query.ProjectID = parseID("project_id")
	if raw := q.Get("status"); raw != "" {
		status := entity.ShiftStatus(raw)
		if status.IsValid() {
			query.Status = &status
		} else {
			errs = append(errs, "status must be one of pending, confirmed, completed, cancelled")
		}
	}
	query.DateFrom = parseDate("date_from")
	query.DateTo = parseDate("date_to")
	query.Page = parseInt("page")
	query.PageSize = parseInt("page_size")

	return query, errs
}
