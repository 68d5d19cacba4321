package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"eventcheckin/internal/delivery/http/helpers"
	"eventcheckin/internal/domain"
)

// AttendeeController exposes the attendee check-in core over HTTP.
type AttendeeController struct {
	Logger     *slog.Logger
	CheckIn    domain.CheckInService
	Importer   domain.ImportService
	Aggregator domain.ZoneAggregator
}

func NewAttendeeController(logger *slog.Logger, checkIn domain.CheckInService, importer domain.ImportService, aggregator domain.ZoneAggregator) *AttendeeController {
	return &AttendeeController{
		Logger:     logger,
		CheckIn:    checkIn,
		Importer:   importer,
		Aggregator: aggregator,
	}
}

func (c *AttendeeController) logError(r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
}

// CheckInRequest is the request body for POST /attendees/check-in.
type CheckInRequest struct {
	TicketID string `json:"ticketId"`
	EventID  string `json:"eventId"`
	Location string `json:"location"`
}

// Validate implements helpers.Validator.
func (r *CheckInRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.TicketID) == "" {
		errs = append(errs, "ticketId is required")
	}
	if strings.TrimSpace(r.EventID) == "" {
		errs = append(errs, "eventId is required")
	}
	return errs
}

// CheckInData is the data object for a successful check-in.
type CheckInData struct {
	Attendee *domain.Attendee `json:"attendee"`
}

// HandleCheckIn godoc
// @Summary Check an attendee in at a zone
// @Description Transitions the attendee with the given ticket to checked_in and records the zone. The record must already exist; check-in never creates attendees. A second check-in without a check-out is rejected.
// @Tags attendees
// @Accept json
// @Produce json
// @Param body body controllers.CheckInRequest true "Ticket, event, and zone"
// @Success 200 {object} helpers.APIResponse "data.attendee is the updated record"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_state (already checked in)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendees/check-in [post]
func (c *AttendeeController) HandleCheckIn(w http.ResponseWriter, r *http.Request) {
	var req CheckInRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	attendee, err := c.CheckIn.CheckIn(r.Context(), req.EventID, req.TicketID, req.Location)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "attendee not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadyCheckedIn) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeInvalidState, "attendee already checked in")
			return
		}
		c.logError(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, "attendee checked in", CheckInData{Attendee: attendee})
}

// CheckOutRequest is the request body for POST /attendees/check-out.
type CheckOutRequest struct {
	TicketID string `json:"ticketId"`
	EventID  string `json:"eventId"`
}

// Validate implements helpers.Validator.
func (r *CheckOutRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.TicketID) == "" {
		errs = append(errs, "ticketId is required")
	}
	if strings.TrimSpace(r.EventID) == "" {
		errs = append(errs, "eventId is required")
	}
	return errs
}

// HandleCheckOut godoc
// @Summary Check an attendee out
// @Description Transitions a checked-in attendee to checked_out and returns the visit duration in minutes.
// @Tags attendees
// @Accept json
// @Produce json
// @Param body body controllers.CheckOutRequest true "Ticket and event"
// @Success 200 {object} helpers.APIResponse "data contains attendee and duration_minutes"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_state (not checked in)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendees/check-out [post]
func (c *AttendeeController) HandleCheckOut(w http.ResponseWriter, r *http.Request) {
	var req CheckOutRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.CheckIn.CheckOut(r.Context(), req.EventID, req.TicketID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "attendee not found")
			return
		}
		if errors.Is(err, domain.ErrNotCheckedIn) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeInvalidState, "attendee not checked in")
			return
		}
		c.logError(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, "attendee checked out", result)
}

// HandleStatus godoc
// @Summary Get an attendee's current status
// @Tags attendees
// @Produce json
// @Param ticketID path string true "Ticket ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data is the attendee snapshot"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendees/status/{ticketID}/{eventID} [get]
func (c *AttendeeController) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ticketID := r.PathValue("ticketID")
	eventID := r.PathValue("eventID")
	if ticketID == "" || eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing ticketID or eventID")
		return
	}

	attendee, err := c.CheckIn.Status(r.Context(), eventID, ticketID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "attendee not found")
			return
		}
		c.logError(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, "attendee status", attendee)
}

// HandleListCheckedIn godoc
// @Summary List attendees currently checked in
// @Tags attendees
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data is an array of attendees"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendees/checked-in/{eventID} [get]
func (c *AttendeeController) HandleListCheckedIn(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}

	attendees, err := c.CheckIn.ListCheckedIn(r.Context(), eventID)
	if err != nil {
		c.logError(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, "checked-in attendees", attendees)
}

// BulkImportRequest is the request body for POST /attendees/bulk-import.
// Each attendee record is keyed by its source header names; keys go through
// the same alias matching as CSV headers.
type BulkImportRequest struct {
	AttendeeList []map[string]string `json:"attendeeList"`
	EventID      string              `json:"eventId"`
}

// Validate implements helpers.Validator.
func (r *BulkImportRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.EventID) == "" {
		errs = append(errs, "eventId is required")
	}
	if len(r.AttendeeList) == 0 {
		errs = append(errs, "attendeeList is required")
	}
	return errs
}

// HandleBulkImport godoc
// @Summary Import a pre-parsed attendee list
// @Description Upserts one attendee per record. Per-record failures are collected and returned; they never abort the batch. Re-importing an existing ticket updates it.
// @Tags attendees
// @Accept json
// @Produce json
// @Param body body controllers.BulkImportRequest true "Attendee records and event"
// @Success 200 {object} helpers.APIResponse "data contains imported, failed, failed_records"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendees/bulk-import [post]
func (c *AttendeeController) HandleBulkImport(w http.ResponseWriter, r *http.Request) {
	var req BulkImportRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.Importer.ImportRecords(r.Context(), req.EventID, req.AttendeeList)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeValidation, verr.Reason)
			return
		}
		c.logError(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, "import finished", result)
}

// ImportCSVRequest is the JSON request body for POST /attendees/import-csv.
// The endpoint also accepts a raw text/csv body with eventId as a query
// parameter.
type ImportCSVRequest struct {
	CSV     string `json:"csv"`
	EventID string `json:"eventId"`
}

// Validate implements helpers.Validator.
func (r *ImportCSVRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.EventID) == "" {
		errs = append(errs, "eventId is required")
	}
	if r.CSV == "" {
		errs = append(errs, "csv is required")
	}
	return errs
}

// HandleImportCSV godoc
// @Summary Import attendees from raw CSV text
// @Description Parses comma-separated text with a header row (no quoting support) and upserts one attendee per data row. Required logical columns: serial number, name, email, phone, ticket ID, location; header spellings are matched leniently. Header-only input is rejected.
// @Tags attendees
// @Accept json
// @Produce json
// @Param body body controllers.ImportCSVRequest true "CSV text and event"
// @Success 200 {object} helpers.APIResponse "data contains imported, failed, failed_records"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_error (missing columns, empty file)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendees/import-csv [post]
func (c *AttendeeController) HandleImportCSV(w http.ResponseWriter, r *http.Request) {
	var eventID, raw string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "text/csv") {
		eventID = r.URL.Query().Get("eventId")
		if eventID == "" {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "eventId query parameter is required")
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		raw = string(body)
	} else {
		var req ImportCSVRequest
		if !helpers.DecodeAndValidate(w, r, &req) {
			return
		}
		eventID, raw = req.EventID, req.CSV
	}

	result, err := c.Importer.ImportCSV(r.Context(), eventID, raw)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeValidation, verr.Reason)
			return
		}
		c.logError(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, "import finished", result)
}

// HandleBulkCheckIn godoc
// @Summary Check in every attendee of an event
// @Description Transitions all attendees not currently checked in, each to their own recorded zone (or the default zone), all with one timestamp. Already-checked-in attendees are left unchanged.
// @Tags attendees
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains checked_in and total_checked_in counts"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendees/bulk-check-in/{eventID} [post]
func (c *AttendeeController) HandleBulkCheckIn(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}

	result, err := c.CheckIn.BulkCheckIn(r.Context(), eventID)
	if err != nil {
		c.logError(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, "bulk check-in finished", result)
}

// ClearEventData is the data object for DELETE /attendees/clear/{eventID}.
type ClearEventData struct {
	DeletedCount int64 `json:"deleted_count"`
}

// HandleClearEvent godoc
// @Summary Remove every attendee record for an event
// @Tags attendees
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data.deleted_count is the number of removed records"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendees/clear/{eventID} [delete]
func (c *AttendeeController) HandleClearEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}

	count, err := c.CheckIn.ClearEvent(r.Context(), eventID)
	if err != nil {
		c.logError(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, "event cleared", ClearEventData{DeletedCount: count})
}

// HandleZoneStats godoc
// @Summary Get live per-zone occupancy for an event
// @Description Returns the total number of checked-in attendees and the breakdown by the zone recorded at their last check-in. Zone capacity is not enforced here.
// @Tags attendees
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains total_checked_in and zones"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendees/zones/{eventID} [get]
func (c *AttendeeController) HandleZoneStats(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}

	stats, err := c.Aggregator.ZoneStats(r.Context(), eventID)
	if err != nil {
		c.logError(r, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, "zone stats", stats)
}
