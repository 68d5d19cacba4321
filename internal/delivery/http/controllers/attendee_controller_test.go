package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventcheckin/internal/delivery/http/helpers"
	"eventcheckin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeCheckInService implements domain.CheckInService for handler tests.
type fakeCheckInService struct {
	checkInErr        error
	checkInResult     *domain.Attendee
	checkOutErr       error
	checkOutResult    *domain.CheckOutResult
	statusErr         error
	statusResult      *domain.Attendee
	listErr           error
	listResult        []*domain.Attendee
	bulkErr           error
	bulkResult        *domain.BulkCheckInResult
	clearErr          error
	clearCount        int64
	lastEventID       string
	lastTicketID      string
	lastLocation      string
	lastClearEventID  string
	lastStatusEventID string
}

func (f *fakeCheckInService) CheckIn(ctx context.Context, eventID, ticketID, location string) (*domain.Attendee, error) {
	f.lastEventID, f.lastTicketID, f.lastLocation = eventID, ticketID, location
	return f.checkInResult, f.checkInErr
}

func (f *fakeCheckInService) CheckOut(ctx context.Context, eventID, ticketID string) (*domain.CheckOutResult, error) {
	f.lastEventID, f.lastTicketID = eventID, ticketID
	return f.checkOutResult, f.checkOutErr
}

func (f *fakeCheckInService) Status(ctx context.Context, eventID, ticketID string) (*domain.Attendee, error) {
	f.lastStatusEventID, f.lastTicketID = eventID, ticketID
	return f.statusResult, f.statusErr
}

func (f *fakeCheckInService) ListCheckedIn(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	f.lastEventID = eventID
	return f.listResult, f.listErr
}

func (f *fakeCheckInService) BulkCheckIn(ctx context.Context, eventID string) (*domain.BulkCheckInResult, error) {
	f.lastEventID = eventID
	return f.bulkResult, f.bulkErr
}

func (f *fakeCheckInService) ClearEvent(ctx context.Context, eventID string) (int64, error) {
	f.lastClearEventID = eventID
	return f.clearCount, f.clearErr
}

// fakeImportService implements domain.ImportService for handler tests.
type fakeImportService struct {
	csvErr         error
	csvResult      *domain.ImportResult
	recordsErr     error
	recordsResult  *domain.ImportResult
	lastEventID    string
	lastCSV        string
	lastRecords    []map[string]string
	lastCSVEventID string
}

func (f *fakeImportService) ImportCSV(ctx context.Context, eventID, raw string) (*domain.ImportResult, error) {
	f.lastCSVEventID, f.lastCSV = eventID, raw
	return f.csvResult, f.csvErr
}

func (f *fakeImportService) ImportRecords(ctx context.Context, eventID string, records []map[string]string) (*domain.ImportResult, error) {
	f.lastEventID, f.lastRecords = eventID, records
	return f.recordsResult, f.recordsErr
}

// fakeZoneAggregator implements domain.ZoneAggregator for handler tests.
type fakeZoneAggregator struct {
	statsErr    error
	statsResult *domain.ZoneStats
	lastEventID string
}

func (f *fakeZoneAggregator) ZoneStats(ctx context.Context, eventID string) (*domain.ZoneStats, error) {
	f.lastEventID = eventID
	return f.statsResult, f.statsErr
}

func newTestController(checkIn *fakeCheckInService, importer *fakeImportService, aggregator *fakeZoneAggregator) *AttendeeController {
	if checkIn == nil {
		checkIn = &fakeCheckInService{}
	}
	if importer == nil {
		importer = &fakeImportService{}
	}
	if aggregator == nil {
		aggregator = &fakeZoneAggregator{}
	}
	return NewAttendeeController(testLogger, checkIn, importer, aggregator)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestAttendeeController_HandleCheckIn(t *testing.T) {
	now := time.Now()
	checkedIn := &domain.Attendee{
		ID: "a-1", EventID: "e1", TicketID: "TCK-001", Name: "Asha Rao",
		Status: domain.StatusCheckedIn, CheckInTime: &now, Location: "Hall A",
	}

	tests := []struct {
		name       string
		body       string
		svc        *fakeCheckInService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			body:       `{"ticketId":"TCK-001","eventId":"e1","location":"Hall A"}`,
			svc:        &fakeCheckInService{checkInResult: checkedIn},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing ticketId",
			body:       `{"eventId":"e1"}`,
			svc:        &fakeCheckInService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown field rejected",
			body:       `{"ticketId":"TCK-001","eventId":"e1","extra":true}`,
			svc:        &fakeCheckInService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "attendee not found",
			body:       `{"ticketId":"TCK-404","eventId":"e1"}`,
			svc:        &fakeCheckInService{checkInErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:       "already checked in",
			body:       `{"ticketId":"TCK-001","eventId":"e1"}`,
			svc:        &fakeCheckInService{checkInErr: domain.ErrAlreadyCheckedIn},
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeInvalidState,
		},
		{
			name:       "internal error",
			body:       `{"ticketId":"TCK-001","eventId":"e1"}`,
			svc:        &fakeCheckInService{checkInErr: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(tt.svc, nil, nil)
			req := httptest.NewRequest(http.MethodPost, "/attendees/check-in", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			c.HandleCheckIn(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			envelope := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.False(t, envelope.Success)
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			require.True(t, envelope.Success)
			assert.Equal(t, "e1", tt.svc.lastEventID)
			assert.Equal(t, "TCK-001", tt.svc.lastTicketID)
			assert.Equal(t, "Hall A", tt.svc.lastLocation)
		})
	}
}

func TestAttendeeController_HandleCheckOut(t *testing.T) {
	now := time.Now()
	result := &domain.CheckOutResult{
		Attendee: &domain.Attendee{
			ID: "a-1", EventID: "e1", TicketID: "TCK-001",
			Status: domain.StatusCheckedOut, CheckOutTime: &now,
		},
		DurationMinutes: 42,
	}

	tests := []struct {
		name       string
		body       string
		svc        *fakeCheckInService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			body:       `{"ticketId":"TCK-001","eventId":"e1"}`,
			svc:        &fakeCheckInService{checkOutResult: result},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			body:       `{"ticketId":"TCK-404","eventId":"e1"}`,
			svc:        &fakeCheckInService{checkOutErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:       "not checked in",
			body:       `{"ticketId":"TCK-001","eventId":"e1"}`,
			svc:        &fakeCheckInService{checkOutErr: domain.ErrNotCheckedIn},
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeInvalidState,
		},
		{
			name:       "missing eventId",
			body:       `{"ticketId":"TCK-001"}`,
			svc:        &fakeCheckInService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(tt.svc, nil, nil)
			req := httptest.NewRequest(http.MethodPost, "/attendees/check-out", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			c.HandleCheckOut(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			envelope := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			require.True(t, envelope.Success)
			data, ok := envelope.Data.(map[string]any)
			require.True(t, ok)
			assert.EqualValues(t, 42, data["duration_minutes"])
		})
	}
}

func TestAttendeeController_HandleStatus(t *testing.T) {
	attendee := &domain.Attendee{ID: "a-1", EventID: "e1", TicketID: "TCK-001", Status: domain.StatusNotCheckedIn}

	tests := []struct {
		name       string
		ticketID   string
		eventID    string
		svc        *fakeCheckInService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			ticketID:   "TCK-001",
			eventID:    "e1",
			svc:        &fakeCheckInService{statusResult: attendee},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing path values",
			ticketID:   "",
			eventID:    "e1",
			svc:        &fakeCheckInService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "not found",
			ticketID:   "TCK-404",
			eventID:    "e1",
			svc:        &fakeCheckInService{statusErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(tt.svc, nil, nil)
			req := httptest.NewRequest(http.MethodGet, "http://test/attendees/status/x/y", nil)
			req.SetPathValue("ticketID", tt.ticketID)
			req.SetPathValue("eventID", tt.eventID)
			rec := httptest.NewRecorder()

			c.HandleStatus(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			envelope := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			require.True(t, envelope.Success)
			assert.Equal(t, "e1", tt.svc.lastStatusEventID)
			assert.Equal(t, "TCK-001", tt.svc.lastTicketID)
		})
	}
}

func TestAttendeeController_HandleListCheckedIn(t *testing.T) {
	svc := &fakeCheckInService{listResult: []*domain.Attendee{
		{ID: "a-1", TicketID: "TCK-001", Status: domain.StatusCheckedIn},
	}}
	c := newTestController(svc, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "http://test/attendees/checked-in/e1", nil)
	req.SetPathValue("eventID", "e1")
	rec := httptest.NewRecorder()

	c.HandleListCheckedIn(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.True(t, envelope.Success)
	data, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 1)
	assert.Equal(t, "e1", svc.lastEventID)
}

func TestAttendeeController_HandleBulkImport(t *testing.T) {
	okResult := &domain.ImportResult{Imported: 2, Failed: 1, FailedRecords: []domain.FailedRecord{
		{Row: ",x@example.com,,TCK-002,", Reason: "missing required field: name"},
	}}

	tests := []struct {
		name       string
		body       string
		importer   *fakeImportService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success with partial failures",
			body:       `{"eventId":"e1","attendeeList":[{"name":"Asha Rao","ticketId":"TCK-001"}]}`,
			importer:   &fakeImportService{recordsResult: okResult},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing attendeeList",
			body:       `{"eventId":"e1"}`,
			importer:   &fakeImportService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "validation error from service",
			body:       `{"eventId":"e1","attendeeList":[{"name":"x"}]}`,
			importer:   &fakeImportService{recordsErr: domain.NewValidationError("attendee list is empty")},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidation,
		},
		{
			name:       "internal error",
			body:       `{"eventId":"e1","attendeeList":[{"name":"x"}]}`,
			importer:   &fakeImportService{recordsErr: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(nil, tt.importer, nil)
			req := httptest.NewRequest(http.MethodPost, "/attendees/bulk-import", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			c.HandleBulkImport(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			envelope := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			require.True(t, envelope.Success)
			data, ok := envelope.Data.(map[string]any)
			require.True(t, ok)
			assert.EqualValues(t, 2, data["imported"])
			assert.EqualValues(t, 1, data["failed"])
			assert.Equal(t, "e1", tt.importer.lastEventID)
		})
	}
}

func TestAttendeeController_HandleImportCSV(t *testing.T) {
	okResult := &domain.ImportResult{Imported: 1, FailedRecords: []domain.FailedRecord{}}

	t.Run("json body", func(t *testing.T) {
		importer := &fakeImportService{csvResult: okResult}
		c := newTestController(nil, importer, nil)
		body := `{"eventId":"e1","csv":"name,ticketid\nAsha Rao,TCK-001\n"}`
		req := httptest.NewRequest(http.MethodPost, "/attendees/import-csv", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		c.HandleImportCSV(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		envelope := decodeEnvelope(t, rec)
		require.True(t, envelope.Success)
		assert.Equal(t, "e1", importer.lastCSVEventID)
		assert.True(t, strings.HasPrefix(importer.lastCSV, "name,ticketid"))
	})

	t.Run("raw csv body with eventId query", func(t *testing.T) {
		importer := &fakeImportService{csvResult: okResult}
		c := newTestController(nil, importer, nil)
		req := httptest.NewRequest(http.MethodPost, "/attendees/import-csv?eventId=e1", bytes.NewBufferString("name,ticketid\nAsha Rao,TCK-001\n"))
		req.Header.Set("Content-Type", "text/csv")
		rec := httptest.NewRecorder()

		c.HandleImportCSV(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "e1", importer.lastCSVEventID)
	})

	t.Run("raw csv body without eventId", func(t *testing.T) {
		c := newTestController(nil, &fakeImportService{}, nil)
		req := httptest.NewRequest(http.MethodPost, "/attendees/import-csv", bytes.NewBufferString("name,ticketid\n"))
		req.Header.Set("Content-Type", "text/csv")
		rec := httptest.NewRecorder()

		c.HandleImportCSV(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		envelope := decodeEnvelope(t, rec)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeBadRequest, envelope.Error.Code)
	})

	t.Run("empty csv rejected by service", func(t *testing.T) {
		importer := &fakeImportService{csvErr: domain.NewValidationError("CSV file is empty or invalid")}
		c := newTestController(nil, importer, nil)
		body := `{"eventId":"e1","csv":"name,ticketid\n"}`
		req := httptest.NewRequest(http.MethodPost, "/attendees/import-csv", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		c.HandleImportCSV(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		envelope := decodeEnvelope(t, rec)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeValidation, envelope.Error.Code)
		assert.Equal(t, "CSV file is empty or invalid", envelope.Error.Message)
	})
}

func TestAttendeeController_HandleBulkCheckIn(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		svc        *fakeCheckInService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			eventID:    "e1",
			svc:        &fakeCheckInService{bulkResult: &domain.BulkCheckInResult{CheckedIn: 3, TotalCheckedIn: 5}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing eventID",
			eventID:    "",
			svc:        &fakeCheckInService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "internal error",
			eventID:    "e1",
			svc:        &fakeCheckInService{bulkErr: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(tt.svc, nil, nil)
			req := httptest.NewRequest(http.MethodPost, "http://test/attendees/bulk-check-in/x", nil)
			req.SetPathValue("eventID", tt.eventID)
			rec := httptest.NewRecorder()

			c.HandleBulkCheckIn(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			envelope := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			require.True(t, envelope.Success)
			data, ok := envelope.Data.(map[string]any)
			require.True(t, ok)
			assert.EqualValues(t, 3, data["checked_in"])
			assert.EqualValues(t, 5, data["total_checked_in"])
		})
	}
}

func TestAttendeeController_HandleClearEvent(t *testing.T) {
	svc := &fakeCheckInService{clearCount: 7}
	c := newTestController(svc, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "http://test/attendees/clear/e1", nil)
	req.SetPathValue("eventID", "e1")
	rec := httptest.NewRecorder()

	c.HandleClearEvent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.True(t, envelope.Success)
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 7, data["deleted_count"])
	assert.Equal(t, "e1", svc.lastClearEventID)
}

func TestAttendeeController_HandleZoneStats(t *testing.T) {
	tests := []struct {
		name       string
		eventID    string
		aggregator *fakeZoneAggregator
		wantStatus int
		wantCode   string
	}{
		{
			name:    "success",
			eventID: "e1",
			aggregator: &fakeZoneAggregator{statsResult: &domain.ZoneStats{
				TotalCheckedIn: 3,
				Zones:          map[string]int{"Hall A": 2, "Hall B": 1},
			}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing eventID",
			eventID:    "",
			aggregator: &fakeZoneAggregator{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "internal error",
			eventID:    "e1",
			aggregator: &fakeZoneAggregator{statsErr: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(nil, nil, tt.aggregator)
			req := httptest.NewRequest(http.MethodGet, "http://test/attendees/zones/x", nil)
			req.SetPathValue("eventID", tt.eventID)
			rec := httptest.NewRecorder()

			c.HandleZoneStats(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			envelope := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			require.True(t, envelope.Success)
			data, ok := envelope.Data.(map[string]any)
			require.True(t, ok)
			assert.EqualValues(t, 3, data["total_checked_in"])
			zones, ok := data["zones"].(map[string]any)
			require.True(t, ok)
			assert.EqualValues(t, 2, zones["Hall A"])
			assert.Equal(t, "e1", tt.aggregator.lastEventID)
		})
	}
}
