package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventcheckin/internal/domain"
	"eventcheckin/internal/metric"
)

// Logical columns of the attendee import schema. Source headers are matched
// against these through the alias table, so "S. No.", "s_no" and "sno" all
// resolve to serialNo.
const (
	colSerialNo = "serialNo"
	colName     = "name"
	colEmail    = "email"
	colPhone    = "phone"
	colTicketID = "ticketId"
	colLocation = "location"
)

var logicalColumns = []string{colSerialNo, colName, colEmail, colPhone, colTicketID, colLocation}

// defaultHeaderAliases maps each logical column to the normalized spellings
// accepted for it. Adding a new accepted header is a data change here, not a
// code change.
var defaultHeaderAliases = map[string][]string{
	colSerialNo: {"sno", "serialno", "srno", "serial", "no"},
	colName:     {"name", "fullname", "attendeename"},
	colEmail:    {"email", "emailid", "emailaddress", "mail"},
	colPhone:    {"phone", "phoneno", "phonenumber", "mobile", "mobileno", "contactno"},
	colTicketID: {"ticketid", "ticket", "ticketno", "ticketnumber"},
	colLocation: {"location", "zone", "area"},
}

// rowFields holds the typed values of one valid import row.
type rowFields struct {
	serialNo string
	name     string
	email    string
	phone    string
	ticketID string
	location string
}

// parsedRow is either a valid row carrying typed fields or an invalid one
// carrying the raw input and a reason. Invalid rows never reach the store.
type parsedRow struct {
	valid  bool
	fields rowFields
	raw    string
	reason string
}

type importService struct {
	repo    domain.AttendeeRepository
	email   domain.EmailService
	logger  *slog.Logger
	aliases map[string]string
}

// NewImportService creates an ImportService over the given repository. The
// alias table is validated here: a normalized spelling claimed by two
// logical columns is a construction error. emailSvc may be nil; when set,
// an import summary is mailed after each batch.
func NewImportService(repo domain.AttendeeRepository, emailSvc domain.EmailService, logger *slog.Logger) (domain.ImportService, error) {
	aliases := make(map[string]string)
	for _, col := range logicalColumns {
		for _, spelling := range defaultHeaderAliases[col] {
			if owner, ok := aliases[spelling]; ok {
				return nil, fmt.Errorf("header alias %q claimed by both %q and %q", spelling, owner, col)
			}
			aliases[spelling] = col
		}
	}
	return &importService{
		repo:    repo,
		email:   emailSvc,
		logger:  logger,
		aliases: aliases,
	}, nil
}

// normalizeHeader lowercases a source header and strips punctuation, spaces,
// underscores, and hyphens: "S. No." -> "sno", "email_ID" -> "emailid".
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', ' ', '\t', '_', '-':
			return -1
		}
		return r
	}, h)
}

func (s *importService) ImportCSV(ctx context.Context, eventID, raw string) (*domain.ImportResult, error) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	// Blank lines are skipped silently wherever they appear.
	nonBlank := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonBlank = append(nonBlank, line)
		}
	}
	if len(nonBlank) < 2 {
		return nil, domain.NewValidationError("CSV file is empty or invalid")
	}

	// Header row: map each position to a logical column. Unrecognized
	// headers are ignored; their values are simply dropped.
	headers := strings.Split(nonBlank[0], ",")
	positions := make(map[string]int, len(logicalColumns))
	for i, h := range headers {
		if col, ok := s.aliases[normalizeHeader(h)]; ok {
			if _, seen := positions[col]; !seen {
				positions[col] = i
			}
		}
	}

	// Required-column check before any row is processed.
	var missing []string
	for _, col := range logicalColumns {
		if _, ok := positions[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(fmt.Sprintf("missing required column(s): %s", strings.Join(missing, ", ")))
	}

	rows := make([]parsedRow, 0, len(nonBlank)-1)
	seen := make(map[string]struct{})
	for _, line := range nonBlank[1:] {
		// Split by comma; embedded commas are not supported (the CSV
		// contract has no quoting).
		values := strings.Split(line, ",")
		pick := func(col string) string {
			i := positions[col]
			if i >= len(values) {
				return ""
			}
			return strings.TrimSpace(values[i])
		}
		fields := rowFields{
			serialNo: pick(colSerialNo),
			name:     pick(colName),
			email:    pick(colEmail),
			phone:    pick(colPhone),
			ticketID: pick(colTicketID),
			location: pick(colLocation),
		}
		rows = append(rows, validateRow(fields, line, seen))
	}

	result := s.upsertRows(ctx, eventID, rows)
	s.sendReport(ctx, eventID, result)
	return result, nil
}

func (s *importService) ImportRecords(ctx context.Context, eventID string, records []map[string]string) (*domain.ImportResult, error) {
	if len(records) == 0 {
		return nil, domain.NewValidationError("attendee list is empty")
	}

	rows := make([]parsedRow, 0, len(records))
	seen := make(map[string]struct{})
	for _, record := range records {
		var fields rowFields
		for key, value := range record {
			value = strings.TrimSpace(value)
			switch s.aliases[normalizeHeader(key)] {
			case colSerialNo:
				fields.serialNo = value
			case colName:
				fields.name = value
			case colEmail:
				fields.email = value
			case colPhone:
				fields.phone = value
			case colTicketID:
				fields.ticketID = value
			case colLocation:
				fields.location = value
			}
		}
		raw := strings.Join([]string{
			fields.serialNo, fields.name, fields.email,
			fields.phone, fields.ticketID, fields.location,
		}, ",")
		rows = append(rows, validateRow(fields, raw, seen))
	}

	result := s.upsertRows(ctx, eventID, rows)
	s.sendReport(ctx, eventID, result)
	return result, nil
}

// validateRow applies per-row validation and in-batch duplicate detection.
// seen accumulates ticket IDs already claimed by earlier rows of the batch.
func validateRow(fields rowFields, raw string, seen map[string]struct{}) parsedRow {
	if fields.name == "" {
		return parsedRow{raw: raw, reason: "missing required field: name"}
	}
	if fields.ticketID == "" {
		return parsedRow{raw: raw, reason: "missing required field: ticketId"}
	}
	if _, dup := seen[fields.ticketID]; dup {
		return parsedRow{raw: raw, reason: fmt.Sprintf("duplicate ticket %q in batch", fields.ticketID)}
	}
	seen[fields.ticketID] = struct{}{}
	return parsedRow{valid: true, fields: fields, raw: raw}
}

// upsertRows writes valid rows to the store and folds per-row outcomes into
// an ImportResult. One bad row never aborts the batch.
func (s *importService) upsertRows(ctx context.Context, eventID string, rows []parsedRow) *domain.ImportResult {
	result := &domain.ImportResult{FailedRecords: []domain.FailedRecord{}}
	now := time.Now()
	for _, row := range rows {
		if !row.valid {
			result.Failed++
			result.FailedRecords = append(result.FailedRecords, domain.FailedRecord{Row: row.raw, Reason: row.reason})
			metric.ImportRows.WithLabelValues("failed").Inc()
			continue
		}
		f := row.fields
		attendee := domain.NewAttendee(eventID, f.ticketID, f.name, f.email, f.phone, f.serialNo, f.location, now)
		if _, err := s.repo.Upsert(ctx, attendee); err != nil {
			result.Failed++
			result.FailedRecords = append(result.FailedRecords, domain.FailedRecord{
				Row:    row.raw,
				Reason: fmt.Sprintf("store error: %v", err),
			})
			metric.ImportRows.WithLabelValues("failed").Inc()
			continue
		}
		result.Imported++
		metric.ImportRows.WithLabelValues("imported").Inc()
	}
	return result
}

// sendReport mails the import summary when a report mailer is configured.
// Mail failures are logged, never escalated to the import result.
func (s *importService) sendReport(ctx context.Context, eventID string, result *domain.ImportResult) {
	if s.email == nil {
		return
	}
	data := &domain.ImportReportEmailData{
		EventID:       eventID,
		Imported:      result.Imported,
		Failed:        result.Failed,
		FailedRecords: result.FailedRecords,
	}
	if err := s.email.SendImportReport(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "import report email failed", "event_id", eventID, "err", err)
	}
}
