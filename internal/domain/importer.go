package domain

import "context"

// FailedRecord is one rejected import row: the raw input plus a
// human-readable reason.
type FailedRecord struct {
	Row    string `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult summarizes a bulk import. Per-row failures never abort the
// batch; they accumulate here.
type ImportResult struct {
	Imported      int            `json:"imported"`
	Failed        int            `json:"failed"`
	FailedRecords []FailedRecord `json:"failed_records"`
}

// ImportService ingests attendee lists into the store. Re-importing an
// existing ticket is an update, not a failure.
type ImportService interface {
	// ImportCSV parses comma-separated text (first row = headers, no
	// quoting support) and upserts one attendee per data row. Returns a
	// ValidationError when a required column is missing or the input has
	// no data rows.
	ImportCSV(ctx context.Context, eventID, raw string) (*ImportResult, error)
	// ImportRecords ingests pre-parsed rows keyed by source header names.
	// Keys are normalized with the same alias table as CSV headers.
	ImportRecords(ctx context.Context, eventID string, records []map[string]string) (*ImportResult, error)
}
