package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ImportReportEmailData holds data for the bulk-import summary email sent to
// the configured operator address after an import finishes.
type ImportReportEmailData struct {
	EventID       string
	Imported      int
	Failed        int
	FailedRecords []FailedRecord
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendImportReport(ctx context.Context, data *ImportReportEmailData) error
}
