package services

import (
	"context"
	"fmt"
	"log"

	"eventcheckin/internal/domain"
)

type emailService struct {
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	recipient string
}

// NewEmailService returns an EmailService that sends import reports to the
// given recipient address using the Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, recipient string) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, recipient: recipient}
}

// SendImportReport sends the bulk-import summary email using the
// "import_report" template and the given data.
func (s *emailService) SendImportReport(ctx context.Context, data *domain.ImportReportEmailData) error {
	if data == nil {
		return fmt.Errorf("import report data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("import_report", data)
	if err != nil {
		return fmt.Errorf("failed to render import_report template: %w", err)
	}
	if err := s.mailer.Send(s.recipient, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send import report email: %w", err)
	}
	log.Printf("[EMAIL] Import report for event %s sent to %s", data.EventID, s.recipient)
	return nil
}
