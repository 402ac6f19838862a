package email

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client       *resend.Client
	from         string
	fromName     string
	templatesDir string
	logger       *zap.Logger
}

func NewEmailService(logger *zap.Logger) *EmailService {
	return &EmailService{
		client:       resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:         os.Getenv("EMAIL_FROM_ADDRESS"),
		fromName:     os.Getenv("EMAIL_FROM_NAME"),
		templatesDir: "pkg/email/templates",
		logger:       logger,
	}
}

// SendDeliverableReviewEmail tells a client that a deliverable is waiting
// for their review on the shared project page.
func (s *EmailService) SendDeliverableReviewEmail(to, clientName, clientID, deliverableName string) error {
	reviewLink := os.Getenv("FRONTEND_URL") + "/client/" + clientID + "?shared=true"

	templateData := map[string]interface{}{
		"ClientName":      clientName,
		"DeliverableName": deliverableName,
		"ReviewLink":      reviewLink,
		"Year":            time.Now().Year(),
	}

	html, err := s.parseTemplate("deliverable-review.html", templateData)
	if err != nil {
		s.logger.Error("failed to parse review email template",
			zap.String("to", to), zap.Error(err))
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: deliverableName + " is ready for your review",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send review email",
			zap.String("to", to), zap.Error(err))
		return err
	}

	s.logger.Info("sent review email",
		zap.String("to", to), zap.String("id", resp.Id))
	return nil
}

func (s *EmailService) parseTemplate(templateName string, data interface{}) (string, error) {
	templatePath := filepath.Join(s.templatesDir, templateName)

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}

	return body.String(), nil
}
