package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/dishu-studio/studio-backend/config"
	"github.com/dishu-studio/studio-backend/logger"
	"github.com/dishu-studio/studio-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"
)

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService sends booking notifications through Resend. When no API key
// is configured it logs the would-be email instead, which keeps local
// development working without credentials.
type EmailService struct {
	config  *config.EmailConfig
	client  *resend.Client
	metrics *EmailMetrics
}

var _ types.EmailService = (*EmailService)(nil)

func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return NewEmailServiceWithRegistry(cfg, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(cfg *config.EmailConfig, reg prometheus.Registerer) *EmailService {
	logger.GetLogger().Infow("Initializing email service",
		"from", cfg.FromAddress,
		"sendEnabled", cfg.ResendAPIKey != "")

	var client *resend.Client
	if cfg.ResendAPIKey != "" {
		client = resend.NewClient(cfg.ResendAPIKey)
	}

	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dishustudio_email_send_duration_seconds",
			Help:    "Time taken to send emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dishustudio_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dishustudio_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:  cfg,
		client:  client,
		metrics: metrics,
	}
}

// SendBookingNotification alerts the studio inbox about a new booking.
func (s *EmailService) SendBookingNotification(ctx context.Context, booking *types.Booking) error {
	subject := fmt.Sprintf("New %s booking from %s", booking.ServiceType, booking.Name)
	return s.send(ctx, notificationEmailTemplate, types.EmailData{
		To:      s.config.AdminAddress,
		Subject: subject,
		TemplateData: map[string]interface{}{
			"Name":          booking.Name,
			"Email":         booking.Email,
			"Phone":         booking.Phone,
			"ServiceType":   booking.ServiceType,
			"PreferredDate": booking.PreferredDate,
			"Message":       booking.Message,
		},
	})
}

// SendBookingConfirmation tells the client their request was received.
func (s *EmailService) SendBookingConfirmation(ctx context.Context, booking *types.Booking) error {
	return s.send(ctx, confirmationEmailTemplate, types.EmailData{
		To:      booking.Email,
		Subject: "Your Dishu Studio booking request",
		TemplateData: map[string]interface{}{
			"Name":          booking.Name,
			"ServiceType":   booking.ServiceType,
			"PreferredDate": booking.PreferredDate,
		},
	})
}

func (s *EmailService) send(ctx context.Context, tmplText string, data types.EmailData) error {
	startTime := time.Now()
	log := logger.GetLogger()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	tmpl, err := template.New("email").Parse(tmplText)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to parse email template", "error", err)
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var htmlContent bytes.Buffer
	if err := tmpl.Execute(&htmlContent, data.TemplateData); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to execute email template", "error", err)
		return fmt.Errorf("failed to execute template: %w", err)
	}

	// Log-only mode when no API key is configured
	if s.client == nil {
		log.Infow("Email sending disabled, logging instead",
			"to", logger.MaskEmail(data.To),
			"subject", data.Subject)
		s.metrics.sentCount.Inc()
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:      []string{data.To},
		Subject: data.Subject,
		Html:    htmlContent.String(),
	}

	_, err = s.client.Emails.Send(params)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send email",
			"error", err,
			"to", logger.MaskEmail(data.To),
			"subject", data.Subject)
		return fmt.Errorf("email send failed: %w", err)
	}

	s.metrics.sentCount.Inc()
	log.Infow("Email sent successfully",
		"to", logger.MaskEmail(data.To),
		"subject", data.Subject)

	return nil
}

// Template constants
const notificationEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Booking Request</title>
</head>
<body style="font-family: sans-serif; color: #1A1A1A;">
    <h1 style="font-size: 20px;">New booking request</h1>
    <table cellpadding="6">
        <tr><td><strong>Client</strong></td><td>{{.Name}}</td></tr>
        <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
        <tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
        <tr><td><strong>Service</strong></td><td>{{.ServiceType}}</td></tr>
        <tr><td><strong>Preferred date</strong></td><td>{{if .PreferredDate}}{{.PreferredDate}}{{else}}not specified{{end}}</td></tr>
        <tr><td><strong>Message</strong></td><td>{{.Message}}</td></tr>
    </table>
</body>
</html>`

const confirmationEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Booking Received</title>
</head>
<body style="font-family: sans-serif; color: #1A1A1A;">
    <h1 style="font-size: 20px;">Thank you, {{.Name}}!</h1>
    <p>We received your {{.ServiceType}} shoot request{{if .PreferredDate}} for {{.PreferredDate}}{{end}}.</p>
    <p>The studio will reach out shortly to confirm the details.</p>
    <p>&mdash; Dishu Studio</p>
</body>
</html>`
