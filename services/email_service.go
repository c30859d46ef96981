package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ncinga/temi-event-backend/config"
	apperrors "github.com/ncinga/temi-event-backend/errors"
	"github.com/ncinga/temi-event-backend/logger"
	"github.com/ncinga/temi-event-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/gomail.v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// mailDialer abstracts the SMTP dial-and-send step so tests can substitute
// the transport. *gomail.Dialer satisfies it.
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService delivers export spreadsheets over SMTP. Sending is
// synchronous: callers block until the transport attempt completes or fails.
type EmailService struct {
	config    *config.SMTPConfig
	recipient string
	metrics   *EmailMetrics
	dialer    mailDialer
}

func NewEmailService(cfg *config.SMTPConfig, recipient string) *EmailService {
	return NewEmailServiceWithRegistry(cfg, recipient, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(cfg *config.SMTPConfig, recipient string, reg prometheus.Registerer) *EmailService {
	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "temi_email_send_duration_seconds",
			Help:    "Time taken to send export emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "temi_email_errors_total",
			Help: "Total number of export email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "temi_emails_sent_total",
			Help: "Total number of export emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:    cfg,
		recipient: recipient,
		metrics:   metrics,
	}
}

// SendRegistrationsExport attaches the bulk workbook to a composed message
// and delivers it to the configured export recipient. Missing transport
// configuration fails before any network attempt.
func (s *EmailService) SendRegistrationsExport(ctx context.Context, workbook []byte, total int) error {
	subject := fmt.Sprintf("Temi Registrations Export (%d records)", total)
	body := fmt.Sprintf("Attached: registrations export. Total records: %d", total)
	filename := fmt.Sprintf("temi_registrations_%s.xlsx", time.Now().Format("20060102_150405"))
	return s.send(subject, body, filename, workbook)
}

// SendVisitorExport delivers a one-row workbook for a single visitor
// submission, summarizing the visitor in the message body.
func (s *EmailService) SendVisitorExport(ctx context.Context, workbook []byte, v types.VisitorExportRequest) error {
	body := fmt.Sprintf("New registration received.\n\nName: %s\nDesignation: %s\nEmail: %s\n",
		v.Name, v.Designation, v.Email)
	filename := fmt.Sprintf("registration_%s.xlsx", time.Now().Format("20060102_150405"))
	return s.send("Temi Registration Export (Excel)", body, filename, workbook)
}

// Recipient returns the fixed export recipient address.
func (s *EmailService) Recipient() string {
	return s.recipient
}

func (s *EmailService) send(subject, body, filename string, workbook []byte) error {
	startTime := time.Now()
	log := logger.GetLogger()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	if err := s.checkConfig(); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Export email not configured", "error", err)
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.User, s.config.FromName)
	m.SetHeader("To", s.recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.Attach(filename,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(workbook))
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {xlsxContentType}}),
	)

	dialer := s.dialer
	if dialer == nil {
		dialer = gomail.NewDialer(s.config.Host, s.config.Port, s.config.User, s.config.Password)
	}

	if err := dialer.DialAndSend(m); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send export email",
			"error", err,
			"to", s.recipient,
			"subject", subject)
		return apperrors.NewDeliveryError(err)
	}

	s.metrics.sentCount.Inc()
	log.Infow("Export email sent",
		"to", s.recipient,
		"subject", subject,
		"attachment", filename)
	return nil
}

func (s *EmailService) checkConfig() error {
	if s.config.Host == "" || s.config.User == "" || s.config.Password == "" {
		return apperrors.MissingConfiguration("SMTP_HOST, SMTP_USER and SMTP_PASS must be set")
	}
	return nil
}
