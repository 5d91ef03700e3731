package service

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/suvai-store/internal/config"
	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/i18n"
	"github.com/suvai-store/internal/models"
)

// EmailService sends transactional mail over SMTP.
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates an email service.
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// AlertTo returns the shop inbox for enquiry alerts.
func (s *EmailService) AlertTo() string {
	if s.cfg == nil {
		return ""
	}
	return strings.TrimSpace(s.cfg.AlertTo)
}

// OrderStatusEmailInput carries the order status notification.
type OrderStatusEmailInput struct {
	OrderNo  string
	Status   string
	Amount   models.Money
	Currency string
}

// SendOrderStatusEmail notifies the customer about an order status change.
// The body is localized to the locale the order was placed in.
func (s *EmailService) SendOrderStatusEmail(toEmail string, input OrderStatusEmailInput, locale string) error {
	subject, body := buildOrderStatusContent(input, locale)
	return s.sendTextEmail(toEmail, subject, body)
}

// EnquiryAlertInput carries the shop-inbox alert for a new enquiry.
type EnquiryAlertInput struct {
	Kind    string
	Name    string
	Phone   string
	Email   string
	Details string
}

// SendEnquiryAlert notifies the shop inbox about a new enquiry, catering
// request or bulk order request. Alerts go out in English.
func (s *EmailService) SendEnquiryAlert(input EnquiryAlertInput) error {
	to := s.AlertTo()
	if to == "" {
		return ErrEmailNotConfigured
	}
	kindLabel := i18n.T(i18n.LocaleEN, "enquiry.kind."+input.Kind)
	subject := i18n.Sprintf(i18n.LocaleEN, "email.enquiry_alert.subject", kindLabel, input.Name)
	body := i18n.Sprintf(i18n.LocaleEN, "email.enquiry_alert.body", input.Name, input.Phone, input.Email, input.Details)
	return s.sendTextEmail(to, subject, body)
}

// SendCustomEmail sends a test or ad-hoc email from the back office.
func (s *EmailService) SendCustomEmail(toEmail, subject, body string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = "SMTP test"
	}
	body = strings.TrimSpace(body)
	if body == "" {
		body = "This is a test email from the Suvai store backend. SMTP is configured correctly."
	}
	return s.sendTextEmail(toEmail, subject, body)
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	if s.cfg == nil || !s.cfg.Enabled {
		return ErrEmailServiceDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	from := buildFromAddress(s.cfg.From, s.cfg.FromName)
	msg := buildEmailMessage(from, toEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if s.cfg.UseSSL {
		return normalizeEmailSendError(sendMailWithSSL(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg)))
	}
	if s.cfg.UseTLS {
		return normalizeEmailSendError(sendMailWithStartTLS(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg)))
	}
	return normalizeEmailSendError(sendMailPlain(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg)))
}

func buildOrderStatusContent(input OrderStatusEmailInput, locale string) (string, string) {
	normalized := i18n.Normalize(locale)
	status := strings.ToLower(strings.TrimSpace(input.Status))
	statusLabel := resolveStatusLabel(normalized, status)

	amount := input.Amount.String()
	currency := strings.TrimSpace(input.Currency)
	subject := i18n.Sprintf(normalized, "email.order_status.subject", input.OrderNo, statusLabel)

	switch status {
	case constants.PaymentStatusPaid:
		return subject, i18n.Sprintf(normalized, "email.order_status.body_paid", input.OrderNo, amount, currency)
	case constants.FulfillmentStatusShipped:
		return subject, i18n.Sprintf(normalized, "email.order_status.body_shipped", input.OrderNo, amount, currency)
	case constants.FulfillmentStatusDelivered:
		return subject, i18n.Sprintf(normalized, "email.order_status.body_delivered", input.OrderNo, amount, currency)
	case constants.PaymentStatusCancelled:
		return subject, i18n.Sprintf(normalized, "email.order_status.body_cancelled", input.OrderNo, amount, currency)
	default:
		return subject, i18n.Sprintf(normalized, "email.order_status.body", input.OrderNo, statusLabel, amount, currency)
	}
}

// resolveStatusLabel tries the payment status labels first, then the
// fulfillment ones, falling back to the raw value.
func resolveStatusLabel(locale, status string) string {
	key := "order.status." + status
	if label := i18n.T(locale, key); label != key {
		return label
	}
	key = "fulfillment.status." + status
	if label := i18n.T(locale, key); label != key {
		return label
	}
	return status
}

func buildFromAddress(from, name string) string {
	if strings.TrimSpace(name) == "" {
		return from
	}
	encoded := mime.QEncoding.Encode("UTF-8", name)
	return (&mail.Address{Name: encoded, Address: from}).String()
}

func buildEmailMessage(from, to, subject, body string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", from))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject)))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
}

func sendMailWithSSL(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendMailWithStartTLS(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return err
	}

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendMailPlain(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func normalizeEmailSendError(err error) error {
	if err == nil {
		return nil
	}
	if isEmailRecipientRejected(err) {
		return ErrInvalidEmail
	}
	return err
}

func isEmailRecipientRejected(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(strings.TrimSpace(err.Error()))
	if message == "" {
		return false
	}
	directKeywords := []string{
		"no such recipient",
		"no such user",
		"recipient not found",
		"recipient address rejected",
		"invalid recipient",
		"user unknown",
		"unknown user",
		"unknown mailbox",
		"mailbox unavailable",
	}
	for _, keyword := range directKeywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	if strings.Contains(message, "550") {
		hints := []string{"recipient", "user", "mailbox", "address", "rcpt"}
		for _, hint := range hints {
			if strings.Contains(message, hint) {
				return true
			}
		}
	}
	return false
}
