package notification

import (
	"fmt"
	"net/smtp"
	"strings"

	"tripserver/models"
	"tripserver/utils"

	"go.uber.org/zap"
)

// SMTPConfig holds the injected mail transport settings.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

// SMTPMailer sends plain-text booking notifications over SMTP.
type SMTPMailer struct {
	Config SMTPConfig
}

// NewSMTPMailer creates a Mailer using the given transport settings.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{Config: cfg}
}

// SendBookingNotification emails the admin a trip booking summary. The body
// carries a single date line for one-way trips and start/end lines for
// round trips.
func (m *SMTPMailer) SendBookingNotification(to string, details BookingDetails) error {
	body := bookingBody(details)
	return m.send(to, "New Trip Booking Notification", body)
}

// SendPackageBookingEmail emails the admin a package booking summary.
func (m *SMTPMailer) SendPackageBookingEmail(to string, booking models.PackageBooking) error {
	body := fmt.Sprintf(`New package booking received:

Email: %s
Contact No: %s
Package Name: %s
Number of Travelers: %d`,
		booking.Email, booking.Contact, booking.Package, booking.Passenger)
	return m.send(to, "New Package Booking Confirmation", body)
}

func bookingBody(d BookingDetails) string {
	var dates string
	if d.TripType == models.TripTypeOneWay {
		dates = fmt.Sprintf("Date: %s", d.Date)
	} else {
		dates = fmt.Sprintf("Start Date: %s\nEnd Date: %s", d.StartDate, d.EndDate)
	}
	return fmt.Sprintf(`A new booking has been made:

Trip Type: %s
From: %s
To: %s
Email: %s
Contact: %s
Passengers: %d
%s

Please review the booking details.`,
		d.TripType, d.From, d.To, d.Email, d.Contact, d.Passenger, dates)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	logger := utils.GetLogger()
	cfg := m.Config

	if cfg.From == "" || cfg.Password == "" || cfg.Host == "" || cfg.Port == "" {
		return models.NewSendError(fmt.Errorf("email configuration not set"))
	}

	headers := map[string]string{
		"From":         cfg.From,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/plain; charset=UTF-8",
	}

	var message strings.Builder
	for key, value := range headers {
		fmt.Fprintf(&message, "%s: %s\r\n", key, value)
	}
	message.WriteString("\r\n" + body)

	user := cfg.User
	if user == "" {
		user = cfg.From
	}
	auth := smtp.PlainAuth("", user, cfg.Password, cfg.Host)

	if err := smtp.SendMail(cfg.Host+":"+cfg.Port, auth, cfg.From, []string{to}, []byte(message.String())); err != nil {
		logger.Error("Failed to send email", zap.String("to", to), zap.Error(err))
		return models.NewSendError(err)
	}

	logger.Info("Notification email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
