package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-sage/internal/config"
	"github.com/Dan9191/finance-sage/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// Enabled reports whether an SMTP host is configured
func (s *Sender) Enabled() bool {
	return s.cfg.SMTPHost != ""
}

// SendBookingConfirmation tells the guest their stay is confirmed
func (s *Sender) SendBookingConfirmation(to, username string, booking models.Booking, property models.Property) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Booking Confirmed: %s", property.Title)
	e.Text = []byte(ConfirmationBody(username, booking, property))

	if !s.Enabled() {
		s.logger.WithFields(logrus.Fields{
			"to":         to,
			"booking_id": booking.ID,
		}).Info("SMTP not configured, skipping confirmation email")
		return nil
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send confirmation to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

// ConfirmationBody renders the plain-text confirmation
func ConfirmationBody(username string, booking models.Booking, property models.Property) string {
	body := fmt.Sprintf("Dear %s,\n\n", username)
	body += fmt.Sprintf(
		"Your stay at %s (%s) is confirmed.\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n"+
			"Guests: %d\n"+
			"Nights: %d\n"+
			"Total paid: $%s\n"+
			"Booking reference: %s\n",
		property.Title, property.Location,
		booking.CheckIn.Format(models.DateLayout),
		booking.CheckOut.Format(models.DateLayout),
		booking.Guests, booking.Nights(),
		booking.TotalPrice.StringFixed(2),
		booking.ID,
	)
	body += "\nBest regards,\nFinance Sage Stays"
	return body
}
