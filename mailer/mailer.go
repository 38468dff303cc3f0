package mailer

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
}

// Default is nil when SMTP is not configured; callers treat email as best
// effort and skip it.
var Default *Mailer

func Init() {
	m, err := New()
	if err != nil {
		log.Println("SMTP not configured, order confirmation emails disabled:", err)
		return
	}
	Default = m
	log.Println("SMTP mailer ready")
}

func New() (*Mailer, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	return &Mailer{dialer: gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)}, nil
}

func (m *Mailer) SendOrderConfirmation(toEmail, fullName string, orderID int, total float64) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", os.Getenv("SMTP_FROM"))
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%d", orderID))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>Thank you for your order, %s!</h2>
    <p><strong>Order Number:</strong> #%d</p>
    <p><strong>Total:</strong> $%.2f</p>
    <p>Your order has been received and is being processed.</p>
    <p style="color: #666; font-size: 12px;">This is an automated email. Please do not reply.</p>
</body>
</html>
	`, fullName, orderID, total)

	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
