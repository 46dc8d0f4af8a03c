package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendInquiry(name, email, service, message string) error
}

type smtp struct {
	auth   smtpPkg.Auth
	mail   string
	notify string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	auth := smtpPkg.PlainAuth("", mail, password, "smtp.gmail.com")

	return &smtp{
		auth:   auth,
		mail:   mail,
		notify: os.Getenv("NOTIFY_EMAIL"),
	}
}

// SendInquiry forwards a website contact inquiry to the fixed notification
// address. The visitor's address goes into Reply-To so the team can answer
// directly.
func (s *smtp) SendInquiry(name, email, service, message string) error {
	to := []string{s.notify}

	body := fmt.Sprintf(
		"To: %s\r\nReply-To: %s\r\nSubject: New Service Request: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n"+
			"<h2>New Inquiry from Digital Lab Website</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Service:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		s.notify, email, service, name, email, service, message)

	if err := smtpPkg.SendMail("smtp.gmail.com:587", s.auth, s.mail, to, []byte(body)); err != nil {
		return err
	}

	return nil
}
