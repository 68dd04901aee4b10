package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider - реализация Provider поверх gomail
type SMTPProvider struct {
	config Config
	dialer *gomail.Dialer
}

// NewSMTPProvider создает SMTP отправитель
func NewSMTPProvider(config Config) (Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password)

	return &SMTPProvider{
		config: config,
		dialer: dialer,
	}, nil
}

// Send отправляет email
func (p *SMTPProvider) Send(email *Email) (*SendResult, error) {
	if len(email.To) == 0 {
		return nil, fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)
	if email.HTMLBody != "" {
		m.AddAlternative("text/html", email.HTMLBody)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return nil, fmt.Errorf("failed to send email: %w", err)
	}

	return &SendResult{Success: true}, nil
}

// SendTeamInvitation отправляет приглашение в команду компании
func (p *SMTPProvider) SendTeamInvitation(to, inviterCompany, acceptURL string) error {
	subject := fmt.Sprintf("You have been invited to join %s", inviterCompany)
	body, htmlBody := renderTeamInvitation(inviterCompany, acceptURL)

	_, err := p.Send(&Email{
		To:       []string{to},
		Subject:  subject,
		Body:     body,
		HTMLBody: htmlBody,
	})
	return err
}

// SendVerification отправляет письмо подтверждения email
func (p *SMTPProvider) SendVerification(to, verifyURL string) error {
	body, htmlBody := renderVerification(verifyURL)

	_, err := p.Send(&Email{
		To:       []string{to},
		Subject:  "Verify your email address",
		Body:     body,
		HTMLBody: htmlBody,
	})
	return err
}
