package app

import (
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/pkg/email"
)

// MockEmailProvider - заглушка отправителя писем для окружений
// без настроенного SMTP. Пишет письмо в лог вместо отправки.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(e *email.Email) (*email.SendResult, error) {
	logger.Info("[MOCK EMAIL] send", "to", e.To, "subject", e.Subject)
	return &email.SendResult{Success: true}, nil
}

func (m *MockEmailProvider) SendTeamInvitation(to, inviterCompany, acceptURL string) error {
	logger.Info("[MOCK EMAIL] team invitation", "to", to, "company", inviterCompany, "url", acceptURL)
	return nil
}

func (m *MockEmailProvider) SendVerification(to, verifyURL string) error {
	logger.Info("[MOCK EMAIL] verification", "to", to, "url", verifyURL)
	return nil
}
