package email

// Email - одно письмо
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// SendResult - результат отправки
type SendResult struct {
	Success   bool
	MessageID string
}

// Provider - интерфейс отправителя писем. Сервисы вызывают его
// fire-and-forget: неуспех отправки не отменяет основную операцию
// (запись приглашения создается независимо от судьбы письма).
type Provider interface {
	Send(email *Email) (*SendResult, error)
	SendTeamInvitation(to, inviterCompany, acceptURL string) error
	SendVerification(to, verifyURL string) error
}
