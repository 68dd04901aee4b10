package email

import "errors"

// Config - настройки SMTP отправителя
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Validate проверяет минимально необходимые поля
func (c *Config) Validate() error {
	if c.SMTPHost == "" {
		return errors.New("smtp host is required")
	}
	if c.SMTPPort == 0 {
		return errors.New("smtp port is required")
	}
	if c.FromEmail == "" {
		return errors.New("from email is required")
	}
	return nil
}
