package mail

import (
	"fmt"

	"github.com/skillswap-app/skillswap-backend/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email over SMTP.
type Mailer struct {
	dialer       *gomail.Dialer
	from         string
	resetBaseURL string
}

// NewMailer returns nil when SMTP is not configured; callers treat a nil
// mailer as "log instead of send".
func NewMailer(cfg *config.MailConfig) *Mailer {
	if cfg.Host == "" {
		return nil
	}
	return &Mailer{
		dialer:       gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:         cfg.From,
		resetBaseURL: cfg.ResetBaseURL,
	}
}

// SendPasswordReset emails the reset link for the given token.
func (m *Mailer) SendPasswordReset(to, token string) error {
	if m == nil {
		return fmt.Errorf("mailer is not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Reset your SkillSwap password")
	link := fmt.Sprintf("%s?token=%s", m.resetBaseURL, token)
	msg.SetBody("text/plain", fmt.Sprintf(
		"We received a request to reset your password.\n\n"+
			"Follow this link to choose a new one (valid for 1 hour):\n%s\n\n"+
			"If you didn't ask for this, you can ignore this email.", link))

	return m.dialer.DialAndSend(msg)
}
