package mailer

import (
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Mailer dispatches outbound notification mail. Implementations must be safe
// for concurrent use by request handlers.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTP sends mail through a transactional SMTP relay.
type SMTP struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(host string, port int, user, pass, from string) *SMTP {
	return &SMTP{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

func (s *SMTP) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}

// Noop logs instead of sending. Used when SMTP is not configured.
type Noop struct {
	Log zerolog.Logger
}

func (n *Noop) Send(to, subject, body string) error {
	n.Log.Info().Str("to", to).Str("subject", subject).Msg("mail dispatch skipped (SMTP not configured)")
	return nil
}
