// Package notify delivers rendered reports to the submitter by email.
// Delivery is best-effort: a failed attempt is logged and reported, never
// escalated to the caller.
package notify

import (
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/Veerenstael/QuickScan/internal/shared/telemetry"
)

const subject = "Resultaten Veerenstael Quick Scan"

// Result reports the outcome of one dispatch. Attempted is false when
// dispatch was skipped because no recipient or no credentials were present;
// that distinction matters for observability and is surfaced in logs.
type Result struct {
	Attempted bool
	Succeeded bool
}

// Mailer sends reports over SMTP with STARTTLS.
type Mailer struct {
	Host     string
	Port     int
	User     string
	Password string
	CC       string

	// send overrides the SMTP roundtrip in tests.
	send func(m *gomail.Message) error
}

// New constructs a Mailer. Empty credentials yield a mailer that skips every
// dispatch, which is the normal mode for local development.
func New(host string, port int, user, password, cc string) *Mailer {
	return &Mailer{Host: host, Port: port, User: user, Password: password, CC: cc}
}

// Configured reports whether delivery credentials are present.
func (m *Mailer) Configured() bool {
	return m.User != "" && m.Password != ""
}

// Send attempts to deliver the report attachment to the given address.
// Both a recipient and credentials are required; absence of either is a skip,
// not an error. Transport failures are swallowed into the Result.
func (m *Mailer) Send(to, name string, attachment []byte, filename string) Result {
	if to == "" || !m.Configured() {
		telemetry.Info("mail.skipped", map[string]any{
			"has_recipient":   to != "",
			"has_credentials": m.Configured(),
		})
		return Result{}
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.User)
	msg.SetHeader("To", to)
	if m.CC != "" {
		msg.SetHeader("Cc", m.CC)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body(name))
	msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment)
		return err
	}))

	sendFn := m.send
	if sendFn == nil {
		dialer := gomail.NewDialer(m.Host, m.Port, m.User, m.Password)
		sendFn = func(msg *gomail.Message) error {
			return dialer.DialAndSend(msg)
		}
	}

	if err := sendFn(msg); err != nil {
		telemetry.Error("mail.failed", map[string]any{
			"to":    to,
			"error": err.Error(),
		})
		return Result{Attempted: true}
	}

	telemetry.Info("mail.sent", map[string]any{"to": to})
	return Result{Attempted: true, Succeeded: true}
}

func body(name string) string {
	return fmt.Sprintf("Beste %s,\n\n"+
		"In de bijlage staat het rapport van de QuickScan met alle vragen, antwoorden en jouw cijfers.\n\n"+
		"Met vriendelijke groet,\nVeerenstael", name)
}
