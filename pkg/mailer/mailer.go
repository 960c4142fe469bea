package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"cineplex/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// MailData carries the fields email templates need.
type MailData struct {
	Email    string
	FullName string
	Token    string
	Link     string
}

// Mailer sends account emails. Delivery is best-effort: every Send*
// runs in its own goroutine and failures are only logged.
type Mailer interface {
	SendRegistrationConfirm(data MailData)
	SendPasswordReset(data MailData)
}

type smtpMailer struct {
	config  utils.EmailConfig
	baseURL string
	log     *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, baseURL string, log *zap.Logger) Mailer {
	return &smtpMailer{
		config:  config,
		baseURL: baseURL,
		log:     log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) SendRegistrationConfirm(data MailData) {
	data.Link = fmt.Sprintf("%s/api/confirm?token=%s", m.baseURL, url.QueryEscape(data.Token))
	go m.send(data.Email, "Confirm your registration", registrationTemplate, data)
}

func (m *smtpMailer) SendPasswordReset(data MailData) {
	data.Link = fmt.Sprintf("%s/reset-password?token=%s", m.baseURL, url.QueryEscape(data.Token))
	go m.send(data.Email, "Reset your password", passwordResetTemplate, data)
}

func (m *smtpMailer) send(to, subject string, tmpl *template.Template, data MailData) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		m.log.Error("Failed to render email template",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	dialer := gomail.NewDialer(m.config.Host, m.config.Port, m.config.User, m.config.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return
	}

	m.log.Info("Email sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)
}

var registrationTemplate = template.Must(template.New("registration").Parse(`
<html>
<body>
	<p>Hi {{.FullName}},</p>
	<p>Thanks for creating an account. Click the link below to activate it.
	The link is valid for 24 hours.</p>
	<p><a href="{{.Link}}">Activate my account</a></p>
</body>
</html>`))

var passwordResetTemplate = template.Must(template.New("password_reset").Parse(`
<html>
<body>
	<p>Hi {{.FullName}},</p>
	<p>We received a request to reset your password. Click the link below
	to choose a new one. The link is valid for 1 hour.</p>
	<p><a href="{{.Link}}">Reset my password</a></p>
	<p>If you did not request this, you can ignore this email.</p>
</body>
</html>`))
