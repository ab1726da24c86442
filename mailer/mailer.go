package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"net/textproto"

	"github.com/jordan-wright/email"
)

// The mail transport is a fixed SMTP endpoint over implicit TLS.
const (
	smtpHost = "smtp.gmail.com"
	smtpPort = 465
)

// bodyTemplate is the fixed notification body; the caller-supplied
// message is embedded in the middle.
var bodyTemplate = template.Must(template.New("notification").Parse(`
    <div style="font-family: Arial, sans-serif; color: #333; line-height: 1.6;">
        <h3 style="color: #007bff;">PavLTD - Inventory Management</h3>
        <hr>
        <p>We hope you're doing well. We are excited to share updates regarding our <strong>Inventory Management System</strong>. Our platform helps you efficiently manage stock, track real-time inventory, and streamline business operations.</p>
        <p>{{.Message}}</p>
        <p>Key Features of Our Inventory Management System:</p>
        <ul>
            <li>Real-time inventory tracking</li>
            <li>Automated stock alerts</li>
            <li>Easy-to-use dashboard</li>
            <li>Secure data storage</li>
            <li>Seamless integration with existing workflows</li>
        </ul>
        <p>If you have any questions or need assistance, feel free to reach out. We would love to hear your feedback and help you optimize your inventory processes.</p>
        <hr>
        <p>Best Regards,</p>
        <h4 style="color: #007bff;">PavLTD Team</h4>
        <p><a href="https://inventory-management-frontend-5bio.onrender.com" style="color: #007bff; text-decoration: none;">Visit Our Platform</a></p>
    </div>
`))

// Mailer sends notification emails through the configured SMTP account.
type Mailer struct {
	username string
	password string
}

func New(username, password string) *Mailer {
	return &Mailer{username: username, password: password}
}

func renderBody(message string) ([]byte, error) {
	var body bytes.Buffer
	err := bodyTemplate.Execute(&body, struct{ Message string }{Message: message})
	if err != nil {
		return nil, fmt.Errorf("render body: %w", err)
	}
	return body.Bytes(), nil
}

// Send renders the notification body around message and delivers it to a
// single recipient. There is no retry; a transport failure surfaces to
// the caller.
func (m *Mailer) Send(to, subject, message string) error {
	body, err := renderBody(message)
	if err != nil {
		return err
	}

	e := &email.Email{
		To:      []string{to},
		From:    m.username,
		Subject: subject,
		HTML:    body,
		Headers: textproto.MIMEHeader{},
	}
	auth := smtp.PlainAuth("", m.username, m.password, smtpHost)
	addr := fmt.Sprintf("%s:%d", smtpHost, smtpPort)
	if err := e.SendWithTLS(addr, auth, &tls.Config{ServerName: smtpHost}); err != nil {
		return fmt.Errorf("cannot send email: %w", err)
	}
	return nil
}
