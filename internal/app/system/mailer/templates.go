// internal/app/system/mailer/templates.go
package mailer

import (
	"strings"
	"time"
)

// Defaults used when the admin has not customized the notification
// settings yet.
const (
	DefaultNotificationSubject = "Nowa wiadomość z formularza kontaktowego"

	DefaultNotificationTemplate = "Otrzymano nową wiadomość z formularza kontaktowego.\n\n" +
		"Od: {{name}} ({{email}})\n" +
		"Temat: {{subject}}\n" +
		"Data: {{date}}\n\n" +
		"Treść:\n{{message}}\n"
)

// NotificationData fills the admin-configurable template.
type NotificationData struct {
	Name    string
	Email   string
	Subject string
	Message string
	Date    time.Time
}

// RenderTemplate substitutes the template placeholders. Placeholders
// are literal {{name}}, {{email}}, {{subject}}, {{message}} and
// {{date}}; anything else in the template passes through verbatim,
// including unknown {{...}} sequences.
func RenderTemplate(tmpl string, data NotificationData) string {
	r := strings.NewReplacer(
		"{{name}}", data.Name,
		"{{email}}", data.Email,
		"{{subject}}", data.Subject,
		"{{message}}", data.Message,
		"{{date}}", data.Date.Format("02.01.2006, 15:04"),
	)
	return r.Replace(tmpl)
}

// BuildNotificationEmail renders the configured template into a
// ready-to-send email. Subject and template fall back to defaults
// when blank. The HTML body is the rendered text with newlines turned
// into <br>; nothing is escaped, so HTML the admin put in the
// template renders in their mail client.
func BuildNotificationEmail(to, subject, tmpl string, data NotificationData) Email {
	if subject == "" {
		subject = DefaultNotificationSubject
	}
	if tmpl == "" {
		tmpl = DefaultNotificationTemplate
	}
	text := RenderTemplate(tmpl, data)
	return Email{
		To:       to,
		Subject:  RenderTemplate(subject, data),
		TextBody: text,
		HTMLBody: strings.ReplaceAll(text, "\n", "<br>"),
	}
}
