// internal/app/system/mailer/templates_test.go
package mailer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/mzielinska/promyk/internal/app/system/mailer"
)

var sampleData = mailer.NotificationData{
	Name:    "Anna Kowalska",
	Email:   "anna@example.com",
	Subject: "Wolontariat",
	Message: "Chciałabym pomóc przy letnim obozie.",
	Date:    time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC),
}

func TestRenderTemplate_SubstitutesAllPlaceholders(t *testing.T) {
	tmpl := "Od: {{name}} <{{email}}>\nTemat: {{subject}}\n{{message}}\n{{date}}"
	got := mailer.RenderTemplate(tmpl, sampleData)

	for _, want := range []string{
		"Anna Kowalska",
		"anna@example.com",
		"Wolontariat",
		"Chciałabym pomóc przy letnim obozie.",
		"14.06.2025, 09:30",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered template missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "{{") {
		t.Errorf("unsubstituted placeholder left in:\n%s", got)
	}
}

func TestRenderTemplate_UnknownPlaceholderPassesThrough(t *testing.T) {
	got := mailer.RenderTemplate("Hello {{name}}, ref {{ticket}}", sampleData)
	if !strings.Contains(got, "{{ticket}}") {
		t.Errorf("unknown placeholder should pass through verbatim, got %q", got)
	}
}

func TestRenderTemplate_RepeatedPlaceholder(t *testing.T) {
	got := mailer.RenderTemplate("{{name}} / {{name}}", sampleData)
	if got != "Anna Kowalska / Anna Kowalska" {
		t.Errorf("got %q", got)
	}
}

func TestBuildNotificationEmail_Defaults(t *testing.T) {
	email := mailer.BuildNotificationEmail("admin@promyk.org", "", "", sampleData)

	if email.To != "admin@promyk.org" {
		t.Errorf("To = %q", email.To)
	}
	if email.Subject != mailer.DefaultNotificationSubject {
		t.Errorf("Subject = %q, want default", email.Subject)
	}
	if !strings.Contains(email.TextBody, "Anna Kowalska") {
		t.Errorf("text body missing sender name:\n%s", email.TextBody)
	}
	if !strings.Contains(email.HTMLBody, "<br>") {
		t.Errorf("HTML body should carry line breaks:\n%s", email.HTMLBody)
	}
}

func TestBuildNotificationEmail_CustomTemplate(t *testing.T) {
	email := mailer.BuildNotificationEmail(
		"admin@promyk.org",
		"Kontakt: {{subject}}",
		"Wiadomość od {{name}}",
		sampleData,
	)
	if email.Subject != "Kontakt: Wolontariat" {
		t.Errorf("Subject = %q", email.Subject)
	}
	if email.TextBody != "Wiadomość od Anna Kowalska" {
		t.Errorf("TextBody = %q", email.TextBody)
	}
}

func TestBuildNotificationEmail_SubstitutesVerbatim(t *testing.T) {
	data := sampleData
	data.Name = "Anna"
	data.Message = "2 < 3"
	email := mailer.BuildNotificationEmail(
		"admin@promyk.org",
		"s",
		"<b>Od: {{name}}</b>\n{{message}}",
		data,
	)

	// Template markup and substituted values reach the HTML body
	// untouched; only newlines become <br>.
	if email.HTMLBody != "<b>Od: Anna</b><br>2 < 3" {
		t.Errorf("HTMLBody = %q", email.HTMLBody)
	}
	if email.TextBody != "<b>Od: Anna</b>\n2 < 3" {
		t.Errorf("TextBody = %q", email.TextBody)
	}
}
