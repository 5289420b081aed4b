// internal/domain/models/notifications.go
package models

// NotificationSettings configures the email sent to the association
// when a contact-form message arrives. Singleton: at most one
// document in notification_settings.
type NotificationSettings struct {
	Meta `bson:",inline"`

	EmailNotifications EmailNotifications `bson:"emailNotifications" json:"emailNotifications"`
}

// EmailNotifications holds the admin-editable notification email.
// Template supports the placeholders {{name}}, {{email}}, {{subject}},
// {{message}} and {{date}}, substituted verbatim.
type EmailNotifications struct {
	Enabled    bool   `bson:"enabled" json:"enabled"`
	AdminEmail string `bson:"adminEmail" json:"adminEmail"`
	Subject    string `bson:"subject" json:"subject"`
	Template   string `bson:"template" json:"template"`
}
