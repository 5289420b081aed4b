// internal/domain/models/message.go
package models

// Message status values. The admin may set any status from any other;
// transitions are intentionally unguarded.
const (
	MessageStatusNew     = "new"
	MessageStatusRead    = "read"
	MessageStatusReplied = "replied"
)

// ContactMessage is a contact-form submission held in the admin
// inbox. Unlike the Archivable content types, deletion is hard.
type ContactMessage struct {
	Meta `bson:",inline"`

	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Subject string `bson:"subject" json:"subject"`
	Message string `bson:"message" json:"message"`
	Status  string `bson:"status" json:"status"`
}

// IsValidMessageStatus reports whether s is one of the known statuses.
func IsValidMessageStatus(s string) bool {
	switch s {
	case MessageStatusNew, MessageStatusRead, MessageStatusReplied:
		return true
	}
	return false
}
