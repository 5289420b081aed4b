// internal/domain/models/event.go
package models

// Event is a calendar entry on the public events section.
// Date and Time are display strings maintained by the admin, not
// parsed timestamps.
type Event struct {
	Meta `bson:",inline"`

	Title       string `bson:"title" json:"title"`
	Date        string `bson:"date" json:"date"`
	Time        string `bson:"time,omitempty" json:"time,omitempty"`
	Location    string `bson:"location" json:"location"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
	IsActive    bool   `bson:"isActive" json:"isActive"`
}

// MarkActive makes the event publicly visible.
func (e *Event) MarkActive() { e.IsActive = true }
