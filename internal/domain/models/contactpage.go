// internal/domain/models/contactpage.go
package models

// ContactData is the contact page section (addresses, phones, social
// links). Singleton: at most one document in contact_data.
type ContactData struct {
	Meta `bson:",inline"`

	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	ContactInfo ContactInfo   `bson:"contactInfo" json:"contactInfo"`
	SocialMedia []SocialLink  `bson:"socialMedia" json:"socialMedia"`
	SupportLink SupportLink   `bson:"supportLink" json:"supportLink"`
}

// ContactInfo groups the contact channels; each is a list so the
// admin can publish several emails, phones, addresses and opening
// hour lines.
type ContactInfo struct {
	Email   []string `bson:"email" json:"email"`
	Phone   []string `bson:"phone" json:"phone"`
	Address []string `bson:"address" json:"address"`
	Hours   []string `bson:"hours" json:"hours"`
}

// SocialLink is a social-media profile with an icon name.
type SocialLink struct {
	Name string `bson:"name" json:"name"`
	URL  string `bson:"url" json:"url"`
	Icon string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// SupportLink points to the external donation/support page.
type SupportLink struct {
	Title       string `bson:"title" json:"title"`
	URL         string `bson:"url" json:"url"`
	Description string `bson:"description" json:"description"`
}
