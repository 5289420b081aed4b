// internal/domain/models/footer.go
package models

// FooterData is the site-wide footer content. Singleton: at most one
// document in footer_data.
type FooterData struct {
	Meta `bson:",inline"`

	OrganizationName string         `bson:"organizationName" json:"organizationName"`
	Description      string         `bson:"description" json:"description"`
	QuickLinks       []QuickLink    `bson:"quickLinks" json:"quickLinks"`
	Contact          FooterContact  `bson:"contact" json:"contact"`
	SocialMedia      []SocialLink   `bson:"socialMedia" json:"socialMedia"`
	KRS              string         `bson:"krs" json:"krs"`
	Copyright        string         `bson:"copyright" json:"copyright"`
}

type QuickLink struct {
	Text string `bson:"text" json:"text"`
	Href string `bson:"href" json:"href"`
}

type FooterContact struct {
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address" json:"address"`
}
