// internal/domain/models/target.go
package models

// TargetData is the "who we are for" page section. Singleton: at most
// one document in target_data.
type TargetData struct {
	Meta `bson:",inline"`

	Title           string        `bson:"title" json:"title"`
	Description     string        `bson:"description" json:"description"`
	TargetGroups    []TargetGroup `bson:"targetGroups" json:"targetGroups"`
	GeneralBenefits []ValueItem   `bson:"generalBenefits" json:"generalBenefits"`
	CTA             CallToAction  `bson:"cta" json:"cta"`
}

// TargetGroup describes one audience the association serves.
type TargetGroup struct {
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Icon        string   `bson:"icon" json:"icon"`
	Benefits    []string `bson:"benefits" json:"benefits"`
}

type CallToAction struct {
	Title           string `bson:"title" json:"title"`
	Description     string `bson:"description" json:"description"`
	PrimaryButton   string `bson:"primaryButton" json:"primaryButton"`
	SecondaryButton string `bson:"secondaryButton" json:"secondaryButton"`
}
