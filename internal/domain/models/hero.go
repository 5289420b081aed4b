// internal/domain/models/hero.go
package models

// HeroData is the landing-page hero section. Singleton: at most one
// document lives in the hero_data collection.
type HeroData struct {
	Meta `bson:",inline"`

	MainTitle           string    `bson:"mainTitle" json:"mainTitle"`
	HighlightedText     string    `bson:"highlightedText" json:"highlightedText"`
	Subtitle            string    `bson:"subtitle" json:"subtitle"`
	PrimaryButtonText   string    `bson:"primaryButtonText" json:"primaryButtonText"`
	SecondaryButtonText string    `bson:"secondaryButtonText" json:"secondaryButtonText"`
	Stats               HeroStats `bson:"stats" json:"stats"`
}

// HeroStats are the three headline counters shown under the hero text.
type HeroStats struct {
	Members        Stat `bson:"members" json:"members"`
	Projects       Stat `bson:"projects" json:"projects"`
	VolunteerHours Stat `bson:"volunteerHours" json:"volunteerHours"`
}

// Stat is a value/label pair rendered as a counter.
type Stat struct {
	Value string `bson:"value" json:"value"`
	Label string `bson:"label" json:"label"`
}
