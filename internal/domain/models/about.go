// internal/domain/models/about.go
package models

// AboutData is the "about us" page section. Singleton: at most one
// document lives in the about_data collection. It owns the photo
// carousel as a nested array.
type AboutData struct {
	Meta `bson:",inline"`

	Title        string       `bson:"title" json:"title"`
	Description  string       `bson:"description" json:"description"`
	Mission      Mission      `bson:"mission" json:"mission"`
	Values       []ValueItem  `bson:"values" json:"values"`
	Achievements Achievements `bson:"achievements" json:"achievements"`
	Management   Management   `bson:"management" json:"management"`
	Carousel     Carousel     `bson:"carousel" json:"carousel"`
}

type Mission struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// ValueItem is one of the association's listed values, with an icon
// name the frontend resolves to an icon component.
type ValueItem struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon" json:"icon"`
}

type Achievements struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Stats       []Stat `bson:"stats" json:"stats"`
}

type Management struct {
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Members     []BoardMember `bson:"members" json:"members"`
}

// BoardMember is a management-board profile card.
type BoardMember struct {
	Name        string `bson:"name" json:"name"`
	Position    string `bson:"position" json:"position"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image" json:"image"`
	Experience  string `bson:"experience" json:"experience"`
	Education   string `bson:"education" json:"education"`
}

// Carousel is the autoplaying photo carousel embedded in the about
// section. AutoplaySpeed is in milliseconds.
type Carousel struct {
	Enabled       bool            `bson:"enabled" json:"enabled"`
	Autoplay      bool            `bson:"autoplay" json:"autoplay"`
	AutoplaySpeed int             `bson:"autoplaySpeed" json:"autoplaySpeed"`
	Images        []CarouselImage `bson:"images" json:"images"`
}

// CarouselImage is one slide. Order values are kept dense ascending
// (0..n-1) in display order by the store after every mutation.
type CarouselImage struct {
	ID          string `bson:"_id,omitempty" json:"_id,omitempty"`
	URL         string `bson:"url" json:"url"`
	Alt         string `bson:"alt" json:"alt"`
	Title       string `bson:"title,omitempty" json:"title,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Order       int    `bson:"order" json:"order"`
}
