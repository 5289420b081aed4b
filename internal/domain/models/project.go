// internal/domain/models/project.go
package models

// Project is one of the association's projects shown on the landing
// page. Soft-deleted via IsActive; archived projects stay in the
// projects collection and remain restorable from the admin panel.
type Project struct {
	Meta `bson:",inline"`

	Title        string `bson:"title" json:"title"`
	Description  string `bson:"description" json:"description"`
	Category     string `bson:"category" json:"category"`
	Participants string `bson:"participants" json:"participants"`
	Duration     string `bson:"duration" json:"duration"`
	Icon         string `bson:"icon" json:"icon"`
	Color        string `bson:"color" json:"color"`
	Image        string `bson:"image,omitempty" json:"image,omitempty"`
	IsActive     bool   `bson:"isActive" json:"isActive"`
}

// MarkActive makes the project publicly visible. New records are
// always created active.
func (p *Project) MarkActive() { p.IsActive = true }
