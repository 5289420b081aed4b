// internal/domain/models/ward.go
package models

// Ward (podopieczny) is a person or cause the association supports.
type Ward struct {
	Meta `bson:",inline"`

	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
	IsActive    bool   `bson:"isActive" json:"isActive"`
}

// MarkActive makes the ward publicly visible.
func (w *Ward) MarkActive() { w.IsActive = true }
