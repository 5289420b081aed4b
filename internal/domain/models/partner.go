// internal/domain/models/partner.go
package models

// Partner is a sponsoring or cooperating organization. NameCI is the
// case-folded name used for duplicate detection; the store maintains
// it whenever Name changes.
type Partner struct {
	Meta `bson:",inline"`

	Name        string `bson:"name" json:"name"`
	NameCI      string `bson:"nameCI,omitempty" json:"-"`
	Type        string `bson:"type" json:"type"`
	Description string `bson:"description" json:"description"`
	Logo        string `bson:"logo" json:"logo"`
	Category    string `bson:"category" json:"category"`
	Website     string `bson:"website,omitempty" json:"website,omitempty"`
	IsActive    bool   `bson:"isActive" json:"isActive"`
}

// MarkActive makes the partner publicly visible.
func (p *Partner) MarkActive() { p.IsActive = true }
