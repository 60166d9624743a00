package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Doctor is a practitioner listed in the directory. Rating and CredibilityScore
// are only read for ranking.
type Doctor struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name             string              `gorm:"type:varchar(255);not null;index" json:"name"`
	Specialization   Specialization      `gorm:"type:varchar(64);not null;index" json:"specialization"`
	Experience       *int                `gorm:"index" json:"experience"`
	Degrees          pq.StringArray      `gorm:"type:text[]" json:"degrees"`
	Concentrations   pq.StringArray      `gorm:"type:text[]" json:"concentrations"`
	Hospital         string              `gorm:"type:varchar(255);not null;index" json:"hospital"`
	Chamber          string              `gorm:"type:text" json:"chamber"`
	Helpline         string              `gorm:"type:varchar(64)" json:"helpline"`
	Address          string              `gorm:"type:text" json:"address"`
	MapsLink         string              `gorm:"type:text" json:"maps_link"`
	Rating           decimal.Decimal     `gorm:"type:decimal(2,1);not null;default:0" json:"rating"`
	CredibilityScore decimal.NullDecimal `gorm:"type:decimal(4,3)" json:"credibility_score"`
	CreatedAt        time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// LocationText is the lower-cased address, hospital and chamber joined by spaces.
// Geographic filtering is containment over this text.
func (d *Doctor) LocationText() string {
	return strings.ToLower(d.Address + " " + d.Hospital + " " + d.Chamber)
}

// BranchLabel names the physical location of the doctor within its hospital:
// the chamber, else the address, else "Main".
func (d *Doctor) BranchLabel() string {
	if d.Chamber != "" {
		return d.Chamber
	}
	if d.Address != "" {
		return d.Address
	}
	return DefaultBranchLabel
}
