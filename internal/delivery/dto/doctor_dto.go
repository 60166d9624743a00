package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// DoctorListQuery is decoded from the query string of GET /doctors.
type DoctorListQuery struct {
	Specialization string `validate:"omitempty,specialization"`
	Area           string `validate:"omitempty,max=100"`
	MinExperience  *int   `validate:"omitempty,gte=0,lte=80"`
	MaxExperience  *int   `validate:"omitempty,gte=0,lte=80"`
	Limit          int    `validate:"gte=1,lte=50"`
}

// Response DTOs

type DoctorResponse struct {
	ID               uuid.UUID           `json:"id"`
	Name             string              `json:"name"`
	Specialization   string              `json:"specialization"`
	Experience       *int                `json:"experience"`
	Degrees          []string            `json:"degrees"`
	Concentrations   []string            `json:"concentrations"`
	Hospital         string              `json:"hospital"`
	Chamber          string              `json:"chamber"`
	Helpline         string              `json:"helpline"`
	Address          string              `json:"address"`
	MapsLink         string              `json:"maps_link"`
	Rating           decimal.Decimal     `json:"rating"`
	CredibilityScore decimal.NullDecimal `json:"credibility_score"`
}
