package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response DTOs

type HospitalSummaryResponse struct {
	Hospital        string   `json:"hospital"`
	DoctorCount     int      `json:"doctor_count"`
	BranchCount     int      `json:"branch_count"`
	Branches        []string `json:"branches"`
	Specializations []string `json:"specializations"`
}

type HospitalDoctorResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Experience *int            `json:"experience"`
	Degrees    []string        `json:"degrees"`
	Rating     decimal.Decimal `json:"rating"`
	Chamber    string          `json:"chamber"`
	Helpline   string          `json:"helpline"`
}

type SpecializationGroupResponse struct {
	Name    string                   `json:"name"`
	Doctors []HospitalDoctorResponse `json:"doctors"`
}

type BranchDetailResponse struct {
	Chamber         string                        `json:"chamber"`
	Address         string                        `json:"address"`
	Specializations []SpecializationGroupResponse `json:"specializations"`
}

type HospitalDetailResponse struct {
	Hospital     string                 `json:"hospital"`
	TotalDoctors int                    `json:"total_doctors"`
	Branches     []BranchDetailResponse `json:"branches"`
}
