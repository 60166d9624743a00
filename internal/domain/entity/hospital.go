package entity

// DefaultBranchLabel is used when a doctor has neither chamber nor address.
const DefaultBranchLabel = "Main"

// HospitalSummary is computed per search from doctor rows sharing a hospital name.
type HospitalSummary struct {
	Hospital        string
	DoctorCount     int
	BranchCount     int
	Branches        []string
	Specializations []string
}

type HospitalDetail struct {
	Hospital     string
	TotalDoctors int
	Branches     []BranchDetail
}

type BranchDetail struct {
	Chamber         string
	Address         string
	Specializations []SpecializationGroup
}

type SpecializationGroup struct {
	Name    string
	Doctors []Doctor
}
