package entity

// DoctorFilter is a domain-level filter for querying doctors.
// Nil fields are not applied.
type DoctorFilter struct {
	Specialization *Specialization
	Area           *string // case-insensitive substring of the location text
	MinExperience  *int    // inclusive
	MaxExperience  *int    // inclusive
	Limit          *int    // zero means unlimited
}

// StorageFilter keeps only the parts of the filter evaluated by the database.
func (f DoctorFilter) StorageFilter() DoctorFilter {
	return DoctorFilter{
		Specialization: f.Specialization,
		MinExperience:  f.MinExperience,
		MaxExperience:  f.MaxExperience,
	}
}
