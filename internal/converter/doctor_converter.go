package converter

import (
	"doctor-triage/internal/delivery/dto"
	"doctor-triage/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:               doctor.ID,
		Name:             doctor.Name,
		Specialization:   string(doctor.Specialization),
		Experience:       doctor.Experience,
		Degrees:          nonNilStrings(doctor.Degrees),
		Concentrations:   nonNilStrings(doctor.Concentrations),
		Hospital:         doctor.Hospital,
		Chamber:          doctor.Chamber,
		Helpline:         doctor.Helpline,
		Address:          doctor.Address,
		MapsLink:         doctor.MapsLink,
		Rating:           doctor.Rating,
		CredibilityScore: doctor.CredibilityScore,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
