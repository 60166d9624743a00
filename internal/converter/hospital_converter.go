package converter

import (
	"doctor-triage/internal/delivery/dto"
	"doctor-triage/internal/domain/entity"
)

func HospitalSummariesToResponses(summaries []entity.HospitalSummary) []dto.HospitalSummaryResponse {
	responses := make([]dto.HospitalSummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = dto.HospitalSummaryResponse{
			Hospital:        s.Hospital,
			DoctorCount:     s.DoctorCount,
			BranchCount:     s.BranchCount,
			Branches:        nonNilStrings(s.Branches),
			Specializations: nonNilStrings(s.Specializations),
		}
	}
	return responses
}

func HospitalDetailToResponse(detail *entity.HospitalDetail) *dto.HospitalDetailResponse {
	if detail == nil {
		return nil
	}

	branches := make([]dto.BranchDetailResponse, len(detail.Branches))
	for i, branch := range detail.Branches {
		groups := make([]dto.SpecializationGroupResponse, len(branch.Specializations))
		for j, group := range branch.Specializations {
			doctors := make([]dto.HospitalDoctorResponse, len(group.Doctors))
			for k, d := range group.Doctors {
				doctors[k] = dto.HospitalDoctorResponse{
					ID:         d.ID,
					Name:       d.Name,
					Experience: d.Experience,
					Degrees:    nonNilStrings(d.Degrees),
					Rating:     d.Rating,
					Chamber:    d.Chamber,
					Helpline:   d.Helpline,
				}
			}
			groups[j] = dto.SpecializationGroupResponse{Name: group.Name, Doctors: doctors}
		}
		branches[i] = dto.BranchDetailResponse{
			Chamber:         branch.Chamber,
			Address:         branch.Address,
			Specializations: groups,
		}
	}

	return &dto.HospitalDetailResponse{
		Hospital:     detail.Hospital,
		TotalDoctors: detail.TotalDoctors,
		Branches:     branches,
	}
}
