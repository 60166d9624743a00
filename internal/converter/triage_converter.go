package converter

import (
	"doctor-triage/internal/delivery/dto"
	"doctor-triage/internal/domain/entity"
)

func TriageResultToResponse(result entity.TriageResult) *dto.TriageResponse {
	normalized := result.Normalize()
	return &dto.TriageResponse{
		Specialization: string(normalized.Specialization),
		Urgency:        string(normalized.Urgency),
	}
}
