package dto

// Request DTOs

type TriageRequest struct {
	Symptoms string `json:"symptoms" validate:"required,min=3"`
}

// Response DTOs

type TriageResponse struct {
	Specialization string `json:"specialization"`
	Urgency        string `json:"urgency"`
}
