package handler

import (
	"encoding/json"
	"net/http"

	"doctor-triage/internal/delivery/dto"
	"doctor-triage/internal/usecase"
	"doctor-triage/pkg/response"
	"doctor-triage/pkg/validator"
)

type TriageHandler struct {
	triageUsecase usecase.TriageUsecase
	validator     *validator.CustomValidator
}

func NewTriageHandler(triageUsecase usecase.TriageUsecase, validator *validator.CustomValidator) *TriageHandler {
	return &TriageHandler{
		triageUsecase: triageUsecase,
		validator:     validator,
	}
}

func (h *TriageHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req dto.TriageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.triageUsecase.Classify(r.Context(), req.Symptoms)
	if err != nil {
		response.InternalServerError(w, "Failed to analyze symptoms")
		return
	}

	response.Success(w, http.StatusOK, "Symptoms analyzed successfully", result)
}
