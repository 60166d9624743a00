package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"doctor-triage/internal/usecase"
	"doctor-triage/pkg/response"

	"github.com/gorilla/mux"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
	}
}

func (h *HospitalHandler) SearchHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalUsecase.SearchHospitals(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.InternalServerError(w, "Failed to search hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(mux.Vars(r)["name"])
	name = strings.TrimSpace(name)
	if err != nil || name == "" {
		response.Error(w, http.StatusBadRequest, "Invalid hospital name", nil)
		return
	}

	hospital, err := h.hospitalUsecase.GetHospitalDetail(r.Context(), name)
	if err != nil {
		if errors.Is(err, usecase.ErrHospitalNotFound) {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to get hospital")
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}
