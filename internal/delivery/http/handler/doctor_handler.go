package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"doctor-triage/internal/delivery/dto"
	"doctor-triage/internal/domain/entity"
	"doctor-triage/internal/usecase"
	"doctor-triage/pkg/response"
	"doctor-triage/pkg/validator"
)

const (
	DefaultDoctorLimit = 12
	MaxDoctorLimit     = 50
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	query, fieldErrs := parseDoctorListQuery(r.URL.Query())
	if len(fieldErrs) > 0 {
		response.Error(w, http.StatusBadRequest, "Invalid query parameters", fieldErrs)
		return
	}

	if err := h.validator.Validate(query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if query.MinExperience != nil && query.MaxExperience != nil && *query.MaxExperience < *query.MinExperience {
		response.ValidationError(w, map[string]string{
			"MaxExperience": "MaxExperience must be greater than or equal to MinExperience",
		})
		return
	}

	doctors, err := h.doctorUsecase.FindDoctors(r.Context(), toDoctorFilter(query))
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	areas, err := h.doctorUsecase.GetAvailableAreas(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get locations")
		return
	}

	response.Success(w, http.StatusOK, "Locations retrieved successfully", areas)
}

func (h *DoctorHandler) GetSpecializations(w http.ResponseWriter, r *http.Request) {
	specializations, err := h.doctorUsecase.GetAvailableSpecializations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get specializations")
		return
	}

	response.Success(w, http.StatusOK, "Specializations retrieved successfully", specializations)
}

// parseDoctorListQuery reads the raw query string. Malformed integers are
// reported per parameter; limit is clamped rather than rejected.
func parseDoctorListQuery(values url.Values) (*dto.DoctorListQuery, map[string]string) {
	query := &dto.DoctorListQuery{
		Specialization: strings.ToUpper(strings.TrimSpace(values.Get("specialization"))),
		Area:           strings.TrimSpace(values.Get("area")),
		Limit:          DefaultDoctorLimit,
	}
	fieldErrs := make(map[string]string)

	parseInt := func(name string) *int {
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			return nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrs[name] = name + " must be an integer"
			return nil
		}
		return &v
	}

	query.MinExperience = parseInt("minExperience")
	query.MaxExperience = parseInt("maxExperience")
	if limit := parseInt("limit"); limit != nil {
		query.Limit = clamp(*limit, 1, MaxDoctorLimit)
	}

	return query, fieldErrs
}

func toDoctorFilter(query *dto.DoctorListQuery) *entity.DoctorFilter {
	filter := &entity.DoctorFilter{
		MinExperience: query.MinExperience,
		MaxExperience: query.MaxExperience,
		Limit:         &query.Limit,
	}
	if query.Specialization != "" {
		spec := entity.Specialization(query.Specialization)
		filter.Specialization = &spec
	}
	if query.Area != "" {
		area := query.Area
		filter.Area = &area
	}
	return filter
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
