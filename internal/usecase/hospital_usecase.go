package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"doctor-triage/internal/converter"
	"doctor-triage/internal/delivery/dto"
	"doctor-triage/internal/domain/entity"
	"doctor-triage/internal/domain/repository"
	"doctor-triage/pkg/retry"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MinHospitalQueryLength is the shortest search query that hits storage.
const MinHospitalQueryLength = 2

var (
	ErrHospitalNotFound = errors.New("hospital not found")
)

type HospitalUsecase interface {
	SearchHospitals(ctx context.Context, query string) ([]dto.HospitalSummaryResponse, error)
	GetHospitalDetail(ctx context.Context, hospitalName string) (*dto.HospitalDetailResponse, error)
}

type hospitalUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	retryCfg   retry.Config
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	retryCfg retry.Config,
) HospitalUsecase {
	return &hospitalUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		retryCfg:   retryCfg,
	}
}

func (u *hospitalUsecase) SearchHospitals(ctx context.Context, query string) ([]dto.HospitalSummaryResponse, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinHospitalQueryLength {
		return []dto.HospitalSummaryResponse{}, nil
	}

	var doctors []entity.Doctor
	err := withStorageRetry(ctx, u.retryCfg, u.log, "search_hospitals", func() error {
		var err error
		doctors, err = u.doctorRepo.FindByHospitalContains(u.db.WithContext(ctx), query)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to search hospitals: %+v", err)
		return nil, err
	}

	return converter.HospitalSummariesToResponses(summarizeHospitals(doctors)), nil
}

func (u *hospitalUsecase) GetHospitalDetail(ctx context.Context, hospitalName string) (*dto.HospitalDetailResponse, error) {
	var doctors []entity.Doctor
	err := withStorageRetry(ctx, u.retryCfg, u.log, "find_hospital_doctors", func() error {
		var err error
		doctors, err = u.doctorRepo.FindByHospital(u.db.WithContext(ctx), hospitalName)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to find hospital doctors: %+v", err)
		return nil, err
	}

	detail := buildHospitalDetail(hospitalName, doctors)
	if detail == nil {
		u.log.Warnf("Failed to find hospital: %+v", hospitalName)
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalDetailToResponse(detail), nil
}

type hospitalAccumulator struct {
	count           int
	branches        map[string]struct{}
	specializations map[string]struct{}
}

// summarizeHospitals groups doctors by hospital name. Summaries are ordered by
// doctor count desc, then hospital name asc.
func summarizeHospitals(doctors []entity.Doctor) []entity.HospitalSummary {
	byHospital := make(map[string]*hospitalAccumulator)
	for i := range doctors {
		d := &doctors[i]
		acc, ok := byHospital[d.Hospital]
		if !ok {
			acc = &hospitalAccumulator{
				branches:        make(map[string]struct{}),
				specializations: make(map[string]struct{}),
			}
			byHospital[d.Hospital] = acc
		}
		acc.count++
		acc.branches[d.BranchLabel()] = struct{}{}
		acc.specializations[string(d.Specialization)] = struct{}{}
	}

	summaries := make([]entity.HospitalSummary, 0, len(byHospital))
	for hospital, acc := range byHospital {
		branches := sortedKeys(acc.branches)
		summaries = append(summaries, entity.HospitalSummary{
			Hospital:        hospital,
			DoctorCount:     acc.count,
			BranchCount:     len(branches),
			Branches:        branches,
			Specializations: sortedKeys(acc.specializations),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].DoctorCount != summaries[j].DoctorCount {
			return summaries[i].DoctorCount > summaries[j].DoctorCount
		}
		return summaries[i].Hospital < summaries[j].Hospital
	})
	return summaries
}

// buildHospitalDetail groups doctors by branch, then by specialization. Groups
// with more doctors come first; equal groups keep first-appearance order.
// Returns nil when doctors is empty.
func buildHospitalDetail(hospital string, doctors []entity.Doctor) *entity.HospitalDetail {
	if len(doctors) == 0 {
		return nil
	}

	members := make([]entity.Doctor, len(doctors))
	copy(members, doctors)
	sort.SliceStable(members, func(i, j int) bool {
		if c := members[i].Rating.Cmp(members[j].Rating); c != 0 {
			return c > 0
		}
		return members[i].Name < members[j].Name
	})

	var branchOrder []string
	byBranch := make(map[string][]entity.Doctor)
	for _, d := range members {
		label := d.BranchLabel()
		if _, ok := byBranch[label]; !ok {
			branchOrder = append(branchOrder, label)
		}
		byBranch[label] = append(byBranch[label], d)
	}

	sort.SliceStable(branchOrder, func(i, j int) bool {
		return len(byBranch[branchOrder[i]]) > len(byBranch[branchOrder[j]])
	})

	branches := make([]entity.BranchDetail, 0, len(branchOrder))
	for _, label := range branchOrder {
		branchDoctors := byBranch[label]
		branches = append(branches, entity.BranchDetail{
			Chamber:         label,
			Address:         branchDoctors[0].Address,
			Specializations: groupBySpecialization(branchDoctors),
		})
	}

	return &entity.HospitalDetail{
		Hospital:     hospital,
		TotalDoctors: len(members),
		Branches:     branches,
	}
}

func groupBySpecialization(doctors []entity.Doctor) []entity.SpecializationGroup {
	var groups []entity.SpecializationGroup
	index := make(map[entity.Specialization]int)
	for _, d := range doctors {
		i, ok := index[d.Specialization]
		if !ok {
			i = len(groups)
			index[d.Specialization] = i
			groups = append(groups, entity.SpecializationGroup{Name: string(d.Specialization)})
		}
		groups[i].Doctors = append(groups[i].Doctors, d)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Doctors) > len(groups[j].Doctors)
	})
	return groups
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
