package usecase

import (
	"context"
	"sort"

	"doctor-triage/internal/converter"
	"doctor-triage/internal/delivery/dto"
	"doctor-triage/internal/domain/entity"
	"doctor-triage/internal/domain/repository"
	"doctor-triage/pkg/retry"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DoctorUsecase interface {
	FindDoctors(ctx context.Context, filter *entity.DoctorFilter) ([]dto.DoctorResponse, error)
	GetAvailableAreas(ctx context.Context) ([]string, error)
	GetAvailableSpecializations(ctx context.Context) ([]string, error)
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	retryCfg   retry.Config
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	retryCfg retry.Config,
) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		retryCfg:   retryCfg,
	}
}

func (u *doctorUsecase) FindDoctors(ctx context.Context, filter *entity.DoctorFilter) ([]dto.DoctorResponse, error) {
	if filter == nil {
		filter = &entity.DoctorFilter{}
	}
	storageFilter := filter.StorageFilter()

	var doctors []entity.Doctor
	err := withStorageRetry(ctx, u.retryCfg, u.log, "find_doctors", func() error {
		var err error
		doctors, err = u.doctorRepo.FindByFilter(u.db.WithContext(ctx), &storageFilter)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(selectDoctors(doctors, filter)), nil
}

func (u *doctorUsecase) GetAvailableAreas(ctx context.Context) ([]string, error) {
	var doctors []entity.Doctor
	err := withStorageRetry(ctx, u.retryCfg, u.log, "find_doctor_locations", func() error {
		var err error
		doctors, err = u.doctorRepo.FindAllLocations(u.db.WithContext(ctx))
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to find doctor locations: %+v", err)
		return nil, err
	}

	return countAreas(doctors, entity.KnownAreas), nil
}

func (u *doctorUsecase) GetAvailableSpecializations(ctx context.Context) ([]string, error) {
	var specializations []string
	err := withStorageRetry(ctx, u.retryCfg, u.log, "find_specializations", func() error {
		var err error
		specializations, err = u.doctorRepo.FindDistinctSpecializations(u.db.WithContext(ctx))
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to find specializations: %+v", err)
		return nil, err
	}

	if specializations == nil {
		specializations = []string{}
	}
	sort.Strings(specializations)
	return specializations, nil
}

// selectDoctors ranks the storage result, then applies the home-city scope,
// the optional area and the optional limit. A zero limit returns everything.
func selectDoctors(doctors []entity.Doctor, filter *entity.DoctorFilter) []entity.Doctor {
	rankDoctors(doctors)

	selected := make([]entity.Doctor, 0, len(doctors))
	for i := range doctors {
		d := &doctors[i]
		if !d.InHomeCity() {
			continue
		}
		if filter.Area != nil && !d.InArea(*filter.Area) {
			continue
		}
		selected = append(selected, *d)
	}

	if filter.Limit != nil && *filter.Limit > 0 && *filter.Limit < len(selected) {
		selected = selected[:*filter.Limit]
	}
	return selected
}

// rankDoctors orders by credibility score desc, rating desc, name asc.
func rankDoctors(doctors []entity.Doctor) {
	sort.SliceStable(doctors, func(i, j int) bool {
		a, b := &doctors[i], &doctors[j]
		if c := compareCredibility(a.CredibilityScore, b.CredibilityScore); c != 0 {
			return c > 0
		}
		if c := a.Rating.Cmp(b.Rating); c != 0 {
			return c > 0
		}
		return a.Name < b.Name
	})
}

// compareCredibility treats a missing score as lower than any present one.
func compareCredibility(a, b decimal.NullDecimal) int {
	switch {
	case a.Valid && b.Valid:
		return a.Decimal.Cmp(b.Decimal)
	case a.Valid:
		return 1
	case b.Valid:
		return -1
	default:
		return 0
	}
}

// countAreas returns the areas mentioned by at least one home-city doctor,
// most mentioned first. Ties keep the order of areas.
func countAreas(doctors []entity.Doctor, areas []string) []string {
	counts := make([]int, len(areas))
	for i := range doctors {
		d := &doctors[i]
		if !d.InHomeCity() {
			continue
		}
		for j, area := range areas {
			if d.InArea(area) {
				counts[j]++
			}
		}
	}

	type areaCount struct {
		name  string
		count int
	}
	found := make([]areaCount, 0, len(areas))
	for j, area := range areas {
		if counts[j] >= 1 {
			found = append(found, areaCount{area, counts[j]})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].count > found[j].count })

	result := make([]string, len(found))
	for i, f := range found {
		result[i] = f.name
	}
	return result
}
