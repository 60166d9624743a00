package repository

import (
	"strings"

	"doctor-triage/internal/domain/entity"
	domainRepo "doctor-triage/internal/domain/repository"

	"gorm.io/gorm"
)

const (
	// Missing credibility scores rank below present ones.
	doctorRankingOrder  = "credibility_score DESC NULLS LAST, rating DESC, name ASC"
	hospitalMemberOrder = "rating DESC, name ASC"

	createBatchSize = 500
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) FindByFilter(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db.Model(&entity.Doctor{})

	if filter != nil {
		if filter.Specialization != nil {
			query = query.Where("specialization = ?", string(*filter.Specialization))
		}
		if filter.MinExperience != nil {
			query = query.Where("experience >= ?", *filter.MinExperience)
		}
		if filter.MaxExperience != nil {
			query = query.Where("experience <= ?", *filter.MaxExperience)
		}
	}

	err := query.Order(doctorRankingOrder).Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

// FindAllLocations loads only the columns that make up the location text.
func (r *doctorRepository) FindAllLocations(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Select("id", "address", "hospital", "chamber").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByHospitalContains(db *gorm.DB, query string) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.
		Select("id", "hospital", "specialization", "chamber", "address").
		Where("hospital ILIKE ?", "%"+likeEscaper.Replace(query)+"%").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByHospital(db *gorm.DB, hospital string) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Where("hospital = ?", hospital).Order(hospitalMemberOrder).Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindDistinctSpecializations(db *gorm.DB) ([]string, error) {
	var specializations []string
	err := db.Model(&entity.Doctor{}).
		Distinct().
		Order("specialization ASC").
		Pluck("specialization", &specializations).Error
	if err != nil {
		return nil, err
	}
	return specializations, nil
}

func (r *doctorRepository) CreateBatch(db *gorm.DB, doctors []entity.Doctor) error {
	if len(doctors) == 0 {
		return nil
	}
	return db.CreateInBatches(&doctors, createBatchSize).Error
}

func (r *doctorRepository) DeleteAll(db *gorm.DB) (int64, error) {
	result := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
