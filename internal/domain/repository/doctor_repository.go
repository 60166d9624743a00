package repository

import (
	"doctor-triage/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	// FindByFilter applies the specialization and experience bounds of filter.
	FindByFilter(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error)
	FindAllLocations(db *gorm.DB) ([]entity.Doctor, error)
	FindByHospitalContains(db *gorm.DB, query string) ([]entity.Doctor, error)
	FindByHospital(db *gorm.DB, hospital string) ([]entity.Doctor, error)
	FindDistinctSpecializations(db *gorm.DB) ([]string, error)
	CreateBatch(db *gorm.DB, doctors []entity.Doctor) error
	DeleteAll(db *gorm.DB) (int64, error)
}
