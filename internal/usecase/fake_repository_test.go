package usecase

import (
	"errors"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"doctor-triage/internal/domain/entity"
	"doctor-triage/pkg/retry"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errStorageDown = errors.New("connection refused")

// fakeDoctorRepository evaluates filters in memory and returns rows in
// insertion order, leaving ranking to the caller.
type fakeDoctorRepository struct {
	doctors  []entity.Doctor
	failures int
	calls    int
}

func (r *fakeDoctorRepository) fail() error {
	r.calls++
	if r.failures > 0 {
		r.failures--
		return errStorageDown
	}
	return nil
}

func (r *fakeDoctorRepository) FindByFilter(_ *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	if err := r.fail(); err != nil {
		return nil, err
	}
	var result []entity.Doctor
	for _, d := range r.doctors {
		if filter.Specialization != nil && d.Specialization != *filter.Specialization {
			continue
		}
		if filter.MinExperience != nil && (d.Experience == nil || *d.Experience < *filter.MinExperience) {
			continue
		}
		if filter.MaxExperience != nil && (d.Experience == nil || *d.Experience > *filter.MaxExperience) {
			continue
		}
		result = append(result, d)
	}
	return result, nil
}

func (r *fakeDoctorRepository) FindAllLocations(_ *gorm.DB) ([]entity.Doctor, error) {
	if err := r.fail(); err != nil {
		return nil, err
	}
	return append([]entity.Doctor(nil), r.doctors...), nil
}

func (r *fakeDoctorRepository) FindByHospitalContains(_ *gorm.DB, query string) ([]entity.Doctor, error) {
	if err := r.fail(); err != nil {
		return nil, err
	}
	var result []entity.Doctor
	for _, d := range r.doctors {
		if strings.Contains(strings.ToLower(d.Hospital), strings.ToLower(query)) {
			result = append(result, d)
		}
	}
	return result, nil
}

func (r *fakeDoctorRepository) FindByHospital(_ *gorm.DB, hospital string) ([]entity.Doctor, error) {
	if err := r.fail(); err != nil {
		return nil, err
	}
	var result []entity.Doctor
	for _, d := range r.doctors {
		if d.Hospital == hospital {
			result = append(result, d)
		}
	}
	return result, nil
}

func (r *fakeDoctorRepository) FindDistinctSpecializations(_ *gorm.DB) ([]string, error) {
	if err := r.fail(); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var result []string
	for _, d := range r.doctors {
		if _, ok := seen[string(d.Specialization)]; !ok {
			seen[string(d.Specialization)] = struct{}{}
			result = append(result, string(d.Specialization))
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(result)))
	return result, nil
}

func (r *fakeDoctorRepository) CreateBatch(_ *gorm.DB, doctors []entity.Doctor) error {
	r.doctors = append(r.doctors, doctors...)
	return nil
}

func (r *fakeDoctorRepository) DeleteAll(_ *gorm.DB) (int64, error) {
	n := int64(len(r.doctors))
	r.doctors = nil
	return n, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testRetryConfig() retry.Config {
	return retry.Config{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}
