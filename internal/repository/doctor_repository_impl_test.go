package repository

import (
	"errors"
	"testing"

	"doctor-triage/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestFindByFilterAppliesStorageConditions(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorRepository()

	spec := entity.SpecializationCardiologist
	minExp, maxExp := 5, 20

	rows := sqlmock.NewRows([]string{"id", "name", "specialization", "experience", "rating"}).
		AddRow("6f1c0c2e-3c36-4d0e-9d43-0b1b5b3f9a11", "Dr. Amina Rahman", "CARDIOLOGIST", 15, "4.7")

	mock.ExpectQuery(`SELECT \* FROM "doctors" WHERE specialization = \$1 AND experience >= \$2 AND experience <= \$3 ORDER BY credibility_score DESC NULLS LAST, rating DESC, name ASC`).
		WithArgs("CARDIOLOGIST", minExp, maxExp).
		WillReturnRows(rows)

	doctors, err := repo.FindByFilter(db, &entity.DoctorFilter{
		Specialization: &spec,
		MinExperience:  &minExp,
		MaxExperience:  &maxExp,
	})
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Amina Rahman", doctors[0].Name)
	assert.Equal(t, entity.SpecializationCardiologist, doctors[0].Specialization)
	require.NotNil(t, doctors[0].Experience)
	assert.Equal(t, 15, *doctors[0].Experience)
	assert.Equal(t, "4.7", doctors[0].Rating.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByFilterWithoutConditions(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorRepository()

	mock.ExpectQuery(`SELECT \* FROM "doctors" ORDER BY credibility_score DESC NULLS LAST`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	doctors, err := repo.FindByFilter(db, nil)
	require.NoError(t, err)
	assert.Empty(t, doctors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByFilterPropagatesErrors(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorRepository()

	mock.ExpectQuery(`SELECT \* FROM "doctors"`).WillReturnError(errors.New("connection refused"))

	doctors, err := repo.FindByFilter(db, &entity.DoctorFilter{})
	assert.Error(t, err)
	assert.Nil(t, doctors)
}

func TestFindByHospitalContainsEscapesWildcards(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorRepository()

	mock.ExpectQuery(`FROM "doctors" WHERE hospital ILIKE \$1`).
		WithArgs(`%50\% care%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hospital", "specialization", "chamber", "address"}))

	_, err := repo.FindByHospitalContains(db, "50% care")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByHospitalOrdersByRatingThenName(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorRepository()

	rows := sqlmock.NewRows([]string{"id", "name", "hospital", "rating"}).
		AddRow("1d7a3c2e-0000-4000-8000-000000000001", "Dr. B", "City Health Clinic", "4.4").
		AddRow("1d7a3c2e-0000-4000-8000-000000000002", "Dr. A", "City Health Clinic", "4.1")

	mock.ExpectQuery(`SELECT \* FROM "doctors" WHERE hospital = \$1 ORDER BY rating DESC, name ASC`).
		WithArgs("City Health Clinic").
		WillReturnRows(rows)

	doctors, err := repo.FindByHospital(db, "City Health Clinic")
	require.NoError(t, err)
	assert.Len(t, doctors, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindDistinctSpecializations(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorRepository()

	mock.ExpectQuery(`SELECT DISTINCT .*specialization.* FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"specialization"}).
			AddRow("CARDIOLOGIST").
			AddRow("ENT_SPECIALIST"))

	specs, err := repo.FindDistinctSpecializations(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"CARDIOLOGIST", "ENT_SPECIALIST"}, specs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
