package seed

import (
	"context"
	"fmt"

	"doctor-triage/internal/domain/entity"
	"doctor-triage/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Run replaces the whole doctor directory with doctors in a single transaction.
// It must not run alongside query traffic.
func Run(ctx context.Context, db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository, doctors []entity.Doctor) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted, err := doctorRepo.DeleteAll(tx)
		if err != nil {
			return fmt.Errorf("failed to clear doctors: %w", err)
		}
		log.Infof("Removed %d doctors", deleted)

		if len(doctors) == 0 {
			return nil
		}
		if err := doctorRepo.CreateBatch(tx, doctors); err != nil {
			return fmt.Errorf("failed to insert doctors: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Warnf("Failed to seed doctors: %+v", err)
		return err
	}

	log.Infof("Seeded %d doctors", len(doctors))
	return nil
}
