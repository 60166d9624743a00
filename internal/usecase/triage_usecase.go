package usecase

import (
	"context"
	"strings"

	"doctor-triage/internal/converter"
	"doctor-triage/internal/delivery/dto"
	"doctor-triage/internal/domain/entity"
	"doctor-triage/internal/service"

	"github.com/sirupsen/logrus"
)

// Classifier produces a classification for non-empty symptom text and never fails.
type Classifier interface {
	Classify(ctx context.Context, symptoms string) (entity.TriageResult, entity.TriageSource)
}

type TriageUsecase interface {
	Classify(ctx context.Context, symptoms string) (*dto.TriageResponse, error)
}

type triageUsecase struct {
	log        *logrus.Logger
	classifier Classifier
	cache      service.TriageCache
}

// NewTriageUsecase accepts a nil cache.
func NewTriageUsecase(log *logrus.Logger, classifier Classifier, cache service.TriageCache) TriageUsecase {
	return &triageUsecase{
		log:        log,
		classifier: classifier,
		cache:      cache,
	}
}

func (u *triageUsecase) Classify(ctx context.Context, symptoms string) (*dto.TriageResponse, error) {
	result, source := u.classify(ctx, symptoms)

	u.log.WithFields(logrus.Fields{
		"source":         string(source),
		"specialization": string(result.Specialization),
		"urgency":        string(result.Urgency),
	}).Info("Symptoms classified")

	return converter.TriageResultToResponse(result), nil
}

func (u *triageUsecase) classify(ctx context.Context, symptoms string) (entity.TriageResult, entity.TriageSource) {
	if strings.TrimSpace(symptoms) == "" {
		return entity.DefaultTriageResult(), entity.TriageSourceDefault
	}

	if u.cache != nil {
		cached, err := u.cache.Get(ctx, symptoms)
		if err != nil {
			u.log.Warnf("Failed to read triage cache: %+v", err)
		} else if cached != nil {
			return *cached, entity.TriageSourceCache
		}
	}

	result, source := u.classifier.Classify(ctx, symptoms)
	result = result.Normalize()

	// Only model answers are cached.
	if u.cache != nil && source == entity.TriageSourceLLM {
		if err := u.cache.Set(ctx, symptoms, result); err != nil {
			u.log.Warnf("Failed to write triage cache: %+v", err)
		}
	}

	return result, source
}
