package service

import (
	"strings"

	"doctor-triage/internal/domain/entity"
)

type urgencyRule struct {
	urgency  entity.Urgency
	triggers []string
}

type specializationRule struct {
	specialization entity.Specialization
	triggers       []string
}

// Evaluated top to bottom, first match wins. Order matters: "stroke" is both an
// emergency sign and a neurology trigger, "chest pain" both emergency and cardiology.
var urgencyRules = []urgencyRule{
	{entity.UrgencyEmergency, []string{
		"chest pain",
		"pain in chest",
		"shortness of breath",
		"severe breathing",
		"can't breathe",
		"cannot breathe",
		"unconscious",
		"seizure",
		"stroke",
		"face droop",
		"slurred speech",
		"suicidal",
		"bleeding heavily",
		"uncontrolled bleeding",
	}},
	{entity.UrgencyHigh, []string{"severe", "intense", "worsening"}},
	{entity.UrgencyLow, []string{"mild", "slight"}},
}

var specializationRules = []specializationRule{
	{entity.SpecializationCardiologist, []string{"heart", "chest pain", "palpitations", "pressure in chest"}},
	{entity.SpecializationNeurologist, []string{"stroke", "seizure", "numbness", "weakness", "migraine"}},
	{entity.SpecializationDermatologist, []string{"rash", "skin", "itch", "acne"}},
	{entity.SpecializationOrthopedic, []string{"bone", "joint", "fracture", "back pain", "sprain"}},
	{entity.SpecializationGastroenterologist, []string{"stomach", "abdomen", "abdominal", "nausea", "vomiting", "diarrhea"}},
	{entity.SpecializationPediatrician, []string{"child", "baby", "infant", "toddler"}},
	{entity.SpecializationPsychiatrist, []string{"anxiety", "depression", "panic", "insomnia"}},
}

// RuleClassifier maps symptom text to a TriageResult by keyword matching.
// It performs no I/O and always returns a normalized result.
type RuleClassifier struct{}

func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

func (c *RuleClassifier) Classify(symptoms string) entity.TriageResult {
	s := strings.ToLower(symptoms)

	result := entity.DefaultTriageResult()

	for _, rule := range urgencyRules {
		if containsAny(s, rule.triggers) {
			result.Urgency = rule.urgency
			break
		}
	}

	for _, rule := range specializationRules {
		if containsAny(s, rule.triggers) {
			result.Specialization = rule.specialization
			break
		}
	}

	return result.Normalize()
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
