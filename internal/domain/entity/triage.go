package entity

// TriageResult is the outcome of classifying a symptom description.
type TriageResult struct {
	Specialization Specialization `json:"specialization"`
	Urgency        Urgency        `json:"urgency"`
}

// TriageSource records which path produced a TriageResult.
type TriageSource string

const (
	TriageSourceDefault TriageSource = "default"
	TriageSourceRules   TriageSource = "rules"
	TriageSourceLLM     TriageSource = "llm"
	TriageSourceCache   TriageSource = "cache"
)

// DefaultTriageResult is returned for empty input.
func DefaultTriageResult() TriageResult {
	return TriageResult{Specialization: DefaultSpecialization, Urgency: DefaultUrgency}
}

// NormalizeTriage coerces unrecognized values to the defaults. It is idempotent.
func NormalizeTriage(specialization, urgency string) TriageResult {
	result := DefaultTriageResult()
	if s := Specialization(specialization); s.IsValid() {
		result.Specialization = s
	}
	if u := Urgency(urgency); u.IsValid() {
		result.Urgency = u
	}
	return result
}

// Normalize returns r with any unrecognized value replaced by its default.
func (r TriageResult) Normalize() TriageResult {
	return NormalizeTriage(string(r.Specialization), string(r.Urgency))
}
