package entity

// Specialization is the medical field a doctor practices in. Imported data may
// carry values outside the recognized set below.
type Specialization string

const (
	SpecializationCardiologist       Specialization = "CARDIOLOGIST"
	SpecializationNeurologist        Specialization = "NEUROLOGIST"
	SpecializationDermatologist      Specialization = "DERMATOLOGIST"
	SpecializationOrthopedic         Specialization = "ORTHOPEDIC"
	SpecializationGastroenterologist Specialization = "GASTROENTEROLOGIST"
	SpecializationPediatrician       Specialization = "PEDIATRICIAN"
	SpecializationPsychiatrist       Specialization = "PSYCHIATRIST"
	SpecializationGeneralPhysician   Specialization = "GENERAL_PHYSICIAN"
)

// Urgency is how quickly a patient should seek care.
type Urgency string

const (
	UrgencyLow       Urgency = "LOW"
	UrgencyMedium    Urgency = "MEDIUM"
	UrgencyHigh      Urgency = "HIGH"
	UrgencyEmergency Urgency = "EMERGENCY"
)

const (
	DefaultSpecialization = SpecializationGeneralPhysician
	DefaultUrgency        = UrgencyMedium
)

var specializations = []Specialization{
	SpecializationCardiologist,
	SpecializationNeurologist,
	SpecializationDermatologist,
	SpecializationOrthopedic,
	SpecializationGastroenterologist,
	SpecializationPediatrician,
	SpecializationPsychiatrist,
	SpecializationGeneralPhysician,
}

var urgencies = []Urgency{
	UrgencyLow,
	UrgencyMedium,
	UrgencyHigh,
	UrgencyEmergency,
}

// Specializations returns the recognized specializations in declaration order.
func Specializations() []Specialization {
	out := make([]Specialization, len(specializations))
	copy(out, specializations)
	return out
}

// Urgencies returns the urgency levels from least to most severe.
func Urgencies() []Urgency {
	out := make([]Urgency, len(urgencies))
	copy(out, urgencies)
	return out
}

func (s Specialization) IsValid() bool {
	for _, known := range specializations {
		if s == known {
			return true
		}
	}
	return false
}

func (u Urgency) IsValid() bool {
	for _, known := range urgencies {
		if u == known {
			return true
		}
	}
	return false
}
