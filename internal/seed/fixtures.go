package seed

import (
	"doctor-triage/internal/domain/entity"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Doctors returns a fresh copy of the directory fixtures. All four practise in Dhaka.
func Doctors() []entity.Doctor {
	return []entity.Doctor{
		{
			Name:             "Dr. Amina Rahman",
			Specialization:   entity.SpecializationCardiologist,
			Experience:       intPtr(15),
			Degrees:          pq.StringArray{"MBBS", "FCPS (Cardiology)", "MD (Cardiology)"},
			Concentrations:   pq.StringArray{"Cardiac Medicine", "Congenital Heart Disease", "Cardiac Rehabilitation", "Heart Failure Management"},
			Hospital:         "Dhaka Heart Center",
			Chamber:          "Room 302",
			Helpline:         "+880-1234-567890",
			Address:          "Gulshan-2, Dhaka",
			MapsLink:         "https://www.google.com/maps/search/?api=1&query=Dhaka+Heart+Center%2C+Gulshan-2%2C+Dhaka",
			Rating:           decimal.RequireFromString("4.7"),
			CredibilityScore: decimal.NewNullDecimal(decimal.RequireFromString("0.72")),
		},
		{
			Name:             "Dr. Farid Hasan",
			Specialization:   entity.SpecializationNeurologist,
			Experience:       intPtr(12),
			Degrees:          pq.StringArray{"MBBS", "MD (Neurology)", "MRCP"},
			Concentrations:   pq.StringArray{"Epilepsy", "Stroke Management", "Headache & Migraine", "Neuromuscular Disorders"},
			Hospital:         "Neuro Care Clinic",
			Chamber:          "Suite 5B",
			Helpline:         "+880-1234-111222",
			Address:          "Dhanmondi, Dhaka",
			MapsLink:         "https://www.google.com/maps/search/?api=1&query=Neuro+Care+Clinic%2C+Dhanmondi%2C+Dhaka",
			Rating:           decimal.RequireFromString("4.6"),
			CredibilityScore: decimal.NewNullDecimal(decimal.RequireFromString("0.66")),
		},
		{
			Name:             "Dr. Nusrat Jahan",
			Specialization:   entity.SpecializationDermatologist,
			Experience:       intPtr(10),
			Degrees:          pq.StringArray{"MBBS", "DDV", "FCPS (Dermatology)"},
			Concentrations:   pq.StringArray{"Acne Treatment", "Skin Allergy", "Laser Treatment", "Cosmetic Dermatology"},
			Hospital:         "Skin & Laser Institute",
			Chamber:          "Level 4",
			Helpline:         "+880-1234-333444",
			Address:          "Banani, Dhaka",
			MapsLink:         "https://www.google.com/maps/search/?api=1&query=Skin+%26+Laser+Institute%2C+Banani%2C+Dhaka",
			Rating:           decimal.RequireFromString("4.5"),
			CredibilityScore: decimal.NewNullDecimal(decimal.RequireFromString("0.62")),
		},
		{
			Name:             "Dr. Imran Chowdhury",
			Specialization:   entity.SpecializationGeneralPhysician,
			Experience:       intPtr(8),
			Degrees:          pq.StringArray{"MBBS", "BCS (Health)", "CCD"},
			Concentrations:   pq.StringArray{"General Medicine", "Diabetes Management", "Infectious Diseases", "Preventive Healthcare"},
			Hospital:         "City Health Clinic",
			Chamber:          "Room 12",
			Helpline:         "+880-1234-555666",
			Address:          "Mirpur, Dhaka",
			MapsLink:         "https://www.google.com/maps/search/?api=1&query=City+Health+Clinic%2C+Mirpur%2C+Dhaka",
			Rating:           decimal.RequireFromString("4.4"),
			CredibilityScore: decimal.NewNullDecimal(decimal.RequireFromString("0.57")),
		},
	}
}

func intPtr(v int) *int {
	return &v
}
