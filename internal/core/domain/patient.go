package domain

import "time"

// Patient is a person receiving sedation care, as administered through the
// internal and clinic portals.
type Patient struct {
	ID                  string    `json:"id" bson:"_id,omitempty"`
	FirstName           string    `json:"first_name" bson:"first_name"`
	LastName            string    `json:"last_name" bson:"last_name"`
	Email               string    `json:"email" bson:"email"`
	Phone               string    `json:"phone" bson:"phone"`
	DateOfBirth         time.Time `json:"date_of_birth" bson:"date_of_birth"`
	MedicalRecordNumber string    `json:"medical_record_number" bson:"medical_record_number"`
	ClinicName          string    `json:"clinic_name" bson:"clinic_name"`
	Active              bool      `json:"active" bson:"active"`
	CreatedAt           time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" bson:"updated_at"`
}
