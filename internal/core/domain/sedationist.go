package domain

import "time"

// Sedationist is a licensed practitioner who delivers sedation services and
// manages their schedule through the sedationist portal.
type Sedationist struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	FirstName     string    `json:"first_name" bson:"first_name"`
	LastName      string    `json:"last_name" bson:"last_name"`
	Email         string    `json:"email" bson:"email"`
	Phone         string    `json:"phone" bson:"phone"`
	LicenseNumber string    `json:"license_number" bson:"license_number"`
	Specialty     string    `json:"specialty" bson:"specialty"`
	Active        bool      `json:"active" bson:"active"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
