package models

import "time"

// Brand is referenced from Motorcycle records by name, not by document ID.
// The store enforces no referential integrity between the two collections.
type Brand struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name" validate:"required,min=2,max=100"`
	Distributor string    `json:"distributor" firestore:"distributor"`
	LogoURL     string    `json:"logo_url" firestore:"logo_url"`
	Country     string    `json:"country" firestore:"country"`
	FoundedYear int       `json:"founded_year,omitempty" firestore:"founded_year"`
	CreatedAt   time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updated_at"`
}
