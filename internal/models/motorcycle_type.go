package models

import "time"

// MotorcycleType is a category/segment record (Sport, Cruiser, Commuter...).
type MotorcycleType struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name" validate:"required,min=2,max=100"`
	Description string    `json:"description" firestore:"description"`
	CreatedAt   time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updated_at"`
}
