package models

import "time"

// MotorcycleSnapshot is the trimmed copy of a motorcycle stored inside a
// comparison. The snapshot keeps the original document ID so a comparison
// survives later edits to the motorcycle record.
type MotorcycleSnapshot struct {
	MotorcycleID string `json:"motorcycle_id" firestore:"motorcycle_id" validate:"required"`
	Brand        string `json:"brand" firestore:"brand" validate:"required"`
	ModelName    string `json:"model_name" firestore:"model_name" validate:"required"`
	ModelYear    int    `json:"model_year" firestore:"model_year"`
	Category     string `json:"category" firestore:"category"`
	CoverImage   string `json:"cover_image" firestore:"cover_image"`
}

// Comparison is write-once and append-only. There is no update or delete
// path for saved comparisons.
type Comparison struct {
	ID        string             `json:"id" firestore:"id"`
	Left      MotorcycleSnapshot `json:"left" firestore:"left" validate:"required"`
	Right     MotorcycleSnapshot `json:"right" firestore:"right" validate:"required"`
	CreatedBy string             `json:"created_by" firestore:"created_by"`
	CreatedAt time.Time          `json:"created_at" firestore:"created_at"`
}
