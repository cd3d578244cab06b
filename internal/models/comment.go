package models

import "time"

type Comment struct {
	ID          string    `json:"id" firestore:"id"`
	CriticID    string    `json:"critic_id" firestore:"critic_id" validate:"required"`
	Content     string    `json:"content" firestore:"content" validate:"required,min=1,max=2000"`
	UserUID     string    `json:"user_uid,omitempty" firestore:"user_uid"`
	DisplayName string    `json:"display_name,omitempty" firestore:"display_name"`
	CreatedAt   time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updated_at"`
}
