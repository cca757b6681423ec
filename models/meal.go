package models

import "time"

// A single logged meal, always owned by exactly one user.
type Meal struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;index;not null" json:"user_id"` // FK → users.id
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	IsOnTheDiet bool      `gorm:"column:isOnTheDiet;not null" json:"isOnTheDiet"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
