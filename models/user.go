package models

import "time"

type User struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Address   string    `gorm:"not null" json:"address"`
	Weight    int       `gorm:"not null" json:"weight"`
	Height    float64   `gorm:"type:decimal(5,2);not null" json:"height"`
	SessionID *string   `gorm:"type:uuid;index" json:"session_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
